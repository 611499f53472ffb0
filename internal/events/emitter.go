package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit delivers a named payload to whichever view layer is attached. It is a no-op until
// EnableRuntimeEmitter or SetCustomEmitter is called.
var Emit = func(ctx context.Context, name string, payload any) {}

// EnableRuntimeEmitter forwards events to the Wails frontend. ctx must be the context
// Wails passed to OnStartup.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, payload any) {
		if n, ok := payload.(Notice); ok {
			n = withSessionKey(ctx, n)
			logRuntimeNotice(ctx, n)
			payload = n
		}
		runtime.EventsEmit(ctx, name, payload)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, payload any)) {
	if f == nil {
		Emit = func(context.Context, string, any) {}
		return
	}
	Emit = func(ctx context.Context, name string, payload any) {
		if n, ok := payload.(Notice); ok {
			payload = withSessionKey(ctx, n)
		}
		f(ctx, name, payload)
	}
}

// Notify emits a notice.
func Notify(ctx context.Context, n Notice) {
	Emit(ctx, NoticeEmitted, n)
}

func withSessionKey(ctx context.Context, n Notice) Notice {
	if n.SessionKey == "" {
		n.SessionKey = SessionFromContext(ctx)
	}
	return n
}
