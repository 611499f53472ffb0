package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type NoticeType string

const (
	NoticeInfo    NoticeType = "info"
	NoticeWarn    NoticeType = "warn"
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
)

const (
	// StateChanged carries a full state snapshot after every applied transition.
	StateChanged = "events:state"
	// NoticeEmitted carries short user-facing notices (session expired, saved, ...).
	NoticeEmitted = "events:notice"
)

// Notice is a user-facing message pushed to the views.
type Notice struct {
	ID         string            `json:"id"`
	Type       NoticeType        `json:"type"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp"`
	SessionKey string            `json:"sessionKey,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type contextKey string

const sessionContextKey contextKey = "storycrafter/events/session"

// WithSession returns a derived context annotated with the given session key
// so event emitters can automatically scope payloads.
func WithSession(ctx context.Context, sessionKey string) context.Context {
	if strings.TrimSpace(sessionKey) == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionContextKey, sessionKey)
}

// SessionFromContext extracts the session key associated with ctx.
func SessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(sessionContextKey).(string); ok {
		return v
	}
	return ""
}

func NewNotice(t NoticeType, message string) Notice {
	return Notice{
		ID:        uuid.NewString(),
		Type:      t,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func NewInfo(message string) Notice { return NewNotice(NoticeInfo, message) }
func NewWarn(message string) Notice { return NewNotice(NoticeWarn, message) }
func NewError(message string) Notice { return NewNotice(NoticeError, message) }
func NewSuccess(message string) Notice { return NewNotice(NoticeSuccess, message) }
