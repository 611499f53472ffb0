package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCustomEmitter_FillsSessionKey(t *testing.T) {
	t.Cleanup(func() { SetCustomEmitter(nil) })

	var gotName string
	var got any
	SetCustomEmitter(func(_ context.Context, name string, payload any) {
		gotName = name
		got = payload
	})

	ctx := WithSession(context.Background(), "user@test.com")
	Notify(ctx, NewWarn("Session expired. Please log in again."))

	assert.Equal(t, NoticeEmitted, gotName)
	n, ok := got.(Notice)
	require.True(t, ok)
	assert.Equal(t, "user@test.com", n.SessionKey)
	assert.Equal(t, NoticeWarn, n.Type)
	assert.NotEmpty(t, n.ID)
}

func TestSetCustomEmitter_PassesOtherPayloadsThrough(t *testing.T) {
	t.Cleanup(func() { SetCustomEmitter(nil) })

	var got any
	SetCustomEmitter(func(_ context.Context, _ string, payload any) { got = payload })
	Emit(context.Background(), StateChanged, 42)
	assert.Equal(t, 42, got)
}

func TestSetCustomEmitter_NilDisables(t *testing.T) {
	SetCustomEmitter(nil)
	assert.NotPanics(t, func() { Emit(context.Background(), StateChanged, nil) })
}

func TestWithSession_Blank(t *testing.T) {
	ctx := WithSession(context.Background(), "  ")
	assert.Empty(t, SessionFromContext(ctx))
}
