package unit_tests

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycrafter/internal/services"
)

func TestKeyringService_RoundTrip(t *testing.T) {
	store := services.NewKeyringService(keyring.NewArrayKeyring(nil))

	token, err := store.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SaveToken("abc"))
	token, err = store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, store.ClearToken())
	token, err = store.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, store.ClearToken())
}

func TestKeyringService_RejectsEmptyToken(t *testing.T) {
	store := services.NewKeyringService(keyring.NewArrayKeyring(nil))
	assert.Error(t, store.SaveToken(""))
}

func TestKeyringService_FileBackendSurvivesReopen(t *testing.T) {
	cfg := services.KeyringConfig{Backend: "file", Dir: t.TempDir(), Password: "test-password"}

	ring, err := services.OpenKeyring(cfg)
	require.NoError(t, err)
	require.NoError(t, services.NewKeyringService(ring).SaveToken("persisted"))

	reopened, err := services.OpenKeyring(cfg)
	require.NoError(t, err)
	store := services.NewKeyringService(reopened)
	token, err := store.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)

	require.NoError(t, store.ClearToken())
	assert.NoError(t, store.ClearToken())
}
