package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClient_Defaults(t *testing.T) {
	cfg, err := ParseClient()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIURL)
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.MinLoading)
	assert.Equal(t, ProjectStoreMemory, cfg.ProjectStore)
	assert.Equal(t, "auto", cfg.KeyringBackend)
}

func TestParseClient_Overrides(t *testing.T) {
	t.Setenv("STORYCRAFTER_API_URL", "http://api.local:9000/")
	t.Setenv("STORYCRAFTER_PROJECT_STORE", "Local")
	t.Setenv("STORYCRAFTER_MIN_LOADING", "0s")

	cfg, err := ParseClient()
	require.NoError(t, err)
	assert.Equal(t, "http://api.local:9000", cfg.APIURL)
	assert.Equal(t, ProjectStoreLocal, cfg.ProjectStore)
	assert.Zero(t, cfg.MinLoading)
}

func TestParseClient_BadProjectStore(t *testing.T) {
	t.Setenv("STORYCRAFTER_PROJECT_STORE", "cloud")
	_, err := ParseClient()
	assert.Error(t, err)
}

func TestParseServer_RequiresSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	_, err := ParseServer()
	assert.EqualError(t, err, "SECRET_KEY is required")
}

func TestParseServer(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("GENERATOR_PROVIDER", "OpenAI")

	cfg, err := ParseServer()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "openai", cfg.GeneratorProvider)
	assert.False(t, cfg.RequireKnownProjects)
}
