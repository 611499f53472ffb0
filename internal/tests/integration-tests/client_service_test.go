package integration_tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycrafter/internal/backend"
	"storycrafter/internal/config"
	"storycrafter/internal/models"
	"storycrafter/internal/services"
	"storycrafter/internal/tests/mocks"
)

// slowProfileAPI answers /users/me only after release is closed.
func slowProfileAPI(t *testing.T, release <-chan struct{}) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users/me", func(c *gin.Context) {
		select {
		case <-release:
		case <-c.Request.Context().Done():
			return
		}
		c.JSON(http.StatusOK, backend.UserResponse{ID: 1, Email: "ada@test.com", Name: "Ada"})
	})
	r.GET("/chats/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []backend.ChatResponse{})
	})
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestClientService_StartupDoesNotWaitForRestore(t *testing.T) {
	release := make(chan struct{})
	cfg := &config.ClientConfig{
		APIURL:         slowProfileAPI(t, release),
		RequestTimeout: 5 * time.Second,
		ProjectStore:   config.ProjectStoreMemory,
		DBPath:         filepath.Join(t.TempDir(), "client.db"),
	}
	zero := time.Duration(0)
	client, err := services.NewClientService(cfg, zerolog.Nop(), services.ClientOptions{
		Tokens:     &mocks.TokenStoreMock{Token: "abc"},
		MinLoading: &zero,
	})
	require.NoError(t, err)

	done := client.StartupInBackground(context.Background())
	st := client.Controller.State()
	assert.Equal(t, models.PageHome, st.Page)
	assert.Nil(t, st.Session)

	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("restore did not finish")
	}
	st = client.Controller.State()
	assert.Equal(t, models.PageDashboard, st.Page)
	require.NotNil(t, st.Session)
	assert.Equal(t, "Ada", st.Session.User.Name)

	require.NoError(t, client.Close())
}
