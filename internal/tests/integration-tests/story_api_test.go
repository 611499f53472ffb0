package integration_tests

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storycrafter/internal/backend"
	"storycrafter/internal/config"
	"storycrafter/internal/database"
	"storycrafter/internal/models"
	"storycrafter/internal/repositories"
	"storycrafter/internal/server"
	"storycrafter/internal/services"
	"storycrafter/internal/tests/mocks"
)

type cannedGenerator struct {
	mu    sync.Mutex
	story string
	err   error
}

func (g *cannedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	return g.story, nil
}

func startStoryAPI(t *testing.T, gen *cannedGenerator) *backend.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Init(database.Config{Path: ":memory:", Log: zerolog.Nop(), Models: database.ServerModels()})
	require.NoError(t, err)
	svcs := services.NewServices(db, gen, zerolog.Nop())
	svcs.Users = services.NewUserServiceWithCost(repositories.NewUserRepository(db), bcrypt.MinCost)

	cfg := &config.ServerConfig{
		SecretKey:      "integration-secret",
		AccessTokenTTL: 30 * time.Minute,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	srv := server.New(server.Deps{
		Config:   cfg,
		Log:      zerolog.Nop(),
		Services: svcs,
		Tokens:   server.NewTokenIssuer(cfg.SecretKey, cfg.AccessTokenTTL),
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return backend.NewClient(ts.URL, 5*time.Second, zerolog.Nop())
}

func newClientController(api backend.StoryBackend, tokens services.TokenStore, projects services.ProjectStore) *services.ControllerService {
	c := services.NewControllerService(api, tokens, projects, nil, services.ControllerOptions{Log: zerolog.Nop()})
	c.Startup(context.Background())
	return c
}

func TestStoryAPI_SignupGenerateAndRestore(t *testing.T) {
	gen := &cannedGenerator{story: "Title: Checkout\n\nUser Story:\nAs a shopper..."}
	api := startStoryAPI(t, gen)
	tokens := &mocks.TokenStoreMock{}
	c := newClientController(api, tokens, nil)

	_, err := c.Navigate(models.PageSignup)
	require.NoError(t, err)
	st, err := c.Signup("shopper@test.com", "longenough")
	require.NoError(t, err)
	require.Equal(t, models.PageEnterName, st.Page, st.SignupErrors)
	assert.NotEmpty(t, tokens.Stored())

	st, err = c.SubmitName("Ada")
	require.NoError(t, err)
	assert.Equal(t, models.PageDashboard, st.Page)

	st, err = c.ContinueWithoutProject()
	require.NoError(t, err)
	require.NotNil(t, st.ActiveChatID)
	first := *st.ActiveChatID

	st, err = c.SendMessage(first, "Shoppers pay for their cart")
	require.NoError(t, err)
	require.Len(t, st.Chats, 2)
	active, ok := st.ActiveChat()
	require.True(t, ok)
	assert.NotEqual(t, first, active.ID)
	require.Len(t, active.Messages, 2)
	assert.Equal(t, "Shoppers pay for their cart", active.Messages[0].Text)
	assert.Equal(t, gen.story, active.Messages[1].Text)
	assert.False(t, st.Loading)

	// a second process with the same token store picks the session up again
	restarted := newClientController(api, tokens, nil)
	st, err = restarted.Restore()
	require.NoError(t, err)
	assert.Equal(t, models.PageDashboard, st.Page)
	require.NotNil(t, st.Session)
	assert.Equal(t, "Ada", st.Session.User.Name)
	assert.Len(t, st.Chats, 2)

	_, err = restarted.Logout()
	require.NoError(t, err)
	assert.Empty(t, tokens.Stored())
}

func TestStoryAPI_LoginErrors(t *testing.T) {
	api := startStoryAPI(t, &cannedGenerator{})
	c := newClientController(api, &mocks.TokenStoreMock{}, nil)

	_, err := c.Navigate(models.PageSignup)
	require.NoError(t, err)
	st, err := c.Signup("dup@test.com", "longenough")
	require.NoError(t, err)
	require.NotNil(t, st.Session)
	_, err = c.Logout()
	require.NoError(t, err)

	_, err = c.Navigate(models.PageSignup)
	require.NoError(t, err)
	st, err = c.Signup("dup@test.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, services.MsgEmailRegistered, st.SignupErrors.Email)

	_, err = c.Navigate(models.PageLogin)
	require.NoError(t, err)
	st, err = c.Login("dup@test.com", "wrong-password")
	require.NoError(t, err)
	assert.Equal(t, services.MsgInvalidLogin, st.LoginErrors.Email)
	assert.Nil(t, st.Session)

	st, err = c.Login("dup@test.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, models.PageDashboard, st.Page)
	assert.Equal(t, "dup", st.Session.User.Name)
}

func TestStoryAPI_FailedGenerationShowsBubble(t *testing.T) {
	gen := &cannedGenerator{err: assert.AnError}
	api := startStoryAPI(t, gen)
	c := newClientController(api, &mocks.TokenStoreMock{}, nil)

	_, err := c.Navigate(models.PageSignup)
	require.NoError(t, err)
	_, err = c.Signup("user@test.com", "longenough")
	require.NoError(t, err)
	st, err := c.ContinueWithoutProject()
	require.NoError(t, err)
	chatID := *st.ActiveChatID

	st, err = c.SendMessage(chatID, "req")
	require.NoError(t, err)
	chat, ok := st.FindChat(chatID)
	require.True(t, ok)
	require.Len(t, chat.Messages, 3)
	assert.Equal(t, services.MsgGenerationFailed, chat.Messages[2].Text)

	st, err = c.LoadChats()
	require.NoError(t, err)
	assert.Len(t, st.Chats, 1)
}

func TestStoryAPI_RemoteProjects(t *testing.T) {
	api := startStoryAPI(t, &cannedGenerator{story: "ok"})
	tokens := &mocks.TokenStoreMock{}
	projects, err := services.NewProjectStore(config.ProjectStoreRemote, nil, api)
	require.NoError(t, err)
	c := newClientController(api, tokens, projects)

	_, err = c.Navigate(models.PageSignup)
	require.NoError(t, err)
	_, err = c.Signup("pm@test.com", "longenough")
	require.NoError(t, err)
	_, err = c.SubmitName("PM")
	require.NoError(t, err)

	st, err := c.NewProject(models.ProjectInput{Name: "Billing", Overview: "Invoices"})
	require.NoError(t, err)
	project, ok := st.ActiveProject()
	require.True(t, ok)
	active, ok := st.ActiveChat()
	require.True(t, ok)
	require.NotNil(t, active.ProjectID)
	assert.Equal(t, project.ID, *active.ProjectID)

	remoteProjects, err := services.NewProjectStore(config.ProjectStoreRemote, nil, api)
	require.NoError(t, err)
	restarted := newClientController(api, tokens, remoteProjects)
	st, err = restarted.Restore()
	require.NoError(t, err)
	require.Len(t, st.Projects, 1)
	assert.Equal(t, "Billing", st.Projects[0].Name)
	assert.Equal(t, models.NotSpecified, st.Projects[0].Type)
	assert.Len(t, st.ProjectChats(project.ID), 1)
}
