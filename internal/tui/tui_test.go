package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycrafter/internal/backend"
	"storycrafter/internal/models"
	"storycrafter/internal/services"
	"storycrafter/internal/tests/mocks"
	"storycrafter/internal/validation"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// drive feeds messages to the model and runs the resulting controller calls inline.
func drive(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		for cmd != nil {
			out, ok := cmd().(stateMsg)
			if !ok {
				break
			}
			m, cmd = m.Update(out)
		}
	}
	return m
}

func newTestController(api *mocks.StoryBackendMock) *services.ControllerService {
	c := services.NewControllerService(api, &mocks.TokenStoreMock{}, nil, nil, services.ControllerOptions{Log: zerolog.Nop()})
	c.Startup(context.Background())
	return c
}

func authedBackend() *mocks.StoryBackendMock {
	next := uint(1)
	return &mocks.StoryBackendMock{
		AuthenticateFunc: func(ctx context.Context, email, password string) (*backend.TokenResponse, error) {
			return &backend.TokenResponse{AccessToken: "tok", TokenType: "bearer", UserID: 1}, nil
		},
		MeFunc: func(ctx context.Context, token string) (*backend.UserResponse, error) {
			return &backend.UserResponse{ID: 1, Email: "ada@test.com", Name: "Ada"}, nil
		},
		CreateChatFunc: func(ctx context.Context, token string, req backend.ChatRequest) (*backend.ChatResponse, error) {
			resp := &backend.ChatResponse{ID: next, Title: req.Title, ProjectID: req.ProjectID, UserID: 1}
			next++
			return resp, nil
		},
	}
}

func loggedInModel(t *testing.T, api *mocks.StoryBackendMock) tea.Model {
	t.Helper()
	c := newTestController(api)
	_, err := c.Login("ada@test.com", "validpass")
	require.NoError(t, err)
	return newModel(c)
}

func TestTUI_LoginFlow(t *testing.T) {
	api := authedBackend()
	m := drive(newModel(newTestController(api)),
		runes("l"),
		runes("ada@test.com"),
		key(tea.KeyTab),
		runes("validpass"),
		key(tea.KeyEnter),
	)

	st := m.(model).st
	assert.Equal(t, models.PageDashboard, st.Page)
	assert.Contains(t, m.View(), "Welcome, Ada!")
	assert.Empty(t, m.(model).password)
}

func TestTUI_LoginValidationStaysLocal(t *testing.T) {
	api := authedBackend()
	m := drive(newModel(newTestController(api)),
		runes("l"),
		runes("not-an-email"),
		key(tea.KeyEnter),
		runes("x"),
		key(tea.KeyEnter),
	)

	assert.Equal(t, models.PageLogin, m.(model).st.Page)
	assert.Contains(t, m.View(), validation.MsgInvalidEmail)
	assert.Zero(t, api.TotalCalls())
}

func TestTUI_EditText(t *testing.T) {
	assert.Equal(t, "ab", editText("a", runes("b")))
	assert.Equal(t, "a ", editText("a", key(tea.KeySpace)))
	assert.Equal(t, "hé", editText("hél", key(tea.KeyBackspace)))
	assert.Equal(t, "", editText("", key(tea.KeyBackspace)))
}

func TestTUI_SendMessageShowsStory(t *testing.T) {
	api := authedBackend()
	generated := false
	api.GenerateStoryFunc = func(ctx context.Context, token, prompt string) (*backend.GenerateResponse, error) {
		generated = true
		return &backend.GenerateResponse{Story: "As a shopper I want to pay", ChatID: 9}, nil
	}
	api.ListChatsFunc = func(ctx context.Context, token string) ([]backend.ChatResponse, error) {
		if !generated {
			return []backend.ChatResponse{}, nil
		}
		return []backend.ChatResponse{{ID: 1, Title: "New Chat 1"}, {ID: 9, Title: "Chat 2024-05-01 10:00"}}, nil
	}
	api.ListMessagesFunc = func(ctx context.Context, token string, chatID uint) ([]backend.MessageResponse, error) {
		if chatID != 9 {
			return nil, nil
		}
		at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		return []backend.MessageResponse{
			{ID: 1, ChatID: 9, Message: "checkout", IsUser: true, CreatedAt: at},
			{ID: 2, ChatID: 9, Message: "As a shopper I want to pay", IsUser: false, CreatedAt: at},
		}, nil
	}

	m := drive(loggedInModel(t, api), runes("n"))
	require.Equal(t, models.PageChat, m.(model).st.Page)
	assert.Contains(t, m.View(), services.MsgGreeting)

	m = drive(m, runes("checkout"), key(tea.KeyEnter))
	st := m.(model).st
	require.NotNil(t, st.ActiveChatID)
	assert.Equal(t, uint(9), *st.ActiveChatID)
	assert.False(t, st.Loading)
	assert.Contains(t, m.View(), "As a shopper I want to pay")

	m = drive(m, key(tea.KeyCtrlG))
	assert.Contains(t, m.View(), "[good]")
}

func TestTUI_BlankPromptIsNotSent(t *testing.T) {
	api := authedBackend()
	m := drive(loggedInModel(t, api), runes("n"), key(tea.KeySpace), key(tea.KeyEnter))
	assert.Zero(t, api.Calls("GenerateStory"))
	assert.Equal(t, models.PageChat, m.(model).st.Page)
}

func TestTUI_DeleteChatAsksFirst(t *testing.T) {
	api := authedBackend()
	m := drive(loggedInModel(t, api), runes("n"), key(tea.KeyEsc))
	require.Equal(t, models.PageDashboard, m.(model).st.Page)
	require.Len(t, m.(model).items(), 1)

	m = drive(m, runes("d"))
	require.NotNil(t, m.(model).st.Confirmation)
	assert.Contains(t, m.View(), "Delete Chat")

	m = drive(m, runes("n"))
	assert.Nil(t, m.(model).st.Confirmation)
	assert.Len(t, m.(model).st.Chats, 1)

	m = drive(m, runes("d"), runes("y"))
	assert.Empty(t, m.(model).st.Chats)
	assert.Contains(t, m.View(), "No projects or chats yet.")
}

func TestTUI_NewProject(t *testing.T) {
	api := authedBackend()
	m := drive(loggedInModel(t, api), runes("p"), runes("Billing"), key(tea.KeyEnter))

	st := m.(model).st
	assert.Equal(t, models.PageChat, st.Page)
	p, ok := st.ActiveProject()
	require.True(t, ok)
	assert.Equal(t, "Billing", p.Name)
	assert.Contains(t, m.View(), "Billing / New Chat 1")

	m = drive(m, key(tea.KeyEsc))
	items := m.(model).items()
	require.Len(t, items, 1)
	assert.Equal(t, models.EntityProject, items[0].kind)
}

func TestTUI_ThemeToggle(t *testing.T) {
	m := drive(newModel(newTestController(authedBackend())), runes("t"))
	assert.Equal(t, "light", m.(model).st.Theme)
	m = drive(m, runes("t"))
	assert.Equal(t, "dark", m.(model).st.Theme)
}

func TestTUI_ErrorsShowInStatusLine(t *testing.T) {
	c := newTestController(authedBackend())
	m := drive(newModel(c), stateMsg{st: c.State(), err: assert.AnError})
	assert.Contains(t, m.View(), assert.AnError.Error())
}
