package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycrafter/internal/models"
)

func loggedIn(page models.Page) AppState {
	s := Initial()
	s.Page = page
	s.Session = &models.Session{Token: "abc", User: models.User{ID: 1, Email: "user@test.com"}}
	return s
}

func u(v uint) *uint { return &v }

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.Page
		want     bool
	}{
		{models.PageHome, models.PageLogin, true},
		{models.PageHome, models.PageSignup, true},
		{models.PageHome, models.PageChat, false},
		{models.PageLogin, models.PageDashboard, true},
		{models.PageSignup, models.PageEnterName, true},
		{models.PageSignup, models.PageDashboard, false},
		{models.PageEnterName, models.PageDashboard, true},
		{models.PageDashboard, models.PageChat, true},
		{models.PageChat, models.PageDashboard, true},
		{models.PageChat, models.PageLogin, false},
		{models.PageChat, models.PageChat, true},
		{models.Page("nowhere"), models.Page("nowhere"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestApply_InvalidTransitionLeavesStateUnchanged(t *testing.T) {
	s := Initial()
	next, err := Apply(s, Navigated{To: models.PageChat})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, s, next)
}

func TestNavigated_RequiresSessionForAuthenticatedPages(t *testing.T) {
	s := Initial()
	s.Page = models.PageLogin
	_, err := Apply(s, Navigated{To: models.PageDashboard})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestNavigated_HomeFromDashboardNeedsLogout(t *testing.T) {
	_, err := Apply(loggedIn(models.PageDashboard), Navigated{To: models.PageHome})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNavigated_ClearsFormErrors(t *testing.T) {
	s := Initial()
	s.Page = models.PageSignup
	s.LoginErrors = models.FieldErrors{Email: "bad"}
	next, err := Apply(s, Navigated{To: models.PageLogin})
	require.NoError(t, err)
	assert.True(t, next.LoginErrors.Empty())
	assert.Equal(t, models.PageLogin, next.Page)
}

func TestSessionStarted_LoginGoesToDashboard(t *testing.T) {
	s := Initial()
	s.Page = models.PageLogin
	s.LoginErrors = models.FieldErrors{Email: "Invalid email or password."}

	next, err := Apply(s, SessionStarted{
		Session: models.Session{Token: "abc", User: models.User{ID: 1, Email: "user@test.com"}},
		To:      models.PageDashboard,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PageDashboard, next.Page)
	assert.Equal(t, "abc", next.Session.Token)
	assert.True(t, next.LoginErrors.Empty())
}

func TestSessionStarted_SignupGoesToEnterName(t *testing.T) {
	s := Initial()
	s.Page = models.PageSignup
	next, err := Apply(s, SessionStarted{
		Session: models.Session{Token: "t", User: models.User{Email: "a@b.com"}},
		To:      models.PageEnterName,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PageEnterName, next.Page)
	assert.Equal(t, "a@b.com", next.SignupEmail)

	next, err = Apply(next, NameSubmitted{Name: "  Ada  "})
	require.NoError(t, err)
	assert.Equal(t, models.PageDashboard, next.Page)
	assert.Equal(t, "Ada", next.Session.User.Name)
	assert.Empty(t, next.SignupEmail)
}

func TestNameSubmitted_Blank(t *testing.T) {
	_, err := Apply(loggedIn(models.PageEnterName), NameSubmitted{Name: "   "})
	assert.ErrorIs(t, err, ErrBlankName)
}

func TestLoggedOut_ClearsEverythingButTheme(t *testing.T) {
	s := loggedIn(models.PageChat)
	s.Theme = "light"
	s.Projects = []models.Project{{ID: 1, Name: "P"}}
	s.Chats = []models.Chat{{ID: 3}}
	s.ActiveChatID = u(3)
	s.ActiveProjectID = u(1)

	next, err := Apply(s, LoggedOut{})
	require.NoError(t, err)
	assert.Equal(t, models.PageHome, next.Page)
	assert.Nil(t, next.Session)
	assert.Empty(t, next.Projects)
	assert.Empty(t, next.Chats)
	assert.Nil(t, next.ActiveChatID)
	assert.Nil(t, next.ActiveProjectID)
	assert.Equal(t, "light", next.Theme)
}

func TestChatAdded_ActivatesAndShowsChat(t *testing.T) {
	next, err := Apply(loggedIn(models.PageDashboard), ChatAdded{Chat: models.Chat{ID: 7, Title: "New Chat 1"}, Activate: true})
	require.NoError(t, err)
	assert.Equal(t, models.PageChat, next.Page)
	require.NotNil(t, next.ActiveChatID)
	assert.Equal(t, uint(7), *next.ActiveChatID)
}

func TestChatsReplaced_DropsMissingActiveChat(t *testing.T) {
	s := loggedIn(models.PageChat)
	s.Chats = []models.Chat{{ID: 1}, {ID: 2}}
	s.ActiveChatID = u(2)

	next, err := Apply(s, ChatsReplaced{Chats: []models.Chat{{ID: 1}}})
	require.NoError(t, err)
	assert.Len(t, next.Chats, 1)
	assert.Nil(t, next.ActiveChatID)
}

func TestApply_DoesNotAliasInput(t *testing.T) {
	s := loggedIn(models.PageChat)
	s.Chats = []models.Chat{{ID: 1, Messages: []models.Message{{ID: "m1", Text: "hi"}}}}

	next, err := Apply(s, MessageAppended{ChatID: 1, Message: models.Message{ID: "m2"}})
	require.NoError(t, err)
	assert.Len(t, next.Chats[0].Messages, 2)
	assert.Len(t, s.Chats[0].Messages, 1)

	next, err = Apply(next, FeedbackToggled{ChatID: 1, MessageID: "m1", Label: models.FeedbackGood})
	require.NoError(t, err)
	require.NotNil(t, next.Chats[0].Messages[0].Feedback)
	assert.Nil(t, s.Chats[0].Messages[0].Feedback)
}

func TestChatSelected_ActivatesKnownProject(t *testing.T) {
	s := loggedIn(models.PageDashboard)
	s.Projects = []models.Project{{ID: 5, Name: "P"}}
	s.Chats = []models.Chat{{ID: 1, ProjectID: u(5)}, {ID: 2, ProjectID: u(99)}}

	next, err := Apply(s, ChatSelected{ChatID: 1})
	require.NoError(t, err)
	assert.Equal(t, models.PageChat, next.Page)
	require.NotNil(t, next.ActiveProjectID)
	assert.Equal(t, uint(5), *next.ActiveProjectID)

	next, err = Apply(s, ChatSelected{ChatID: 2})
	require.NoError(t, err)
	assert.Nil(t, next.ActiveProjectID)
}

func TestEntityDeleted_ProjectRemovesItsChats(t *testing.T) {
	s := loggedIn(models.PageDashboard)
	s.Projects = []models.Project{{ID: 1, Name: "P1"}, {ID: 2, Name: "P2"}}
	s.Chats = []models.Chat{{ID: 10, ProjectID: u(1)}, {ID: 11, ProjectID: u(1)}, {ID: 12, ProjectID: u(2)}, {ID: 13}}
	s.ActiveProjectID = u(1)
	s.ActiveChatID = u(11)

	next, err := Apply(s, EntityDeleted{Kind: models.EntityProject, ID: 1})
	require.NoError(t, err)
	assert.Equal(t, []models.Project{{ID: 2, Name: "P2"}}, next.Projects)
	ids := []uint{}
	for _, c := range next.Chats {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []uint{12, 13}, ids)
	assert.Nil(t, next.ActiveProjectID)
	assert.Nil(t, next.ActiveChatID)
	assert.Len(t, s.Chats, 4)
}

func TestEntityRenamed(t *testing.T) {
	s := loggedIn(models.PageDashboard)
	s.Projects = []models.Project{{ID: 1, Name: "Old"}}
	s.Chats = []models.Chat{{ID: 2, Title: "Chat"}}
	s.Rename = &models.RenameRequest{Kind: models.EntityChat, ID: 2}

	next, err := Apply(s, EntityRenamed{Kind: models.EntityChat, ID: 2, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", next.Chats[0].Title)
	assert.Nil(t, next.Rename)

	next, err = Apply(next, EntityRenamed{Kind: models.EntityProject, ID: 1, Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", next.Projects[0].Name)

	_, err = Apply(next, EntityRenamed{Kind: models.EntityProject, ID: 9, Name: "x"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
	_, err = Apply(next, EntityRenamed{Kind: "folder", ID: 1, Name: "x"})
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestFeedbackToggled_TogglesOff(t *testing.T) {
	s := loggedIn(models.PageChat)
	s.Chats = []models.Chat{{ID: 1, Messages: []models.Message{{ID: "b1"}}}}

	next, err := Apply(s, FeedbackToggled{ChatID: 1, MessageID: "b1", Label: models.FeedbackBad})
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackBad, *next.Chats[0].Messages[0].Feedback)

	next, err = Apply(next, FeedbackToggled{ChatID: 1, MessageID: "b1", Label: models.FeedbackGood})
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackGood, *next.Chats[0].Messages[0].Feedback)

	next, err = Apply(next, FeedbackToggled{ChatID: 1, MessageID: "b1", Label: models.FeedbackGood})
	require.NoError(t, err)
	assert.Nil(t, next.Chats[0].Messages[0].Feedback)

	_, err = Apply(next, FeedbackToggled{ChatID: 1, MessageID: "b1", Label: "meh"})
	assert.ErrorIs(t, err, ErrInvalidFeedback)
}

func TestVisibleChats(t *testing.T) {
	s := loggedIn(models.PageDashboard)
	s.Chats = []models.Chat{{ID: 1}, {ID: 2, ProjectID: u(4)}}
	s.ActiveProjectID = u(4)
	assert.Equal(t, uint(1), s.VisibleChats()[0].ID)

	s.Page = models.PageChat
	visible := s.VisibleChats()
	require.Len(t, visible, 1)
	assert.Equal(t, uint(2), visible[0].ID)
}

func TestModalToggled(t *testing.T) {
	next, err := Apply(loggedIn(models.PageDashboard), ModalToggled{Modal: models.ModalSettings, Open: true})
	require.NoError(t, err)
	assert.True(t, next.Modals.Settings)

	_, err = Apply(next, ModalToggled{Modal: "help", Open: true})
	assert.ErrorIs(t, err, ErrUnknownModal)
}
