// Package state holds the client application state and the pure transitions
// applied to it. Nothing in this package performs I/O.
package state

import (
	"errors"

	"storycrafter/internal/models"
)

var (
	ErrInvalidTransition = errors.New("invalid page transition")
	ErrNoSession         = errors.New("no active session")
	ErrChatNotFound      = errors.New("chat not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrMessageNotFound   = errors.New("message not found")
	ErrBlankName         = errors.New("name is required")
	ErrUnknownEntity     = errors.New("unknown entity kind")
	ErrUnknownModal      = errors.New("unknown modal")
	ErrInvalidFeedback   = errors.New("feedback must be 'good' or 'bad'")
)

const DefaultTheme = models.ThemeDark

// AppState is everything the views need to render a screen.
type AppState struct {
	Page            models.Page           `json:"page"`
	Session         *models.Session       `json:"session,omitempty"`
	SignupEmail     string                `json:"signupEmail,omitempty"`
	Projects        []models.Project      `json:"projects"`
	Chats           []models.Chat         `json:"chats"`
	ActiveProjectID *uint                 `json:"activeProjectId,omitempty"`
	ActiveChatID    *uint                 `json:"activeChatId,omitempty"`
	Modals          models.Modals         `json:"modals"`
	Confirmation    *models.Confirmation  `json:"confirmation,omitempty"`
	Rename          *models.RenameRequest `json:"rename,omitempty"`
	Theme           string                `json:"theme"`
	LoginErrors     models.FieldErrors    `json:"loginErrors"`
	SignupErrors    models.FieldErrors    `json:"signupErrors"`
	Loading         bool                  `json:"loading"`
}

// Initial returns the state of a freshly started application.
func Initial() AppState {
	return AppState{Page: models.PageHome, Theme: DefaultTheme}
}

var transitions = map[models.Page][]models.Page{
	models.PageHome:      {models.PageLogin, models.PageSignup, models.PageDashboard},
	models.PageLogin:     {models.PageSignup, models.PageHome, models.PageDashboard},
	models.PageSignup:    {models.PageLogin, models.PageHome, models.PageEnterName},
	models.PageEnterName: {models.PageDashboard, models.PageHome},
	models.PageDashboard: {models.PageChat, models.PageHome},
	models.PageChat:      {models.PageDashboard, models.PageHome},
}

// CanTransition reports whether the page machine allows moving from one page to another.
// Staying on the same page is always allowed.
func CanTransition(from, to models.Page) bool {
	if from == to {
		return to.Valid()
	}
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Apply runs e against a copy of s. On error the original state is returned unchanged.
func Apply(s AppState, e Event) (AppState, error) {
	next, err := e.apply(s.Clone())
	if err != nil {
		return s, err
	}
	return next, nil
}

// Clone deep-copies the state so callers can hand snapshots to views.
func (s AppState) Clone() AppState {
	out := s
	if s.Session != nil {
		sess := *s.Session
		out.Session = &sess
	}
	if s.Projects != nil {
		out.Projects = append([]models.Project(nil), s.Projects...)
	}
	if s.Chats != nil {
		out.Chats = make([]models.Chat, len(s.Chats))
		for i, c := range s.Chats {
			out.Chats[i] = c.Clone()
		}
	}
	out.ActiveProjectID = copyID(s.ActiveProjectID)
	out.ActiveChatID = copyID(s.ActiveChatID)
	if s.Confirmation != nil {
		c := *s.Confirmation
		out.Confirmation = &c
	}
	if s.Rename != nil {
		r := *s.Rename
		out.Rename = &r
	}
	return out
}

// ActiveChat returns the selected chat, if any.
func (s AppState) ActiveChat() (models.Chat, bool) {
	if s.ActiveChatID == nil {
		return models.Chat{}, false
	}
	return s.FindChat(*s.ActiveChatID)
}

// ActiveProject returns the selected project, if any.
func (s AppState) ActiveProject() (models.Project, bool) {
	if s.ActiveProjectID == nil {
		return models.Project{}, false
	}
	return s.FindProject(*s.ActiveProjectID)
}

func (s AppState) FindChat(id uint) (models.Chat, bool) {
	if i := s.chatIndex(id); i >= 0 {
		return s.Chats[i], true
	}
	return models.Chat{}, false
}

func (s AppState) FindProject(id uint) (models.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// VisibleChats is the chat list the current screen shows: the active project's chats
// on the chat screen, and chats without a project otherwise.
func (s AppState) VisibleChats() []models.Chat {
	out := make([]models.Chat, 0, len(s.Chats))
	for _, c := range s.Chats {
		if s.Page == models.PageChat && s.ActiveProjectID != nil {
			if c.InProject(*s.ActiveProjectID) {
				out = append(out, c)
			}
			continue
		}
		if c.ProjectID == nil {
			out = append(out, c)
		}
	}
	return out
}

// ProjectChats lists the chats tagged with the given project.
func (s AppState) ProjectChats(projectID uint) []models.Chat {
	var out []models.Chat
	for _, c := range s.Chats {
		if c.InProject(projectID) {
			out = append(out, c)
		}
	}
	return out
}

func (s AppState) chatIndex(id uint) int {
	for i, c := range s.Chats {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func idPtr(id uint) *uint {
	return &id
}
