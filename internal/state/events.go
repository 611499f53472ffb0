package state

import (
	"strings"

	"storycrafter/internal/models"
)

// Event is a state transition. The set is closed: only this package defines events.
type Event interface {
	apply(s AppState) (AppState, error)
}

// Navigated moves to another page when the page machine allows it.
type Navigated struct {
	To models.Page
}

func (e Navigated) apply(s AppState) (AppState, error) {
	if !CanTransition(s.Page, e.To) {
		return s, ErrInvalidTransition
	}
	switch e.To {
	case models.PageHome:
		if s.Session != nil && s.Page != models.PageHome {
			// leaving an authenticated screen goes through LoggedOut
			return s, ErrInvalidTransition
		}
	case models.PageLogin:
		s.LoginErrors = models.FieldErrors{}
	case models.PageSignup:
		s.SignupErrors = models.FieldErrors{}
	case models.PageDashboard, models.PageChat, models.PageEnterName:
		if s.Session == nil {
			return s, ErrNoSession
		}
	}
	s.Page = e.To
	return s, nil
}

// AuthFailed records inline errors on the login or signup form.
type AuthFailed struct {
	Form   models.Page
	Errors models.FieldErrors
}

func (e AuthFailed) apply(s AppState) (AppState, error) {
	switch e.Form {
	case models.PageLogin:
		s.LoginErrors = e.Errors
	case models.PageSignup:
		s.SignupErrors = e.Errors
	default:
		return s, ErrInvalidTransition
	}
	return s, nil
}

// SessionStarted installs an authenticated session and moves to the page that follows
// authentication (dashboard after login or restore, enterName after signup).
type SessionStarted struct {
	Session models.Session
	To      models.Page
}

func (e SessionStarted) apply(s AppState) (AppState, error) {
	if !CanTransition(s.Page, e.To) {
		return s, ErrInvalidTransition
	}
	sess := e.Session
	s.Session = &sess
	if e.To == models.PageEnterName {
		s.SignupEmail = sess.User.Email
	}
	s.LoginErrors = models.FieldErrors{}
	s.SignupErrors = models.FieldErrors{}
	s.Page = e.To
	return s, nil
}

// NameSubmitted sets the display name. On the enterName screen it also finishes
// onboarding and shows the dashboard.
type NameSubmitted struct {
	Name string
}

func (e NameSubmitted) apply(s AppState) (AppState, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return s, ErrBlankName
	}
	if s.Session == nil {
		return s, ErrNoSession
	}
	s.Session.User.Name = name
	s.Modals.Profile = false
	if s.Page == models.PageEnterName {
		s.SignupEmail = ""
		s.Page = models.PageDashboard
	}
	return s, nil
}

// LoggedOut drops every piece of session data and returns home. The theme survives.
type LoggedOut struct{}

func (LoggedOut) apply(s AppState) (AppState, error) {
	next := Initial()
	if s.Theme != "" {
		next.Theme = s.Theme
	}
	return next, nil
}

// ChatsReplaced swaps the whole chat collection for a freshly fetched one.
type ChatsReplaced struct {
	Chats []models.Chat
}

func (e ChatsReplaced) apply(s AppState) (AppState, error) {
	s.Chats = make([]models.Chat, len(e.Chats))
	for i, c := range e.Chats {
		s.Chats[i] = c.Clone()
	}
	if s.ActiveChatID != nil && s.chatIndex(*s.ActiveChatID) < 0 {
		s.ActiveChatID = nil
	}
	return s, nil
}

// ChatAdded appends a chat. With Activate set it becomes the active chat and the chat
// screen is shown.
type ChatAdded struct {
	Chat     models.Chat
	Activate bool
}

func (e ChatAdded) apply(s AppState) (AppState, error) {
	if s.Session == nil {
		return s, ErrNoSession
	}
	if e.Activate && !CanTransition(s.Page, models.PageChat) {
		return s, ErrInvalidTransition
	}
	s.Chats = append(s.Chats, e.Chat.Clone())
	if e.Activate {
		s.ActiveChatID = idPtr(e.Chat.ID)
		s.Page = models.PageChat
	}
	return s, nil
}

// ChatActivated selects a chat without touching the project selection.
type ChatActivated struct {
	ChatID uint
}

func (e ChatActivated) apply(s AppState) (AppState, error) {
	if s.chatIndex(e.ChatID) < 0 {
		return s, ErrChatNotFound
	}
	s.ActiveChatID = idPtr(e.ChatID)
	return s, nil
}

// ChatSelected opens a chat from a list: the chat's project (when known) becomes the
// active project and the chat screen is shown.
type ChatSelected struct {
	ChatID uint
}

func (e ChatSelected) apply(s AppState) (AppState, error) {
	i := s.chatIndex(e.ChatID)
	if i < 0 {
		return s, ErrChatNotFound
	}
	if !CanTransition(s.Page, models.PageChat) {
		return s, ErrInvalidTransition
	}
	chat := s.Chats[i]
	s.ActiveProjectID = nil
	if chat.ProjectID != nil {
		if _, ok := s.FindProject(*chat.ProjectID); ok {
			s.ActiveProjectID = idPtr(*chat.ProjectID)
		}
	}
	s.ActiveChatID = idPtr(e.ChatID)
	s.Page = models.PageChat
	return s, nil
}

// MessageAppended adds a bubble at the end of a chat.
type MessageAppended struct {
	ChatID  uint
	Message models.Message
}

func (e MessageAppended) apply(s AppState) (AppState, error) {
	i := s.chatIndex(e.ChatID)
	if i < 0 {
		return s, ErrChatNotFound
	}
	s.Chats[i].Messages = append(s.Chats[i].Messages, e.Message)
	return s, nil
}

// ChatRetagged moves a chat into a project and renames it.
type ChatRetagged struct {
	ChatID    uint
	ProjectID uint
	Title     string
}

func (e ChatRetagged) apply(s AppState) (AppState, error) {
	i := s.chatIndex(e.ChatID)
	if i < 0 {
		return s, ErrChatNotFound
	}
	s.Chats[i].ProjectID = idPtr(e.ProjectID)
	if e.Title != "" {
		s.Chats[i].Title = e.Title
	}
	return s, nil
}

// ProjectActivated changes the active project; a nil id clears it.
type ProjectActivated struct {
	ProjectID *uint
}

func (e ProjectActivated) apply(s AppState) (AppState, error) {
	if e.ProjectID == nil {
		s.ActiveProjectID = nil
		return s, nil
	}
	if _, ok := s.FindProject(*e.ProjectID); !ok {
		return s, ErrProjectNotFound
	}
	s.ActiveProjectID = idPtr(*e.ProjectID)
	return s, nil
}

// ProjectAdded appends a project and closes the new-project dialog.
type ProjectAdded struct {
	Project models.Project
}

func (e ProjectAdded) apply(s AppState) (AppState, error) {
	if s.Session == nil {
		return s, ErrNoSession
	}
	s.Projects = append(s.Projects, e.Project)
	s.Modals.NewProject = false
	return s, nil
}

// ProjectsReplaced swaps the project list for the one loaded from the project store.
type ProjectsReplaced struct {
	Projects []models.Project
}

func (e ProjectsReplaced) apply(s AppState) (AppState, error) {
	s.Projects = append([]models.Project(nil), e.Projects...)
	if s.ActiveProjectID != nil {
		if _, ok := s.FindProject(*s.ActiveProjectID); !ok {
			s.ActiveProjectID = nil
		}
	}
	return s, nil
}

// ProjectUpdated replaces a project's fields with edited ones.
type ProjectUpdated struct {
	Project models.Project
}

func (e ProjectUpdated) apply(s AppState) (AppState, error) {
	if strings.TrimSpace(e.Project.Name) == "" {
		return s, ErrBlankName
	}
	for i, p := range s.Projects {
		if p.ID == e.Project.ID {
			s.Projects[i] = e.Project
			return s, nil
		}
	}
	return s, ErrProjectNotFound
}

// EntityRenamed renames a chat or project.
type EntityRenamed struct {
	Kind models.EntityKind
	ID   uint
	Name string
}

func (e EntityRenamed) apply(s AppState) (AppState, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return s, ErrBlankName
	}
	switch e.Kind {
	case models.EntityChat:
		i := s.chatIndex(e.ID)
		if i < 0 {
			return s, ErrChatNotFound
		}
		s.Chats[i].Title = name
	case models.EntityProject:
		found := false
		for i := range s.Projects {
			if s.Projects[i].ID == e.ID {
				s.Projects[i].Name = name
				found = true
				break
			}
		}
		if !found {
			return s, ErrProjectNotFound
		}
	default:
		return s, ErrUnknownEntity
	}
	s.Rename = nil
	return s, nil
}

// EntityDeleted removes a chat, or a project together with all of its chats.
type EntityDeleted struct {
	Kind models.EntityKind
	ID   uint
}

func (e EntityDeleted) apply(s AppState) (AppState, error) {
	switch e.Kind {
	case models.EntityChat:
		i := s.chatIndex(e.ID)
		if i < 0 {
			return s, ErrChatNotFound
		}
		s.Chats = append(s.Chats[:i], s.Chats[i+1:]...)
	case models.EntityProject:
		kept := s.Projects[:0]
		found := false
		for _, p := range s.Projects {
			if p.ID == e.ID {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		if !found {
			return s, ErrProjectNotFound
		}
		s.Projects = kept
		chats := s.Chats[:0]
		for _, c := range s.Chats {
			if !c.InProject(e.ID) {
				chats = append(chats, c)
			}
		}
		s.Chats = chats
		if s.ActiveProjectID != nil && *s.ActiveProjectID == e.ID {
			s.ActiveProjectID = nil
		}
	default:
		return s, ErrUnknownEntity
	}
	if s.ActiveChatID != nil && s.chatIndex(*s.ActiveChatID) < 0 {
		s.ActiveChatID = nil
	}
	s.Confirmation = nil
	return s, nil
}

// AllChatsDeleted clears the local chat history.
type AllChatsDeleted struct{}

func (AllChatsDeleted) apply(s AppState) (AppState, error) {
	s.Chats = nil
	s.ActiveChatID = nil
	s.Confirmation = nil
	s.Modals.Settings = false
	return s, nil
}

// FeedbackToggled flips a message's rating: setting the same label twice clears it.
type FeedbackToggled struct {
	ChatID    uint
	MessageID string
	Label     models.Feedback
}

func (e FeedbackToggled) apply(s AppState) (AppState, error) {
	if !e.Label.Valid() {
		return s, ErrInvalidFeedback
	}
	i := s.chatIndex(e.ChatID)
	if i < 0 {
		return s, ErrChatNotFound
	}
	for j := range s.Chats[i].Messages {
		msg := &s.Chats[i].Messages[j]
		if msg.ID != e.MessageID {
			continue
		}
		if msg.Feedback != nil && *msg.Feedback == e.Label {
			msg.Feedback = nil
		} else {
			label := e.Label
			msg.Feedback = &label
		}
		return s, nil
	}
	return s, ErrMessageNotFound
}

// ModalToggled opens or closes one of the simple dialogs.
type ModalToggled struct {
	Modal models.Modal
	Open  bool
}

func (e ModalToggled) apply(s AppState) (AppState, error) {
	switch e.Modal {
	case models.ModalNewProject:
		s.Modals.NewProject = e.Open
	case models.ModalProfile:
		s.Modals.Profile = e.Open
	case models.ModalSettings:
		s.Modals.Settings = e.Open
	default:
		return s, ErrUnknownModal
	}
	return s, nil
}

// ConfirmationRequested shows the confirmation dialog; a nil value hides it.
type ConfirmationRequested struct {
	Confirmation *models.Confirmation
}

func (e ConfirmationRequested) apply(s AppState) (AppState, error) {
	if e.Confirmation == nil {
		s.Confirmation = nil
		return s, nil
	}
	c := *e.Confirmation
	s.Confirmation = &c
	return s, nil
}

// RenameRequested shows the rename dialog; a nil value hides it.
type RenameRequested struct {
	Rename *models.RenameRequest
}

func (e RenameRequested) apply(s AppState) (AppState, error) {
	if e.Rename == nil {
		s.Rename = nil
		return s, nil
	}
	r := *e.Rename
	s.Rename = &r
	return s, nil
}

// ThemeChanged records the active theme.
type ThemeChanged struct {
	Theme string
}

func (e ThemeChanged) apply(s AppState) (AppState, error) {
	s.Theme = e.Theme
	return s, nil
}

// LoadingChanged toggles the chat screen's loading indicator.
type LoadingChanged struct {
	Loading bool
}

func (e LoadingChanged) apply(s AppState) (AppState, error) {
	s.Loading = e.Loading
	return s, nil
}
