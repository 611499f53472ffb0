package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"storycrafter/internal/backend"
	"storycrafter/internal/events"
	"storycrafter/internal/models"
	"storycrafter/internal/state"
	"storycrafter/internal/validation"
)

// User-facing messages.
const (
	MsgGreeting         = "Hello! Ready to craft some user stories. What's the requirement?"
	MsgGenerationFailed = "Sorry, I encountered an error while generating the story. Please try again."
	MsgInvalidLogin     = "Invalid email or password."
	MsgEmailRegistered  = "Email is already registered."
	MsgNetworkError     = "Network error or server is unavailable."
	MsgSessionExpired   = "Your session has expired. Please log in again."
)

const DefaultMinLoading = 1500 * time.Millisecond

var ErrNoConfirmation = errors.New("nothing to confirm")

// ControllerOptions tunes a ControllerService. Zero values pick the defaults.
type ControllerOptions struct {
	MinLoading time.Duration
	Log        zerolog.Logger
}

// ControllerService owns the client application state. Views read snapshots through State
// and call the operations below; every operation returns the resulting snapshot.
//
// The state is guarded by mu. Backend calls always run with mu released.
type ControllerService struct {
	context context.Context

	mu       sync.Mutex
	st       state.AppState
	inflight int

	api      backend.StoryBackend
	tokens   TokenStore
	projects ProjectStore
	settings AppSettingsService
	chats    *ChatCache

	minLoading time.Duration
	log        zerolog.Logger
}

func NewControllerService(api backend.StoryBackend, tokens TokenStore, projects ProjectStore, settings AppSettingsService, opts ControllerOptions) *ControllerService {
	if projects == nil {
		projects = NewMemoryProjectStore()
	}
	if opts.MinLoading < 0 {
		opts.MinLoading = 0
	}
	return &ControllerService{
		context:    context.Background(),
		st:         state.Initial(),
		api:        api,
		tokens:     tokens,
		projects:   projects,
		settings:   settings,
		chats:      NewChatCache(),
		minLoading: opts.MinLoading,
		log:        opts.Log.With().Str("component", "controller").Logger(),
	}
}

// Startup captures the shell's context and applies the saved theme.
func (c *ControllerService) Startup(ctx context.Context) {
	c.context = ctx
	if c.settings == nil {
		return
	}
	c.settings.Startup(ctx)
	saved, err := c.settings.Get()
	if err != nil {
		c.log.Warn().Err(err).Msg("could not read app settings")
		return
	}
	if saved.Theme != "" {
		c.apply(state.ThemeChanged{Theme: saved.Theme})
	}
}

// State returns a snapshot of the current state.
func (c *ControllerService) State() state.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Clone()
}

// VisibleChats is the chat list the current screen shows.
func (c *ControllerService) VisibleChats() []models.Chat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Clone().VisibleChats()
}

// apply runs the events in order under the lock, stopping at the first error, then
// publishes the resulting snapshot.
func (c *ControllerService) apply(evs ...state.Event) (state.AppState, error) {
	c.mu.Lock()
	snap, err := c.applyLocked(evs...)
	c.mu.Unlock()
	c.publish(snap)
	return snap, err
}

func (c *ControllerService) applyLocked(evs ...state.Event) (state.AppState, error) {
	for _, ev := range evs {
		next, err := state.Apply(c.st, ev)
		if err != nil {
			return c.st.Clone(), err
		}
		c.st = next
	}
	return c.st.Clone(), nil
}

func (c *ControllerService) publish(snap state.AppState) {
	events.Emit(c.context, events.StateChanged, snap)
}

func (c *ControllerService) notify(n events.Notice) {
	ctx := c.context
	if sess := c.currentSession(); sess != nil {
		ctx = events.WithSession(ctx, sess.User.Email)
	}
	events.Notify(ctx, n)
}

func (c *ControllerService) currentSession() *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.Session == nil {
		return nil
	}
	sess := *c.st.Session
	return &sess
}

// requireSession returns the session or ErrNoSession.
func (c *ControllerService) requireSession() (models.Session, error) {
	sess := c.currentSession()
	if sess == nil {
		return models.Session{}, state.ErrNoSession
	}
	return *sess, nil
}

// Navigate moves to another page if the page machine allows it.
func (c *ControllerService) Navigate(page models.Page) (state.AppState, error) {
	return c.apply(state.Navigated{To: page})
}

// BackToDashboard leaves the chat screen.
func (c *ControllerService) BackToDashboard() (state.AppState, error) {
	return c.Navigate(models.PageDashboard)
}

// Login validates the form, exchanges the credentials for a token and opens the dashboard.
// Validation and authentication failures end up as field errors in the returned state.
func (c *ControllerService) Login(email, password string) (state.AppState, error) {
	if err := c.canEnter(models.PageDashboard); err != nil {
		return c.State(), err
	}
	if errs := validation.Login(email, password); !errs.Empty() {
		return c.apply(state.AuthFailed{Form: models.PageLogin, Errors: errs})
	}

	tok, err := c.api.Authenticate(c.context, email, password)
	if err != nil {
		c.log.Info().Err(err).Msg("login failed")
		msg := MsgInvalidLogin
		if errors.Is(err, backend.ErrUnavailable) {
			msg = MsgNetworkError
		}
		return c.apply(state.AuthFailed{Form: models.PageLogin, Errors: models.FieldErrors{Email: msg}})
	}

	user := models.User{ID: tok.UserID, Email: email, Name: localPart(email)}
	if me, err := c.api.Me(c.context, tok.AccessToken); err == nil {
		user = mergeUser(user, me.ToUser())
	} else {
		c.log.Debug().Err(err).Msg("profile lookup after login failed")
	}
	return c.startSession(models.Session{Token: tok.AccessToken, User: user}, models.PageDashboard)
}

// Signup registers the account, logs in with the same credentials and asks for a name.
func (c *ControllerService) Signup(email, password string) (state.AppState, error) {
	if err := c.canEnter(models.PageEnterName); err != nil {
		return c.State(), err
	}
	if errs := validation.Signup(email, password); !errs.Empty() {
		return c.apply(state.AuthFailed{Form: models.PageSignup, Errors: errs})
	}

	fail := func(msg string) (state.AppState, error) {
		return c.apply(state.AuthFailed{Form: models.PageSignup, Errors: models.FieldErrors{Email: msg}})
	}

	created, err := c.api.Register(c.context, email, password)
	if err != nil {
		c.log.Info().Err(err).Msg("signup failed")
		return fail(signupMessage(err, "An error occurred during signup."))
	}

	tok, err := c.api.Authenticate(c.context, email, password)
	if err != nil {
		c.log.Warn().Err(err).Msg("login after signup failed")
		return fail(signupMessage(err, "Error during login after signup."))
	}

	user := models.User{ID: tok.UserID, Email: created.Email}
	if user.Email == "" {
		user.Email = email
	}
	return c.startSession(models.Session{Token: tok.AccessToken, User: user}, models.PageEnterName)
}

func signupMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrConflict):
		return MsgEmailRegistered
	case errors.Is(err, backend.ErrUnavailable):
		return MsgNetworkError
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		return apiErr.Detail
	}
	return fallback
}

// Restore resumes a session from a persisted token. A rejected token is cleared; an
// unreachable server leaves the token in place for the next start.
func (c *ControllerService) Restore() (state.AppState, error) {
	if c.State().Session != nil {
		return c.State(), nil
	}
	token, err := c.tokens.LoadToken()
	if err != nil {
		c.log.Warn().Err(err).Msg("could not read stored token")
		return c.State(), nil
	}
	if token == "" {
		return c.State(), nil
	}

	me, err := c.api.Me(c.context, token)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			c.log.Info().Msg("stored token rejected, clearing it")
			if err := c.tokens.ClearToken(); err != nil {
				c.log.Warn().Err(err).Msg("could not clear stored token")
			}
		} else {
			c.log.Warn().Err(err).Msg("could not restore session")
		}
		return c.State(), nil
	}

	user := me.ToUser()
	if user.Name == "" {
		user.Name = localPart(user.Email)
	}
	return c.startSession(models.Session{Token: token, User: user}, models.PageDashboard)
}

// startSession installs the session, persists its token and loads projects and chats.
// canEnter rejects a session start the current page could not lead to, before any request
// or keyring write happens.
func (c *ControllerService) canEnter(to models.Page) error {
	if from := c.State().Page; !state.CanTransition(from, to) {
		c.log.Debug().Str("from", string(from)).Str("to", string(to)).Msg("session start rejected")
		return state.ErrInvalidTransition
	}
	return nil
}

func (c *ControllerService) startSession(sess models.Session, to models.Page) (state.AppState, error) {
	if _, err := c.apply(state.SessionStarted{Session: sess, To: to}); err != nil {
		return c.State(), err
	}
	if err := c.tokens.SaveToken(sess.Token); err != nil {
		c.log.Warn().Err(err).Msg("could not persist token")
	}
	c.log.Info().Str("user", sess.User.Email).Str("page", string(to)).Msg("session started")

	if err := c.loadProjects(sess); err != nil {
		c.log.Warn().Err(err).Msg("could not load projects")
	}
	if err := c.reloadChats(sess.Token, false); err != nil {
		c.log.Warn().Err(err).Msg("could not load chats")
	}
	return c.State(), nil
}

// SubmitName finishes onboarding with the chosen display name.
func (c *ControllerService) SubmitName(name string) (state.AppState, error) {
	return c.setName(name)
}

// UpdateProfile changes the display name from the profile dialog.
func (c *ControllerService) UpdateProfile(name string) (state.AppState, error) {
	return c.setName(name)
}

func (c *ControllerService) setName(name string) (state.AppState, error) {
	snap, err := c.apply(state.NameSubmitted{Name: name})
	if err != nil {
		return snap, err
	}
	if snap.Session != nil {
		if _, err := c.api.UpdateMe(c.context, snap.Session.Token, strings.TrimSpace(name)); err != nil {
			c.log.Warn().Err(err).Msg("could not save display name")
		}
	}
	return c.State(), nil
}

// Logout forgets the token and every piece of session state.
func (c *ControllerService) Logout() (state.AppState, error) {
	if err := c.tokens.ClearToken(); err != nil {
		c.log.Warn().Err(err).Msg("could not clear stored token")
	}
	// reloads still in flight belong to the old session
	c.chats.Invalidate()
	snap, err := c.apply(state.LoggedOut{})
	c.log.Info().Msg("logged out")
	return snap, err
}

// handleAuthError forces a logout when err is a 401 and reports whether it did.
func (c *ControllerService) handleAuthError(err error) bool {
	if !errors.Is(err, backend.ErrUnauthorized) {
		return false
	}
	c.log.Info().Msg("session rejected by the story api")
	c.notify(events.NewWarn(MsgSessionExpired))
	_, _ = c.Logout()
	return true
}

// LoadChats invalidates the chat list and reloads it.
func (c *ControllerService) LoadChats() (state.AppState, error) {
	sess, err := c.requireSession()
	if err != nil {
		return c.State(), err
	}
	if err := c.reloadChats(sess.Token, false); err != nil {
		return c.State(), err
	}
	return c.State(), nil
}

// reloadChats refetches every chat. The result is dropped when a newer reload started
// meanwhile or the session changed.
func (c *ControllerService) reloadChats(token string, activateNewest bool) error {
	version := c.chats.Invalidate()
	chats, err := FetchChats(c.context, c.api, token, c.log)
	if err != nil {
		c.handleAuthError(err)
		return err
	}

	c.mu.Lock()
	if !c.chats.Current(version) || c.st.Session == nil || c.st.Session.Token != token {
		c.mu.Unlock()
		c.log.Debug().Uint64("version", version).Msg("dropping stale chat reload")
		return nil
	}
	evs := []state.Event{state.ChatsReplaced{Chats: chats}}
	if activateNewest && len(chats) > 0 {
		evs = append(evs, state.ChatActivated{ChatID: chats[len(chats)-1].ID})
	}
	snap, err := c.applyLocked(evs...)
	c.mu.Unlock()
	c.publish(snap)
	return err
}

func (c *ControllerService) loadProjects(sess models.Session) error {
	projects, err := c.projects.Load(c.context, sess)
	if err != nil {
		c.handleAuthError(err)
		return err
	}
	if projects == nil {
		return nil
	}
	_, err = c.apply(state.ProjectsReplaced{Projects: projects})
	return err
}

// CreateChat creates a chat on the server, seeds the greeting and opens it. Project-scoped
// chats are tagged with the active project.
func (c *ControllerService) CreateChat(isProjectScoped bool) (state.AppState, error) {
	c.mu.Lock()
	if c.st.Session == nil {
		c.mu.Unlock()
		return c.State(), state.ErrNoSession
	}
	token := c.st.Session.Token
	req := backend.ChatRequest{Title: fmt.Sprintf("New Chat %d", len(c.st.Chats)+1)}
	if isProjectScoped && c.st.ActiveProjectID != nil {
		pid := *c.st.ActiveProjectID
		req.ProjectID = &pid
	}
	c.mu.Unlock()

	created, err := c.api.CreateChat(c.context, token, req)
	if err != nil {
		if c.handleAuthError(err) {
			return c.State(), err
		}
		c.log.Error().Err(err).Msg("could not create chat")
		c.notify(events.NewError("Could not create a new chat."))
		return c.State(), fmt.Errorf("create chat: %w", err)
	}

	chat := created.ToChat(nil)
	chat.Messages = []models.Message{{
		ID:        localMessageID(),
		Text:      MsgGreeting,
		IsUser:    false,
		Timestamp: time.Now(),
	}}
	return c.apply(state.ChatAdded{Chat: chat, Activate: true})
}

// SendMessage appends the prompt to the chat and asks the server for a story. On success
// the whole chat list is reloaded and the newest chat activated; on failure an error
// bubble is appended instead. Loading stays on for at least the minimum loading time.
func (c *ControllerService) SendMessage(chatID uint, prompt string) (state.AppState, error) {
	if strings.TrimSpace(prompt) == "" {
		return c.State(), nil
	}

	started := time.Now()
	c.mu.Lock()
	if c.st.Session == nil {
		c.mu.Unlock()
		return c.State(), state.ErrNoSession
	}
	token := c.st.Session.Token
	snap, err := c.applyLocked(
		state.MessageAppended{ChatID: chatID, Message: models.Message{
			ID:        localMessageID(),
			Text:      prompt,
			IsUser:    true,
			Timestamp: started,
		}},
		state.LoadingChanged{Loading: true},
	)
	if err != nil {
		c.mu.Unlock()
		return snap, err
	}
	c.inflight++
	c.mu.Unlock()
	c.publish(snap)

	c.generate(token, chatID, prompt)
	c.finishLoading(started)
	return c.State(), nil
}

func (c *ControllerService) generate(token string, chatID uint, prompt string) {
	if _, err := c.api.GenerateStory(c.context, token, prompt); err != nil {
		if c.handleAuthError(err) {
			return
		}
		c.log.Error().Err(err).Uint("chat_id", chatID).Msg("story generation failed")
		if _, err := c.apply(state.MessageAppended{ChatID: chatID, Message: models.Message{
			ID:        localMessageID(),
			Text:      MsgGenerationFailed,
			IsUser:    false,
			Timestamp: time.Now(),
		}}); err != nil {
			c.log.Debug().Err(err).Msg("chat gone before the error could be shown")
		}
		return
	}

	if err := c.reloadChats(token, true); err != nil && !errors.Is(err, backend.ErrUnauthorized) {
		c.log.Warn().Err(err).Msg("could not reload chats after generation")
	}
}

// finishLoading clears the loading flag once the last in-flight send is done, but not
// before minLoading has passed since started.
func (c *ControllerService) finishLoading(started time.Time) {
	if wait := c.minLoading - time.Since(started); wait > 0 {
		t := time.NewTimer(wait)
		select {
		case <-t.C:
		case <-c.context.Done():
			t.Stop()
		}
	}
	c.mu.Lock()
	c.inflight--
	if c.inflight > 0 {
		c.mu.Unlock()
		return
	}
	snap, _ := c.applyLocked(state.LoadingChanged{Loading: false})
	c.mu.Unlock()
	c.publish(snap)
}

// SelectProject opens a project: its first chat if it has one, otherwise a new
// project-scoped chat.
func (c *ControllerService) SelectProject(id uint) (state.AppState, error) {
	snap, err := c.apply(state.ProjectActivated{ProjectID: &id})
	if err != nil {
		return snap, err
	}
	if existing := snap.ProjectChats(id); len(existing) > 0 {
		return c.apply(state.ChatSelected{ChatID: existing[0].ID})
	}
	return c.CreateChat(true)
}

// SelectChat opens a chat together with its project.
func (c *ControllerService) SelectChat(id uint) (state.AppState, error) {
	return c.apply(state.ChatSelected{ChatID: id})
}

// ContinueWithoutProject starts an unscoped chat.
func (c *ControllerService) ContinueWithoutProject() (state.AppState, error) {
	if _, err := c.apply(state.ProjectActivated{ProjectID: nil}); err != nil {
		return c.State(), err
	}
	return c.CreateChat(false)
}

// NewProject saves a project and opens it. An unscoped active chat is moved into the new
// project; otherwise a fresh project chat is created.
func (c *ControllerService) NewProject(in models.ProjectInput) (state.AppState, error) {
	sess, err := c.requireSession()
	if err != nil {
		return c.State(), err
	}
	p, err := c.projects.Create(c.context, sess, in)
	if err != nil {
		c.handleAuthError(err)
		return c.State(), err
	}

	snap, err := c.apply(state.ProjectAdded{Project: p}, state.ProjectActivated{ProjectID: &p.ID})
	if err != nil {
		return snap, err
	}
	if active, ok := snap.ActiveChat(); ok && active.ProjectID == nil {
		return c.apply(
			state.ChatRetagged{ChatID: active.ID, ProjectID: p.ID, Title: p.Name + " - Chat 1"},
			state.Navigated{To: models.PageChat},
		)
	}
	return c.CreateChat(true)
}

// UpdateProject saves edits from the project details dialog.
func (c *ControllerService) UpdateProject(p models.Project) (state.AppState, error) {
	p.Name = strings.TrimSpace(p.Name)
	snap, err := c.apply(state.ProjectUpdated{Project: p})
	if err != nil {
		return snap, err
	}
	c.mirrorProject(snap, p.ID)
	return snap, nil
}

func (c *ControllerService) mirrorProject(snap state.AppState, id uint) {
	if snap.Session == nil {
		return
	}
	p, ok := snap.FindProject(id)
	if !ok {
		return
	}
	if err := c.projects.Update(c.context, *snap.Session, p); err != nil {
		c.log.Warn().Err(err).Uint("project_id", id).Msg("could not persist project")
	}
}

// RenameEntity renames a chat or project locally.
func (c *ControllerService) RenameEntity(kind models.EntityKind, id uint, name string) (state.AppState, error) {
	snap, err := c.apply(state.EntityRenamed{Kind: kind, ID: id, Name: name})
	if err != nil {
		return snap, err
	}
	if kind == models.EntityProject {
		c.mirrorProject(snap, id)
	}
	return snap, nil
}

// DeleteEntity removes a chat, or a project with all of its chats, locally.
func (c *ControllerService) DeleteEntity(kind models.EntityKind, id uint) (state.AppState, error) {
	snap, err := c.apply(state.EntityDeleted{Kind: kind, ID: id})
	if err != nil {
		return snap, err
	}
	if kind == models.EntityProject && snap.Session != nil {
		if err := c.projects.Delete(c.context, *snap.Session, id); err != nil {
			c.log.Warn().Err(err).Uint("project_id", id).Msg("could not delete stored project")
		}
	}
	return snap, nil
}

// RequestRename opens the rename dialog for a chat or project.
func (c *ControllerService) RequestRename(kind models.EntityKind, id uint) (state.AppState, error) {
	snap := c.State()
	var current string
	switch kind {
	case models.EntityChat:
		chat, ok := snap.FindChat(id)
		if !ok {
			return snap, state.ErrChatNotFound
		}
		current = chat.Title
	case models.EntityProject:
		p, ok := snap.FindProject(id)
		if !ok {
			return snap, state.ErrProjectNotFound
		}
		current = p.Name
	default:
		return snap, state.ErrUnknownEntity
	}
	return c.apply(state.RenameRequested{Rename: &models.RenameRequest{Kind: kind, ID: id, CurrentName: current}})
}

// RequestDelete asks for confirmation before deleting a chat or project.
func (c *ControllerService) RequestDelete(kind models.EntityKind, id uint) (state.AppState, error) {
	var conf models.Confirmation
	switch kind {
	case models.EntityChat:
		conf = models.Confirmation{
			Action:   models.ConfirmDeleteChat,
			Title:    "Delete Chat",
			Message:  "Are you sure you want to delete this chat?",
			TargetID: id,
		}
	case models.EntityProject:
		conf = models.Confirmation{
			Action:   models.ConfirmDeleteProject,
			Title:    "Delete Project",
			Message:  "Are you sure you want to delete this project and all its chats?",
			TargetID: id,
		}
	default:
		return c.State(), state.ErrUnknownEntity
	}
	return c.apply(state.ConfirmationRequested{Confirmation: &conf})
}

func (c *ControllerService) RequestDeleteAllChats() (state.AppState, error) {
	return c.apply(state.ConfirmationRequested{Confirmation: &models.Confirmation{
		Action:  models.ConfirmDeleteAllChats,
		Title:   "Delete All Chats",
		Message: "Are you sure you want to delete all your chat history? This action cannot be undone.",
	}})
}

func (c *ControllerService) RequestDeleteAccount() (state.AppState, error) {
	return c.apply(state.ConfirmationRequested{Confirmation: &models.Confirmation{
		Action:  models.ConfirmDeleteAccount,
		Title:   "Delete Account",
		Message: "Are you sure you want to permanently delete your account and all associated data?",
	}})
}

// Confirm runs the pending confirmation.
func (c *ControllerService) Confirm() (state.AppState, error) {
	snap := c.State()
	if snap.Confirmation == nil {
		return snap, ErrNoConfirmation
	}
	switch conf := *snap.Confirmation; conf.Action {
	case models.ConfirmDeleteChat:
		return c.DeleteEntity(models.EntityChat, conf.TargetID)
	case models.ConfirmDeleteProject:
		return c.DeleteEntity(models.EntityProject, conf.TargetID)
	case models.ConfirmDeleteAllChats:
		return c.DeleteAllChats()
	case models.ConfirmDeleteAccount:
		return c.DeleteAccount()
	default:
		return c.apply(state.ConfirmationRequested{Confirmation: nil})
	}
}

// Cancel dismisses the confirmation and rename dialogs.
func (c *ControllerService) Cancel() (state.AppState, error) {
	return c.apply(state.ConfirmationRequested{Confirmation: nil}, state.RenameRequested{Rename: nil})
}

// DeleteAllChats clears the chat history on this client.
func (c *ControllerService) DeleteAllChats() (state.AppState, error) {
	return c.apply(state.AllChatsDeleted{})
}

// DeleteAccount signs the user out. The Story API has no account deletion endpoint.
func (c *ControllerService) DeleteAccount() (state.AppState, error) {
	return c.Logout()
}

// GiveFeedback toggles a good/bad rating on a message.
func (c *ControllerService) GiveFeedback(chatID uint, messageID string, label models.Feedback) (state.AppState, error) {
	return c.apply(state.FeedbackToggled{ChatID: chatID, MessageID: messageID, Label: label})
}

func (c *ControllerService) OpenModal(name models.Modal) (state.AppState, error) {
	return c.apply(state.ModalToggled{Modal: name, Open: true})
}

func (c *ControllerService) CloseModal(name models.Modal) (state.AppState, error) {
	return c.apply(state.ModalToggled{Modal: name, Open: false})
}

// SetTheme switches and persists the theme.
func (c *ControllerService) SetTheme(theme string) (state.AppState, error) {
	if c.settings != nil {
		if _, err := c.settings.SetTheme(theme); err != nil {
			return c.State(), err
		}
	} else if !models.ValidTheme(theme) {
		return c.State(), errors.New("theme must be 'light', 'dark', or 'system'")
	}
	return c.apply(state.ThemeChanged{Theme: theme})
}

func localMessageID() string {
	return "local-" + uuid.NewString()
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

// mergeUser prefers the server's profile fields when they are set.
func mergeUser(base, server models.User) models.User {
	if server.ID != 0 {
		base.ID = server.ID
	}
	if server.Email != "" {
		base.Email = server.Email
	}
	if server.Name != "" {
		base.Name = server.Name
	}
	return base
}
