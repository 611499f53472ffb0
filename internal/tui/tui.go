// Package tui renders the application state in the terminal and forwards key presses to
// the controller. It holds no application state of its own beyond form input.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"storycrafter/internal/events"
	"storycrafter/internal/models"
	"storycrafter/internal/state"
)

// Controller is the part of the application controller the terminal client drives.
type Controller interface {
	State() state.AppState
	Restore() (state.AppState, error)
	Navigate(page models.Page) (state.AppState, error)
	BackToDashboard() (state.AppState, error)
	Login(email, password string) (state.AppState, error)
	Signup(email, password string) (state.AppState, error)
	SubmitName(name string) (state.AppState, error)
	Logout() (state.AppState, error)
	SelectProject(id uint) (state.AppState, error)
	SelectChat(id uint) (state.AppState, error)
	ContinueWithoutProject() (state.AppState, error)
	NewProject(in models.ProjectInput) (state.AppState, error)
	CreateChat(isProjectScoped bool) (state.AppState, error)
	SendMessage(chatID uint, prompt string) (state.AppState, error)
	GiveFeedback(chatID uint, messageID string, label models.Feedback) (state.AppState, error)
	RequestDelete(kind models.EntityKind, id uint) (state.AppState, error)
	Confirm() (state.AppState, error)
	Cancel() (state.AppState, error)
	SetTheme(theme string) (state.AppState, error)
}

// stateMsg carries a controller snapshot into the update loop.
type stateMsg struct {
	st  state.AppState
	err error
}

// dashboard rows: projects first, then chats without a project
type item struct {
	kind  models.EntityKind
	id    uint
	label string
}

type model struct {
	ctl Controller
	st  state.AppState

	email    string
	password string
	focus    int // 0 email, 1 password
	input    string
	naming   bool
	cursor   int
	status   string
	width    int
}

func newModel(ctl Controller) model {
	return model{ctl: ctl, st: ctl.State()}
}

// Run starts the terminal UI and blocks until the user quits. Intermediate controller
// snapshots (such as the loading flag during generation) are streamed into the UI.
func Run(ctl Controller) error {
	p := tea.NewProgram(newModel(ctl), tea.WithAltScreen())
	events.SetCustomEmitter(func(_ context.Context, name string, payload any) {
		if snap, ok := payload.(state.AppState); ok && name == events.StateChanged {
			p.Send(stateMsg{st: snap})
		}
	})
	defer events.SetCustomEmitter(nil)

	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return m.run(m.ctl.Restore)
}

func (m model) run(op func() (state.AppState, error)) tea.Cmd {
	return func() tea.Msg {
		st, err := op()
		return stateMsg{st: st, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		if msg.st.Page != m.st.Page {
			m.email, m.password, m.input, m.focus, m.naming = "", "", "", 0, false
		}
		m.st = msg.st
		m.status = ""
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		if n := len(m.items()); m.cursor >= n {
			m.cursor = max(n-1, 0)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.st.Confirmation != nil {
			return m.handleConfirmKeys(msg)
		}
		switch m.st.Page {
		case models.PageHome:
			return m.handleHomeKeys(msg)
		case models.PageLogin, models.PageSignup:
			return m.handleAuthKeys(msg)
		case models.PageEnterName:
			return m.handleNameKeys(msg)
		case models.PageDashboard:
			return m.handleDashboardKeys(msg)
		case models.PageChat:
			return m.handleChatKeys(msg)
		}
	}
	return m, nil
}

func (m model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		return m, m.run(m.ctl.Confirm)
	case "n", "esc":
		return m, m.run(m.ctl.Cancel)
	}
	return m, nil
}

func (m model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		return m, m.run(func() (state.AppState, error) { return m.ctl.Navigate(models.PageLogin) })
	case "s":
		return m, m.run(func() (state.AppState, error) { return m.ctl.Navigate(models.PageSignup) })
	case "t":
		return m, m.toggleTheme()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, m.run(func() (state.AppState, error) { return m.ctl.Navigate(models.PageHome) })
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.focus = 1 - m.focus
		return m, nil
	case tea.KeyCtrlS:
		other := models.PageSignup
		if m.st.Page == models.PageSignup {
			other = models.PageLogin
		}
		return m, m.run(func() (state.AppState, error) { return m.ctl.Navigate(other) })
	case tea.KeyEnter:
		if m.focus == 0 {
			m.focus = 1
			return m, nil
		}
		email, password := m.email, m.password
		m.password = ""
		if m.st.Page == models.PageSignup {
			return m, m.run(func() (state.AppState, error) { return m.ctl.Signup(email, password) })
		}
		return m, m.run(func() (state.AppState, error) { return m.ctl.Login(email, password) })
	}
	if m.focus == 0 {
		m.email = editText(m.email, msg)
	} else {
		m.password = editText(m.password, msg)
	}
	return m, nil
}

func (m model) handleNameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := m.input
		return m, m.run(func() (state.AppState, error) { return m.ctl.SubmitName(name) })
	case tea.KeyEsc:
		return m, m.run(m.ctl.Logout)
	}
	m.input = editText(m.input, msg)
	return m, nil
}

func (m model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.naming {
		switch msg.Type {
		case tea.KeyEnter:
			name := m.input
			m.naming, m.input = false, ""
			return m, m.run(func() (state.AppState, error) {
				return m.ctl.NewProject(models.ProjectInput{Name: name})
			})
		case tea.KeyEsc:
			m.naming, m.input = false, ""
			return m, nil
		}
		m.input = editText(m.input, msg)
		return m, nil
	}

	items := m.items()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(items) {
			it := items[m.cursor]
			if it.kind == models.EntityProject {
				return m, m.run(func() (state.AppState, error) { return m.ctl.SelectProject(it.id) })
			}
			return m, m.run(func() (state.AppState, error) { return m.ctl.SelectChat(it.id) })
		}
	case "n":
		return m, m.run(m.ctl.ContinueWithoutProject)
	case "p":
		m.naming, m.input = true, ""
	case "d":
		if m.cursor < len(items) {
			it := items[m.cursor]
			return m, m.run(func() (state.AppState, error) { return m.ctl.RequestDelete(it.kind, it.id) })
		}
	case "t":
		return m, m.toggleTheme()
	case "x":
		return m, m.run(m.ctl.Logout)
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chat, ok := m.st.ActiveChat()
	switch msg.Type {
	case tea.KeyEsc:
		return m, m.run(m.ctl.BackToDashboard)
	case tea.KeyCtrlN:
		scoped := m.st.ActiveProjectID != nil
		return m, m.run(func() (state.AppState, error) { return m.ctl.CreateChat(scoped) })
	case tea.KeyCtrlG, tea.KeyCtrlB:
		label := models.FeedbackGood
		if msg.Type == tea.KeyCtrlB {
			label = models.FeedbackBad
		}
		if id, found := lastBotMessage(chat); ok && found {
			return m, m.run(func() (state.AppState, error) { return m.ctl.GiveFeedback(chat.ID, id, label) })
		}
		return m, nil
	case tea.KeyEnter:
		if !ok || m.st.Loading || strings.TrimSpace(m.input) == "" {
			return m, nil
		}
		prompt := m.input
		m.input = ""
		return m, m.run(func() (state.AppState, error) { return m.ctl.SendMessage(chat.ID, prompt) })
	}
	m.input = editText(m.input, msg)
	return m, nil
}

func (m model) toggleTheme() tea.Cmd {
	next := "light"
	if m.st.Theme == "light" {
		next = "dark"
	}
	return m.run(func() (state.AppState, error) { return m.ctl.SetTheme(next) })
}

func (m model) items() []item {
	if m.st.Page != models.PageDashboard {
		return nil
	}
	var out []item
	for _, p := range m.st.Projects {
		out = append(out, item{kind: models.EntityProject, id: p.ID, label: p.Name})
	}
	for _, c := range m.st.VisibleChats() {
		out = append(out, item{kind: models.EntityChat, id: c.ID, label: c.Title})
	}
	return out
}

func lastBotMessage(c models.Chat) (string, bool) {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if !c.Messages[i].IsUser {
			return c.Messages[i].ID, true
		}
	}
	return "", false
}

func editText(s string, msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(s); len(r) > 0 {
			return string(r[:len(r)-1])
		}
	case tea.KeySpace:
		return s + " "
	case tea.KeyRunes:
		return s + string(msg.Runes)
	}
	return s
}
