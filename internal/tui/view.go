package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storycrafter/internal/models"
)

func (m model) View() string {
	s := newStyles(m.st.Theme)

	var body, help string
	switch m.st.Page {
	case models.PageHome:
		body = s.box.Render("Turn requirements into user stories with acceptance criteria.\nLog in or create an account to start crafting.")
		help = "l log in • s sign up • t theme • q quit"
	case models.PageLogin, models.PageSignup:
		body, help = m.authView(s)
	case models.PageEnterName:
		body = lipgloss.JoinVertical(lipgloss.Left,
			"What should we call you?",
			s.input.Render(m.input+"_"),
		)
		help = "enter continue • esc log out"
	case models.PageDashboard:
		body, help = m.dashboardView(s)
	case models.PageChat:
		body, help = m.chatView(s)
	}

	parts := []string{s.title.Render("StoryCrafter Pro"), "", body}
	if c := m.st.Confirmation; c != nil {
		parts = append(parts, "", s.dialog.Render(fmt.Sprintf("%s\n\n%s\n\ny confirm • n cancel", c.Title, c.Message)))
	}
	if m.status != "" {
		parts = append(parts, "", s.errText.Render(m.status))
	}
	parts = append(parts, "", s.subtle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m model) authView(s styles) (string, string) {
	heading, errs, other := "Log in", m.st.LoginErrors, "sign up"
	if m.st.Page == models.PageSignup {
		heading, errs, other = "Create an account", m.st.SignupErrors, "log in"
	}

	field := func(label, value string, focused bool, errText string) string {
		marker := "  "
		if focused {
			marker = "> "
			value += "_"
		}
		line := marker + label + ": " + value
		if errText != "" {
			line += "\n    " + s.errText.Render(errText)
		}
		return line
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.selected.Render(heading),
		"",
		field("Email", m.email, m.focus == 0, errs.Email),
		field("Password", strings.Repeat("*", len([]rune(m.password))), m.focus == 1, errs.Password),
	)
	return s.box.Render(body), "tab switch field • enter submit • ctrl+s " + other + " • esc back"
}

func (m model) dashboardView(s styles) (string, string) {
	name := ""
	if m.st.Session != nil {
		name = m.st.Session.User.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Welcome, %s!\n", name)
	items := m.items()
	if len(items) == 0 {
		b.WriteString("\nNo projects or chats yet.")
	}
	section := models.EntityKind("")
	for i, it := range items {
		if it.kind != section {
			section = it.kind
			if section == models.EntityProject {
				b.WriteString("\nProjects\n")
			} else {
				b.WriteString("\nChats\n")
			}
		}
		line := "  " + it.label
		if i == m.cursor {
			line = s.selected.Render("> " + it.label)
		}
		b.WriteString(line + "\n")
	}

	body := s.box.Render(strings.TrimRight(b.String(), "\n"))
	if m.naming {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "Project name:", s.input.Render(m.input+"_"))
		return body, "enter create • esc cancel"
	}
	return body, "↑↓ move • enter open • n new chat • p new project • d delete • t theme • x log out • q quit"
}

func (m model) chatView(s styles) (string, string) {
	heading := "Chat"
	if p, ok := m.st.ActiveProject(); ok {
		heading = p.Name
	}

	var b strings.Builder
	if chat, ok := m.st.ActiveChat(); ok {
		heading += " / " + chat.Title
		for _, msg := range chat.Messages {
			who := s.bot.Render("StoryCrafter")
			if msg.IsUser {
				who = s.user.Render("You")
			}
			fb := ""
			if msg.Feedback != nil {
				fb = s.subtle.Render(" [" + string(*msg.Feedback) + "]")
			}
			fmt.Fprintf(&b, "%s%s\n%s\n\n", who, fb, msg.Text)
		}
	}
	if m.st.Loading {
		b.WriteString(s.subtle.Render("Crafting your story..."))
	}

	box := s.box
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.selected.Render(heading),
		box.Render(strings.TrimRight(b.String(), "\n")),
		s.input.Render(m.input+"_"),
	)
	return body, "enter send • ctrl+n new chat • ctrl+g/ctrl+b rate answer • esc dashboard"
}
