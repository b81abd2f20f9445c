package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rezapahlevi/kaludra/internal/app"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// LoginModel is the credential prompt shown before any data screen
type LoginModel struct {
	app        *app.App
	fields     []textinput.Model
	fieldFocus int
	err        error
}

type loginResultMsg struct {
	err error
}

// NewLoginModel creates a new login screen model
func NewLoginModel(a *app.App) tea.Model {
	fields := make([]textinput.Model, loginFieldCount)

	fields[loginFieldEmail] = textinput.New()
	fields[loginFieldEmail].Placeholder = "email"
	fields[loginFieldEmail].CharLimit = 100
	fields[loginFieldEmail].Width = 40

	fields[loginFieldPassword] = textinput.New()
	fields[loginFieldPassword].Placeholder = "password"
	fields[loginFieldPassword].CharLimit = 100
	fields[loginFieldPassword].Width = 40
	fields[loginFieldPassword].EchoMode = textinput.EchoPassword
	fields[loginFieldPassword].EchoCharacter = '•'

	fields[loginFieldEmail].Focus()

	return &LoginModel{
		app:    a,
		fields: fields,
	}
}

// IsCapturingInput reports that the login form owns the keyboard
func (m *LoginModel) IsCapturingInput() bool {
	return true
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) submit() tea.Cmd {
	email := m.fields[loginFieldEmail].Value()
	password := m.fields[loginFieldPassword].Value()
	return func() tea.Msg {
		err := m.app.AuthService.Login(context.Background(), email, password)
		return loginResultMsg{err: err}
	}
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return LoginSuccessMsg{} }

	case tea.KeyMsg:
		m.err = nil

		switch msg.String() {
		case "tab", "shift+tab", "down", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % loginFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == loginFieldEmail {
				m.fields[loginFieldEmail].Blur()
				m.fieldFocus = loginFieldPassword
				return m, m.fields[loginFieldPassword].Focus()
			}
			return m, m.submit()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var s string

	s += titleStyle.Render("Welcome back") + "\n"
	s += subtitleStyle.Render("  Sign in to manage your invoices.") + "\n\n"

	labels := []string{"Email:", "Password:"}
	for i, label := range labels {
		indicator := "  "
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			indicator = "> "
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab: switch field  enter: sign in  ctrl+c: quit")

	return s
}
