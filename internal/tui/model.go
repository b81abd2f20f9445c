package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rezapahlevi/kaludra/internal/app"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenClients
	ScreenServices
	ScreenEditor
	ScreenViewer
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "Login"
	case ScreenDashboard:
		return "Dashboard"
	case ScreenClients:
		return "Clients"
	case ScreenServices:
		return "Services"
	case ScreenEditor:
		return "Invoice Editor"
	case ScreenViewer:
		return "Invoice"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	// Screen models (lazy initialized; editor and viewer are rebuilt per invoice)
	login     tea.Model
	dashboard tea.Model
	clients   tea.Model
	services  tea.Model
	editor    tea.Model
	viewer    tea.Model

	// Session state
	checkedSession bool

	// Error state
	err error
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{
		app:           a,
		currentScreen: ScreenLogin,
		login:         NewLoginModel(a),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.checkSession(),
	}
	if m.login != nil {
		cmds = append(cmds, m.login.Init())
	}
	return tea.Batch(cmds...)
}

// checkSession looks for a persisted login session
func (m *Model) checkSession() tea.Cmd {
	return func() tea.Msg {
		loggedIn, err := m.app.AuthService.IsAuthenticated(context.Background())
		if err != nil {
			return sessionCheckMsg{loggedIn: false}
		}
		return sessionCheckMsg{loggedIn: loggedIn}
	}
}

// initScreen lazy-initializes a screen on first visit,
// and sends a RefreshDataMsg on subsequent visits so screens reload data.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenDashboard:
		if m.dashboard == nil {
			m.dashboard = NewDashboardModel(m.app)
			return m.dashboard.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenClients:
		if m.clients == nil {
			m.clients = NewClientsModel(m.app)
			return m.clients.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenServices:
		if m.services == nil {
			m.services = NewServicesModel(m.app)
			return m.services.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	}
	return nil
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (D, C, S, Q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

func (m *Model) activeScreen() tea.Model {
	switch m.currentScreen {
	case ScreenLogin:
		return m.login
	case ScreenDashboard:
		return m.dashboard
	case ScreenClients:
		return m.clients
	case ScreenServices:
		return m.services
	case ScreenEditor:
		return m.editor
	case ScreenViewer:
		return m.viewer
	}
	return nil
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// ctrl+c always quits, even inside forms
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Dashboard):
				if m.currentScreen != ScreenLogin {
					m.currentScreen = ScreenDashboard
					return m, m.initScreen(ScreenDashboard)
				}

			case key.Matches(msg, DefaultKeyMap.Clients):
				if m.currentScreen != ScreenLogin {
					m.currentScreen = ScreenClients
					return m, m.initScreen(ScreenClients)
				}

			case key.Matches(msg, DefaultKeyMap.Services):
				if m.currentScreen != ScreenLogin {
					m.currentScreen = ScreenServices
					return m, m.initScreen(ScreenServices)
				}
			}
		}

	case sessionCheckMsg:
		m.checkedSession = true
		if msg.loggedIn && m.currentScreen == ScreenLogin {
			m.currentScreen = ScreenDashboard
			return m, m.initScreen(ScreenDashboard)
		}
		return m, nil

	case LoginSuccessMsg:
		m.currentScreen = ScreenDashboard
		return m, m.initScreen(ScreenDashboard)

	case OpenEditorMsg:
		m.editor = NewEditorModel(m.app, msg.Invoice)
		m.currentScreen = ScreenEditor
		return m, m.editor.Init()

	case OpenViewerMsg:
		m.viewer = NewViewerModel(m.app, msg.Invoice)
		m.currentScreen = ScreenViewer
		return m, m.viewer.Init()

	case SwitchScreenMsg:
		m.currentScreen = msg.Screen
		return m, m.initScreen(msg.Screen)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenLogin:
		if m.login != nil {
			m.login, cmd = m.login.Update(msg)
		}
	case ScreenDashboard:
		if m.dashboard != nil {
			m.dashboard, cmd = m.dashboard.Update(msg)
		}
	case ScreenClients:
		if m.clients != nil {
			m.clients, cmd = m.clients.Update(msg)
		}
	case ScreenServices:
		if m.services != nil {
			m.services, cmd = m.services.Update(msg)
		}
	case ScreenEditor:
		if m.editor != nil {
			m.editor, cmd = m.editor.Update(msg)
		}
	case ScreenViewer:
		if m.viewer != nil {
			m.viewer, cmd = m.viewer.Update(msg)
		}
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Header
	header := headerStyle.Render(fmt.Sprintf("kaludra - %s", m.currentScreen.String()))

	// Footer with navigation keys
	footer := footerStyle.Render("[D]ashboard  [C]lients  [S]ervices  [Q]uit")
	if m.currentScreen == ScreenLogin {
		footer = footerStyle.Render("Log in to continue")
	}

	// Current screen content
	content := "Loading..."
	if screen := m.activeScreen(); screen != nil {
		content = screen.View()
	}

	// Error display
	errorDisplay := ""
	if m.err != nil {
		errorDisplay = lipgloss.NewStyle().
			Foreground(errorColor).
			Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, errorDisplay, divider, footer)

	// Wrap in border, sized to terminal
	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
