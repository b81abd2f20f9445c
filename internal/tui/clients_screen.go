package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rezapahlevi/kaludra/internal/app"
	"github.com/rezapahlevi/kaludra/internal/domain"
)

// clientMode represents the current screen mode
type clientMode int

const (
	clientModeList clientMode = iota
	clientModeNew
	clientModeEdit
)

// form field indices
const (
	clientFieldName = iota
	clientFieldEmail
	clientFieldPhone
	clientFieldAddress
	clientFieldCount
)

// ClientsModel displays a navigable list of clients with create/edit forms
type ClientsModel struct {
	app       *app.App
	clients   []domain.Client
	cursor    int
	loading   bool
	err       error
	statusMsg string

	// Form state
	mode       clientMode
	fields     []textinput.Model
	fieldFocus int
	editingID  string // empty for new client

	pendingDelete string

	// Search state
	search    textinput.Model
	searching bool
}

type clientsDataMsg struct {
	clients []domain.Client
	err     error
}

type clientSavedMsg struct {
	name string
	err  error
}

// NewClientsModel creates a new clients screen model
func NewClientsModel(a *app.App) tea.Model {
	search := textinput.New()
	search.Placeholder = "name, email, or address"
	search.CharLimit = 60
	search.Width = 30

	return &ClientsModel{
		app:     a,
		search:  search,
		loading: true,
	}
}

// IsCapturingInput returns true when the form or the search box is active
func (m *ClientsModel) IsCapturingInput() bool {
	return m.mode == clientModeNew || m.mode == clientModeEdit || m.searching
}

// visibleClients applies the search filter to the loaded list
func (m *ClientsModel) visibleClients() []domain.Client {
	return filterClients(m.clients, m.search.Value())
}

func (m *ClientsModel) Init() tea.Cmd {
	return m.loadClients()
}

func (m *ClientsModel) loadClients() tea.Cmd {
	return func() tea.Msg {
		clients, err := m.app.ClientService.List(context.Background())
		if err != nil {
			return clientsDataMsg{err: err}
		}
		return clientsDataMsg{clients: clients}
	}
}

func (m *ClientsModel) initForm(editing *domain.Client) {
	m.fields = make([]textinput.Model, clientFieldCount)

	m.fields[clientFieldName] = textinput.New()
	m.fields[clientFieldName].Placeholder = "Client name"
	m.fields[clientFieldName].CharLimit = 100
	m.fields[clientFieldName].Width = 40

	m.fields[clientFieldEmail] = textinput.New()
	m.fields[clientFieldEmail].Placeholder = "email@example.com"
	m.fields[clientFieldEmail].CharLimit = 100
	m.fields[clientFieldEmail].Width = 40

	m.fields[clientFieldPhone] = textinput.New()
	m.fields[clientFieldPhone].Placeholder = "08123456789"
	m.fields[clientFieldPhone].CharLimit = 30
	m.fields[clientFieldPhone].Width = 25

	m.fields[clientFieldAddress] = textinput.New()
	m.fields[clientFieldAddress].Placeholder = "Street, city, country"
	m.fields[clientFieldAddress].CharLimit = 200
	m.fields[clientFieldAddress].Width = 50

	// Pre-fill for editing
	if editing != nil {
		m.fields[clientFieldName].SetValue(editing.Name)
		m.fields[clientFieldEmail].SetValue(editing.Email)
		m.fields[clientFieldPhone].SetValue(editing.Phone)
		m.fields[clientFieldAddress].SetValue(editing.Address)
		m.editingID = editing.ID
	} else {
		m.editingID = ""
	}

	m.fieldFocus = clientFieldName
	m.fields[clientFieldName].Focus()
}

func (m *ClientsModel) saveClient() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		client := domain.Client{
			ID:      m.editingID,
			Name:    m.fields[clientFieldName].Value(),
			Email:   m.fields[clientFieldEmail].Value(),
			Phone:   m.fields[clientFieldPhone].Value(),
			Address: m.fields[clientFieldAddress].Value(),
		}

		if m.editingID != "" {
			if err := m.app.ClientService.Update(ctx, client); err != nil {
				return clientSavedMsg{err: err}
			}
			return clientSavedMsg{name: client.Name}
		}

		created, err := m.app.ClientService.Create(ctx, client)
		if err != nil {
			return clientSavedMsg{err: err}
		}
		return clientSavedMsg{name: created.Name}
	}
}

func (m *ClientsModel) deleteClient(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.app.ClientService.Delete(context.Background(), id); err != nil {
			return clientSavedMsg{err: err}
		}
		return clientSavedMsg{name: ""}
	}
}

func (m *ClientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle form mode
	if m.mode == clientModeNew || m.mode == clientModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadClients()

	case clientsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.clients = msg.clients
			if visible := m.visibleClients(); m.cursor >= len(visible) {
				m.cursor = max(0, len(visible)-1)
			}
		}
		return m, nil

	case clientSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.name != "" {
			m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		} else {
			m.statusMsg = "Client deleted"
		}
		m.loading = true
		return m, m.loadClients()

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		// Search box owns keys while focused
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.search.Blur()
				m.search.SetValue("")
				m.cursor = 0
				return m, nil
			case "enter":
				m.searching = false
				m.search.Blur()
				m.cursor = 0
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}

		m.statusMsg = ""
		m.err = nil
		if msg.String() != "x" {
			m.pendingDelete = ""
		}

		visible := m.visibleClients()

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(visible)-1 {
				m.cursor++
			}
		case msg.String() == "/":
			m.searching = true
			return m, m.search.Focus()
		case key.Matches(msg, DefaultKeyMap.New):
			m.mode = clientModeNew
			m.initForm(nil)
			return m, m.fields[clientFieldName].Focus()
		case key.Matches(msg, DefaultKeyMap.Select):
			// Enter key opens edit form for selected client
			if len(visible) > 0 && m.cursor < len(visible) {
				m.mode = clientModeEdit
				m.initForm(&visible[m.cursor])
				return m, m.fields[clientFieldName].Focus()
			}
		case msg.String() == "x":
			if len(visible) == 0 || m.cursor >= len(visible) {
				return m, nil
			}
			client := visible[m.cursor]
			if m.pendingDelete == client.ID {
				m.pendingDelete = ""
				return m, m.deleteClient(client.ID)
			}
			m.pendingDelete = client.ID
			m.statusMsg = fmt.Sprintf("Press x again to delete %s", client.Name)
		}
	}

	return m, nil
}

func (m *ClientsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clientSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = clientModeList
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadClients()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Cancel form
			m.mode = clientModeList
			m.err = nil
			return m, nil

		case "tab", "down":
			// Next field
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % clientFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			// Previous field
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + clientFieldCount) % clientFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			// If on last field, save; otherwise advance
			if m.fieldFocus == clientFieldCount-1 {
				return m, m.saveClient()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			// Save from any field
			return m, m.saveClient()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *ClientsModel) View() string {
	if m.mode == clientModeNew || m.mode == clientModeEdit {
		return m.viewForm()
	}
	return m.viewList()
}

func (m *ClientsModel) viewForm() string {
	var s string

	if m.mode == clientModeNew {
		s += titleStyle.Render("New Client") + "\n\n"
	} else {
		s += titleStyle.Render("Edit Client") + "\n\n"
	}

	labels := []string{"Name:", "Email:", "Phone:", "Address:"}
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
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}

func (m *ClientsModel) viewList() string {
	if m.loading {
		return "Loading clients..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string

	s += titleStyle.Render("Clients") + "\n\n"

	// Status message
	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	// Search box
	if m.searching || m.search.Value() != "" {
		s += fmt.Sprintf("  Search: %s\n\n", m.search.View())
	}

	visible := m.visibleClients()
	if len(visible) == 0 {
		if m.search.Value() != "" {
			s += subtitleStyle.Render("  No clients match the search.") + "\n"
		} else {
			s += subtitleStyle.Render("  No clients yet. Press 'n' to add one.") + "\n"
		}
		return s
	}

	for i, client := range visible {
		s += m.renderClient(i, client) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: edit  x: delete  /: search")

	return s
}

func (m *ClientsModel) renderClient(index int, client domain.Client) string {
	selected := index == m.cursor

	indicator := "  "
	if selected {
		indicator = "> "
	}

	contact := client.Email
	if client.Phone != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += client.Phone
	}

	line1 := fmt.Sprintf("%s%s", indicator, client.Name)
	line2 := fmt.Sprintf("    %s", truncateStr(client.Address, 50))
	if contact != "" {
		line2 = fmt.Sprintf("    %s", contact)
		if client.Address != "" {
			line2 += "\n    " + truncateStr(client.Address, 50)
		}
	}

	nameStyle := lipgloss.NewStyle()
	if selected {
		nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
	}

	return nameStyle.Render(line1) + "\n" + subtitleStyle.Render(line2)
}
