package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rezapahlevi/kaludra/internal/app"
	"github.com/rezapahlevi/kaludra/internal/domain"
	"github.com/rezapahlevi/kaludra/internal/format"
)

type serviceMode int

const (
	serviceModeList serviceMode = iota
	serviceModeNew
	serviceModeEdit
)

const (
	serviceFieldName = iota
	serviceFieldRate
	serviceFieldCount
)

// ServicesModel displays the billable service catalog with create/edit forms
type ServicesModel struct {
	app       *app.App
	services  []domain.Service
	cursor    int
	loading   bool
	err       error
	statusMsg string

	// Form state
	mode       serviceMode
	fields     []textinput.Model
	fieldFocus int
	editingID  string

	pendingDelete string

	// Search state
	search    textinput.Model
	searching bool
}

type servicesDataMsg struct {
	services []domain.Service
	err      error
}

type serviceSavedMsg struct {
	name string
	err  error
}

// NewServicesModel creates a new services screen model
func NewServicesModel(a *app.App) tea.Model {
	search := textinput.New()
	search.Placeholder = "name or rate"
	search.CharLimit = 60
	search.Width = 30

	return &ServicesModel{
		app:     a,
		search:  search,
		loading: true,
	}
}

// IsCapturingInput returns true when the form or the search box is active
func (m *ServicesModel) IsCapturingInput() bool {
	return m.mode == serviceModeNew || m.mode == serviceModeEdit || m.searching
}

// visibleServices applies the search filter to the loaded list
func (m *ServicesModel) visibleServices() []domain.Service {
	return filterServices(m.services, m.search.Value())
}

func (m *ServicesModel) Init() tea.Cmd {
	return m.loadServices()
}

func (m *ServicesModel) loadServices() tea.Cmd {
	return func() tea.Msg {
		services, err := m.app.CatalogService.List(context.Background())
		if err != nil {
			return servicesDataMsg{err: err}
		}
		return servicesDataMsg{services: services}
	}
}

func (m *ServicesModel) initForm(editing *domain.Service) {
	m.fields = make([]textinput.Model, serviceFieldCount)

	m.fields[serviceFieldName] = textinput.New()
	m.fields[serviceFieldName].Placeholder = "Service name"
	m.fields[serviceFieldName].CharLimit = 100
	m.fields[serviceFieldName].Width = 40

	m.fields[serviceFieldRate] = textinput.New()
	m.fields[serviceFieldRate].Placeholder = "50000"
	m.fields[serviceFieldRate].CharLimit = 15
	m.fields[serviceFieldRate].Width = 15

	if editing != nil {
		m.fields[serviceFieldName].SetValue(editing.Name)
		m.fields[serviceFieldRate].SetValue(strconv.FormatFloat(editing.Rate, 'f', -1, 64))
		m.editingID = editing.ID
	} else {
		m.editingID = ""
	}

	m.fieldFocus = serviceFieldName
	m.fields[serviceFieldName].Focus()
}

func (m *ServicesModel) saveService() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		rateStr := m.fields[serviceFieldRate].Value()
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil && rateStr != "" {
			return serviceSavedMsg{err: fmt.Errorf("invalid rate: %s", rateStr)}
		}

		svc := domain.Service{
			ID:   m.editingID,
			Name: m.fields[serviceFieldName].Value(),
			Rate: rate,
		}

		if m.editingID != "" {
			if err := m.app.CatalogService.Update(ctx, svc); err != nil {
				return serviceSavedMsg{err: err}
			}
			return serviceSavedMsg{name: svc.Name}
		}

		created, err := m.app.CatalogService.Create(ctx, svc)
		if err != nil {
			return serviceSavedMsg{err: err}
		}
		return serviceSavedMsg{name: created.Name}
	}
}

func (m *ServicesModel) deleteService(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.app.CatalogService.Delete(context.Background(), id); err != nil {
			return serviceSavedMsg{err: err}
		}
		return serviceSavedMsg{name: ""}
	}
}

func (m *ServicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == serviceModeNew || m.mode == serviceModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadServices()

	case servicesDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.services = msg.services
			if visible := m.visibleServices(); m.cursor >= len(visible) {
				m.cursor = max(0, len(visible)-1)
			}
		}
		return m, nil

	case serviceSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.name != "" {
			m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		} else {
			m.statusMsg = "Service deleted"
		}
		m.loading = true
		return m, m.loadServices()

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

		visible := m.visibleServices()

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
			m.mode = serviceModeNew
			m.initForm(nil)
			return m, m.fields[serviceFieldName].Focus()
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(visible) > 0 && m.cursor < len(visible) {
				m.mode = serviceModeEdit
				m.initForm(&visible[m.cursor])
				return m, m.fields[serviceFieldName].Focus()
			}
		case msg.String() == "x":
			if len(visible) == 0 || m.cursor >= len(visible) {
				return m, nil
			}
			svc := visible[m.cursor]
			if m.pendingDelete == svc.ID {
				m.pendingDelete = ""
				return m, m.deleteService(svc.ID)
			}
			m.pendingDelete = svc.ID
			m.statusMsg = fmt.Sprintf("Press x again to delete %s", svc.Name)
		}
	}

	return m, nil
}

func (m *ServicesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case serviceSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = serviceModeList
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadServices()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = serviceModeList
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % serviceFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + serviceFieldCount) % serviceFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == serviceFieldCount-1 {
				return m, m.saveService()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveService()
		}
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *ServicesModel) View() string {
	if m.mode == serviceModeNew || m.mode == serviceModeEdit {
		return m.viewForm()
	}
	return m.viewList()
}

func (m *ServicesModel) viewForm() string {
	var s string

	if m.mode == serviceModeNew {
		s += titleStyle.Render("New Service") + "\n\n"
	} else {
		s += titleStyle.Render("Edit Service") + "\n\n"
	}

	labels := []string{"Name:", "Rate (Rp):"}
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

func (m *ServicesModel) viewList() string {
	if m.loading {
		return "Loading services..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string

	s += titleStyle.Render("Services") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	// Search box
	if m.searching || m.search.Value() != "" {
		s += fmt.Sprintf("  Search: %s\n\n", m.search.View())
	}

	visible := m.visibleServices()
	if len(visible) == 0 {
		if m.search.Value() != "" {
			s += subtitleStyle.Render("  No services match the search.") + "\n"
		} else {
			s += subtitleStyle.Render("  No services yet. Press 'n' to add one.") + "\n"
		}
		return s
	}

	for i, svc := range visible {
		selected := i == m.cursor

		indicator := "  "
		if selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%s", indicator, svc.Name)
		nameStyle := lipgloss.NewStyle()
		if selected {
			nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
		}

		s += nameStyle.Render(line) + "\n"
		s += subtitleStyle.Render(fmt.Sprintf("    %s", format.Money(svc.Rate))) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: edit  x: delete  /: search")

	return s
}
