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
	"github.com/rezapahlevi/kaludra/internal/service"
)

type editorMode int

const (
	editorModeMain editorMode = iota
	editorModeClient  // pick the billed client
	editorModeDates   // edit invoice and due dates
	editorModeItem    // edit one line item
	editorModeService // pick a catalog service for the item
)

const (
	dateFieldDate = iota
	dateFieldDue
	dateFieldCount
)

const (
	itemFieldDescription = iota
	itemFieldQty
	itemFieldRate
	itemFieldCount
)

// EditorModel edits a working copy of one invoice. Nothing touches the
// store until the copy is saved.
type EditorModel struct {
	app     *app.App
	invoice *domain.Invoice

	loading bool
	err     error
	saveErr error

	mode       editorMode
	itemCursor int

	// Picker state (clients or services)
	clientList   []domain.Client
	serviceList  []domain.Service
	pickerCursor int

	// Form state
	fields        []textinput.Model
	fieldFocus    int
	editingItemID string
}

type editorDataMsg struct {
	clients  []domain.Client
	services []domain.Service
	err      error
}

type invoiceSavedMsg struct {
	err error
}

// NewEditorModel creates an editor for the given working copy
func NewEditorModel(a *app.App, invoice *domain.Invoice) tea.Model {
	return &EditorModel{
		app:     a,
		invoice: invoice,
		loading: true,
	}
}

// IsCapturingInput reports that the editor owns the keyboard while open
func (m *EditorModel) IsCapturingInput() bool {
	return true
}

func (m *EditorModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *EditorModel) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		clients, err := m.app.ClientService.List(ctx)
		if err != nil {
			return editorDataMsg{err: err}
		}
		services, err := m.app.CatalogService.List(ctx)
		if err != nil {
			return editorDataMsg{err: err}
		}

		return editorDataMsg{clients: clients, services: services}
	}
}

func (m *EditorModel) save() tea.Cmd {
	return func() tea.Msg {
		return invoiceSavedMsg{err: m.app.InvoiceService.Save(context.Background(), m.invoice)}
	}
}

// clientName resolves the working copy's client for display before save
func (m *EditorModel) clientName() string {
	if m.invoice.ClientID == "" {
		return "(none)"
	}
	for _, c := range m.clientList {
		if c.ID == m.invoice.ClientID {
			return c.Name
		}
	}
	if m.invoice.ClientName != "" {
		return m.invoice.ClientName
	}
	return "(unknown)"
}

func (m *EditorModel) initDateForm() {
	m.fields = make([]textinput.Model, dateFieldCount)

	m.fields[dateFieldDate] = textinput.New()
	m.fields[dateFieldDate].Placeholder = "2024-11-02"
	m.fields[dateFieldDate].CharLimit = 10
	m.fields[dateFieldDate].Width = 12
	m.fields[dateFieldDate].SetValue(format.DateInput(m.invoice.Date))

	m.fields[dateFieldDue] = textinput.New()
	m.fields[dateFieldDue].Placeholder = "2024-11-09"
	m.fields[dateFieldDue].CharLimit = 10
	m.fields[dateFieldDue].Width = 12
	m.fields[dateFieldDue].SetValue(format.DateInput(m.invoice.DueDate))

	m.fieldFocus = dateFieldDate
	m.fields[dateFieldDate].Focus()
}

func (m *EditorModel) initItemForm(item *domain.InvoiceItem) {
	m.fields = make([]textinput.Model, itemFieldCount)

	m.fields[itemFieldDescription] = textinput.New()
	m.fields[itemFieldDescription].Placeholder = "Description"
	m.fields[itemFieldDescription].CharLimit = 200
	m.fields[itemFieldDescription].Width = 45
	m.fields[itemFieldDescription].SetValue(item.Description)

	m.fields[itemFieldQty] = textinput.New()
	m.fields[itemFieldQty].Placeholder = "1"
	m.fields[itemFieldQty].CharLimit = 10
	m.fields[itemFieldQty].Width = 10
	m.fields[itemFieldQty].SetValue(strconv.FormatFloat(item.Qty, 'f', -1, 64))

	m.fields[itemFieldRate] = textinput.New()
	m.fields[itemFieldRate].Placeholder = "50000"
	m.fields[itemFieldRate].CharLimit = 15
	m.fields[itemFieldRate].Width = 15
	m.fields[itemFieldRate].SetValue(strconv.FormatFloat(item.Rate, 'f', -1, 64))

	m.editingItemID = item.ID
	m.fieldFocus = itemFieldDescription
	m.fields[itemFieldDescription].Focus()
}

// applyItemForm pushes the form values through the field edit rules
func (m *EditorModel) applyItemForm() error {
	ctx := context.Background()
	edits := []struct {
		field service.ItemField
		value string
	}{
		{service.ItemFieldDescription, m.fields[itemFieldDescription].Value()},
		{service.ItemFieldQty, m.fields[itemFieldQty].Value()},
		{service.ItemFieldRate, m.fields[itemFieldRate].Value()},
	}
	for _, e := range edits {
		if err := m.app.InvoiceService.ApplyItemEdit(ctx, m.invoice, m.editingItemID, e.field, e.value); err != nil {
			return err
		}
	}
	return nil
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editorDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.clientList = msg.clients
			m.serviceList = msg.services
		}
		return m, nil

	case invoiceSavedMsg:
		if msg.err != nil {
			m.saveErr = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenDashboard} }

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch m.mode {
		case editorModeMain:
			return m.updateMain(msg)
		case editorModeClient:
			return m.updateClientPicker(msg)
		case editorModeDates:
			return m.updateDateForm(msg)
		case editorModeItem:
			return m.updateItemForm(msg)
		case editorModeService:
			return m.updateServicePicker(msg)
		}
	}

	return m, nil
}

func (m *EditorModel) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.saveErr = nil

	switch {
	case msg.String() == "esc":
		// Discard the working copy
		return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenDashboard} }

	case key.Matches(msg, DefaultKeyMap.Up):
		if m.itemCursor > 0 {
			m.itemCursor--
		}
	case key.Matches(msg, DefaultKeyMap.Down):
		if m.itemCursor < len(m.invoice.Items)-1 {
			m.itemCursor++
		}

	case msg.String() == "c":
		m.mode = editorModeClient
		m.pickerCursor = 0
		for i, c := range m.clientList {
			if c.ID == m.invoice.ClientID {
				m.pickerCursor = i
			}
		}

	case msg.String() == "t":
		m.mode = editorModeDates
		m.initDateForm()
		return m, textinput.Blink

	case msg.String() == "a":
		item := m.app.InvoiceService.AddItem(m.invoice)
		m.itemCursor = len(m.invoice.Items) - 1
		m.mode = editorModeItem
		m.initItemForm(item)
		return m, textinput.Blink

	case key.Matches(msg, DefaultKeyMap.Select):
		if len(m.invoice.Items) > 0 && m.itemCursor < len(m.invoice.Items) {
			m.mode = editorModeItem
			m.initItemForm(&m.invoice.Items[m.itemCursor])
			return m, textinput.Blink
		}

	case msg.String() == "x":
		if len(m.invoice.Items) > 0 && m.itemCursor < len(m.invoice.Items) {
			m.app.InvoiceService.RemoveItem(m.invoice, m.invoice.Items[m.itemCursor].ID)
			if m.itemCursor >= len(m.invoice.Items) {
				m.itemCursor = max(0, len(m.invoice.Items)-1)
			}
		}

	case msg.String() == "ctrl+s":
		return m, m.save()
	}

	return m, nil
}

func (m *EditorModel) updateClientPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.mode = editorModeMain

	case key.Matches(msg, DefaultKeyMap.Up):
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
	case key.Matches(msg, DefaultKeyMap.Down):
		if m.pickerCursor < len(m.clientList)-1 {
			m.pickerCursor++
		}

	case key.Matches(msg, DefaultKeyMap.Select):
		if len(m.clientList) > 0 && m.pickerCursor < len(m.clientList) {
			m.invoice.ClientID = m.clientList[m.pickerCursor].ID
			m.mode = editorModeMain
		}
	}

	return m, nil
}

func (m *EditorModel) updateDateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = editorModeMain
		return m, nil

	case "tab", "shift+tab", "down", "up":
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus = (m.fieldFocus + 1) % dateFieldCount
		return m, m.fields[m.fieldFocus].Focus()

	case "enter", "ctrl+s":
		date, err := format.ParseDate(m.fields[dateFieldDate].Value())
		if err != nil {
			m.err = fmt.Errorf("invalid date: %s", m.fields[dateFieldDate].Value())
			return m, nil
		}
		due, err := format.ParseDate(m.fields[dateFieldDue].Value())
		if err != nil {
			m.err = fmt.Errorf("invalid due date: %s", m.fields[dateFieldDue].Value())
			return m, nil
		}
		m.invoice.Date = date
		m.invoice.DueDate = due
		m.err = nil
		m.mode = editorModeMain
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *EditorModel) updateItemForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = editorModeMain
		m.err = nil
		return m, nil

	case "tab", "down":
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus = (m.fieldFocus + 1) % itemFieldCount
		return m, m.fields[m.fieldFocus].Focus()

	case "shift+tab", "up":
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus = (m.fieldFocus - 1 + itemFieldCount) % itemFieldCount
		return m, m.fields[m.fieldFocus].Focus()

	case "ctrl+f":
		// Quick-fill from the service catalog
		m.mode = editorModeService
		m.pickerCursor = 0
		return m, nil

	case "enter":
		if m.fieldFocus == itemFieldCount-1 {
			if err := m.applyItemForm(); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.mode = editorModeMain
			return m, nil
		}
		m.fields[m.fieldFocus].Blur()
		m.fieldFocus++
		return m, m.fields[m.fieldFocus].Focus()

	case "ctrl+s":
		if err := m.applyItemForm(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.mode = editorModeMain
		return m, nil
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *EditorModel) updateServicePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.mode = editorModeItem

	case key.Matches(msg, DefaultKeyMap.Up):
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
	case key.Matches(msg, DefaultKeyMap.Down):
		if m.pickerCursor < len(m.serviceList)-1 {
			m.pickerCursor++
		}

	case key.Matches(msg, DefaultKeyMap.Select):
		if len(m.serviceList) > 0 && m.pickerCursor < len(m.serviceList) {
			svc := m.serviceList[m.pickerCursor]
			err := m.app.InvoiceService.ApplyItemEdit(
				context.Background(), m.invoice, m.editingItemID,
				service.ItemFieldService, svc.ID,
			)
			if err != nil {
				m.err = err
				m.mode = editorModeItem
				return m, nil
			}
			// Re-open the form with the quick-filled values
			if item := m.invoice.FindItem(m.editingItemID); item != nil {
				m.mode = editorModeItem
				m.initItemForm(item)
				return m, textinput.Blink
			}
			m.mode = editorModeMain
		}
	}

	return m, nil
}

func (m *EditorModel) View() string {
	if m.loading {
		return "Loading editor..."
	}

	switch m.mode {
	case editorModeClient:
		return m.viewClientPicker()
	case editorModeDates:
		return m.viewDateForm()
	case editorModeItem:
		return m.viewItemForm()
	case editorModeService:
		return m.viewServicePicker()
	}
	return m.viewMain()
}

func (m *EditorModel) viewMain() string {
	var s string

	s += titleStyle.Render(fmt.Sprintf("Invoice %s", m.invoice.InvoiceNumber)) + "  " + statusBadge(m.invoice.Status) + "\n\n"

	s += fmt.Sprintf("  Client:  %s\n", m.clientName())
	s += fmt.Sprintf("  Date:    %s\n", format.Date(m.invoice.Date))
	s += fmt.Sprintf("  Due:     %s\n\n", format.Date(m.invoice.DueDate))

	if len(m.invoice.Items) == 0 {
		s += subtitleStyle.Render("  No items yet. Press 'a' to add one.") + "\n"
	} else {
		for i, item := range m.invoice.Items {
			selected := i == m.itemCursor

			indicator := "  "
			if selected {
				indicator = "> "
			}

			desc := item.Description
			if desc == "" {
				desc = "(no description)"
			}

			line1 := fmt.Sprintf("%s%s", indicator, truncateStr(desc, 40))
			line2 := fmt.Sprintf("    %s x %s = %s",
				format.Qty(item.Qty),
				format.Money(item.Rate),
				format.Money(item.Total),
			)

			style := lipgloss.NewStyle()
			if selected {
				style = style.Bold(true).Foreground(primaryColor)
			}
			s += style.Render(line1) + "\n" + subtitleStyle.Render(line2) + "\n"
		}
	}

	s += "\n  " + titleStyle.Render(fmt.Sprintf("Total: %s", format.Money(m.invoice.Total()))) + "\n"

	if m.saveErr != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Cannot save: %v", m.saveErr)) + "\n"
	}

	s += "\n" + helpStyle.Render("  c: client  t: dates  a: add item  enter: edit item  x: remove item  ctrl+s: save  esc: discard")

	return s
}

func (m *EditorModel) viewClientPicker() string {
	var s string

	s += titleStyle.Render("Pick Client") + "\n\n"

	if len(m.clientList) == 0 {
		s += subtitleStyle.Render("  No clients yet. Add one on the clients screen first.") + "\n\n"
		s += helpStyle.Render("  esc: back")
		return s
	}

	for i, c := range m.clientList {
		indicator := "  "
		style := lipgloss.NewStyle()
		if i == m.pickerCursor {
			indicator = "> "
			style = style.Bold(true).Foreground(primaryColor)
		}
		marker := ""
		if c.ID == m.invoice.ClientID {
			marker = "  (current)"
		}
		s += style.Render(fmt.Sprintf("%s%s%s", indicator, c.Name, marker)) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: select  esc: back")

	return s
}

func (m *EditorModel) viewDateForm() string {
	var s string

	s += titleStyle.Render("Edit Dates") + "\n\n"

	labels := []string{"Date (YYYY-MM-DD):", "Due (YYYY-MM-DD):"}
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

	s += helpStyle.Render("  tab: switch field  enter: apply  esc: cancel")

	return s
}

func (m *EditorModel) viewItemForm() string {
	var s string

	s += titleStyle.Render("Edit Item") + "\n\n"

	labels := []string{"Description:", "Qty:", "Rate (Rp):"}
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

	s += helpStyle.Render("  ctrl+f: fill from catalog  tab: next field  enter: apply  esc: cancel")

	return s
}

func (m *EditorModel) viewServicePicker() string {
	var s string

	s += titleStyle.Render("Pick Service") + "\n\n"

	if len(m.serviceList) == 0 {
		s += subtitleStyle.Render("  Catalog is empty. Add services on the services screen.") + "\n\n"
		s += helpStyle.Render("  esc: back")
		return s
	}

	for i, svc := range m.serviceList {
		indicator := "  "
		style := lipgloss.NewStyle()
		if i == m.pickerCursor {
			indicator = "> "
			style = style.Bold(true).Foreground(primaryColor)
		}
		s += style.Render(fmt.Sprintf("%s%s", indicator, svc.Name)) + "\n"
		s += subtitleStyle.Render(fmt.Sprintf("    %s", format.Money(svc.Rate))) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: quick-fill  esc: back")

	return s
}
