package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rezapahlevi/kaludra/internal/app"
	"github.com/rezapahlevi/kaludra/internal/domain"
	"github.com/rezapahlevi/kaludra/internal/format"
	"github.com/rezapahlevi/kaludra/internal/service"
)

// DashboardModel shows totals and the invoice list, newest first
type DashboardModel struct {
	app      *app.App
	invoices []domain.Invoice
	stats    service.DashboardStats
	cursor   int
	loading  bool
	err      error

	statusMsg     string
	pendingDelete string // invoice ID awaiting delete confirmation

	// Search state
	search    textinput.Model
	searching bool

	// Status and issue-date filters
	statusFilter domain.InvoiceStatus
	dateFrom     time.Time
	dateTo       time.Time
	rangeFields  []textinput.Model
	rangeFocus   int
	ranging      bool
}

type dashboardDataMsg struct {
	invoices []domain.Invoice
	stats    service.DashboardStats
	err      error
}

type invoiceMutatedMsg struct {
	status string
	err    error
}

// NewDashboardModel creates a new dashboard screen model
func NewDashboardModel(a *app.App) tea.Model {
	search := textinput.New()
	search.Placeholder = "client or number"
	search.CharLimit = 60
	search.Width = 30

	rangeFields := make([]textinput.Model, 2)
	for i := range rangeFields {
		rangeFields[i] = textinput.New()
		rangeFields[i].Placeholder = "YYYY-MM-DD"
		rangeFields[i].CharLimit = 10
		rangeFields[i].Width = 12
	}

	return &DashboardModel{
		app:         a,
		search:      search,
		rangeFields: rangeFields,
		loading:     true,
	}
}

// IsCapturingInput returns true while the search box or range form is focused
func (m *DashboardModel) IsCapturingInput() bool {
	return m.searching || m.ranging
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *DashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		invoices, err := m.app.InvoiceService.List(ctx)
		if err != nil {
			return dashboardDataMsg{err: err}
		}
		stats, err := m.app.InvoiceService.Stats(ctx)
		if err != nil {
			return dashboardDataMsg{err: err}
		}

		return dashboardDataMsg{invoices: invoices, stats: stats}
	}
}

// visibleInvoices applies the search, status, and date filters
func (m *DashboardModel) visibleInvoices() []domain.Invoice {
	return filterInvoices(m.invoices, m.search.Value(), m.statusFilter, m.dateFrom, m.dateTo)
}

// applyDateRange parses both bounds; an empty field leaves that side open
func (m *DashboardModel) applyDateRange() error {
	var from, to time.Time

	if v := strings.TrimSpace(m.rangeFields[0].Value()); v != "" {
		parsed, err := format.ParseDate(v)
		if err != nil {
			return fmt.Errorf("invalid start date: %s", v)
		}
		from = parsed
	}
	if v := strings.TrimSpace(m.rangeFields[1].Value()); v != "" {
		parsed, err := format.ParseDate(v)
		if err != nil {
			return fmt.Errorf("invalid end date: %s", v)
		}
		to = parsed
	}

	m.dateFrom = from
	m.dateTo = to
	return nil
}

func (m *DashboardModel) selected() *domain.Invoice {
	visible := m.visibleInvoices()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return nil
	}
	inv := visible[m.cursor]
	return &inv
}

func (m *DashboardModel) createDraft() tea.Cmd {
	return func() tea.Msg {
		draft, err := m.app.InvoiceService.CreateDraft(context.Background())
		if err != nil {
			return invoiceMutatedMsg{err: err}
		}
		return OpenEditorMsg{Invoice: draft}
	}
}

func (m *DashboardModel) toggleStatus(id string) tea.Cmd {
	return func() tea.Msg {
		inv, err := m.app.InvoiceService.ToggleStatus(context.Background(), id)
		if err != nil {
			return invoiceMutatedMsg{err: err}
		}
		return invoiceMutatedMsg{status: fmt.Sprintf("%s is now %s", inv.InvoiceNumber, inv.Status)}
	}
}

func (m *DashboardModel) deleteInvoice(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.app.InvoiceService.Delete(context.Background(), id); err != nil {
			return invoiceMutatedMsg{err: err}
		}
		return invoiceMutatedMsg{status: "Invoice deleted"}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()

	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.invoices = msg.invoices
			m.stats = msg.stats
			if visible := m.visibleInvoices(); m.cursor >= len(visible) {
				m.cursor = max(0, len(visible)-1)
			}
		}
		return m, nil

	case invoiceMutatedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = msg.status
		m.loading = true
		return m, m.loadData()

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		// Date range form owns keys while active
		if m.ranging {
			switch msg.String() {
			case "esc":
				m.ranging = false
				m.rangeFields[m.rangeFocus].Blur()
				m.rangeFields[0].SetValue("")
				m.rangeFields[1].SetValue("")
				m.dateFrom = time.Time{}
				m.dateTo = time.Time{}
				m.cursor = 0
				return m, nil
			case "tab", "shift+tab":
				m.rangeFields[m.rangeFocus].Blur()
				m.rangeFocus = (m.rangeFocus + 1) % 2
				return m, m.rangeFields[m.rangeFocus].Focus()
			case "enter":
				if m.rangeFocus == 0 {
					m.rangeFields[m.rangeFocus].Blur()
					m.rangeFocus = 1
					return m, m.rangeFields[m.rangeFocus].Focus()
				}
				if err := m.applyDateRange(); err != nil {
					m.err = err
					return m, nil
				}
				m.ranging = false
				m.rangeFields[m.rangeFocus].Blur()
				m.cursor = 0
				m.err = nil
				return m, nil
			}
			var cmd tea.Cmd
			m.rangeFields[m.rangeFocus], cmd = m.rangeFields[m.rangeFocus].Update(msg)
			return m, cmd
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

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.visibleInvoices())-1 {
				m.cursor++
			}
		case msg.String() == "/":
			m.searching = true
			return m, m.search.Focus()
		case msg.String() == "f":
			m.statusFilter = cycleStatusFilter(m.statusFilter)
			m.cursor = 0
		case msg.String() == "r":
			m.ranging = true
			m.rangeFocus = 0
			return m, m.rangeFields[0].Focus()
		case key.Matches(msg, DefaultKeyMap.New):
			return m, m.createDraft()
		case key.Matches(msg, DefaultKeyMap.Select):
			if inv := m.selected(); inv != nil {
				return m, func() tea.Msg { return OpenViewerMsg{Invoice: inv} }
			}
		case msg.String() == "e":
			if inv := m.selected(); inv != nil {
				return m, func() tea.Msg { return OpenEditorMsg{Invoice: inv} }
			}
		case msg.String() == "t":
			if inv := m.selected(); inv != nil {
				return m, m.toggleStatus(inv.ID)
			}
		case msg.String() == "x":
			inv := m.selected()
			if inv == nil {
				return m, nil
			}
			// First press arms the delete, second press confirms
			if m.pendingDelete == inv.ID {
				m.pendingDelete = ""
				return m, m.deleteInvoice(inv.ID)
			}
			m.pendingDelete = inv.ID
			m.statusMsg = fmt.Sprintf("Press x again to delete %s", inv.InvoiceNumber)
		}
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.loading {
		return "Loading invoices..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string

	// Stats row
	s += titleStyle.Render("Overview") + "\n"
	s += fmt.Sprintf("  Revenue: %s    Pending: %s    Sent: %d\n\n",
		badgePaidStyle.Render(format.Money(m.stats.Revenue)),
		badgeUnpaidStyle.Render(format.Money(m.stats.Pending)),
		m.stats.SentCount,
	)

	// Search box
	if m.searching || m.search.Value() != "" {
		s += fmt.Sprintf("  Search: %s\n\n", m.search.View())
	}

	// Date range form
	if m.ranging {
		s += fmt.Sprintf("  From: %s  To: %s\n", m.rangeFields[0].View(), m.rangeFields[1].View())
		s += helpStyle.Render("  tab: switch bound  enter: apply  esc: clear") + "\n\n"
	}

	if filters := m.activeFilters(); filters != "" {
		s += subtitleStyle.Render("  Showing: "+filters) + "\n\n"
	}

	// Status message
	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	visible := m.visibleInvoices()
	if len(visible) == 0 {
		if m.search.Value() != "" || m.activeFilters() != "" {
			s += subtitleStyle.Render("  No invoices match the filters.") + "\n"
		} else {
			s += subtitleStyle.Render("  No invoices yet. Press 'n' to draft one.") + "\n"
		}
		return s
	}

	for i, inv := range visible {
		s += m.renderInvoice(i, inv) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: view  e: edit  t: toggle status  x: delete  /: search  f: status filter  r: date range")

	return s
}

// activeFilters describes the non-default filters for the header line
func (m *DashboardModel) activeFilters() string {
	var parts []string
	if m.statusFilter != statusFilterAll {
		parts = append(parts, string(m.statusFilter))
	}
	if !m.dateFrom.IsZero() {
		parts = append(parts, "from "+format.Date(m.dateFrom))
	}
	if !m.dateTo.IsZero() {
		parts = append(parts, "to "+format.Date(m.dateTo))
	}
	return strings.Join(parts, "  ")
}

func (m *DashboardModel) renderInvoice(index int, inv domain.Invoice) string {
	selected := index == m.cursor

	indicator := "  "
	if selected {
		indicator = "> "
	}

	line1 := fmt.Sprintf("%s%s  %s  %s", indicator, inv.InvoiceNumber, truncateStr(inv.ClientName, 24), statusBadge(inv.Status))
	line2 := fmt.Sprintf("    %s  |  due %s  |  %s",
		format.Date(inv.Date),
		format.Date(inv.DueDate),
		format.Money(inv.Subtotal),
	)

	nameStyle := lipgloss.NewStyle()
	if selected {
		nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
	}

	return nameStyle.Render(line1) + "\n" + subtitleStyle.Render(line2)
}
