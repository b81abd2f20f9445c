package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rezapahlevi/kaludra/internal/app"
	"github.com/rezapahlevi/kaludra/internal/domain"
	"github.com/rezapahlevi/kaludra/internal/render"
)

// ViewerModel shows the printable form of a saved invoice
type ViewerModel struct {
	app     *app.App
	invoice *domain.Invoice

	statusMsg string
	err       error
}

type invoiceExportedMsg struct {
	path string
	err  error
}

// NewViewerModel creates a viewer for the given invoice
func NewViewerModel(a *app.App, invoice *domain.Invoice) tea.Model {
	return &ViewerModel{
		app:     a,
		invoice: invoice,
	}
}

func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

func (m *ViewerModel) export() tea.Cmd {
	return func() tea.Msg {
		path, err := render.WriteInvoiceFile(
			m.invoice,
			m.app.Config.Company,
			m.app.Config.Payment,
			m.app.Config.Invoice.ExportDir,
		)
		return invoiceExportedMsg{path: path, err: err}
	}
}

func (m *ViewerModel) toggleStatus() tea.Cmd {
	return func() tea.Msg {
		inv, err := m.app.InvoiceService.ToggleStatus(context.Background(), m.invoice.ID)
		if err != nil {
			return invoiceMutatedMsg{err: err}
		}
		return invoiceMutatedMsg{status: fmt.Sprintf("Now %s", inv.Status)}
	}
}

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoiceExportedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Exported: %s", msg.path)
		return m, nil

	case invoiceMutatedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.invoice.Status = m.invoice.NextStatus()
		m.statusMsg = msg.status
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.err = nil

		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenDashboard} }
		case "e":
			inv := *m.invoice
			return m, func() tea.Msg { return OpenEditorMsg{Invoice: &inv} }
		case "t":
			return m, m.toggleStatus()
		case "o":
			return m, m.export()
		}
	}

	return m, nil
}

func (m *ViewerModel) View() string {
	s := render.InvoiceText(m.invoice, m.app.Config.Company, m.app.Config.Payment)

	if m.statusMsg != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(successColor).Render(m.statusMsg) + "\n"
	}
	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	s += "\n" + helpStyle.Render("  e: edit  t: toggle status  o: export  esc: back")

	return s
}
