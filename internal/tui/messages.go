package tui

import "github.com/rezapahlevi/kaludra/internal/domain"

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// RefreshDataMsg requests data refresh
type RefreshDataMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// LoginSuccessMsg reports a successful login
type LoginSuccessMsg struct{}

// OpenEditorMsg opens the invoice editor with a working copy
type OpenEditorMsg struct {
	Invoice *domain.Invoice
}

// OpenViewerMsg opens the invoice viewer
type OpenViewerMsg struct {
	Invoice *domain.Invoice
}

// sessionCheckMsg reports whether a stored session is active
type sessionCheckMsg struct {
	loggedIn bool
}
