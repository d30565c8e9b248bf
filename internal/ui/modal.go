package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is an overlay that owns keyboard input while open. Update reports
// true once the overlay should close; View draws it centred in the window.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

var _ Modal = (*detailModal)(nil)
