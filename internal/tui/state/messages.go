package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/velvetpour/internal/catalog"
)

// CatalogReloadedMsg carries a catalog that changed on disk.
type CatalogReloadedMsg struct {
	Catalog catalog.Catalog
}

// CatalogErrorMsg reports a catalog that could not be reloaded.
type CatalogErrorMsg struct {
	Err error
}

// statusClearMsg clears the status line set by the message numbered seq.
type statusClearMsg struct {
	seq int
}

// statusClearAfter clears the status line numbered seq after d.
func statusClearAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
