package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the style of the status line.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	// Input is the rendered text input while searching or typing a command.
	Input      string
	Section    string
	Help       string
	Status     string
	StatusKind StatusKind
	Width      int
}

// Footer renders the status line when one is set, otherwise the text input
// or the short help.
func Footer(state FooterState) string {
	var line string
	switch {
	case state.Status != "":
		line = statusStyle(state.StatusKind).Render(state.Status)
	case state.Input != "":
		line = state.Input
	default:
		var parts []string
		if state.Section != "" {
			parts = append(parts, "["+state.Section+"]")
		}
		if state.Help != "" {
			parts = append(parts, state.Help)
		}
		line = helpStyle.Render(strings.Join(parts, "  "))
	}
	if state.Width > 0 {
		line = lipgloss.NewStyle().MaxWidth(state.Width).Render(line)
	}
	return line
}

func statusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusError:
		return lipgloss.NewStyle().Bold(true).Foreground(colorError)
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(colorWarn)
	case StatusSuccess:
		return lipgloss.NewStyle().Foreground(colorOK)
	default:
		return lipgloss.NewStyle().Foreground(colorGold)
	}
}
