package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/tui/reveal"
)

// MenuState defines the inputs needed to render the recipe carousel.
type MenuState struct {
	Items    []catalog.Cocktail
	Index    int
	Prev     catalog.Cocktail
	Next     catalog.Cocktail
	Progress float64
	Width    int
	Markdown *Markdown
}

// Menu renders the tab strip, the previous and next arrows and the current
// recipe. Progress reveals the title and then the description.
func Menu(state MenuState) string {
	width := clampWidth(state.Width)
	if len(state.Items) == 0 || state.Index < 0 || state.Index >= len(state.Items) {
		return mutedStyle.Render("No cocktails on the menu")
	}
	current := state.Items[state.Index]

	lines := []string{
		Tabs(state.Items, state.Index, width),
		"",
		Arrows(state.Prev.Name, state.Next.Name, width),
		"",
		image(current.Image),
		mutedStyle.Render("Recipe for:"),
		headingStyle.Render(current.Name),
		"",
	}
	lines = append(lines, titleStyle.Render(reveal.Prefix(current.Title, state.Progress)))
	if desc := state.Markdown.Render(current.Description, width); desc != "" {
		descLines := strings.Split(desc, "\n")
		shown := reveal.Visible(len(descLines), state.Progress)
		lines = append(lines, descLines[:shown]...)
		for i := shown; i < len(descLines); i++ {
			lines = append(lines, "")
		}
	}
	return sectionStyle.Render(strings.Join(lines, "\n"))
}

// Tabs renders the cocktail tabs numbered from 1, wrapping to width.
func Tabs(items []catalog.Cocktail, active, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for i, item := range items {
		style := tabStyle
		if i == active {
			style = tabActiveStyle
		}
		label := item.Name
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, item.Name)
		}
		tab := style.Render(label)
		w := lipgloss.Width(tab)
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, tab)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// Arrows renders the previous item on the left and the next item on the right.
func Arrows(prev, next string, width int) string {
	left := arrowStyle.Render("‹ " + prev)
	right := arrowStyle.Render(next + " ›")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
