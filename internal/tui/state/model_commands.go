package state

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/velvetpour/internal/search"
)

// executeCommand runs a command typed after ':'.
func (m *Model) executeCommand(line string) tea.Cmd {
	line = strings.TrimSpace(line)
	if line == "" {
		m.board.Warning("Command is empty")
		return m.clearStatusLater()
	}

	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "q", "quit":
		return m.handleQuitCommand(args)
	case "goto":
		return m.handleGotoCommand(args)
	case "section":
		return m.handleSectionCommand(args)
	case "help":
		m.toggleHelp()
		return nil
	default:
		m.board.Warning(fmt.Sprintf("Unknown command: %s", command))
		return m.clearStatusLater()
	}
}

func (m *Model) handleQuitCommand(args []string) tea.Cmd {
	if len(args) > 0 {
		m.board.Warning("Invalid usage: q")
		return m.clearStatusLater()
	}
	_, cmd := m.handleQuit()
	return cmd
}

func (m *Model) handleGotoCommand(args []string) tea.Cmd {
	if len(args) == 0 {
		m.board.Warning("Invalid usage: goto NAME|INDEX")
		return m.clearStatusLater()
	}
	return m.selectCocktail(strings.Join(args, " "))
}

func (m *Model) handleSectionCommand(args []string) tea.Cmd {
	if len(args) != 1 {
		m.board.Warning(fmt.Sprintf("Invalid usage: section <%s>", strings.Join(sectionOrder, "|")))
		return m.clearStatusLater()
	}
	if !m.jumpToSectionID(strings.ToLower(args[0])) {
		m.board.Warning(fmt.Sprintf("Unknown section: %s", args[0]))
		return m.clearStatusLater()
	}
	return nil
}

// runSearch selects the cocktail best matching query.
func (m *Model) runSearch(query string) tea.Cmd {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	return m.selectCocktail(query)
}

// selectCocktail resolves query to a cocktail, selects it and scrolls to the menu.
func (m *Model) selectCocktail(query string) tea.Cmd {
	idx, err := m.matcher.Resolve(query, m.catalog.Names())
	if errors.Is(err, search.ErrNoMatch) {
		m.board.Warning(fmt.Sprintf("No cocktail matches %q", strings.TrimSpace(query)))
		return m.clearStatusLater()
	}
	if err != nil {
		m.board.Error(err.Error())
		return m.clearStatusLater()
	}
	m.carousel.GoToIndex(idx)
	m.jumpToSectionID(SectionMenu)
	m.board.Info(fmt.Sprintf("Now showing %s", m.carousel.Current().Name))
	return m.clearStatusLater()
}
