package state

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.uiState.InputMode() != InputNone {
		return m.handleInputKey(msg)
	}

	if nextModel, cmd := m.handleKeyType(msg); cmd != nil || nextModel != nil {
		if nextModel == nil {
			nextModel = m
		}
		return nextModel, cmd
	}

	return m.handleKeyBinding(msg)
}

// handleKeyType handles keys that act the same in every section.
func (m *Model) handleKeyType(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.handleQuit()
	case tea.KeyEsc:
		if m.uiState.ShowHelp() {
			m.toggleHelp()
			return m, nil
		}
	}
	return nil, nil
}

// handleInputKey routes keys to the footer input while searching or typing
// a command.
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.uiState.StopInput()
		return m.handleQuit()
	case tea.KeyEsc:
		m.uiState.StopInput()
		return m, nil
	case tea.KeyEnter:
		mode := m.uiState.InputMode()
		value := m.uiState.StopInput()
		if mode == InputSearch {
			return m, m.runSearch(value)
		}
		return m, m.executeCommand(value)
	}

	input, cmd := m.uiState.Input().Update(msg)
	*m.uiState.Input() = input
	return m, cmd
}

// handleKeyBinding handles the bindings of keyMap.
func (m *Model) handleKeyBinding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.handleQuit()
	case key.Matches(msg, k.Help):
		m.toggleHelp()
	case key.Matches(msg, k.Search):
		m.uiState.StartInput(InputSearch)
		return m, textinput.Blink
	case key.Matches(msg, k.Command):
		m.uiState.StartInput(InputCommand)
		return m, textinput.Blink
	case key.Matches(msg, k.Down):
		m.scroll(1)
	case key.Matches(msg, k.Up):
		m.scroll(-1)
	case key.Matches(msg, k.PageDown):
		m.scroll(m.uiState.GetViewport().Height)
	case key.Matches(msg, k.PageUp):
		m.scroll(-m.uiState.GetViewport().Height)
	case key.Matches(msg, k.NextSection):
		m.jumpToSection(m.section + 1)
	case key.Matches(msg, k.PrevSection):
		m.jumpToSection(m.section - 1)
	case key.Matches(msg, k.Top):
		m.uiState.GetViewport().GotoTop()
		m.afterScroll()
	case key.Matches(msg, k.Bottom):
		m.uiState.GetViewport().GotoBottom()
		m.afterScroll()
	case key.Matches(msg, k.PrevAnywhere):
		m.carousel.Prev()
	case key.Matches(msg, k.NextAnywhere):
		m.carousel.Next()
	case key.Matches(msg, k.PrevCocktail):
		if m.Section() == SectionMenu {
			m.carousel.Prev()
		}
	case key.Matches(msg, k.NextCocktail):
		if m.Section() == SectionMenu {
			m.carousel.Next()
		}
	case key.Matches(msg, k.JumpTab):
		m.handleJumpTab(msg)
	}
	return m, nil
}

// handleJumpTab selects the numbered cocktail tab in the menu section.
// Numbers past the last tab are ignored.
func (m *Model) handleJumpTab(msg tea.KeyMsg) {
	if m.Section() != SectionMenu || len(msg.Runes) != 1 {
		return
	}
	tab := int(msg.Runes[0] - '1')
	if tab < 0 || tab >= m.carousel.Len() {
		return
	}
	m.carousel.GoToIndex(tab)
}

func (m *Model) toggleHelp() {
	m.uiState.SetShowHelp(!m.uiState.ShowHelp())
	m.help.ShowAll = m.uiState.ShowHelp()
	m.resizeViewport()
	m.updateViewportContent()
}

// handleQuit exits the program.
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.log.Info("quit", "index", m.carousel.Index(), "section", m.Section())
	return m, tea.Quit
}
