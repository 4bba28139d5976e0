package state

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// InputMode is the kind of text the footer input is collecting.
type InputMode int

const (
	InputNone InputMode = iota
	InputSearch
	InputCommand
)

// UIState manages the terminal facing state of the browse view: the
// viewport, its size and the footer text input.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	inputMode InputMode
	input     textinput.Model

	showHelp bool
}

// NewUIState creates a UIState with default dimensions.
func NewUIState() *UIState {
	input := textinput.New()
	input.CharLimit = 64
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight + headerFooterLines,
		input:    input,
	}
}

// GetViewport returns the viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the terminal width.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width. Non-positive values reset to the default.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the terminal height.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height. Non-positive values reset to the default.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight + headerFooterLines
	}
}

// UpdateViewportSize resizes the viewport to the space left by the header,
// the footer and reserved extra lines, keeping the scroll offset.
func (u *UIState) UpdateViewportSize(reserved int) {
	h := u.height - headerFooterLines - reserved
	if h < 1 {
		h = 1
	}
	u.viewport.Width = u.width
	u.viewport.Height = h
}

// InputMode returns the active input mode.
func (u *UIState) InputMode() InputMode {
	return u.inputMode
}

// StartInput focuses the text input for mode with an empty value.
func (u *UIState) StartInput(mode InputMode) {
	u.inputMode = mode
	u.input.Reset()
	switch mode {
	case InputSearch:
		u.input.Prompt = "/"
		u.input.Placeholder = "cocktail name"
	case InputCommand:
		u.input.Prompt = ":"
		u.input.Placeholder = "goto NAME|INDEX, section NAME, q"
	}
	u.input.Focus()
}

// StopInput leaves input mode and returns the typed value.
func (u *UIState) StopInput() string {
	value := u.input.Value()
	u.inputMode = InputNone
	u.input.Reset()
	u.input.Blur()
	return value
}

// Input returns the footer text input.
func (u *UIState) Input() *textinput.Model {
	return &u.input
}

// ShowHelp reports whether the full help is visible.
func (u *UIState) ShowHelp() bool {
	return u.showHelp
}

// SetShowHelp toggles the full help.
func (u *UIState) SetShowHelp(show bool) {
	u.showHelp = show
}
