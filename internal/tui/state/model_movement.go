package state

import "github.com/cristianoliveira/velvetpour/internal/carousel"

// scroll moves the viewport by lines, negative values scroll up.
func (m *Model) scroll(lines int) {
	vp := m.uiState.GetViewport()
	if lines > 0 {
		vp.LineDown(lines)
	} else if lines < 0 {
		vp.LineUp(-lines)
	}
	m.afterScroll()
}

// afterScroll tracks the section under the top of the viewport and redraws
// scroll driven reveals.
func (m *Model) afterScroll() {
	m.section = m.sectionAt(m.uiState.GetViewport().YOffset)
	m.updateViewportContent()
}

// jumpToSection scrolls to the section at position i in page order,
// wrapping past either end.
func (m *Model) jumpToSection(i int) {
	if len(m.sections) == 0 {
		return
	}
	i = carousel.Wrap(i, len(m.sections))
	m.section = i
	m.uiState.GetViewport().SetYOffset(m.sections[i].start)
	m.updateViewportContent()
}

// jumpToSectionID scrolls to the section named id.
func (m *Model) jumpToSectionID(id string) bool {
	for i, span := range m.sections {
		if span.id == id {
			m.jumpToSection(i)
			return true
		}
	}
	return false
}

// sectionAt returns the position of the last section starting at or above line.
func (m *Model) sectionAt(line int) int {
	at := 0
	for i, span := range m.sections {
		if span.start <= line {
			at = i
		}
	}
	return at
}
