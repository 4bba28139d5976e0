package state

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/velvetpour/internal/notice"
	"github.com/cristianoliveira/velvetpour/internal/tui/render"
	"github.com/cristianoliveira/velvetpour/internal/tui/reveal"
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(render.Nav(m.catalog.Brand, m.catalog.Nav, m.Section()))
	s.WriteString("\n")
	s.WriteString(m.uiState.GetViewport().View())
	if m.uiState.ShowHelp() {
		s.WriteString("\n")
		s.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	}
	s.WriteString("\n")
	s.WriteString(render.Footer(m.footerState()))

	return s.String()
}

func (m *Model) footerState() render.FooterState {
	state := render.FooterState{
		Section: m.Section(),
		Help:    m.help.ShortHelpView(m.keys.ShortHelp()),
		Width:   m.uiState.GetWidth(),
	}
	if m.uiState.InputMode() != InputNone {
		state.Input = m.uiState.Input().View()
	}
	if m.hasStatus {
		state.Status = m.status.Text
		state.StatusKind = statusKind(m.status.Kind)
	}
	return state
}

func statusKind(kind notice.Kind) render.StatusKind {
	switch kind {
	case notice.KindError:
		return render.StatusError
	case notice.KindWarning:
		return render.StatusWarning
	case notice.KindSuccess:
		return render.StatusSuccess
	default:
		return render.StatusInfo
	}
}

// updateViewportContent renders every section into the viewport and records
// where each one starts. The last block is padded to the viewport height so
// every section start can scroll to the top. The scroll offset is kept.
func (m *Model) updateViewportContent() {
	if m.carousel == nil {
		return
	}
	vp := m.uiState.GetViewport()
	width := m.contentWidth()

	blocks := make([]string, 0, len(sectionOrder))
	spans := make([]sectionSpan, 0, len(sectionOrder))
	line := 0
	for i, id := range sectionOrder {
		block := m.renderSection(id, line, width)
		height := lipgloss.Height(block)
		spans = append(spans, sectionSpan{id: id, start: line, lines: height})
		if pad := vp.Height - height; i == len(sectionOrder)-1 && pad > 0 {
			block += strings.Repeat("\n", pad)
		}
		blocks = append(blocks, block)
		line += height
	}
	m.sections = spans

	offset := vp.YOffset
	vp.SetContent(strings.Join(blocks, "\n"))
	vp.SetYOffset(offset)
}

func (m *Model) renderSection(id string, start, width int) string {
	switch id {
	case SectionHero:
		progress := 0.0
		if m.gate.Ready() {
			progress = m.hero.Progress()
		}
		return render.Hero(m.catalog.Hero, progress, width)
	case SectionCocktails:
		return render.Listings(m.catalog, width)
	case SectionAbout:
		return render.About(m.catalog.About, width, m.markdown)
	case SectionArt:
		return render.Art(m.catalog.Art, m.artProgress(start), width)
	case SectionMenu:
		return render.Menu(render.MenuState{
			Items:    m.carousel.Items(),
			Index:    m.carousel.Index(),
			Prev:     m.carousel.ItemAt(-1),
			Next:     m.carousel.ItemAt(1),
			Progress: m.entrance.Progress(),
			Width:    width,
			Markdown: m.markdown,
		})
	case SectionContact:
		return render.Contact(m.catalog.Contact, width)
	}
	return ""
}

// artProgress scrubs the art reveal with the scroll position: it opens as the
// section start travels from the bottom of the viewport to the top.
func (m *Model) artProgress(start int) float64 {
	vp := m.uiState.GetViewport()
	return reveal.ScrollProgress(vp.YOffset+vp.Height, start, vp.Height)
}

func (m *Model) contentWidth() int {
	return min(m.uiState.GetWidth(), m.wrapWidth)
}
