package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// StylePlain renders markdown without colors, for tests and dumb terminals.
const StylePlain = "notty"

// Markdown renders descriptions through glamour and caches one renderer per width.
type Markdown struct {
	mu        sync.Mutex
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdown creates a renderer. An empty style picks one from the terminal background.
func NewMarkdown(style string) *Markdown {
	return &Markdown{style: style, renderers: make(map[int]*glamour.TermRenderer)}
}

// Render renders src wrapped to width. If glamour fails the text is wrapped as is.
func (m *Markdown) Render(src string, width int) string {
	width = clampWidth(width)
	if m == nil {
		return lipgloss.NewStyle().Width(width).Render(src)
	}
	r, err := m.renderer(width)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(src)
	}
	out, err := r.Render(src)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(src)
	}
	return strings.Trim(out, "\n")
}

func (m *Markdown) renderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.renderers[width]; ok {
		return r, nil
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if m.style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(m.style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	m.renderers[width] = r
	return r, nil
}
