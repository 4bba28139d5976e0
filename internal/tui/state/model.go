// Package state implements the browse view: a single scrolling page of
// sections with the recipe carousel in the middle.
package state

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/velvetpour/internal/carousel"
	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/logging"
	"github.com/cristianoliveira/velvetpour/internal/notice"
	"github.com/cristianoliveira/velvetpour/internal/search"
	"github.com/cristianoliveira/velvetpour/internal/tui/render"
	"github.com/cristianoliveira/velvetpour/internal/tui/reveal"
)

const (
	headerFooterLines     = 2
	defaultViewportWidth  = 80
	defaultViewportHeight = 22
	statusClearDuration   = 5 * time.Second

	defaultRevealFrames     = 8
	defaultRevealInterval   = 60 * time.Millisecond
	defaultTextReadyTimeout = 100 * time.Millisecond
	defaultWrapWidth        = 72

	heroAnimation     = "hero"
	entranceAnimation = "menu"
)

// Section identifiers in page order.
const (
	SectionHero      = "hero"
	SectionCocktails = "cocktails"
	SectionAbout     = "about"
	SectionArt       = "art"
	SectionMenu      = "menu"
	SectionContact   = "contact"
)

var sectionOrder = []string{
	SectionHero,
	SectionCocktails,
	SectionAbout,
	SectionArt,
	SectionMenu,
	SectionContact,
}

// Options configures NewModel. Zero values select defaults.
type Options struct {
	Catalog          catalog.Catalog
	StartSection     string
	StartCocktail    string
	RevealFrames     int
	RevealInterval   time.Duration
	TextReadyTimeout time.Duration
	WrapWidth        int
	MarkdownStyle    string
}

type sectionSpan struct {
	id    string
	start int
	lines int
}

// Model is the Bubble Tea model of the browse view.
type Model struct {
	uiState *UIState
	keys    keyMap
	help    help.Model

	catalog     catalog.Catalog
	carousel    *carousel.Controller[catalog.Cocktail]
	unsubscribe func()
	matcher     *search.Matcher

	gate     *reveal.Gate
	hero     *reveal.Animation
	entrance *reveal.Animation
	markdown *render.Markdown

	board     *notice.Board
	status    notice.Message
	hasStatus bool
	statusSeq int
	section   int
	sections  []sectionSpan
	wrapWidth int
	queued    []tea.Cmd
	log       logging.Logger
	closed    bool
}

// NewModel builds the browse view for opts.Catalog.
func NewModel(opts Options) (*Model, error) {
	if opts.RevealFrames <= 0 {
		opts.RevealFrames = defaultRevealFrames
	}
	if opts.RevealInterval <= 0 {
		opts.RevealInterval = defaultRevealInterval
	}
	if opts.TextReadyTimeout <= 0 {
		opts.TextReadyTimeout = defaultTextReadyTimeout
	}
	if opts.WrapWidth <= 0 {
		opts.WrapWidth = defaultWrapWidth
	}

	m := &Model{
		uiState:   NewUIState(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		matcher:   search.NewMatcher(),
		gate:      reveal.NewGate(opts.TextReadyTimeout),
		hero:      reveal.NewAnimation(heroAnimation, opts.RevealFrames, opts.RevealInterval),
		entrance:  reveal.NewAnimation(entranceAnimation, opts.RevealFrames, opts.RevealInterval),
		markdown:  render.NewMarkdown(opts.MarkdownStyle),
		wrapWidth: opts.WrapWidth,
		log:       logging.With("component", "browse"),
	}
	m.board = notice.NewBoard(func(msg notice.Message) {
		m.status = msg
		m.hasStatus = msg.Text != ""
		m.statusSeq++
	})

	if err := m.setCatalog(opts.Catalog); err != nil {
		return nil, err
	}
	if opts.StartCocktail != "" {
		idx, err := m.matcher.Resolve(opts.StartCocktail, m.catalog.Names())
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("start cocktail: %w", err)
		}
		m.carousel.GoToIndex(idx)
		m.queued = nil
		m.entrance = reveal.NewAnimation(entranceAnimation, opts.RevealFrames, opts.RevealInterval)
	}

	m.uiState.UpdateViewportSize(0)
	m.updateViewportContent()
	if opts.StartSection != "" {
		if !m.jumpToSectionID(opts.StartSection) {
			m.Close()
			return nil, fmt.Errorf("unknown section %q", opts.StartSection)
		}
	}
	return m, nil
}

// setCatalog replaces the catalog and its carousel. The previous controller
// is unsubscribed and closed.
func (m *Model) setCatalog(c catalog.Catalog) error {
	ctrl, err := c.Carousel()
	if err != nil {
		return err
	}
	m.releaseCarousel()
	m.catalog = c
	m.carousel = ctrl
	m.unsubscribe = ctrl.Subscribe(m.onCarouselChange)
	return nil
}

func (m *Model) releaseCarousel() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	if m.carousel != nil {
		m.carousel.Close()
	}
}

// onCarouselChange runs synchronously inside every carousel navigation call.
func (m *Model) onCarouselChange(change carousel.Change) {
	m.log.Debug("cocktail selected", "index", change.Index, "previous", change.Previous)
	m.queue(m.entrance.Start())
	m.updateViewportContent()
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.queued, cmd)
	m.queued = nil
	return tea.Batch(cmds...)
}

// Init starts the text ready gate.
func (m *Model) Init() tea.Cmd {
	return m.gate.Init()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	return model, m.flush(cmd)
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	gateCmd := m.gate.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		model, cmd := m.handleKeyMsg(msg)
		return model, tea.Batch(gateCmd, cmd)
	case tea.WindowSizeMsg:
		model, cmd := m.handleWindowSizeMsg(msg)
		return model, tea.Batch(gateCmd, cmd)
	case tea.MouseMsg:
		vp, cmd := m.uiState.GetViewport().Update(msg)
		*m.uiState.GetViewport() = vp
		m.afterScroll()
		return m, cmd
	case reveal.ReadyMsg:
		m.log.Debug("text ready", "reason", msg.Reason.String())
		cmd := m.hero.Start()
		m.updateViewportContent()
		return m, cmd
	case reveal.FrameMsg:
		cmd := m.handleFrame(msg)
		return m, cmd
	case CatalogReloadedMsg:
		return m, m.handleCatalogReloaded(msg)
	case CatalogErrorMsg:
		m.log.Warn("catalog reload failed", "error", msg.Err)
		m.board.Warning(fmt.Sprintf("Catalog not reloaded: %v", msg.Err))
		return m, m.clearStatusLater()
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.hasStatus = false
			m.status = notice.Message{}
		}
		return m, nil
	}
	return m, gateCmd
}

func (m *Model) handleFrame(msg reveal.FrameMsg) tea.Cmd {
	var (
		handled bool
		cmd     tea.Cmd
	)
	switch msg.Name {
	case heroAnimation:
		handled, cmd = m.hero.Update(msg)
	case entranceAnimation:
		handled, cmd = m.entrance.Update(msg)
	}
	if handled {
		m.updateViewportContent()
	}
	return cmd
}

func (m *Model) handleCatalogReloaded(msg CatalogReloadedMsg) tea.Cmd {
	selected := m.carousel.Current().ID
	previous := m.carousel.Index()
	if err := m.setCatalog(msg.Catalog); err != nil {
		m.board.Warning(fmt.Sprintf("Catalog not reloaded: %v", err))
		return m.clearStatusLater()
	}
	if idx := m.catalog.IndexOf(selected); idx >= 0 {
		m.carousel.GoToIndex(idx)
	} else {
		m.carousel.GoToIndex(previous)
	}
	m.updateViewportContent()
	m.log.Info("catalog reloaded", "cocktails", m.carousel.Len(), "index", m.carousel.Index())
	m.board.Success(fmt.Sprintf("Catalog reloaded: %d cocktails", m.carousel.Len()))
	return m.clearStatusLater()
}

func (m *Model) clearStatusLater() tea.Cmd {
	return statusClearAfter(m.statusSeq, statusClearDuration)
}

// handleWindowSizeMsg handles window resize events.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.help.Width = msg.Width
	m.resizeViewport()
	m.updateViewportContent()
	return m, nil
}

func (m *Model) resizeViewport() {
	reserved := 0
	if m.uiState.ShowHelp() {
		reserved = lipgloss.Height(m.help.FullHelpView(m.keys.FullHelp()))
	}
	m.uiState.UpdateViewportSize(reserved)
}

// Index returns the selected cocktail position.
func (m *Model) Index() int {
	return m.carousel.Index()
}

// Current returns the selected cocktail.
func (m *Model) Current() catalog.Cocktail {
	return m.carousel.Current()
}

// Section returns the identifier of the section at the top of the view.
func (m *Model) Section() string {
	return sectionOrder[m.section]
}

// Status returns the current status line message.
func (m *Model) Status() (notice.Message, bool) {
	return m.status, m.hasStatus
}

// Close releases the carousel and stops the text ready gate. It is safe to
// call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.releaseCarousel()
	m.gate.Close()
	m.log.Debug("browse view closed")
}
