// Package reveal drives the entrance effects of the browse view: the text
// ready gate, frame based animations and scroll scrubbed progress.
package reveal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ReadyReason tells why the gate opened.
type ReadyReason int

const (
	// ReadyMeasured means the terminal reported its size.
	ReadyMeasured ReadyReason = iota
	// ReadyTimeout means no size arrived before the timeout.
	ReadyTimeout
)

func (r ReadyReason) String() string {
	if r == ReadyTimeout {
		return "timeout"
	}
	return "measured"
}

// ReadyMsg is emitted exactly once, when text can be laid out.
type ReadyMsg struct {
	Reason ReadyReason
}

type gateTimeoutMsg struct {
	gate *Gate
}

// Gate waits for the first window size message or a timeout, whichever comes
// first, and then emits a single ReadyMsg.
type Gate struct {
	timeout time.Duration
	opened  bool
	closed  bool
}

// NewGate creates a gate. A non-positive timeout opens on the first Update.
func NewGate(timeout time.Duration) *Gate {
	return &Gate{timeout: timeout}
}

// Init starts the timeout.
func (g *Gate) Init() tea.Cmd {
	if g.timeout <= 0 {
		return g.open(ReadyTimeout)
	}
	return tea.Tick(g.timeout, func(time.Time) tea.Msg {
		return gateTimeoutMsg{gate: g}
	})
}

// Update opens the gate when msg is the first window size or this gate's
// timeout. It returns nil for every other message.
func (g *Gate) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return g.open(ReadyMeasured)
	case gateTimeoutMsg:
		if msg.gate != g {
			return nil
		}
		return g.open(ReadyTimeout)
	}
	return nil
}

// Ready reports whether the gate has opened.
func (g *Gate) Ready() bool {
	return g.opened
}

// Close stops the gate from ever opening. A pending timeout is ignored.
func (g *Gate) Close() {
	g.closed = true
}

func (g *Gate) open(reason ReadyReason) tea.Cmd {
	if g.opened || g.closed {
		return nil
	}
	g.opened = true
	return func() tea.Msg {
		return ReadyMsg{Reason: reason}
	}
}
