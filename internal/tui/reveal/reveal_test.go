package reveal

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateOpensOnFirstWindowSize(t *testing.T) {
	g := NewGate(100 * time.Millisecond)
	require.NotNil(t, g.Init())
	assert.False(t, g.Ready())

	cmd := g.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, cmd)
	assert.Equal(t, ReadyMsg{Reason: ReadyMeasured}, cmd())
	assert.True(t, g.Ready())

	assert.Nil(t, g.Update(tea.WindowSizeMsg{Width: 100, Height: 30}))
	assert.Nil(t, g.Update(gateTimeoutMsg{gate: g}))
}

func TestGateOpensOnTimeout(t *testing.T) {
	g := NewGate(time.Millisecond)
	g.Init()

	cmd := g.Update(gateTimeoutMsg{gate: g})
	require.NotNil(t, cmd)
	assert.Equal(t, ReadyMsg{Reason: ReadyTimeout}, cmd())

	assert.Nil(t, g.Update(tea.WindowSizeMsg{Width: 80, Height: 24}))
}

func TestGateIgnoresForeignTimeout(t *testing.T) {
	g := NewGate(time.Millisecond)
	other := NewGate(time.Millisecond)

	assert.Nil(t, g.Update(gateTimeoutMsg{gate: other}))
	assert.False(t, g.Ready())
}

func TestGateWithoutTimeoutOpensOnInit(t *testing.T) {
	g := NewGate(0)

	cmd := g.Init()
	require.NotNil(t, cmd)
	assert.Equal(t, ReadyMsg{Reason: ReadyTimeout}, cmd())
	assert.True(t, g.Ready())
}

func TestClosedGateNeverOpens(t *testing.T) {
	g := NewGate(time.Millisecond)
	g.Close()

	assert.Nil(t, g.Update(gateTimeoutMsg{gate: g}))
	assert.Nil(t, g.Update(tea.WindowSizeMsg{}))
	assert.False(t, g.Ready())
}

func TestReadyReasonString(t *testing.T) {
	assert.Equal(t, "measured", ReadyMeasured.String())
	assert.Equal(t, "timeout", ReadyTimeout.String())
}

func TestAnimationStartsFinished(t *testing.T) {
	a := NewAnimation("menu", 4, 0)
	assert.True(t, a.Done())
	assert.Equal(t, 1.0, a.Progress())
}

func TestAnimationRunsAllFrames(t *testing.T) {
	a := NewAnimation("menu", 3, 0)

	cmd := a.Start()
	assert.Equal(t, 0.0, a.Progress())
	frames := 0
	for cmd != nil {
		msg, ok := cmd().(FrameMsg)
		require.True(t, ok)
		var handled bool
		handled, cmd = a.Update(msg)
		require.True(t, handled)
		frames++
	}
	assert.Equal(t, 3, frames)
	assert.True(t, a.Done())
}

func TestAnimationDropsStaleGenerations(t *testing.T) {
	a := NewAnimation("menu", 5, 0)
	stale := a.Start()().(FrameMsg)
	fresh := a.Start()().(FrameMsg)
	assert.Equal(t, 2, a.Generation())

	handled, cmd := a.Update(stale)
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, a.Progress())

	handled, _ = a.Update(fresh)
	assert.True(t, handled)
	assert.InDelta(t, 0.2, a.Progress(), 1e-9)
}

func TestAnimationIgnoresOtherNames(t *testing.T) {
	a := NewAnimation("menu", 2, 0)
	a.Start()

	handled, _ := a.Update(FrameMsg{Name: "hero", Generation: a.Generation()})
	assert.False(t, handled)
}

func TestAnimationClampsFrames(t *testing.T) {
	a := NewAnimation("hero", 0, 0)
	cmd := a.Start()
	handled, next := a.Update(cmd().(FrameMsg))
	assert.True(t, handled)
	assert.Nil(t, next)
	assert.True(t, a.Done())
}

func TestScrollProgress(t *testing.T) {
	tests := []struct {
		name                  string
		offset, start, length int
		want                  float64
	}{
		{"before window", 0, 10, 20, 0},
		{"window start", 10, 10, 20, 0},
		{"halfway", 20, 10, 20, 0.5},
		{"past window", 40, 10, 20, 1},
		{"empty window reached", 10, 10, 0, 1},
		{"empty window not reached", 9, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScrollProgress(tt.offset, tt.start, tt.length), 1e-9)
		})
	}
}

func TestVisibleAndPrefix(t *testing.T) {
	assert.Equal(t, 0, Visible(10, 0))
	assert.Equal(t, 1, Visible(10, 0.01))
	assert.Equal(t, 5, Visible(10, 0.5))
	assert.Equal(t, 10, Visible(10, 2))
	assert.Equal(t, 0, Visible(0, 1))

	assert.Equal(t, "", Prefix("MOJITO", 0))
	assert.Equal(t, "MOJ", Prefix("MOJITO", 0.5))
	assert.Equal(t, "MOJITO", Prefix("MOJITO", 1))
	assert.Equal(t, "çä", Prefix("çäö", 0.6))
}
