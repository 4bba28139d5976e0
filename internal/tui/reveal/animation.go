package reveal

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg advances the animation named Name. Frames from an older
// generation are dropped.
type FrameMsg struct {
	Name       string
	Generation int
}

// Animation is a fixed number of frames spaced by an interval. It starts
// finished so content is fully visible until the first Start.
type Animation struct {
	name       string
	frames     int
	interval   time.Duration
	generation int
	frame      int
}

// NewAnimation creates a finished animation.
func NewAnimation(name string, frames int, interval time.Duration) *Animation {
	if frames < 1 {
		frames = 1
	}
	return &Animation{name: name, frames: frames, interval: interval, frame: frames}
}

// Name identifies the animation's frames.
func (a *Animation) Name() string { return a.name }

// Generation counts Start calls.
func (a *Animation) Generation() int { return a.generation }

// Start restarts from the first frame and supersedes any running run.
func (a *Animation) Start() tea.Cmd {
	a.generation++
	a.frame = 0
	return a.tick()
}

// Update consumes a frame addressed to this animation and schedules the next.
// It reports whether msg belonged to the current run.
func (a *Animation) Update(msg FrameMsg) (bool, tea.Cmd) {
	if msg.Name != a.name || msg.Generation != a.generation || a.Done() {
		return false, nil
	}
	a.frame++
	if a.Done() {
		return true, nil
	}
	return true, a.tick()
}

// Done reports whether the last frame was reached.
func (a *Animation) Done() bool {
	return a.frame >= a.frames
}

// Progress is the fraction of frames shown, in [0, 1].
func (a *Animation) Progress() float64 {
	return float64(a.frame) / float64(a.frames)
}

func (a *Animation) tick() tea.Cmd {
	msg := FrameMsg{Name: a.name, Generation: a.generation}
	if a.interval <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(a.interval, func(time.Time) tea.Msg { return msg })
}

// ScrollProgress maps a scroll offset onto [0, 1] across a window that starts
// at start and spans length lines.
func ScrollProgress(offset, start, length int) float64 {
	if length <= 0 {
		if offset >= start {
			return 1
		}
		return 0
	}
	p := float64(offset-start) / float64(length)
	return math.Max(0, math.Min(1, p))
}

// Visible returns how many of n units are shown at progress p.
func Visible(n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	return int(math.Ceil(float64(n) * p))
}

// Prefix returns the leading runes of s shown at progress p.
func Prefix(s string, p float64) string {
	runes := []rune(s)
	return string(runes[:Visible(len(runes), p)])
}
