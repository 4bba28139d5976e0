package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIStateDefaults(t *testing.T) {
	u := NewUIState()

	assert.Equal(t, defaultViewportWidth, u.GetWidth())
	assert.Equal(t, defaultViewportHeight, u.GetViewport().Height)
	assert.Equal(t, InputNone, u.InputMode())
	assert.False(t, u.ShowHelp())
}

func TestUIStateSizeFallsBackToDefaults(t *testing.T) {
	u := NewUIState()

	u.SetWidth(0)
	u.SetHeight(-3)

	assert.Equal(t, defaultViewportWidth, u.GetWidth())
	assert.Equal(t, defaultViewportHeight+headerFooterLines, u.GetHeight())
}

func TestUpdateViewportSizeKeepsOffsetAndMinimum(t *testing.T) {
	u := NewUIState()
	u.GetViewport().SetContent("a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\nl\nm\nn\no\np\nq\nr\ns\nt\nu\nv\nw\nx\ny\nz")
	u.GetViewport().SetYOffset(3)

	u.SetWidth(60)
	u.SetHeight(12)
	u.UpdateViewportSize(2)
	assert.Equal(t, 60, u.GetViewport().Width)
	assert.Equal(t, 8, u.GetViewport().Height)
	assert.Equal(t, 3, u.GetViewport().YOffset)

	u.SetHeight(2)
	u.UpdateViewportSize(5)
	assert.Equal(t, 1, u.GetViewport().Height)
}

func TestInputModes(t *testing.T) {
	u := NewUIState()

	u.StartInput(InputSearch)
	assert.Equal(t, InputSearch, u.InputMode())
	assert.Equal(t, "/", u.Input().Prompt)
	assert.True(t, u.Input().Focused())
	u.Input().SetValue("violet")

	assert.Equal(t, "violet", u.StopInput())
	assert.Equal(t, InputNone, u.InputMode())
	assert.False(t, u.Input().Focused())

	u.StartInput(InputCommand)
	assert.Equal(t, ":", u.Input().Prompt)
	assert.Empty(t, u.Input().Value(), "a new input starts empty")
}
