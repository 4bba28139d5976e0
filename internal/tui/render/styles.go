// Package render draws the sections of the browse view as strings.
package render

import "github.com/charmbracelet/lipgloss"

const (
	colorGold  = lipgloss.Color("222")
	colorMuted = lipgloss.Color("241")
	colorWhite = lipgloss.Color("255")
	colorDark  = lipgloss.Color("0")
	colorError = lipgloss.Color("1")
	colorOK    = lipgloss.Color("2")
	colorWarn  = lipgloss.Color("3")
	maskRune   = "░"
	minWidth   = 20
)

var (
	brandStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	navStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	navActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Underline(true)
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	priceStyle     = lipgloss.NewStyle().Foreground(colorGold)
	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorDark).Background(colorGold).Padding(0, 1)
	arrowStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	imageStyle     = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)
	maskStyle      = lipgloss.NewStyle().Foreground(colorGold)
	sectionStyle   = lipgloss.NewStyle().PaddingBottom(1)
	helpStyle      = lipgloss.NewStyle().Foreground(colorMuted)
)

func clampWidth(width int) int {
	if width < minWidth {
		return minWidth
	}
	return width
}

// image renders a media reference. Media is never decoded.
func image(path string) string {
	if path == "" {
		return ""
	}
	return imageStyle.Render("[" + path + "]")
}
