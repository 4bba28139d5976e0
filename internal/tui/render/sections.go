package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/tui/reveal"
)

// Nav renders the brand and the navigation links, highlighting active.
func Nav(brand string, links []catalog.NavLink, active string) string {
	parts := make([]string, 0, len(links))
	for _, link := range links {
		style := navStyle
		if link.ID == active {
			style = navActiveStyle
		}
		parts = append(parts, style.Render(link.Title))
	}
	return brandStyle.Render(brand) + "   " + strings.Join(parts, "  ")
}

// Hero renders the opening section. progress reveals the title letter by
// letter and then the remaining text.
func Hero(h catalog.Hero, progress float64, width int) string {
	width = clampWidth(width)
	title := reveal.Prefix(h.Title, progress)
	lines := []string{
		headingStyle.Render(strings.ToUpper(title)),
	}
	if progress >= 1 {
		lines = append(lines,
			titleStyle.Render(h.Tagline),
			"",
			titleStyle.Render(h.Subtitle),
			lipgloss.NewStyle().Width(width).Render(h.Blurb),
		)
		if h.Action != "" {
			lines = append(lines, priceStyle.Render("→ "+h.Action))
		}
		if v := image(h.Video); v != "" {
			lines = append(lines, v)
		}
	}
	return sectionStyle.Render(strings.Join(lines, "\n"))
}

// Listings renders the popular cocktails and loved mocktails side by side,
// or stacked when the terminal is narrow.
func Listings(c catalog.Catalog, width int) string {
	width = clampWidth(width)
	colWidth := width/2 - 2
	stacked := colWidth < 28
	if stacked {
		colWidth = width
	}
	left := listing("Most popular cocktails:", c.Cocktails, colWidth)
	right := listing("Most loved mocktails:", c.Mocktails, colWidth)
	if stacked {
		return sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, left, "", right))
	}
	return sectionStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
}

func listing(heading string, items []catalog.Listing, width int) string {
	lines := []string{headingStyle.Render(heading)}
	for _, item := range items {
		name := titleStyle.Render(item.Name)
		price := priceStyle.Render(item.Price)
		gap := width - lipgloss.Width(name) - lipgloss.Width(price)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines,
			name+strings.Repeat(" ", gap)+price,
			mutedStyle.Render(fmt.Sprintf("%s | %s", item.Country, item.Detail)),
		)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// About renders the rating block and the image grid.
func About(a catalog.About, width int, md *Markdown) string {
	width = clampWidth(width)
	lines := []string{
		mutedStyle.Render(a.Badge),
		headingStyle.Render(a.Heading),
		md.Render(a.Blurb, width),
		titleStyle.Render(fmt.Sprintf("%s/5", formatRating(a.Rating))) + "  " + stars(a.Rating),
		mutedStyle.Render(fmt.Sprintf("More than +%s customers", groupThousands(a.Customers))),
	}
	if len(a.Grid) > 0 {
		cells := make([]string, 0, len(a.Grid))
		for _, g := range a.Grid {
			cells = append(cells, image(g))
		}
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(strings.Join(cells, " ")))
	}
	return sectionStyle.Render(strings.Join(lines, "\n"))
}

func formatRating(r float64) string {
	s := fmt.Sprintf("%.1f", r)
	return strings.TrimSuffix(s, ".0")
}

func stars(r float64) string {
	full := int(r)
	if full > 5 {
		full = 5
	}
	if full < 0 {
		full = 0
	}
	s := strings.Repeat("★", full)
	if r-float64(full) >= 0.5 && full < 5 {
		s += "☆"
		full++
	}
	return priceStyle.Render(s) + mutedStyle.Render(strings.Repeat("·", 5-full))
}

func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return s
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Art renders the masked reveal section. progress opens the mask and then
// shows the reveal text line by line.
func Art(a catalog.Art, progress float64, width int) string {
	width = clampWidth(width)
	lines := []string{headingStyle.Render(a.Heading)}
	for _, g := range a.Good {
		lines = append(lines, "✓ "+g)
	}
	lines = append(lines, "")

	opened := reveal.Visible(width, progress)
	bar := maskStyle.Render(strings.Repeat(maskRune, width-opened)) + strings.Repeat(" ", opened)
	lines = append(lines, bar)
	if img := image(a.Image); img != "" {
		lines = append(lines, img)
	}
	for _, f := range a.Features {
		lines = append(lines, "✓ "+f)
	}

	revealed := strings.Split(strings.Join([]string{
		titleStyle.Render(a.RevealTitle),
		headingStyle.Render(a.RevealHeader),
		lipgloss.NewStyle().Width(width).Render(a.RevealText),
	}, "\n"), "\n")
	shown := reveal.Visible(len(revealed), progress)
	lines = append(lines, "")
	lines = append(lines, revealed[:shown]...)
	for i := shown; i < len(revealed); i++ {
		lines = append(lines, "")
	}
	return sectionStyle.Render(strings.Join(lines, "\n"))
}

// Contact renders the footer with the address, hours and socials.
func Contact(c catalog.Contact, width int) string {
	width = clampWidth(width)
	lines := []string{
		headingStyle.Render(c.Heading),
		"",
		titleStyle.Render("Visit Our Bar"),
		c.Address,
		"",
		titleStyle.Render("Contact Us"),
		c.Phone,
		c.Email,
		"",
		titleStyle.Render("Open Every Day"),
	}
	lines = append(lines, Hours(c.Hours)...)
	if len(c.Socials) > 0 {
		lines = append(lines, "", titleStyle.Render("Socials"))
		for _, s := range c.Socials {
			lines = append(lines, fmt.Sprintf("%s %s", s.Name, mutedStyle.Render(s.URL)))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// Hours renders the opening hours, one line per entry, with days aligned.
func Hours(hours []catalog.OpeningHours) []string {
	dayWidth := 0
	for _, h := range hours {
		dayWidth = max(dayWidth, lipgloss.Width(h.Day))
	}
	lines := make([]string, 0, len(hours))
	for _, h := range hours {
		lines = append(lines, fmt.Sprintf("%-*s : %s", dayWidth, h.Day, h.Time))
	}
	return lines
}
