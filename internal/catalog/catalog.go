// Package catalog defines the static content shown by velvetpour: the drink
// listings, the recipe carousel items and the bar's contact details.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/velvetpour/internal/carousel"
	"github.com/google/uuid"
)

// ErrNoCocktails indicates a catalog without carousel items.
var ErrNoCocktails = fmt.Errorf("catalog: no cocktails: %w", carousel.ErrInvalidConfiguration)

// Cocktail is one carousel entry.
type Cocktail struct {
	ID          string `toml:"id" yaml:"id" json:"id"`
	Name        string `toml:"name" yaml:"name" json:"name"`
	Image       string `toml:"image" yaml:"image" json:"image"`
	Title       string `toml:"title" yaml:"title" json:"title"`
	Description string `toml:"description" yaml:"description" json:"description"`
}

// Listing is a row of the "most popular" and "most loved" drink lists.
type Listing struct {
	Name    string `toml:"name" yaml:"name" json:"name"`
	Country string `toml:"country" yaml:"country" json:"country"`
	Detail  string `toml:"detail" yaml:"detail" json:"detail"`
	Price   string `toml:"price" yaml:"price" json:"price"`
}

// NavLink is an entry of the navigation bar.
type NavLink struct {
	ID    string `toml:"id" yaml:"id" json:"id"`
	Title string `toml:"title" yaml:"title" json:"title"`
}

// Hero is the opening section.
type Hero struct {
	Title    string `toml:"title" yaml:"title" json:"title"`
	Tagline  string `toml:"tagline" yaml:"tagline" json:"tagline"`
	Subtitle string `toml:"subtitle" yaml:"subtitle" json:"subtitle"`
	Blurb    string `toml:"blurb" yaml:"blurb" json:"blurb"`
	Action   string `toml:"action" yaml:"action" json:"action"`
	Video    string `toml:"video" yaml:"video" json:"video"`
}

// About is the rating and image grid section.
type About struct {
	Badge     string   `toml:"badge" yaml:"badge" json:"badge"`
	Heading   string   `toml:"heading" yaml:"heading" json:"heading"`
	Blurb     string   `toml:"blurb" yaml:"blurb" json:"blurb"`
	Rating    float64  `toml:"rating" yaml:"rating" json:"rating"`
	Customers int      `toml:"customers" yaml:"customers" json:"customers"`
	Grid      []string `toml:"grid" yaml:"grid" json:"grid"`
}

// Art is the masked reveal section.
type Art struct {
	Heading      string   `toml:"heading" yaml:"heading" json:"heading"`
	Good         []string `toml:"good" yaml:"good" json:"good"`
	Features     []string `toml:"features" yaml:"features" json:"features"`
	Image        string   `toml:"image" yaml:"image" json:"image"`
	RevealTitle  string   `toml:"reveal_title" yaml:"reveal_title" json:"reveal_title"`
	RevealHeader string   `toml:"reveal_header" yaml:"reveal_header" json:"reveal_header"`
	RevealText   string   `toml:"reveal_text" yaml:"reveal_text" json:"reveal_text"`
}

// OpeningHours is one line of the opening hours table.
type OpeningHours struct {
	Day  string `toml:"day" yaml:"day" json:"day"`
	Time string `toml:"time" yaml:"time" json:"time"`
}

// Social is a social network link.
type Social struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	URL  string `toml:"url" yaml:"url" json:"url"`
}

// Contact is the footer section.
type Contact struct {
	Heading string         `toml:"heading" yaml:"heading" json:"heading"`
	Address string         `toml:"address" yaml:"address" json:"address"`
	Phone   string         `toml:"phone" yaml:"phone" json:"phone"`
	Email   string         `toml:"email" yaml:"email" json:"email"`
	Hours   []OpeningHours `toml:"hours" yaml:"hours" json:"hours"`
	Socials []Social       `toml:"socials" yaml:"socials" json:"socials"`
}

// Catalog is the full content of the site.
type Catalog struct {
	Brand     string     `toml:"brand" yaml:"brand" json:"brand"`
	Nav       []NavLink  `toml:"nav" yaml:"nav" json:"nav"`
	Hero      Hero       `toml:"hero" yaml:"hero" json:"hero"`
	Cocktails []Listing  `toml:"cocktails" yaml:"cocktails" json:"cocktails"`
	Mocktails []Listing  `toml:"mocktails" yaml:"mocktails" json:"mocktails"`
	About     About      `toml:"about" yaml:"about" json:"about"`
	Art       Art        `toml:"art" yaml:"art" json:"art"`
	Menu      []Cocktail `toml:"menu" yaml:"menu" json:"menu"`
	Contact   Contact    `toml:"contact" yaml:"contact" json:"contact"`
}

// Normalize trims whitespace and assigns IDs to menu items that have none.
func (c *Catalog) Normalize() {
	c.Brand = strings.TrimSpace(c.Brand)
	for i := range c.Menu {
		item := &c.Menu[i]
		item.ID = strings.TrimSpace(item.ID)
		item.Name = strings.TrimSpace(item.Name)
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
	}
	for i := range c.Cocktails {
		c.Cocktails[i].Name = strings.TrimSpace(c.Cocktails[i].Name)
	}
	for i := range c.Mocktails {
		c.Mocktails[i].Name = strings.TrimSpace(c.Mocktails[i].Name)
	}
}

// Validate reports every problem found in the catalog.
// A catalog without menu items wraps ErrNoCocktails.
func (c Catalog) Validate() error {
	var errs []error
	if c.Brand == "" {
		errs = append(errs, errors.New("brand: must not be empty"))
	}
	if len(c.Menu) == 0 {
		errs = append(errs, ErrNoCocktails)
	}
	seen := make(map[string]int, len(c.Menu))
	for i, item := range c.Menu {
		if item.Name == "" {
			errs = append(errs, fmt.Errorf("menu[%d].name: must not be empty", i))
		}
		if item.ID == "" {
			continue
		}
		if prev, ok := seen[item.ID]; ok {
			errs = append(errs, fmt.Errorf("menu[%d].id: duplicate of menu[%d] (%q)", i, prev, item.ID))
			continue
		}
		seen[item.ID] = i
	}
	for i, l := range c.Cocktails {
		if l.Name == "" {
			errs = append(errs, fmt.Errorf("cocktails[%d].name: must not be empty", i))
		}
	}
	for i, l := range c.Mocktails {
		if l.Name == "" {
			errs = append(errs, fmt.Errorf("mocktails[%d].name: must not be empty", i))
		}
	}
	for i, s := range c.Contact.Socials {
		if s.URL == "" {
			errs = append(errs, fmt.Errorf("contact.socials[%d].url: must not be empty", i))
		}
	}
	return errors.Join(errs...)
}

// Carousel builds a recipe carousel over the menu items.
func (c Catalog) Carousel() (*carousel.Controller[Cocktail], error) {
	ctrl, err := carousel.New(c.Menu)
	if err != nil {
		return nil, ErrNoCocktails
	}
	return ctrl, nil
}

// IndexOf returns the menu position of the cocktail with the given ID, or -1.
func (c Catalog) IndexOf(id string) int {
	for i, item := range c.Menu {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Names returns the menu item names in order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Menu))
	for i, item := range c.Menu {
		names[i] = item.Name
	}
	return names
}
