package state

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down         key.Binding
	Up           key.Binding
	PageDown     key.Binding
	PageUp       key.Binding
	NextSection  key.Binding
	PrevSection  key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PrevCocktail key.Binding
	NextCocktail key.Binding
	PrevAnywhere key.Binding
	NextAnywhere key.Binding
	JumpTab      key.Binding
	Search       key.Binding
	Command      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		NextSection:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
		Top:          key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:       key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PrevCocktail: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous cocktail")),
		NextCocktail: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next cocktail")),
		PrevAnywhere: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous cocktail")),
		NextAnywhere: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next cocktail")),
		JumpTab:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick cocktail")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find cocktail")),
		Command:      key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.PrevAnywhere, k.NextAnywhere, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp},
		{k.NextSection, k.PrevSection, k.Top, k.Bottom},
		{k.PrevCocktail, k.NextCocktail, k.PrevAnywhere, k.NextAnywhere, k.JumpTab},
		{k.Search, k.Command, k.Help, k.Quit},
	}
}
