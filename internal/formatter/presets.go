package formatter

import (
	"errors"
	"fmt"
	"strings"
)

// Preset is a named template.
type Preset struct {
	Name        string
	Template    string
	Description string
}

// PresetRegistry manages template presets.
type PresetRegistry interface {
	// Get returns a preset by name.
	Get(name string) (*Preset, error)

	// List returns all presets in registration order.
	List() []Preset

	// Register adds a preset or replaces one with the same name.
	Register(preset Preset) error
}

type presetRegistry struct {
	presets map[string]Preset
	order   []string
}

// NewPresetRegistry creates a registry holding the default presets.
func NewPresetRegistry() PresetRegistry {
	registry := &presetRegistry{presets: make(map[string]Preset)}
	for _, p := range []Preset{
		{Name: "compact", Template: "${name} ${price}", Description: "Name and price"},
		{Name: "detailed", Template: "${number}. ${name} (${country}, ${detail}) ${price}", Description: "Numbered with origin and detail"},
		{Name: "csv", Template: "${kind},${name},${country},${detail},${price}", Description: "Comma separated, one listing per line"},
		{Name: "names", Template: "${name}", Description: "Names only"},
	} {
		_ = registry.Register(p)
	}
	return registry
}

// Get returns a preset by name, or an error if not found.
func (pr *presetRegistry) Get(name string) (*Preset, error) {
	preset, ok := pr.presets[name]
	if !ok {
		return nil, fmt.Errorf("preset not found: %s", name)
	}
	return &preset, nil
}

// List returns all available presets in registration order.
func (pr *presetRegistry) List() []Preset {
	result := make([]Preset, 0, len(pr.order))
	for _, name := range pr.order {
		result = append(result, pr.presets[name])
	}
	return result
}

// Register adds a new preset or overwrites an existing one.
func (pr *presetRegistry) Register(preset Preset) error {
	if preset.Name == "" {
		return errors.New("preset name cannot be empty")
	}
	if preset.Template == "" {
		return errors.New("preset template cannot be empty")
	}
	if _, exists := pr.presets[preset.Name]; !exists {
		pr.order = append(pr.order, preset.Name)
	}
	pr.presets[preset.Name] = preset
	return nil
}

// Resolve returns the template for format: a preset name, or the format itself
// when it contains a ${variable}.
func Resolve(registry PresetRegistry, format string) (string, error) {
	if preset, err := registry.Get(format); err == nil {
		return preset.Template, nil
	}
	if strings.Contains(format, "${") {
		return format, nil
	}
	names := make([]string, 0)
	for _, p := range registry.List() {
		names = append(names, p.Name)
	}
	return "", fmt.Errorf("unknown format %q: use a preset (%s) or a ${variable} template", format, strings.Join(names, ", "))
}
