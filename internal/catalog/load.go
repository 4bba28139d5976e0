package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

const (
	// FormatTOML is the default catalog format.
	FormatTOML Format = "toml"
	// FormatYAML is accepted for .yaml and .yml files.
	FormatYAML Format = "yaml"
)

//go:embed default.toml
var defaultCatalog []byte

// Default returns the built-in Velvet Pour catalog.
func Default() Catalog {
	c, err := Decode(defaultCatalog, FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in catalog is invalid: %v", err))
	}
	return c
}

// ParseFormat converts a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog format %q: must be toml or yaml", name)
	}
}

// FormatForPath picks the format from a file extension. Unknown extensions are TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads, normalizes and validates a catalog file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Decode(data, FormatForPath(path))
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// LoadOrDefault loads path, or returns the built-in catalog when path is empty.
func LoadOrDefault(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

// Decode parses data in the given format. Unknown fields are rejected.
func Decode(data []byte, format Format) (Catalog, error) {
	var c Catalog
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return Catalog{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Catalog{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return Catalog{}, fmt.Errorf("unsupported catalog format %q", format)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// Encode writes the catalog in the given format.
func Encode(w io.Writer, c Catalog, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported catalog format %q", format)
	}
}
