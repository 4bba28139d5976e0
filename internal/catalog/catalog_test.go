package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/velvetpour/internal/carousel"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	assert.Equal(t, "Velvet Pour", c.Brand)
	assert.Equal(t, []string{"Classic Mojito", "Raspberry Mojito", "Violet Breeze", "Curacao Mojito"}, c.Names())
	assert.Len(t, c.Cocktails, 4)
	assert.Len(t, c.Mocktails, 4)
	assert.Len(t, c.Contact.Hours, 4)
	assert.InDelta(t, 4.5, c.About.Rating, 0.001)
}

func TestCarouselOverMenu(t *testing.T) {
	c := Default()

	ctrl, err := c.Carousel()
	require.NoError(t, err)
	assert.Equal(t, "Classic Mojito", ctrl.Current().Name)
	assert.Equal(t, "Curacao Mojito", ctrl.ItemAt(-1).Name)
}

func TestCarouselWithoutMenuFails(t *testing.T) {
	c := Catalog{Brand: "Empty"}

	ctrl, err := c.Carousel()
	require.ErrorIs(t, err, carousel.ErrInvalidConfiguration)
	require.ErrorIs(t, err, ErrNoCocktails)
	assert.Nil(t, ctrl)
}

func TestValidateCollectsErrors(t *testing.T) {
	c := Catalog{
		Menu: []Cocktail{
			{ID: "a", Name: "A"},
			{ID: "a", Name: ""},
		},
		Mocktails: []Listing{{Name: ""}},
		Contact:   Contact{Socials: []Social{{Name: "Instagram"}}},
	}

	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "brand")
	assert.Contains(t, msg, "menu[1].name")
	assert.Contains(t, msg, "menu[1].id: duplicate of menu[0]")
	assert.Contains(t, msg, "mocktails[0].name")
	assert.Contains(t, msg, "contact.socials[0].url")
	assert.NotErrorIs(t, err, ErrNoCocktails)
}

func TestValidateEmptyMenu(t *testing.T) {
	err := Catalog{Brand: "x"}.Validate()
	require.ErrorIs(t, err, ErrNoCocktails)
}

func TestNormalizeAssignsIDs(t *testing.T) {
	c := Catalog{
		Brand: "  Bar  ",
		Menu:  []Cocktail{{Name: " Negroni "}, {ID: "keep", Name: "Spritz"}},
	}

	c.Normalize()

	assert.Equal(t, "Bar", c.Brand)
	assert.Equal(t, "Negroni", c.Menu[0].Name)
	assert.NotEmpty(t, c.Menu[0].ID)
	assert.Equal(t, "keep", c.Menu[1].ID)
	assert.Equal(t, 0, c.IndexOf(c.Menu[0].ID))
	assert.Equal(t, 1, c.IndexOf("keep"))
	assert.Equal(t, -1, c.IndexOf("missing"))
}

func TestDecodeRejectsUnknownTOMLFields(t *testing.T) {
	data := []byte("brand = \"x\"\nunknown = 1\n[[menu]]\nname = \"A\"\n")

	_, err := Decode(data, FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode toml")
}

func TestDecodeRejectsUnknownYAMLFields(t *testing.T) {
	data := []byte("brand: x\nflavour: strong\nmenu:\n  - name: A\n")

	_, err := Decode(data, FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestDecodeEmptyYAMLReportsMissingMenu(t *testing.T) {
	_, err := Decode(nil, FormatYAML)
	require.ErrorIs(t, err, ErrNoCocktails)
}

func TestEncodeDecodeKeepsContent(t *testing.T) {
	want := Default()
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, want, format))

			got, err := Decode(buf.Bytes(), format)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadPicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bar.yml")
	yamlData := "brand: Corner Bar\nmenu:\n  - id: old-fashioned\n    name: Old Fashioned\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Corner Bar", c.Brand)
	assert.Equal(t, "old-fashioned", c.Menu[0].ID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault("  ")
	require.NoError(t, err)
	assert.Equal(t, "Velvet Pour", c.Brand)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTOML},
		{in: "TOML", want: FormatTOML},
		{in: "yml", want: FormatYAML},
		{in: "yaml", want: FormatYAML},
		{in: "json", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("a/b.YAML"))
	assert.Equal(t, FormatYAML, FormatForPath("b.yml"))
	assert.Equal(t, FormatTOML, FormatForPath("b.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("noext"))
}
