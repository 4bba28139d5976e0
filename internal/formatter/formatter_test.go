package formatter

import (
	"testing"

	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateEngineParse(t *testing.T) {
	engine := NewTemplateEngine()

	tests := []struct {
		name     string
		template string
		want     []string
		wantErr  string
	}{
		{name: "empty template", template: "", want: []string{}},
		{name: "no variables", template: "Cheers", want: []string{}},
		{name: "single variable", template: "Drink: ${name}", want: []string{"name"}},
		{name: "duplicates collapse", template: "${name} ${price} ${name}", want: []string{"name", "price"}},
		{name: "unknown variable", template: "${vintage}", wantErr: "unknown variable: vintage"},
		{name: "unclosed variable", template: "${name", wantErr: "unclosed variable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Parse(tt.template)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplateEngineSubstitute(t *testing.T) {
	engine := NewTemplateEngine()
	ctx := VariableContext{
		Listing: catalog.Listing{Name: "Citrus Glow", Country: "CA", Detail: "750 ml", Price: "$20"},
		Kind:    KindMocktail,
		Index:   2,
	}

	got, err := engine.Substitute("${number}/${index} ${kind}: ${name} (${country}, ${detail}) ${price}", ctx)

	require.NoError(t, err)
	assert.Equal(t, "3/2 mocktail: Citrus Glow (CA, 750 ml) $20", got)

	_, err = engine.Substitute("${abv}", ctx)
	assert.ErrorContains(t, err, "available: name, price")
}

func TestPresetRegistry(t *testing.T) {
	registry := NewPresetRegistry()

	names := []string{}
	for _, p := range registry.List() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"compact", "detailed", "csv", "names"}, names)

	require.NoError(t, registry.Register(Preset{Name: "compact", Template: "${name}"}))
	require.NoError(t, registry.Register(Preset{Name: "prices", Template: "${price}"}))
	p, err := registry.Get("compact")
	require.NoError(t, err)
	assert.Equal(t, "${name}", p.Template)
	assert.Len(t, registry.List(), 5, "overwriting keeps the position")

	assert.Error(t, registry.Register(Preset{Template: "${name}"}))
	assert.Error(t, registry.Register(Preset{Name: "empty"}))
	_, err = registry.Get("missing")
	assert.ErrorContains(t, err, "preset not found")
}

func TestResolve(t *testing.T) {
	registry := NewPresetRegistry()

	got, err := Resolve(registry, "names")
	require.NoError(t, err)
	assert.Equal(t, "${name}", got)

	got, err = Resolve(registry, "${price} ${name}")
	require.NoError(t, err)
	assert.Equal(t, "${price} ${name}", got)

	_, err = Resolve(registry, "fancy")
	assert.ErrorContains(t, err, "compact, detailed, csv, names")
}

func TestRender(t *testing.T) {
	c := catalog.Catalog{
		Cocktails: []catalog.Listing{{Name: "Rhino Pale Ale", Price: "$20"}},
		Mocktails: []catalog.Listing{{Name: "Tropical Bloom", Price: "$10"}, {Name: "Lavender Fizz", Price: "$29"}},
	}

	got, err := Render(NewTemplateEngine(), "${kind} ${number} ${name} ${price}", c)

	require.NoError(t, err)
	want := []string{
		"cocktail 1 Rhino Pale Ale $20",
		"mocktail 1 Tropical Bloom $10",
		"mocktail 2 Lavender Fizz $29",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}

	_, err = Render(NewTemplateEngine(), "${nope}", c)
	assert.Error(t, err)
}
