package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/velvetpour/internal/catalog"
)

// Listing kinds.
const (
	KindCocktail = "cocktail"
	KindMocktail = "mocktail"
)

// VariableContext is one listing row with its position in its list.
type VariableContext struct {
	Listing catalog.Listing
	Kind    string
	// Index is zero based.
	Index int
}

// VariableResolver resolves template variables to their values.
type VariableResolver interface {
	Resolve(varName string, ctx VariableContext) (string, error)
}

type variableResolver struct{}

// NewVariableResolver creates a variable resolver.
func NewVariableResolver() VariableResolver {
	return variableResolver{}
}

var variables = []string{"name", "price", "country", "detail", "kind", "index", "number"}

// Variables lists the names a template may use.
func Variables() []string {
	return append([]string(nil), variables...)
}

// IsVariable reports whether name is a known variable.
func IsVariable(name string) bool {
	for _, v := range variables {
		if v == name {
			return true
		}
	}
	return false
}

// Resolve returns the string value for a variable from the context.
func (variableResolver) Resolve(varName string, ctx VariableContext) (string, error) {
	switch varName {
	case "name":
		return ctx.Listing.Name, nil
	case "price":
		return ctx.Listing.Price, nil
	case "country":
		return ctx.Listing.Country, nil
	case "detail":
		return ctx.Listing.Detail, nil
	case "kind":
		return ctx.Kind, nil
	case "index":
		return strconv.Itoa(ctx.Index), nil
	case "number":
		// One based, as printed in the menu.
		return strconv.Itoa(ctx.Index + 1), nil
	default:
		return "", unknownVariable(varName)
	}
}

func unknownVariable(name string) error {
	return fmt.Errorf("unknown variable: %s (available: %s)", name, strings.Join(variables, ", "))
}

// Contexts flattens the cocktail and mocktail listings of c, in that order.
func Contexts(c catalog.Catalog) []VariableContext {
	out := make([]VariableContext, 0, len(c.Cocktails)+len(c.Mocktails))
	for i, l := range c.Cocktails {
		out = append(out, VariableContext{Listing: l, Kind: KindCocktail, Index: i})
	}
	for i, l := range c.Mocktails {
		out = append(out, VariableContext{Listing: l, Kind: KindMocktail, Index: i})
	}
	return out
}
