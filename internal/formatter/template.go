// Package formatter renders drink listings through ${variable} line templates
// and a registry of named presets.
package formatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cristianoliveira/velvetpour/internal/catalog"
)

// TemplateEngine parses templates and substitutes variables.
type TemplateEngine interface {
	// Parse returns the variables used by template, without duplicates.
	Parse(template string) ([]string, error)

	// Substitute replaces every variable in template with its value for ctx.
	Substitute(template string, ctx VariableContext) (string, error)
}

type templateEngine struct {
	variablePattern *regexp.Regexp
	resolver        VariableResolver
}

// NewTemplateEngine creates a template engine.
func NewTemplateEngine() TemplateEngine {
	return &templateEngine{
		variablePattern: regexp.MustCompile(`\$\{([a-z0-9-]+)\}`),
		resolver:        NewVariableResolver(),
	}
}

// Parse identifies the variables in a template using ${variable-name} syntax.
// Unknown variables are an error.
func (te *templateEngine) Parse(template string) ([]string, error) {
	if err := validateDelimiters(template); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	variables := []string{}
	for _, match := range te.variablePattern.FindAllStringSubmatch(template, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		if !IsVariable(name) {
			return nil, unknownVariable(name)
		}
		seen[name] = true
		variables = append(variables, name)
	}
	return variables, nil
}

// Substitute replaces all variables in the template with values from the context.
func (te *templateEngine) Substitute(template string, ctx VariableContext) (string, error) {
	if err := validateDelimiters(template); err != nil {
		return "", err
	}
	var firstErr error
	out := te.variablePattern.ReplaceAllStringFunc(template, func(match string) string {
		name := te.variablePattern.FindStringSubmatch(match)[1]
		value, err := te.resolver.Resolve(name, ctx)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func validateDelimiters(template string) error {
	opens := strings.Count(template, "${")
	closes := strings.Count(template, "}")
	if opens > closes {
		return fmt.Errorf("unclosed variable in template %q", template)
	}
	return nil
}

// Render formats every listing of c with template, one line each.
func Render(engine TemplateEngine, template string, c catalog.Catalog) ([]string, error) {
	if _, err := engine.Parse(template); err != nil {
		return nil, err
	}
	contexts := Contexts(c)
	lines := make([]string, 0, len(contexts))
	for _, ctx := range contexts {
		line, err := engine.Substitute(template, ctx)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
