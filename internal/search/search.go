// Package search resolves free-text cocktail queries to menu positions.
package search

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/cristianoliveira/velvetpour/internal/carousel"
)

// ErrNoMatch is returned by Resolve when nothing matches the query.
var ErrNoMatch = errors.New("no match")

// Match is a ranked candidate.
type Match struct {
	// Index is the position of the candidate in the searched list.
	Index int
	// Name is the candidate as given.
	Name string
	// Score is lower for better matches. Exact matches score 0.
	Score int
}

const (
	scoreExact = iota
	scorePrefix
	scoreWordPrefix
	scoreSubstring
	scoreFuzzyBase
)

// Options configures a Matcher.
type Options struct {
	// MaxDistance is the largest edit distance accepted for fuzzy matches.
	// Zero means a third of the query length, with a minimum of one.
	MaxDistance int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDistance sets the maximum accepted edit distance.
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		o.MaxDistance = d
	}
}

// Matcher ranks names against a query.
type Matcher struct {
	opts Options
}

// NewMatcher creates a Matcher.
func NewMatcher(opts ...Option) *Matcher {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Matcher{opts: o}
}

// Rank returns all names matching query, best first. Ties keep list order.
func (m *Matcher) Rank(query string, names []string) []Match {
	q := normalize(query)
	if q == "" {
		return nil
	}
	maxDist := m.opts.MaxDistance
	if maxDist <= 0 {
		maxDist = max(1, len([]rune(q))/3)
	}

	var matches []Match
	for i, name := range names {
		n := normalize(name)
		if n == "" {
			continue
		}
		score, ok := scoreName(q, n, maxDist)
		if !ok {
			continue
		}
		matches = append(matches, Match{Index: i, Name: name, Score: score})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score < matches[b].Score
	})
	return matches
}

// Best returns the top ranked match.
func (m *Matcher) Best(query string, names []string) (Match, bool) {
	matches := m.Rank(query, names)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// Resolve maps query to a position in names. An integer query is a zero based
// position normalized into range, so -1 is the last name. Anything else is
// matched by name.
func (m *Matcher) Resolve(query string, names []string) (int, error) {
	if len(names) == 0 {
		return 0, fmt.Errorf("resolve %q: %w", query, carousel.ErrInvalidConfiguration)
	}
	q := strings.TrimSpace(query)
	if i, err := strconv.Atoi(q); err == nil {
		return carousel.Wrap(i, len(names)), nil
	}
	match, ok := m.Best(q, names)
	if !ok {
		return 0, fmt.Errorf("resolve %q: %w", query, ErrNoMatch)
	}
	return match.Index, nil
}

func scoreName(q, n string, maxDist int) (int, bool) {
	switch {
	case q == n:
		return scoreExact, true
	case strings.HasPrefix(n, q):
		return scorePrefix, true
	case hasWordPrefix(n, q):
		return scoreWordPrefix, true
	case strings.Contains(n, q):
		return scoreSubstring, true
	}
	best := levenshtein.ComputeDistance(q, n)
	for _, word := range strings.Fields(n) {
		best = min(best, levenshtein.ComputeDistance(q, word))
	}
	if best > maxDist {
		return 0, false
	}
	return scoreFuzzyBase + best, true
}

func hasWordPrefix(name, q string) bool {
	for _, word := range strings.Fields(name) {
		if strings.HasPrefix(word, q) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
