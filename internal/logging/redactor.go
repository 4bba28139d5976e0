package logging

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var segmentSplitter = regexp.MustCompile(`[^a-z0-9]+`)

// Values of these key segments are masked: credentials and contact details.
var maskedSegments = []string{"secret", "password", "token", "key", "auth", "credential", "email", "phone"}

// Values of these key segments are file paths; the user's home directory is
// shortened to "~" in them.
var pathSegments = []string{"path", "db", "watch", "file", "dir"}

// redactor scrubs log key-value pairs before they are written.
type redactor struct {
	masked map[string]bool
	paths  map[string]bool
	home   string
}

func newRedactor() *redactor {
	home, _ := os.UserHomeDir()
	return newRedactorWithHome(home)
}

func newRedactorWithHome(home string) *redactor {
	return &redactor{
		masked: wordSet(maskedSegments),
		paths:  wordSet(pathSegments),
		home:   filepath.Clean(home),
	}
}

func wordSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// redact returns a copy of the flattened pairs with sensitive values masked
// and home directories shortened.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		key, ok := result[i].(string)
		if !ok {
			continue
		}
		switch {
		case r.matches(r.masked, key):
			result[i+1] = redacted
		case r.matches(r.paths, key):
			if s, ok := result[i+1].(string); ok {
				result[i+1] = r.shortenHome(s)
			}
		}
	}
	return result
}

// isSensitive reports whether the value of key is masked.
func (r *redactor) isSensitive(key string) bool {
	return r.matches(r.masked, key)
}

// matches reports whether any segment of key is in words.
func (r *redactor) matches(words map[string]bool, key string) bool {
	for _, part := range segmentSplitter.Split(strings.ToLower(key), -1) {
		if words[part] {
			return true
		}
	}
	return false
}

func (r *redactor) shortenHome(path string) string {
	if r.home == "" || r.home == "." || r.home == string(filepath.Separator) {
		return path
	}
	if path == r.home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, r.home+string(filepath.Separator)); ok {
		return filepath.Join("~", rest)
	}
	return path
}
