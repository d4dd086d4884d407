package walker

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a path relative to a scan root is excluded.
// The zero value and a nil *Matcher exclude nothing.
type Matcher struct {
	patterns []string
}

// NewMatcher validates patterns and returns a Matcher for them.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		p = filepath.ToSlash(p)
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("walker: invalid exclude pattern %q", p)
		}
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// Match returns true if relPath matches any pattern, either as a whole or
// by its base name.
func (m *Matcher) Match(relPath string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}
	normalized := filepath.ToSlash(relPath)
	base := path.Base(normalized)

	for _, pattern := range m.patterns {
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
