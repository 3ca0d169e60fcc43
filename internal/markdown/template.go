package markdown

import (
	"fmt"
	"strings"
)

// DefaultPathTemplate is the identity template: the path line is the path
// itself.
const DefaultPathTemplate = "{}"

// PathTemplate is a format pattern with exactly one substitution slot,
// used to render a path line on write and to recognize one on parse.
type PathTemplate struct {
	pattern string
	prefix  string
	suffix  string
}

// NewPathTemplate compiles a template pattern. The pattern must contain
// exactly one "{}" slot.
func NewPathTemplate(pattern string) (*PathTemplate, error) {
	if strings.Count(pattern, "{}") != 1 {
		return nil, fmt.Errorf("path template %q must contain exactly one {} slot", pattern)
	}
	prefix, suffix, _ := strings.Cut(pattern, "{}")
	return &PathTemplate{pattern: pattern, prefix: prefix, suffix: suffix}, nil
}

// MustPathTemplate is NewPathTemplate for patterns known to be valid.
func MustPathTemplate(pattern string) *PathTemplate {
	t, err := NewPathTemplate(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

// Pattern returns the original template pattern.
func (t *PathTemplate) Pattern() string {
	return t.pattern
}

// Render substitutes path into the template slot.
func (t *PathTemplate) Render(path string) string {
	return t.prefix + path + t.suffix
}

// Extract applies the inverse of the template to a candidate line.
// It reports false when the line does not match the template's fixed text
// or when the extracted path is empty.
func (t *PathTemplate) Extract(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, t.prefix)
	if !ok {
		return "", false
	}
	rest, ok = strings.CutSuffix(rest, t.suffix)
	if !ok {
		return "", false
	}
	path := strings.TrimSpace(rest)
	if path == "" {
		return "", false
	}
	return path, true
}
