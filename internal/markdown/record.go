// Package markdown converts between named text blobs and fenced markdown
// code blocks annotated with file paths. It contains the serializer
// (Formatter), the block parser (Parser), and the unclosed-block policies.
// The package is pure: all I/O, prompting, and clipboard access live in the
// surrounding collaborators.
package markdown

import "strings"

// PathLocation selects where a block's path annotation lives relative to
// its opening fence.
type PathLocation string

const (
	// PathAbove places the path on its own line above the opening fence.
	PathAbove PathLocation = "above"
	// PathBelow places the path as a comment on the first line inside the block.
	PathBelow PathLocation = "below"
)

// ParsePathLocation validates a path location string.
func ParsePathLocation(s string) (PathLocation, bool) {
	switch PathLocation(s) {
	case PathAbove, PathBelow:
		return PathLocation(s), true
	}
	return "", false
}

// TextRecord is one named text blob: a file extracted from a document or a
// source file about to be embedded in one. Text always ends with a trailing
// newline unless it is empty. TokenEstimate is display-only.
type TextRecord struct {
	Path          string
	Text          string
	TokenEstimate int
}

// TokenEstimator estimates the token count of a text for display purposes.
type TokenEstimator interface {
	Estimate(text string) int
}

// ParseResult is the outcome of parsing one document.
type ParseResult struct {
	Records            []TextRecord // resolved blocks in document order
	LastBlockUnclosed  bool         // final record's block had no closing fence
	SkippedMissingPath int          // blocks dropped for lack of a path
}

// normalizeText ensures non-empty text ends with a trailing newline.
func normalizeText(text string) string {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}
