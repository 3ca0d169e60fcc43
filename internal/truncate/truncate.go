// Package truncate resolves bracketed slice suffixes on file references,
// e.g. "main.py[2:5]" or "log.txt[char=0:80, -1]", and applies them to file
// contents before embedding.
package truncate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Unit selects whether a term's indices count lines or characters.
type Unit string

const (
	UnitLine Unit = "line"
	UnitChar Unit = "char"
)

// Term is one element of a truncation spec: either a single index or a
// start:end range, counted in lines or characters. Negative indices count
// from the end. Open range ends are expressed via HasStart/HasEnd.
type Term struct {
	Unit     Unit
	IsRange  bool
	Index    int // single-index terms
	Start    int
	End      int
	HasStart bool
	HasEnd   bool
}

// Spec is an ordered list of terms. An empty spec means the whole file.
type Spec []Term

// InvalidSpecError reports malformed bracketed slice syntax. It indicates a
// malformed command, not a malformed document, and is always fatal.
type InvalidSpecError struct {
	Ref    string // the full reference the spec was taken from
	Term   string // the offending term, or the whole bracket content
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid truncation spec in %q: %s: %s", e.Ref, e.Term, e.Reason)
}

var bracketRe = regexp.MustCompile(`\[([^\[\]]*)\]$`)

// Split separates a trailing bracketed truncation spec from a file
// reference. References without a bracketed suffix return the reference
// unchanged and a nil spec.
func Split(ref string) (string, Spec, error) {
	m := bracketRe.FindStringSubmatchIndex(ref)
	if m == nil {
		return ref, nil, nil
	}
	path := ref[:m[0]]
	inner := ref[m[2]:m[3]]
	if strings.TrimSpace(inner) == "" {
		return path, nil, nil
	}

	var spec Spec
	for _, raw := range strings.Split(inner, ",") {
		term, err := parseTerm(ref, strings.TrimSpace(raw))
		if err != nil {
			return "", nil, err
		}
		spec = append(spec, term)
	}
	return path, spec, nil
}

// parseTerm parses one comma-separated slice term: an optional "line=" or
// "char=" unit prefix followed by an integer or a start:end range.
func parseTerm(ref, raw string) (Term, error) {
	term := Term{Unit: UnitLine}

	body := raw
	if unit, rest, ok := strings.Cut(raw, "="); ok {
		switch Unit(strings.TrimSpace(unit)) {
		case UnitLine:
			term.Unit = UnitLine
		case UnitChar:
			term.Unit = UnitChar
		default:
			return Term{}, &InvalidSpecError{Ref: ref, Term: raw, Reason: fmt.Sprintf("unknown unit %q (want line or char)", strings.TrimSpace(unit))}
		}
		body = strings.TrimSpace(rest)
	}

	if !strings.Contains(body, ":") {
		n, err := strconv.Atoi(body)
		if err != nil {
			return Term{}, &InvalidSpecError{Ref: ref, Term: raw, Reason: "not an integer index"}
		}
		term.Index = n
		return term, nil
	}

	startStr, endStr, _ := strings.Cut(body, ":")
	term.IsRange = true
	if s := strings.TrimSpace(startStr); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Term{}, &InvalidSpecError{Ref: ref, Term: raw, Reason: "range start is not an integer"}
		}
		term.Start, term.HasStart = n, true
	}
	if s := strings.TrimSpace(endStr); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Term{}, &InvalidSpecError{Ref: ref, Term: raw, Reason: "range end is not an integer"}
		}
		term.End, term.HasEnd = n, true
	}
	return term, nil
}

// Apply slices content according to the spec and concatenates the resolved
// fragments in spec order. Line terms are converted to character offsets by
// summing the lengths of preceding lines before slicing. Slice semantics
// follow 0-indexed, end-exclusive ranges with clamping; out-of-range single
// indices select nothing.
func (s Spec) Apply(content string) string {
	if len(s) == 0 {
		return content
	}

	runes := []rune(content)
	lineStarts := lineOffsets(runes)
	lineCount := len(lineStarts) - 1

	var b strings.Builder
	for _, term := range s {
		switch term.Unit {
		case UnitChar:
			if term.IsRange {
				lo, hi := rangeBounds(term, len(runes))
				b.WriteString(string(runes[lo:hi]))
			} else if i, ok := singleIndex(term.Index, len(runes)); ok {
				b.WriteRune(runes[i])
			}
		default: // UnitLine
			if term.IsRange {
				lo, hi := rangeBounds(term, lineCount)
				b.WriteString(string(runes[lineStarts[lo]:lineStarts[hi]]))
			} else if i, ok := singleIndex(term.Index, lineCount); ok {
				b.WriteString(string(runes[lineStarts[i]:lineStarts[i+1]]))
			}
		}
	}
	return b.String()
}

// lineOffsets returns the rune offset of each line start plus a final
// sentinel offset at end-of-content. A line includes its newline.
func lineOffsets(runes []rune) []int {
	if len(runes) == 0 {
		return []int{0}
	}
	offsets := []int{0}
	for i, r := range runes {
		if r == '\n' && i+1 < len(runes) {
			offsets = append(offsets, i+1)
		}
	}
	return append(offsets, len(runes))
}

// singleIndex resolves a possibly negative index against length n.
func singleIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// rangeBounds resolves a start:end term against length n with clamping.
func rangeBounds(term Term, n int) (int, int) {
	lo, hi := 0, n
	if term.HasStart {
		lo = clampIndex(term.Start, n)
	}
	if term.HasEnd {
		hi = clampIndex(term.End, n)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// clampIndex adjusts negative indices and clamps to [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
