package markdown

import (
	"strings"

	"github.com/IsaacBreen/dir2md/internal/lang"
)

// Parser scans a document for fenced code blocks and resolves each block's
// file path from the line above the opening fence or the commented first
// line inside the block.
type Parser struct {
	langs             *lang.Table
	template          *PathTemplate
	location          PathLocation
	ignoreMissingPath bool
	estimator         TokenEstimator
}

// ParseOptions configures a Parser. Zero-value fields fall back to the
// default table, the identity template, and the "below" path location.
type ParseOptions struct {
	Langs             *lang.Table
	Template          *PathTemplate
	Location          PathLocation
	IgnoreMissingPath bool
	Estimator         TokenEstimator // optional; attaches display-only token counts
}

// NewParser creates a Parser.
func NewParser(opts ParseOptions) *Parser {
	if opts.Langs == nil {
		opts.Langs = lang.Default()
	}
	if opts.Template == nil {
		opts.Template = MustPathTemplate(DefaultPathTemplate)
	}
	if opts.Location == "" {
		opts.Location = PathBelow
	}
	return &Parser{
		langs:             opts.Langs,
		template:          opts.Template,
		location:          opts.Location,
		ignoreMissingPath: opts.IgnoreMissingPath,
		estimator:         opts.Estimator,
	}
}

// Parse scans the document line by line. Each fenced block becomes one
// TextRecord, in document order. A block whose path cannot be resolved is a
// hard error unless IgnoreMissingPath is set, in which case it is dropped
// and counted. If the document ends inside a fence, the terminal block's
// text runs to end-of-document and LastBlockUnclosed is set.
func (p *Parser) Parse(document string) (*ParseResult, error) {
	lines := strings.Split(document, "\n")
	result := &ParseResult{}

	i := 0
	for i < len(lines) {
		ch, run := fenceRun(lines[i])
		if run < 3 {
			i++
			continue
		}
		open := i
		language := infoLanguage(lines[i][run:])

		// Advance to a line opening with a run of the same fence character
		// of at least the opening length.
		i++
		closed := false
		for i < len(lines) {
			if c, r := fenceRun(lines[i]); c == ch && r >= run {
				closed = true
				i++
				break
			}
			i++
		}

		var body []string
		if closed {
			body = lines[open+1 : i-1]
		} else {
			body = lines[open+1:]
		}
		text := strings.Join(body, "\n")

		path, text := p.resolvePath(lines, open, text, language)
		if path == "" {
			result.SkippedMissingPath++
			if p.ignoreMissingPath {
				continue
			}
			return nil, &MissingPathError{
				Line:     open + 1,
				Fence:    lines[open],
				Snippet:  firstLine(text),
				Template: p.template.Pattern(),
			}
		}

		rec := TextRecord{Path: path, Text: normalizeText(text)}
		if p.estimator != nil {
			rec.TokenEstimate = p.estimator.Estimate(rec.Text)
		}
		result.Records = append(result.Records, rec)
		if !closed {
			result.LastBlockUnclosed = true
		}
	}

	return result, nil
}

// resolvePath tries the configured primary location first and falls back to
// the other. When both locations carry a path the primary wins; the below
// comment line is only stripped from the text when it is the one used.
func (p *Parser) resolvePath(lines []string, open int, text, language string) (string, string) {
	if p.location == PathAbove {
		if path := p.pathAbove(lines, open); path != "" {
			return path, text
		}
		if path, rest, ok := p.pathBelow(text, language); ok {
			return path, rest
		}
		return "", text
	}

	if path, rest, ok := p.pathBelow(text, language); ok {
		return path, rest
	}
	return p.pathAbove(lines, open), text
}

// pathAbove looks at the nearest non-blank line above the opening fence,
// separated from it only by blank lines. Fence lines never qualify, so a
// preceding block's closing fence is not mistaken for a path.
func (p *Parser) pathAbove(lines []string, open int) string {
	j := open - 1
	for j >= 0 && strings.TrimSpace(lines[j]) == "" {
		j--
	}
	if j < 0 {
		return ""
	}
	candidate := strings.TrimSpace(lines[j])
	if _, run := fenceRun(candidate); run >= 3 {
		return ""
	}
	path, _ := p.template.Extract(candidate)
	return path
}

// pathBelow checks whether the first line of the block text is a commented
// path. On success it returns the path and the text with that line removed.
func (p *Parser) pathBelow(text, language string) (path, rest string, ok bool) {
	first, rest, hasRest := strings.Cut(text, "\n")
	marker := p.langs.CommentPrefixForLanguage(language) + " "
	if !strings.HasPrefix(first, marker) {
		return "", text, false
	}
	path, ok = p.template.Extract(strings.TrimSpace(first[len(marker):]))
	if !ok {
		return "", text, false
	}
	if !hasRest {
		rest = ""
	}
	return path, rest, true
}

// fenceRun reports the fence character and the length of the run opening
// the line. Lines not opening with a fence character report run 0.
func fenceRun(line string) (byte, int) {
	if line == "" {
		return 0, 0
	}
	ch := line[0]
	if ch != '`' && ch != '~' {
		return 0, 0
	}
	n := 1
	for n < len(line) && line[n] == ch {
		n++
	}
	return ch, n
}

// infoLanguage extracts the language token from an opening fence's info
// string; further attributes (such as tokens=N) are ignored.
func infoLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// firstLine returns the first line of a string.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
