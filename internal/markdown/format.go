package markdown

import (
	"fmt"
	"strings"

	"github.com/IsaacBreen/dir2md/internal/lang"
)

// tokenFudgeFactor pads token estimates in the info string so displayed
// budgets err on the safe side.
const tokenFudgeFactor = 1.5

// Formatter serializes TextRecords into fenced markdown blocks.
type Formatter struct {
	langs         *lang.Table
	template      *PathTemplate
	location      PathLocation
	includeTokens bool
}

// FormatOptions configures a Formatter. Zero-value fields fall back to the
// default table, the identity template, and the "below" path location.
type FormatOptions struct {
	Langs         *lang.Table
	Template      *PathTemplate
	Location      PathLocation
	IncludeTokens bool
}

// NewFormatter creates a Formatter.
func NewFormatter(opts FormatOptions) *Formatter {
	if opts.Langs == nil {
		opts.Langs = lang.Default()
	}
	if opts.Template == nil {
		opts.Template = MustPathTemplate(DefaultPathTemplate)
	}
	if opts.Location == "" {
		opts.Location = PathBelow
	}
	return &Formatter{
		langs:         opts.Langs,
		template:      opts.Template,
		location:      opts.Location,
		includeTokens: opts.IncludeTokens,
	}
}

// Format emits one record as a fenced block followed by a blank line.
// The fence is lengthened until it cannot collide with fence runs in the
// content, the language tag is inferred from the path's extension, and the
// path is placed above the fence or commented on the first line inside the
// block depending on the configured location.
func (f *Formatter) Format(rec TextRecord) string {
	text := normalizeText(rec.Text)
	fence := fenceFor(text)
	language := f.langs.ExtensionToLanguage(rec.Path)

	var b strings.Builder
	if f.location == PathAbove {
		b.WriteString(f.template.Render(rec.Path))
		b.WriteString("\n\n")
	}
	b.WriteString(fence)
	b.WriteString(language)
	if f.includeTokens && rec.TokenEstimate > 0 {
		fmt.Fprintf(&b, " tokens=%d", int(float64(rec.TokenEstimate)*tokenFudgeFactor))
	}
	b.WriteByte('\n')
	if f.location == PathBelow {
		pathLine := f.langs.CommentPrefixForLanguage(language) + " " + f.template.Render(rec.Path) + "\n"
		if !strings.HasPrefix(text, pathLine) {
			b.WriteString(pathLine)
		}
	}
	b.WriteString(text)
	b.WriteString(fence)
	b.WriteString("\n\n")
	return b.String()
}

// FormatAll emits all records and trims the output to a single trailing
// newline.
func (f *Formatter) FormatAll(recs []TextRecord) string {
	var b strings.Builder
	for _, rec := range recs {
		b.WriteString(f.Format(rec))
	}
	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

// fenceFor picks a backtick fence strictly longer than any backtick run
// opening a line of the content, so the fence cannot be confused with
// fence characters in the payload. Minimum length is three.
func fenceFor(text string) string {
	n := 3
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		run := 0
		for run < len(trimmed) && trimmed[run] == '`' {
			run++
		}
		if run >= n {
			n = run + 1
		}
	}
	return strings.Repeat("`", n)
}
