// Package reader loads source files referenced on the command line into
// text records, expanding glob patterns and applying truncation specs.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/IsaacBreen/dir2md/internal/markdown"
	"github.com/IsaacBreen/dir2md/internal/truncate"
)

// Options configures source collection.
type Options struct {
	Glob          bool // expand references as glob patterns (** supported)
	IgnoreMissing bool // skip unmatched references instead of failing
	Estimator     markdown.TokenEstimator
}

// SourceNotFoundError reports a reference that matched no files.
type SourceNotFoundError struct {
	Ref string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source %q not found", e.Ref)
}

// Collect resolves each reference to one or more files and returns their
// contents as records, in reference order. A trailing bracketed suffix on a
// reference is a truncation spec, applied before embedding; a malformed
// spec is always fatal.
func Collect(refs []string, opts Options) ([]markdown.TextRecord, error) {
	var records []markdown.TextRecord
	for _, ref := range refs {
		path, spec, err := truncate.Split(ref)
		if err != nil {
			return nil, err
		}

		paths, err := expand(path, opts.Glob)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			if opts.IgnoreMissing {
				continue
			}
			return nil, &SourceNotFoundError{Ref: ref}
		}

		for _, p := range paths {
			rec, err := load(p, spec, opts.Estimator)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

// expand resolves a path reference to concrete files. In glob mode the
// pattern may use doublestar syntax; matches are sorted by the glob walk.
func expand(path string, glob bool) ([]string, error) {
	if !glob {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil, nil
		}
		return []string{path}, nil
	}

	matches, err := doublestar.FilepathGlob(filepath.ToSlash(path), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern %q: %w", path, err)
	}
	return matches, nil
}

// load reads one file, applies the truncation spec, and normalizes the text
// to end with a trailing newline.
func load(path string, spec truncate.Spec, est markdown.TokenEstimator) (markdown.TextRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return markdown.TextRecord{}, fmt.Errorf("reading %s: %w", path, err)
	}

	text := spec.Apply(string(data))
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	rec := markdown.TextRecord{Path: filepath.ToSlash(path), Text: text}
	if est != nil {
		rec.TokenEstimate = est.Estimate(text)
	}
	return rec, nil
}
