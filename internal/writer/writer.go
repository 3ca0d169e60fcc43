// Package writer materializes parsed records as files under a destination
// directory, with an upfront plan of what will be created or overwritten.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/IsaacBreen/dir2md/internal/markdown"
)

// Plan describes the filesystem effects of writing a record set, so the
// caller can confirm with the user before anything is touched.
type Plan struct {
	NewDirs    []string // directories that do not exist yet
	NewFiles   []string // destination paths that do not exist yet
	Overwrites []string // destination paths that already exist
}

// Empty reports whether the plan touches nothing.
func (p Plan) Empty() bool {
	return len(p.NewDirs) == 0 && len(p.NewFiles) == 0 && len(p.Overwrites) == 0
}

// BuildPlan classifies each record's destination under outputDir.
func BuildPlan(records []markdown.TextRecord, outputDir string) Plan {
	var plan Plan
	seenDirs := make(map[string]bool)

	for _, rec := range records {
		dest := filepath.Join(outputDir, filepath.FromSlash(rec.Path))

		dir := filepath.Dir(dest)
		if dir != "." && !seenDirs[dir] {
			seenDirs[dir] = true
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				plan.NewDirs = append(plan.NewDirs, dir)
			}
		}

		if _, err := os.Stat(dest); err == nil {
			plan.Overwrites = append(plan.Overwrites, dest)
		} else {
			plan.NewFiles = append(plan.NewFiles, dest)
		}
	}
	return plan
}

// Write creates parent directories as needed and writes each record's text
// to outputDir/path. Writes are atomic (tmp file + rename) so an
// interrupted unpack never leaves a half-written file.
func Write(records []markdown.TextRecord, outputDir string) error {
	for _, rec := range records {
		dest := filepath.Join(outputDir, filepath.FromSlash(rec.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", rec.Path, err)
		}
		if err := writeFileAtomic(dest, []byte(rec.Text), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", rec.Path, err)
		}
	}
	return nil
}

// writeFileAtomic writes data to a temporary file, syncs it, and renames it
// over the target path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
