package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/IsaacBreen/dir2md/internal/truncate"
)

// fixedEstimator returns one token per byte, making estimates predictable.
type fixedEstimator struct{}

func (fixedEstimator) Estimate(text string) int { return len(text) }

func setupTree(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})

	files := map[string]string{
		"main.go":        "package main\n",
		"util.go":        "package main // util\n",
		"src/app.py":     "line1\nline2\nline3\nline4\n",
		"src/sub/lib.py": "def f():\n    pass\n",
		"notes.txt":      "no trailing newline",
	}
	for path, content := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCollectLiteral(t *testing.T) {
	setupTree(t)

	records, err := Collect([]string{"main.go", "notes.txt"}, Options{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Path != "main.go" || records[0].Text != "package main\n" {
		t.Errorf("record 0 = %+v", records[0])
	}
	if records[1].Text != "no trailing newline\n" {
		t.Errorf("text not normalized to trailing newline: %q", records[1].Text)
	}
}

func TestCollectGlob(t *testing.T) {
	setupTree(t)

	records, err := Collect([]string{"src/**/*.py"}, Options{Glob: true})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	var paths []string
	for _, rec := range records {
		paths = append(paths, rec.Path)
	}
	want := []string{"src/app.py", "src/sub/lib.py"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestCollectGlobDirectoriesExcluded(t *testing.T) {
	setupTree(t)

	records, err := Collect([]string{"src/*"}, Options{Glob: true})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	for _, rec := range records {
		if rec.Path == "src/sub" {
			t.Errorf("directory matched as a source: %v", rec.Path)
		}
	}
	if len(records) != 1 || records[0].Path != "src/app.py" {
		t.Errorf("records = %+v, want only src/app.py", records)
	}
}

func TestCollectTruncation(t *testing.T) {
	setupTree(t)

	records, err := Collect([]string{"src/app.py[:2]"}, Options{})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Path != "src/app.py" {
		t.Errorf("path = %q, want src/app.py (spec stripped)", records[0].Path)
	}
	if records[0].Text != "line1\nline2\n" {
		t.Errorf("text = %q, want first two lines", records[0].Text)
	}
}

func TestCollectInvalidSpec(t *testing.T) {
	setupTree(t)

	_, err := Collect([]string{"src/app.py[bogus]"}, Options{IgnoreMissing: true})
	var specErr *truncate.InvalidSpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("err = %v, want InvalidSpecError even with IgnoreMissing", err)
	}
}

func TestCollectMissing(t *testing.T) {
	setupTree(t)

	_, err := Collect([]string{"absent.go"}, Options{})
	var nf *SourceNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want SourceNotFoundError", err)
	}
	if nf.Ref != "absent.go" {
		t.Errorf("Ref = %q, want absent.go", nf.Ref)
	}

	_, err = Collect([]string{"*.nomatch"}, Options{Glob: true})
	if !errors.As(err, &nf) {
		t.Fatalf("glob err = %v, want SourceNotFoundError", err)
	}
}

func TestCollectIgnoreMissing(t *testing.T) {
	setupTree(t)

	records, err := Collect([]string{"absent.go", "main.go"}, Options{IgnoreMissing: true})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(records) != 1 || records[0].Path != "main.go" {
		t.Errorf("records = %+v, want only main.go", records)
	}
}

func TestCollectEstimates(t *testing.T) {
	setupTree(t)

	records, err := Collect([]string{"main.go"}, Options{Estimator: fixedEstimator{}})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if want := len("package main\n"); records[0].TokenEstimate != want {
		t.Errorf("TokenEstimate = %d, want %d", records[0].TokenEstimate, want)
	}
}
