package truncate

import (
	"errors"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		ref      string
		wantPath string
		want     Spec
	}{
		{"a.py", "a.py", nil},
		{"a.py[]", "a.py", nil},
		{"a.py[:2]", "a.py", Spec{{Unit: UnitLine, IsRange: true, End: 2, HasEnd: true}}},
		{"b.py[-5:]", "b.py", Spec{{Unit: UnitLine, IsRange: true, Start: -5, HasStart: true}}},
		{"c.py[0:10]", "c.py", Spec{{Unit: UnitLine, IsRange: true, Start: 0, HasStart: true, End: 10, HasEnd: true}}},
		{"d.py[-1]", "d.py", Spec{{Unit: UnitLine, Index: -1}}},
		{"e.py[char=0:80]", "e.py", Spec{{Unit: UnitChar, IsRange: true, Start: 0, HasStart: true, End: 80, HasEnd: true}}},
		{"f.py[line=3]", "f.py", Spec{{Unit: UnitLine, Index: 3}}},
		{
			"g.py[0, 2, 6:-8, -1]",
			"g.py",
			Spec{
				{Unit: UnitLine, Index: 0},
				{Unit: UnitLine, Index: 2},
				{Unit: UnitLine, IsRange: true, Start: 6, HasStart: true, End: -8, HasEnd: true},
				{Unit: UnitLine, Index: -1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			path, spec, err := Split(tt.ref)
			if err != nil {
				t.Fatalf("Split(%q): %v", tt.ref, err)
			}
			if path != tt.wantPath {
				t.Errorf("path = %q, want %q", path, tt.wantPath)
			}
			if len(spec) != len(tt.want) {
				t.Fatalf("spec = %+v, want %+v", spec, tt.want)
			}
			for i := range spec {
				if spec[i] != tt.want[i] {
					t.Errorf("term %d = %+v, want %+v", i, spec[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplit_Invalid(t *testing.T) {
	for _, ref := range []string{
		"a.py[abc]",
		"a.py[1:2:3ish]",
		"a.py[word=3]",
		"a.py[1, two]",
		"a.py[char=x:y]",
	} {
		_, _, err := Split(ref)
		if err == nil {
			t.Errorf("Split(%q): expected error", ref)
			continue
		}
		var invalid *InvalidSpecError
		if !errors.As(err, &invalid) {
			t.Errorf("Split(%q): expected InvalidSpecError, got %T", ref, err)
		}
	}
}

// tenLines is "line0\n" through "line9\n".
func tenLines() string {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("line")
		b.WriteByte(byte('0' + i))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestApply_Lines(t *testing.T) {
	content := tenLines()

	tests := []struct {
		ref  string
		want string
	}{
		{"f[2:5]", "line2\nline3\nline4\n"},
		{"f[-1]", "line9\n"},
		{"f[0]", "line0\n"},
		{"f[:2]", "line0\nline1\n"},
		{"f[-2:]", "line8\nline9\n"},
		{"f[0, -1]", "line0\nline9\n"},
		{"f[8:100]", "line8\nline9\n"},
		{"f[100]", ""},
		{"f[-100]", ""},
		{"f[5:2]", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			_, spec, err := Split(tt.ref)
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if got := spec.Apply(content); got != tt.want {
				t.Errorf("Apply = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_Chars(t *testing.T) {
	content := "hello world\n"

	tests := []struct {
		ref  string
		want string
	}{
		{"f[char=0:5]", "hello"},
		{"f[char=-6:]", "world\n"},
		{"f[char=0]", "h"},
		{"f[char=0:5, char=-6:-1]", "helloworld"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			_, spec, err := Split(tt.ref)
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if got := spec.Apply(content); got != tt.want {
				t.Errorf("Apply = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_EmptySpecIsWholeFile(t *testing.T) {
	content := tenLines()
	if got := Spec(nil).Apply(content); got != content {
		t.Errorf("nil spec changed content")
	}
}

func TestApply_NoTrailingNewline(t *testing.T) {
	content := "a\nb\nc"
	_, spec, err := Split("f[-1]")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if got := spec.Apply(content); got != "c" {
		t.Errorf("Apply = %q, want %q", got, "c")
	}
}

func TestApply_Unicode(t *testing.T) {
	_, spec, err := Split("f[char=0:2]")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if got := spec.Apply("héllo"); got != "hé" {
		t.Errorf("Apply = %q, want %q (character, not byte, slicing)", got, "hé")
	}
}
