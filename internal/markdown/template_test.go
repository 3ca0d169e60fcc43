package markdown

import "testing"

func TestNewPathTemplate(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr bool
	}{
		{"{}", false},
		{"File: {}", false},
		{"<!-- {} -->", false},
		{"no slot", true},
		{"{} and {}", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := NewPathTemplate(tt.pattern)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewPathTemplate(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
		}
	}
}

func TestPathTemplate_RenderExtract(t *testing.T) {
	tests := []struct {
		pattern  string
		line     string
		wantPath string
		wantOK   bool
	}{
		{"{}", "out.py", "out.py", true},
		{"{}", "  out.py  ", "out.py", true},
		{"{}", "", "", false},
		{"File: {}", "File: out.py", "out.py", true},
		{"File: {}", "out.py", "", false},
		{"<!-- {} -->", "<!-- src/a.go -->", "src/a.go", true},
		{"<!-- {} -->", "<!-- src/a.go", "", false},
	}

	for _, tt := range tests {
		tmpl := MustPathTemplate(tt.pattern)
		path, ok := tmpl.Extract(tt.line)
		if ok != tt.wantOK || path != tt.wantPath {
			t.Errorf("Extract(%q, %q) = (%q, %v), want (%q, %v)",
				tt.pattern, tt.line, path, ok, tt.wantPath, tt.wantOK)
		}
	}
}

func TestPathTemplate_RenderInverse(t *testing.T) {
	for _, pattern := range []string{"{}", "File: {}", "## {}"} {
		tmpl := MustPathTemplate(pattern)
		path, ok := tmpl.Extract(tmpl.Render("src/main.go"))
		if !ok || path != "src/main.go" {
			t.Errorf("pattern %q: Extract(Render(path)) = (%q, %v)", pattern, path, ok)
		}
	}
}
