// Package lang provides the static extension→language and
// language→comment-prefix lookup tables used when formatting and parsing
// annotated code blocks.
package lang

import (
	"path/filepath"
	"strings"
)

// Table maps file extensions to markdown language tags and language tags to
// line-comment prefixes. Tables are immutable after construction and safe
// for concurrent use.
type Table struct {
	extToLang     map[string]string
	commentPrefix map[string]string
}

// NewTable builds a Table from explicit mappings. Keys are lowercased.
func NewTable(extToLang, commentPrefix map[string]string) *Table {
	t := &Table{
		extToLang:     make(map[string]string, len(extToLang)),
		commentPrefix: make(map[string]string, len(commentPrefix)),
	}
	for ext, lang := range extToLang {
		t.extToLang[strings.ToLower(ext)] = lang
	}
	for lang, prefix := range commentPrefix {
		t.commentPrefix[strings.ToLower(lang)] = prefix
	}
	return t
}

// Default returns the built-in table covering common languages.
func Default() *Table {
	return NewTable(
		map[string]string{
			".py":   "python",
			".rs":   "rust",
			".go":   "go",
			".js":   "javascript",
			".jsx":  "jsx",
			".ts":   "typescript",
			".tsx":  "tsx",
			".c":    "c",
			".h":    "c",
			".cpp":  "cpp",
			".cc":   "cpp",
			".hpp":  "cpp",
			".java": "java",
			".rb":   "ruby",
			".sh":   "bash",
			".bash": "bash",
			".zsh":  "zsh",
			".fish": "fish",
			".yaml": "yaml",
			".yml":  "yaml",
			".toml": "toml",
			".json": "json",
			".md":   "markdown",
			".html": "html",
			".css":  "css",
			".sql":  "sql",
			".php":  "php",
			".kt":   "kotlin",
			".swift": "swift",
			".lua":  "lua",
			".pl":   "perl",
			".r":    "r",
			".scala": "scala",
			".hs":   "haskell",
			".ex":   "elixir",
			".exs":  "elixir",
		},
		map[string]string{
			"python":     "#",
			"ruby":       "#",
			"bash":       "#",
			"zsh":        "#",
			"fish":       "#",
			"yaml":       "#",
			"toml":       "#",
			"perl":       "#",
			"r":          "#",
			"elixir":     "#",
			"rust":       "//",
			"go":         "//",
			"javascript": "//",
			"jsx":        "//",
			"typescript": "//",
			"tsx":        "//",
			"c":          "//",
			"cpp":        "//",
			"java":       "//",
			"kotlin":     "//",
			"swift":      "//",
			"scala":      "//",
			"php":        "//",
			"css":        "/*",
			"sql":        "--",
			"haskell":    "--",
			"lua":        "--",
		},
	)
}

// ExtensionToLanguage returns the markdown language tag for a path based on
// its extension, or "" if the extension is unknown.
func (t *Table) ExtensionToLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	return t.extToLang[ext]
}

// CommentPrefixForLanguage returns the line-comment prefix for a language
// tag, or "" if the language is unknown or has no line comments.
func (t *Table) CommentPrefixForLanguage(language string) string {
	return t.commentPrefix[strings.ToLower(language)]
}
