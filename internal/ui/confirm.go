// Package ui provides the interactive confirmation prompt shown before an
// unpack writes to disk.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/IsaacBreen/dir2md/internal/writer"
)

// keyMap defines the keybindings for the confirmation prompt
type keyMap struct {
	Yes  key.Binding
	No   key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "write files"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "abort"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "abort"),
		),
	}
}

// confirmModel is the Bubble Tea model for the write-plan confirmation
type confirmModel struct {
	plan     writer.Plan
	dir      string
	keys     keyMap
	accepted bool
	done     bool
}

// Init implements tea.Model
func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.accepted = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Quit):
			m.accepted = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("Unpacking into %s", m.dir)))
	b.WriteString("\n\n")
	writeSection(&b, "The following directories will be created:", m.plan.NewDirs, styles.Path)
	writeSection(&b, "The following files will be created:", m.plan.NewFiles, styles.Path)
	writeSection(&b, "The following files will be overwritten:", m.plan.Overwrites, styles.Warn)
	b.WriteString(styles.Prompt.Render("Continue?"))
	b.WriteString(" ")
	b.WriteString(styles.KeyHint.Render("y yes • n no"))
	b.WriteString("\n")
	return b.String()
}

// writeSection renders one plan section, skipping empty ones
func writeSection(b *strings.Builder, header string, paths []string, style lipgloss.Style) {
	if len(paths) == 0 {
		return
	}
	b.WriteString(styles.Section.Render(header))
	b.WriteString("\n")
	for _, p := range paths {
		b.WriteString("  ")
		b.WriteString(style.Render(p))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// ConfirmPlan shows the write plan and waits for a yes/no answer.
// It uses /dev/tty when stdin or stdout is not a terminal, so the prompt
// works even when the document arrives on a pipe.
func ConfirmPlan(plan writer.Plan, dir string) (bool, error) {
	in, out, cleanup := getTTY()
	defer cleanup()

	m := confirmModel{plan: plan, dir: dir, keys: defaultKeyMap()}
	p := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	return final.(confirmModel).accepted, nil
}

// getTTY returns file handles for prompt input/output
// Uses /dev/tty to bypass shell pipes and command substitution
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()

	inInfo, _ := os.Stdin.Stat()
	outInfo, _ := os.Stdout.Stat()
	inIsTTY := (inInfo.Mode() & os.ModeCharDevice) != 0
	outIsTTY := (outInfo.Mode() & os.ModeCharDevice) != 0

	in, out = os.Stdin, os.Stdout
	if !inIsTTY {
		if f, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0); err == nil {
			in = f
			closers = append(closers, func() { f.Close() })
		}
	}
	if !outIsTTY {
		if f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
			out = f
			closers = append(closers, func() { f.Close() })
		} else {
			out = os.Stderr
		}
	}

	return in, out, func() {
		for _, c := range closers {
			c()
		}
	}
}
