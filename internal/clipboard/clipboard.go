// Package clipboard copies documents to and reads documents from the
// system clipboard by probing for the platform's clipboard commands.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"
)

// Copy copies text to the system clipboard.
func Copy(text string) error {
	cmd := copyCommand()
	if cmd == nil {
		return fmt.Errorf("no clipboard tool found (tried wl-copy, xclip, xsel, pbcopy)")
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Paste returns the current clipboard contents.
func Paste() (string, error) {
	cmd := pasteCommand()
	if cmd == nil {
		return "", fmt.Errorf("no clipboard tool found (tried wl-paste, xclip, xsel, pbpaste)")
	}
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return string(out), nil
}

// copyCommand returns the appropriate clipboard write command for the system.
func copyCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// pasteCommand returns the appropriate clipboard read command for the system.
func pasteCommand() *exec.Cmd {
	switch {
	case commandExists("wl-paste"):
		return exec.Command("wl-paste", "--no-newline")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard", "-o")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--output")
	case commandExists("pbpaste"):
		return exec.Command("pbpaste")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH.
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
