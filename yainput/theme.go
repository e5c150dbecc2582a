package yainput

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme styles the text the Reader writes. A nil *Theme writes everything verbatim.
type Theme struct {
	Prompt    lipgloss.Style
	Error     lipgloss.Style
	Separator lipgloss.Style
}

// DefaultTheme renders prompts in bold cyan, errors in bold red and the separator in gray.
func DefaultTheme() *Theme {
	return &Theme{
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// ThemeFor returns DefaultTheme when colors are wanted and out is a terminal, nil otherwise.
// Redirected output therefore never receives escape sequences.
func ThemeFor(out io.Writer, color bool) *Theme {
	if !color || !IsTerminal(out) {
		return nil
	}

	return DefaultTheme()
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *Theme) renderPrompt(text string) string {
	if t == nil {
		return text
	}

	return t.Prompt.Render(text)
}

func (t *Theme) renderError(text string) string {
	if t == nil {
		return text
	}

	return t.Error.Render(text)
}

func (t *Theme) renderSeparator(text string) string {
	if t == nil {
		return text
	}

	return t.Separator.Render(text)
}
