// Package terminal renders toast-style notifications to a writer.
package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/sparkvibe/sparkvibe-cli/internal/ports"
)

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
}

func newStyles() styles {
	return styles{
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

type Notifier struct {
	out    io.Writer
	styles styles
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out, styles: newStyles()}
}

func (n *Notifier) Success(message string) {
	_, _ = fmt.Fprintln(n.out, n.styles.success.Render("✓ "+message))
}

func (n *Notifier) Error(message string) {
	_, _ = fmt.Fprintln(n.out, n.styles.failure.Render("✗ "+message))
}

func (n *Notifier) Info(message string) {
	_, _ = fmt.Fprintln(n.out, n.styles.info.Render("• "+message))
}
