package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/upmgen-labs/upmgen/internal/scaffold"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}).Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

// RenderResult formats a generation result for the terminal.
func RenderResult(r *scaffold.Result) string {
	var b strings.Builder
	switch r.Status {
	case scaffold.StatusNeedsConfirmation:
		b.WriteString(noticeStyle.Render(r.Message))
		b.WriteString("\n")
		return b.String()
	default:
		fmt.Fprintf(&b, "%s %s\n", successStyle.Render(r.Message), mutedStyle.Render(r.Root+"/"))
	}

	for _, d := range r.Dirs {
		fmt.Fprintf(&b, "  %s/\n", d)
	}
	for _, f := range r.Files {
		fmt.Fprintf(&b, "  %s\n", f)
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render("Warnings:"))
		b.WriteString("\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}
	return b.String()
}

// PrintResult writes RenderResult(r) to w.
func PrintResult(w io.Writer, r *scaffold.Result) {
	fmt.Fprint(w, RenderResult(r))
}
