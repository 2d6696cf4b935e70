// Package cli renders quotes, plan grids and summaries for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorBorder = lipgloss.Color("#3A3A3A")
	ColorText   = lipgloss.Color("#F5F5F5")
	ColorMuted  = lipgloss.Color("#8A8A8A")
	ColorAccent = lipgloss.Color("#EB0A1E")
	ColorGood   = lipgloss.Color("#5FAF5F")
	ColorWarn   = lipgloss.Color("#D7875F")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	goodStyle = lipgloss.NewStyle().
			Foreground(ColorGood)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorWarn)

	borderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Separator is a row value that draws a horizontal rule.
const Separator = "---"

// Table is a bordered text table. The first column is left-aligned, the rest
// right-aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

func (t Table) widths() []int {
	n := len(t.Headers)
	if n == 0 && len(t.Rows) > 0 {
		n = len(t.Rows[0])
	}
	widths := make([]int, n)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < n && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	return widths
}

func rule(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(borderStyle.Render(left))
	for i, w := range widths {
		b.WriteString(borderStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(borderStyle.Render(mid))
		}
	}
	b.WriteString(borderStyle.Render(right))
	b.WriteString("\n")
}

// RenderTable renders t with box-drawing borders.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	widths := t.widths()

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule(&b, widths, "╭", "┬", "╮")
	if len(t.Headers) > 0 {
		b.WriteString(borderStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			b.WriteString(borderStyle.Render("│"))
		}
		b.WriteString("\n")
		rule(&b, widths, "├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == Separator {
			rule(&b, widths, "├", "┼", "┤")
			continue
		}
		b.WriteString(borderStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := w - lipgloss.Width(cell)
			if i == 0 {
				b.WriteString(valueStyle.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(valueStyle.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			b.WriteString(borderStyle.Render("│"))
		}
		b.WriteString("\n")
	}
	rule(&b, widths, "╰", "┴", "╯")
	return b.String()
}
