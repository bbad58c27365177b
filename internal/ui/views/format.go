package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// dateLayout renders dates the way the ru-RU locale does
const dateLayout = "02.01.2006"

// FormatDate renders t as DD.MM.YYYY
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// Truncate shortens s to at most width cells, ending with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// ClampLines wraps s to width and keeps at most n lines. The last kept
// line gets an ellipsis when text was dropped.
func ClampLines(s string, width, n int) []string {
	if width <= 0 || n <= 0 {
		return nil
	}
	lines := strings.Split(ansi.Wrap(s, width, ""), "\n")
	if len(lines) <= n {
		return lines
	}
	lines = lines[:n]
	last := strings.TrimRight(lines[n-1], " ")
	if ansi.StringWidth(last) >= width {
		last = ansi.Truncate(last, width-1, "")
	}
	lines[n-1] = last + "…"
	return lines
}

// padLines pads lines to exactly n entries
func padLines(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
