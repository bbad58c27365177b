package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws the popup centered over a greyed-out copy of
// the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	modal := strings.Split(styledPopup, "\n")
	out := make([]string, len(base))
	for i, line := range base {
		if i < y || i >= y+modalH {
			out[i] = grey.Render(line)
			continue
		}
		left, right := splitCells(line, x, x+modalW)
		out[i] = grey.Render(left) + modal[i-y] + grey.Render(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// splitCells returns the part of a plain line before column from, padded
// to that width, and the part from column to onwards
func splitCells(line string, from, to int) (string, string) {
	runes := []rune(line)
	var left, right string
	if len(runes) >= from {
		left = string(runes[:from])
	} else {
		left = string(runes) + strings.Repeat(" ", from-len(runes))
	}
	if len(runes) > to {
		right = string(runes[to:])
	}
	return left, right
}
