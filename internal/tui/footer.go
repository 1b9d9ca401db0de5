package tui

import (
	"strings"
	"unicode/utf8"
)

// AlignFooter puts left at the start and right-aligns right within width
// columns. When width is too small a single space separates them.
func AlignFooter(left, right string, width int) string {
	spaces := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}

// renderFooter renders the shared help line used at the bottom of each view.
func renderFooter(left, right string, width int) string {
	if width <= 0 {
		width = 80
	}
	return footerStyle.Render(AlignFooter(left, right, width-2))
}
