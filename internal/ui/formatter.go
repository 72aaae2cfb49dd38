package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text
const Ellipsis = "..."

// Truncate shortens str to at most width display cells, ending in "..." when cut
func Truncate(str string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(str) <= width {
		return str
	}
	if width <= len(Ellipsis) {
		return Ellipsis[:width]
	}
	return runewidth.Truncate(str, width, Ellipsis)
}

// Flatten collapses newlines and runs of whitespace into single spaces
func Flatten(str string) string {
	return strings.Join(strings.Fields(str), " ")
}
