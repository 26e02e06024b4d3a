// Package goldmark renders agent replies, which are markdown, to
// ANSI-styled terminal output. goldmark parses and lipgloss styles.
//
// Replies are line oriented, so soft line breaks are kept as line breaks
// rather than joined into a single paragraph line.
package goldmark

import "github.com/fwojciec/neoxbridge"

// Render parses markdown source and returns ANSI-styled terminal output.
// Lines are word-wrapped to width. Bullet lines ("• item") wrap with a
// hanging indent. Code blocks are rendered without reflow.
func Render(source string, width int, theme neoxbridge.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
