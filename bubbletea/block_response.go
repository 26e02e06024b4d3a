package bubbletea

import (
	"strings"

	"github.com/fwojciec/neoxbridge"
	"github.com/fwojciec/neoxbridge/goldmark"
)

var _ MessageBlock = (*ResponseBlock)(nil)

// gutterWidth is the display width of the bar drawn left of a reply.
const gutterWidth = 2

// ResponseBlock renders an agent reply as markdown behind a colored bar:
// success color for handled requests, error color for failures.
type ResponseBlock struct {
	text    string
	success bool
	theme   neoxbridge.Theme
	styles  Styles

	byWidth map[int]string
}

// NewResponseBlock creates a ResponseBlock.
func NewResponseBlock(text string, success bool, theme neoxbridge.Theme, styles Styles) *ResponseBlock {
	return &ResponseBlock{
		text:    text,
		success: success,
		theme:   theme,
		styles:  styles,
		byWidth: make(map[int]string),
	}
}

func (b *ResponseBlock) View(width int) string {
	if width <= gutterWidth {
		return b.text
	}
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	bar := b.styles.Success.Render("▌") + " "
	if !b.success {
		bar = b.styles.Error.Render("▌") + " "
	}
	lines := strings.Split(goldmark.Render(b.text, width-gutterWidth, b.theme), "\n")
	for i, l := range lines {
		lines[i] = bar + l
	}
	out := strings.Join(lines, "\n")
	b.byWidth[width] = out
	return out
}
