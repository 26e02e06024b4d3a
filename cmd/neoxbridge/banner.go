package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const bannerWidth = 60

var bannerLines = []string{
	"🌉 NeoXBridge AI",
	"Neo N3 blockchain assistant",
	"Type 'help' for commands, 'quit' to exit",
}

// banner draws bannerLines centered in a box width columns wide.
func banner(width int) string {
	inner := width - 2
	for _, l := range bannerLines {
		inner = max(inner, runewidth.StringWidth(l)+2)
	}
	var b strings.Builder
	b.WriteString("╭" + strings.Repeat("─", inner) + "╮\n")
	for _, l := range bannerLines {
		pad := inner - runewidth.StringWidth(l)
		left := pad / 2
		b.WriteString("│" + strings.Repeat(" ", left) + l + strings.Repeat(" ", pad-left) + "│\n")
	}
	b.WriteString("╰" + strings.Repeat("─", inner) + "╯")
	return b.String()
}
