package bubbletea_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/neoxbridge"
	bt "github.com/fwojciec/neoxbridge/bubbletea"
	"github.com/fwojciec/neoxbridge/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseBlock_View(t *testing.T) {
	t.Parallel()

	theme := neoxbridge.DefaultTheme()
	styles := bt.NewStyles(theme)

	t.Run("renders markdown behind a bar", func(t *testing.T) {
		t.Parallel()
		view := stripANSI(bt.NewResponseBlock("**Balance Information**\n• NEO: 5", true, theme, styles).View(60))
		lines := strings.Split(view, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "▌ Balance Information", strings.TrimRight(lines[0], " "))
		assert.Equal(t, "▌ • NEO: 5", strings.TrimRight(lines[1], " "))
	})

	t.Run("failures use a different bar color", func(t *testing.T) {
		t.Parallel()
		ok := bt.NewResponseBlock("done", true, theme, styles).View(40)
		failed := bt.NewResponseBlock("done", false, theme, styles).View(40)
		assert.Equal(t, stripANSI(ok), stripANSI(failed))
		assert.NotEqual(t, ok, failed)
		assert.Contains(t, failed, styles.Error.Render("▌"))
	})

	t.Run("every line fits the width", func(t *testing.T) {
		t.Parallel()
		view := stripANSI(bt.NewResponseBlock(format.Help(), true, theme, styles).View(50))
		for _, line := range strings.Split(view, "\n") {
			assert.True(t, strings.HasPrefix(line, "▌ "), "line %q", line)
		}
	})

	t.Run("repeated views are stable", func(t *testing.T) {
		t.Parallel()
		b := bt.NewResponseBlock(format.Welcome(), true, theme, styles)
		assert.Equal(t, b.View(70), b.View(70))
		assert.NotEqual(t, b.View(70), b.View(40))
	})
}
