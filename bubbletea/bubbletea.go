// Package bubbletea provides the interactive Bubble Tea chat for
// neoxbridge.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/neoxbridge"
)

// HandleFunc answers one message for a session. It blocks until the reply
// is ready or ctx is cancelled, and must always return a Response.
type HandleFunc func(ctx context.Context, s *neoxbridge.Session, text string) neoxbridge.Response

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// TurnDoneMsg carries the reply of a finished turn. Err is the turn
// context's error, set when the turn was cancelled.
type TurnDoneMsg struct {
	Response neoxbridge.Response
	Err      error
}
