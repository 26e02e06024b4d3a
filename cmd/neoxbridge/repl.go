package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/neoxbridge"
	bt "github.com/fwojciec/neoxbridge/bubbletea"
	"github.com/fwojciec/neoxbridge/command"
)

const (
	userPrompt     = "You: "
	assistantLabel = "NeoXBridge: "
	goodbye        = "👋 Goodbye! Stay safe on the Neo blockchain."
	tooLong        = "❌ That message is too long. Please keep it under 64 KiB."
)

// maxLineBytes bounds a single message. Longer lines are refused and the
// loop goes on.
const maxLineBytes = 64 * 1024

// runREPL reads one message per line from in until EOF, a quit command or
// ctx is done, and writes each reply to out.
func runREPL(ctx context.Context, in io.Reader, out io.Writer, handle bt.HandleFunc, s *neoxbridge.Session) error {
	fmt.Fprintln(out, banner(bannerWidth))
	fmt.Fprintln(out)

	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, userPrompt)
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			fmt.Fprintln(out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if len(line) > maxLineBytes {
			fmt.Fprintf(out, "%s%s\n\n", assistantLabel, tooLong)
			continue
		}
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if command.Parse(text) == command.Quit {
			fmt.Fprintln(out, goodbye)
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		resp := handle(ctx, s, text)
		fmt.Fprintf(out, "%s%s\n\n", assistantLabel, resp.Message)
	}
}
