package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/neoxbridge"
	bt "github.com/fwojciec/neoxbridge/bubbletea"
)

// Demo addresses. demoWallet is loaded watch-only, so transfers stop at the
// simulated confirmation and no key is needed.
const (
	demoWallet    = "NiEtVMWVYgpXrWkRTMwRaMJtJ41gD3912N"
	demoRecipient = "NhGomKyZgSuYUGqrXHcpv1bNH9ntwvfm4c"
	demoOther     = "NVByrj4w4W6mtXj7Lhqu9tqgZ7ApQb4UG3"
)

var demoScript = []string{
	"help",
	"validate " + demoOther,
	"balance for " + demoWallet,
	"is " + demoRecipient + " safe?",
	"wallet status",
	"send 5 NEO to " + demoRecipient,
	"confirm send 5 NEO to " + demoRecipient,
	"create price alert NEO above 50",
	"check my alerts",
	"governance info",
	"status",
}

// playScript sends each line of script and prints the exchange.
func playScript(ctx context.Context, out io.Writer, handle bt.HandleFunc, s *neoxbridge.Session, script []string) error {
	fmt.Fprintln(out, banner(bannerWidth))
	for i, line := range script {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n[%d/%d] %s%s\n", i+1, len(script), userPrompt, line)
		resp := handle(ctx, s, line)
		fmt.Fprintf(out, "%s%s\n", assistantLabel, resp.Message)
	}
	return nil
}
