// Command neoxbridge is a conversational assistant for the Neo N3
// blockchain.
//
// Usage:
//
//	neoxbridge [chat] [--plain]   interactive chat (TUI, or a line REPL with --plain)
//	neoxbridge ask "<message>"    answer one message and exit
//	neoxbridge demo               run a scripted conversation
//	neoxbridge version            print the version
//
// Configuration comes from the environment (see .env.example), an optional
// .env file, an optional YAML file (--config) and flags.
package main

import (
	"fmt"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "neoxbridge: %v\n", err)
		os.Exit(1)
	}
}
