package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/neoxbridge/config"
)

// newLogger builds the process logger. Without a log file, logs go to
// stderr, except under the TUI where they would corrupt the screen and are
// discarded. The returned func closes the log file, if any.
func newLogger(c config.Log, tui bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case c.File != "":
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case tui:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "neoxbridge",
	})
	return logger, closeFn, nil
}
