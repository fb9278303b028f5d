package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger opens the --log-file destination. Without one, logs go to
// fallback, which may be io.Discard when the terminal is busy with the game.
// The returned close function is never nil.
func newLogger(path string, fallback io.Writer) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	return logger, closeFn, nil
}
