package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger at the named level.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "moby",
		Level:           lvl,
	}), nil
}
