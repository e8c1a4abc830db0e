package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"

	"github.com/charmbracelet/log"
)

// startCPUProfile writes a CPU profile to path until the returned stop
// function is called. Only the first call to stop does anything; it reports
// where the profile went and how large it is.
func startCPUProfile(path string, logger *log.Logger) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting cpu profile: %w", err)
	}
	logger.Info("recording cpu profile", "path", path)

	var once sync.Once
	return func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			info, statErr := f.Stat()
			if err := f.Close(); err != nil {
				logger.Warn("closing cpu profile", "path", path, "error", err)
				return
			}
			if statErr != nil {
				logger.Info("cpu profile written", "path", path)
				return
			}
			logger.Info("cpu profile written", "path", path, "bytes", info.Size())
		})
	}, nil
}
