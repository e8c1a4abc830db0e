package main

import "time"

// Command-line flags. Everything else is tuned through the YAML config.
var (
	// flagConfig points at a YAML file overriding the defaults.
	flagConfig string

	// flagSeed seeds the wind and autohelm; 0 picks one from the clock.
	flagSeed int64

	// flagAssets overrides assets.dir from the config.
	flagAssets string

	flagLogLevel string

	// flagDebug shows the FPS/TPS overlay.
	flagDebug bool

	// flagAudio enables the ambient sea loop.
	flagAudio bool

	// flagAutoHelm hands the helm to random scripted input for a while.
	flagAutoHelm time.Duration

	// flagCPUProfile records a CPU profile for the whole session.
	flagCPUProfile string
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "path to a YAML config file")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagAssets, "assets", "", "directory holding images/, fonts/ and sounds/")
	f.StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.BoolVar(&flagDebug, "debug", false, "show FPS and TPS overlay")
	f.BoolVar(&flagAudio, "audio", false, "play the ambient sea loop")
	f.DurationVar(&flagAutoHelm, "autohelm", 0, "steer with random input for this long (e.g. 15s)")
	f.StringVar(&flagCPUProfile, "cpuprofile", "", "write a CPU profile to this file")
}
