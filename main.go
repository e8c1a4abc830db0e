// moby is a small sailing game: steer a boat, trim its sail and watch the
// point of sail change as the wind wanders.
//
// Usage:
//
//	moby [flags]
//
// Controls:
//
//	Left/Right  - turn the bow
//	Up/Down     - trim the sail
//	Q           - quit
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errAssetLoad) {
			fmt.Fprintln(os.Stderr, "check --assets or assets.dir in the config")
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moby",
	Short: "Moby Dick - a sailing simulator",
	Long: `Moby Dick is a sailing simulator intended to cross the seven seas.

Steer with the arrow keys: Left/Right turn the bow, Up/Down trim the sail.
The HUD shows heading, sail trim, point of sail and the wind on the
Beaufort scale. Press Q to quit.

Examples:
  moby
  moby --assets ./data --audio
  moby --config ./my-moby.yaml --seed 42
  moby --autohelm 15s --cpuprofile moby.pprof`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func runGame(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	cfg, source, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	logger.Info("config loaded", "source", source, "assets", cfg.Assets.Dir,
		"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("seeded", "seed", seed)

	g := newGame(cfg, rand.New(rand.NewSource(seed)), logger)
	g.debug = flagDebug

	a, err := loadAssets(cfg.Assets)
	if err != nil {
		logger.Error("cannot start", "error", err)
		return err
	}
	g.attachRenderers(a)

	if path := ambientPath(cfg.Assets, flagAudio, logger); path != "" {
		sea, err := newAmbientSea(path)
		if err != nil {
			logger.Error("cannot start", "error", err)
			return err
		}
		defer sea.Close()
		g.ambient = sea
	}

	if flagAutoHelm > 0 {
		g.helm = newAutoHelm(flagAutoHelm, rand.New(rand.NewSource(seed+1)))
		logger.Info("autohelm engaged", "duration", flagAutoHelm)
	}

	if flagCPUProfile != "" {
		stop, err := startCPUProfile(flagCPUProfile, logger)
		if err != nil {
			return err
		}
		defer stop()
		// With the autohelm on, the profile covers just the scripted run.
		if g.helm != nil {
			g.helmDone = stop
		}
	}

	logger.Info("::: Moby :::  Press [Q] to quit.")

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
