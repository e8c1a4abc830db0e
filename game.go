package main

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game ties the wind, the boat and their renderers into ebiten's loop.
type Game struct {
	cfg    Config
	logger *log.Logger

	wind *wind
	boat *boat

	screen *screen
	hud    *hud
	assets *assets

	// keys samples the keyboard; tests substitute a scripted source.
	keys func() controls

	helm *autoHelm
	// helmDone runs once when the autohelm hands back the helm.
	helmDone func()

	ambient *ambientSea
	debug   bool
}

// newGame builds the simulation state. Renderers are attached separately
// by attachRenderers once assets are loaded.
func newGame(cfg Config, rng *rand.Rand, logger *log.Logger) *Game {
	wd := newWind(cfg.Wind, rng)
	return &Game{
		cfg:    cfg,
		logger: logger,
		wind:   wd,
		boat:   newBoat(cfg.Boat, wd.direction),
		keys:   readControls,
	}
}

// attachRenderers wires loaded assets into the screen and HUD.
func (g *Game) attachRenderers(a *assets) {
	g.assets = a
	g.screen = newScreen(g.cfg.Colors, a.background)
	g.hud = newHud(g.cfg.Hud, g.cfg.Colors, a.face, a.background)
}

// Update samples input once and advances one frame. A quit request ends
// the loop before anything moves.
func (g *Game) Update() error {
	in := g.input()
	if in.quit {
		return ebiten.Termination
	}
	g.step(in)
	g.ambient.follow(g.wind.speed, g.cfg.Wind.MaxSpeed)
	return nil
}

// input prefers the autohelm while it is active, then the keyboard. Q still
// quits during an autohelm run.
func (g *Game) input() controls {
	keys := g.keys()
	if g.helm.active() {
		in := g.helm.controls()
		in.quit = keys.quit
		return in
	}
	if g.helm != nil {
		g.logger.Info("autohelm finished, keyboard has the helm")
		g.helm = nil
		if g.helmDone != nil {
			g.helmDone()
			g.helmDone = nil
		}
	}
	return keys
}

// step advances the boat from the input snapshot, then the wind.
func (g *Game) step(in controls) {
	g.boat.update(in, g.wind.direction)

	prevLabel := g.wind.beaufort
	g.wind.update()
	if g.wind.shifted {
		g.logger.Debug("wind shift", "direction", g.wind.direction)
	}
	if g.wind.beaufort != prevLabel {
		g.logger.Debug("wind category changed", "from", prevLabel, "to", g.wind.beaufort, "speed", g.wind.speed)
	}
}
