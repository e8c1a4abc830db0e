package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// controls is the keyboard state sampled once per tick. Keys are level
// triggered: holding a key applies it on every frame.
type controls struct {
	left, right bool
	up, down    bool
	quit        bool
}

// readControls samples the helm, trim and quit keys.
func readControls() controls {
	return controls{
		left:  ebiten.IsKeyPressed(ebiten.KeyLeft),
		right: ebiten.IsKeyPressed(ebiten.KeyRight),
		up:    ebiten.IsKeyPressed(ebiten.KeyUp),
		down:  ebiten.IsKeyPressed(ebiten.KeyDown),
		quit:  ebiten.IsKeyPressed(ebiten.KeyQ),
	}
}

// autoHelm steers with random held-key runs until its deadline passes.
type autoHelm struct {
	deadline time.Time
	rng      *rand.Rand
	now      func() time.Time

	current    controls
	framesLeft int
}

func newAutoHelm(duration time.Duration, rng *rand.Rand) *autoHelm {
	return &autoHelm{
		deadline: time.Now().Add(duration),
		rng:      rng,
		now:      time.Now,
	}
}

// active reports whether the autohelm still has the helm.
func (a *autoHelm) active() bool {
	return a != nil && a.now().Before(a.deadline)
}

// controls returns the next scripted snapshot. A key combination is held for
// a random run of frames before a new one is picked.
func (a *autoHelm) controls() controls {
	if a.framesLeft <= 0 {
		a.randomize()
	}
	a.framesLeft--
	return a.current
}

func (a *autoHelm) randomize() {
	a.current = controls{}
	switch a.rng.Intn(3) {
	case 0:
		a.current.left = true
	case 1:
		a.current.right = true
	}
	switch a.rng.Intn(3) {
	case 0:
		a.current.up = true
	case 1:
		a.current.down = true
	}
	a.framesLeft = 20 + a.rng.Intn(50)
}
