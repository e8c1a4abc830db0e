package main

import (
	"math/rand"
	"testing"
)

func testWindConfig() WindConfig {
	return WindConfig{
		InitialDirection: 0,
		InitialSpeed:     5,
		MaxSpeed:         40,
		DirectionStep:    1,
		SpeedStep:        0.5,
		NudgeOdds:        200,
		ShiftOdds:        5000,
	}
}

func TestBeaufortLabelBoundaries(t *testing.T) {
	const eps = 0.000001
	for i, step := range beaufortScale {
		if got := beaufortLabel(step.limit); got != step.label {
			t.Errorf("beaufortLabel(%v) = %q, want %q", step.limit, got, step.label)
		}
		if i+1 < len(beaufortScale) {
			next := beaufortScale[i+1].label
			if got := beaufortLabel(step.limit + eps); got != next {
				t.Errorf("beaufortLabel(%v) = %q, want %q", step.limit+eps, got, next)
			}
		}
	}
}

func TestBeaufortLabelExamples(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0, "Calm"},
		{0.3, "Calm"},
		{0.300001, "Light air"},
		{4, "Gentle breeze"},
		{18, "Gale"},
		{33, "Hurricane"},
		{100, "Hurricane"},
		{250, "Hurricane"},
	}
	for _, tt := range tests {
		if got := beaufortLabel(tt.speed); got != tt.want {
			t.Errorf("beaufortLabel(%v) = %q, want %q", tt.speed, got, tt.want)
		}
	}
}

func TestBeaufortScaleAscending(t *testing.T) {
	for i := 1; i < len(beaufortScale); i++ {
		if beaufortScale[i].limit <= beaufortScale[i-1].limit {
			t.Fatalf("limit %v at row %d does not exceed %v", beaufortScale[i].limit, i, beaufortScale[i-1].limit)
		}
	}
	if n := len(beaufortScale); n != 13 {
		t.Errorf("scale has %d rows, want 13", n)
	}
}

func TestNewWindClampsInitialState(t *testing.T) {
	cfg := testWindConfig()
	cfg.InitialDirection = -90
	cfg.InitialSpeed = 99
	wd := newWind(cfg, rand.New(rand.NewSource(1)))
	if wd.direction != 270 {
		t.Errorf("direction = %v, want 270", wd.direction)
	}
	if wd.speed != cfg.MaxSpeed {
		t.Errorf("speed = %v, want %v", wd.speed, cfg.MaxSpeed)
	}
	if wd.beaufort != "Hurricane" {
		t.Errorf("beaufort = %q, want Hurricane", wd.beaufort)
	}
}

func TestWindRandomWalkStaysInBounds(t *testing.T) {
	cfg := testWindConfig()
	// Nudge and shift on every frame to push the walk hard against its edges.
	cfg.NudgeOdds = 1
	cfg.ShiftOdds = 50
	cfg.SpeedStep = 3
	cfg.DirectionStep = 7
	for seed := int64(1); seed <= 5; seed++ {
		wd := newWind(cfg, rand.New(rand.NewSource(seed)))
		for frame := 0; frame < 20000; frame++ {
			wd.update()
			if wd.direction < 0 || wd.direction >= 360 {
				t.Fatalf("seed %d frame %d: direction %v out of [0, 360)", seed, frame, wd.direction)
			}
			if wd.speed < 0 || wd.speed > cfg.MaxSpeed {
				t.Fatalf("seed %d frame %d: speed %v out of [0, %v]", seed, frame, wd.speed, cfg.MaxSpeed)
			}
			if wd.beaufort != beaufortLabel(wd.speed) {
				t.Fatalf("seed %d frame %d: beaufort %q stale for speed %v", seed, frame, wd.beaufort, wd.speed)
			}
		}
	}
}

func TestWindNudgeRate(t *testing.T) {
	cfg := testWindConfig()
	cfg.InitialSpeed = 20
	cfg.ShiftOdds = 1 << 30
	wd := newWind(cfg, rand.New(rand.NewSource(7)))

	const frames = 200000
	dirChanges, speedChanges := 0, 0
	for i := 0; i < frames; i++ {
		dir, speed := wd.direction, wd.speed
		wd.update()
		if wd.direction != dir {
			dirChanges++
		}
		if wd.speed != speed {
			speedChanges++
		}
	}
	// About 1000 nudges each are expected; speed loses a few to clamping.
	if dirChanges < 800 || dirChanges > 1200 {
		t.Errorf("direction changed %d times in %d frames, want about %d", dirChanges, frames, frames/cfg.NudgeOdds)
	}
	if speedChanges < 700 || speedChanges > 1200 {
		t.Errorf("speed changed %d times in %d frames, want about %d", speedChanges, frames, frames/cfg.NudgeOdds)
	}
}

func TestWindNudgeIsOneStep(t *testing.T) {
	cfg := testWindConfig()
	cfg.InitialDirection = 180
	cfg.InitialSpeed = 20
	cfg.ShiftOdds = 1 << 30
	wd := newWind(cfg, rand.New(rand.NewSource(3)))
	for i := 0; i < 50000; i++ {
		dir, speed := wd.direction, wd.speed
		wd.update()
		if d := wd.direction - dir; d != 0 && d != 1 && d != -1 && d != 359 && d != -359 {
			t.Fatalf("direction moved by %v in one frame", d)
		}
		if d := wd.speed - speed; d != 0 && d != 0.5 && d != -0.5 && wd.speed != 0 && wd.speed != cfg.MaxSpeed {
			t.Fatalf("speed moved by %v in one frame", d)
		}
	}
}

func TestWindShiftFlag(t *testing.T) {
	cfg := testWindConfig()
	cfg.ShiftOdds = 1
	wd := newWind(cfg, rand.New(rand.NewSource(11)))
	wd.update()
	if !wd.shifted {
		t.Error("shifted = false with shift odds of 1")
	}

	cfg.ShiftOdds = 1 << 30
	wd = newWind(cfg, rand.New(rand.NewSource(11)))
	wd.update()
	if wd.shifted {
		t.Error("shifted = true with negligible shift odds")
	}
}

func TestWindScale(t *testing.T) {
	cfg := testWindConfig()
	wd := newWind(cfg, rand.New(rand.NewSource(1)))
	wd.speed = 0
	if got := wd.scale(0.5, 1.5); got != 0.5 {
		t.Errorf("scale at calm = %v, want 0.5", got)
	}
	wd.speed = cfg.MaxSpeed
	if got := wd.scale(0.5, 1.5); got != 1.5 {
		t.Errorf("scale at max = %v, want 1.5", got)
	}
	wd.speed = cfg.MaxSpeed / 2
	if got := wd.scale(0.5, 1.5); got != 1.0 {
		t.Errorf("scale at half = %v, want 1.0", got)
	}
}
