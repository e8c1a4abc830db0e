package main

import "math/rand"

// beaufortStep is one row of the Beaufort table: any speed at or below
// limit that did not match an earlier row carries label.
type beaufortStep struct {
	limit float64
	label string
}

// beaufortScale is ordered by ascending limit. Hurricane is the catch-all.
var beaufortScale = [...]beaufortStep{
	{0.3, "Calm"},
	{1.5, "Light air"},
	{3.3, "Light breeze"},
	{5.4, "Gentle breeze"},
	{7.9, "Moderate breeze"},
	{10.7, "Fresh breeze"},
	{13.8, "Strong breeze"},
	{17.1, "Near gale"},
	{20.7, "Gale"},
	{24.4, "Strong gale"},
	{28.4, "Storm"},
	{32.6, "Violent storm"},
	{100, "Hurricane"},
}

// beaufortLabel classifies a wind speed on the Beaufort scale.
func beaufortLabel(speed float64) string {
	for _, step := range beaufortScale {
		if speed <= step.limit {
			return step.label
		}
	}
	return beaufortScale[len(beaufortScale)-1].label
}

// wind holds the true wind acting on the sea area.
type wind struct {
	direction float64
	speed     float64
	beaufort  string

	cfg WindConfig
	rng *rand.Rand

	// shifted reports whether the last update reassigned the direction.
	shifted bool
}

func newWind(cfg WindConfig, rng *rand.Rand) *wind {
	wd := &wind{
		direction: wrapDegrees(cfg.InitialDirection),
		speed:     clampFloat(cfg.InitialSpeed, 0, cfg.MaxSpeed),
		cfg:       cfg,
		rng:       rng,
	}
	wd.beaufort = beaufortLabel(wd.speed)
	return wd
}

// update advances the random walk by one frame. Direction and speed are
// nudged independently; rarely the direction jumps to a new bearing.
func (wd *wind) update() {
	wd.shifted = false
	if wd.rng.Intn(wd.cfg.NudgeOdds) == 0 {
		wd.direction = wrapDegrees(wd.direction + wd.randomSign()*wd.cfg.DirectionStep)
	}
	if wd.rng.Intn(wd.cfg.NudgeOdds) == 0 {
		wd.speed = clampFloat(wd.speed+wd.randomSign()*wd.cfg.SpeedStep, 0, wd.cfg.MaxSpeed)
	}
	if wd.rng.Intn(wd.cfg.ShiftOdds) == 0 {
		wd.direction = wrapDegrees(wd.rng.Float64() * 360)
		wd.shifted = true
	}
	wd.beaufort = beaufortLabel(wd.speed)
}

func (wd *wind) randomSign() float64 {
	if wd.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// scale maps the current speed onto the configured indicator scale range.
func (wd *wind) scale(minScale, maxScale float64) float64 {
	if wd.cfg.MaxSpeed <= 0 {
		return minScale
	}
	return minScale + (maxScale-minScale)*wd.speed/wd.cfg.MaxSpeed
}
