package main

import "math"

// Points of sail, from pointing straight into the wind to running before it.
const (
	inIrons     = "In irons"
	closeHauled = "Close-hauled"
	beamReach   = "Beam reach"
	broadReach  = "Broad reach"
	running     = "Running"
)

// pointOfSail classifies the boat's heading against the wind direction.
//
// The difference is the raw |wind - heading| in [0, 360) and is not folded
// onto the shortest arc. The bands mirror around 180 so both halves of the
// circle land in the same category, except exactly on a band edge where the
// upper-inclusive intervals pick the neighbour.
func pointOfSail(windDirection, heading float64) string {
	d := math.Abs(windDirection - heading)
	switch {
	case d > 157.5 && d <= 202.5:
		return inIrons
	case d > 112.5 && d <= 157.5, d > 202.5 && d <= 247.5:
		return closeHauled
	case d > 67.5 && d <= 112.5, d > 247.5 && d <= 292.5:
		return beamReach
	case d > 22.5 && d <= 67.5, d > 292.5 && d <= 337.5:
		return broadReach
	default:
		return running
	}
}

// boat is the player's vessel: where it points and how its sail is set.
type boat struct {
	heading     float64
	sailAngle   float64
	sailAbs     float64
	pointOfSail string

	cfg BoatConfig
}

func newBoat(cfg BoatConfig, windDirection float64) *boat {
	b := &boat{
		heading: wrapDegrees(cfg.InitialHeading),
		cfg:     cfg,
	}
	b.derive(windDirection)
	return b
}

// update applies one frame of helm and trim input. Held keys keep turning,
// so the turn rate is tied to the tick rate.
func (b *boat) update(in controls, windDirection float64) {
	if in.left {
		b.heading -= b.cfg.TurnRate
	}
	if in.right {
		b.heading += b.cfg.TurnRate
	}
	b.heading = wrapDegrees(b.heading)

	if in.up {
		b.sailAngle += b.cfg.TrimRate
	}
	if in.down {
		b.sailAngle -= b.cfg.TrimRate
	}
	b.sailAngle = clampFloat(b.sailAngle, -b.cfg.MaxSail, b.cfg.MaxSail)

	b.derive(windDirection)
}

func (b *boat) derive(windDirection float64) {
	b.sailAbs = wrapDegrees(b.heading + b.sailAngle)
	b.pointOfSail = pointOfSail(windDirection, b.heading)
}
