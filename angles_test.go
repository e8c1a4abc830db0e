package main

import (
	"math"
	"testing"
)

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-360, 0},
		{-721, 359},
		{1080.5, 0.5},
	}
	for _, tt := range tests {
		if got := wrapDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapDegreesTinyNegative(t *testing.T) {
	got := wrapDegrees(-1e-15)
	if got < 0 || got >= 360 {
		t.Errorf("wrapDegrees(-1e-15) = %v, want within [0, 360)", got)
	}
}

func TestClampFloat(t *testing.T) {
	if got := clampFloat(-91, -90, 90); got != -90 {
		t.Errorf("clampFloat(-91) = %v, want -90", got)
	}
	if got := clampFloat(91, -90, 90); got != 90 {
		t.Errorf("clampFloat(91) = %v, want 90", got)
	}
	if got := clampFloat(12.5, -90, 90); got != 12.5 {
		t.Errorf("clampFloat(12.5) = %v, want 12.5", got)
	}
}

func TestCompassOffset(t *testing.T) {
	tests := []struct {
		bearing  float64
		wantX    float64
		wantY    float64
		describe string
	}{
		{0, 0, -10, "north is up"},
		{90, 10, 0, "east is right"},
		{180, 0, 10, "south is down"},
		{270, -10, 0, "west is left"},
	}
	for _, tt := range tests {
		x, y := compassOffset(tt.bearing, 10)
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("%s: compassOffset(%v) = (%v, %v), want (%v, %v)", tt.describe, tt.bearing, x, y, tt.wantX, tt.wantY)
		}
	}
}
