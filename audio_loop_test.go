package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestAmbientGain(t *testing.T) {
	tests := []struct {
		speed, max, want float64
	}{
		{0, 40, minAmbientGain},
		{40, 40, 1},
		{80, 40, 1},
		{20, 40, minAmbientGain + (1-minAmbientGain)/2},
		{10, 0, minAmbientGain},
	}
	for _, tt := range tests {
		if got := ambientGain(tt.speed, tt.max); got != tt.want {
			t.Errorf("ambientGain(%v, %v) = %v, want %v", tt.speed, tt.max, got, tt.want)
		}
	}
}

func TestNilAmbientSeaIsSilent(t *testing.T) {
	var s *ambientSea
	s.follow(10, 40)
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil = %v", err)
	}
}

func TestNewAmbientSeaMissingFile(t *testing.T) {
	_, err := newAmbientSea(filepath.Join(t.TempDir(), "sea.wav"))
	if !errors.Is(err, errAssetLoad) {
		t.Errorf("newAmbientSea() error = %v, want errAssetLoad", err)
	}
}

func TestAmbientPath(t *testing.T) {
	tests := []struct {
		name     string
		ambient  string
		enabled  bool
		want     string
		wantWarn bool
	}{
		{"audio off", "sounds/sea.wav", false, "", false},
		{"audio on", "sounds/sea.wav", true, filepath.Join("data", "sounds", "sea.wav"), false},
		{"audio on without sound", "", true, "", true},
		{"audio off without sound", "", false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			got := ambientPath(AssetConfig{Dir: "data", Ambient: tt.ambient}, tt.enabled, log.New(&logs))
			if got != tt.want {
				t.Errorf("ambientPath() = %q, want %q", got, tt.want)
			}
			if warned := strings.Contains(logs.String(), "assets.ambient is empty"); warned != tt.wantWarn {
				t.Errorf("warned = %v, want %v (log %q)", warned, tt.wantWarn, logs.String())
			}
		})
	}
}
