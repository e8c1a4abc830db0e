package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	audioSampleRate = 48000
	minAmbientGain  = 0.15
)

// ambientSea loops a recorded sea sound whose volume follows the wind.
type ambientSea struct {
	ctx    *audio.Context
	player *audio.Player
}

// newAmbientSea decodes the WAV at path and starts it looping.
func newAmbientSea(path string) (*ambientSea, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: sound %q: %v", errAssetLoad, path, err)
	}
	ctx := audio.NewContext(audioSampleRate)
	stream, err := wav.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %q: %v", errAssetLoad, path, err)
	}
	if stream.Length() == 0 {
		return nil, fmt.Errorf("%w: wav %q has no audio data", errAssetLoad, path)
	}
	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("creating ambient player: %w", err)
	}
	player.Play()
	return &ambientSea{ctx: ctx, player: player}, nil
}

// follow scales the loop volume with the wind speed.
func (s *ambientSea) follow(speed, maxSpeed float64) {
	if s == nil {
		return
	}
	s.player.SetVolume(ambientGain(speed, maxSpeed))
}

// ambientGain maps wind speed to a player volume in [minAmbientGain, 1].
func ambientGain(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return minAmbientGain
	}
	return minAmbientGain + (1-minAmbientGain)*clampFloat(speed/maxSpeed, 0, 1)
}

func (s *ambientSea) Close() error {
	if s == nil {
		return nil
	}
	return s.player.Close()
}

// ambientPath returns the sound file to loop, or "" when audio is off. Asking
// for audio without a configured sound is reported, not fatal.
func ambientPath(cfg AssetConfig, enabled bool, logger *log.Logger) string {
	if !enabled {
		return ""
	}
	if cfg.Ambient == "" {
		logger.Warn("--audio set but assets.ambient is empty, playing no sound")
		return ""
	}
	return assetPath(cfg, cfg.Ambient)
}
