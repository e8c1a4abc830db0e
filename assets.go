package main

import (
	"errors"
	"fmt"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// errAssetLoad marks a missing or unreadable image, font or sound. It is
// always fatal at startup.
var errAssetLoad = errors.New("asset load failure")

// assets are the sprites and font shared by the renderers.
type assets struct {
	background *ebiten.Image // nil when no background image is configured
	boat       *ebiten.Image
	wind       *ebiten.Image
	face       text.Face
}

// assetPath resolves name against the asset directory.
func assetPath(cfg AssetConfig, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Dir, name)
}

// loadAssets reads every configured image and the HUD font.
func loadAssets(cfg AssetConfig) (*assets, error) {
	a := &assets{}
	var err error
	if cfg.Background != "" {
		if a.background, err = loadImage(assetPath(cfg, cfg.Background)); err != nil {
			return nil, err
		}
	}
	if a.boat, err = loadImage(assetPath(cfg, cfg.Boat)); err != nil {
		return nil, err
	}
	if a.wind, err = loadImage(assetPath(cfg, cfg.Wind)); err != nil {
		return nil, err
	}
	if a.face, err = loadFace(assetPath(cfg, cfg.Font), cfg.FontSize); err != nil {
		return nil, err
	}
	return a, nil
}

func loadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: image %q: %v", errAssetLoad, path, err)
	}
	return img, nil
}

// loadFace parses a TrueType/OpenType file into a HUD face of the given
// point size.
func loadFace(path string, size float64) (text.Face, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: font %q: %v", errAssetLoad, path, err)
	}
	parsed, err := opentype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing font %q: %v", errAssetLoad, path, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font face %q: %v", errAssetLoad, path, err)
	}
	return text.NewGoXFace(face), nil
}
