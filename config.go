package main

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/moby.yaml
var defaultConfigYAML []byte

// Config gathers every tunable of the simulation and its renderers.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Colors  ColorConfig  `yaml:"colors"`
	Assets  AssetConfig  `yaml:"assets"`
	Wind    WindConfig   `yaml:"wind"`
	Boat    BoatConfig   `yaml:"boat"`
	Hud     HudConfig    `yaml:"hud"`
	Sprites SpriteConfig `yaml:"sprites"`
}

// WindowConfig describes the canvas and frame rate.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// ColorConfig holds the palette shared by the screen and HUD.
type ColorConfig struct {
	Background hexColor `yaml:"background"`
	Text       hexColor `yaml:"text"`
	Label      hexColor `yaml:"label"`
	Highlight  hexColor `yaml:"highlight"`
}

// AssetConfig names the files loaded at startup, relative to Dir.
type AssetConfig struct {
	Dir        string  `yaml:"dir"`
	Background string  `yaml:"background"` // optional
	Boat       string  `yaml:"boat"`
	Wind       string  `yaml:"wind"`
	Font       string  `yaml:"font"`
	FontSize   float64 `yaml:"font_size"`
	Ambient    string  `yaml:"ambient"` // optional, only read with --audio
}

// WindConfig drives the wind random walk.
type WindConfig struct {
	InitialDirection float64 `yaml:"initial_direction"`
	InitialSpeed     float64 `yaml:"initial_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	DirectionStep    float64 `yaml:"direction_step"`
	SpeedStep        float64 `yaml:"speed_step"`
	NudgeOdds        int     `yaml:"nudge_odds"` // 1 in N frames per component
	ShiftOdds        int     `yaml:"shift_odds"` // 1 in N frames for a new bearing
}

// BoatConfig sets the helm and trim response.
type BoatConfig struct {
	InitialHeading float64 `yaml:"initial_heading"`
	TurnRate       float64 `yaml:"turn_rate"`
	TrimRate       float64 `yaml:"trim_rate"`
	MaxSail        float64 `yaml:"max_sail"`
}

// HudConfig lays out the instrument panel.
type HudConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	RowHeight   float64 `yaml:"row_height"`
	ValueOffset float64 `yaml:"value_offset"`
	ValueWidth  float64 `yaml:"value_width"`
}

// SpriteConfig places the boat and the wind indicator.
type SpriteConfig struct {
	BoatX        float64 `yaml:"boat_x"`
	BoatY        float64 `yaml:"boat_y"`
	BoomLength   float64 `yaml:"boom_length"`
	WindX        float64 `yaml:"wind_x"`
	WindY        float64 `yaml:"wind_y"`
	WindMinScale float64 `yaml:"wind_min_scale"`
	WindMaxScale float64 `yaml:"wind_max_scale"`
}

// hexColor is a colour written as "#rrggbb" or "#rrggbbaa" in YAML.
type hexColor color.RGBA

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *hexColor) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := parseHexColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c hexColor) MarshalYAML() (any, error) {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

// rgba returns the colour as used by ebiten.
func (c hexColor) rgba() color.RGBA { return color.RGBA(c) }

func parseHexColor(s string) (hexColor, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return hexColor{}, fmt.Errorf("invalid colour %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return hexColor{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return hexColor{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// loadConfig resolves the configuration.
// Search order: path -> ~/.moby/moby.yaml -> ./moby.yaml -> embedded default.
// The second return value names the source that was used.
func loadConfig(path string) (Config, string, error) {
	if path != "" {
		cfg, err := readConfigFile(path)
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, cfg.validate()
	}

	for _, candidate := range []string{userConfigPath(), "moby.yaml"} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		cfg, err := readConfigFile(candidate)
		if err != nil {
			return cfg, candidate, err
		}
		return cfg, candidate, cfg.validate()
	}

	cfg, err := defaultConfig()
	return cfg, "embedded default", err
}

// defaultConfig decodes the embedded defaults.
func defaultConfig() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded config: %w", err)
	}
	return cfg, cfg.validate()
}

// readConfigFile overlays a YAML file onto the embedded defaults, so a file
// only needs the keys it changes.
func readConfigFile(path string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded config: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".moby", "moby.yaml")
}

func (c *Config) validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps %d must be positive", c.Window.TPS))
	}
	if c.Wind.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("wind max_speed %.2f must be positive", c.Wind.MaxSpeed))
	}
	if c.Wind.NudgeOdds <= 0 || c.Wind.ShiftOdds <= 0 {
		errs = append(errs, fmt.Errorf("wind odds must be positive (nudge %d, shift %d)", c.Wind.NudgeOdds, c.Wind.ShiftOdds))
	}
	if c.Boat.MaxSail <= 0 || c.Boat.MaxSail > 90 {
		errs = append(errs, fmt.Errorf("boat max_sail %.1f must be within (0, 90]", c.Boat.MaxSail))
	}
	if c.Assets.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("assets font_size %.1f must be positive", c.Assets.FontSize))
	}
	return errors.Join(errs...)
}
