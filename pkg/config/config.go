// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/opd-ai/centered-triangle/pkg/entity"
	"github.com/opd-ai/centered-triangle/pkg/input"
)

// Config contains configuration for the triangle demo
type Config struct {
	Variant  string         `json:"variant"`
	Window   WindowConfig   `json:"window"`
	Motion   MotionConfig   `json:"motion"`
	Colors   ColorConfig    `json:"colors"`
	Terminal TerminalConfig `json:"terminal"`
	Audio    AudioConfig    `json:"audio"`
}

// WindowConfig describes the host window at start-up
type WindowConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
	VSync      bool   `json:"vsync"`
}

// MotionConfig contains movement tuning
type MotionConfig struct {
	// Speed is in units per second.
	Speed float64 `json:"speed"`
	// RotationSpeed is in degrees per second.
	RotationSpeed float64 `json:"rotationSpeed"`
}

// ColorConfig holds hex colours such as "#00FF00"
type ColorConfig struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// TerminalConfig tunes the terminal host
type TerminalConfig struct {
	// CellWidth and CellHeight are the window units covered by one cell.
	CellWidth  float64 `json:"cellWidth"`
	CellHeight float64 `json:"cellHeight"`
	// KeyHoldMs is how long a key counts as held after a single press.
	KeyHoldMs int `json:"keyHoldMs"`
	// RepeatHoldMs is used instead once the terminal starts auto-repeating.
	RepeatHoldMs int `json:"repeatHoldMs"`
}

// AudioConfig controls the boundary cue
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	Frequency  float64 `json:"frequency"`
	DurationMs int     `json:"durationMs"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *Config, path string) error {
	if config == nil {
		return fmt.Errorf("cannot save nil config")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the configuration of the fullest variant in a
// 500x350 window.
func DefaultConfig() *Config {
	return &Config{
		Variant: string(input.VariantClamped),
		Window: WindowConfig{
			Title:  "centered-triangle",
			Width:  500,
			Height: 350,
			VSync:  true,
		},
		Motion: MotionConfig{
			Speed:         entity.DefaultSpeed,
			RotationSpeed: 100,
		},
		Colors: ColorConfig{
			Background: "#00FF00",
			Foreground: "#FF0000",
		},
		Terminal: TerminalConfig{
			CellWidth:    8,
			CellHeight:   16,
			KeyHoldMs:    550,
			RepeatHoldMs: 120,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Frequency:  440,
			DurationMs: 60,
		},
	}
}

// ParsedVariant returns the variant as an input.Variant.
func (c *Config) ParsedVariant() (input.Variant, error) {
	return input.ParseVariant(c.Variant)
}

// Bounds returns the initial window size as entity bounds.
func (c *Config) Bounds() entity.Bounds {
	return entity.Bounds{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
}

// BackgroundColor parses the background colour.
func (c ColorConfig) BackgroundColor() (color.RGBA, error) {
	return parseHexColor(c.Background)
}

// ForegroundColor parses the triangle colour.
func (c ColorConfig) ForegroundColor() (color.RGBA, error) {
	return parseHexColor(c.Foreground)
}

func parseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// KeyHold returns the single-press hold window.
func (t TerminalConfig) KeyHold() time.Duration {
	return time.Duration(t.KeyHoldMs) * time.Millisecond
}

// RepeatHold returns the hold window once a key auto-repeats.
func (t TerminalConfig) RepeatHold() time.Duration {
	return time.Duration(t.RepeatHoldMs) * time.Millisecond
}

// Duration returns the length of the boundary cue.
func (a AudioConfig) Duration() time.Duration {
	return time.Duration(a.DurationMs) * time.Millisecond
}
