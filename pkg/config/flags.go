package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
)

// FlagOverrides holds command line values that take precedence over the
// config file and the environment. Only flags that were actually set are
// applied.
type FlagOverrides struct {
	set        *flag.FlagSet
	variant    *string
	width      *int
	height     *int
	fullscreen *bool
	sound      *bool
	speed      *float64
}

// RegisterFlags defines the override flags on set.
func RegisterFlags(set *flag.FlagSet) *FlagOverrides {
	return &FlagOverrides{
		set:        set,
		variant:    set.String("variant", "", "Demo variant: 'basic', 'rotate' or 'clamped'"),
		width:      set.Int("width", 0, "Initial window width"),
		height:     set.Int("height", 0, "Initial window height"),
		fullscreen: set.Bool("fullscreen", false, "Run in fullscreen mode"),
		sound:      set.Bool("sound", false, "Play a tone when the triangle hits an edge"),
		speed:      set.Float64("speed", 0, "Movement speed in units per second"),
	}
}

// Apply copies every explicitly set flag into config and validates it.
func (f *FlagOverrides) Apply(config *Config) error {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "variant":
			config.Variant = *f.variant
		case "width":
			config.Window.Width = *f.width
		case "height":
			config.Window.Height = *f.height
		case "fullscreen":
			config.Window.Fullscreen = *f.fullscreen
		case "sound":
			config.Audio.Enabled = *f.sound
		case "speed":
			config.Motion.Speed = *f.speed
		}
	})
	return Validate(config)
}

// LoadOrDefault loads path, or returns DefaultConfig when the file does
// not exist. The boolean reports whether the file was found.
func LoadOrDefault(path string) (*Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to stat config file: %w", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return config, true, nil
}
