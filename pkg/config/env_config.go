package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/opd-ai/centered-triangle/pkg/entity"
	"github.com/opd-ai/centered-triangle/pkg/input"
)

// Environment variables read by ApplyEnvironmentOverrides.
const (
	EnvVariant       = "TRIANGLE_VARIANT"
	EnvWindowTitle   = "TRIANGLE_WINDOW_TITLE"
	EnvWindowWidth   = "TRIANGLE_WINDOW_WIDTH"
	EnvWindowHeight  = "TRIANGLE_WINDOW_HEIGHT"
	EnvFullscreen    = "TRIANGLE_FULLSCREEN"
	EnvSpeed         = "TRIANGLE_SPEED"
	EnvRotationSpeed = "TRIANGLE_ROTATION_SPEED"
	EnvBackground    = "TRIANGLE_BACKGROUND"
	EnvForeground    = "TRIANGLE_FOREGROUND"
	EnvKeyHold       = "TRIANGLE_KEY_HOLD"
	EnvSound         = "TRIANGLE_SOUND"
)

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Message)
}

// ApplyEnvironmentOverrides overwrites config fields from TRIANGLE_*
// variables, then validates the result.
func ApplyEnvironmentOverrides(config *Config) error {
	config.Variant = getEnvOrDefault(EnvVariant, config.Variant)
	config.Window.Title = getEnvOrDefault(EnvWindowTitle, config.Window.Title)
	config.Window.Width = getEnvAsIntOrDefault(EnvWindowWidth, config.Window.Width)
	config.Window.Height = getEnvAsIntOrDefault(EnvWindowHeight, config.Window.Height)
	config.Window.Fullscreen = getEnvAsBoolOrDefault(EnvFullscreen, config.Window.Fullscreen)
	config.Motion.Speed = getEnvAsFloatOrDefault(EnvSpeed, config.Motion.Speed)
	config.Motion.RotationSpeed = getEnvAsFloatOrDefault(EnvRotationSpeed, config.Motion.RotationSpeed)
	config.Colors.Background = getEnvOrDefault(EnvBackground, config.Colors.Background)
	config.Colors.Foreground = getEnvOrDefault(EnvForeground, config.Colors.Foreground)
	config.Audio.Enabled = getEnvAsBoolOrDefault(EnvSound, config.Audio.Enabled)

	hold := getEnvAsDurationOrDefault(EnvKeyHold, config.Terminal.KeyHold())
	config.Terminal.KeyHoldMs = int(hold / time.Millisecond)

	return Validate(config)
}

// Validate checks that config can start the demo.
func Validate(config *Config) error {
	if _, err := input.ParseVariant(config.Variant); err != nil {
		return &ValidationError{Field: "Variant", Value: config.Variant, Message: err.Error()}
	}

	minSide := int(2 * entity.HalfExtent)
	if config.Window.Width < minSide {
		return &ValidationError{Field: "Window.Width", Value: config.Window.Width,
			Message: fmt.Sprintf("must be at least %d", minSide)}
	}
	if config.Window.Height < minSide {
		return &ValidationError{Field: "Window.Height", Value: config.Window.Height,
			Message: fmt.Sprintf("must be at least %d", minSide)}
	}

	if config.Motion.Speed < 0 || math.IsNaN(config.Motion.Speed) || math.IsInf(config.Motion.Speed, 0) {
		return &ValidationError{Field: "Motion.Speed", Value: config.Motion.Speed,
			Message: "must be a finite, non-negative number"}
	}
	if math.IsNaN(config.Motion.RotationSpeed) || math.IsInf(config.Motion.RotationSpeed, 0) {
		return &ValidationError{Field: "Motion.RotationSpeed", Value: config.Motion.RotationSpeed,
			Message: "must be finite"}
	}

	if _, err := config.Colors.BackgroundColor(); err != nil {
		return &ValidationError{Field: "Colors.Background", Value: config.Colors.Background, Message: err.Error()}
	}
	if _, err := config.Colors.ForegroundColor(); err != nil {
		return &ValidationError{Field: "Colors.Foreground", Value: config.Colors.Foreground, Message: err.Error()}
	}

	if config.Terminal.CellWidth <= 0 {
		return &ValidationError{Field: "Terminal.CellWidth", Value: config.Terminal.CellWidth, Message: "must be positive"}
	}
	if config.Terminal.CellHeight <= 0 {
		return &ValidationError{Field: "Terminal.CellHeight", Value: config.Terminal.CellHeight, Message: "must be positive"}
	}
	if config.Terminal.KeyHoldMs <= 0 {
		return &ValidationError{Field: "Terminal.KeyHoldMs", Value: config.Terminal.KeyHoldMs, Message: "must be positive"}
	}
	if config.Terminal.RepeatHoldMs <= 0 {
		return &ValidationError{Field: "Terminal.RepeatHoldMs", Value: config.Terminal.RepeatHoldMs, Message: "must be positive"}
	}

	if config.Audio.Enabled {
		if config.Audio.Frequency <= 0 {
			return &ValidationError{Field: "Audio.Frequency", Value: config.Audio.Frequency, Message: "must be positive"}
		}
		if config.Audio.DurationMs <= 0 {
			return &ValidationError{Field: "Audio.DurationMs", Value: config.Audio.DurationMs, Message: "must be positive"}
		}
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
