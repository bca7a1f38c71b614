package config

import (
	"os"
	"testing"
	"time"
)

var allEnvVars = []string{
	EnvVariant,
	EnvWindowTitle,
	EnvWindowWidth,
	EnvWindowHeight,
	EnvFullscreen,
	EnvSpeed,
	EnvRotationSpeed,
	EnvBackground,
	EnvForeground,
	EnvKeyHold,
	EnvSound,
}

// clearEnv unsets every TRIANGLE_* variable and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	original := make(map[string]string)
	for _, key := range allEnvVars {
		if value, ok := os.LookupEnv(key); ok {
			original[key] = value
		}
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range allEnvVars {
			if value, ok := original[key]; ok {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	})
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		clearEnv(t)

		config := DefaultConfig()
		if err := ApplyEnvironmentOverrides(config); err != nil {
			t.Fatalf("ApplyEnvironmentOverrides() failed: %v", err)
		}
		if *config != *DefaultConfig() {
			t.Errorf("config changed without environment overrides: %+v", *config)
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		clearEnv(t)
		os.Setenv(EnvVariant, "basic")
		os.Setenv(EnvWindowTitle, "triangle")
		os.Setenv(EnvWindowWidth, "1024")
		os.Setenv(EnvWindowHeight, "768")
		os.Setenv(EnvFullscreen, "true")
		os.Setenv(EnvSpeed, "350.5")
		os.Setenv(EnvRotationSpeed, "-45")
		os.Setenv(EnvBackground, "#000000")
		os.Setenv(EnvForeground, "#ffffff")
		os.Setenv(EnvKeyHold, "400ms")
		os.Setenv(EnvSound, "1")

		config := DefaultConfig()
		if err := ApplyEnvironmentOverrides(config); err != nil {
			t.Fatalf("ApplyEnvironmentOverrides() failed: %v", err)
		}

		if config.Variant != "basic" {
			t.Errorf("Expected Variant 'basic', got '%s'", config.Variant)
		}
		if config.Window.Title != "triangle" {
			t.Errorf("Expected title 'triangle', got '%s'", config.Window.Title)
		}
		if config.Window.Width != 1024 || config.Window.Height != 768 {
			t.Errorf("Expected 1024x768, got %dx%d", config.Window.Width, config.Window.Height)
		}
		if !config.Window.Fullscreen {
			t.Error("Expected Fullscreen true")
		}
		if config.Motion.Speed != 350.5 {
			t.Errorf("Expected Speed 350.5, got %f", config.Motion.Speed)
		}
		if config.Motion.RotationSpeed != -45 {
			t.Errorf("Expected RotationSpeed -45, got %f", config.Motion.RotationSpeed)
		}
		if config.Colors.Background != "#000000" || config.Colors.Foreground != "#ffffff" {
			t.Errorf("unexpected colours %+v", config.Colors)
		}
		if config.Terminal.KeyHold() != 400*time.Millisecond {
			t.Errorf("Expected KeyHold 400ms, got %v", config.Terminal.KeyHold())
		}
		if !config.Audio.Enabled {
			t.Error("Expected audio enabled")
		}
	})

	t.Run("InvalidOverrideFailsValidation", func(t *testing.T) {
		clearEnv(t)
		os.Setenv(EnvVariant, "sideways")

		err := ApplyEnvironmentOverrides(DefaultConfig())
		validationErr, ok := err.(*ValidationError)
		if !ok {
			t.Fatalf("Expected ValidationError, got %T: %v", err, err)
		}
		if validationErr.Field != "Variant" {
			t.Errorf("Expected error for field 'Variant', got '%s'", validationErr.Field)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
		errorField  string
	}{
		{
			name:   "ValidConfig",
			mutate: func(c *Config) {},
		},
		{
			name:        "UnknownVariant",
			mutate:      func(c *Config) { c.Variant = "" },
			expectError: true,
			errorField:  "Variant",
		},
		{
			name:        "WindowTooNarrow",
			mutate:      func(c *Config) { c.Window.Width = 49 },
			expectError: true,
			errorField:  "Window.Width",
		},
		{
			name:   "WindowExactFit",
			mutate: func(c *Config) { c.Window.Width, c.Window.Height = 50, 50 },
		},
		{
			name:        "WindowTooShort",
			mutate:      func(c *Config) { c.Window.Height = 0 },
			expectError: true,
			errorField:  "Window.Height",
		},
		{
			name:        "NegativeSpeed",
			mutate:      func(c *Config) { c.Motion.Speed = -1 },
			expectError: true,
			errorField:  "Motion.Speed",
		},
		{
			name:   "ZeroSpeed",
			mutate: func(c *Config) { c.Motion.Speed = 0 },
		},
		{
			name:        "BadBackground",
			mutate:      func(c *Config) { c.Colors.Background = "green" },
			expectError: true,
			errorField:  "Colors.Background",
		},
		{
			name:        "BadForeground",
			mutate:      func(c *Config) { c.Colors.Foreground = "#GG0000" },
			expectError: true,
			errorField:  "Colors.Foreground",
		},
		{
			name:        "ZeroCellWidth",
			mutate:      func(c *Config) { c.Terminal.CellWidth = 0 },
			expectError: true,
			errorField:  "Terminal.CellWidth",
		},
		{
			name:        "ZeroKeyHold",
			mutate:      func(c *Config) { c.Terminal.KeyHoldMs = 0 },
			expectError: true,
			errorField:  "Terminal.KeyHoldMs",
		},
		{
			name: "AudioDisabledIgnoresFrequency",
			mutate: func(c *Config) {
				c.Audio.Enabled = false
				c.Audio.Frequency = 0
			},
		},
		{
			name: "AudioEnabledNeedsFrequency",
			mutate: func(c *Config) {
				c.Audio.Enabled = true
				c.Audio.Frequency = 0
			},
			expectError: true,
			errorField:  "Audio.Frequency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := Validate(config)
			if !tt.expectError {
				if err != nil {
					t.Errorf("Expected no validation error, but got: %v", err)
				}
				return
			}

			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Expected ValidationError, got %T: %v", err, err)
			}
			if validationErr.Field != tt.errorField {
				t.Errorf("Expected error for field '%s', got error for field '%s'", tt.errorField, validationErr.Field)
			}
			if validationErr.Error() == "" {
				t.Error("ValidationError.Error() is empty")
			}
		})
	}
}

func TestGetEnvHelperFunctions(t *testing.T) {
	t.Setenv("TRIANGLE_TEST_STRING", "value")
	if got := getEnvOrDefault("TRIANGLE_TEST_STRING", "default"); got != "value" {
		t.Errorf("getEnvOrDefault: expected 'value', got '%s'", got)
	}
	if got := getEnvOrDefault("TRIANGLE_TEST_MISSING", "default"); got != "default" {
		t.Errorf("getEnvOrDefault: expected 'default', got '%s'", got)
	}

	t.Setenv("TRIANGLE_TEST_INT", "42")
	if got := getEnvAsIntOrDefault("TRIANGLE_TEST_INT", 10); got != 42 {
		t.Errorf("getEnvAsIntOrDefault: expected 42, got %d", got)
	}
	t.Setenv("TRIANGLE_TEST_INT", "forty-two")
	if got := getEnvAsIntOrDefault("TRIANGLE_TEST_INT", 10); got != 10 {
		t.Errorf("getEnvAsIntOrDefault with invalid value: expected 10, got %d", got)
	}

	t.Setenv("TRIANGLE_TEST_BOOL", "true")
	if got := getEnvAsBoolOrDefault("TRIANGLE_TEST_BOOL", false); !got {
		t.Error("getEnvAsBoolOrDefault: expected true")
	}
	t.Setenv("TRIANGLE_TEST_BOOL", "maybe")
	if got := getEnvAsBoolOrDefault("TRIANGLE_TEST_BOOL", false); got {
		t.Error("getEnvAsBoolOrDefault with invalid value: expected false")
	}

	t.Setenv("TRIANGLE_TEST_FLOAT", "3.5")
	if got := getEnvAsFloatOrDefault("TRIANGLE_TEST_FLOAT", 1.0); got != 3.5 {
		t.Errorf("getEnvAsFloatOrDefault: expected 3.5, got %f", got)
	}

	t.Setenv("TRIANGLE_TEST_DURATION", "5s")
	if got := getEnvAsDurationOrDefault("TRIANGLE_TEST_DURATION", time.Second); got != 5*time.Second {
		t.Errorf("getEnvAsDurationOrDefault: expected 5s, got %v", got)
	}
	t.Setenv("TRIANGLE_TEST_DURATION", "soon")
	if got := getEnvAsDurationOrDefault("TRIANGLE_TEST_DURATION", time.Second); got != time.Second {
		t.Errorf("getEnvAsDurationOrDefault with invalid value: expected 1s, got %v", got)
	}
}
