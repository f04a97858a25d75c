package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// settingsFile is looked up next to the binary. The file is optional; the
// defaults below apply when it is missing.
const settingsFile = "settings.yaml"

// Settings configure the presentation shell. The turn engine itself takes no
// configuration beyond its random source.
type Settings struct {
	WindowWidth     float32 `yaml:"window_width"`
	WindowHeight    float32 `yaml:"window_height"`
	Volume          float64 `yaml:"volume"`            // 0.0 to 1.0
	ThinkingDelayMS int     `yaml:"thinking_delay_ms"` // cosmetic AI pause
	Seed            int64   `yaml:"seed"`              // 0 seeds from the clock
}

func defaultSettings() Settings {
	return Settings{
		WindowWidth:     1024,
		WindowHeight:    768,
		Volume:          0.7,
		ThinkingDelayMS: int(defaultThinkingDelay / time.Millisecond),
	}
}

// loadSettings reads the optional settings file, applying defaults for a
// missing file and clamping out-of-range values. A malformed file is
// reported and ignored rather than aborting the game.
func loadSettings(path string) Settings {
	settings := defaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("cannot read %s: %v, using defaults", path, err)
		}
		return settings
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		log.Printf("cannot parse %s: %v, using defaults", path, err)
		return defaultSettings()
	}
	if err := settings.validate(); err != nil {
		log.Printf("invalid %s: %v, using defaults", path, err)
		return defaultSettings()
	}
	return settings
}

func (s *Settings) validate() error {
	if s.WindowWidth < 640 || s.WindowHeight < 480 {
		return fmt.Errorf("window size %.0fx%.0f is below the 640x480 minimum", s.WindowWidth, s.WindowHeight)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("volume %.2f is outside 0..1", s.Volume)
	}
	if s.ThinkingDelayMS < 0 {
		return fmt.Errorf("thinking delay %dms is negative", s.ThinkingDelayMS)
	}
	return nil
}

// ThinkingDelay returns the AI pause as a duration.
func (s Settings) ThinkingDelay() time.Duration {
	return time.Duration(s.ThinkingDelayMS) * time.Millisecond
}
