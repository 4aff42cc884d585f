package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultSourceURL is the catalog page scraped at startup.
const DefaultSourceURL = "https://radiopotok.ru/rock"

// Engine preference values.
const (
	EngineAuto = "auto" // try VLC, fall back to the built-in stream player
	EngineVLC  = "vlc"
	EngineBeep = "beep"
)

// Config is the application configuration. The file is only ever read:
// nothing is persisted between runs.
type Config struct {
	SourceURL string `json:"source_url"` // catalog page URL
	Engine    string `json:"engine"`     // playback engine preference
	Volume    int    `json:"volume"`     // startup volume 0-100, -1 = engine default
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SourceURL: DefaultSourceURL,
		Engine:    EngineAuto,
		Volume:    -1,
	}
}

// path returns the config file location under the user config directory.
func path() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "radiopotok-tui", "config.json")
}

// Load reads the configuration file, falling back to defaults when the
// file is absent. Out-of-range values are normalized rather than rejected.
func Load() (Config, error) {
	data, err := os.ReadFile(path())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	return Normalize(cfg), nil
}

// Normalize clamps and defaults out-of-range fields.
func Normalize(cfg Config) Config {
	if cfg.SourceURL == "" {
		cfg.SourceURL = DefaultSourceURL
	}
	switch cfg.Engine {
	case EngineAuto, EngineVLC, EngineBeep:
	default:
		cfg.Engine = EngineAuto
	}
	if cfg.Volume < -1 {
		cfg.Volume = -1
	} else if cfg.Volume > 100 {
		cfg.Volume = 100
	}
	return cfg
}
