package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"radiopotok-tui/catalog"
	"radiopotok-tui/config"
	"radiopotok-tui/player"
	"radiopotok-tui/tui"
)

func main() {
	setupLogging()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("⚠ Could not read config, using defaults: %v\n", err)
		cfg = config.Default()
	}

	// Get station list; a single failed fetch aborts startup
	fmt.Printf("📡 Fetching stations from %s ...\n", cfg.SourceURL)
	stations, err := catalog.New(cfg.SourceURL).Fetch(context.Background())
	if err != nil {
		fmt.Printf("❌ Could not load the station list: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Found %d stations\n", len(stations))

	engine := pickEngine(cfg.Engine)
	session := player.NewSession(engine, cfg.Volume)

	// Run TUI
	fmt.Println("🚀 Starting interface...")
	if err := tui.Run(stations, session); err != nil {
		fmt.Printf("❌ Interface error: %v\n", err)
		os.Exit(1)
	}
}

// pickEngine honors the configured preference; with "auto" it tries
// libVLC first and falls back to the built-in stream player.
func pickEngine(pref string) player.Engine {
	if pref != config.EngineBeep {
		engine, err := player.NewVLCEngine()
		if err == nil {
			return engine
		}
		log.Warn().Err(err).Msg("libVLC unavailable")
		if pref == config.EngineVLC {
			fmt.Printf("❌ VLC engine requested but unavailable: %v\n", err)
			os.Exit(1)
		}
	}
	return player.NewBeepEngine()
}

// setupLogging sends diagnostics to a file under the user cache dir.
// The terminal belongs to the interface, so nothing is logged to it.
func setupLogging() {
	level, err := zerolog.ParseLevel(os.Getenv("RADIOPOTOK_LOG"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = io.Discard
	if cacheDir, err := os.UserCacheDir(); err == nil {
		dir := filepath.Join(cacheDir, "radiopotok-tui")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			if f, err := os.OpenFile(filepath.Join(dir, "radiopotok.log"),
				os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
			}
		}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
