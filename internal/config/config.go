// Package config loads the client's TOML configuration. A missing file
// is not an error; defaults cover everything.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// ServerURL is the websocket endpoint. Leave empty to discover a
	// server on the local network via mDNS.
	ServerURL string `toml:"server_url"`
	LogLevel  string `toml:"log_level"`
	Discover  bool   `toml:"discover"`

	Grid  GridConfig  `toml:"grid"`
	Paint PaintConfig `toml:"paint"`
}

type GridConfig struct {
	Cols     int `toml:"cols"`
	Rows     int `toml:"rows"`
	CellSize int `toml:"cell_size"`
}

// PaintConfig is the initial local paint color; the toolbar can change
// it at runtime.
type PaintConfig struct {
	R uint8 `toml:"r"`
	G uint8 `toml:"g"`
	B uint8 `toml:"b"`
}

func Default() Config {
	return Config{
		ServerURL: "ws://localhost:8080/ws",
		LogLevel:  "info",
		Grid:      GridConfig{Cols: 40, Rows: 40, CellSize: 16},
		Paint:     PaintConfig{R: 0, G: 0, B: 0},
	}
}

// Load reads path and overlays it on the defaults. A nonexistent path
// yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Grid.Cols < 1 || cfg.Grid.Cols > 0xffff {
		return fmt.Errorf("config: grid cols %d out of range", cfg.Grid.Cols)
	}
	if cfg.Grid.Rows < 1 || cfg.Grid.Rows > 0xffff {
		return fmt.Errorf("config: grid rows %d out of range", cfg.Grid.Rows)
	}
	if cfg.Grid.CellSize < 1 {
		return fmt.Errorf("config: cell size %d out of range", cfg.Grid.CellSize)
	}
	return nil
}
