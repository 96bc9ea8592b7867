// Package config holds the server configuration: config.json when present,
// overridden by WIFIQR_* environment variables, with defaults for the rest.
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"
)

// Config holds the settings the server runs with.
type Config struct {
	ListenAddr   string `json:"listenAddr"`
	StorePath    string `json:"storePath"`
	LogPath      string `json:"logPath"`
	DefaultLevel string `json:"defaultLevel"`
	DefaultSize  int    `json:"defaultSize"`
}

var (
	cfg  Config
	once sync.Once
)

// Load resolves the configuration once per process from config.json in the
// working directory. Subsequent calls return the same value.
func Load() Config {
	once.Do(func() {
		cfg = FromFile("config.json")
	})
	return cfg
}

// FromFile resolves configuration from the JSON file at path. A missing or
// malformed file leaves the defaults in place; environment overrides apply
// either way.
func FromFile(path string) Config {
	c := Config{
		ListenAddr:   ":8080",
		StorePath:    "wifiqr_codes.json",
		LogPath:      "",
		DefaultLevel: "medium",
		DefaultSize:  256,
	}

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if err := json.NewDecoder(f).Decode(&c); err != nil {
			c = Config{
				ListenAddr:   ":8080",
				StorePath:    "wifiqr_codes.json",
				DefaultLevel: "medium",
				DefaultSize:  256,
			}
		}
	}

	if v := os.Getenv("WIFIQR_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("WIFIQR_STORE_PATH"); v != "" {
		c.StorePath = v
	}
	if v := os.Getenv("WIFIQR_LOG_PATH"); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv("WIFIQR_DEFAULT_LEVEL"); v != "" {
		c.DefaultLevel = v
	}
	if v := os.Getenv("WIFIQR_DEFAULT_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.DefaultSize = n
		}
	}

	if c.DefaultSize <= 0 {
		c.DefaultSize = 256
	}
	return c
}
