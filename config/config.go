// Package config loads wardkeeper settings from the environment, with .env
// file support for local runs.
package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings. Flags may override any of them.
type Config struct {
	// DataDir is where the container text files live.
	DataDir string

	// AuditDB is the SQLite audit database path, without extension. Empty
	// disables the audit log.
	AuditDB string

	// Monitor enables the web monitor.
	Monitor bool

	// MonitorPort is the requested monitor port. Zero picks a random one.
	MonitorPort int
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads the configuration once and returns it on every later call.
func Load() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found. Relying on environment variables.")
		}

		cfg = &Config{
			DataDir:     envOr("WARD_DATA_DIR", "."),
			AuditDB:     os.Getenv("WARD_AUDIT_DB"),
			Monitor:     os.Getenv("WARD_MONITOR") == "1",
			MonitorPort: envInt("WARD_MONITOR_PORT"),
		}
	})
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: not a number.", key, v)
		return 0
	}
	return n
}
