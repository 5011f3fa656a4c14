// Package config loads startup settings from a .env file and the process
// environment. Everything has a sane default; bad values fall back with a
// log line instead of failing, since every setting is cosmetic or a match
// constant the menu can still override.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"territorial/internal/engine"
)

// Config is the resolved startup configuration.
type Config struct {
	GridSize int   // default board edge, one of 7/10/12
	Music    bool  // background music on at launch
	Seed     int64 // RNG seed; 0 in the environment means time-based
	WindowW  int
	WindowH  int
}

func defaults() Config {
	return Config{
		GridSize: 10,
		Music:    true,
		Seed:     time.Now().UnixNano(),
		WindowW:  1024,
		WindowH:  768,
	}
}

// Load reads .env (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded settings from .env")
	}
	return fromEnv(os.Getenv)
}

// fromEnv resolves a Config through the given lookup. Split out so tests
// can feed a map instead of the process environment.
func fromEnv(getenv func(string) string) Config {
	cfg := defaults()

	if v := getenv("TERRITORIAL_GRID_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && engine.ValidGridSize(n) {
			cfg.GridSize = n
		} else {
			log.Printf("ignoring TERRITORIAL_GRID_SIZE=%q (want 7, 10 or 12)", v)
		}
	}
	if v := getenv("TERRITORIAL_MUSIC"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Music = b
		} else {
			log.Printf("ignoring TERRITORIAL_MUSIC=%q", v)
		}
	}
	if v := getenv("TERRITORIAL_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n != 0 {
			cfg.Seed = n
		} else {
			log.Printf("ignoring TERRITORIAL_SEED=%q", v)
		}
	}
	if v := getenv("TERRITORIAL_WINDOW_W"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 320 {
			cfg.WindowW = n
		} else {
			log.Printf("ignoring TERRITORIAL_WINDOW_W=%q", v)
		}
	}
	if v := getenv("TERRITORIAL_WINDOW_H"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 240 {
			cfg.WindowH = n
		} else {
			log.Printf("ignoring TERRITORIAL_WINDOW_H=%q", v)
		}
	}
	return cfg
}
