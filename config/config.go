package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 800
	DefaultWindowTitle  = "Perfect Spherical Water Balloon"
)

// Config holds the shell settings. The simulation core receives everything
// it needs per tick and never reads these.
type Config struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

// Load reads an optional .env file, then environment overrides. A missing
// .env is fine; the defaults run the simulation as-is.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment overrides from .env")
	}

	c := Config{
		WindowWidth:  intVar("BALLOON_WINDOW_WIDTH", DefaultWindowWidth),
		WindowHeight: intVar("BALLOON_WINDOW_HEIGHT", DefaultWindowHeight),
		WindowTitle:  DefaultWindowTitle,
	}
	if v := os.Getenv("BALLOON_WINDOW_TITLE"); v != "" {
		c.WindowTitle = v
	}
	return c
}

func intVar(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("ignoring %s=%q: not a positive integer", name, v)
		return fallback
	}
	return n
}
