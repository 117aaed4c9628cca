package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/maze-explorer/maze"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the explorer
type Config struct {
	Size       int     // Maze side length
	BraidRatio float64 // Share of Size² walls opened after generation
	Seed       int64   // 0 = random
	FPS        int     // Frame ticks per second
	MoveSpeed  int     // Player steps per second while a key is held
	Sound      bool
	Debug      bool // Enables file logging
}

// Default mirrors the reference game: 30×30, 8% braid, 60 FPS, 7 steps/s
func Default() Config {
	return Config{
		Size:       maze.DefaultSize,
		BraidRatio: maze.DefaultBraidRatio,
		FPS:        60,
		MoveSpeed:  7,
		Sound:      true,
	}
}

// Load layers defaults, an optional .env file, the environment, then args
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] .env file not found or could not be loaded: %v", err)
	}

	cfg, err := FromEnv(Default())
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("maze-explorer", flag.ContinueOnError)
	fs.IntVar(&cfg.Size, "size", cfg.Size, "Maze side length (odd preferred)")
	fs.Float64Var(&cfg.BraidRatio, "braid", cfg.BraidRatio, "Braid ratio [0.0 - 1.0]")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 = random)")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frame rate")
	fs.IntVar(&cfg.MoveSpeed, "speed", cfg.MoveSpeed, "Player steps per second")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Enable sound")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug log to logs/")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv overrides base with any MAZE_* variables that are set
func FromEnv(base Config) (Config, error) {
	cfg := base
	var err error
	if cfg.Size, err = envInt("MAZE_SIZE", cfg.Size); err != nil {
		return Config{}, err
	}
	if cfg.BraidRatio, err = envFloat("MAZE_BRAID_RATIO", cfg.BraidRatio); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = envInt64("MAZE_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.FPS, err = envInt("MAZE_FPS", cfg.FPS); err != nil {
		return Config{}, err
	}
	if cfg.MoveSpeed, err = envInt("MAZE_MOVE_SPEED", cfg.MoveSpeed); err != nil {
		return Config{}, err
	}
	if cfg.Sound, err = envBool("MAZE_SOUND", cfg.Sound); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = envBool("MAZE_DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the game loop or generator cannot use
func (c Config) Validate() error {
	if c.Size < maze.MinSize {
		return fmt.Errorf("%w: size %d below %d", ErrInvalidConfig, c.Size, maze.MinSize)
	}
	if math.IsNaN(c.BraidRatio) || c.BraidRatio < 0 || c.BraidRatio > 1 {
		return fmt.Errorf("%w: braid ratio %v outside 0.0 - 1.0", ErrInvalidConfig, c.BraidRatio)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.MoveSpeed <= 0 || c.MoveSpeed > c.FPS {
		return fmt.Errorf("%w: move speed must be in 1..%d, got %d", ErrInvalidConfig, c.FPS, c.MoveSpeed)
	}
	return nil
}

// Maze returns the generator settings
func (c Config) Maze() maze.Config {
	return maze.Config{Size: c.Size, BraidRatio: c.BraidRatio, Seed: c.Seed}
}

// MoveDelay is the number of frame ticks between player steps
func (c Config) MoveDelay() int {
	return c.FPS / c.MoveSpeed
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// --- Env helpers ---

func envInt(key string, def int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalidConfig, key, err)
	}
	return v, nil
}

func envInt64(key string, def int64) (int64, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalidConfig, key, err)
	}
	return v, nil
}

func envFloat(key string, def float64) (float64, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %w", ErrInvalidConfig, key, err)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %w", ErrInvalidConfig, key, err)
	}
	return v, nil
}
