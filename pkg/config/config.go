// Package config loads stacker settings.
//
// Settings are resolved in three layers, later layers winning:
//
//  1. built-in defaults ([Default])
//  2. a TOML file, by default $XDG_CONFIG_HOME/stacker/config.toml
//  3. STACKER_* environment variables
//
// CLI flags are applied on top by the caller. A missing config file is not
// an error; unknown keys in an existing file are.
//
// Example file:
//
//	[physics]
//	speed = 12.0
//	bound = 14.0
//
//	[store]
//	backend = "redis"
//	redis_addr = "localhost:6379"
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/matzehuels/stacker/pkg/core/block"
	"github.com/matzehuels/stacker/pkg/core/tower"
	"github.com/matzehuels/stacker/pkg/errors"
	"github.com/matzehuels/stacker/pkg/score"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STACKER_"

// Config is the full set of user settings.
type Config struct {
	Physics Physics `toml:"physics" envPrefix:"PHYSICS_"`
	Store   Store   `toml:"store" envPrefix:"STORE_"`
	Display Display `toml:"display" envPrefix:"DISPLAY_"`
	Metrics Metrics `toml:"metrics" envPrefix:"METRICS_"`
}

// Physics mirrors tower.Physics with file and env names.
type Physics struct {
	LayerHeight float64 `toml:"layer_height" env:"LAYER_HEIGHT"`
	BaseSize    float64 `toml:"base_size" env:"BASE_SIZE"`
	Bound       float64 `toml:"bound" env:"BOUND"`
	Speed       float64 `toml:"speed" env:"SPEED"`
	FallSpeed   float64 `toml:"fall_speed" env:"FALL_SPEED"`
	SpinX       float64 `toml:"spin_x" env:"SPIN_X"`
	SpinZ       float64 `toml:"spin_z" env:"SPIN_Z"`
}

// Store selects the high-score backend.
type Store struct {
	Backend         string        `toml:"backend" env:"BACKEND"`
	Profile         string        `toml:"profile" env:"PROFILE"`
	Path            string        `toml:"path" env:"PATH"`
	RedisAddr       string        `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword   string        `toml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB         int           `toml:"redis_db" env:"REDIS_DB"`
	MongoURI        string        `toml:"mongo_uri" env:"MONGO_URI"`
	MongoDatabase   string        `toml:"mongo_database" env:"MONGO_DATABASE"`
	MongoCollection string        `toml:"mongo_collection" env:"MONGO_COLLECTION"`
	Timeout         time.Duration `toml:"timeout" env:"TIMEOUT"`
}

// Display configures the terminal front end.
type Display struct {
	FPS        int     `toml:"fps" env:"FPS"`
	CameraEase float64 `toml:"camera_ease" env:"CAMERA_EASE"`
}

// Metrics configures the optional metrics server.
type Metrics struct {
	Addr string `toml:"addr" env:"ADDR"`
}

// Default returns the built-in settings.
func Default() Config {
	p := tower.DefaultPhysics()
	return Config{
		Physics: Physics{
			LayerHeight: p.LayerHeight,
			BaseSize:    p.BaseSize,
			Bound:       p.Bound,
			Speed:       p.Speed,
			FallSpeed:   p.Fall.Speed,
			SpinX:       p.Fall.SpinX,
			SpinZ:       p.Fall.SpinZ,
		},
		Store: Store{
			Backend: score.BackendFile,
			Profile: score.DefaultProfile,
			Timeout: score.DefaultTimeout,
		},
		Display: Display{
			FPS:        60,
			CameraEase: 4,
		},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// An empty path means DefaultPath().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks that the settings can drive a game.
func (c Config) Validate() error {
	p := c.Physics
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"physics.layer_height", p.LayerHeight},
		{"physics.base_size", p.BaseSize},
		{"physics.bound", p.Bound},
		{"physics.speed", p.Speed},
	} {
		if err := errors.ValidatePositive(f.name, f.v); err != nil {
			return err
		}
	}
	if p.Bound < p.BaseSize {
		return errors.New(errors.ErrCodeInvalidConfig, "physics.bound (%v) must be at least physics.base_size (%v)", p.Bound, p.BaseSize)
	}
	if !(p.FallSpeed >= 0) || math.IsInf(p.FallSpeed, 1) {
		return errors.New(errors.ErrCodeInvalidConfig, "physics.fall_speed must be a non-negative number, got %v", p.FallSpeed)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"physics.spin_x", p.SpinX}, {"physics.spin_z", p.SpinZ}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be finite, got %v", f.name, f.v)
		}
	}

	if !slices.Contains(score.Backends, c.Store.Backend) {
		return errors.New(errors.ErrCodeInvalidBackend, "unknown store.backend %q (want one of %s)",
			c.Store.Backend, strings.Join(score.Backends, ", "))
	}
	if err := errors.ValidateProfile(c.Store.Profile); err != nil {
		return err
	}

	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return errors.New(errors.ErrCodeInvalidConfig, "display.fps must be within 1..240, got %d", c.Display.FPS)
	}
	if !(c.Display.CameraEase > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "display.camera_ease must be positive")
	}
	return nil
}

// TowerPhysics converts the physics section.
func (c Config) TowerPhysics() tower.Physics {
	p := c.Physics
	return tower.Physics{
		LayerHeight: p.LayerHeight,
		BaseSize:    p.BaseSize,
		Bound:       p.Bound,
		Speed:       p.Speed,
		Fall: block.FallRates{
			Speed: p.FallSpeed,
			SpinX: p.SpinX,
			SpinZ: p.SpinZ,
		},
	}
}

// ScoreOptions converts the store section. File and badger stores default
// to directories under DataDir().
func (c Config) ScoreOptions() score.Options {
	s := c.Store
	opts := score.Options{
		Backend: s.Backend,
		Profile: s.Profile,
		Path:    s.Path,
		Redis: score.RedisConfig{
			Addr:     s.RedisAddr,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
		},
		Mongo: score.MongoConfig{
			URI:        s.MongoURI,
			Database:   s.MongoDatabase,
			Collection: s.MongoCollection,
		},
		Timeout: s.Timeout,
	}
	if opts.Path == "" {
		if dir, err := DataDir(); err == nil {
			switch s.Backend {
			case score.BackendFile:
				opts.Path = joinPath(dir, "scores")
			case score.BackendBadger:
				opts.Path = joinPath(dir, "badger")
			case score.BackendSQLite:
				opts.Path = joinPath(dir, "scores.db")
			}
		}
	}
	return opts
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
