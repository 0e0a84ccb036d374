package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/wardrobe/internal/outfit"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite file. Empty means ~/.wardrobe/wardrobe.db.
	DBPath    string    `yaml:"db"`
	PageSize  int       `yaml:"page_size"`
	CacheSize int       `yaml:"cache_size"`
	Log       LogConfig `yaml:"log"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PageSize:  outfit.DefaultPerPage,
		CacheSize: outfit.DefaultCacheSize,
		Log: LogConfig{
			Level:  "warn",
			Format: FormatConsole,
		},
	}
}

// Load builds the configuration from defaults, an optional .env file in the
// working directory, an optional YAML file and finally WARDROBE_* environment
// variables. The YAML path comes from WARDROBE_CONFIG, falling back to
// ~/.wardrobe/config.yaml. A missing file is not an error.
func Load() (Config, error) {
	cfg := DefaultConfig()

	_ = godotenv.Load()

	path := os.Getenv("WARDROBE_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".wardrobe", "config.yaml")
		}
	}
	if path != "" {
		if err := LoadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if cfg.DBPath == "" {
		p, err := DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = p
	}
	return cfg, nil
}

// DefaultDBPath returns ~/.wardrobe/wardrobe.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".wardrobe", "wardrobe.db"), nil
}

// LoadFile overlays the YAML file at path onto cfg. Keys not present in the
// file keep their current values; unknown keys are rejected.
func LoadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	next := *cfg
	if err := dec.Decode(&next); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	*cfg = next
	return nil
}

// Validate rejects values no component can run with.
func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d", c.CacheSize)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if !validFormat(c.Log.Format) {
		return fmt.Errorf("log.format must be %q or %q, got %q", FormatConsole, FormatJSON, c.Log.Format)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WARDROBE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("WARDROBE_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("WARDROBE_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheSize = n
		}
	}
	if v := os.Getenv("WARDROBE_LOG_LEVEL"); v != "" {
		if _, err := zapcore.ParseLevel(v); err == nil {
			cfg.Log.Level = v
		}
	}
	if v := os.Getenv("WARDROBE_LOG_FORMAT"); validFormat(v) {
		cfg.Log.Format = v
	}
}

func validFormat(f string) bool {
	return f == FormatConsole || f == FormatJSON
}
