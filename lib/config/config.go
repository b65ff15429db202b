// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/cameronpallen/grocery/lib/codec"
	"github.com/cameronpallen/grocery/lib/render"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "GROCERY_CONFIG"

// Config is the configuration shared by the products and cart tools.
type Config struct {
	// Storage configures where and how the collections are persisted.
	Storage StorageConfig `yaml:"storage"`

	// Lock configures the cross-process cart lock.
	Lock LockConfig `yaml:"lock"`

	// Log configures diagnostic logging on stderr.
	Log LogConfig `yaml:"log"`

	// Output configures terminal output.
	Output OutputConfig `yaml:"output"`
}

// StorageConfig configures the collection files.
type StorageConfig struct {
	// Dir is the directory holding both collection files.
	// Default: the directory of the running executable.
	Dir string `yaml:"dir"`

	// Products is the catalog file name, relative to Dir unless
	// absolute. Default: .store_products.json
	Products string `yaml:"products"`

	// Cart is the cart file name, relative to Dir unless absolute.
	// Default: .grocery_cart.json
	Cart string `yaml:"cart"`

	// Format is the file encoding: "json" or "cbor".
	// Default: json
	Format string `yaml:"format"`
}

// LockConfig configures the cart lock.
type LockConfig struct {
	// Path is the lock file. Every invocation on a machine must agree on
	// it. Default: grocery-cart.lock in the system temp directory.
	Path string `yaml:"path"`

	// Timeout is how long to wait for the lock.
	// Default: 5s
	Timeout string `yaml:"timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: warn
	Level string `yaml:"level"`
}

// OutputConfig configures terminal output.
type OutputConfig struct {
	// Color is "auto" (color when writing to a terminal), "always" or
	// "never". Default: auto
	Color string `yaml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:      defaultStorageDir(),
			Products: ".store_products.json",
			Cart:     ".grocery_cart.json",
			Format:   string(codec.JSON),
		},
		Lock: LockConfig{
			Path:    filepath.Join(os.TempDir(), "grocery-cart.lock"),
			Timeout: "5s",
		},
		Log:    LogConfig{Level: "warn"},
		Output: OutputConfig{Color: "auto"},
	}
}

// defaultStorageDir keeps the collections next to the installed tool,
// falling back to the user cache directory when the executable path is
// unknown.
func defaultStorageDir() string {
	if executable, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(executable); err == nil {
			executable = resolved
		}
		return filepath.Dir(executable)
	}
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "grocery")
	}
	return "."
}

// Load loads the file named by path, or by GROCERY_CONFIG when path is
// empty. With neither set it returns [Default].
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvironmentVariable)
	}
	if path == "" {
		cfg := Default()
		cfg.expandVariables()
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. Fields the
// file does not set keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// JSON is a subset of YAML, so once comments are stripped the same
	// decoder handles both.
	if extension := strings.ToLower(filepath.Ext(path)); extension == ".json" || extension == ".jsonc" {
		data = jsonc.ToJSON(data)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Storage.Dir = expandVars(c.Storage.Dir, vars)
	vars["GROCERY_DIR"] = c.Storage.Dir

	c.Storage.Products = expandVars(c.Storage.Products, vars)
	c.Storage.Cart = expandVars(c.Storage.Cart, vars)
	c.Lock.Path = expandVars(c.Lock.Path, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// ProductsPath returns the catalog file path.
func (c *Config) ProductsPath() string {
	return c.storagePath(c.Storage.Products)
}

// CartPath returns the cart file path.
func (c *Config) CartPath() string {
	return c.storagePath(c.Storage.Cart)
}

func (c *Config) storagePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Storage.Dir, name)
}

// StorageFormat returns the parsed storage format.
func (c *Config) StorageFormat() (codec.Format, error) {
	return codec.ParseFormat(c.Storage.Format)
}

// LockTimeout returns the parsed lock timeout.
func (c *Config) LockTimeout() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.Lock.Timeout)
	if err != nil {
		return 0, fmt.Errorf("lock.timeout: %w", err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("lock.timeout must be positive, got %s", c.Lock.Timeout)
	}
	return timeout, nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (slog.Level, error) {
	level, ok := logLevels[strings.ToLower(c.Log.Level)]
	if !ok {
		return 0, fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return level, nil
}

var colorModes = []render.ColorMode{render.ColorAuto, render.ColorAlways, render.ColorNever}

// ColorMode returns Output.Color as a render mode.
func (c *Config) ColorMode() render.ColorMode {
	return render.ColorMode(c.Output.Color)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Storage.Dir == "" {
		errs = append(errs, fmt.Errorf("storage.dir is required"))
	}
	if c.Storage.Products == "" {
		errs = append(errs, fmt.Errorf("storage.products is required"))
	}
	if c.Storage.Cart == "" {
		errs = append(errs, fmt.Errorf("storage.cart is required"))
	}
	if c.Storage.Products != "" && c.ProductsPath() == c.CartPath() {
		errs = append(errs, fmt.Errorf("storage.products and storage.cart must be different files"))
	}
	if _, err := c.StorageFormat(); err != nil {
		errs = append(errs, fmt.Errorf("storage.format: %w", err))
	}

	if c.Lock.Path == "" {
		errs = append(errs, fmt.Errorf("lock.path is required"))
	}
	if _, err := c.LockTimeout(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if !slices.Contains(colorModes, c.ColorMode()) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v", colorModes))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsureStorageDir creates the storage directory if it doesn't exist.
func (c *Config) EnsureStorageDir() error {
	if err := os.MkdirAll(c.Storage.Dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Storage.Dir, err)
	}
	return nil
}
