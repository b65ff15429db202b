// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cameronpallen/grocery/lib/codec"
	"github.com/cameronpallen/grocery/lib/render"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Products != ".store_products.json" {
		t.Errorf("expected products=.store_products.json, got %s", cfg.Storage.Products)
	}
	if cfg.Storage.Cart != ".grocery_cart.json" {
		t.Errorf("expected cart=.grocery_cart.json, got %s", cfg.Storage.Cart)
	}
	if cfg.Storage.Dir == "" {
		t.Error("expected a default storage dir")
	}
	if timeout, err := cfg.LockTimeout(); err != nil || timeout != 5*time.Second {
		t.Errorf("expected lock timeout 5s, got %v (%v)", timeout, err)
	}
	if filepath.Base(cfg.Lock.Path) != "grocery-cart.lock" {
		t.Errorf("expected lock file grocery-cart.lock, got %s", cfg.Lock.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_WithoutConfigUsesDefaults(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Storage.Format != string(codec.JSON) {
		t.Errorf("expected format=json, got %s", cfg.Storage.Format)
	}
}

func TestLoad_WithEnvironmentVariable(t *testing.T) {
	configPath := writeConfig(t, "grocery.yaml", `
storage:
  dir: /test/store
lock:
  timeout: 2s
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Storage.Dir != "/test/store" {
		t.Errorf("expected dir=/test/store, got %s", cfg.Storage.Dir)
	}
	if timeout, _ := cfg.LockTimeout(); timeout != 2*time.Second {
		t.Errorf("expected timeout 2s, got %v", timeout)
	}
}

func TestLoad_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv(EnvironmentVariable, filepath.Join(t.TempDir(), "missing.yaml"))
	configPath := writeConfig(t, "grocery.yaml", "log:\n  level: debug\n")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if level, _ := cfg.LogLevel(); level != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", level)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, "grocery.yaml", `
storage:
  dir: /custom/store
  products: catalog.cbor
  cart: /elsewhere/cart.cbor
  format: cbor

lock:
  path: /run/grocery.lock
  timeout: 250ms

log:
  level: info

output:
  color: never
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if got := cfg.ProductsPath(); got != "/custom/store/catalog.cbor" {
		t.Errorf("expected relative products path joined to dir, got %s", got)
	}
	if got := cfg.CartPath(); got != "/elsewhere/cart.cbor" {
		t.Errorf("expected absolute cart path kept, got %s", got)
	}
	if format, err := cfg.StorageFormat(); err != nil || format != codec.CBOR {
		t.Errorf("expected cbor format, got %q (%v)", format, err)
	}
	if cfg.Lock.Path != "/run/grocery.lock" {
		t.Errorf("expected lock path /run/grocery.lock, got %s", cfg.Lock.Path)
	}
	if timeout, _ := cfg.LockTimeout(); timeout != 250*time.Millisecond {
		t.Errorf("expected timeout 250ms, got %v", timeout)
	}
	if cfg.ColorMode() != render.ColorNever {
		t.Errorf("expected color never, got %s", cfg.ColorMode())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	configPath := writeConfig(t, "grocery.yaml", "storage:\n  format: cbor\n")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Storage.Cart != ".grocery_cart.json" {
		t.Errorf("expected default cart name, got %s", cfg.Storage.Cart)
	}
	if cfg.Lock.Timeout != "5s" {
		t.Errorf("expected default timeout, got %s", cfg.Lock.Timeout)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	configPath := writeConfig(t, "grocery.jsonc", `{
  // Keep the collections in one shared place.
  "storage": {"dir": "/shared/grocery", "format": "json",},
  /* tighter lock */
  "lock": {"timeout": "1s"},
}`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Storage.Dir != "/shared/grocery" {
		t.Errorf("expected dir=/shared/grocery, got %s", cfg.Storage.Dir)
	}
	if cfg.Lock.Timeout != "1s" {
		t.Errorf("expected timeout=1s, got %s", cfg.Lock.Timeout)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	configPath := writeConfig(t, "broken.yaml", "storage: [unclosed\n")
	if _, err := LoadFile(configPath); err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestExpandVariables(t *testing.T) {
	t.Setenv("HOME", "/home/shopper")
	t.Setenv("GROCERY_TEST_LOCKS", "")

	configPath := writeConfig(t, "grocery.yaml", `
storage:
  dir: ${HOME}/groceries
  cart: ${GROCERY_DIR}/carts/current.json
lock:
  path: ${GROCERY_TEST_LOCKS:-/var/lock}/grocery.lock
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Storage.Dir != "/home/shopper/groceries" {
		t.Errorf("expected expanded dir, got %s", cfg.Storage.Dir)
	}
	if cfg.CartPath() != "/home/shopper/groceries/carts/current.json" {
		t.Errorf("expected cart under GROCERY_DIR, got %s", cfg.CartPath())
	}
	if cfg.Lock.Path != "/var/lock/grocery.lock" {
		t.Errorf("expected default applied, got %s", cfg.Lock.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "unknown format", mutate: func(c *Config) { c.Storage.Format = "xml" }, wantErr: "storage.format"},
		{name: "zero timeout", mutate: func(c *Config) { c.Lock.Timeout = "0s" }, wantErr: "lock.timeout"},
		{name: "bad timeout", mutate: func(c *Config) { c.Lock.Timeout = "soon" }, wantErr: "lock.timeout"},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log.level"},
		{name: "unknown color", mutate: func(c *Config) { c.Output.Color = "sometimes" }, wantErr: "output.color"},
		{name: "same file", mutate: func(c *Config) { c.Storage.Cart = c.Storage.Products }, wantErr: "different files"},
		{name: "no lock path", mutate: func(c *Config) { c.Lock.Path = "" }, wantErr: "lock.path"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, test.wantErr)
			}
		})
	}
}

func TestEnsureStorageDir(t *testing.T) {
	cfg := Default()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "nested", "store")
	if err := cfg.EnsureStorageDir(); err != nil {
		t.Fatalf("EnsureStorageDir: %v", err)
	}
	if info, err := os.Stat(cfg.Storage.Dir); err != nil || !info.IsDir() {
		t.Errorf("storage dir not created: %v", err)
	}
}
