// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cameronpallen/grocery/lib/clock"
	"github.com/cameronpallen/grocery/lib/config"
	"github.com/cameronpallen/grocery/lib/lock"
	"github.com/cameronpallen/grocery/lib/render"
	"github.com/cameronpallen/grocery/lib/shop"
	"github.com/cameronpallen/grocery/lib/store"
)

// Env carries the process streams and clock into the command tree.
// Tests substitute buffers and a fake clock.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
}

// StandardEnv returns the Env of the running process.
func StandardEnv() *Env {
	return &Env{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr, Clock: clock.Real()}
}

// StoreParams is embedded in the params of every command that reads or
// writes the collections.
type StoreParams struct {
	ConfigPath string `json:"-" flag:"config" desc:"config file (default: $GROCERY_CONFIG, else built-in defaults)"`
}

// Session is everything one command invocation needs: the resolved
// configuration, the file-backed store with its lock, the operations
// service, a scoped logger, and output styles.
type Session struct {
	Config *config.Config
	Store  *store.Store
	Shop   *shop.Service
	Logger *slog.Logger
	Styles render.Styles
}

// Open loads configuration and assembles a Session for command.
// Configuration problems are validation errors.
func (p *StoreParams) Open(env *Env, command string) (*Session, error) {
	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		return nil, Validation("%w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, Validation("invalid config: %w", err)
	}
	// Validate already parsed these; errors are impossible here.
	level, _ := cfg.LogLevel()
	timeout, _ := cfg.LockTimeout()
	format, _ := cfg.StorageFormat()

	if err := cfg.EnsureStorageDir(); err != nil {
		return nil, Internal("%w", err)
	}

	clk := env.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := NewCommandLogger(env.Stderr, level).With("command", command)

	files, err := store.New(store.Options{
		ProductsPath: cfg.ProductsPath(),
		CartPath:     cfg.CartPath(),
		Format:       format,
		Locker: &lock.File{
			Name:    lock.DefaultName,
			Path:    cfg.Lock.Path,
			Timeout: timeout,
			Clock:   clk,
			Logger:  logger,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, Internal("%w", err)
	}
	logger.Debug("session opened",
		"products", cfg.ProductsPath(),
		"cart", cfg.CartPath(),
		"format", string(format),
		"lock", cfg.Lock.Path,
	)

	return &Session{
		Config: cfg,
		Store:  files,
		Shop:   shop.New(files, clk, logger),
		Logger: logger,
		Styles: render.NewStyles(env.Stdout, cfg.ColorMode()),
	}, nil
}

// Status prints a styled one-line status message.
func (s *Session) Status(w io.Writer, message string) {
	fmt.Fprintln(w, s.Styles.Success.Render(message))
}
