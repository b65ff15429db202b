// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/cameronpallen/grocery/lib/clock"
)

const (
	// DefaultName is the lock name shown in timeout messages.
	DefaultName = "grocery cart lock"

	// DefaultTimeout bounds how long Acquire waits for another holder.
	DefaultTimeout = 5 * time.Second

	// DefaultPollInterval is the delay between LOCK_NB attempts.
	DefaultPollInterval = 50 * time.Millisecond
)

// ErrTimeout matches every [TimeoutError].
var ErrTimeout = errors.New("lock acquisition timed out")

// TimeoutError reports that the lock stayed held by someone else for
// the whole timeout.
type TimeoutError struct {
	Name    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("unable to acquire %s after %s", e.Name, e.Timeout)
}

// Is makes errors.Is(err, ErrTimeout) true for a *TimeoutError.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// File is a cross-process lock backed by flock on Path. The zero
// values of Name, Timeout, PollInterval, Clock and Logger select the
// package defaults.
type File struct {
	Name         string
	Path         string
	Timeout      time.Duration
	PollInterval time.Duration
	Clock        clock.Clock
	Logger       *slog.Logger
}

// Held is an acquired lock. Release it exactly once.
type Held struct {
	file *os.File
}

// Release unlocks and closes the lock file.
func (h *Held) Release() error {
	unlockErr := unix.Flock(int(h.file.Fd()), unix.LOCK_UN)
	closeErr := h.file.Close()
	if unlockErr != nil {
		return fmt.Errorf("unlocking %s: %w", h.file.Name(), unlockErr)
	}
	return closeErr
}

// Acquire blocks until the lock is held, the timeout elapses, or ctx
// is cancelled.
func (l *File) Acquire(ctx context.Context) (*Held, error) {
	if l.Path == "" {
		return nil, errors.New("lock file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(l.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}
	file, err := os.OpenFile(l.Path, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	clk := l.clock()
	timeout := l.timeout()
	deadline := clk.Now().Add(timeout)
	attempts := 0
	for {
		attempts++
		err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			l.logger().Debug("lock acquired", "path", l.Path, "attempts", attempts)
			return &Held{file: file}, nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EINTR) {
			file.Close()
			return nil, fmt.Errorf("locking %s: %w", l.Path, err)
		}

		remaining := deadline.Sub(clk.Now())
		if remaining <= 0 {
			file.Close()
			l.logger().Warn("lock timed out", "path", l.Path, "timeout", timeout, "attempts", attempts)
			return nil, &TimeoutError{Name: l.name(), Timeout: timeout}
		}
		wait := min(l.pollInterval(), remaining)
		select {
		case <-ctx.Done():
			file.Close()
			return nil, ctx.Err()
		case <-clk.After(wait):
		}
	}
}

// With runs body while holding the lock. The lock is released on every
// path out of body, including a panic.
func (l *File) With(ctx context.Context, body func() error) (err error) {
	held, err := l.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := held.Release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()
	return body()
}

func (l *File) name() string {
	if l.Name == "" {
		return DefaultName
	}
	return l.Name
}

func (l *File) timeout() time.Duration {
	if l.Timeout <= 0 {
		return DefaultTimeout
	}
	return l.Timeout
}

func (l *File) pollInterval() time.Duration {
	if l.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return l.PollInterval
}

func (l *File) clock() clock.Clock {
	if l.Clock == nil {
		return clock.Real()
	}
	return l.Clock
}

func (l *File) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}
