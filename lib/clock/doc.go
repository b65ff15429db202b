// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Code that waits (lock polling, the diagnostic hold command) accepts a
// [Clock] instead of calling time.Now, time.After or time.Sleep
// directly. In production, [Real] provides the standard library
// behavior. In tests, [Fake] provides a deterministic clock that
// advances only when [FakeClock.Advance] is called.
//
// # FakeClock Synchronization
//
// When a goroutine calls Sleep or After on a FakeClock it registers a
// pending waiter. Use [FakeClock.WaitForTimers] to block until the
// waiter is registered before calling Advance:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go func() { done <- service.Hold(ctx, 10*time.Second) }()
//	c.WaitForTimers(1)
//	c.Advance(10 * time.Second)
package clock
