// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package lock provides the named, system-wide mutual-exclusion lock
// that serializes every read-modify-write of the collection files
// across concurrent invocations of the tool.
//
// The lock is an advisory flock(2) on a well-known lock file. flock
// locks belong to the open file description, so two [File.Acquire]
// calls conflict even inside one process, and the kernel drops the
// lock when the holder exits for any reason. Acquisition polls with
// LOCK_NB until [File.Timeout] elapses and then fails with a
// [TimeoutError] (matching [ErrTimeout]).
package lock
