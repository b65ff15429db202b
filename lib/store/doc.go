// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package store persists the products and cart collections as files.
//
// Each collection is one file holding a mapping of id to record. Ids
// are text keys on disk and integers in memory. A missing file is an
// empty collection; a file that cannot be decoded is a
// [MalformedError] and is never repaired.
//
// Every save rewrites the whole file atomically (write to temporary
// file, fsync, rename into place, fsync parent directory), so a reader
// never sees a partial write.
//
// Read-modify-write sequences go through the scoped transaction
// helpers [UpdateProducts] and [UpdateCart]: each acquires the
// cross-process lock once, loads the collection, runs the caller's
// closure, saves only if the closure reports a change, and releases
// the lock on every path. They accept any [Collections], so the file
// [Store] and the in-memory [Memory] are interchangeable.
package store
