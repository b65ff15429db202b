// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for grocery packages.
package testutil
