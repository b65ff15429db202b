// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the grocery
// binaries.
//
// Three package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit]: short git SHA of the build
//   - [BuildTime]: UTC timestamp of the build
//   - [Version]: semantic version string (set manually for releases)
//
// When they are not injected, [Info] falls back to the VCS stamp Go
// records in the binary's build information.
package version
