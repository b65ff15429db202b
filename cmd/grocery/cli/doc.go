// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the grocery tools.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in cmd/grocery/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Errors returned by commands are classified with [ToolError] categories.
// [ExitCode] maps a returned error to the process exit status: internal
// failures exit 1, every other category exits 2.
package cli
