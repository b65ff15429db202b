// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the grocery tools.
//
// Configuration comes from a single optional file named by the
// --config flag or the GROCERY_CONFIG environment variable (via
// [Load]). Without either, [Default] applies unchanged. The file is
// YAML; files ending in .json or .jsonc are read as JSON with comments
// and trailing commas allowed.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${GROCERY_DIR} (the storage directory) and ${VAR:-default}
// patterns are expanded.
//
// Key exports:
//
//   - [Config] -- master struct with Storage, Lock, Log and Output
//   - [Default] -- returns a Config with every field set
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
