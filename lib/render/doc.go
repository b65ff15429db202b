// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package render formats the catalog and the cart as column-aligned
// text tables.
//
// Rows are sorted by the raw value of one column before any cell is
// formatted, so prices sort numerically rather than as "$" strings.
// Cells are left-aligned and padded to the widest value in their
// column, measured in terminal display cells. The cart table adds a
// per-row Subtotal and a closing Total row.
//
// An empty table renders as the single line "Empty.".
package render
