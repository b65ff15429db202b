// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Grocery is the CLI for the local grocery catalog and cart. It
// provides the products group (add_item, view, to_cart, remove, clear)
// and the cart group (add_item, view, remove, update_quantity,
// checkout, empty, sleep).
package main
