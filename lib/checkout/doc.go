// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package checkout implements the interactive checkout of the cart.
//
// A [Flow] collects billing details through a [Prompter], hands them
// to an [Authorizer], shows the cart once more and, when the user
// confirms, empties it. The whole flow runs under one acquisition of
// the cart lock, so no other invocation can change the cart between
// the review and the clear.
//
// Billing input is checked against fixed formats. A response that does
// not match aborts the checkout with a [ValidationError]; nothing is
// re-prompted and nothing is written.
package checkout
