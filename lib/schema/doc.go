// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the records kept in the two persisted
// collections: the product catalog ([Products]) and the shopping cart
// ([Cart]).
//
// A cart line is either a [DirectLine], which carries its own name,
// unit and price, or a [ReferenceLine], which points at a catalog
// product by id. Both forms coexist in the same cart and share the
// [LineSource] interface, so display code never inspects the record
// shape directly.
//
// Ids are non-negative integers. A new record takes [NextID]: one more
// than the largest id in the collection, or 0 when it is empty.
package schema
