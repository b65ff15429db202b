// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package shop implements the catalog and cart operations.
//
// Every operation is one transaction under the cross-process lock and
// follows read, validate, mutate, write. Invalid input is a
// [ParamError] and an unknown id is a [NotFoundError]; in both cases
// nothing is written.
//
// Adding a direct item to the cart writes twice: the item becomes a
// catalog product first and the cart gets a reference line to it. If
// the cart write fails the product insert is rolled back.
package shop
