// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package checkout

import "errors"

var (
	// ErrValidation matches every [ValidationError].
	ErrValidation = errors.New("invalid billing input")
	// ErrAborted is returned when input ends before a prompt was
	// answered.
	ErrAborted = errors.New("aborted")
	// ErrCartChanged is returned when the cart was modified by another
	// command after it was reviewed and before the order was confirmed.
	ErrCartChanged = errors.New("cart changed during checkout; review it and check out again")
)

// ValidationError reports billing input that does not have the
// required format.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrValidation) true for a *ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
