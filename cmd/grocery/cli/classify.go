// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"

	"github.com/cameronpallen/grocery/lib/checkout"
	"github.com/cameronpallen/grocery/lib/lock"
	"github.com/cameronpallen/grocery/lib/shop"
)

// Classify wraps a domain error in the [ToolError] category that
// decides its exit status. Errors that already carry a category, and
// nil, are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return err
	}

	switch {
	case errors.Is(err, shop.ErrBadParameter), errors.Is(err, checkout.ErrValidation):
		return Validation("%w", err)
	case errors.Is(err, shop.ErrNotFound):
		return NotFound("%w", err)
	case errors.Is(err, lock.ErrTimeout), errors.Is(err, checkout.ErrCartChanged):
		return Transient("%w", err)
	default:
		// Malformed storage, aborted input and I/O failures.
		return Internal("%w", err)
	}
}
