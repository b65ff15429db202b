// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
)

// ErrMalformed matches every [MalformedError].
var ErrMalformed = errors.New("malformed collection file")

// MalformedError reports a collection file whose contents cannot be
// decoded.
type MalformedError struct {
	Path string
	Err  error

	// Diagnostic is the CBOR diagnostic notation of an undecodable CBOR
	// file, truncated. Empty for JSON files.
	Diagnostic string
}

func (e *MalformedError) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("malformed collection file %s: %v (contents: %s)", e.Path, e.Err, e.Diagnostic)
	}
	return fmt.Sprintf("malformed collection file %s: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformed) true for a *MalformedError.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }
