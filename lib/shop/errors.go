// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import (
	"errors"
	"fmt"

	"github.com/cameronpallen/grocery/lib/schema"
)

var (
	// ErrBadParameter matches every [ParamError].
	ErrBadParameter = errors.New("bad parameter")
	// ErrNotFound matches every [NotFoundError].
	ErrNotFound = errors.New("not found")
)

// ParamError reports an argument outside its allowed range.
type ParamError struct {
	Param  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid value for %q: %s", e.Param, e.Reason)
}

// Is makes errors.Is(err, ErrBadParameter) true for a *ParamError.
func (e *ParamError) Is(target error) bool { return target == ErrBadParameter }

// NotFoundError reports an id absent from a collection.
type NotFoundError struct {
	Param      string
	ID         int
	Collection schema.Collection
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("invalid value for %q: item with id [%d] not found in %s", e.Param, e.ID, e.Collection)
}

// Is makes errors.Is(err, ErrNotFound) true for a *NotFoundError.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
