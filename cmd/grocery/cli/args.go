// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cameronpallen/grocery/lib/render"
)

// Arguments checks the positional arguments of a command. required names
// the arguments that must be present, optional those that may follow.
// Names are upper case in messages, as in the usage line.
func Arguments(args []string, required, optional []string) error {
	if len(args) < len(required) {
		return Usage("missing argument %q", strings.ToUpper(required[len(args)]))
	}
	if len(args) > len(required)+len(optional) {
		extra := args[len(required)+len(optional):]
		return Usage("got unexpected extra argument%s (%s)", plural(len(extra)), strings.Join(extra, " "))
	}
	return nil
}

// ParseID parses an integer id argument.
func ParseID(param, value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, Validation("invalid value for %q: %q is not a valid integer", param, value)
	}
	return id, nil
}

// ParseAmount parses a decimal price or quantity argument, keeping it
// exact. Exponent notation ("1.5e2") is accepted.
func ParseAmount(param, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, Validation("invalid value for %q: %q is not a valid number", param, value)
	}
	return amount, nil
}

// SortColumn resolves the --sortby value against the columns of the
// table being viewed.
func SortColumn(name string, columns []render.Column) (render.Column, error) {
	column, err := render.ParseColumn(name)
	if err != nil || !slices.Contains(columns, column) {
		return "", Validation("invalid value for \"--sortby\": %q is not one of %s",
			name, strings.Join(render.ColumnNames(columns), ", "))
	}
	return column, nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
