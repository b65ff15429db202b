// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"slices"
	"strings"
)

// Column is a table column, named by its header label.
type Column string

const (
	ColumnID       Column = "ID"
	ColumnName     Column = "Name"
	ColumnUnit     Column = "Unit of Measure"
	ColumnQuantity Column = "Quantity"
	ColumnPrice    Column = "Price"
	ColumnSubtotal Column = "Subtotal"
)

// ProductColumns are the catalog table columns in display order.
var ProductColumns = []Column{ColumnID, ColumnName, ColumnUnit, ColumnPrice}

// CartColumns are the cart table columns in display order.
var CartColumns = []Column{ColumnID, ColumnName, ColumnUnit, ColumnQuantity, ColumnPrice, ColumnSubtotal}

// ParseColumn resolves a sort key given on the command line. Matching
// is case-insensitive and "unit" is accepted for the unit column.
func ParseColumn(name string) (Column, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "unit" {
		return ColumnUnit, nil
	}
	for _, column := range CartColumns {
		if strings.ToLower(string(column)) == normalized {
			return column, nil
		}
	}
	return "", fmt.Errorf("unknown column %q", name)
}

// ColumnNames returns the header labels of columns, for help text.
func ColumnNames(columns []Column) []string {
	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = string(column)
	}
	return names
}

func checkSortColumn(columns []Column, sortBy Column) error {
	if !slices.Contains(columns, sortBy) {
		return fmt.Errorf("cannot sort by %q (choose from %s)", sortBy, strings.Join(ColumnNames(columns), ", "))
	}
	return nil
}
