// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cameronpallen/grocery/lib/render"
)

func TestArguments(t *testing.T) {
	required := []string{"name", "unit", "price"}
	optional := []string{"quantity"}

	tests := []struct {
		args    []string
		wantErr string
	}{
		{args: []string{"Wine", "Bottles", "9.99"}},
		{args: []string{"Wine", "Bottles", "9.99", "2"}},
		{args: []string{"Wine", "Bottles"}, wantErr: `missing argument "PRICE"`},
		{args: nil, wantErr: `missing argument "NAME"`},
		{args: []string{"Wine", "Bottles", "9.99", "2", "x", "y"}, wantErr: "got unexpected extra arguments (x y)"},
	}
	for _, test := range tests {
		err := Arguments(test.args, required, optional)
		switch {
		case test.wantErr == "" && err != nil:
			t.Errorf("Arguments(%v) = %v, want nil", test.args, err)
		case test.wantErr != "" && (err == nil || err.Error() != test.wantErr):
			t.Errorf("Arguments(%v) = %v, want %q", test.args, err, test.wantErr)
		case err != nil && ExitCode(err) != 2:
			t.Errorf("Arguments(%v) exit code = %d, want 2", test.args, ExitCode(err))
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("item_id", "42"); err != nil || id != 42 {
		t.Errorf("ParseID(42) = %d, %v", id, err)
	}
	_, err := ParseID("item_id", "4.2")
	if err == nil || err.Error() != `invalid value for "item_id": "4.2" is not a valid integer` {
		t.Errorf("ParseID(4.2) error = %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"9.99", "9.99"},
		{"2", "2"},
		{"0.5", "0.5"},
		{"-1", "-1"},
		{"1.5e2", "150"},
	}
	for _, test := range tests {
		got, err := ParseAmount("price", test.input)
		if err != nil {
			t.Errorf("ParseAmount(%q) error: %v", test.input, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(test.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", test.input, got, test.want)
		}
	}

	if _, err := ParseAmount("price", "cheap"); err == nil || ExitCode(err) != 2 {
		t.Errorf("ParseAmount(cheap) error = %v, want validation error", err)
	}
}

func TestSortColumn(t *testing.T) {
	if column, err := SortColumn("subtotal", render.CartColumns); err != nil || column != render.ColumnSubtotal {
		t.Errorf("SortColumn(subtotal, cart) = %q, %v", column, err)
	}
	if column, err := SortColumn("unit", render.ProductColumns); err != nil || column != render.ColumnUnit {
		t.Errorf("SortColumn(unit, products) = %q, %v", column, err)
	}

	_, err := SortColumn("Subtotal", render.ProductColumns)
	if err == nil || ExitCode(err) != 2 {
		t.Fatalf("SortColumn(Subtotal, products) = %v, want validation error", err)
	}
	if want := `invalid value for "--sortby": "Subtotal" is not one of ID, Name, Unit of Measure, Price`; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}
