// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestSortOrder(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{args: nil, want: true},
		{args: []string{"--ascending"}, want: true},
		{args: []string{"--descending"}, want: false},
		{args: []string{"--descending", "--ascending"}, want: true},
		{args: []string{"--ascending", "--descending"}, want: false},
		{args: []string{"--descending=false"}, want: true},
	}
	for _, test := range tests {
		var order SortOrder
		flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
		order.AddFlags(flagSet)
		if err := flagSet.Parse(test.args); err != nil {
			t.Errorf("Parse(%v): %v", test.args, err)
			continue
		}
		if order.Ascending != test.want {
			t.Errorf("Parse(%v): Ascending = %v, want %v", test.args, order.Ascending, test.want)
		}
	}
}

func TestSortOrder_RejectsBadValue(t *testing.T) {
	var order SortOrder
	flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
	order.AddFlags(flagSet)
	if err := flagSet.Parse([]string{"--ascending=sideways"}); err == nil {
		t.Error("Parse(--ascending=sideways) succeeded")
	}
}
