// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"checkout", "chekout", 1},
		{"to_cart", "tocart", 1},
		{"empty", "emtpy", 2},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			if got := levenshtein(test.a, test.b); got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
			if reverse := levenshtein(test.b, test.a); reverse != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, not symmetric", test.b, test.a, reverse)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "add_item"},
		{Name: "view"},
		{Name: "remove"},
		{Name: "update_quantity"},
		{Name: "checkout"},
		{Name: "empty"},
		{Name: "sleep"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"additem", "add_item"},
		{"veiw", "view"},
		{"remvoe", "remove"},
		{"update-quantity", "update_quantity"},
		{"checkuot", "checkout"},
		{"zzzzzzzzz", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := suggestCommand(test.input, commands); got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("view", pflag.ContinueOnError)
		flagSet.String("sortby", "ID", "")
		flagSet.String("config", "", "")
		flagSet.Bool("ascending", true, "")
		flagSet.Bool("descending", false, "")
		flagSet.Bool("json", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "typo", args: []string{"--sortyb"}, want: "--sortby"},
		{name: "with equals", args: []string{"--sort-by=Price"}, want: "--sortby"},
		{name: "after known flag", args: []string{"--json", "--desending"}, want: "--descending"},
		{name: "nothing close", args: []string{"--zzzzzzzzz"}, want: ""},
		{name: "positional only", args: []string{"positional"}, want: ""},
		{name: "after terminator", args: []string{"--", "--sortyb"}, want: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, makeFlagSet()); got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
