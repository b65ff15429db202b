// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strconv"

	"github.com/spf13/pflag"
)

// SortOrder binds the paired --ascending/--descending flags. Both write
// the same field, so the last one given wins. Ascending is the default.
type SortOrder struct {
	Ascending bool
}

// AddFlags registers --ascending and --descending on flagSet.
func (s *SortOrder) AddFlags(flagSet *pflag.FlagSet) {
	s.Ascending = true
	flagSet.Var(&direction{target: &s.Ascending, ascending: true}, "ascending", "sort in ascending order (default)")
	flagSet.Lookup("ascending").NoOptDefVal = "true"
	flagSet.Var(&direction{target: &s.Ascending, ascending: false}, "descending", "sort in descending order")
	flagSet.Lookup("descending").NoOptDefVal = "true"
}

// direction is one half of a SortOrder flag pair. Setting it true
// selects its direction; --descending=false selects ascending.
type direction struct {
	target    *bool
	ascending bool
}

func (d *direction) Set(value string) error {
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*d.target = enabled == d.ascending
	return nil
}

func (d *direction) String() string {
	if d == nil || d.target == nil {
		return "false"
	}
	return strconv.FormatBool(*d.target == d.ascending)
}

func (d *direction) Type() string { return "bool" }
