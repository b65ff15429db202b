// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/cameronpallen/grocery/lib/render"
)

// ExitCode returns the process exit status for an error returned by
// [Command.Execute]: 0 for nil, the code of the first error in the
// chain that reports one, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// Report prints err to w and returns the exit status for it. The
// "error:" prefix is colored when w is a terminal.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	styles := render.NewStyles(w, render.ColorAuto)
	fmt.Fprintf(w, "%s %v\n", styles.Error.Render("error:"), err)
	return ExitCode(err)
}
