// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cameronpallen/grocery/cmd/grocery/cli"
	"github.com/cameronpallen/grocery/cmd/grocery/commands"
)

func main() {
	env := cli.StandardEnv()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root(env).Execute(ctx, os.Args[1:])
	stop()
	os.Exit(cli.Report(env.Stderr, err))
}
