// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the grocery command tree. The grocery binary
// serves the whole tree; the cart and products binaries serve one group
// each, so scripts written against the older standalone tools keep
// working.
package commands

import (
	"context"
	"fmt"

	cartcmd "github.com/cameronpallen/grocery/cmd/grocery/cart"
	"github.com/cameronpallen/grocery/cmd/grocery/cli"
	productscmd "github.com/cameronpallen/grocery/cmd/grocery/products"
	"github.com/cameronpallen/grocery/lib/version"
)

// Root builds and returns the complete grocery command tree.
func Root(env *cli.Env) *cli.Command {
	return &cli.Command{
		Name: "grocery",
		Description: `Grocery: a product catalog and shopping cart kept in two local files.

Every command takes the cart lock before reading or writing, so
concurrent invocations never interleave.`,
		HelpOutput: env.Stderr,
		Subcommands: []*cli.Command{
			productscmd.Command(env),
			cartcmd.Command(env),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string) error {
					if err := cli.Arguments(args, nil, nil); err != nil {
						return err
					}
					fmt.Fprintf(env.Stdout, "grocery %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "List a product",
				Command:     "grocery products add_item Bread Loaves 2.50",
			},
			{
				Description: "Put two of it in the cart",
				Command:     "grocery products to_cart 0 2",
			},
			{
				Description: "Review the cart, most expensive lines first",
				Command:     "grocery cart view --sortby Subtotal --descending",
			},
			{
				Description: "Pay by card",
				Command:     "grocery cart checkout card",
			},
		},
	}
}

// Products returns the products group as a standalone root.
func Products(env *cli.Env) *cli.Command {
	return productscmd.Command(env)
}

// Cart returns the cart group as a standalone root.
func Cart(env *cli.Env) *cli.Command {
	return cartcmd.Command(env)
}
