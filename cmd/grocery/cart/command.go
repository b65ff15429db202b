// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package cart implements the "cart" command group: cart lines,
// checkout, and the lock-holding sleep used to exercise concurrency.
package cart

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/cameronpallen/grocery/cmd/grocery/cli"
	"github.com/cameronpallen/grocery/lib/checkout"
	"github.com/cameronpallen/grocery/lib/render"
	"github.com/cameronpallen/grocery/lib/schema"
	"github.com/cameronpallen/grocery/lib/shop"
)

// Command returns the "cart" subcommand group.
func Command(env *cli.Env) *cli.Command {
	return &cli.Command{
		Name:    "cart",
		Summary: "Manage the shopping cart",
		Description: `CLI for interacting with a grocery cart. See "cart COMMAND --help" for
more detail about subcommands.`,
		HelpOutput: env.Stderr,
		Subcommands: []*cli.Command{
			addItemCommand(env),
			viewCommand(env),
			removeCommand(env),
			updateQuantityCommand(env),
			checkoutCommand(env),
			emptyCommand(env),
			sleepCommand(env),
		},
	}
}

// --- add_item ---

type addItemParams struct {
	cli.StoreParams
}

func addItemCommand(env *cli.Env) *cli.Command {
	var params addItemParams

	return &cli.Command{
		Name:    "add_item",
		Summary: "Add a new item to the cart",
		Description: `Add a new item to the cart. The item is also added to the product list,
so it can be added to the cart again later with "products to_cart".
QUANTITY defaults to 1. Price and quantity must be greater than zero.`,
		Usage: "cart add_item NAME UNIT PRICE [QUANTITY] [flags]",
		Examples: []cli.Example{
			{
				Description: "Two pies of pizza at $12.50 each",
				Command:     "cart add_item Pizza Pies 12.50 2",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("add_item", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, []string{"name", "unit", "price"}, []string{"quantity"}); err != nil {
				return err
			}
			price, err := cli.ParseAmount("price", args[2])
			if err != nil {
				return err
			}
			quantity := decimal.NewFromInt(1)
			if len(args) == 4 {
				if quantity, err = cli.ParseAmount("quantity", args[3]); err != nil {
					return err
				}
			}

			session, err := params.Open(env, "cart/add_item")
			if err != nil {
				return err
			}
			_, _, err = session.Shop.AddToCart(ctx, args[0], args[1], price, quantity)
			return cli.Classify(err)
		},
	}
}

// --- view ---

type viewParams struct {
	cli.StoreParams
	cli.JSONOutput
	cli.SortOrder
	SortBy string `json:"sortby" flag:"sortby" desc:"the column to sort by (ID, Name, Unit of Measure, Quantity, Price, Subtotal)" default:"ID"`
}

// cartLine is the JSON form of one cart row.
type cartLine struct {
	render.CartRow
	Subtotal decimal.Decimal `json:"subtotal"`
}

// cartView is the JSON form of the whole cart.
type cartView struct {
	Lines []cartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

func viewCommand(env *cli.Env) *cli.Command {
	var params viewParams

	return &cli.Command{
		Name:    "view",
		Summary: "Display the cart with a total",
		Description: `Display the cart. Every line shows its subtotal, and the table closes
with the cart total. Lines can be sorted by any column, in either
direction.`,
		Usage: "cart view [flags]",
		Examples: []cli.Example{
			{
				Description: "Most expensive lines first",
				Command:     "cart view --sortby Subtotal --descending",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("view", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, nil, nil); err != nil {
				return err
			}
			column, err := cli.SortColumn(params.SortBy, render.CartColumns)
			if err != nil {
				return err
			}

			session, err := params.Open(env, "cart/view")
			if err != nil {
				return err
			}
			rows, err := session.Shop.CartRows(ctx)
			if err != nil {
				return cli.Classify(err)
			}

			if params.OutputJSON {
				if err := render.SortCart(rows, column, params.Ascending); err != nil {
					return cli.Internal("%w", err)
				}
				view := cartView{Lines: make([]cartLine, len(rows)), Total: render.Total(rows)}
				for i, row := range rows {
					view.Lines[i] = cartLine{CartRow: row, Subtotal: row.Subtotal()}
				}
				_, err := params.EmitJSON(env.Stdout, view)
				return err
			}
			return render.Cart(env.Stdout, rows, column, params.Ascending)
		},
	}
}

// --- remove ---

type removeParams struct {
	cli.StoreParams
}

func removeCommand(env *cli.Env) *cli.Command {
	var params removeParams

	return &cli.Command{
		Name:        "remove",
		Summary:     "Delete a cart line by ID",
		Description: "Delete cart item by ID. The product list is not changed.",
		Usage:       "cart remove ITEM_ID [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("remove", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, []string{"item_id"}, nil); err != nil {
				return err
			}
			lineID, err := cli.ParseID("item_id", args[0])
			if err != nil {
				return err
			}

			session, err := params.Open(env, "cart/remove")
			if err != nil {
				return err
			}
			return cli.Classify(session.Shop.RemoveLine(ctx, lineID))
		},
	}
}

// --- update_quantity ---

type updateQuantityParams struct {
	cli.StoreParams
}

func updateQuantityCommand(env *cli.Env) *cli.Command {
	var params updateQuantityParams

	return &cli.Command{
		Name:        "update_quantity",
		Summary:     "Change the quantity of a cart line",
		Description: "Update the quantity of the cart item with the given ID. The new quantity must be greater than zero.",
		Usage:       "cart update_quantity ITEM_ID NEW_QUANTITY [flags]",
		Examples: []cli.Example{
			{
				Description: "Set line 3 to half a unit",
				Command:     "cart update_quantity 3 0.5",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("update_quantity", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, []string{"item_id", "new_quantity"}, nil); err != nil {
				return err
			}
			lineID, err := cli.ParseID("item_id", args[0])
			if err != nil {
				return err
			}
			quantity, err := cli.ParseAmount("new_quantity", args[1])
			if err != nil {
				return err
			}

			session, err := params.Open(env, "cart/update_quantity")
			if err != nil {
				return err
			}
			return cli.Classify(session.Shop.UpdateQuantity(ctx, lineID, quantity))
		},
	}
}

// --- checkout ---

type checkoutParams struct {
	cli.StoreParams
}

func checkoutCommand(env *cli.Env) *cli.Command {
	var params checkoutParams

	return &cli.Command{
		Name:    "checkout",
		Summary: "Pay for the cart and empty it",
		Description: `Check out. Prompts for billing details for the chosen payment method
(card or paypal), shows the final cart, and empties it once the order
is confirmed. Prompts run without holding the cart lock; if the cart
changed after it was shown, the order is refused and nothing is paid.`,
		Usage: "cart checkout METHOD [flags]",
		Examples: []cli.Example{
			{
				Description: "Pay by card",
				Command:     "cart checkout card",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("checkout", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, []string{"method"}, nil); err != nil {
				return err
			}
			method, err := checkout.ParseMethod(args[0])
			if err != nil {
				return cli.Validation("%w", err)
			}

			session, err := params.Open(env, "cart/checkout")
			if err != nil {
				return err
			}
			flow := &checkout.Flow{
				Store:      session.Store,
				Prompter:   checkout.NewPrompter(env.Stdin, env.Stdout),
				Authorizer: checkout.MockAuthorizer{Clock: env.Clock, Logger: session.Logger},
				Out:        env.Stdout,
				Styles:     session.Styles,
				Logger:     session.Logger,
			}
			_, err = flow.Run(ctx, method)
			return cli.Classify(err)
		},
	}
}

// --- empty ---

type emptyParams struct {
	cli.StoreParams
}

func emptyCommand(env *cli.Env) *cli.Command {
	var params emptyParams

	return &cli.Command{
		Name:        "empty",
		Summary:     "Remove every cart line",
		Description: "Empty cart. The product list is not changed.",
		Usage:       "cart empty [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("empty", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, nil, nil); err != nil {
				return err
			}
			session, err := params.Open(env, "cart/empty")
			if err != nil {
				return err
			}
			if err := session.Shop.Clear(ctx, schema.CartCollection); err != nil {
				return cli.Classify(err)
			}
			session.Status(env.Stdout, schema.CartCollection.Title()+" cleared.")
			return nil
		},
	}
}

// --- sleep ---

type sleepParams struct {
	cli.StoreParams
	Duration time.Duration `json:"duration" flag:"duration" desc:"how long to hold the lock" default:"10s"`
}

func sleepCommand(env *cli.Env) *cli.Command {
	var params sleepParams

	return &cli.Command{
		Name:    "sleep",
		Summary: "Hold the cart lock for a while",
		Description: `Acquire the cart lock and hold it without changing anything. Run it in
one terminal and any other command in a second to watch the second
one wait, and time out after the configured lock timeout.`,
		Usage: "cart sleep [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("sleep", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, nil, nil); err != nil {
				return err
			}
			if params.Duration < 0 {
				return cli.Validation("%w", &shop.ParamError{Param: "--duration", Reason: "Duration must not be negative."})
			}
			session, err := params.Open(env, "cart/sleep")
			if err != nil {
				return err
			}
			return cli.Classify(session.Shop.Hold(ctx, params.Duration))
		},
	}
}
