// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package products implements the "products" command group: the
// catalog of items that can be moved into the cart.
package products

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/cameronpallen/grocery/cmd/grocery/cli"
	"github.com/cameronpallen/grocery/lib/render"
	"github.com/cameronpallen/grocery/lib/schema"
)

// Command returns the "products" subcommand group.
func Command(env *cli.Env) *cli.Command {
	return &cli.Command{
		Name:    "products",
		Summary: "Manage the product catalog",
		Description: `CLI for interacting with a grocery store. See "products COMMAND --help" for
more detail about subcommands.`,
		HelpOutput: env.Stderr,
		Subcommands: []*cli.Command{
			addItemCommand(env),
			viewCommand(env),
			toCartCommand(env),
			removeCommand(env),
			clearCommand(env),
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
		Summary: "Add a new item to the product list",
		Description: `Add a new item to the product list. Each item has a name, a unit price
in dollars, and a unit description (kg., liters, loaves, pies, boxes,
cases, etc.). The price must be greater than zero.`,
		Usage: "products add_item NAME UNIT PRICE [flags]",
		Examples: []cli.Example{
			{
				Description: "List a pizza at $12.50 per pie",
				Command:     "products add_item Pizza Pies 12.50",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("add_item", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, []string{"name", "unit", "price"}, nil); err != nil {
				return err
			}
			price, err := cli.ParseAmount("price", args[2])
			if err != nil {
				return err
			}

			session, err := params.Open(env, "products/add_item")
			if err != nil {
				return err
			}
			_, err = session.Shop.AddProduct(ctx, args[0], args[1], price)
			return cli.Classify(err)
		},
	}
}

// --- view ---

type viewParams struct {
	cli.StoreParams
	cli.JSONOutput
	cli.SortOrder
	SortBy string `json:"sortby" flag:"sortby" desc:"the column to sort by (ID, Name, Unit of Measure, Price)" default:"ID"`
}

func viewCommand(env *cli.Env) *cli.Command {
	var params viewParams

	return &cli.Command{
		Name:    "view",
		Summary: "Display current product listings",
		Description: `Display current product listings. Listings can be sorted by any column,
in either direction.`,
		Usage: "products view [flags]",
		Examples: []cli.Example{
			{
				Description: "Cheapest products first",
				Command:     "products view --sortby Price",
			},
			{
				Description: "Catalog as JSON, sorted by name in reverse",
				Command:     "products view --sortby Name --descending --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("view", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, nil, nil); err != nil {
				return err
			}
			column, err := cli.SortColumn(params.SortBy, render.ProductColumns)
			if err != nil {
				return err
			}

			session, err := params.Open(env, "products/view")
			if err != nil {
				return err
			}
			rows, err := session.Shop.ProductRows(ctx)
			if err != nil {
				return cli.Classify(err)
			}

			if params.OutputJSON {
				if err := render.SortProducts(rows, column, params.Ascending); err != nil {
					return cli.Internal("%w", err)
				}
			}
			if done, err := params.EmitJSON(env.Stdout, rows); done {
				return err
			}
			return render.Products(env.Stdout, rows, column, params.Ascending)
		},
	}
}

// --- to_cart ---

type toCartParams struct {
	cli.StoreParams
}

func toCartCommand(env *cli.Env) *cli.Command {
	var params toCartParams

	return &cli.Command{
		Name:        "to_cart",
		Summary:     "Add a listed product to the cart",
		Description: `Add product with id to cart in given quantity. The quantity must be greater than zero.`,
		Usage:       "products to_cart PRODUCT_ID QUANTITY [flags]",
		Examples: []cli.Example{
			{
				Description: "Put two of product 3 in the cart",
				Command:     "products to_cart 3 2",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("to_cart", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, []string{"product_id", "quantity"}, nil); err != nil {
				return err
			}
			productID, err := cli.ParseID("product_id", args[0])
			if err != nil {
				return err
			}
			quantity, err := cli.ParseAmount("quantity", args[1])
			if err != nil {
				return err
			}

			session, err := params.Open(env, "products/to_cart")
			if err != nil {
				return err
			}
			_, err = session.Shop.MoveToCart(ctx, productID, quantity)
			return cli.Classify(err)
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
		Name:    "remove",
		Summary: "Delete a product by ID",
		Description: `Delete products list item by ID. Every cart line that refers to the
product is removed first.`,
		Usage: "products remove PRODUCT_ID [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("remove", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, []string{"product_id"}, nil); err != nil {
				return err
			}
			productID, err := cli.ParseID("product_id", args[0])
			if err != nil {
				return err
			}

			session, err := params.Open(env, "products/remove")
			if err != nil {
				return err
			}
			return cli.Classify(session.Shop.RemoveProduct(ctx, productID))
		},
	}
}

// --- clear ---

type clearParams struct {
	cli.StoreParams
}

func clearCommand(env *cli.Env) *cli.Command {
	var params clearParams

	return &cli.Command{
		Name:        "clear",
		Summary:     "Remove every product",
		Description: "Remove every product from the listing.",
		Usage:       "products clear [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("clear", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := cli.Arguments(args, nil, nil); err != nil {
				return err
			}
			session, err := params.Open(env, "products/clear")
			if err != nil {
				return err
			}
			if err := session.Shop.Clear(ctx, schema.ProductsCollection); err != nil {
				return cli.Classify(err)
			}
			session.Status(env.Stdout, schema.ProductsCollection.Title()+" cleared.")
			return nil
		},
	}
}
