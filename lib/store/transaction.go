// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/cameronpallen/grocery/lib/schema"
)

// UpdateProducts loads the catalog under the lock and passes it to fn,
// which may mutate it in place. The catalog is saved only when fn
// returns changed == true and no error.
func UpdateProducts(ctx context.Context, collections Collections, fn func(products schema.Products) (changed bool, err error)) error {
	return update(ctx, collections, collections.LoadProducts, collections.SaveProducts, fn)
}

// UpdateCart is [UpdateProducts] for the cart.
func UpdateCart(ctx context.Context, collections Collections, fn func(cart schema.Cart) (changed bool, err error)) error {
	return update(ctx, collections, collections.LoadCart, collections.SaveCart, fn)
}

// Clear saves an empty collection. The caller must hold the lock.
func Clear(collections Collections, collection schema.Collection) error {
	if collection == schema.ProductsCollection {
		return collections.SaveProducts(schema.Products{})
	}
	return collections.SaveCart(schema.Cart{})
}

func update[C any](ctx context.Context, collections Collections, load func() (C, error), save func(C) error, fn func(C) (bool, error)) error {
	return collections.WithLock(ctx, func() error {
		collection, err := load()
		if err != nil {
			return err
		}
		changed, err := fn(collection)
		if err != nil || !changed {
			return err
		}
		return save(collection)
	})
}
