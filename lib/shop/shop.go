// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package shop

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cameronpallen/grocery/lib/clock"
	"github.com/cameronpallen/grocery/lib/render"
	"github.com/cameronpallen/grocery/lib/schema"
	"github.com/cameronpallen/grocery/lib/store"
)

// HoldDuration is how long the diagnostic sleep command holds the lock.
const HoldDuration = 10 * time.Second

// Service runs catalog and cart operations against a set of
// collections.
type Service struct {
	collections store.Collections
	clock       clock.Clock
	logger      *slog.Logger
}

// New returns a Service. A nil clock uses the real clock and a nil
// logger discards.
func New(collections store.Collections, clk clock.Clock, logger *slog.Logger) *Service {
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{collections: collections, clock: clk, logger: logger}
}

// AddProduct inserts a catalog product and returns its id.
func (s *Service) AddProduct(ctx context.Context, name, unit string, price decimal.Decimal) (int, error) {
	var productID int
	err := store.UpdateProducts(ctx, s.collections, func(products schema.Products) (bool, error) {
		if err := checkPrice(price); err != nil {
			return false, err
		}
		productID = schema.NextID(products)
		products[productID] = schema.Product{Name: name, Unit: unit, Price: price}
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("product added", "product_id", productID, "name", name)
	return productID, nil
}

// AddToCart adds a direct item: the item is inserted into the catalog,
// then a reference line for it is added to the cart. Returns the new
// product id and cart line id.
func (s *Service) AddToCart(ctx context.Context, name, unit string, price, quantity decimal.Decimal) (productID, lineID int, err error) {
	err = s.collections.WithLock(ctx, func() error {
		if err := checkPrice(price); err != nil {
			return err
		}
		if err := checkQuantity("quantity", quantity); err != nil {
			return err
		}

		products, err := s.collections.LoadProducts()
		if err != nil {
			return err
		}
		productID = schema.NextID(products)
		products[productID] = schema.Product{Name: name, Unit: unit, Price: price}
		if err := s.collections.SaveProducts(products); err != nil {
			return err
		}

		cart, err := s.collections.LoadCart()
		if err == nil {
			lineID = schema.NextID(cart)
			cart[lineID] = schema.CartLine{Source: schema.ReferenceLine{ProductID: productID}, Quantity: quantity}
			err = s.collections.SaveCart(cart)
		}
		if err != nil {
			delete(products, productID)
			if rollbackErr := s.collections.SaveProducts(products); rollbackErr != nil {
				s.logger.Error("rolling back product insert failed",
					"product_id", productID, "error", rollbackErr)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	s.logger.Info("item added to cart", "product_id", productID, "line_id", lineID, "name", name)
	return productID, lineID, nil
}

// MoveToCart adds a reference line for an existing catalog product and
// returns the new line id.
func (s *Service) MoveToCart(ctx context.Context, productID int, quantity decimal.Decimal) (int, error) {
	var lineID int
	err := s.collections.WithLock(ctx, func() error {
		if err := checkQuantity("quantity", quantity); err != nil {
			return err
		}
		products, err := s.collections.LoadProducts()
		if err != nil {
			return err
		}
		if _, ok := products[productID]; !ok {
			return &NotFoundError{Param: "product_id", ID: productID, Collection: schema.ProductsCollection}
		}

		cart, err := s.collections.LoadCart()
		if err != nil {
			return err
		}
		lineID = schema.NextID(cart)
		cart[lineID] = schema.CartLine{Source: schema.ReferenceLine{ProductID: productID}, Quantity: quantity}
		return s.collections.SaveCart(cart)
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("product moved to cart", "product_id", productID, "line_id", lineID)
	return lineID, nil
}

// RemoveProduct deletes a product and, first, every cart line that
// references it.
func (s *Service) RemoveProduct(ctx context.Context, productID int) error {
	var removedLines int
	err := s.collections.WithLock(ctx, func() error {
		products, err := s.collections.LoadProducts()
		if err != nil {
			return err
		}
		if _, ok := products[productID]; !ok {
			return &NotFoundError{Param: "product_id", ID: productID, Collection: schema.ProductsCollection}
		}

		cart, err := s.collections.LoadCart()
		if err != nil {
			return err
		}
		removedLines = cart.RemoveReferences(productID)
		if err := s.collections.SaveCart(cart); err != nil {
			return err
		}

		delete(products, productID)
		return s.collections.SaveProducts(products)
	})
	if err != nil {
		return err
	}
	s.logger.Info("product removed", "product_id", productID, "cart_lines_removed", removedLines)
	return nil
}

// RemoveLine deletes one cart line.
func (s *Service) RemoveLine(ctx context.Context, lineID int) error {
	err := store.UpdateCart(ctx, s.collections, func(cart schema.Cart) (bool, error) {
		if _, ok := cart[lineID]; !ok {
			return false, &NotFoundError{Param: "item_id", ID: lineID, Collection: schema.CartCollection}
		}
		delete(cart, lineID)
		return true, nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("cart line removed", "line_id", lineID)
	return nil
}

// UpdateQuantity replaces the quantity of one cart line. Nothing else
// about the line changes.
func (s *Service) UpdateQuantity(ctx context.Context, lineID int, quantity decimal.Decimal) error {
	err := store.UpdateCart(ctx, s.collections, func(cart schema.Cart) (bool, error) {
		if err := checkQuantity("new_quantity", quantity); err != nil {
			return false, err
		}
		line, ok := cart[lineID]
		if !ok {
			return false, &NotFoundError{Param: "item_id", ID: lineID, Collection: schema.CartCollection}
		}
		line.Quantity = quantity
		cart[lineID] = line
		return true, nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("cart quantity updated", "line_id", lineID, "quantity", quantity.String())
	return nil
}

// Clear empties a collection.
func (s *Service) Clear(ctx context.Context, collection schema.Collection) error {
	err := s.collections.WithLock(ctx, func() error {
		return store.Clear(s.collections, collection)
	})
	if err != nil {
		return err
	}
	s.logger.Info("collection cleared", "collection", string(collection))
	return nil
}

// Hold keeps the lock for d without touching either collection. It
// exists to demonstrate mutual exclusion between invocations.
func (s *Service) Hold(ctx context.Context, d time.Duration) error {
	return s.collections.WithLock(ctx, func() error {
		s.logger.Info("holding lock", "duration", d)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.clock.After(d):
			return nil
		}
	})
}

// ProductRows reads the catalog under the lock.
func (s *Service) ProductRows(ctx context.Context) ([]render.ProductRow, error) {
	var rows []render.ProductRow
	err := s.collections.WithLock(ctx, func() error {
		products, err := s.collections.LoadProducts()
		if err != nil {
			return err
		}
		rows = render.ProductRows(products)
		return nil
	})
	return rows, err
}

// CartRows reads the cart under the lock and resolves reference lines
// against the catalog.
func (s *Service) CartRows(ctx context.Context) ([]render.CartRow, error) {
	var rows []render.CartRow
	err := s.collections.WithLock(ctx, func() error {
		cart, err := s.collections.LoadCart()
		if err != nil {
			return err
		}
		rows, err = ResolveCart(cart, s.collections)
		return err
	})
	return rows, err
}

// ResolveCart turns cart lines into display rows, loading the catalog
// from collections only if a reference line needs it. The caller must
// hold the lock.
func ResolveCart(cart schema.Cart, collections store.Collections) ([]render.CartRow, error) {
	return render.CartRows(cart, collections.LoadProducts, func(lineID, productID int) error {
		return fmt.Errorf("cart line %d: %w", lineID,
			&NotFoundError{Param: "product_id", ID: productID, Collection: schema.ProductsCollection})
	})
}

func checkPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return &ParamError{Param: "price", Reason: "Price must be greater than zero."}
	}
	return nil
}

func checkQuantity(param string, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return &ParamError{Param: param, Reason: "Quantity must be greater than zero."}
	}
	return nil
}
