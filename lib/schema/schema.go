// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Collection names one of the persisted id→record mappings.
type Collection string

const (
	// ProductsCollection is the product catalog.
	ProductsCollection Collection = "products"
	// CartCollection is the shopping cart.
	CartCollection Collection = "cart"
)

// Title is the label used for the collection in user-facing messages.
func (c Collection) Title() string {
	switch c {
	case ProductsCollection:
		return "Products list"
	case CartCollection:
		return "Cart"
	default:
		return string(c)
	}
}

// Product is a catalog entry. Products are never edited in place; they
// are only created and removed.
type Product struct {
	Name  string
	Unit  string
	Price decimal.Decimal
}

// Products is the catalog collection, keyed by product id.
type Products map[int]Product

// LineSource supplies the product fields displayed for a cart line.
// The only implementations are [DirectLine] and [ReferenceLine].
type LineSource interface {
	// Describe returns the name, unit and price shown for the line.
	// lookup resolves a catalog product by id and is only called by
	// reference lines, so callers can load the catalog lazily.
	Describe(lookup func(productID int) (Product, error)) (Product, error)

	lineSource()
}

// DirectLine is a cart line that carries its own product fields.
type DirectLine struct {
	Name  string
	Unit  string
	Price decimal.Decimal
}

// Describe returns the line's own fields.
func (d DirectLine) Describe(func(int) (Product, error)) (Product, error) {
	return Product{Name: d.Name, Unit: d.Unit, Price: d.Price}, nil
}

func (DirectLine) lineSource() {}

// ReferenceLine is a cart line that points at a catalog product.
type ReferenceLine struct {
	ProductID int
}

// Describe resolves the referenced product through lookup.
func (r ReferenceLine) Describe(lookup func(int) (Product, error)) (Product, error) {
	if lookup == nil {
		return Product{}, fmt.Errorf("no catalog available to resolve product %d", r.ProductID)
	}
	return lookup(r.ProductID)
}

func (ReferenceLine) lineSource() {}

// CartLine is one entry in the cart: a source for its product fields
// and the quantity being bought.
type CartLine struct {
	Source   LineSource
	Quantity decimal.Decimal
}

// References reports whether the line points at the given product.
func (l CartLine) References(productID int) bool {
	reference, ok := l.Source.(ReferenceLine)
	return ok && reference.ProductID == productID
}

// Equal reports whether both lines have the same source and quantity.
// Amounts compare by value, so 2 equals 2.00.
func (l CartLine) Equal(other CartLine) bool {
	if !l.Quantity.Equal(other.Quantity) {
		return false
	}
	switch source := l.Source.(type) {
	case DirectLine:
		direct, ok := other.Source.(DirectLine)
		return ok && source.Name == direct.Name && source.Unit == direct.Unit && source.Price.Equal(direct.Price)
	case ReferenceLine:
		reference, ok := other.Source.(ReferenceLine)
		return ok && source == reference
	default:
		return false
	}
}

// Cart is the cart collection, keyed by line id.
type Cart map[int]CartLine

// Equal reports whether both carts hold equal lines under the same ids.
func (c Cart) Equal(other Cart) bool {
	if len(c) != len(other) {
		return false
	}
	for id, line := range c {
		otherLine, ok := other[id]
		if !ok || !line.Equal(otherLine) {
			return false
		}
	}
	return true
}

// RemoveReferences deletes every line pointing at productID and
// returns how many were removed.
func (c Cart) RemoveReferences(productID int) int {
	removed := 0
	for id, line := range c {
		if line.References(productID) {
			delete(c, id)
			removed++
		}
	}
	return removed
}

// NextID returns the id for a new record: the largest existing id plus
// one, or 0 for an empty collection.
func NextID[R any](records map[int]R) int {
	next := 0
	for id := range records {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
