// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cameronpallen/grocery/lib/schema"
)

// ProductRow is one catalog table row.
type ProductRow struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Unit  string          `json:"unit"`
	Price decimal.Decimal `json:"price"`
}

// CartRow is one cart table row with the product fields already
// resolved.
type CartRow struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Subtotal is price × quantity.
func (r CartRow) Subtotal() decimal.Decimal {
	return r.Price.Mul(r.Quantity)
}

// Total sums the subtotals of rows.
func Total(rows []CartRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Subtotal())
	}
	return total
}

// ProductRows converts the catalog into table rows, in no particular
// order.
func ProductRows(products schema.Products) []ProductRow {
	rows := make([]ProductRow, 0, len(products))
	for id, product := range products {
		rows = append(rows, ProductRow{ID: id, Name: product.Name, Unit: product.Unit, Price: product.Price})
	}
	return rows
}

// CartRows resolves every cart line into a table row. loadProducts is
// called at most once, and only when the cart holds a reference line.
// A reference to a product missing from the catalog is reported through
// missing, which receives the line id and the product id.
func CartRows(cart schema.Cart, loadProducts func() (schema.Products, error), missing func(lineID, productID int) error) ([]CartRow, error) {
	var products schema.Products
	loaded := false
	rows := make([]CartRow, 0, len(cart))
	for id, line := range cart {
		product, err := line.Source.Describe(func(productID int) (schema.Product, error) {
			if !loaded {
				catalog, err := loadProducts()
				if err != nil {
					return schema.Product{}, err
				}
				products, loaded = catalog, true
			}
			product, ok := products[productID]
			if !ok {
				if missing != nil {
					return schema.Product{}, missing(id, productID)
				}
				return schema.Product{}, fmt.Errorf("cart line %d references missing product %d", id, productID)
			}
			return product, nil
		})
		if err != nil {
			return nil, err
		}
		rows = append(rows, CartRow{
			ID:       id,
			Name:     product.Name,
			Unit:     product.Unit,
			Quantity: line.Quantity,
			Price:    product.Price,
		})
	}
	return rows, nil
}
