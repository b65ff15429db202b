// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"maps"
	"sync"

	"github.com/cameronpallen/grocery/lib/schema"
)

// Memory is an in-process [Collections]. Its lock is a mutex, so it
// only serializes goroutines, not processes. It records every save so
// callers can assert exactly what was written.
type Memory struct {
	lock sync.Mutex

	mu       sync.Mutex
	products schema.Products
	cart     schema.Cart

	// LockCount is the number of WithLock calls.
	LockCount int
	held      bool
	// ProductSaves and CartSaves hold a copy of every saved collection
	// in save order.
	ProductSaves []schema.Products
	CartSaves    []schema.Cart
	// SaveCartErr, when set, is returned by SaveCart without saving.
	SaveCartErr error
}

// NewMemory returns a Memory seeded with copies of products and cart.
// Nil arguments start empty.
func NewMemory(products schema.Products, cart schema.Cart) *Memory {
	return &Memory{products: copyMap(products), cart: copyMap(cart)}
}

// WithLock runs body while holding the in-process lock.
func (m *Memory) WithLock(_ context.Context, body func() error) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.mu.Lock()
	m.LockCount++
	m.held = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.held = false
		m.mu.Unlock()
	}()
	return body()
}

// Held reports whether a WithLock body is running.
func (m *Memory) Held() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held
}

// LoadProducts returns a copy of the catalog.
func (m *Memory) LoadProducts() (schema.Products, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyMap(m.products), nil
}

// SaveProducts replaces the catalog with a copy of products.
func (m *Memory) SaveProducts(products schema.Products) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = copyMap(products)
	m.ProductSaves = append(m.ProductSaves, copyMap(products))
	return nil
}

// LoadCart returns a copy of the cart.
func (m *Memory) LoadCart() (schema.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyMap(m.cart), nil
}

// SaveCart replaces the cart with a copy of cart.
func (m *Memory) SaveCart(cart schema.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveCartErr != nil {
		return m.SaveCartErr
	}
	m.cart = copyMap(cart)
	m.CartSaves = append(m.CartSaves, copyMap(cart))
	return nil
}

// Products returns the current catalog without touching the counters.
func (m *Memory) Products() schema.Products {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyMap(m.products)
}

// Cart returns the current cart without touching the counters.
func (m *Memory) Cart() schema.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyMap(m.cart)
}

func copyMap[M ~map[int]V, V any](source M) M {
	copied := make(M, len(source))
	maps.Copy(copied, source)
	return copied
}
