// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package checkout

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cameronpallen/grocery/lib/clock"
)

// Method is a payment method accepted at checkout.
type Method string

const (
	MethodCard   Method = "card"
	MethodPayPal Method = "paypal"
)

// Methods lists the accepted payment methods in help order.
var Methods = []Method{MethodCard, MethodPayPal}

// ParseMethod returns the Method named s.
func ParseMethod(s string) (Method, error) {
	for _, method := range Methods {
		if string(method) == s {
			return method, nil
		}
	}
	return "", &ValidationError{
		Field:   "method",
		Message: `invalid value for "method": invalid choice: ` + s + ". (choose from card, paypal)",
	}
}

// Card holds the billing details collected for a card payment.
type Card struct {
	Number       string
	SecurityCode string
	Expiry       string
	Zip          string
}

// LastFour returns the last four digits of the card number.
func (c Card) LastFour() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

// Payment is what an [Authorizer] is asked to approve. Exactly one of
// Card and Email is set, according to Method.
type Payment struct {
	Method Method
	Card   Card
	Email  string
}

// Authorization is the result of a successful authorization.
type Authorization struct {
	ID         uuid.UUID
	Method     Method
	Authorized time.Time
}

// Authorizer approves a payment before the order is confirmed.
type Authorizer interface {
	Authorize(ctx context.Context, payment Payment) (Authorization, error)
}

// MockAuthorizer approves every payment. Nothing leaves the process;
// the authorization id is random.
type MockAuthorizer struct {
	Clock  clock.Clock
	Logger *slog.Logger
}

// Authorize returns a fresh authorization for payment.
func (m MockAuthorizer) Authorize(_ context.Context, payment Payment) (Authorization, error) {
	now := time.Now()
	if m.Clock != nil {
		now = m.Clock.Now()
	}
	authorization := Authorization{ID: uuid.New(), Method: payment.Method, Authorized: now}
	if m.Logger != nil {
		attrs := []any{"authorization_id", authorization.ID.String(), "method", string(payment.Method)}
		if payment.Method == MethodCard {
			attrs = append(attrs, "card_last_four", payment.Card.LastFour())
		}
		m.Logger.Info("payment authorized", attrs...)
	}
	return authorization, nil
}
