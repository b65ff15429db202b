// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/cameronpallen/grocery/lib/render"
	"github.com/cameronpallen/grocery/lib/schema"
	"github.com/cameronpallen/grocery/lib/shop"
	"github.com/cameronpallen/grocery/lib/store"
)

var (
	cardNumberPattern   = regexp.MustCompile(`^\d{16}$`)
	securityCodePattern = regexp.MustCompile(`^\d{3}$`)
	expiryPattern       = regexp.MustCompile(`^\d{4}$`)
	zipPattern          = regexp.MustCompile(`^\d{5}$`)
	emailPattern        = regexp.MustCompile(`^.+@[^.].+\..+[^.]$`)
)

// Result describes a completed checkout. Placed is false when the cart
// was empty or the user declined the final confirmation.
type Result struct {
	Placed        bool
	Order         uuid.UUID
	Authorization Authorization
}

// Flow runs a checkout against the collections in Store.
type Flow struct {
	Store      store.Collections
	Prompter   *Prompter
	Authorizer Authorizer
	Out        io.Writer
	Styles     render.Styles
	Logger     *slog.Logger
}

// Run checks out the cart using method. The lock is taken three times,
// briefly: to read the cart, to load it again for review once billing
// details are in, and to empty it after confirmation. Prompts wait
// without the lock, so other commands keep working meanwhile. If the
// cart changed between review and confirmation nothing is written and
// the error matches [ErrCartChanged].
func (f *Flow) Run(ctx context.Context, method Method) (Result, error) {
	logger := f.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var result Result
	if _, err := ParseMethod(string(method)); err != nil {
		return result, err
	}

	var cart schema.Cart
	err := f.Store.WithLock(ctx, func() error {
		var err error
		cart, err = f.Store.LoadCart()
		return err
	})
	if err != nil {
		return result, err
	}
	if len(cart) == 0 {
		f.emptyCart()
		return result, nil
	}

	var payment Payment
	switch method {
	case MethodCard:
		payment, err = f.collectCard(ctx, &result)
	case MethodPayPal:
		payment, err = f.collectPayPal(ctx, &result)
	}
	if err != nil {
		return result, err
	}
	logger.Debug("billing details collected", "method", string(payment.Method))

	var rows []render.CartRow
	err = f.Store.WithLock(ctx, func() error {
		var err error
		if cart, err = f.Store.LoadCart(); err != nil || len(cart) == 0 {
			return err
		}
		rows, err = shop.ResolveCart(cart, f.Store)
		return err
	})
	if err != nil {
		return result, err
	}
	if len(cart) == 0 {
		f.emptyCart()
		return result, nil
	}
	if err := render.Cart(f.Out, rows, render.ColumnID, true); err != nil {
		return result, err
	}

	confirmed, err := f.Prompter.Confirm("Confirm order and payment details?")
	if err != nil {
		return result, err
	}
	if !confirmed {
		logger.Info("checkout declined", "method", string(method))
		return result, nil
	}

	err = f.Store.WithLock(ctx, func() error {
		current, err := f.Store.LoadCart()
		if err != nil {
			return err
		}
		if !current.Equal(cart) {
			return ErrCartChanged
		}
		return store.Clear(f.Store, schema.CartCollection)
	})
	if err != nil {
		if errors.Is(err, ErrCartChanged) {
			logger.Warn("cart changed during checkout", "method", string(method))
		}
		return result, err
	}

	result.Placed = true
	result.Order = uuid.New()
	fmt.Fprintln(f.Out, f.Styles.Success.Render("Thank you for your purchase!"))
	fmt.Fprintf(f.Out, "order reference: %s\n", result.Order)
	logger.Info("order placed",
		"order", result.Order.String(),
		"method", string(method),
		"lines", len(cart),
		"total", render.Total(rows).String(),
	)
	return result, nil
}

func (f *Flow) emptyCart() {
	fmt.Fprintln(f.Out, f.Styles.Notice.Render("Please add items to cart before checking out."))
}

func (f *Flow) collectCard(ctx context.Context, result *Result) (Payment, error) {
	var card Card
	var err error
	if card.Number, err = f.billing("Please enter credit card number (no dashes)", "card_number", cardNumberPattern, true); err != nil {
		return Payment{}, err
	}
	if card.SecurityCode, err = f.billing("Please enter 3 digit credit card security code", "security_code", securityCodePattern, true); err != nil {
		return Payment{}, err
	}
	if card.Expiry, err = f.billing("Please enter credit card expiration date (MMYY)", "expiry", expiryPattern, false); err != nil {
		return Payment{}, err
	}
	if month, _ := strconv.Atoi(card.Expiry[:2]); month < 1 || month > 12 {
		return Payment{}, &ValidationError{Field: "expiry", Message: "Month must be in [1-12]"}
	}
	if card.Zip, err = f.billing("Please enter billing zip code", "zip", zipPattern, false); err != nil {
		return Payment{}, err
	}
	address, err := f.Prompter.Prompt("Please enter shipping address")
	if err != nil {
		return Payment{}, err
	}

	fmt.Fprintln(f.Out, "stealing your money (kidding...)")
	payment := Payment{Method: MethodCard, Card: card}
	if result.Authorization, err = f.Authorizer.Authorize(ctx, payment); err != nil {
		return Payment{}, fmt.Errorf("authorizing card payment: %w", err)
	}
	fmt.Fprintf(f.Out, "card number: ************%s\n", card.LastFour())
	fmt.Fprintf(f.Out, "shipping address: %s\n", address)
	return payment, nil
}

func (f *Flow) collectPayPal(ctx context.Context, result *Result) (Payment, error) {
	email, err := f.billing("Please enter paypal account email", "email", emailPattern, false)
	if err != nil {
		return Payment{}, err
	}
	fmt.Fprintf(f.Out, "Authenticating with paypal using [%s]...\n", email)
	payment := Payment{Method: MethodPayPal, Email: email}
	if result.Authorization, err = f.Authorizer.Authorize(ctx, payment); err != nil {
		return Payment{}, fmt.Errorf("authenticating with paypal: %w", err)
	}

	usePayPalAddress, err := f.Prompter.Confirm("Use paypal shipping address?")
	if err != nil {
		return Payment{}, err
	}
	if !usePayPalAddress {
		if _, err := f.Prompter.Prompt("Please enter shipping address"); err != nil {
			return Payment{}, err
		}
	}
	return payment, nil
}

// billing prompts for one billing field and checks its format.
func (f *Flow) billing(query, field string, pattern *regexp.Regexp, hidden bool) (string, error) {
	prompt := f.Prompter.Prompt
	if hidden {
		prompt = f.Prompter.PromptHidden
	}
	value, err := prompt(query)
	if err != nil {
		return "", err
	}
	if !pattern.MatchString(value) {
		return "", &ValidationError{Field: field, Message: "Invalid response format."}
	}
	return value, nil
}
