// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package checkout

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cameronpallen/grocery/lib/render"
	"github.com/cameronpallen/grocery/lib/schema"
	"github.com/cameronpallen/grocery/lib/store"
)

type recordingAuthorizer struct {
	payments []Payment
	err      error
}

func (r *recordingAuthorizer) Authorize(_ context.Context, payment Payment) (Authorization, error) {
	r.payments = append(r.payments, payment)
	if r.err != nil {
		return Authorization{}, r.err
	}
	return Authorization{ID: uuid.New(), Method: payment.Method}, nil
}

func twoLineCart() *store.Memory {
	return store.NewMemory(
		schema.Products{2: {Name: "Wine", Unit: "Bottles", Price: decimal.RequireFromString("9.99")}},
		schema.Cart{
			1: {Source: schema.DirectLine{Name: "Bread", Unit: "Loaves", Price: decimal.RequireFromString("2.50")}, Quantity: decimal.NewFromInt(1)},
			2: {Source: schema.ReferenceLine{ProductID: 2}, Quantity: decimal.NewFromInt(2)},
		},
	)
}

type harness struct {
	memory     *store.Memory
	authorizer *recordingAuthorizer
	output     *bytes.Buffer
	flow       *Flow
}

func newHarness(memory *store.Memory, input string) *harness {
	output := &bytes.Buffer{}
	authorizer := &recordingAuthorizer{}
	return &harness{
		memory:     memory,
		authorizer: authorizer,
		output:     output,
		flow: &Flow{
			Store:      memory,
			Prompter:   NewPrompter(strings.NewReader(input), output),
			Authorizer: authorizer,
			Out:        output,
			Styles:     render.Plain(),
		},
	}
}

func TestRun_CardConfirmed(t *testing.T) {
	h := newHarness(twoLineCart(), "1111222233334567\n123\n0719\n97330\nfake addy\ny\n")

	result, err := h.flow.Run(context.Background(), MethodCard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Placed || result.Order == uuid.Nil {
		t.Errorf("result = %+v, want a placed order", result)
	}

	if len(h.authorizer.payments) != 1 {
		t.Fatalf("authorizations = %d, want 1", len(h.authorizer.payments))
	}
	want := Card{Number: "1111222233334567", SecurityCode: "123", Expiry: "0719", Zip: "97330"}
	if got := h.authorizer.payments[0].Card; got != want {
		t.Errorf("authorized card = %+v, want %+v", got, want)
	}

	if len(h.memory.CartSaves) != 1 || len(h.memory.CartSaves[0]) != 0 {
		t.Errorf("cart saves = %+v, want one empty save", h.memory.CartSaves)
	}
	if h.memory.LockCount != 3 {
		t.Errorf("LockCount = %d, want 3 (read, review, clear)", h.memory.LockCount)
	}

	output := h.output.String()
	for _, fragment := range []string{
		"Please enter credit card number (no dashes): ",
		"stealing your money (kidding...)\n",
		"card number: ************4567\n",
		"shipping address: fake addy\n",
		" Bread | Loaves",
		"Confirm order and payment details? [y/N]: ",
		"Thank you for your purchase!\n",
		"order reference: " + result.Order.String(),
	} {
		if !strings.Contains(output, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, output)
		}
	}
	if strings.Index(output, " 1  | Bread") > strings.Index(output, " 2  | Wine") {
		t.Errorf("review table not sorted by id:\n%s", output)
	}
}

func TestRun_CardDeclined(t *testing.T) {
	h := newHarness(twoLineCart(), "1111222233334567\n123\n0719\n97330\nfake addy\nn\n")

	result, err := h.flow.Run(context.Background(), MethodCard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Placed {
		t.Error("declined checkout reported as placed")
	}
	if len(h.authorizer.payments) != 1 {
		t.Errorf("authorizations = %d, want 1", len(h.authorizer.payments))
	}
	if len(h.memory.CartSaves) != 0 {
		t.Errorf("declined checkout wrote the cart %d times", len(h.memory.CartSaves))
	}
	if h.memory.LockCount != 2 {
		t.Errorf("LockCount = %d, want 2 (read, review)", h.memory.LockCount)
	}
}

// lineReader hands out one line per Read call and runs before ahead of
// each, so a test can act between prompts.
type lineReader struct {
	lines  []string
	next   int
	before func(index int)
}

func (r *lineReader) Read(p []byte) (int, error) {
	if r.next >= len(r.lines) {
		return 0, io.EOF
	}
	if r.before != nil {
		r.before(r.next)
	}
	n := copy(p, r.lines[r.next]+"\n")
	r.next++
	return n, nil
}

var cardAnswers = []string{"1111222233334567", "123", "0719", "97330", "fake addy", "y"}

func TestRun_PromptsWithoutLock(t *testing.T) {
	h := newHarness(twoLineCart(), "")
	reads := 0
	h.flow.Prompter = NewPrompter(&lineReader{lines: cardAnswers, before: func(index int) {
		reads++
		if h.memory.Held() {
			t.Errorf("lock held while waiting for answer %d", index)
		}
	}}, h.output)

	result, err := h.flow.Run(context.Background(), MethodCard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Placed {
		t.Error("order not placed")
	}
	if reads != len(cardAnswers) {
		t.Errorf("answers read = %d, want %d", reads, len(cardAnswers))
	}
}

func TestRun_CartChangedBeforeConfirm(t *testing.T) {
	tests := []struct {
		name   string
		change func(cart schema.Cart)
	}{
		{name: "line added", change: func(cart schema.Cart) {
			cart[3] = schema.CartLine{Source: schema.ReferenceLine{ProductID: 2}, Quantity: decimal.NewFromInt(1)}
		}},
		{name: "quantity updated", change: func(cart schema.Cart) {
			cart[2] = schema.CartLine{Source: schema.ReferenceLine{ProductID: 2}, Quantity: decimal.NewFromInt(5)}
		}},
		{name: "emptied", change: func(cart schema.Cart) { clear(cart) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newHarness(twoLineCart(), "")
			confirmIndex := len(cardAnswers) - 1
			h.flow.Prompter = NewPrompter(&lineReader{lines: cardAnswers, before: func(index int) {
				if index != confirmIndex {
					return
				}
				cart := h.memory.Cart()
				test.change(cart)
				if err := h.memory.SaveCart(cart); err != nil {
					t.Fatalf("SaveCart: %v", err)
				}
			}}, h.output)

			result, err := h.flow.Run(context.Background(), MethodCard)
			if !errors.Is(err, ErrCartChanged) {
				t.Fatalf("error = %v, want ErrCartChanged", err)
			}
			if result.Placed {
				t.Error("changed cart placed an order")
			}
			if len(h.memory.CartSaves) != 1 {
				t.Errorf("cart saves = %d, want only the concurrent change", len(h.memory.CartSaves))
			}
			if strings.Contains(h.output.String(), "Thank you") {
				t.Errorf("output thanked the user:\n%s", h.output.String())
			}
		})
	}
}

func TestRun_CartEmptiedWhileEnteringBilling(t *testing.T) {
	h := newHarness(twoLineCart(), "")
	h.flow.Prompter = NewPrompter(&lineReader{lines: cardAnswers, before: func(index int) {
		if index == 1 {
			if err := h.memory.SaveCart(schema.Cart{}); err != nil {
				t.Fatalf("SaveCart: %v", err)
			}
		}
	}}, h.output)

	result, err := h.flow.Run(context.Background(), MethodCard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Placed {
		t.Error("emptied cart placed an order")
	}
	if !strings.HasSuffix(h.output.String(), "Please add items to cart before checking out.\n") {
		t.Errorf("output:\n%s", h.output.String())
	}
}

func TestRun_CardInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "short number", input: "111122223333\n", message: "Invalid response format."},
		{name: "dashed number", input: "1111-2222-3333-4567\n", message: "Invalid response format."},
		{name: "long code", input: "1111222233334567\n1234\n", message: "Invalid response format."},
		{name: "month above 12", input: "1111222233334567\n123\n2119\n97330\nfake addy\ny\n", message: "Month must be in [1-12]"},
		{name: "month zero", input: "1111222233334567\n123\n0019\n", message: "Month must be in [1-12]"},
		{name: "zip", input: "1111222233334567\n123\n0719\n9733\n", message: "Invalid response format."},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newHarness(twoLineCart(), test.input)

			_, err := h.flow.Run(context.Background(), MethodCard)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}
			if err.Error() != test.message {
				t.Errorf("message = %q, want %q", err.Error(), test.message)
			}
			if len(h.authorizer.payments) != 0 {
				t.Error("invalid input reached the authorizer")
			}
			if len(h.memory.CartSaves) != 0 {
				t.Error("invalid input wrote the cart")
			}
		})
	}
}

func TestRun_PayPal(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "paypal address", input: "cameron@cameronpallen.com\ny\ny\n"},
		{name: "own address", input: "cameron@cameronpallen.com\nn\nfake address\ny\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newHarness(twoLineCart(), test.input)

			result, err := h.flow.Run(context.Background(), MethodPayPal)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if !result.Placed {
				t.Error("order not placed")
			}
			if len(h.authorizer.payments) != 1 || h.authorizer.payments[0].Email != "cameron@cameronpallen.com" {
				t.Errorf("payments = %+v", h.authorizer.payments)
			}
			if len(h.memory.CartSaves) != 1 || len(h.memory.Cart()) != 0 {
				t.Errorf("cart after checkout = %+v", h.memory.Cart())
			}
			if !strings.Contains(h.output.String(), "Authenticating with paypal using [cameron@cameronpallen.com]...") {
				t.Errorf("output:\n%s", h.output.String())
			}
		})
	}
}

func TestRun_PayPalInvalidEmail(t *testing.T) {
	for _, email := range []string{"cameron", "cameron@.com", "cameron@example.com.", "@example.com"} {
		h := newHarness(twoLineCart(), email+"\n")
		if _, err := h.flow.Run(context.Background(), MethodPayPal); !errors.Is(err, ErrValidation) {
			t.Errorf("email %q: error = %v, want ErrValidation", email, err)
		}
	}
}

func TestRun_EmptyCart(t *testing.T) {
	h := newHarness(store.NewMemory(nil, nil), "")

	result, err := h.flow.Run(context.Background(), MethodCard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Placed {
		t.Error("empty cart placed an order")
	}
	if got := h.output.String(); got != "Please add items to cart before checking out.\n" {
		t.Errorf("output = %q", got)
	}
	if len(h.memory.CartSaves) != 0 {
		t.Error("empty checkout wrote the cart")
	}
}

func TestRun_AuthorizationFailure(t *testing.T) {
	h := newHarness(twoLineCart(), "1111222233334567\n123\n0719\n97330\nfake addy\ny\n")
	h.authorizer.err = errors.New("declined")

	if _, err := h.flow.Run(context.Background(), MethodCard); err == nil || !strings.Contains(err.Error(), "declined") {
		t.Fatalf("error = %v, want authorization failure", err)
	}
	if len(h.memory.CartSaves) != 0 {
		t.Error("failed authorization wrote the cart")
	}
}

func TestRun_InputEndsEarly(t *testing.T) {
	h := newHarness(twoLineCart(), "1111222233334567\n")
	if _, err := h.flow.Run(context.Background(), MethodCard); !errors.Is(err, ErrAborted) {
		t.Errorf("error = %v, want ErrAborted", err)
	}
}

func TestParseMethod(t *testing.T) {
	for _, method := range Methods {
		got, err := ParseMethod(string(method))
		if err != nil || got != method {
			t.Errorf("ParseMethod(%q) = %q, %v", method, got, err)
		}
	}
	if _, err := ParseMethod("cash"); !errors.Is(err, ErrValidation) {
		t.Errorf("ParseMethod(cash) error = %v, want ErrValidation", err)
	}
}

func TestMockAuthorizer(t *testing.T) {
	first, err := MockAuthorizer{}.Authorize(context.Background(), Payment{Method: MethodCard, Card: Card{Number: "1111222233334567"}})
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	second, _ := MockAuthorizer{}.Authorize(context.Background(), Payment{Method: MethodPayPal})
	if first.ID == uuid.Nil || first.ID == second.ID {
		t.Errorf("authorization ids = %s, %s; want distinct non-nil", first.ID, second.ID)
	}
}
