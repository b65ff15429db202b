// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cameronpallen/grocery/lib/codec"
	"github.com/cameronpallen/grocery/lib/schema"
)

// productRecord is the on-disk shape of a catalog product. Price is a
// pointer so an absent price is distinguishable from zero.
type productRecord struct {
	Name  string  `json:"Name"`
	Unit  string  `json:"Unit of Measure"`
	Price *amount `json:"Price"`
}

// cartRecord is the on-disk shape of a cart line. Reference lines set
// ProductID and leave the product fields empty.
type cartRecord struct {
	Name      string  `json:"Name,omitempty"`
	Unit      string  `json:"Unit of Measure,omitempty"`
	Price     *amount `json:"Price,omitempty"`
	ProductID *int    `json:"product_id,omitempty"`
	Quantity  *amount `json:"Quantity"`
}

// amount is a decimal written as a bare JSON number and as a CBOR text
// string, so no precision is lost in either format.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a *amount) UnmarshalJSON(data []byte) error {
	return (*decimal.Decimal)(a).UnmarshalJSON(data)
}

func (a amount) MarshalCBOR() ([]byte, error) {
	return codec.MarshalCBOR(decimal.Decimal(a).String())
}

func (a *amount) UnmarshalCBOR(data []byte) error {
	var text string
	if err := codec.UnmarshalCBOR(data, &text); err != nil {
		return err
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return err
	}
	*a = amount(value)
	return nil
}

func productToRecord(product schema.Product) productRecord {
	price := amount(product.Price)
	return productRecord{Name: product.Name, Unit: product.Unit, Price: &price}
}

func productFromRecord(record productRecord) (schema.Product, error) {
	price, err := positive("Price", record.Price)
	if err != nil {
		return schema.Product{}, err
	}
	return schema.Product{Name: record.Name, Unit: record.Unit, Price: price}, nil
}

// positive returns the value of a required amount field, rejecting an
// absent, zero or negative value.
func positive(field string, value *amount) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Decimal{}, fmt.Errorf("%s is missing", field)
	}
	if !decimal.Decimal(*value).IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%s %s is not greater than zero", field, decimal.Decimal(*value))
	}
	return decimal.Decimal(*value), nil
}

func lineToRecord(line schema.CartLine) (cartRecord, error) {
	quantity := amount(line.Quantity)
	record := cartRecord{Quantity: &quantity}
	switch source := line.Source.(type) {
	case schema.DirectLine:
		price := amount(source.Price)
		record.Name = source.Name
		record.Unit = source.Unit
		record.Price = &price
	case schema.ReferenceLine:
		productID := source.ProductID
		record.ProductID = &productID
	default:
		return cartRecord{}, fmt.Errorf("cart line has unknown source %T", line.Source)
	}
	return record, nil
}

func lineFromRecord(record cartRecord) (schema.CartLine, error) {
	quantity, err := positive("Quantity", record.Quantity)
	if err != nil {
		return schema.CartLine{}, err
	}
	line := schema.CartLine{Quantity: quantity}
	switch {
	case record.ProductID != nil:
		line.Source = schema.ReferenceLine{ProductID: *record.ProductID}
	case record.Price != nil:
		price, err := positive("Price", record.Price)
		if err != nil {
			return schema.CartLine{}, err
		}
		line.Source = schema.DirectLine{Name: record.Name, Unit: record.Unit, Price: price}
	default:
		return schema.CartLine{}, errors.New("cart line has neither product_id nor Price")
	}
	return line, nil
}
