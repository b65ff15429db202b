// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects the on-disk encoding of a collection file.
type Format string

const (
	// JSON is compact JSON.
	JSON Format = "json"
	// CBOR is deterministic CBOR.
	CBOR Format = "cbor"
)

// ParseFormat returns the Format named by s (case-insensitive). An
// empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", JSON:
		return JSON, nil
	case CBOR:
		return CBOR, nil
	default:
		return "", fmt.Errorf("unknown storage format %q (want %q or %q)", s, JSON, CBOR)
	}
}

// Marshal encodes v in this format.
func (f Format) Marshal(v any) ([]byte, error) {
	switch f {
	case JSON, "":
		return json.Marshal(v)
	case CBOR:
		return MarshalCBOR(v)
	default:
		return nil, fmt.Errorf("unknown storage format %q", string(f))
	}
}

// Unmarshal decodes data in this format into v.
func (f Format) Unmarshal(data []byte, v any) error {
	switch f {
	case JSON, "":
		return json.Unmarshal(data, v)
	case CBOR:
		return UnmarshalCBOR(data, v)
	default:
		return fmt.Errorf("unknown storage format %q", string(f))
	}
}
