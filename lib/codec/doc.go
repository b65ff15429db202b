// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the serialization formats for the grocery
// collection files.
//
// Two formats are supported, selected by [Format]:
//
//   - [JSON] (the default): compact JSON, byte-compatible with files
//     written by earlier versions of the tool.
//   - [CBOR]: Core Deterministic Encoding (RFC 8949 §4.2): sorted map
//     keys, smallest integer encoding, no indefinite-length items. Same
//     logical data always produces identical bytes.
//
// Record types carry `json` struct tags only. fxamacker/cbor v2 reads
// `json` tags as a fallback when `cbor` tags are absent, so one tag
// controls field naming and omitempty for both formats.
//
//	data, err := codec.CBOR.Marshal(value)
//	err = codec.CBOR.Unmarshal(data, &value)
package codec
