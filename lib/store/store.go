// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cameronpallen/grocery/lib/codec"
	"github.com/cameronpallen/grocery/lib/schema"
)

// Locker serializes critical sections across processes. *lock.File
// satisfies it.
type Locker interface {
	With(ctx context.Context, body func() error) error
}

// Collections is the load/save surface shared by [Store] and [Memory].
// Load and save methods do not lock; callers wrap them in WithLock or
// use the scoped transaction helpers.
type Collections interface {
	WithLock(ctx context.Context, body func() error) error
	LoadProducts() (schema.Products, error)
	SaveProducts(products schema.Products) error
	LoadCart() (schema.Cart, error)
	SaveCart(cart schema.Cart) error
}

// Options configures a file-backed Store.
type Options struct {
	// ProductsPath and CartPath are the collection files.
	ProductsPath string
	CartPath     string

	// Format is the encoding used for both files.
	Format codec.Format

	// Locker guards every transaction.
	Locker Locker

	// Logger receives debug-level load/save records. Nil discards.
	Logger *slog.Logger
}

// Store keeps the two collections in files.
type Store struct {
	productsPath string
	cartPath     string
	format       codec.Format
	locker       Locker
	logger       *slog.Logger
}

// New returns a Store for the given options.
func New(options Options) (*Store, error) {
	if options.ProductsPath == "" || options.CartPath == "" {
		return nil, errors.New("store: products and cart paths are required")
	}
	if options.ProductsPath == options.CartPath {
		return nil, fmt.Errorf("store: products and cart share the path %s", options.CartPath)
	}
	if options.Locker == nil {
		return nil, errors.New("store: a locker is required")
	}
	format, err := codec.ParseFormat(string(options.Format))
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		productsPath: options.ProductsPath,
		cartPath:     options.CartPath,
		format:       format,
		locker:       options.Locker,
		logger:       logger,
	}, nil
}

// Path returns the file backing collection.
func (s *Store) Path(collection schema.Collection) string {
	if collection == schema.ProductsCollection {
		return s.productsPath
	}
	return s.cartPath
}

// WithLock runs body while holding the cross-process lock.
func (s *Store) WithLock(ctx context.Context, body func() error) error {
	return s.locker.With(ctx, body)
}

// LoadProducts reads the catalog. A missing file is an empty catalog.
func (s *Store) LoadProducts() (schema.Products, error) {
	records, err := load[productRecord](s, s.productsPath)
	if err != nil {
		return nil, err
	}
	products := make(schema.Products, len(records))
	for id, record := range records {
		product, err := productFromRecord(record)
		if err != nil {
			return nil, &MalformedError{Path: s.productsPath, Err: fmt.Errorf("product %d: %w", id, err)}
		}
		products[id] = product
	}
	return products, nil
}

// SaveProducts overwrites the catalog file.
func (s *Store) SaveProducts(products schema.Products) error {
	records := make(map[string]productRecord, len(products))
	for id, product := range products {
		records[strconv.Itoa(id)] = productToRecord(product)
	}
	return save(s, s.productsPath, records)
}

// LoadCart reads the cart. A missing file is an empty cart.
func (s *Store) LoadCart() (schema.Cart, error) {
	records, err := load[cartRecord](s, s.cartPath)
	if err != nil {
		return nil, err
	}
	cart := make(schema.Cart, len(records))
	for id, record := range records {
		line, err := lineFromRecord(record)
		if err != nil {
			return nil, &MalformedError{Path: s.cartPath, Err: fmt.Errorf("line %d: %w", id, err)}
		}
		cart[id] = line
	}
	return cart, nil
}

// SaveCart overwrites the cart file.
func (s *Store) SaveCart(cart schema.Cart) error {
	records := make(map[string]cartRecord, len(cart))
	for id, line := range cart {
		record, err := lineToRecord(line)
		if err != nil {
			return fmt.Errorf("encoding cart line %d: %w", id, err)
		}
		records[strconv.Itoa(id)] = record
	}
	return save(s, s.cartPath, records)
}

// load decodes path into a map keyed by integer id.
func load[R any](s *Store, path string) (map[int]R, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("collection file absent", "path", path)
		return map[int]R{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw map[string]R
	if err := s.format.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedError{Path: path, Err: err, Diagnostic: s.diagnose(data)}
	}

	records := make(map[int]R, len(raw))
	for key, record := range raw {
		id, err := strconv.Atoi(key)
		if err != nil || id < 0 {
			return nil, &MalformedError{Path: path, Err: fmt.Errorf("key %q is not a non-negative integer id", key)}
		}
		records[id] = record
	}
	s.logger.Debug("collection loaded", "path", path, "records", len(records))
	return records, nil
}

// maxDiagnostic bounds the diagnostic notation quoted in errors.
const maxDiagnostic = 200

// diagnose renders undecodable CBOR data for an error message. It
// returns "" for other formats and for data that is not well-formed
// CBOR at all.
func (s *Store) diagnose(data []byte) string {
	if s.format != codec.CBOR {
		return ""
	}
	diagnostic, err := codec.Diagnose(data)
	if err != nil {
		return ""
	}
	if len(diagnostic) > maxDiagnostic {
		diagnostic = diagnostic[:maxDiagnostic] + "..."
	}
	return diagnostic
}

func save[R any](s *Store, path string, records map[string]R) error {
	data, err := s.format.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := writeAtomic(path, data); err != nil {
		return err
	}
	s.logger.Debug("collection saved", "path", path, "records", len(records))
	return nil
}

// writeAtomic writes data to a temporary file in the same directory,
// fsyncs it and renames it over path.
func writeAtomic(path string, data []byte) error {
	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", directory, err)
	}

	temporaryPath := path + ".tmp"
	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating temporary collection file: %w", err)
	}

	// Write, sync, close, in that order. If any step fails, remove the
	// temporary file and report the first error.
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary collection file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary collection file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary collection file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming collection file into place: %w", err)
	}

	parentDirectory, err := os.Open(directory)
	if err == nil {
		parentDirectory.Sync()
		parentDirectory.Close()
	}
	return nil
}
