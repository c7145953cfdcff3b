/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scanstore

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/scanstore/datastore"
)

// TypedScanners provides type-safe scanner management for a specific type T
type TypedScanners[T any] struct {
	mu       sync.RWMutex
	scanners map[string]datastore.Scanner[T]
}

// NewTypedScanners creates a new TypedScanners for type T
func NewTypedScanners[T any]() *TypedScanners[T] {
	return &TypedScanners[T]{
		scanners: make(map[string]datastore.Scanner[T]),
	}
}

// Register adds a scanner with the given key
func (ts *TypedScanners[T]) Register(key string, sc datastore.Scanner[T]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.scanners[key]; exists {
		return fmt.Errorf("scanner with key %q already registered", key)
	}

	ts.scanners[key] = sc
	return nil
}

// Get retrieves a scanner by key
func (ts *TypedScanners[T]) Get(key string) (datastore.Scanner[T], error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	sc, exists := ts.scanners[key]
	if !exists {
		return nil, fmt.Errorf("scanner with key %q not found", key)
	}

	return sc, nil
}

// Remove deletes a scanner by key
func (ts *TypedScanners[T]) Remove(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.scanners[key]; !exists {
		return fmt.Errorf("scanner with key %q not found", key)
	}

	delete(ts.scanners, key)
	return nil
}

// List returns all registered scanner keys
func (ts *TypedScanners[T]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.scanners))
	for k := range ts.scanners {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeScanners manages TypedScanners instances for different types
type MultiTypeScanners struct {
	mu       sync.RWMutex
	scanners map[reflect.Type]interface{}
}

// NewMultiTypeScanners creates a new MultiTypeScanners
func NewMultiTypeScanners() *MultiTypeScanners {
	return &MultiTypeScanners{
		scanners: make(map[reflect.Type]interface{}),
	}
}

// GetTypedScanners returns a TypedScanners for the specified type, creating it if necessary
func GetTypedScanners[T any](mts *MultiTypeScanners) *TypedScanners[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if scanners, exists := mts.scanners[typ]; exists {
		return scanners.(*TypedScanners[T])
	}

	newScanners := NewTypedScanners[T]()
	mts.scanners[typ] = newScanners
	return newScanners
}

// RegisterScanner is a convenience function to register a scanner for type T
func RegisterScanner[T any](mts *MultiTypeScanners, key string, sc datastore.Scanner[T]) error {
	scanners := GetTypedScanners[T](mts)
	return scanners.Register(key, sc)
}

// GetScanner is a convenience function to get a scanner for type T
func GetScanner[T any](mts *MultiTypeScanners, key string) (datastore.Scanner[T], error) {
	scanners := GetTypedScanners[T](mts)
	return scanners.Get(key)
}

// RemoveScanner is a convenience function to remove a scanner for type T
func RemoveScanner[T any](mts *MultiTypeScanners, key string) error {
	scanners := GetTypedScanners[T](mts)
	return scanners.Remove(key)
}

// ListScanners is a convenience function to list all scanners for type T
func ListScanners[T any](mts *MultiTypeScanners) []string {
	scanners := GetTypedScanners[T](mts)
	return scanners.List()
}
