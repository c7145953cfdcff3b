/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scanstore

import (
	"fmt"
	"sync"
)

// Registry is a higher-level interface that manages a collection of Scanner instances.
// Note that its methods are not generic; they use the empty interface (any) to store and retrieve Scanners.
type Registry interface {
	// RegisterScanner registers a Scanner under a given key (for example, "devices" or "datasets").
	RegisterScanner(key string, sc any) error
	// GetScanner retrieves the registered Scanner for a given key.
	// The caller must type-assert the returned value to the appropriate Scanner type.
	GetScanner(key string) (any, error)
}

// scannerRegistry is a thread-safe implementation of the Registry interface.
type scannerRegistry struct {
	mu       sync.RWMutex
	scanners map[string]any
}

// NewRegistry creates and returns a new Registry implementation.
func NewRegistry() Registry {
	return &scannerRegistry{
		scanners: make(map[string]any),
	}
}

// RegisterScanner stores the provided Scanner under the given key.
func (sr *scannerRegistry) RegisterScanner(key string, sc any) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if _, exists := sr.scanners[key]; exists {
		return fmt.Errorf("scanner with key %q already registered", key)
	}
	sr.scanners[key] = sc
	return nil
}

// GetScanner retrieves the Scanner associated with the given key.
func (sr *scannerRegistry) GetScanner(key string) (any, error) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	sc, exists := sr.scanners[key]
	if !exists {
		return nil, fmt.Errorf("scanner with key %q not found", key)
	}
	return sc, nil
}
