/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// KeySchemaRegistry associates Go types with the key attribute names of the
// table they are scanned from. The executor uses a registered schema to check
// that a supplied exclusive start key covers every key attribute.

var (
	keySchemaRegistry = make(map[reflect.Type][]string)
	mu                sync.RWMutex
)

// RegisterKeySchema associates a Go type T with the table's key attribute names
// (for example, []string{"PK", "SK"}).
func RegisterKeySchema[T any](keyAttributes []string) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	keySchemaRegistry[t] = keyAttributes
}

// GetKeySchema retrieves the key attribute names for type T, if any.
func GetKeySchema[T any]() ([]string, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	attrs, ok := keySchemaRegistry[t]
	return attrs, ok
}
