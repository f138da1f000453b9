// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Backend)
)

// Register adds a backend to the registry.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	meta := b.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("backend %q already registered", meta.Name))
	}
	registry[meta.Name] = b
}

// Get returns a backend by name.
func Get(name string) (Backend, bool) {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := registry[name]
	return g, ok
}

// List returns all registered backend names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered backends, sorted by name.
func All() []Backend {
	mu.RLock()
	defer mu.RUnlock()
	backends := make([]Backend, 0, len(registry))
	for _, b := range registry {
		backends = append(backends, b)
	}
	slices.SortFunc(backends, func(a, b Backend) int {
		return strings.Compare(a.Metadata().Name, b.Metadata().Name)
	})
	return backends
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Backend)
}
