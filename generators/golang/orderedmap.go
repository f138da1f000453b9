// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import "strconv"

// orderedMap maintains insertion order for deterministic output.
type orderedMap[T any] struct {
	m     map[string]T
	order []string
}

func newOrderedMap[T any]() *orderedMap[T] {
	return &orderedMap[T]{
		m: make(map[string]T),
	}
}

func (m *orderedMap[T]) set(key string, value T) {
	if _, exists := m.m[key]; !exists {
		m.order = append(m.order, key)
	}
	m.m[key] = value
}

func (m *orderedMap[T]) keys() []string {
	return m.order
}

// declare reserves a package-level identifier for the declaration with
// the given qualified name. Go has no overloading, so a second C++
// overload of the same name gets a numeric suffix ("Scale2").
func (m *orderedMap[T]) declare(name string, value T) string {
	unique := name
	for i := 2; ; i++ {
		if _, taken := m.m[unique]; !taken {
			break
		}
		unique = name + strconv.Itoa(i)
	}
	m.set(unique, value)
	return unique
}
