// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build !bindgen_minimal

package main

import (
	"github.com/albertocavalcante/bindgen/generator"
	"github.com/albertocavalcante/bindgen/generators/csharp"
	"github.com/albertocavalcante/bindgen/generators/golang"
)

func init() {
	// Default build: every backend embedded
	generator.Register(csharp.NewBackend())
	generator.Register(golang.NewBackend())
}
