// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bindgen/ast"
)

// ErrNotImplemented matches every [CoverageError].
var ErrNotImplemented = errors.New("declaration kind not implemented")

// CoverageError reports a declaration the active backend has no handler
// for. It is fatal for the artifact being generated.
type CoverageError struct {
	// Backend is the generator kind that lacks the handler.
	Backend Kind

	// Handler is the visitor method that has no implementation.
	Handler string

	// Variant names the declaration kind.
	Variant string

	// Name is the qualified name of the offending declaration.
	Name string
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("%s backend does not handle %s %q (%s)", e.Backend, e.Variant, e.Name, e.Handler)
}

func (e *CoverageError) Unwrap() error { return ErrNotImplemented }

// notImplemented builds the coverage error for d, with a hint naming the
// handler to implement.
func (g *CodeGenerator) notImplemented(handler, variant string, d *ast.Declaration) error {
	err := &CoverageError{
		Backend: g.kind,
		Handler: handler,
		Variant: variant,
		Name:    qualifiedName(d),
	}
	return errors.WithHintf(err, "implement %s in the %s backend", handler, g.kind)
}

func qualifiedName(d *ast.Declaration) string {
	if owner := d.Owner(); owner != nil {
		if q := ast.QualifiedName(owner); q != "" {
			return q + "::" + d.Name
		}
	}
	return d.Name
}
