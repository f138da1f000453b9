// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package driver runs backends over a loaded model.
//
// Each artifact gets its own generator and buffer; the model and the
// generator context are shared read-only, so artifacts are generated
// concurrently.
package driver

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/bindgen/ast"
	"github.com/albertocavalcante/bindgen/generator"
)

// ErrUnknownBackend is returned for backend names that are not registered.
var ErrUnknownBackend = errors.New("unknown backend")

// Artifact is one output file to produce: a backend bound to units, the
// first of which is primary.
type Artifact struct {
	Backend string
	Units   []*ast.TranslationUnit
}

// Plan lists the artifacts for backends over units. With perUnit every
// unit becomes its own artifact; otherwise each backend produces one
// artifact for the whole model.
func Plan(backends []string, units []*ast.TranslationUnit, perUnit bool) []Artifact {
	var arts []Artifact
	for _, b := range backends {
		if !perUnit {
			arts = append(arts, Artifact{Backend: b, Units: units})
			continue
		}
		for _, u := range units {
			arts = append(arts, Artifact{Backend: b, Units: []*ast.TranslationUnit{u}})
		}
	}
	return arts
}

// Driver generates artifacts.
type Driver struct {
	ctx *generator.Context
	log *zap.Logger

	// Lookup resolves backend names. Defaults to generator.Get.
	Lookup func(name string) (generator.Backend, bool)

	// Concurrency bounds the number of artifacts generated at once.
	// Defaults to GOMAXPROCS.
	Concurrency int
}

// New returns a driver whose generators share gctx.
func New(gctx *generator.Context) *Driver {
	return &Driver{
		ctx:    gctx,
		log:    gctx.Logger.Named("driver"),
		Lookup: generator.Get,
	}
}

// Run generates every artifact and collects the files. The first failure
// cancels the artifacts not yet started and is returned.
func (d *Driver) Run(ctx context.Context, arts []Artifact) (*generator.Output, error) {
	backends := make([]generator.Backend, len(arts))
	for i, a := range arts {
		b, ok := d.Lookup(a.Backend)
		if !ok {
			return nil, errors.WithHintf(errors.Wrapf(ErrUnknownBackend, "%q", a.Backend),
				"available backends: %s", strings.Join(generator.List(), ", "))
		}
		if len(a.Units) == 0 {
			return nil, errors.Newf("artifact %d (%s) has no translation units", i, a.Backend)
		}
		backends[i] = b
	}

	type result struct {
		path    string
		content string
	}
	results := make([]result, len(arts))

	limit := d.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, a := range arts {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			g, err := backends[i].New(d.ctx, a.Units)
			if err != nil {
				return errors.Wrapf(err, "%s: create generator for %s", a.Backend, a.Units[0].FilePath)
			}
			content, err := generator.Run(g)
			if err != nil {
				return errors.Wrapf(err, "%s: generate %s", a.Backend, g.FilePath())
			}
			results[i] = result{path: g.FilePath(), content: content}
			d.log.Info("generated",
				zap.String("backend", a.Backend),
				zap.String("file", g.FilePath()),
				zap.Int("units", len(a.Units)),
				zap.Int("bytes", len(content)),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := generator.NewOutput()
	owner := make(map[string]int, len(results))
	for i, r := range results {
		if j, dup := owner[r.path]; dup {
			return nil, errors.WithHint(
				errors.Newf("artifacts %d (%s) and %d (%s) both produce %s", j, arts[j].Backend, i, arts[i].Backend, r.path),
				"translation units with the same base name cannot each get their own file; rename them or generate without --per-unit")
		}
		owner[r.path] = i
		out.Add(r.path, []byte(r.content))
	}
	return out, nil
}

// WriteDir writes every file of out below dir, creating it as needed.
func WriteDir(dir string, out *generator.Output) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	for _, name := range out.Names() {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.Wrapf(err, "create directory for %s", name)
		}
		if err := os.WriteFile(path, out.Files[name], 0o644); err != nil {
			return errors.Wrapf(err, "write %s", name)
		}
	}
	return nil
}

// Archive renders out for a single stream. One file is returned as is;
// several are bundled as a txtar archive, one member per file.
func Archive(out *generator.Output) []byte {
	names := out.Names()
	if len(names) == 1 {
		return out.Files[names[0]]
	}
	ar := &txtar.Archive{}
	for _, name := range names {
		ar.Files = append(ar.Files, txtar.File{Name: name, Data: out.Files[name]})
	}
	return txtar.Format(ar)
}
