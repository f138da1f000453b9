// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package load reads a declaration model produced by a C/C++ frontend.
package load

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/albertocavalcante/bindgen/ast"
)

// Stdin is the source name that reads the model from standard input.
const Stdin = "-"

// Options configures where the model is read from.
type Options struct {
	// Source is a file path, an http(s) URL, or Stdin.
	Source string

	// Stdin is read when Source is Stdin. Defaults to os.Stdin.
	Stdin io.Reader

	// Timeout for network operations.
	Timeout time.Duration

	// Client performs HTTP requests. Defaults to http.DefaultClient.
	Client *http.Client

	Logger *zap.Logger
}

// Result contains the loaded model and where it came from.
type Result struct {
	// Units are the translation units of the model, in input order.
	Units []*ast.TranslationUnit

	// Source describes where the model was loaded from.
	Source string

	// Digest is the hex SHA-256 of the raw model.
	Digest string
}

// Load reads and decodes the model described by opts.
func Load(ctx context.Context, opts Options) (*Result, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var (
		data   []byte
		source string
		err    error
	)
	switch {
	case opts.Source == "":
		return nil, errors.WithHint(errors.New("no model source"), "pass a model file, a URL, or - for stdin")
	case opts.Source == Stdin:
		r := opts.Stdin
		if r == nil {
			r = os.Stdin
		}
		data, err = io.ReadAll(r)
		source = "stdin"
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
	case strings.HasPrefix(opts.Source, "http://"), strings.HasPrefix(opts.Source, "https://"):
		data, err = fetch(ctx, opts)
		source = opts.Source
		if err != nil {
			return nil, err
		}
	default:
		data, err = os.ReadFile(opts.Source)
		source = "file://" + opts.Source
		if err != nil {
			return nil, errors.Wrap(err, "read file")
		}
	}

	res, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse model from %s", source)
	}
	res.Source = source
	opts.Logger.Debug("loaded model",
		zap.String("source", source),
		zap.Int("units", len(res.Units)),
		zap.String("digest", res.Digest))
	return res, nil
}

// Decode parses a model held in memory.
func Decode(data []byte) (*Result, error) {
	units, err := ast.DecodeUnits(data)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, errors.New("model has no translation units")
	}
	sum := sha256.Sum256(data)
	return &Result{Units: units, Digest: hex.EncodeToString(sum[:])}, nil
}

// fetch downloads the model over HTTP.
func fetch(ctx context.Context, opts Options) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.Source, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", opts.Source)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("fetch %s: HTTP %d", opts.Source, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", opts.Source)
	}
	return data, nil
}
