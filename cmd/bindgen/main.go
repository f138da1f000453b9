// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command bindgen generates language bindings from a C/C++ declaration
// model.
//
// Usage:
//
//	bindgen generate [flags] <model.json | URL | ->
//	bindgen backends
//	bindgen version
//
// Generate flags:
//
//	-c, --config          TOML configuration file
//	-b, --backend         Backends to run (default: csharp)
//	-o, --output          Output directory (default: stdout)
//	-n, --namespace       Namespace or package of the generated code
//	--library             Native library the bindings load symbols from
//	--per-unit            Generate one file per translation unit
//	--only                Generate only these qualified names and their dependencies
//	--debug               Emit DEBUG annotations for declarations
//	--compile             Produce output meant for immediate compilation
//	--option              Backend-specific option (key=value)
//	--comment-prefix      Documentation comment prefix per kind (kind=prefix)
//	--preamble-style      Comment style of the file preamble
//	--strip-comments      Drop documentation comments from the output
//	-v, --verbose         Increase log verbosity (repeatable)
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
