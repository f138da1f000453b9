// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "go.uber.org/zap"

// Kind identifies the output language family of a generator.
type Kind string

const (
	CSharp Kind = "csharp"
	Go     Kind = "go"
)

// defaultCommentPrefixes are the documentation line prefixes used when the
// options do not override them.
var defaultCommentPrefixes = map[Kind]string{
	CSharp: "///",
	Go:     "//",
}

// Options contains generation settings. They are read-only for the duration
// of a run.
type Options struct {
	// CommentPrefixes overrides the documentation comment prefix per
	// generator kind (keyed by the kind's string value).
	CommentPrefixes map[string]string `toml:"comment_prefixes"`

	// GenerateDebugOutput emits "// DEBUG:" annotations for declarations
	// that carry debug text.
	GenerateDebugOutput bool `toml:"debug_output"`

	// CompileCode marks output that is compiled in-process right away
	// instead of being read by people. C# output then skips formatting.
	CompileCode bool `toml:"compile_code"`

	// OutputNamespace is the namespace or package generated code lives in.
	OutputNamespace string `toml:"output_namespace"`

	// LibraryName is the native library bindings load symbols from.
	LibraryName string `toml:"library"`

	// PreambleStyle names the comment style of the file preamble
	// ("bcpl", "bcplslash", "bcplexcl", "c", "javadoc", "qt"). Empty
	// keeps the backend's own style.
	PreambleStyle string `toml:"preamble_style"`

	// StripComments drops documentation comments from the output.
	StripComments bool `toml:"strip_comments"`

	// Options contains backend-specific options.
	Options map[string]string `toml:"options"`
}

// CommentPrefix returns the documentation comment prefix for kind.
func (o *Options) CommentPrefix(kind Kind) string {
	if p, ok := o.CommentPrefixes[string(kind)]; ok && p != "" {
		return p
	}
	if p, ok := defaultCommentPrefixes[kind]; ok {
		return p
	}
	return "//"
}

// Option returns a backend-specific option with default.
func (o *Options) Option(key, defaultValue string) string {
	if v, ok := o.Options[key]; ok {
		return v
	}
	return defaultValue
}

// Context is the shared, immutable state handed to every generator of a
// run. It is safe to share between generators running concurrently.
type Context struct {
	Options Options
	Logger  *zap.Logger
}

// NewContext returns a context for opts. A nil logger discards output.
func NewContext(opts Options, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{Options: opts, Logger: logger}
}
