// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads generation settings from a TOML file and command
// line flags. Flags that were set explicitly override file values.
//
// Example file:
//
//	backends = ["csharp", "go"]
//	output = "bindings"
//	per_unit = true
//	only = ["geo::Circle", "geo::area"]
//
//	[generator]
//	output_namespace = "Geo"
//	library = "geo"
//	debug_output = false
//	compile_code = false
//	preamble_style = "bcplslash"
//	strip_comments = false
//
//	[generator.comment_prefixes]
//	csharp = "///"
//
//	[generator.options]
//	static_class = "GeoNative"
package config

import (
	"maps"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"github.com/albertocavalcante/bindgen/generator"
)

// DefaultBackend is used when neither the file nor the flags name one.
const DefaultBackend = "csharp"

// Config is the complete configuration of a generate run.
type Config struct {
	// Backends names the registered backends to run.
	Backends []string `toml:"backends"`

	// Output is the directory generated files are written to. Empty
	// means standard output.
	Output string `toml:"output"`

	// PerUnit generates one artifact per translation unit instead of one
	// artifact for the whole model.
	PerUnit bool `toml:"per_unit"`

	// Only restricts generation to these qualified declaration names and
	// the declarations they reference. Empty means everything.
	Only []string `toml:"only"`

	// Generator holds the options shared by every generator of the run.
	Generator generator.Options `toml:"generator"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{Backends: []string{DefaultBackend}}
}

// LoadFile reads a TOML configuration. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.WithHint(
			errors.Newf("config %s: unknown keys %s", path, strings.Join(keys, ", ")),
			"check the key names against the documented configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate reports configuration that cannot produce output.
func (c *Config) Validate() error {
	if len(c.Backends) == 0 {
		return errors.WithHint(errors.New("no backends configured"), "set backends in the config file or pass --backend")
	}
	for _, b := range c.Backends {
		if strings.TrimSpace(b) == "" {
			return errors.New("empty backend name")
		}
	}
	return nil
}

// Flag names.
const (
	FlagBackend       = "backend"
	FlagOutput        = "output"
	FlagPerUnit       = "per-unit"
	FlagOnly          = "only"
	FlagNamespace     = "namespace"
	FlagLibrary       = "library"
	FlagDebug         = "debug"
	FlagCompile       = "compile"
	FlagOption        = "option"
	FlagCommentPrefix = "comment-prefix"
	FlagPreambleStyle = "preamble-style"
	FlagStripComments = "strip-comments"
)

// RegisterFlags defines the flags that can override file values.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSliceP(FlagBackend, "b", nil, "Backends to run (default: "+DefaultBackend+")")
	fs.StringP(FlagOutput, "o", "", "Output directory (default: stdout)")
	fs.Bool(FlagPerUnit, false, "Generate one file per translation unit")
	fs.StringSlice(FlagOnly, nil, "Generate only these qualified names and their dependencies")
	fs.StringP(FlagNamespace, "n", "", "Namespace or package of the generated code")
	fs.String(FlagLibrary, "", "Native library the bindings load symbols from")
	fs.Bool(FlagDebug, false, "Emit DEBUG annotations for declarations")
	fs.Bool(FlagCompile, false, "Produce output meant for immediate compilation")
	fs.StringToString(FlagOption, nil, "Backend-specific option (key=value)")
	fs.StringToString(FlagCommentPrefix, nil, "Documentation comment prefix per backend kind (kind=prefix)")
	fs.String(FlagPreambleStyle, "", "Comment style of the file preamble (bcpl, bcplslash, bcplexcl, c, javadoc, qt)")
	fs.Bool(FlagStripComments, false, "Drop documentation comments from the output")
}

// ApplyFlags overrides c with every flag of fs that was set explicitly.
// Map-valued flags are merged into the file's tables.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err != nil || !fs.Changed(name) {
			return
		}
		if e := apply(); e != nil {
			err = errors.Wrapf(e, "flag --%s", name)
		}
	}

	set(FlagBackend, func() (e error) { c.Backends, e = fs.GetStringSlice(FlagBackend); return })
	set(FlagOutput, func() (e error) { c.Output, e = fs.GetString(FlagOutput); return })
	set(FlagPerUnit, func() (e error) { c.PerUnit, e = fs.GetBool(FlagPerUnit); return })
	set(FlagOnly, func() (e error) { c.Only, e = fs.GetStringSlice(FlagOnly); return })
	set(FlagNamespace, func() (e error) { c.Generator.OutputNamespace, e = fs.GetString(FlagNamespace); return })
	set(FlagLibrary, func() (e error) { c.Generator.LibraryName, e = fs.GetString(FlagLibrary); return })
	set(FlagDebug, func() (e error) { c.Generator.GenerateDebugOutput, e = fs.GetBool(FlagDebug); return })
	set(FlagCompile, func() (e error) { c.Generator.CompileCode, e = fs.GetBool(FlagCompile); return })
	set(FlagPreambleStyle, func() (e error) { c.Generator.PreambleStyle, e = fs.GetString(FlagPreambleStyle); return })
	set(FlagStripComments, func() (e error) { c.Generator.StripComments, e = fs.GetBool(FlagStripComments); return })
	set(FlagOption, func() error {
		m, e := fs.GetStringToString(FlagOption)
		c.Generator.Options = merge(c.Generator.Options, m)
		return e
	})
	set(FlagCommentPrefix, func() error {
		m, e := fs.GetStringToString(FlagCommentPrefix)
		c.Generator.CommentPrefixes = merge(c.Generator.CommentPrefixes, m)
		return e
	})
	if err != nil {
		return err
	}
	return c.Validate()
}

func merge(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// String renders c as TOML, for diagnostics.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return "# " + err.Error()
	}
	return sb.String()
}
