// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/albertocavalcante/bindgen/generator"
	"github.com/albertocavalcante/bindgen/internal/config"
	"github.com/albertocavalcante/bindgen/internal/driver"
	"github.com/albertocavalcante/bindgen/internal/load"
)

func newGenerateCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "generate [flags] <model.json | URL | ->",
		Short: "Generate bindings from a declaration model",
		Long: `Generate bindings from a declaration model.

The model is read from a file, an http(s) URL, or standard input ("-").
Settings come from the optional TOML file given with --config; flags set on
the command line override it. With one output file and no --output the
file is written to standard output; several files are written as a txtar
archive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, configPath, args[0])
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runGenerate(cmd *cobra.Command, configPath, source string) error {
	log := newLogger(cmd, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	log.Debug("configuration", zap.String("config", cfg.String()))

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	res, err := load.Load(ctx, load.Options{
		Source: source,
		Stdin:  cmd.InOrStdin(),
		Logger: log,
	})
	if err != nil {
		return errors.Wrap(err, "load model")
	}
	log.Info("model loaded",
		zap.String("source", res.Source),
		zap.Int("units", len(res.Units)),
		zap.String("digest", res.Digest))

	if len(cfg.Only) > 0 {
		keep, err := generator.ResolveDeps(res.Units, cfg.Only)
		if err != nil {
			return err
		}
		generator.Restrict(res.Units, keep)
		log.Info("restricted model", zap.Strings("declarations", generator.Kept(keep)))
	}

	d := driver.New(generator.NewContext(cfg.Generator, log))
	out, err := d.Run(ctx, driver.Plan(cfg.Backends, res.Units, cfg.PerUnit))
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err := cmd.OutOrStdout().Write(driver.Archive(out))
		return err
	}
	if err := driver.WriteDir(cfg.Output, out); err != nil {
		return err
	}
	for _, name := range out.Names() {
		log.Info("wrote", zap.String("dir", cfg.Output), zap.String("file", name))
	}
	return nil
}
