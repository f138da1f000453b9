// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/albertocavalcante/bindgen/generator"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bindgen",
		Short: "Generate language bindings from C/C++ declarations",
		Long: `bindgen walks a declaration model produced by a C/C++ frontend and emits
bindings for one or more target languages.

Examples:
  bindgen generate geo.json                     # C# to stdout
  bindgen generate -b csharp,go -o out/ geo.json
  bindgen generate -c bindgen.toml geo.json
  frontend geo.h | bindgen generate -b go -`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	root.AddCommand(newGenerateCmd(), newBackendsCmd(), newVersionCmd())
	return root
}

// newLogger returns a console logger on w. Warnings and errors are always
// shown; each -v lowers the threshold by one level.
func newLogger(cmd *cobra.Command, w io.Writer) *zap.Logger {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	level := zapcore.WarnLevel
	switch {
	case verbosity >= 2:
		level = zapcore.DebugLevel
	case verbosity == 1:
		level = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the compiled-in backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tVERSION\tDESCRIPTION")
			for _, b := range generator.All() {
				md := b.Metadata()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", md.Name, md.Kind, md.Version, md.Description)
			}
			return tw.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bindgen %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
