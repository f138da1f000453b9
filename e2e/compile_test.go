// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Package e2e provides end-to-end compile verification tests.
// These tests verify that generated code is valid and compilable.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Tool installation instructions
var installInstructions = map[string]string{
	"go":     "Go is required. Install from https://go.dev/dl/",
	"dotnet": "The .NET SDK is required. Install from https://dot.net/",
}

// requireTool fails the test if the tool is not available.
func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		instruction := installInstructions[name]
		if instruction == "" {
			instruction = fmt.Sprintf("Install %s and ensure it's in PATH", name)
		}
		t.Fatalf("%s not found in PATH.\n%s", name, instruction)
	}
}

// compileModel only references types it declares, so its bindings build
// without any other code.
const compileModel = `{
  "units": [
    {
      "kind": "translationUnit",
      "file": "include/geo.h",
      "decls": [
        {
          "kind": "namespace",
          "name": "geo",
          "decls": [
            {
              "kind": "class",
              "name": "Circle",
              "decls": [
                {"kind": "field", "name": "radius", "type": {"kind": "builtin", "name": "double"}},
                {"kind": "method", "name": "Circle", "flags": ["constructor"], "params": [{"name": "r", "type": {"kind": "builtin", "name": "double"}}]},
                {"kind": "method", "name": "area", "returnType": {"kind": "builtin", "name": "double"}}
              ]
            },
            {
              "kind": "enum",
              "name": "Color",
              "flags": ["flags"],
              "items": [{"name": "Red", "value": 1}, {"name": "Green", "value": 2}]
            },
            {"kind": "typedef", "name": "Real", "type": {"kind": "builtin", "name": "double"}},
            {
              "kind": "function",
              "name": "scale",
              "params": [
                {"name": "c", "type": {"kind": "pointer", "element": {"kind": "reference", "name": "geo::Circle"}}},
                {"name": "factor", "type": {"kind": "reference", "name": "geo::Real"}}
              ]
            },
            {
              "kind": "function",
              "name": "scale",
              "params": [{"name": "c", "type": {"kind": "pointer", "element": {"kind": "reference", "name": "geo::Circle"}}}]
            }
          ]
        },
        {"kind": "variable", "name": "epsilon", "type": {"kind": "builtin", "name": "double", "const": true}, "expression": "1e-9"},
        {"kind": "macro", "name": "GEO_VERSION", "expression": "3"}
      ]
    }
  ]
}`

// TestGoOutputCompiles verifies that generated Go code compiles and passes vet.
func TestGoOutputCompiles(t *testing.T) {
	requireTool(t, "go")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tmpDir := t.TempDir()
	modDir := filepath.Join(tmpDir, "geotest")
	input := filepath.Join(tmpDir, "geo.json")
	if err := os.WriteFile(input, []byte(compileModel), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, stderr, err := run(t, "generate", "-b", "go", "-n", "geotest", "-o", modDir, input); err != nil {
		t.Fatalf("bindgen generate: %v\n%s", err, stderr)
	}
	if err := os.WriteFile(filepath.Join(modDir, "go.mod"), []byte("module geotest\n\ngo 1.22\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}

	for _, args := range [][]string{{"build", "./..."}, {"vet", "./..."}} {
		t.Run("go_"+args[0], func(t *testing.T) {
			start := time.Now()
			cmd := exec.CommandContext(ctx, "go", args...)
			cmd.Dir = modDir
			var stderr bytes.Buffer
			cmd.Stderr = &stderr
			if err := cmd.Run(); err != nil {
				t.Fatalf("go %s failed: %v\n%s", args[0], err, stderr.String())
			}
			t.Logf("go %s: %v", args[0], time.Since(start))
		})
	}
}

// TestCSharpOutputCompiles builds the generated C# as a library when the
// .NET SDK is installed.
func TestCSharpOutputCompiles(t *testing.T) {
	if _, err := exec.LookPath("dotnet"); err != nil {
		t.Skip("dotnet not installed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	tmpDir := t.TempDir()
	projDir := filepath.Join(tmpDir, "geotest")
	input := filepath.Join(tmpDir, "geo.json")
	if err := os.WriteFile(input, []byte(compileModel), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, stderr, err := run(t, "generate", "-b", "csharp", "-o", projDir, input); err != nil {
		t.Fatalf("bindgen generate: %v\n%s", err, stderr)
	}

	csproj := `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <OutputType>Library</OutputType>
    <AllowUnsafeBlocks>true</AllowUnsafeBlocks>
  </PropertyGroup>
</Project>
`
	if err := os.WriteFile(filepath.Join(projDir, "geotest.csproj"), []byte(csproj), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.CommandContext(ctx, "dotnet", "build", "--nologo")
	cmd.Dir = projDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("dotnet build failed: %v\n%s", err, out)
	}
}

// TestMinimalBuild verifies the bindgen_minimal build embeds only the C#
// backend.
func TestMinimalBuild(t *testing.T) {
	requireTool(t, "go")

	path := filepath.Join(t.TempDir(), "bindgen-minimal")
	if err := buildBinary(context.Background(), path, "-tags", "bindgen_minimal"); err != nil {
		t.Fatal(err)
	}

	out, err := exec.Command(path, "backends").Output()
	if err != nil {
		t.Fatalf("backends: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "csharp ") {
		t.Errorf("unexpected backends:\n%s", out)
	}
}
