// SPDX-License-Identifier: MIT

// Package e2e provides end-to-end tests for the bindgen CLI.
package e2e

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/bindgen/internal/testutil"
)

var (
	binary string // path to built bindgen binary
	update = flag.Bool("update", false, "update golden files")
)

func TestMain(m *testing.M) {
	flag.Parse()

	tmpDir, err := os.MkdirTemp("", "bindgen-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binary = filepath.Join(tmpDir, "bindgen")
	if err := buildBinary(context.Background(), binary); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build binary: %v\n", err)
		os.RemoveAll(tmpDir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// buildBinary builds bindgen to outputPath, passing any extra go build
// arguments (such as -tags).
func buildBinary(ctx context.Context, outputPath string, extra ...string) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	moduleRoot, err := findModuleRoot()
	if err != nil {
		return fmt.Errorf("find module root: %w", err)
	}

	args := append([]string{"build", "-o", outputPath}, extra...)
	args = append(args, "./cmd/bindgen")
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = moduleRoot

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w: %s", err, stderr.String())
	}
	return nil
}

// findModuleRoot walks up from the working directory to the directory
// holding go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}

func TestE2E(t *testing.T) {
	pattern := filepath.Join("testdata", "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", "testdata")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			runTestCase(t, file)
		})
	}
}

// runTestCase executes a single e2e test case: the model is passed as a
// file, flags come from the description, and stdout is the only output.
func runTestCase(t *testing.T, file string) {
	t.Helper()

	ar, err := txtar.ParseFile(file)
	if err != nil {
		t.Fatalf("parse txtar: %v", err)
	}
	input, want, err := splitArchive(ar)
	if err != nil {
		t.Fatalf("parse case: %v", err)
	}

	inputPath := filepath.Join(t.TempDir(), testutil.InputFile)
	if err := os.WriteFile(inputPath, input, 0o644); err != nil {
		t.Fatalf("write %s: %v", testutil.InputFile, err)
	}

	args := append([]string{"generate"}, parseFlags(string(ar.Comment))...)
	args = append(args, inputPath)

	stdout, stderr, err := run(t, args...)
	if err != nil {
		t.Logf("command: %s %s", binary, strings.Join(args, " "))
		t.Logf("stderr: %s", stderr)
		t.Fatalf("command failed: %v", err)
	}
	got := map[string][]byte{"stdout": []byte(stdout)}

	if *update {
		content := txtar.Format(testutil.UpdateArchive(ar, got))
		if err := os.WriteFile(file, content, 0o644); err != nil {
			t.Fatalf("write updated file: %v", err)
		}
		t.Logf("updated %s", file)
		return
	}

	for name, wantContent := range want {
		gotContent, ok := got[name]
		if !ok {
			t.Errorf("missing output %q", name)
			continue
		}
		if diff := cmp.Diff(normalizeOutput(wantContent), normalizeOutput(gotContent)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// splitArchive returns the model and the want/* files of ar.
func splitArchive(ar *txtar.Archive) ([]byte, map[string][]byte, error) {
	var input []byte
	want := make(map[string][]byte)
	for _, f := range ar.Files {
		switch {
		case f.Name == testutil.InputFile:
			input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, nil, fmt.Errorf("unexpected file in archive: %q", f.Name)
		}
	}
	if input == nil {
		return nil, nil, fmt.Errorf("missing %s in archive", testutil.InputFile)
	}
	if len(want) == 0 {
		return nil, nil, fmt.Errorf("missing want/* files in archive")
	}
	return input, want, nil
}

// parseFlags extracts CLI arguments from the "Flags: ..." line of a
// description. Flags are space-separated to match CLI conventions.
func parseFlags(description string) []string {
	for line := range strings.SplitSeq(description, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Flags:"); ok {
			return strings.Fields(rest)
		}
	}
	return nil
}

// normalizeOutput trims trailing whitespace from each line and trailing
// newlines from the whole text.
func normalizeOutput(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func TestErrorReportsHint(t *testing.T) {
	input := filepath.Join(t.TempDir(), testutil.InputFile)
	model := `{"units":[{"kind":"translationUnit","file":"t.h","decls":[{"kind":"varTemplate","name":"pi"}]}]}`
	if err := os.WriteFile(input, []byte(model), 0o644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := run(t, "generate", "-b", "csharp", input)
	if err == nil {
		t.Fatal("expected failure for an unhandled declaration kind")
	}
	for _, want := range []string{
		`error: csharp: generate t.cs: generate t.h: csharp backend does not handle varTemplate "pi" (VisitVarTemplateDecl)`,
		"hint: implement VisitVarTemplateDecl in the csharp backend",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}
