// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package load

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
)

const model = `{"units": [
  {"kind": "translationUnit", "file": "geo.h", "decls": [{"kind": "function", "name": "area"}]},
  {"kind": "translationUnit", "file": "util.h"}
]}`

func unitFiles(res *Result) []string {
	var files []string
	for _, u := range res.Units {
		files = append(files, u.FilePath)
	}
	return files
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(model), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Load(context.Background(), Options{Source: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"geo.h", "util.h"}, unitFiles(res)); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
	if res.Source != "file://"+path {
		t.Errorf("Source = %q", res.Source)
	}
	if len(res.Digest) != 64 {
		t.Errorf("Digest = %q, want 64 hex digits", res.Digest)
	}
}

func TestLoad_Stdin(t *testing.T) {
	res, err := Load(context.Background(), Options{Source: Stdin, Stdin: strings.NewReader(model)})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Source != "stdin" || len(res.Units) != 2 {
		t.Errorf("Load() = %+v", res)
	}
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/model.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(model))
	}))
	defer srv.Close()

	res, err := Load(context.Background(), Options{Source: srv.URL + "/model.json", Client: srv.Client()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"geo.h", "util.h"}, unitFiles(res)); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}

	_, err = Load(context.Background(), Options{Source: srv.URL + "/missing.json", Client: srv.Client()})
	if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("Load(missing) = %v, want HTTP 404", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{name: "no source", opts: Options{}, wantErr: "no model source"},
		{name: "missing file", opts: Options{Source: filepath.Join(t.TempDir(), "absent.json")}, wantErr: "read file"},
		{name: "bad json", opts: Options{Source: Stdin, Stdin: strings.NewReader("{")}, wantErr: "parse model from stdin"},
		{name: "unknown kind", opts: Options{Source: Stdin, Stdin: strings.NewReader(`{"units":[{"kind":"translationUnit","file":"a.h","decls":[{"kind":"module","name":"m"}]}]}`)}, wantErr: `unknown declaration kind "module"`},
		{name: "no units", opts: Options{Source: Stdin, Stdin: strings.NewReader(`{"units":[]}`)}, wantErr: "no translation units"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_NoSourceHint(t *testing.T) {
	_, err := Load(context.Background(), Options{})
	if diff := cmp.Diff([]string{"pass a model file, a URL, or - for stdin"}, errors.GetAllHints(err)); diff != "" {
		t.Errorf("hints mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_DigestIsStable(t *testing.T) {
	a, err := Decode([]byte(model))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Decode([]byte(model))
	if err != nil {
		t.Fatal(err)
	}
	if a.Digest != b.Digest {
		t.Errorf("digests differ: %s vs %s", a.Digest, b.Digest)
	}
	c, err := Decode([]byte(strings.Replace(model, "area", "perimeter", 1)))
	if err != nil {
		t.Fatal(err)
	}
	if a.Digest == c.Digest {
		t.Error("different models share a digest")
	}
}
