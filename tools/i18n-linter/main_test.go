// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := make(map[string]struct{})
	flattenYAML("", map[string]interface{}{
		"top":       map[string]interface{}{"sub": "value"},
		"flat.name": "v",
	}, keys)
	for _, k := range []string{"top.sub", "flat.name"} {
		if _, ok := keys[k]; !ok {
			t.Fatalf("expected %s in keys, got %v", k, keys)
		}
	}
}

func TestLint_ReportsUnknownMissingAndOrphaned(t *testing.T) {
	root := t.TempDir()
	locales := filepath.Join(root, "locales")
	writeFile(t, filepath.Join(locales, "active.en.yaml"), "a.one: \"1\"\na.two: \"2\"\nop.label: \"L\"\nunused.key: \"x\"\n")
	writeFile(t, filepath.Join(locales, "active.de.yaml"), "a.one: \"1\"\nop.label: \"L\"\nunused.key: \"x\"\n")
	writeFile(t, filepath.Join(root, "pkg", "a.go"), `package pkg
var labels = []string{"op.label"}
func f() { _ = i18n.T("a.one"); _ = i18n.T("a.two", 1); _ = i18n.T("b.missing") }
`)
	// Sources under underscore dirs are not part of the module.
	writeFile(t, filepath.Join(root, "_vendor", "b.go"), `package x
func g() { _ = i18n.T("ignored.key") }
`)

	r, err := lint(root, locales)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if !reflect.DeepEqual(r.Unknown, []string{"b.missing"}) {
		t.Fatalf("unexpected unknown keys: %v", r.Unknown)
	}
	if !reflect.DeepEqual(r.Missing["active.de.yaml"], []string{"a.two"}) {
		t.Fatalf("unexpected missing keys: %v", r.Missing)
	}
	if !reflect.DeepEqual(r.Orphaned, []string{"unused.key"}) {
		t.Fatalf("unexpected orphaned keys: %v", r.Orphaned)
	}
	if !r.failed() {
		t.Fatalf("report with unknown and missing keys should fail")
	}
}

// TestLint_RepositoryLocalesAreConsistent runs the linter over this repository.
func TestLint_RepositoryLocalesAreConsistent(t *testing.T) {
	root := filepath.Join("..", "..")
	r, err := lint(root, filepath.Join(root, localesDir))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.failed() {
		t.Fatalf("locale problems: unknown=%v missing=%v", r.Unknown, r.Missing)
	}
	if len(r.Orphaned) > 0 {
		t.Fatalf("orphaned keys: %v", r.Orphaned)
	}
}
