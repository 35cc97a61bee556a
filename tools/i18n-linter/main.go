// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the embedded locale files for consistency. It scans the
// Go sources for translation keys and compares them against the YAML locales:
// keys used in code but missing from the primary locale, keys missing from a
// secondary locale, and keys no code refers to.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

// report is the outcome of one lint run.
type report struct {
	Unknown  []string            // used via i18n.T but absent from the primary locale
	Missing  map[string][]string // locale file -> keys absent compared to the primary
	Orphaned []string            // in the primary locale but never referenced
}

// failed reports whether the run found problems that should fail CI.
// Orphaned keys are only a warning.
func (r report) failed() bool {
	if len(r.Unknown) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- Keys used in code but missing from the primary locale ---")
	printList(r.Unknown, "Unknown")

	fmt.Println("--- Keys missing from secondary locales ---")
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		fmt.Printf("Checking %s:\n", f)
		printList(r.Missing[f], "Missing")
	}

	fmt.Println("--- Orphaned keys (in primary locale but not used in code) ---")
	printList(r.Orphaned, "Orphaned")

	switch {
	case r.failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(r.Orphaned) > 0:
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func printList(items []string, label string) {
	if len(items) == 0 {
		fmt.Println("  ✨ None found.")
		return
	}
	for _, it := range items {
		fmt.Printf("  - %s: %s\n", label, it)
	}
}

// lint compares the keys referenced under root with the locale files in dir.
func lint(root, dir string) (report, error) {
	r := report{Missing: map[string][]string{}}

	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	called, literals, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scanning sources: %w", err)
	}

	for key := range called {
		if _, ok := primary[key]; !ok {
			r.Unknown = append(r.Unknown, key)
		}
	}
	for key := range primary {
		_, isCalled := called[key]
		_, isLiteral := literals[key]
		if !isCalled && !isLiteral {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Unknown)
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		name := filepath.Base(file)
		if name == primaryLocale {
			continue
		}
		secondary, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", name, err)
		}
		var missing []string
		for key := range primary {
			if _, ok := secondary[key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		r.Missing[name] = missing
	}
	return r, nil
}

var (
	callRe    = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	literalRe = regexp.MustCompile(`"([a-z_]+\.[a-z_.]+)"`)
)

// findUsedKeys scans non-test .go files for i18n.T("key") calls and for
// string literals shaped like keys (e.g. labels stored in a slice and
// translated later).
func findUsedKeys(root string) (called, literals map[string]struct{}, err error) {
	called = make(map[string]struct{})
	literals = make(map[string]struct{})

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			// Skip tools, hidden dirs and underscore dirs (ignored by the go tool).
			if path != root && (name == "tools" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range callRe.FindAllStringSubmatch(string(content), -1) {
			called[m[1]] = struct{}{}
		}
		for _, m := range literalRe.FindAllStringSubmatch(string(content), -1) {
			literals[m[1]] = struct{}{}
		}
		return nil
	})
	return called, literals, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat set of dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
