// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the message ids used in the
// Go sources. Run it from the repository root:
//
//	go run ./tools/i18n-linter
//
// It exits non-zero when a locale lacks a key of the primary locale or when
// the code uses an id that the primary locale does not define.
package main

import (
	"fmt"
	"io"
	"io/fs"
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
)

// dynamicPrefixes are id groups the code builds at runtime, e.g. from a
// cipher.Reason or a core.Direction. Keys under them count as used.
var dynamicPrefixes = []string{"validation.", "direction.", "encode.", "decode."}

var usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

type report struct {
	missingInCode   []string            // used in code, absent from the primary locale
	missingByLocale map[string][]string // locale file -> keys it lacks
	orphaned        []string            // defined in the primary locale, never used
}

func (r report) failed() bool {
	return len(r.missingInCode) > 0 || len(r.missingByLocale) > 0
}

func main() {
	r, err := lint(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(2)
	}
	r.print(os.Stdout)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root string) (report, error) {
	r := report{missingByLocale: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, err
	}
	dir := filepath.Join(root, localesDir)
	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("load primary locale: %w", err)
	}

	for key := range used {
		if _, ok := primary[key]; !ok {
			r.missingInCode = append(r.missingInCode, key)
		}
	}
	for key := range primary {
		if _, ok := used[key]; !ok && !isDynamic(key) {
			r.orphaned = append(r.orphaned, key)
		}
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("load %s: %w", file, err)
		}
		for key := range primary {
			if _, ok := keys[key]; !ok {
				r.missingByLocale[filepath.Base(file)] = append(r.missingByLocale[filepath.Base(file)], key)
			}
		}
	}

	sort.Strings(r.missingInCode)
	sort.Strings(r.orphaned)
	for _, keys := range r.missingByLocale {
		sort.Strings(keys)
	}
	return r, nil
}

func isDynamic(key string) bool {
	for _, p := range dynamicPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

func (r report) print(w io.Writer) {
	section := func(title string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}
	section("Used in code but not defined in "+primaryLocale, r.missingInCode)

	locales := make([]string, 0, len(r.missingByLocale))
	for l := range r.missingByLocale {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	for _, l := range locales {
		section("Missing in "+l, r.missingByLocale[l])
	}
	section("Orphaned (defined but never used)", r.orphaned)
}

// findUsedKeys collects the literal ids passed to i18n.T in non-test Go
// files. Directories starting with "_" or "." and the tools tree are skipped.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
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
		for _, m := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a locale file and returns its keys, flattening
// any nested maps into dot-separated ids.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flatten("", data, keys)
	return keys, nil
}

func flatten(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flatten(k, v, keys)
	}
}
