// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
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

func TestFlatten(t *testing.T) {
	keys := make(map[string]struct{})
	flatten("", map[string]any{
		"flat.key": "v",
		"nested":   map[string]any{"inner": "v"},
	}, keys)
	for _, want := range []string{"flat.key", "nested.inner"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("expected key %q, got %v", want, keys)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "a.go"), `package pkg
func f() {
	_ = i18n.T("menu.encode")
	_ = i18n.T("menu.unknown")
}`)
	writeFile(t, filepath.Join(root, "pkg", "a_test.go"), `package pkg
func g() { _ = i18n.T("test.only") }`)
	writeFile(t, filepath.Join(root, "_examples", "x.go"), `package x
func h() { _ = i18n.T("ignored.key") }`)
	writeFile(t, filepath.Join(root, localesDir, "active.en.yaml"), `"menu.encode": "Encode"
"menu.orphan": "Never used"
"validation.empty": "Please enter a number"
`)
	writeFile(t, filepath.Join(root, localesDir, "active.es.yaml"), `"menu.encode": "Codificar"
`)

	r, err := lint(root)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if !r.failed() {
		t.Fatalf("expected lint failure")
	}
	if len(r.missingInCode) != 1 || r.missingInCode[0] != "menu.unknown" {
		t.Errorf("missingInCode = %v", r.missingInCode)
	}
	es := r.missingByLocale["active.es.yaml"]
	if len(es) != 2 || es[0] != "menu.orphan" || es[1] != "validation.empty" {
		t.Errorf("missing in es = %v", es)
	}
	// validation.* is built at runtime and must not be reported.
	if len(r.orphaned) != 1 || r.orphaned[0] != "menu.orphan" {
		t.Errorf("orphaned = %v", r.orphaned)
	}
}

func TestLint_RepositoryLocalesAreConsistent(t *testing.T) {
	r, err := lint(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.failed() {
		t.Fatalf("locale problems: missing in code %v, missing by locale %v", r.missingInCode, r.missingByLocale)
	}
}
