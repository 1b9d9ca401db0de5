// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/digitcipher/internal/i18n"
)

func TestHistory_RecordListExportImport(t *testing.T) {
	dsn := isolate(t)
	db := []string{"--database.dsn", dsn}

	if _, _, err := run(t, nil, append(db, "encode", "123456", "000000")...); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, _, err := run(t, nil, append(db, "decode", "666666")...); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	out, _, err := run(t, nil, append(db, "history", "list")...)
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	for _, want := range []string{"123456", "018932", "777777", "666666", "999999"} {
		if !strings.Contains(out, want) {
			t.Errorf("history list missing %q:\n%s", want, out)
		}
	}

	out, _, err = run(t, nil, append(db, "history", "list", "--limit", "1")...)
	if err != nil {
		t.Fatalf("history list --limit failed: %v", err)
	}
	if !strings.Contains(out, "666666") || strings.Contains(out, "018932") {
		t.Errorf("expected only the newest entry:\n%s", out)
	}

	backup := filepath.Join(filepath.Dir(dsn), "backup.json")
	out, _, err = run(t, nil, append(db, "history", "export", backup)...)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(backup + ".zst"); err != nil {
		t.Fatalf("expected .zst suffix to be added: %v", err)
	}
	if !strings.Contains(out, i18n.T("cli.history_exported", 3, backup+".zst")) {
		t.Errorf("unexpected export output %q", out)
	}

	out, _, err = run(t, nil, append(db, "history", "clear", "--yes")...)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !strings.Contains(out, i18n.T("cli.history_cleared", 3)) {
		t.Errorf("unexpected clear output %q", out)
	}
	out, _, _ = run(t, nil, append(db, "history", "list")...)
	if !strings.Contains(out, i18n.T("cli.history_empty")) {
		t.Errorf("expected empty history, got %q", out)
	}

	out, _, err = run(t, nil, append(db, "history", "import", backup+".zst")...)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out, i18n.T("cli.history_imported", 3, backup+".zst")) {
		t.Errorf("unexpected import output %q", out)
	}
	out, _, _ = run(t, nil, append(db, "history", "import", backup+".zst")...)
	if !strings.Contains(out, i18n.T("cli.history_imported", 0, backup+".zst")) {
		t.Errorf("second import should add nothing, got %q", out)
	}
}

func TestHistoryClear_Aborted(t *testing.T) {
	dsn := isolate(t)
	if _, _, err := run(t, nil, "--database.dsn", dsn, "encode", "123456"); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	out, _, err := run(t, strings.NewReader("n\n"), "--database.dsn", dsn, "history", "clear")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !strings.Contains(out, i18n.T("cli.clear_aborted")) {
		t.Fatalf("expected abort message, got %q", out)
	}
	out, _, _ = run(t, nil, "--database.dsn", dsn, "history", "list")
	if !strings.Contains(out, "018932") {
		t.Fatalf("history should be untouched, got %q", out)
	}
}

func TestHistory_Disabled(t *testing.T) {
	isolate(t)
	_, _, err := run(t, nil, "--history.enabled=false", "history", "list")
	if err == nil || err.Error() != i18n.T("cli.history_disabled") {
		t.Fatalf("expected history disabled error, got %v", err)
	}
}

func TestHistory_UnavailableStoreDoesNotBreakConversion(t *testing.T) {
	isolate(t)
	out, _, err := run(t, nil, "--database.type", "oracle", "encode", "123456")
	if err != nil {
		t.Fatalf("conversion should succeed without history, got %v", err)
	}
	if out != "018932\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDBMaintain_Sqlite(t *testing.T) {
	dsn := isolate(t)
	if _, _, err := run(t, nil, "--database.dsn", dsn, "encode", "123456"); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	out, _, err := run(t, nil, "--database.dsn", dsn, "db-maintain")
	if err != nil {
		t.Fatalf("db-maintain failed: %v", err)
	}
	if !strings.Contains(out, i18n.T("cli.maintenance_done")) {
		t.Fatalf("unexpected output %q", out)
	}
}
