// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/digitcipher/internal/config"
)

func isolateConfigDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolateConfigDir(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected ConfigFileNotFoundError, got %T %v", err, err)
	}
	if got.Language != "en" || got.Database.Type != "sqlite" || !got.History.Enabled {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if got.Log.Level != "info" {
		t.Fatalf("expected info log level, got %q", got.Log.Level)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolateConfigDir(t)
	yaml := "database:\n  type: postgres\n  dsn: postgresql://user@/db\nlanguage: es\nhistory:\n  enabled: false\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "postgres" {
		t.Fatalf("expected postgres, got %q", got.Database.Type)
	}
	if got.Language != "es" {
		t.Fatalf("expected es, got %q", got.Language)
	}
	if got.History.Enabled {
		t.Fatalf("expected history disabled by file")
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmp := isolateConfigDir(t)
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte("language: es\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("DIGITCIPHER_LANGUAGE", "en")
	t.Setenv("DIGITCIPHER_DATABASE_DSN", ":memory:")

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "en" {
		t.Fatalf("expected env to win, got %q", got.Language)
	}
	if got.Database.Dsn != ":memory:" {
		t.Fatalf("expected env dsn, got %q", got.Database.Dsn)
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("DIGITCIPHER_LANGUAGE", "es")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("language", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Language != "en" {
		t.Fatalf("expected flag to win, got %q", got.Language)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolateConfigDir(t)

	c := cfg.Config{Language: "es"}
	c.Database.Type = "sqlite"
	c.Database.Dsn = "./history.db"
	c.History.Enabled = true

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig after write: %v", err)
	}
	if got.Language != "es" || got.Database.Dsn != "./history.db" {
		t.Fatalf("unexpected config after round trip: %+v", got)
	}
}
