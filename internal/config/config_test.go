// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/quadsolver/internal/config"
	"gopkg.in/yaml.v3"
)

// isolate points the user config dir at a temp dir and runs from another temp
// dir so no real quadsolver.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := cfg.Config{Language: "en", Mode: "auto", Color: "auto", LogLevel: "warn"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "language: ru\nmode: prompt\nalt_screen: true\n"
	if err := os.WriteFile(file, []byte(data), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "ru" || got.Mode != "prompt" || !got.AltScreen {
		t.Fatalf("file values not applied: %+v", got)
	}
	if got.Color != "auto" {
		t.Fatalf("expected default color, got %q", got.Color)
	}
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(file, []byte("mode: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestLoadConfig_EnvAndFlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("QUADSOLVER_COLOR", "never")

	cmd := &cobra.Command{}
	cmd.Flags().String("mode", "auto", "")
	cmd.Flags().Bool("alt-screen", false, "")
	if err := cmd.Flags().Parse([]string{"--mode", "interactive", "--alt-screen"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Color != "never" {
		t.Fatalf("expected env override for color, got %q", got.Color)
	}
	if got.Mode != "interactive" || !got.AltScreen {
		t.Fatalf("expected flag overrides, got %+v", got)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "ru", Mode: "prompt", Color: "never", LogLevel: "debug"}
	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	want, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var back cfg.Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != c {
		t.Fatalf("expected %+v, got %+v", c, back)
	}
}

func TestWriteConfigFile_IsReadByLoadConfig(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "ru", Mode: "interactive", Color: "always", AltScreen: true, LogLevel: "info"}
	if _, err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got != c {
		t.Fatalf("expected %+v, got %+v", c, got)
	}
}
