package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/treykane/cli-studies/internal/config"
	"github.com/treykane/cli-studies/internal/layout"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestConfigPathPrintsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	out, err := execute(t, "config", "path", "--config", path)
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Fatalf("expected %q, got %q", path, out)
	}
}

func TestConfigInitWritesDefaultsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("expected written path in output, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "default_layout:") || !strings.Contains(string(data), "1x1") {
		t.Fatalf("expected default layout in config, got %q", data)
	}

	if _, err := execute(t, "config", "init", "--config", path); err == nil {
		t.Fatal("expected second init without --force to fail")
	}
	if _, err := execute(t, "config", "init", "--config", path, "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(out, "studies "+version) {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestLoadSettingsLayoutPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store := config.NewStore(afero.NewOsFs(), path)
	if err := store.Save(config.Config{DefaultLayout: "2x2"}); err != nil {
		t.Fatalf("save config: %v", err)
	}

	_, preset, err := loadSettings(&rootOptions{configPath: path})
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if preset != layout.Preset2x2 {
		t.Fatalf("expected config layout 2x2, got %s", preset)
	}

	_, preset, err = loadSettings(&rootOptions{configPath: path, layout: "MPR"})
	if err != nil {
		t.Fatalf("load settings with flag: %v", err)
	}
	if preset != layout.PresetMPR {
		t.Fatalf("expected flag layout mpr, got %s", preset)
	}

	if _, _, err := loadSettings(&rootOptions{configPath: path, layout: "4x4"}); err == nil {
		t.Fatal("expected unknown --layout to fail")
	}
}

func TestLoadSettingsMissingConfigUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, preset, err := loadSettings(&rootOptions{configPath: path})
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if preset != layout.DefaultPreset {
		t.Fatalf("expected default preset, got %s", preset)
	}
	if cfg.DisableMouse {
		t.Fatal("expected mouse enabled by default")
	}
}

func TestLogFilePath(t *testing.T) {
	dir := t.TempDir()
	got, err := logFilePath(&rootOptions{configPath: filepath.Join(dir, "config.yaml")})
	if err != nil {
		t.Fatalf("log file path: %v", err)
	}
	if want := filepath.Join(dir, logFileName); got != want {
		t.Fatalf("expected %q next to the config, got %q", want, got)
	}

	override := filepath.Join(dir, "other.log")
	if got, _ := logFilePath(&rootOptions{logFile: override}); got != override {
		t.Fatalf("expected --log-file to win, got %q", got)
	}
}

func TestRedirectLogsKeepsTerminalClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "studies.log")
	restore, err := redirectLogs(&rootOptions{logFile: path})
	if err != nil {
		t.Fatalf("redirect logs: %v", err)
	}
	log.Warn("written while the browser runs")
	restore()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "written while the browser runs") {
		t.Fatalf("expected the record in the log file, got %q", data)
	}
}
