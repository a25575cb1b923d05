package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "shell: zsh\nhistory_file: /from/config\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := loadConfig(options{configPath: path, historyFile: "/from/flag"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Shell != "zsh" {
		t.Errorf("Shell = %q, want %q from config", cfg.Shell, "zsh")
	}
	if cfg.HistoryFile != "/from/flag" {
		t.Errorf("HistoryFile = %q, want flag to win", cfg.HistoryFile)
	}
}

func TestResolvePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HISTFILE", "")
	t.Setenv("SHELL", "/usr/bin/fish")

	cfg, err := loadConfig(options{configPath: filepath.Join(home, "missing.yaml")})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if err := resolvePaths(cfg); err != nil {
		t.Fatalf("resolvePaths() error = %v", err)
	}

	if cfg.Shell != "fish" {
		t.Errorf("Shell = %q, want fish", cfg.Shell)
	}
	if want := filepath.Join(home, ".fish_history"); cfg.HistoryFile != want {
		t.Errorf("HistoryFile = %q, want %q", cfg.HistoryFile, want)
	}
	if want := filepath.Join(home, ".config", "hstr", "fish_favorites"); cfg.FavoritesFile != want {
		t.Errorf("FavoritesFile = %q, want %q", cfg.FavoritesFile, want)
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "shell", "history-file", "favorites-file", "print"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}

	if err := cmd.ParseFlags([]string{"--print"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if on, err := cmd.Flags().GetBool("print"); err != nil || !on {
		t.Errorf("--print = %v, %v; want true", on, err)
	}
}
