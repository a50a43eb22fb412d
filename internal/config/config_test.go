package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"weblog"
)

const (
	testLevel   = "DEBUG"
	testName    = "hooks"
	testAddr    = "1.2.3.4:1"
	testMetrics = "1.2.3.4:2"
	testColor   = "never"
	badLevel    = "verbose"
	badColor    = "rainbow"

	fileName     = "weblog.yaml"
	fileInitial  = "level: DEBUG\nname: hooks\n"
	fileUpdated  = "level: ERROR\nname: hooks\n"
	watchSeconds = 5
	setupMillis  = 100
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvName, "")
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvMetrics, "")
	t.Setenv(EnvColor, "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Level != DefaultLevel || cfg.Name != DefaultName || cfg.Addr != DefaultAddr ||
		cfg.Metrics != DefaultMetrics || cfg.Color != DefaultColor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if lv, err := cfg.LogLevel(); err != nil || lv != weblog.Info {
		t.Fatalf("unexpected level: %v %v", lv, err)
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLevel, testLevel)
	t.Setenv(EnvName, testName)
	t.Setenv(EnvAddr, testAddr)
	t.Setenv(EnvMetrics, testMetrics)
	t.Setenv(EnvColor, testColor)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Level != testLevel || cfg.Name != testName || cfg.Addr != testAddr ||
		cfg.Metrics != testMetrics || cfg.Color != testColor {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadInvalidLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLevel, badLevel)
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadInvalidColor(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvColor, badColor)
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(path, []byte(fileInitial), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Level != testLevel || cfg.Name != testName || cfg.Addr != DefaultAddr {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadMissingFileTolerated(t *testing.T) {
	clearEnv(t)
	if _, err := Load(""); err != nil {
		t.Fatalf("missing file should be tolerated: %v", err)
	}
}

func TestWatch(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(path, []byte(fileInitial), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ch := make(chan Config, 4)
	if err := Watch(path, func(c Config) { ch <- c }); err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(setupMillis * time.Millisecond)

	if err := os.WriteFile(path, []byte(fileUpdated), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	deadline := time.After(watchSeconds * time.Second)
	for {
		select {
		case cfg := <-ch:
			if cfg.Level == "ERROR" {
				return
			}
		case <-deadline:
			t.Fatalf("no config change delivered")
		}
	}
}
