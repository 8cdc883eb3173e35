package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/sugar-pop/config"
)

func debugLogging(dir string) config.LoggingConfig {
	cfg := config.Defaults().Logging
	cfg.Debug = true
	cfg.Dir = dir
	return cfg
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := config.Defaults().Logging
	cfg.Dir = dir

	logger, err := setupLogging(cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("discarded")
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("log dir created with debug off")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := setupLogging(debugLogging(dir))
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("test log message")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "test log message") {
		t.Errorf("log content %q", data)
	}
}

func TestSetupLogging_JSONFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := debugLogging(dir)
	cfg.Format = "json"
	cfg.Level = "warn"

	logger, err := setupLogging(cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("below level")
	logger.Warn("kept")
	_ = logger.Sync()

	data, _ := os.ReadFile(filepath.Join(dir, logFileName))
	s := string(data)
	if strings.Contains(s, "below level") || !strings.Contains(s, `"msg":"kept"`) {
		t.Errorf("log content %q", s)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	logger, err := setupLogging(debugLogging(dir))
	if err != nil {
		t.Fatal(err)
	}
	defer logger.Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat new log: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log file not rotated: %d bytes", info.Size())
	}
}
