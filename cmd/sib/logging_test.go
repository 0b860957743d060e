package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingOff(t *testing.T) {
	t.Chdir(t.TempDir())

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("Expected nil log file without --debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output discarded, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without --debug")
	}
}

func TestSetupLoggingDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file with --debug")
	}
	defer f.Close()

	out := log.Writer()
	if out == os.Stdout || out == os.Stderr {
		t.Error("Log output must not share the terminal")
	}

	log.Printf("reload %s", "binds.txt")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "reload binds.txt") {
		t.Errorf("Expected message in log, got %q", data)
	}
}

func TestSetupLoggingRotates(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "sib-") && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected one rotated log, found %d", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log under %d bytes, got %d", maxLogSize, info.Size())
	}
}
