package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from an empty directory so logs/ lands there
func inTempDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	t.Cleanup(func() { log.SetOutput(io.Discard) })
}

func TestSetupLoggingDisabled(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLoggingEnabled(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer f.Close()

	out := log.Writer()
	if out == os.Stdout || out == os.Stderr {
		t.Fatal("Log output must not share the terminal with frames")
	}

	log.Printf("frame %d: covered=%d", 7, 550)

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "frame 7: covered=550") {
		t.Errorf("Expected log line in file, got %q", data)
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create oversized log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected 1 rotated log, got %d", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log below %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLoggingSmallFileNotRotated(t *testing.T) {
	inTempDir(t)

	os.MkdirAll(logDir, 0755)
	os.WriteFile(filepath.Join(logDir, logFileName), []byte("previous run\n"), 0644)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	entries, _ := os.ReadDir(logDir)
	if len(entries) != 1 {
		t.Errorf("Expected only %s, got %d entries", logFileName, len(entries))
	}
}
