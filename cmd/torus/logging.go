package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/torus/constant"
)

const (
	logDir      = constant.LogDir
	logFileName = constant.LogFileName
	maxLogSize  = constant.MaxLogSize
)

// setupLogging routes the standard logger to a file when debug is set, or discards it
// Frames own stdout, so logs never go to the terminal
// Returns the open log file for the caller to close, or nil
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// rotateLog renames an oversized log file with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	rotated := filepath.Join(logDir, fmt.Sprintf("torus-%s.log", time.Now().Format("20060102-150405")))
	os.Rename(logPath, rotated)
}
