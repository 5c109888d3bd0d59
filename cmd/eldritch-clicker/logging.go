package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/eldritch-clicker/constants"
)

const (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName

	// Files at or above this size are rotated on startup
	maxLogSize = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/clicker.log when debug is set, otherwise discards it
// The terminal screen owns stdout and stderr, so no log line may reach them while the game runs
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
	if info, err := os.Stat(logPath); err == nil && info.Size() >= maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("clicker-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			// Rotation failed; truncate instead of growing without bound
			os.Remove(logPath)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Println("=== eldritch-clicker started ===")
	return f
}
