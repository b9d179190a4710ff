// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// ------------------- global loggers -------------------

// four logger levels accessible throughout the application
var (
	Info  = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn  = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	Error = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	Debug = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
)

// logFile is the currently open log file, closed on re-initialisation.
var logFile *os.File

// ------------------- logger initialization -------------------

// InitLogger (re)initialises the logging system. It:
// - Ensures dir exists.
// - Creates a timestamped log file in dir.
// - Writes logs to both the file and stdout.
//
// An empty dir keeps the stdout-only loggers, which is what tests use.
func InitLogger(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	logFileName := filepath.Join(dir, "league_"+time.Now().Format("2006-01-02_15-04-05")+".log")
	file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
	if err != nil {
		return err
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	out := io.MultiWriter(os.Stdout, file)
	errOut := io.MultiWriter(os.Stderr, file)

	Info.SetOutput(out)
	Warn.SetOutput(out)
	Error.SetOutput(errOut)
	Debug.SetOutput(out)
	return nil
}

// SetLogLevel discards Debug output in production and restores it elsewhere.
func SetLogLevel(env string) {
	if env == "production" {
		Debug.SetOutput(io.Discard)
		return
	}
	if logFile != nil {
		Debug.SetOutput(io.MultiWriter(os.Stdout, logFile))
		return
	}
	Debug.SetOutput(os.Stdout)
}

// Close flushes and closes the current log file, if any.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
