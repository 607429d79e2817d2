// Package logger builds the structured logger shared by the commands.
package logger

import (
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// New returns a logger writing to stdout, or appending to the file at path.
// Debug enables debug level output.
func New(path string, debug bool) (*log.Logger, error) {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	}
	if len(path) == 0 {
		cfg.Output = os.Stdout
		return log.NewWithConfig(cfg), nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return nil, err
	}
	cfg.Output = f
	l := log.NewWithConfig(cfg)
	l.Debug("logging to file", log.String("path", path))
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = io.Discard
	return log.NewWithConfig(cfg)
}
