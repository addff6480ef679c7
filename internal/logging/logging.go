// Package logging builds the charmbracelet loggers the binaries share.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fcarvajalbrown/Cacaroids/internal/config"
)

// New creates a logger writing to w at the configured level.
func New(cfg config.LogConfig, w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	}), nil
}

// Open creates a logger for a binary that owns the terminal: it writes to
// cfg.File when set and discards output otherwise, so log lines never land
// on the game screen. The returned closer releases the file.
func Open(cfg config.LogConfig, prefix string) (*log.Logger, io.Closer, error) {
	if cfg.File == "" {
		logger, err := New(cfg, io.Discard, prefix)
		return logger, nopCloser{}, err
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(cfg, f, prefix)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
