package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/amirphl/lead-desk/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogWriter builds the application log destination. The returned closer flushes the rotating file, if any.
func newLogWriter(cfg config.LoggingConfig) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	if cfg.Output == "stdout" || cfg.Output == "" {
		return os.Stdout, noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
		LocalTime:  false,
	}

	switch cfg.Output {
	case "file":
		return rotating, rotating.Close, nil
	case "both":
		return io.MultiWriter(os.Stdout, rotating), rotating.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown log output %q", cfg.Output)
	}
}

// setupLogging points the standard logger at the configured destination and returns
// that destination so the HTTP access log can share it
func setupLogging(cfg config.LoggingConfig) (io.Writer, func(), error) {
	writer, closer, err := newLogWriter(cfg)
	if err != nil {
		return nil, nil, err
	}

	log.SetOutput(writer)
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lmicroseconds)

	return writer, func() {
		if err := closer(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}, nil
}
