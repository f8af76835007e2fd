// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// initLogging installs the process logger. The console writer goes to
// stderr and is left out for full screen commands; a log file, when set,
// receives JSON lines through a rolling writer.
func initLogging(s LogSettings, console bool) (zerolog.Logger, error) {
	level, err := parseLevel(s.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var writers []io.Writer
	if console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05.000",
		})
	}
	if s.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   s.File,
			MaxSize:    s.MaxSizeMB,
			MaxBackups: s.MaxBackups,
			MaxAge:     s.MaxAgeDays,
			Compress:   s.Compress,
		})
	}

	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(out).Level(level).With().Timestamp().Str("app", "nx584").Logger()
	log.Logger = logger
	return logger, nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "off", "disabled", "none":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", raw)
	}
}
