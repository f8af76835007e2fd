// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFile string

	// Populated by the root pre-run hook before any command runs.
	settings Settings
	logger   = zerolog.Nop()
)

// fullScreenAnnotation marks commands that own the terminal. They get no
// console log writer unless --no-tui is set.
const fullScreenAnnotation = "fullscreen"

var rootCmd = &cobra.Command{
	Use:   "nx584",
	Short: "Caddx NX-584 Panel Interface Tool",
	Long: `nx584 - A CLI tool for talking to Caddx/GE NetworX alarm panels through the
NX-584 serial home automation interface.

Provides passive logging and error analysis of panel traffic as well as an
interactive monitor, one-shot requests and a browsable message catalog.

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 38400] [--protocol binary|ascii]
  WebSocket: --url ws://host/path [--username user]

Settings may also come from a YAML config file (--config, or nx584.yaml in the
working directory or ~/.config/nx584) and from NX584_* environment variables,
e.g. NX584_SERIAL_PORT or NX584_LOG_LEVEL.

For WebSocket authentication, the password is read from the NX584_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell history.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		settings = s

		l, err := initLogging(settings.Log, !isFullScreen(cmd))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()

	// Serial connection flags
	pf.StringP("port", "p", "", "Serial port device")
	pf.IntP("baud", "b", 38400, "Baud rate (serial only)")

	// WebSocket connection flags
	pf.StringP("url", "u", "", "WebSocket URL (ws:// or wss://)")
	pf.String("username", "", "Username for HTTP Basic auth")
	pf.Bool("no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	// Link flags
	pf.String("protocol", "binary", "Panel interface protocol (binary or ascii)")
	pf.Duration("reply-timeout", 3*time.Second, "Time to wait for a panel reply before resending")
	pf.Bool("hold-partial-frames", false, "Keep partial frames across reads instead of discarding them")

	// Ambient flags
	pf.StringVar(&configFile, "config", "", "Config file (YAML)")
	pf.String("log-level", "info", "Log level (trace, debug, info, warn, error, off)")
	pf.String("log-file", "", "Also write JSON logs to this rolling file")
	pf.String("metrics-addr", "", "Serve Prometheus link metrics on this address (e.g. :9584)")
}

func isFullScreen(cmd *cobra.Command) bool {
	if cmd.Annotations[fullScreenAnnotation] != "true" {
		return false
	}
	if f := cmd.Flags().Lookup("no-tui"); f != nil && f.Value.String() == "true" {
		return false
	}
	return true
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
