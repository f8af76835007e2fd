// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/spf13/cobra"
)

var rawLogCapture string

var rawLogCmd = &cobra.Command{
	Use:   "raw_log",
	Short: "Display raw panel messages in human-readable format",
	Long: `Continuously decode and display NX-584 messages as they arrive.

Nothing is sent to the panel; the link is only listened to. Each message is
shown with timestamp, type, checksum state and every decoded field.

With --capture the raw messages are also appended to a CBOR capture file that
can be decoded again later with the replay command.

Supports both serial and WebSocket connections.`,
	RunE: runRawLog,
}

func init() {
	rootCmd.AddCommand(rawLogCmd)
	rawLogCmd.Flags().StringVar(&rawLogCapture, "capture", "", "Append raw messages to this capture file")
}

func runRawLog(cmd *cobra.Command, args []string) error {
	protocol, err := linkProtocol()
	if err != nil {
		return err
	}

	// Open connection (serial or WebSocket)
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	var capture *caddx.CaptureWriter
	if rawLogCapture != "" {
		f, err := os.OpenFile(rawLogCapture, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open capture file: %w", err)
		}
		defer f.Close()

		if capture, err = caddx.NewCaptureWriter(f); err != nil {
			return err
		}
	}

	stats := caddx.NewStatistics()
	stopMetrics, err := startMetrics(stats.Snapshot)
	if err != nil {
		return err
	}
	defer stopMetrics()

	fmt.Printf("NX-584 - Raw Message Log\n")
	fmt.Printf("Connection: %s (%s protocol)\n", connInfo, protocol)
	if capture != nil {
		fmt.Printf("Capture: %s\n", rawLogCapture)
	}
	fmt.Printf("Press Ctrl+C to exit\n\n")

	receiver := caddx.NewReceiver(protocol, logger, stats)
	receiver.SetHoldPartialFrames(settings.Link.HoldPartialFrames)
	buf := make([]byte, 256)

	emit := func(raw []byte) {
		if capture != nil {
			rec := caddx.CaptureRecord{
				Timestamp: time.Now(),
				Protocol:  protocol,
				Direction: caddx.DirectionIn,
				Raw:       raw,
			}
			if err := capture.Write(rec); err != nil {
				logger.Error().Err(err).Msg("capture write failed")
			}
		}

		m, err := caddx.NewMessageFromBytes(caddx.ContextNone, raw, true)
		if err != nil {
			stats.Update(nil, err, nil)
			fmt.Printf("[ERROR] %v: %s\n", err, caddx.FormatHex(raw))
			return
		}
		stats.Update(m, nil, caddx.ValidateMessage(m))
		fmt.Print(caddx.FormatMessage(m))
	}

	for {
		n, err := conn.Read(buf)
		if n > 0 {
			receiver.Feed(buf[:n], emit)
		}
		if err != nil {
			// For WebSocket connections, a read error usually means
			// the connection is permanently closed - exit gracefully
			if errors.Is(err, ErrConnectionClosed) || errors.Is(err, io.EOF) {
				logger.Info().Msg("Connection closed")
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
	}
}
