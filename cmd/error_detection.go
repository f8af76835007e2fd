// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	showAll       bool
	statsInterval int
	noTUI         bool
)

var errorDetectionCmd = &cobra.Command{
	Use:   "error_detection",
	Short: "Detect and analyze malformed messages and errors",
	Long: `Track message errors, malformed data, and anomalous values with statistics.

This command validates each message from the panel and detects:
  - Checksum mismatches and undecodable frames
  - Frames cut short by the end of a read
  - Length mismatches against the message catalog
  - Host-only message types arriving from the panel
  - Out of range zone, partition and log event values
  - Statistics and trends (frame rate, error rate, success rate)

By default, only errors are displayed. Use --show-all to display valid messages too.

Messages are validated in real-time, with errors highlighted immediately and
periodic statistics summaries displayed at configurable intervals.`,
	Annotations: map[string]string{fullScreenAnnotation: "true"},
	RunE:        runErrorDetection,
}

func init() {
	rootCmd.AddCommand(errorDetectionCmd)
	errorDetectionCmd.Flags().BoolVar(&showAll, "show-all", false, "Show all messages (not just errors)")
	errorDetectionCmd.Flags().IntVar(&statsInterval, "stats-interval", 10, "Statistics update interval (seconds)")
	errorDetectionCmd.Flags().BoolVar(&noTUI, "no-tui", false, "Plain text output instead of the terminal UI")
}

// frameEvent is one frame completed by the receiver, decoded and validated.
type frameEvent struct {
	message          *caddx.Message
	raw              []byte
	decodeErr        error
	validationErrors []caddx.ValidationError
}

func decodeFrame(raw []byte) frameEvent {
	m, err := caddx.NewMessageFromBytes(caddx.ContextNone, raw, true)
	if err != nil {
		return frameEvent{raw: raw, decodeErr: err}
	}
	return frameEvent{message: m, raw: raw, validationErrors: caddx.ValidateMessage(m)}
}

func runErrorDetection(cmd *cobra.Command, args []string) error {
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

	stats := caddx.NewStatistics()
	stopMetrics, err := startMetrics(stats.Snapshot)
	if err != nil {
		return err
	}
	defer stopMetrics()

	receiver := caddx.NewReceiver(protocol, logger, stats)
	receiver.SetHoldPartialFrames(settings.Link.HoldPartialFrames)

	if noTUI {
		return runTextMode(conn, connInfo, receiver, stats)
	}
	return runTUIMode(conn, connInfo, receiver, stats)
}

// printDecodeError prints a decode error in highlighted format
func printDecodeError(ev frameEvent) {
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Printf("[%s] \033[1;31mDECODE ERROR:\033[0m %v\n", timestamp, ev.decodeErr)
	fmt.Printf("  Raw: %s\n", caddx.FormatHex(ev.raw))
	fmt.Printf("  >>> DECODE FAILED <<<\n\n")
}

// printValidationErrors prints validation errors for a message
func printValidationErrors(m *caddx.Message, errors []caddx.ValidationError) {
	timestamp := m.Timestamp().Format("15:04:05.000")

	fmt.Printf("[%s] \033[1;33mVALIDATION ERROR:\033[0m %s (0x%02X)\n", timestamp, m.Name(), m.Number())
	if m.IsChecksumCorrect() {
		fmt.Printf("  Checksum: \033[1;32mOK\033[0m\n")
	}

	for i, err := range errors {
		switch err.Type {
		case caddx.AnomalyChecksum:
			fmt.Printf("  Issue %d: \033[1;31m%s\033[0m\n", i+1, err.Message)

		case caddx.AnomalyLengthMismatch:
			fmt.Printf("  Issue %d: \033[1;31m%s\033[0m\n", i+1, err.Message)
			if length, ok := err.Details["length"].(int); ok {
				if expected, ok := err.Details["expected"].(int); ok {
					fmt.Printf("    Length: received=%d, expected=%d\n", length, expected)
				}
			}

		case caddx.AnomalyDirection:
			fmt.Printf("  Issue %d: \033[1;33m%s\033[0m\n", i+1, err.Message)

		case caddx.AnomalyInvalidValue:
			fmt.Printf("  Issue %d: \033[1;33m%s\033[0m\n", i+1, err.Message)

		default:
			fmt.Printf("  Issue %d: %s\n", i+1, err.Message)
		}
	}

	fmt.Printf("  Body: %s\n", caddx.FormatHex(m.Body()))
	fmt.Printf("  >>> MESSAGE REJECTED <<<\n\n")
}

// readChunks copies reads from conn onto a channel until the connection
// fails. The error is sent on errs.
func readChunks(conn Connection, chunks chan<- []byte, errs chan<- error) {
	buf := make([]byte, 256)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			chunks <- data
		}
		if err != nil {
			errs <- err
			return
		}
	}
}

// runTUIMode runs error detection in TUI mode
func runTUIMode(conn Connection, connInfo string, receiver *caddx.Receiver, stats *caddx.Statistics) error {
	// Create TUI program
	m := initialModel(connInfo, receiver.Protocol(), stats, statsInterval, showAll)
	p := tea.NewProgram(m)

	// Reader goroutine
	go func() {
		synchronized := false
		invalidFramesBeforeSync := 0

		chunks := make(chan []byte, 16)
		errs := make(chan error, 1)
		go readChunks(conn, chunks, errs)

		for {
			select {
			case data := <-chunks:
				receiver.Feed(data, func(raw []byte) {
					ev := decodeFrame(raw)
					valid := ev.decodeErr == nil && ev.message.IsChecksumCorrect()
					if !synchronized {
						if !valid {
							// Not synced yet, just count invalid frames
							invalidFramesBeforeSync++
							return
						}
						// First valid message! We're now synchronized
						synchronized = true
						p.Send(syncMsg{invalidFrames: invalidFramesBeforeSync})
					}
					p.Send(frameMsg(ev))
				})

			case err := <-errs:
				p.Send(linkErrorMsg{err: err})
				return
			}
		}
	}()

	// Run TUI
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// runTextMode runs error detection in text mode
func runTextMode(conn Connection, connInfo string, receiver *caddx.Receiver, stats *caddx.Statistics) error {
	fmt.Printf("NX-584 - Error Detection Mode\n")
	fmt.Printf("Connection: %s (%s protocol)\n", connInfo, receiver.Protocol())
	fmt.Printf("Statistics interval: %d seconds\n", statsInterval)
	if showAll {
		fmt.Printf("Mode: All messages\n")
	} else {
		fmt.Printf("Mode: Errors only\n")
	}
	fmt.Printf("Press Ctrl+C to exit\n\n")

	// Sync tracking - ignore bad frames until the first valid message
	synchronized := false
	invalidFramesBeforeSync := 0

	// Statistics ticker
	statsTicker := time.NewTicker(time.Duration(statsInterval) * time.Second)
	defer statsTicker.Stop()

	// Channel for non-blocking reads
	chunks := make(chan []byte, 16)
	errs := make(chan error, 1)
	go readChunks(conn, chunks, errs)

	handle := func(raw []byte) {
		ev := decodeFrame(raw)
		valid := ev.decodeErr == nil && ev.message.IsChecksumCorrect()

		if !synchronized {
			if !valid {
				invalidFramesBeforeSync++
				return
			}
			synchronized = true
			if invalidFramesBeforeSync > 0 {
				fmt.Printf("[SYNC] Synchronized after skipping %d invalid frames\n\n", invalidFramesBeforeSync)
			} else {
				fmt.Printf("[SYNC] Synchronized\n\n")
			}
		}

		stats.Update(ev.message, ev.decodeErr, ev.validationErrors)

		switch {
		case ev.decodeErr != nil:
			printDecodeError(ev)
		case len(ev.validationErrors) > 0:
			printValidationErrors(ev.message, ev.validationErrors)
		case showAll:
			// Print valid message (only if --show-all flag is set)
			fmt.Print(caddx.FormatMessage(ev.message))
		}
	}

	for {
		select {
		case data := <-chunks:
			receiver.Feed(data, handle)

		case err := <-errs:
			fmt.Println()
			fmt.Print(stats.String())
			return fmt.Errorf("read: %w", err)

		case <-statsTicker.C:
			// Print statistics
			fmt.Println()
			fmt.Print(stats.String())
			fmt.Println()
		}
	}
}
