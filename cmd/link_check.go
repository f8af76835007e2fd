// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/spf13/cobra"
)

var linkCheckCmd = &cobra.Command{
	Use:   "link_check",
	Short: "Test raw connection stability",
	Long: `Hold the connection open without sending anything and report what arrives.

Every read is logged with its size and bytes. The data is also run through
the frame receiver so the summary shows how many complete frames were seen
and how many were lost to partial reads or bad checksums. Useful for
debugging cabling, baud rate and WebSocket bridge problems.

Exit codes:
  0 - Test completed normally
  1 - Connection failed during the test
  2 - Connection error`,
	RunE: runLinkCheck,
}

var linkCheckDuration int

func init() {
	rootCmd.AddCommand(linkCheckCmd)
	linkCheckCmd.Flags().IntVar(&linkCheckDuration, "duration", 30, "Test duration in seconds")
}

func runLinkCheck(cmd *cobra.Command, args []string) error {
	protocol, err := linkProtocol()
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	fmt.Printf("NX-584 - Link Check\n")
	fmt.Printf("Connection: %s (%s protocol)\n", connInfo, protocol)
	fmt.Printf("Duration: %d seconds\n\n", linkCheckDuration)

	stats := caddx.NewStatistics()
	receiver := caddx.NewReceiver(protocol, logger, stats)
	receiver.SetHoldPartialFrames(settings.Link.HoldPartialFrames)
	emit := func(raw []byte) {
		m, err := caddx.NewMessageFromBytes(caddx.ContextNone, raw, true)
		stats.Update(m, err, validateIfDecoded(m, err))
	}

	chunks := make(chan []byte, 100)
	errs := make(chan error, 1)
	go readChunks(conn, chunks, errs)

	start := time.Now()
	endTime := start.Add(time.Duration(linkCheckDuration) * time.Second)
	bytesReceived := 0
	readsReceived := 0

	fmt.Printf("Listening for data...\n\n")

	heartbeat := time.NewTicker(time.Second)
	defer heartbeat.Stop()

	for time.Now().Before(endTime) {
		select {
		case data := <-chunks:
			bytesReceived += len(data)
			readsReceived++
			fmt.Printf("[%s] Received %d bytes: %s\n",
				time.Now().Format("15:04:05.000"), len(data), caddx.FormatHex(data))
			receiver.Feed(data, emit)

		case err := <-errs:
			fmt.Printf("\n[%s] Connection error: %v\n", time.Now().Format("15:04:05.000"), err)
			printLinkCheckResults(time.Since(start), readsReceived, bytesReceived, stats)
			fmt.Printf("Result: FAILED (connection error)\n")
			os.Exit(1)

		case <-heartbeat.C:
			fmt.Printf("[%s] Still connected... (%.0fs remaining)\n",
				time.Now().Format("15:04:05.000"), time.Until(endTime).Seconds())
		}
	}

	printLinkCheckResults(time.Since(start), readsReceived, bytesReceived, stats)
	fmt.Printf("Result: PASSED (connection stable)\n")
	return nil
}

func validateIfDecoded(m *caddx.Message, err error) []caddx.ValidationError {
	if err != nil || m == nil {
		return nil
	}
	return caddx.ValidateMessage(m)
}

func printLinkCheckResults(elapsed time.Duration, reads, bytes int, stats *caddx.Statistics) {
	snap := stats.Snapshot()
	fmt.Printf("\n--- Test Results ---\n")
	fmt.Printf("Duration: %v\n", elapsed.Round(time.Millisecond))
	fmt.Printf("Reads: %d\n", reads)
	fmt.Printf("Bytes received: %d\n", bytes)
	fmt.Printf("Frames: %d\n", snap.FramesReceived)
	fmt.Printf("Valid messages: %d\n", snap.ValidMessages)
	fmt.Printf("Partial frames: %d\n", snap.PartialFrames)
	fmt.Printf("Checksum errors: %d\n", snap.ChecksumErrors)
	fmt.Printf("Decode errors: %d\n", snap.DecodeErrors)
}
