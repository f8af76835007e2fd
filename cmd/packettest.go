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

var (
	packetTestTimeout int
)

var packetTestCmd = &cobra.Command{
	Use:   "packet_test",
	Short: "Test connection by waiting for a valid panel message",
	Long: `Wait for a valid NX-584 message on the connection until timeout.

This command connects to a serial port or WebSocket and waits for any
message from the panel interface. It ignores noise and waits for a complete
message that passes the checksum.

The interface only sends on its own when transitions are enabled in its
configuration, so on a quiet panel use --request to ask for the interface
configuration first.

Exit codes:
  0 - Message received before timeout
  1 - Timeout reached without receiving a valid message
  2 - Connection error`,
	RunE: runPacketTest,
}

var packetTestRequest bool

func init() {
	rootCmd.AddCommand(packetTestCmd)
	packetTestCmd.Flags().IntVar(&packetTestTimeout, "timeout", 10, "Timeout in seconds to wait for a message")
	packetTestCmd.Flags().BoolVar(&packetTestRequest, "request", false, "Send an interface configuration request first")
}

func runPacketTest(cmd *cobra.Command, args []string) error {
	protocol, err := linkProtocol()
	if err != nil {
		return err
	}

	// Open connection (serial or WebSocket)
	conn, connInfo, err := OpenConnection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	fmt.Printf("NX-584 - Packet Test\n")
	fmt.Printf("Connection: %s (%s protocol)\n", connInfo, protocol)
	fmt.Printf("Timeout: %d seconds\n", packetTestTimeout)

	if packetTestRequest {
		frame, err := caddx.NewInterfaceConfigurationRequest(caddx.ContextCommand).FrameBytes(protocol)
		if err != nil {
			return err
		}
		if _, err := conn.Write(frame); err != nil {
			fmt.Fprintf(os.Stderr, "Write error: %v\n", err)
			os.Exit(2)
		}
		fmt.Printf("Sent: %s\n", caddx.FormatHex(frame))
	}
	fmt.Printf("Waiting for valid message...\n\n")

	stats := caddx.NewStatistics()
	receiver := caddx.NewReceiver(protocol, logger, stats)
	receiver.SetHoldPartialFrames(settings.Link.HoldPartialFrames)

	// Channel for message reception
	messageChan := make(chan *caddx.Message, 1)
	errChan := make(chan error, 1)

	// Reader goroutine
	go func() {
		buf := make([]byte, 256)
		rejected := 0
		var found *caddx.Message

		emit := func(raw []byte) {
			if found != nil {
				return
			}
			m, err := caddx.NewMessageFromBytes(caddx.ContextNone, raw, true)
			if err != nil || !m.IsChecksumCorrect() {
				// Ignore bad frames, just count them
				rejected++
				return
			}
			found = m
		}

		for {
			n, err := conn.Read(buf)
			if n > 0 {
				receiver.Feed(buf[:n], emit)
			}
			if found != nil {
				// Got a valid message!
				if rejected > 0 {
					fmt.Printf("(skipped %d invalid frames before a valid one)\n", rejected)
				}
				messageChan <- found
				return
			}
			if err != nil {
				errChan <- err
				return
			}
		}
	}()

	// Wait for message or timeout
	select {
	case m := <-messageChan:
		sum := m.ReceivedChecksum()
		fmt.Printf("SUCCESS: Received valid message\n")
		fmt.Printf("  Type: %s (0x%02X)\n", caddx.FormatMessageType(m.Number()), m.Number())
		fmt.Printf("  Length: %d bytes (expected %d)\n", len(m.Body()), m.Type().Length)
		fmt.Printf("  Checksum: %02X %02X\n", sum[0], sum[1])
		if m.HasAcknowledgementFlag() {
			fmt.Printf("  Acknowledge requested\n")
		}
		os.Exit(0)

	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "Read error: %v\n", err)
		os.Exit(2)

	case <-time.After(time.Duration(packetTestTimeout) * time.Second):
		snap := stats.Snapshot()
		fmt.Fprintf(os.Stderr, "TIMEOUT: No valid message received within %d seconds (%d frames, %d partial)\n",
			packetTestTimeout, snap.FramesReceived, snap.PartialFrames)
		os.Exit(1)
	}

	return nil
}
