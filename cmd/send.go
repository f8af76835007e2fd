// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	sendTimeout int
)

var sendCmd = &cobra.Command{
	Use:   "send TYPE [ARGS...]",
	Short: "Send one message to the panel and print the reply",
	Long: `Build a message from the catalog and send it through the panel interface.

TYPE is a catalog key (see the catalog command) or a message number such as
0x24. ARGS are the payload bytes after the message number, either as separate
arguments or as one comma separated list. Values may be decimal, 0x hex or
0 prefixed octal. Zone and partition numbers are wire indexes: 0 is zone 1.

The request is tagged with a unique context and the reply carrying that
context is printed. Unanswered requests are resent until --timeout.

Examples:
  # Status of zone 5
  nx584 send zone_status_request 4 --port /dev/ttyUSB0

  # Arm partition 1 away, user 1
  nx584 send 0x3D 2,1,1 --port /dev/ttyUSB0

Exit codes:
  0 - Reply received (or nothing expected and the message was written)
  1 - Timeout, or the panel refused the request
  2 - Connection error`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().IntVar(&sendTimeout, "timeout", 10, "Timeout in seconds for the reply")
}

// lookupMessageType resolves a catalog key or message number.
func lookupMessageType(s string) (*caddx.MessageType, error) {
	if t, ok := caddx.LookupKey(s); ok {
		return t, nil
	}
	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		if t, ok := caddx.Lookup(byte(n)); ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", caddx.ErrUnknownMessageType, s)
}

// isRefusal reports whether m is one of the interface's failure replies.
func isRefusal(m *caddx.Message) bool {
	switch m.Number() {
	case caddx.MsgRequestFailed, caddx.MsgNegativeAcknowledge, caddx.MsgMessageRejected:
		return true
	}
	return false
}

func runSend(cmd *cobra.Command, args []string) error {
	t, err := lookupMessageType(args[0])
	if err != nil {
		return err
	}

	ctx := caddx.Context(uuid.NewString())
	msg, err := caddx.NewMessage(ctx, t, strings.Join(args[1:], ","))
	if err != nil {
		return err
	}

	comm, connInfo, err := OpenCommunicator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}

	stopMetrics, err := startMetrics(comm.Stats().Snapshot)
	if err != nil {
		comm.Stop()
		return err
	}

	replies := make(chan *caddx.Message, 1)
	comm.AddListener(caddx.ListenerFunc(func(_ *caddx.Communicator, m *caddx.Message) {
		if m.Context() != ctx {
			logger.Debug().Str("message", m.Name()).Msg("ignoring message for another context")
			return
		}
		select {
		case replies <- m:
		default:
		}
	}))

	frame, err := msg.FrameBytes(comm.Protocol())
	if err != nil {
		comm.Stop()
		return err
	}

	fmt.Printf("NX-584 - Send\n")
	fmt.Printf("Connection: %s (%s protocol)\n", connInfo, comm.Protocol())
	fmt.Printf("Message: %s\n", caddx.FormatMessageCompact(msg))
	fmt.Printf("Context: %s\n", ctx)
	fmt.Printf("Frame: %s\n\n", caddx.FormatHex(frame))

	startTime := time.Now()
	comm.Transmit(msg)
	comm.Start()

	code := waitForReply(comm, msg, replies, startTime)

	stopMetrics()
	if err := comm.Stop(); err != nil {
		logger.Warn().Err(err).Msg("stop")
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func waitForReply(comm *caddx.Communicator, msg *caddx.Message, replies <-chan *caddx.Message, startTime time.Time) int {
	timeout := time.After(time.Duration(sendTimeout) * time.Second)

	if !msg.Type().ExpectsReply() {
		// Nothing comes back; done once the frame has been written
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if comm.Stats().MessagesSent.Load() > 0 {
					fmt.Printf("SENT (no reply expected)\n")
					return 0
				}
			case <-comm.Done():
				fmt.Fprintf(os.Stderr, "LINK FAILED: %v\n", comm.Err())
				return 2
			case <-timeout:
				fmt.Fprintf(os.Stderr, "TIMEOUT: message not written in %ds\n", sendTimeout)
				return 1
			}
		}
	}

	select {
	case reply := <-replies:
		rtt := time.Since(startTime)
		fmt.Print(caddx.FormatMessage(reply))
		fmt.Printf("\nrtt=%v retries=%d\n", rtt.Round(time.Millisecond), comm.Stats().Retries.Load())
		if isRefusal(reply) {
			return 1
		}
		return 0

	case <-comm.Done():
		fmt.Fprintf(os.Stderr, "LINK FAILED: %v\n", comm.Err())
		return 2

	case <-timeout:
		fmt.Fprintf(os.Stderr, "TIMEOUT (no reply in %ds, %d retries)\n", sendTimeout, comm.Stats().Retries.Load())
		return 1
	}
}
