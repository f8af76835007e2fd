// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	statusTimeout int
	statusZones   int
	statusNames   bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read panel, partition and zone state",
	Long: `Query the panel interface for a one-shot picture of the system.

The following requests are queued, each tagged with its own context:
  - Interface Configuration Request (firmware version)
  - System Status Request
  - Partitions Snapshot Request
  - Zones Snapshot Request, one per 16 zones up to --zones
  - Zone Name Request for each zone (with --names)

Unsolicited messages seen while waiting are folded in as well.

Examples:
  # First 16 zones
  nx584 status --port /dev/ttyUSB0

  # 48 zones with names
  nx584 status --port /dev/ttyUSB0 --zones 48 --names

Exit codes:
  0 - All requests answered
  1 - Timeout with requests outstanding
  2 - Connection error`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().IntVar(&statusTimeout, "timeout", 15, "Timeout in seconds for all replies")
	statusCmd.Flags().IntVar(&statusZones, "zones", 16, "Number of zones to query (1-192)")
	statusCmd.Flags().BoolVar(&statusNames, "names", false, "Also request zone names")
}

// statusRequests builds the request set for zones zones.
func statusRequests(zones int, names bool) []*caddx.Message {
	tag := func() caddx.Context { return caddx.Context(uuid.NewString()) }

	reqs := []*caddx.Message{
		caddx.NewInterfaceConfigurationRequest(tag()),
		caddx.NewSystemStatusRequest(tag()),
		caddx.NewPartitionsSnapshotRequest(tag()),
	}
	snapshots := (zones + zonesPerSnapshot - 1) / zonesPerSnapshot
	for offset := 0; offset < snapshots; offset++ {
		reqs = append(reqs, caddx.NewZonesSnapshotRequest(tag(), uint8(offset)))
	}
	if names {
		for zone := 0; zone < zones; zone++ {
			reqs = append(reqs, caddx.NewZoneNameRequest(tag(), uint8(zone)))
		}
	}
	return reqs
}

func runStatus(cmd *cobra.Command, args []string) error {
	if statusZones < 1 || statusZones > caddx.MaxZones {
		return fmt.Errorf("%w: --zones must be between 1 and %d", caddx.ErrInvalidArgument, caddx.MaxZones)
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

	reqs := statusRequests(statusZones, statusNames)
	pending := make(map[caddx.Context]*caddx.Message, len(reqs))
	for _, r := range reqs {
		pending[r.Context()] = r
	}

	// The listener runs on the dispatch goroutine; keep it non-blocking
	incoming := make(chan *caddx.Message, 64)
	comm.AddListener(caddx.ListenerFunc(func(_ *caddx.Communicator, m *caddx.Message) {
		select {
		case incoming <- m:
		default:
			logger.Warn().Str("message", m.Name()).Msg("status: dropping message, consumer behind")
		}
	}))

	fmt.Printf("NX-584 - Panel Status\n")
	fmt.Printf("Connection: %s (%s protocol)\n", connInfo, comm.Protocol())
	fmt.Printf("Requests: %d\n", len(reqs))
	fmt.Printf("Timeout: %d seconds\n\n", statusTimeout)

	for _, r := range reqs {
		comm.Transmit(r)
	}
	comm.Start()

	state := newPanelState()
	timeout := time.After(time.Duration(statusTimeout) * time.Second)
	code := 0

collect:
	for len(pending) > 0 {
		select {
		case m := <-incoming:
			// A grace-cycle message carries the request context but is no answer
			if req, ok := pending[m.Context()]; ok && req.Type().IsReply(m.Number()) {
				delete(pending, m.Context())
				if isRefusal(m) {
					fmt.Printf("REFUSED: %s\n", caddx.FormatMessageCompact(m))
					continue
				}
			}
			if state.apply(m) {
				logger.Debug().Str("message", m.Name()).Msg("status: applied")
			}

		case <-comm.Done():
			fmt.Fprintf(os.Stderr, "LINK FAILED: %v\n", comm.Err())
			code = 2
			break collect

		case <-timeout:
			fmt.Printf("TIMEOUT: %d requests unanswered\n", len(pending))
			for _, req := range pending {
				fmt.Printf("  %s\n", caddx.FormatMessageCompact(req))
			}
			code = 1
			break collect
		}
	}

	stopMetrics()
	if err := comm.Stop(); err != nil {
		logger.Warn().Err(err).Msg("stop")
	}

	fmt.Print(state.summary())
	fmt.Printf("\nmessages sent=%d delivered=%d retries=%d\n",
		comm.Stats().MessagesSent.Load(), comm.Stats().MessagesDelivered.Load(), comm.Stats().Retries.Load())

	if code != 0 {
		os.Exit(code)
	}
	return nil
}

// summary renders the state as the status report.
func (s *panelState) summary() string {
	var b strings.Builder

	b.WriteString("\n--- Panel ---\n")
	if s.firmware != "" {
		fmt.Fprintf(&b, "Firmware: %s\n", s.firmware)
	}
	if s.hasSystem {
		fmt.Fprintf(&b, "Panel ID: %d\n", s.panelID)
		fmt.Fprintf(&b, "AC power: %s\n", okOrFault(!s.acFail, "fail"))
		fmt.Fprintf(&b, "Battery: %s\n", okOrFault(!s.lowBattery, "low"))
	}

	b.WriteString("\n--- Partitions ---\n")
	for _, p := range s.partitions {
		if !p.valid {
			continue
		}
		fmt.Fprintf(&b, "Partition %d: %s\n", p.number, p)
	}

	b.WriteString("\n--- Zones ---\n")
	for _, z := range s.sortedZones() {
		fmt.Fprintf(&b, "%-28s %s\n", z.Title(), z.Description())
	}

	if s.lastEvent != "" {
		fmt.Fprintf(&b, "\nLast log %s\n", s.lastEvent)
	}
	return b.String()
}

func okOrFault(ok bool, fault string) string {
	if ok {
		return "ok"
	}
	return fault
}
