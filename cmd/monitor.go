// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	monitorZones        int
	monitorNames        bool
	monitorPollInterval time.Duration
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Interactive TUI for watching and operating the panel",
	Long: `Monitor the alarm panel via an interactive terminal UI.

On connect the panel state is read (interface configuration, system status,
partitions and zones). After that the panel's unsolicited transition
messages keep the view current, and snapshots are polled whenever the
outbound queue is idle.

Features:
  - Zone list with fault, bypass, trouble and alarm memory flags
  - Partition summary
  - Link statistics
  - Event log (including panel log events)
  - Zone bypass toggle (Enter on the zone list)
  - Free-form command line (Tab to focus, e.g. "zone_status_request 4")
  - Automatic reconnection on link failure

Keys: q quit, Tab switch focus, Enter act, r re-read panel state.`,
	Annotations: map[string]string{fullScreenAnnotation: "true"},
	RunE:        runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().IntVar(&monitorZones, "zones", 16, "Number of zones to track (1-192)")
	monitorCmd.Flags().BoolVar(&monitorNames, "names", true, "Request zone names on connect")
	monitorCmd.Flags().DurationVar(&monitorPollInterval, "poll-interval", 5*time.Second, "Minimum time between snapshot polls")
}

var errLinkDown = errors.New("link down")

// linkManager owns the communicator and recreates it when the link fails.
type linkManager struct {
	mu       sync.RWMutex
	comm     *caddx.Communicator
	connInfo string

	p      *tea.Program
	events chan *caddx.Message
	ctx    context.Context
}

func (lm *linkManager) current() *caddx.Communicator {
	lm.mu.RLock()
	defer lm.mu.RUnlock()
	return lm.comm
}

func (lm *linkManager) setCurrent(comm *caddx.Communicator, connInfo string) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	lm.comm = comm
	lm.connInfo = connInfo
}

// send queues msgs on the live link.
func (lm *linkManager) send(msgs ...*caddx.Message) error {
	comm := lm.current()
	if comm == nil {
		return errLinkDown
	}
	for _, m := range msgs {
		comm.Transmit(m)
	}
	return nil
}

// snapshot reads the live link's statistics, or zeros while reconnecting.
func (lm *linkManager) snapshot() caddx.StatisticsSnapshot {
	if comm := lm.current(); comm != nil {
		return comm.Stats().Snapshot()
	}
	return caddx.StatisticsSnapshot{}
}

func runMonitor(cmd *cobra.Command, args []string) error {
	if monitorZones < 1 || monitorZones > caddx.MaxZones {
		return fmt.Errorf("%w: --zones must be between 1 and %d", caddx.ErrInvalidArgument, caddx.MaxZones)
	}

	// Fail fast on a bad port before taking over the terminal
	comm, connInfo, err := OpenCommunicator()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lm := &linkManager{
		events: make(chan *caddx.Message, 256),
		ctx:    ctx,
	}

	stopMetrics, err := startMetrics(lm.snapshot)
	if err != nil {
		comm.Stop()
		return err
	}
	defer stopMetrics()

	m := initialMonitorModel(lm, connInfo, monitorZones)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	lm.p = p

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); lm.linkLoop(comm, connInfo) }()
	go func() { defer wg.Done(); lm.batchLoop() }()
	go func() { defer wg.Done(); lm.pollLoop(monitorZones, monitorPollInterval) }()

	_, runErr := p.Run()
	cancel()
	wg.Wait()

	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return nil
}

// linkLoop runs one communicator at a time, reconnecting with exponential
// backoff when it fails.
func (lm *linkManager) linkLoop(comm *caddx.Communicator, connInfo string) {
	for {
		lm.startLink(comm, connInfo)

		select {
		case <-lm.ctx.Done():
			if err := comm.Stop(); err != nil {
				logger.Warn().Err(err).Msg("monitor: stop")
			}
			lm.setCurrent(nil, "")
			return
		case <-comm.Done():
		}

		err := comm.Err()
		logger.Error().Err(err).Str("connection", connInfo).Msg("monitor: link failed")
		comm.Stop()
		lm.setCurrent(nil, "")
		lm.p.Send(linkLostMsg{err: err})

		var ok bool
		comm, connInfo, ok = lm.reconnect()
		if !ok {
			return
		}
	}
}

func (lm *linkManager) startLink(comm *caddx.Communicator, connInfo string) {
	comm.AddListener(caddx.ListenerFunc(func(_ *caddx.Communicator, m *caddx.Message) {
		select {
		case lm.events <- m:
		default:
			logger.Warn().Str("message", m.Name()).Msg("monitor: event buffer full, dropping")
		}
	}))
	for _, r := range statusRequests(monitorZones, monitorNames) {
		comm.Transmit(r)
	}
	comm.Start()
	lm.setCurrent(comm, connInfo)
	lm.p.Send(linkUpMsg{connInfo: connInfo, protocol: comm.Protocol()})
}

// reconnect returns false if shutdown was requested while waiting.
func (lm *linkManager) reconnect() (*caddx.Communicator, string, bool) {
	backoff := 1 * time.Second
	maxBackoff := 30 * time.Second

	for {
		select {
		case <-lm.ctx.Done():
			return nil, "", false
		case <-time.After(backoff):
		}

		comm, connInfo, err := OpenCommunicator()
		if err == nil {
			return comm, connInfo, true
		}
		logger.Debug().Err(err).Dur("backoff", backoff).Msg("monitor: reconnect failed")

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// batchLoop forwards listener events to the TUI at a fixed rate.
func (lm *linkManager) batchLoop() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-lm.ctx.Done():
			return
		case <-ticker.C:
			var batch monitorBatchMsg
		drainLoop:
			for {
				select {
				case m := <-lm.events:
					batch.messages = append(batch.messages, m)
				default:
					break drainLoop
				}
			}
			if len(batch.messages) > 0 {
				lm.p.Send(batch)
			}
		}
	}
}

// pollLoop queues snapshot requests while the link is otherwise idle,
// walking the zone groups round robin.
func (lm *linkManager) pollLoop(zones int, interval time.Duration) {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	groups := (zones + zonesPerSnapshot - 1) / zonesPerSnapshot
	offset := 0

	for {
		if err := limiter.Wait(lm.ctx); err != nil {
			return
		}
		comm := lm.current()
		if comm == nil || comm.QueueLen() > 0 {
			continue
		}
		comm.Transmit(caddx.NewPartitionsSnapshotRequest(caddx.ContextDiscovery))
		comm.Transmit(caddx.NewZonesSnapshotRequest(caddx.ContextDiscovery, uint8(offset)))
		offset = (offset + 1) % groups
	}
}

// commandContext tags an operator action so its replies can be told apart.
func commandContext() caddx.Context {
	return caddx.Context(string(caddx.ContextCommand) + ":" + uuid.NewString())
}
