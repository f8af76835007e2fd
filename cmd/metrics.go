// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// linkCounters lists the link statistics exported as Prometheus counters.
var linkCounters = []struct {
	name  string
	help  string
	value func(caddx.StatisticsSnapshot) uint64
}{
	{"frames_received_total", "Frames completed by the receiver.", func(s caddx.StatisticsSnapshot) uint64 { return s.FramesReceived }},
	{"partial_frames_total", "Frames discarded because a read ended mid-frame.", func(s caddx.StatisticsSnapshot) uint64 { return s.PartialFrames }},
	{"decode_errors_total", "Frames that could not be decoded into a message.", func(s caddx.StatisticsSnapshot) uint64 { return s.DecodeErrors }},
	{"checksum_errors_total", "Messages dropped for a checksum mismatch.", func(s caddx.StatisticsSnapshot) uint64 { return s.ChecksumErrors }},
	{"handoff_drops_total", "Messages dropped because the dispatch loop was busy.", func(s caddx.StatisticsSnapshot) uint64 { return s.HandoffDrops }},
	{"messages_sent_total", "Messages written to the panel.", func(s caddx.StatisticsSnapshot) uint64 { return s.MessagesSent }},
	{"messages_delivered_total", "Messages delivered to listeners.", func(s caddx.StatisticsSnapshot) uint64 { return s.MessagesDelivered }},
	{"retries_total", "Requests resent after silence or an unexpected reply.", func(s caddx.StatisticsSnapshot) uint64 { return s.Retries }},
	{"unexpected_replies_total", "Replies whose type did not match the outstanding request.", func(s caddx.StatisticsSnapshot) uint64 { return s.UnexpectedReplies }},
	{"acks_sent_total", "Positive acknowledges queued for the panel.", func(s caddx.StatisticsSnapshot) uint64 { return s.AcksSent }},
	{"naks_sent_total", "Negative acknowledges queued for the panel.", func(s caddx.StatisticsSnapshot) uint64 { return s.NaksSent }},
}

// registerLinkMetrics registers one counter per link statistic. Values are
// read from snapshot at scrape time.
func registerLinkMetrics(reg prometheus.Registerer, snapshot func() caddx.StatisticsSnapshot) {
	for _, c := range linkCounters {
		value := c.value
		reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "nx584",
			Subsystem: "link",
			Name:      c.name,
			Help:      c.help,
		}, func() float64 {
			return float64(value(snapshot()))
		}))
	}
}

// startMetrics serves /metrics on the configured address. It is a no-op
// without --metrics-addr. The returned function shuts the server down.
func startMetrics(snapshot func() caddx.StatisticsSnapshot) (func(), error) {
	addr := settings.Metrics.Addr
	if addr == "" {
		return func() {}, nil
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	registerLinkMetrics(reg, snapshot)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server failed")
		}
	}()
	logger.Info().Str("addr", ln.Addr().String()).Msg("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Debug().Err(err).Msg("metrics shutdown")
		}
	}, nil
}
