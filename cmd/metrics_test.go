// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"testing"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLinkMetrics(t *testing.T) {
	snap := caddx.StatisticsSnapshot{
		FramesReceived:    12,
		ChecksumErrors:    1,
		MessagesDelivered: 11,
		Retries:           3,
	}

	reg := prometheus.NewRegistry()
	registerLinkMetrics(reg, func() caddx.StatisticsSnapshot { return snap })

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, len(linkCounters))

	values := make(map[string]float64)
	for _, mf := range families {
		require.Len(t, mf.GetMetric(), 1)
		values[mf.GetName()] = mf.GetMetric()[0].GetCounter().GetValue()
	}

	assert.Equal(t, 12.0, values["nx584_link_frames_received_total"])
	assert.Equal(t, 1.0, values["nx584_link_checksum_errors_total"])
	assert.Equal(t, 11.0, values["nx584_link_messages_delivered_total"])
	assert.Equal(t, 3.0, values["nx584_link_retries_total"])
	assert.Equal(t, 0.0, values["nx584_link_naks_sent_total"])

	// Read at scrape time
	snap.Retries = 4
	families, err = reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "nx584_link_retries_total" {
			assert.Equal(t, 4.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
}

func TestStartMetrics(t *testing.T) {
	saved := settings
	t.Cleanup(func() { settings = saved })

	settings.Metrics.Addr = ""
	stop, err := startMetrics(caddx.NewStatistics().Snapshot)
	require.NoError(t, err)
	stop()

	settings.Metrics.Addr = "127.0.0.1:0"
	stop, err = startMetrics(caddx.NewStatistics().Snapshot)
	require.NoError(t, err)
	stop()

	settings.Metrics.Addr = "not an address"
	_, err = startMetrics(caddx.NewStatistics().Snapshot)
	assert.Error(t, err)
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		ms   uint64
		want string
	}{
		{0, "0 seconds"},
		{999, "0 seconds"},
		{1000, "1 second"},
		{61000, "1 minute and 1 second"},
		{7200000, "2 hours"},
		{90061000, "1 day, 1 hour, 1 minute, and 1 second"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatUptime(tt.ms))
		})
	}
}
