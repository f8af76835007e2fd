// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	replayZoneStatus = []byte{0x04, 0x02, 0x01, 0x00, 0x00, 0x00, 0x09, 0x00, 0x18, 0x8E}
	replayLogEvent   = []byte{0x0A, 0x05, 0x20, 0x17, 0x03, 0x00, 0x0C, 0x1F, 0x10, 0x2D, 0xBB, 0x8F}
	replayUnknown    = []byte{0x60, 0x00, 0x00}
)

func writeCapture(t *testing.T, raws ...[]byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w, err := caddx.NewCaptureWriter(&buf)
	require.NoError(t, err)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, raw := range raws {
		require.NoError(t, w.Write(caddx.CaptureRecord{
			Timestamp: at.Add(time.Duration(i) * time.Second),
			Protocol:  caddx.ProtocolBinary,
			Direction: caddx.DirectionIn,
			Raw:       raw,
		}))
	}
	return &buf
}

func TestReplayCapture(t *testing.T) {
	tests := []struct {
		name     string
		opts     replayOptions
		contains []string
		absent   []string
	}{
		{
			name: "all records",
			contains: []string{
				"2025-06-01 in binary [12:00:00.000] Zone Status Message [Zone: 2]",
				"2025-06-01 in binary [12:00:01.000] Log Event Message",
				"2025-06-01 in binary [12:00:02.000] [ERROR]",
			},
		},
		{
			name:   "type filter",
			opts:   replayOptions{only: caddx.MessageTypes()[0]},
			absent: []string{"Zone Status Message", "Log Event Message", "[ERROR]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capture := writeCapture(t, replayZoneStatus, replayLogEvent, replayUnknown)
			stats := caddx.NewStatistics()
			var out bytes.Buffer

			records, err := replayCapture(capture, &out, stats, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, 3, records)

			snap := stats.Snapshot()
			assert.Equal(t, uint64(2), snap.ValidMessages)
			assert.Equal(t, uint64(1), snap.DecodeErrors)

			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestReplayCapture_KeepsCaptureTime(t *testing.T) {
	capture := writeCapture(t, replayZoneStatus)

	var out bytes.Buffer
	_, err := replayCapture(capture, &out, caddx.NewStatistics(), replayOptions{})
	require.NoError(t, err)

	header, _, _ := strings.Cut(out.String(), "\n")
	assert.Equal(t, "2025-06-01 in binary [12:00:00.000] Zone Status Message [Zone: 2] (0x04) len=8", header)
}

func TestReplayCapture_OnlyLogEvents(t *testing.T) {
	capture := writeCapture(t, replayZoneStatus, replayLogEvent)
	only, ok := caddx.LookupKey("log_event_message")
	require.True(t, ok)

	var out bytes.Buffer
	_, err := replayCapture(capture, &out, caddx.NewStatistics(), replayOptions{only: only, validate: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Log Event Message")
	assert.NotContains(t, out.String(), "Zone Status Message")
}

func TestReplayCapture_Validate(t *testing.T) {
	bad := append([]byte{}, replayZoneStatus...)
	bad[len(bad)-1] ^= 0x01
	capture := writeCapture(t, bad)

	var out bytes.Buffer
	_, err := replayCapture(capture, &out, caddx.NewStatistics(), replayOptions{validate: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "! checksum:")
}

func TestReplayCapture_Truncated(t *testing.T) {
	capture := writeCapture(t, replayZoneStatus)
	truncated := bytes.NewReader(capture.Bytes()[:capture.Len()-3])

	records, err := replayCapture(truncated, &bytes.Buffer{}, caddx.NewStatistics(), replayOptions{})
	assert.Error(t, err)
	assert.Equal(t, 0, records)
}
