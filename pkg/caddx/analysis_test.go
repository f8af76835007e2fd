// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logEventRaw = []byte{0x0A, 0x05, 0x20, 0x17, 0x03, 0x00, 0x0C, 0x1F, 0x10, 0x2D, 0xBB, 0x8F}

func mustMessage(t *testing.T, raw []byte, withChecksum bool) *Message {
	t.Helper()
	m, err := NewMessageFromBytes(ContextNone, raw, withChecksum)
	require.NoError(t, err)
	return m
}

// ============================================================
// Formatter
// ============================================================

func TestFormatMessage(t *testing.T) {
	out := FormatMessage(mustMessage(t, zoneStatusRaw, true))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "Zone Status Message [Zone: 2] (0x04) len=8")
	assert.NotContains(t, lines[0], "CHECKSUM")
	assert.Contains(t, out, "  Zone number: 2\n")
	assert.Contains(t, out, "Partition 1 enable")
	assert.NotContains(t, out, "Partition 2 enable")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "  Set: "))
}

func TestFormatMessage_Anomalies(t *testing.T) {
	raw := append([]byte(nil), zoneStatusRaw...)
	raw[9] ^= 0x01
	out := FormatMessage(mustMessage(t, raw, true))
	assert.Contains(t, out, "CHECKSUM 188F != 188E")

	short := mustMessage(t, []byte{0x84, 0x02}, false)
	out = FormatMessage(short)
	assert.Contains(t, out, " ack")
	assert.Contains(t, out, "LENGTH (expected 8)")
}

func TestFormatMessageCompact(t *testing.T) {
	m := mustMessage(t, logEventRaw, true)
	assert.Equal(t, "Log Event Message [Event: 5] (0x0A)", FormatMessageCompact(m))
	assert.Equal(t, FormatMessageCompact(m), m.String())
}

func TestFormatMessageType(t *testing.T) {
	tests := []struct {
		number byte
		want   string
	}{
		{0x04, "Zone Status Message"},
		{0x84, "Zone Status Message"},
		{0x1D, "Positive Acknowledge"},
		{0x7F, "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMessageType(tt.number), "0x%02X", tt.number)
	}
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "", FormatHex(nil))
	assert.Equal(t, "7E", FormatHex([]byte{0x7E}))
	assert.Equal(t, "7E 03 7D 5E 0A", FormatHex([]byte{0x7E, 0x03, 0x7D, 0x5E, 0x0A}))
}

// ============================================================
// Validator
// ============================================================

func anomalyTypes(errs []ValidationError) []AnomalyType {
	types := make([]AnomalyType, 0, len(errs))
	for _, e := range errs {
		types = append(types, e.Type)
	}
	return types
}

func TestValidateMessage(t *testing.T) {
	badChecksum := append([]byte(nil), zoneStatusRaw...)
	badChecksum[8] = 0x00

	badMonth := append([]byte(nil), logEventRaw[:10]...)
	badMonth[6] = 13

	tests := []struct {
		name         string
		raw          []byte
		withChecksum bool
		want         []AnomalyType
	}{
		{"valid zone status", zoneStatusRaw, true, nil},
		{"valid log event", logEventRaw, true, nil},
		{"checksum", badChecksum, true, []AnomalyType{AnomalyChecksum}},
		{"short body", []byte{0x04, 0x02, 0x01}, false, []AnomalyType{AnomalyLengthMismatch}},
		{"outbound type", []byte{0x21}, false, []AnomalyType{AnomalyDirection}},
		{"zone out of range", []byte{0x03, 0xC0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, false, []AnomalyType{AnomalyInvalidValue}},
		{"partition out of range", []byte{0x06, 0x08, 0, 0, 0, 0, 0, 0, 0}, false, []AnomalyType{AnomalyInvalidValue}},
		{"log month", badMonth, false, []AnomalyType{AnomalyInvalidValue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateMessage(mustMessage(t, tt.raw, tt.withChecksum))
			if tt.want == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.want, anomalyTypes(errs))
			for _, e := range errs {
				assert.NotEmpty(t, e.Error())
			}
		})
	}
}

func TestAnomalyTypeString(t *testing.T) {
	assert.Equal(t, "checksum", AnomalyChecksum.String())
	assert.Equal(t, "length", AnomalyLengthMismatch.String())
	assert.Equal(t, "unknown", AnomalyType(42).String())
}

// ============================================================
// Statistics
// ============================================================

func TestStatistics_Update(t *testing.T) {
	s := NewStatistics()

	valid := mustMessage(t, zoneStatusRaw, true)
	s.Update(valid, nil, ValidateMessage(valid))
	s.Update(nil, ErrInvalidLength, nil)

	short := mustMessage(t, []byte{0x21, 0x00}, false)
	s.Update(short, nil, ValidateMessage(short))

	snap := s.Snapshot()
	assert.Equal(t, uint64(1), snap.ValidMessages)
	assert.Equal(t, uint64(1), snap.DecodeErrors)
	assert.Equal(t, uint64(1), snap.LengthMismatches)
	assert.Equal(t, uint64(1), snap.DirectionErrors)
	assert.Equal(t, uint64(3), snap.Errors())
}

func TestStatistics_StringAndReset(t *testing.T) {
	s := NewStatistics()
	s.FramesReceived.Add(4)
	s.ValidMessages.Add(3)
	s.ChecksumErrors.Add(1)
	s.MessagesSent.Add(2)
	s.Retries.Add(1)

	out := s.String()
	assert.Contains(t, out, "Frames Received:        4")
	assert.Contains(t, out, "(75.0%)")
	assert.Contains(t, out, "Checksum Errors:")
	assert.NotContains(t, out, "Decode Errors:")
	assert.Contains(t, out, "Messages Sent:")

	s.Reset()
	snap := s.Snapshot()
	assert.Zero(t, snap.FramesReceived)
	assert.Zero(t, snap.Retries)
	assert.Zero(t, snap.Errors())
}

// ============================================================
// Capture
// ============================================================

func TestCapture_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCaptureWriter(&buf)
	require.NoError(t, err)

	at := time.Date(2025, 3, 14, 16, 45, 0, 123000000, time.UTC)
	records := []CaptureRecord{
		{Timestamp: at, Protocol: ProtocolBinary, Direction: DirectionIn, Raw: zoneStatusRaw},
		{Timestamp: at.Add(time.Second), Protocol: ProtocolASCII, Direction: DirectionOut, Raw: []byte{0x21, 0x22, 0x23}},
	}
	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}

	r := NewCaptureReader(&buf)
	for _, want := range records {
		got, err := r.Next()
		require.NoError(t, err)
		assert.True(t, want.Timestamp.Equal(got.Timestamp))
		assert.Equal(t, want.Protocol, got.Protocol)
		assert.Equal(t, want.Direction, got.Direction)
		assert.Equal(t, want.Raw, got.Raw)

		m, err := got.Message()
		require.NoError(t, err)
		assert.True(t, m.IsChecksumCorrect())
		assert.True(t, want.Timestamp.Equal(m.Timestamp()), "message keeps the capture time")
		assert.True(t, strings.HasPrefix(FormatMessage(m), want.Timestamp.Format("[15:04:05.000]")))
	}

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestCapture_Truncated(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCaptureWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(CaptureRecord{Timestamp: time.Now(), Raw: zoneStatusRaw}))

	data := buf.Bytes()
	r := NewCaptureReader(bytes.NewReader(data[:len(data)-3]))
	_, err = r.Next()
	require.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
}
