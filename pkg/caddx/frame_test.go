// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================
// Encoder Tests
// ============================================================

func TestEncodeFrame_Binary(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		expected []byte
	}{
		{"interface configuration request", []byte{0x21}, []byte{0x7E, 0x01, 0x21, 0x22, 0x23}},
		{"zone status request", []byte{0x24, 0x05}, []byte{0x7E, 0x02, 0x24, 0x05, 0x2B, 0x53}},
		{
			"escaped body",
			[]byte{0x7E, 0x7D, 0x01},
			[]byte{0x7E, 0x03, 0x7D, 0x5E, 0x7D, 0x5D, 0x01, 0x00, 0x83},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := EncodeFrame(ProtocolBinary, tt.body, CalculateChecksum(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, frame)
		})
	}
}

func TestEncodeFrame_EscapedChecksum(t *testing.T) {
	frame, err := EncodeFrame(ProtocolBinary, []byte{0x01}, Checksum{0x7E, 0x7D})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7E, 0x01, 0x01, 0x7D, 0x5E, 0x7D, 0x5D}, frame)
}

func TestEncodeFrame_ASCII(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		expected string
	}{
		{"interface configuration request", []byte{0x21}, "\n01212223\r"},
		{"zone status request", []byte{0x24, 0x05}, "\n0224052B53\r"},
		{"no stuffing", []byte{0x7E, 0x7D, 0x01}, "\n037E7D010083\r"},
		{"uppercase", []byte{0xFF, 0xFF, 0xFF, 0xFF}, "\n04FFFFFFFF0414\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := EncodeFrame(ProtocolASCII, tt.body, CalculateChecksum(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(frame))
		})
	}
}

func TestEncodeFrame_Errors(t *testing.T) {
	_, err := EncodeFrame(ProtocolBinary, nil, Checksum{})
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = EncodeFrame(ProtocolASCII, make([]byte, 256), Checksum{})
	assert.ErrorIs(t, err, ErrFrameTooLong)

	_, err = EncodeFrame(Protocol(7), []byte{0x21}, Checksum{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUnstuffBytes(t *testing.T) {
	out, err := UnstuffBytes([]byte{0x7D, 0x5E, 0x7D, 0x5D, 0x01})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7E, 0x7D, 0x01}, out)

	_, err = UnstuffBytes([]byte{0x01, 0x7D})
	assert.Error(t, err)
}

func TestParseProtocol(t *testing.T) {
	p, err := ParseProtocol("ASCII")
	require.NoError(t, err)
	assert.Equal(t, ProtocolASCII, p)

	p, err = ParseProtocol("binary")
	require.NoError(t, err)
	assert.Equal(t, ProtocolBinary, p)

	_, err = ParseProtocol("hex")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// ============================================================
// Receiver Tests
// ============================================================

func collect(r *Receiver, chunks ...[]byte) [][]byte {
	var out [][]byte
	for _, c := range chunks {
		r.Feed(c, func(raw []byte) {
			out = append(out, raw)
		})
	}
	return out
}

func TestReceiver_Binary(t *testing.T) {
	r := NewReceiver(ProtocolBinary, zerolog.Nop(), nil)
	frame := []byte{0x7E, 0x03, 0x7D, 0x5E, 0x7D, 0x5D, 0x01, 0x00, 0x83}

	got := collect(r, frame)
	require.Len(t, got, 1)
	assert.Equal(t, []byte{0x7E, 0x7D, 0x01, 0x00, 0x83}, got[0])
	assert.False(t, r.InFrame())
}

func TestReceiver_SkipsNoiseBeforeStart(t *testing.T) {
	r := NewReceiver(ProtocolBinary, zerolog.Nop(), nil)
	chunk := append([]byte{0x00, 0x13, 0x37}, 0x7E, 0x01, 0x21, 0x22, 0x23)

	got := collect(r, chunk)
	require.Len(t, got, 1)
	assert.Equal(t, []byte{0x21, 0x22, 0x23}, got[0])
}

func TestReceiver_SeveralFramesInOneChunk(t *testing.T) {
	r := NewReceiver(ProtocolBinary, zerolog.Nop(), nil)
	chunk := []byte{
		0x7E, 0x01, 0x21, 0x22, 0x23,
		0x7E, 0x02, 0x24, 0x05, 0x2B, 0x53,
	}

	got := collect(r, chunk)
	require.Len(t, got, 2)
	assert.Equal(t, []byte{0x21, 0x22, 0x23}, got[0])
	assert.Equal(t, []byte{0x24, 0x05, 0x2B, 0x53}, got[1])
}

func TestReceiver_ASCII(t *testing.T) {
	r := NewReceiver(ProtocolASCII, zerolog.Nop(), nil)

	got := collect(r, []byte("junk\n0224052B53\r\n011D1E1F\r"))
	require.Len(t, got, 2)
	assert.Equal(t, []byte{0x24, 0x05, 0x2B, 0x53}, got[0])
	assert.Equal(t, []byte{0x1D, 0x1E, 0x1F}, got[1])
}

func TestReceiver_PartialFrameDiscarded(t *testing.T) {
	stats := NewStatistics()
	r := NewReceiver(ProtocolBinary, zerolog.Nop(), stats)
	frame := []byte{0x7E, 0x02, 0x24, 0x05, 0x2B, 0x53}

	got := collect(r, frame[:3], frame[3:])
	assert.Empty(t, got)
	assert.False(t, r.InFrame())
	assert.Equal(t, uint64(1), stats.PartialFrames.Load())

	// The next whole frame is still decoded.
	got = collect(r, frame)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), stats.FramesReceived.Load())
}

func TestReceiver_PartialFrameDiscardedAfterStartByte(t *testing.T) {
	r := NewReceiver(ProtocolASCII, zerolog.Nop(), nil)
	got := collect(r, []byte("\n"), []byte("0224052B53\r"))
	assert.Empty(t, got)
}

func TestReceiver_HoldPartialFrames(t *testing.T) {
	tests := []struct {
		name     string
		protocol Protocol
		frame    []byte
	}{
		{"binary", ProtocolBinary, []byte{0x7E, 0x03, 0x7D, 0x5E, 0x7D, 0x5D, 0x01, 0x00, 0x83}},
		{"ascii", ProtocolASCII, []byte("\n037E7D010083\r")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Split at every position, including inside escapes and hex pairs.
			for split := 1; split < len(tt.frame); split++ {
				r := NewReceiver(tt.protocol, zerolog.Nop(), nil)
				r.SetHoldPartialFrames(true)

				got := collect(r, tt.frame[:split], tt.frame[split:])
				require.Len(t, got, 1, "split at %d", split)
				assert.Equal(t, []byte{0x7E, 0x7D, 0x01, 0x00, 0x83}, got[0], "split at %d", split)
			}
		})
	}
}

func TestReceiver_Reset(t *testing.T) {
	r := NewReceiver(ProtocolBinary, zerolog.Nop(), nil)
	r.SetHoldPartialFrames(true)
	collect(r, []byte{0x7E, 0x02, 0x24})
	assert.True(t, r.InFrame())

	r.Reset()
	assert.False(t, r.InFrame())
	assert.Equal(t, ProtocolBinary, r.Protocol())
}

func TestReceiver_DecodedFrameBuildsMessage(t *testing.T) {
	m := NewZoneStatusRequest(ContextNone, 5)

	for _, p := range []Protocol{ProtocolBinary, ProtocolASCII} {
		frame, err := m.FrameBytes(p)
		require.NoError(t, err)

		got := collect(NewReceiver(p, zerolog.Nop(), nil), frame)
		require.Len(t, got, 1, p.String())

		decoded, err := NewMessageFromBytes(ContextNone, got[0], true)
		require.NoError(t, err)
		assert.True(t, decoded.IsChecksumCorrect())
		assert.Equal(t, m.Body(), decoded.Body())
	}
}
