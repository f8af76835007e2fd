// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zoneStatusRaw is a Zone Status Message for zone 3 (wire index 2), enabled
// on partition 1, faulted and bypassed, followed by its checksum.
var zoneStatusRaw = []byte{0x04, 0x02, 0x01, 0x00, 0x00, 0x00, 0x09, 0x00, 0x18, 0x8E}

func TestNewMessageFromBytes_ZoneStatus(t *testing.T) {
	m, err := NewMessageFromBytes(ContextDiscovery, zoneStatusRaw, true)
	require.NoError(t, err)

	assert.Equal(t, byte(MsgZoneStatus), m.Number())
	assert.True(t, m.IsChecksumCorrect())
	assert.True(t, m.IsLengthCorrect())
	assert.False(t, m.HasAcknowledgementFlag())
	assert.Equal(t, ContextDiscovery, m.Context())
	assert.Equal(t, SourceZone, m.Source())
	assert.Nil(t, m.ReplyMessageNumbers())
	assert.Equal(t, zoneStatusRaw[:8], m.Body())

	assert.Equal(t, "2", m.PropertyByID("zone_number"))
	assert.Equal(t, "true", m.PropertyByID("zone_partition1"))
	assert.Equal(t, "false", m.PropertyByID("zone_partition2"))
	assert.Equal(t, "true", m.PropertyByID("zone_faulted"))
	assert.Equal(t, "true", m.PropertyByID("zone_bypassed"))
	assert.Equal(t, "false", m.PropertyByID("zone_tampered"))
	assert.Equal(t, "true", m.PropertyValue("Bypassed"))
	assert.Equal(t, "", m.PropertyByID("partition_number"))
	assert.Equal(t, "", m.PropertyValue("No such label"))

	zone, ok := m.PropertyIntByID("zone_number")
	assert.True(t, ok)
	assert.Equal(t, 2, zone)
	faulted, ok := m.PropertyBoolByID("zone_faulted")
	assert.True(t, ok)
	assert.True(t, faulted)
	_, ok = m.PropertyBoolByID("missing")
	assert.False(t, ok)

	assert.Equal(t, "Zone Status Message [Zone: 2]", m.Name())
}

func TestNewMessageFromBytes_AckFlag(t *testing.T) {
	raw := []byte{0x84, 0x02, 0x01, 0x00, 0x00, 0x00, 0x09, 0x00, 0x98, 0x92}

	m, err := NewMessageFromBytes(ContextNone, raw, true)
	require.NoError(t, err)

	assert.True(t, m.HasAcknowledgementFlag())
	assert.True(t, m.IsChecksumCorrect(), "checksum covers the flagged byte")
	assert.Equal(t, byte(MsgZoneStatus), m.Number())
	assert.Equal(t, byte(MsgZoneStatus), m.Body()[0])

	frame, err := m.FrameBytes(ProtocolBinary)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{StartByte, 0x08}, raw...), frame)
}

func TestNewMessageFromBytes_ChecksumBitFlip(t *testing.T) {
	for i := 0; i < 7*8; i++ {
		raw := append([]byte(nil), zoneStatusRaw...)
		raw[1+i/8] ^= 1 << (i % 8)

		m, err := NewMessageFromBytes(ContextNone, raw, true)
		require.NoError(t, err)
		assert.False(t, m.IsChecksumCorrect(), "bit %d flipped", i)
	}
}

func TestNewMessageFromBytes_WithoutChecksum(t *testing.T) {
	m, err := NewMessageFromBytes(ContextNone, []byte{0x24, 0x05}, false)
	require.NoError(t, err)
	assert.True(t, m.IsChecksumCorrect())
	assert.Equal(t, Checksum{0x2B, 0x53}, m.ReceivedChecksum())
	assert.Equal(t, Checksum{0x2B, 0x53}, m.CalculatedChecksum())
	assert.Equal(t, []byte{0x04, 0x1C, 0x1F}, m.ReplyMessageNumbers())
}

func TestNewMessageFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name         string
		raw          []byte
		withChecksum bool
		err          error
	}{
		{"empty without checksum", []byte{}, false, ErrInvalidLength},
		{"two bytes with checksum", []byte{0x21, 0x22}, true, ErrInvalidLength},
		{"unknown type", []byte{0x02, 0x00, 0x00}, true, ErrUnknownMessageType},
		{"unknown type with ack flag", []byte{0x82}, false, ErrUnknownMessageType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMessageFromBytes(ContextNone, tt.raw, tt.withChecksum)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewMessageFromBytes_ShortBody(t *testing.T) {
	m, err := NewMessageFromBytes(ContextNone, []byte{0x04, 0x07}, false)
	require.NoError(t, err)
	assert.False(t, m.IsLengthCorrect())
	assert.Equal(t, "7", m.PropertyByID("zone_number"))
	assert.Equal(t, "", m.PropertyByID("zone_faulted"))
}

func TestNewMessage_Args(t *testing.T) {
	zoneReq, _ := Lookup(MsgZoneStatusRequest)
	ifReq, _ := Lookup(MsgInterfaceConfigurationRequest)
	keypad, _ := Lookup(MsgPrimaryKeypadFunctionNoPIN)

	tests := []struct {
		name     string
		t        *MessageType
		args     string
		expected []byte
	}{
		{"decimal", zoneReq, "5", []byte{0x24, 0x05}},
		{"hex", zoneReq, "0x05", []byte{0x24, 0x05}},
		{"octal", zoneReq, "010", []byte{0x24, 0x08}},
		{"negative", zoneReq, "-1", []byte{0x24, 0xFF}},
		{"top of byte", zoneReq, "255", []byte{0x24, 0xFF}},
		{"spaces", keypad, " 2, 0x01 ,3", []byte{0x3D, 0x02, 0x01, 0x03}},
		{"no payload", ifReq, "", []byte{0x21}},
		{"no payload ignores args", ifReq, "1,2,3", []byte{0x21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage(ContextCommand, tt.t, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.Body())
			assert.True(t, m.IsChecksumCorrect())
			assert.True(t, m.IsLengthCorrect())
			assert.Equal(t, ContextCommand, m.Context())
		})
	}
}

func TestNewMessage_Errors(t *testing.T) {
	zoneReq, _ := Lookup(MsgZoneStatusRequest)
	keypad, _ := Lookup(MsgPrimaryKeypadFunctionNoPIN)

	tests := []struct {
		name string
		t    *MessageType
		args string
		err  error
	}{
		{"too few", keypad, "1,2", ErrArgumentCount},
		{"too many", zoneReq, "1,2", ErrArgumentCount},
		{"not a number", zoneReq, "front", ErrInvalidArgument},
		{"empty value", keypad, "1,,2", ErrInvalidArgument},
		{"nil type", nil, "", ErrInvalidArgument},
		{"above a byte", zoneReq, "256", ErrInvalidArgument},
		{"below a signed byte", zoneReq, "-129", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMessage(ContextNone, tt.t, tt.args)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMessage_Name(t *testing.T) {
	tests := []struct {
		name     string
		msg      *Message
		expected string
	}{
		{"zone request", NewZoneStatusRequest(ContextNone, 4), "Zone Status Request [Zone: 4]"},
		{"partition request", NewPartitionStatusRequest(ContextNone, 1), "Partition Status Request [Partition: 1]"},
		{"log request", NewLogEventRequest(ContextNone, 9), "Log Event Request [Event: 9]"},
		{"plain", NewSystemStatusRequest(ContextNone), "System Status Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.msg.Name())
		})
	}
}

func TestMessage_WithContextLeavesOriginal(t *testing.T) {
	m := NewSystemStatusRequest(ContextNone)
	tagged := m.withContext("abc")
	assert.Equal(t, ContextNone, m.Context())
	assert.Equal(t, Context("abc"), tagged.Context())
	assert.Equal(t, m.Body(), tagged.Body())
}

func TestMessage_BodyIsCopy(t *testing.T) {
	m := NewZoneStatusRequest(ContextNone, 1)
	b := m.Body()
	b[1] = 0x55
	assert.Equal(t, byte(0x01), m.Body()[1])
}

func TestBuilders(t *testing.T) {
	clock := time.Date(2025, time.March, 14, 15, 9, 0, 0, time.UTC) // a Friday

	tests := []struct {
		name     string
		msg      *Message
		expected []byte
	}{
		{"interface configuration", NewInterfaceConfigurationRequest(ContextNone), []byte{0x21}},
		{"zone name", NewZoneNameRequest(ContextNone, 7), []byte{0x23, 0x07}},
		{"zone status", NewZoneStatusRequest(ContextNone, 5), []byte{0x24, 0x05}},
		{"zones snapshot", NewZonesSnapshotRequest(ContextNone, 2), []byte{0x25, 0x02}},
		{"partition status", NewPartitionStatusRequest(ContextNone, 1), []byte{0x26, 0x01}},
		{"partitions snapshot", NewPartitionsSnapshotRequest(ContextNone), []byte{0x27}},
		{"system status", NewSystemStatusRequest(ContextNone), []byte{0x28}},
		{"log event", NewLogEventRequest(ContextNone, 200), []byte{0x2A, 0xC8}},
		{"bypass toggle", NewZoneBypassToggle(ContextNone, 3), []byte{0x3F, 0x03}},
		{"primary keypad", NewPrimaryKeypadFunction(ContextNone, KeypadArmAway, 1, 4), []byte{0x3D, 0x02, 0x02, 0x04}},
		{"secondary keypad", NewSecondaryKeypadFunction(ContextNone, SecondaryChime, 0), []byte{0x3E, 0x01, 0x01}},
		{"secondary keypad bad partition", NewSecondaryKeypadFunction(ContextNone, SecondaryChime, 9), []byte{0x3E, 0x01, 0x00}},
		{"set clock", NewSetClockCalendar(ContextNone, clock), []byte{0x3B, 25, 3, 14, 15, 9, 6}},
		{"positive acknowledge", NewPositiveAcknowledge(ContextNone), []byte{0x1D}},
		{"negative acknowledge", NewNegativeAcknowledge(ContextNone), []byte{0x1E}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.msg.Body())
			assert.True(t, tt.msg.IsLengthCorrect())
			assert.Equal(t, CalculateChecksum(tt.expected), tt.msg.CalculatedChecksum())
		})
	}
}
