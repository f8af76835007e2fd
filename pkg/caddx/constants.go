// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

// Package caddx implements the serial protocol spoken by the Caddx NX-584
// home automation interface and the NX-8E panel.
//
// The protocol is half duplex with a single outstanding request. Messages
// travel in one of two line framings (byte-stuffed binary or hex ASCII),
// carry a two byte Fletcher checksum and may ask the receiver for an
// acknowledgement through the top bit of the message number.
package caddx

import (
	"fmt"
	"strings"
)

// Binary framing bytes
const (
	StartByte = 0x7E
	EscByte   = 0x7D
	EscXor    = 0x20
)

// ASCII framing bytes
const (
	ASCIIStartByte = 0x0A
	ASCIIEndByte   = 0x0D
)

// Message number layout
const (
	AckRequiredFlag = 0x80
	MessageTypeMask = 0x7F
	ChecksumSize    = 2
	MaxBodySize     = 0xFF
)

// Message numbers used directly by the library and the CLI
const (
	MsgInterfaceConfiguration        = 0x01
	MsgZoneName                      = 0x03
	MsgZoneStatus                    = 0x04
	MsgZonesSnapshot                 = 0x05
	MsgPartitionStatus               = 0x06
	MsgPartitionsSnapshot            = 0x07
	MsgSystemStatus                  = 0x08
	MsgX10Received                   = 0x09
	MsgLogEvent                      = 0x0A
	MsgKeypadReceived                = 0x0B
	MsgRequestFailed                 = 0x1C
	MsgPositiveAcknowledge           = 0x1D
	MsgNegativeAcknowledge           = 0x1E
	MsgMessageRejected               = 0x1F
	MsgInterfaceConfigurationRequest = 0x21
	MsgZoneNameRequest               = 0x23
	MsgZoneStatusRequest             = 0x24
	MsgZonesSnapshotRequest          = 0x25
	MsgPartitionStatusRequest        = 0x26
	MsgPartitionsSnapshotRequest     = 0x27
	MsgSystemStatusRequest           = 0x28
	MsgLogEventRequest               = 0x2A
	MsgSetClockCalendar              = 0x3B
	MsgPrimaryKeypadFunctionNoPIN    = 0x3D
	MsgSecondaryKeypadFunction       = 0x3E
	MsgZoneBypassToggle              = 0x3F
)

// Protocol selects the line framing.
type Protocol int

const (
	ProtocolBinary Protocol = iota
	ProtocolASCII
)

func (p Protocol) String() string {
	switch p {
	case ProtocolBinary:
		return "binary"
	case ProtocolASCII:
		return "ascii"
	default:
		return fmt.Sprintf("protocol(%d)", int(p))
	}
}

// ParseProtocol accepts "binary" or "ascii" in any case.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin":
		return ProtocolBinary, nil
	case "ascii":
		return ProtocolASCII, nil
	default:
		return ProtocolBinary, fmt.Errorf("%w: unknown protocol %q", ErrInvalidArgument, s)
	}
}

// Direction tells which side of the link sends a message type.
type Direction int

const (
	DirectionIn  Direction = iota // panel to host
	DirectionOut                  // host to panel
	DirectionBoth
)

func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	case DirectionBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Source is the panel subsystem a message describes.
type Source int

const (
	SourceNone Source = iota
	SourcePanel
	SourceZone
	SourcePartition
	SourceKeypad
)

func (s Source) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourcePanel:
		return "panel"
	case SourceZone:
		return "zone"
	case SourcePartition:
		return "partition"
	case SourceKeypad:
		return "keypad"
	default:
		return "unknown"
	}
}

// Context tags a message with the purpose of the exchange that produced it.
// Replies inherit the context of the request they answer.
type Context string

const (
	ContextNone      Context = "none"
	ContextDiscovery Context = "discovery"
	ContextCommand   Context = "command"
)
