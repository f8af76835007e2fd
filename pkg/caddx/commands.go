// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Command builder functions create outbound messages for the common
// requests. Zone and partition arguments are wire indexes: 0 is zone 1 and
// partition 1.

// Keypad functions for NewPrimaryKeypadFunction
const (
	KeypadTurnOffSounder = 0x00
	KeypadDisarm         = 0x01
	KeypadArmAway        = 0x02
	KeypadArmStay        = 0x03
	KeypadCancel         = 0x04
	KeypadAutoArm        = 0x05
	KeypadStartWalkTest  = 0x06
	KeypadStopWalkTest   = 0x07
)

// Keypad functions for NewSecondaryKeypadFunction
const (
	SecondaryStay             = 0x00
	SecondaryChime            = 0x01
	SecondaryExit             = 0x02
	SecondaryBypassInteriors  = 0x03
	SecondaryFirePanic        = 0x04
	SecondaryMedicalPanic     = 0x05
	SecondaryPolicePanic      = 0x06
	SecondarySmokeReset       = 0x07
	SecondaryAutoCallback     = 0x08
	SecondaryManualPickup     = 0x09
	SecondarySilentExit       = 0x0A
	SecondaryPerformTest      = 0x0B
	SecondaryGroupBypass      = 0x0C
	SecondaryAuxiliary1       = 0x0D
	SecondaryAuxiliary2       = 0x0E
	SecondaryStartKeypadSound = 0x0F
)

// build goes through the same argument parser as user supplied commands.
// Every builder passes exactly the catalog's payload length, so an error
// here is a catalog defect.
func build(ctx Context, number byte, values ...uint8) *Message {
	t, ok := Lookup(number)
	if !ok {
		panic(fmt.Sprintf("caddx: message 0x%02X missing from catalog", number))
	}

	args := make([]string, len(values))
	for i, v := range values {
		args[i] = strconv.Itoa(int(v))
	}

	m, err := NewMessage(ctx, t, strings.Join(args, ","))
	if err != nil {
		panic(fmt.Sprintf("caddx: build 0x%02X: %v", number, err))
	}
	return m
}

// NewInterfaceConfigurationRequest asks for the Interface Configuration
// Message (0x01).
func NewInterfaceConfigurationRequest(ctx Context) *Message {
	return build(ctx, MsgInterfaceConfigurationRequest)
}

// NewZoneNameRequest asks for the 16 character name of a zone.
func NewZoneNameRequest(ctx Context, zone uint8) *Message {
	return build(ctx, MsgZoneNameRequest, zone)
}

// NewZoneStatusRequest asks for the Zone Status Message (0x04) of a zone.
func NewZoneStatusRequest(ctx Context, zone uint8) *Message {
	return build(ctx, MsgZoneStatusRequest, zone)
}

// NewZonesSnapshotRequest asks for the state of 16 zones starting at
// offset*16.
func NewZonesSnapshotRequest(ctx Context, offset uint8) *Message {
	return build(ctx, MsgZonesSnapshotRequest, offset)
}

// NewPartitionStatusRequest asks for the Partition Status Message (0x06).
func NewPartitionStatusRequest(ctx Context, partition uint8) *Message {
	return build(ctx, MsgPartitionStatusRequest, partition)
}

// NewPartitionsSnapshotRequest asks for the summary of all 8 partitions.
func NewPartitionsSnapshotRequest(ctx Context) *Message {
	return build(ctx, MsgPartitionsSnapshotRequest)
}

// NewSystemStatusRequest asks for the System Status Message (0x08).
func NewSystemStatusRequest(ctx Context) *Message {
	return build(ctx, MsgSystemStatusRequest)
}

// NewLogEventRequest asks for one entry of the panel event log.
func NewLogEventRequest(ctx Context, event uint8) *Message {
	return build(ctx, MsgLogEventRequest, event)
}

// NewZoneBypassToggle flips the bypass state of a zone.
func NewZoneBypassToggle(ctx Context, zone uint8) *Message {
	return build(ctx, MsgZoneBypassToggle, zone)
}

// NewPrimaryKeypadFunction performs an arm/disarm style keypad function on
// one partition on behalf of user. The interface must be programmed to
// accept commands without a PIN.
func NewPrimaryKeypadFunction(ctx Context, function, partition, user uint8) *Message {
	return build(ctx, MsgPrimaryKeypadFunctionNoPIN, function, partitionMask(partition), user)
}

// NewSecondaryKeypadFunction performs a one button keypad function (stay,
// chime, panic, ...) on one partition.
func NewSecondaryKeypadFunction(ctx Context, function, partition uint8) *Message {
	return build(ctx, MsgSecondaryKeypadFunction, function, partitionMask(partition))
}

// NewSetClockCalendar sets the panel clock from t.
func NewSetClockCalendar(ctx Context, t time.Time) *Message {
	return build(ctx, MsgSetClockCalendar,
		uint8(t.Year()%100),
		uint8(t.Month()),
		uint8(t.Day()),
		uint8(t.Hour()),
		uint8(t.Minute()),
		uint8(t.Weekday())+1,
	)
}

// NewPositiveAcknowledge builds the reply to a message that requested an
// acknowledge and passed its checksum.
func NewPositiveAcknowledge(ctx Context) *Message {
	return build(ctx, MsgPositiveAcknowledge)
}

// NewNegativeAcknowledge builds the reply to a message that requested an
// acknowledge but failed its checksum.
func NewNegativeAcknowledge(ctx Context) *Message {
	return build(ctx, MsgNegativeAcknowledge)
}

func partitionMask(partition uint8) uint8 {
	if partition > 7 {
		return 0
	}
	return 1 << partition
}
