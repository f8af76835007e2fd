// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import "fmt"

// Panel limits of the NX-8E, the largest panel the interface serves.
const (
	MaxZones      = 192
	MaxPartitions = 8
)

// AnomalyType represents different types of message anomalies
type AnomalyType int

const (
	AnomalyChecksum AnomalyType = iota
	AnomalyLengthMismatch
	AnomalyDirection
	AnomalyInvalidValue
	AnomalyDecodeError
)

func (a AnomalyType) String() string {
	switch a {
	case AnomalyChecksum:
		return "checksum"
	case AnomalyLengthMismatch:
		return "length"
	case AnomalyDirection:
		return "direction"
	case AnomalyInvalidValue:
		return "value"
	case AnomalyDecodeError:
		return "decode"
	default:
		return "unknown"
	}
}

// ValidationError represents a message validation failure
type ValidationError struct {
	Type    AnomalyType
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	return v.Message
}

// ValidateMessage checks a message that was received from the panel.
// Returns a slice of validation errors (empty if the message is valid)
func ValidateMessage(m *Message) []ValidationError {
	errors := []ValidationError{}

	if !m.IsChecksumCorrect() {
		errors = append(errors, ValidationError{
			Type: AnomalyChecksum,
			Message: fmt.Sprintf("Checksum mismatch: received %02X %02X, calculated %02X %02X",
				m.received[0], m.received[1], m.computed[0], m.computed[1]),
			Details: map[string]interface{}{"received": m.received, "calculated": m.computed},
		})
	}

	if !m.IsLengthCorrect() {
		errors = append(errors, ValidationError{
			Type: AnomalyLengthMismatch,
			Message: fmt.Sprintf("%s is %d bytes, expected %d",
				m.msgType.Name, len(m.body), m.msgType.Length),
			Details: map[string]interface{}{"length": len(m.body), "expected": m.msgType.Length},
		})
	}

	if m.msgType.Direction == DirectionOut {
		errors = append(errors, ValidationError{
			Type:    AnomalyDirection,
			Message: fmt.Sprintf("%s is only sent to the panel", m.msgType.Name),
			Details: map[string]interface{}{"number": m.msgType.Number},
		})
	}

	switch m.msgType.Number {
	case MsgZoneStatus, MsgZoneName:
		errors = append(errors, checkRange(m, "zone_number", 0, MaxZones-1)...)
	case MsgPartitionStatus:
		errors = append(errors, checkRange(m, "partition_number", 0, MaxPartitions-1)...)
	case MsgLogEvent:
		errors = append(errors, checkRange(m, "panel_log_event_month", 1, 12)...)
		errors = append(errors, checkRange(m, "panel_log_event_day", 1, 31)...)
		errors = append(errors, checkRange(m, "panel_log_event_hour", 0, 23)...)
		errors = append(errors, checkRange(m, "panel_log_event_minute", 0, 59)...)
	}

	return errors
}

func checkRange(m *Message, id string, min, max int) []ValidationError {
	v, ok := m.PropertyIntByID(id)
	if !ok || (v >= min && v <= max) {
		return nil
	}
	return []ValidationError{{
		Type:    AnomalyInvalidValue,
		Message: fmt.Sprintf("Invalid %s=%d (range %d-%d)", id, v, min, max),
		Details: map[string]interface{}{id: v, "min": min, "max": max},
	}}
}
