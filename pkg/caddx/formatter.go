// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"fmt"
	"strings"
)

// FormatMessage formats a message into a human-readable string. Int and
// String fields are listed one per line; Bit fields that are set are
// collected on a single line.
func FormatMessage(m *Message) string {
	var b strings.Builder

	timestamp := m.timestamp.Format("15:04:05.000")
	fmt.Fprintf(&b, "[%s] %s (0x%02X) len=%d", timestamp, m.Name(), m.Number(), len(m.body))
	if m.ackFlag {
		b.WriteString(" ack")
	}
	if !m.IsChecksumCorrect() {
		fmt.Fprintf(&b, " CHECKSUM %02X%02X != %02X%02X",
			m.received[0], m.received[1], m.computed[0], m.computed[1])
	}
	if !m.IsLengthCorrect() {
		fmt.Fprintf(&b, " LENGTH (expected %d)", m.msgType.Length)
	}
	b.WriteString("\n")

	var set []string
	for i, p := range m.msgType.Properties {
		if p.ByteOffset == 1 {
			continue // message number
		}
		v := m.values[i]
		switch p.Type {
		case PropertyBit:
			if v == "true" {
				set = append(set, p.Label)
			}
		case PropertyString:
			fmt.Fprintf(&b, "  %s: %q\n", p.Label, strings.TrimRight(v, " \x00"))
		default:
			fmt.Fprintf(&b, "  %s: %s\n", p.Label, v)
		}
	}
	if len(set) > 0 {
		fmt.Fprintf(&b, "  Set: %s\n", strings.Join(set, ", "))
	}

	return b.String()
}

// FormatMessageCompact formats a message on one line.
func FormatMessageCompact(m *Message) string {
	return fmt.Sprintf("%s (0x%02X)", m.Name(), m.Number())
}

// FormatMessageType returns the catalog name for a message number, or
// "UNKNOWN".
func FormatMessageType(number byte) string {
	t, ok := Lookup(number & MessageTypeMask)
	if !ok {
		return "UNKNOWN"
	}
	return t.Name
}

// FormatHex renders bytes as space separated uppercase hex.
func FormatHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(data) * 3)
	for i, d := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(hexDigits[d>>4])
		b.WriteByte(hexDigits[d&0x0F])
	}
	return b.String()
}
