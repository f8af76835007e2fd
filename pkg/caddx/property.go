// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"fmt"
	"strconv"
	"strings"
)

// PropertyType is the encoding of a field within a message body.
type PropertyType int

const (
	PropertyInt PropertyType = iota
	PropertyString
	PropertyBit
)

func (t PropertyType) String() string {
	switch t {
	case PropertyInt:
		return "Int"
	case PropertyString:
		return "String"
	case PropertyBit:
		return "Bit"
	default:
		return fmt.Sprintf("PropertyType(%d)", int(t))
	}
}

// MarshalYAML writes the type by name.
func (t PropertyType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// ParsePropertyType converts "Int", "String" or "Bit" (any case).
func ParsePropertyType(s string) (PropertyType, error) {
	switch strings.ToLower(s) {
	case "int":
		return PropertyInt, nil
	case "string":
		return PropertyString, nil
	case "bit":
		return PropertyBit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPropertyType, s)
	}
}

// Property describes one field of a message body. Offsets are 1-based, the
// same numbering the panel documentation uses.
type Property struct {
	ID         string       `yaml:"id,omitempty"`
	ByteOffset int          `yaml:"byte_offset"`
	ByteLength int          `yaml:"byte_length"`
	BitOffset  int          `yaml:"bit_offset"`
	BitLength  int          `yaml:"bit_length"`
	Type       PropertyType `yaml:"type"`
	Label      string       `yaml:"label"`
	External   bool         `yaml:"external"`
}

// Value decodes the field from body and renders it as a string.
//
// Int fields with a non-zero bit range are masked with
// ((1 << (BitLength-BitOffset)) - 1) << BitOffset. The catalog literals were
// written against that formula so it must not be replaced with a plain
// offset/width extraction.
func (p Property) Value(body []byte) (string, error) {
	switch p.Type {
	case PropertyInt:
		b, err := p.byteAt(body)
		if err != nil {
			return "", err
		}
		if p.BitOffset == 0 && p.BitLength == 0 {
			return strconv.Itoa(int(b)), nil
		}
		width := p.BitLength - p.BitOffset
		if width < 0 {
			return "", fmt.Errorf("%w: %q has bit length %d below bit offset %d",
				ErrFieldOutOfRange, p.Label, p.BitLength, p.BitOffset)
		}
		mask := ((1 << width) - 1) << p.BitOffset
		return strconv.Itoa((int(b) & mask) >> p.BitOffset), nil

	case PropertyString:
		start := p.ByteOffset - 1
		end := start + p.ByteLength
		if start < 0 || p.ByteLength < 0 || end > len(body) {
			return "", fmt.Errorf("%w: %q spans bytes %d-%d of %d",
				ErrFieldOutOfRange, p.Label, start, end, len(body))
		}
		return string(body[start:end]), nil

	case PropertyBit:
		b, err := p.byteAt(body)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(int(b)&(1<<p.BitOffset) != 0), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownPropertyType, p.Type)
	}
}

func (p Property) byteAt(body []byte) (byte, error) {
	i := p.ByteOffset - 1
	if i < 0 || i >= len(body) || p.BitOffset < 0 {
		return 0, fmt.Errorf("%w: %q at byte %d of %d",
			ErrFieldOutOfRange, p.Label, p.ByteOffset, len(body))
	}
	return body[i], nil
}
