// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"fmt"
)

const hexDigits = "0123456789ABCDEF"

// EncodeFrame frames body and its checksum for transmission.
func EncodeFrame(p Protocol, body []byte, sum Checksum) ([]byte, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidLength)
	}
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFrameTooLong, len(body), MaxBodySize)
	}

	switch p {
	case ProtocolBinary:
		return encodeBinary(body, sum), nil
	case ProtocolASCII:
		return encodeASCII(body, sum), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, p)
	}
}

// encodeBinary builds START, length, then the stuffed body and checksum. The
// length byte counts body bytes before stuffing and is never escaped.
func encodeBinary(body []byte, sum Checksum) []byte {
	frame := make([]byte, 0, 2*(len(body)+ChecksumSize)+2)
	frame = append(frame, StartByte, byte(len(body)))
	frame = append(frame, stuffBytes(body)...)
	frame = append(frame, stuffBytes(sum[:])...)
	return frame
}

// encodeASCII builds LF, then two uppercase hex digits for the length, each
// body byte and each checksum byte, then CR.
func encodeASCII(body []byte, sum Checksum) []byte {
	frame := make([]byte, 0, 2*(len(body)+ChecksumSize+1)+2)
	frame = append(frame, ASCIIStartByte)
	frame = appendHex(frame, byte(len(body)))
	for _, b := range body {
		frame = appendHex(frame, b)
	}
	frame = appendHex(frame, sum[0])
	frame = appendHex(frame, sum[1])
	frame = append(frame, ASCIIEndByte)
	return frame
}

func appendHex(dst []byte, b byte) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0x0F])
}

// stuffBytes escapes START and ESC as ESC followed by the byte XOR EscXor,
// giving 7D 5E and 7D 5D.
func stuffBytes(data []byte) []byte {
	result := make([]byte, 0, len(data)*2)

	for _, b := range data {
		if b == StartByte || b == EscByte {
			result = append(result, EscByte, b^EscXor)
		} else {
			result = append(result, b)
		}
	}

	return result
}

// UnstuffBytes removes byte stuffing from escaped data. The escaped byte is
// restored by OR-ing EscXor back in, which inverts stuffBytes for the two
// escaped values.
func UnstuffBytes(data []byte) ([]byte, error) {
	result := make([]byte, 0, len(data))
	escapeNext := false

	for _, b := range data {
		if escapeNext {
			result = append(result, b|EscXor)
			escapeNext = false
		} else if b == EscByte {
			escapeNext = true
		} else {
			result = append(result, b)
		}
	}

	if escapeNext {
		return nil, fmt.Errorf("incomplete escape sequence at end of data")
	}

	return result, nil
}

// hexValue maps an ASCII hex digit to its value. Anything that is not
// '0'-'9' is treated as an uppercase letter.
func hexValue(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	return c - 0x37
}
