// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"github.com/rs/zerolog"
)

// Receiver states
const (
	stateIdle   = iota // scanning for the start byte
	stateLength        // next byte (or hex pair) is the body length
	stateBody          // collecting body and checksum bytes
)

// Receiver reassembles raw messages from the byte stream of one protocol.
//
// Bytes arrive in chunks, one per read from the port. By default a frame that
// is still incomplete when its chunk runs out is thrown away and the
// receiver goes back to scanning for a start byte, so a frame split across
// two reads is lost. SetHoldPartialFrames keeps the partial frame instead.
//
// A Receiver is not safe for concurrent use.
type Receiver struct {
	protocol    Protocol
	holdPartial bool
	logger      zerolog.Logger
	stats       *Statistics

	state      int
	buffer     []byte
	length     int
	unstuff    bool
	haveNibble bool
	nibble     byte
}

// NewReceiver creates a receiver for protocol p. stats may be nil.
func NewReceiver(p Protocol, logger zerolog.Logger, stats *Statistics) *Receiver {
	return &Receiver{
		protocol: p,
		logger:   logger.With().Str("component", "receiver").Logger(),
		stats:    stats,
		state:    stateIdle,
		buffer:   make([]byte, 0, MaxBodySize+ChecksumSize),
	}
}

// SetHoldPartialFrames controls whether a frame may span chunks.
func (r *Receiver) SetHoldPartialFrames(hold bool) {
	r.holdPartial = hold
}

// Protocol returns the framing the receiver decodes.
func (r *Receiver) Protocol() Protocol {
	return r.protocol
}

// InFrame reports whether a frame is partially assembled.
func (r *Receiver) InFrame() bool {
	return r.state != stateIdle
}

// Reset drops any partial frame.
func (r *Receiver) Reset() {
	r.state = stateIdle
	r.buffer = r.buffer[:0]
	r.length = 0
	r.unstuff = false
	r.haveNibble = false
	r.nibble = 0
}

// Feed decodes one chunk. emit is called with every completed raw message
// (body followed by the two checksum bytes); the slice is owned by the
// callee.
func (r *Receiver) Feed(chunk []byte, emit func(raw []byte)) {
	for _, b := range chunk {
		if raw := r.decodeByte(b); raw != nil {
			if r.stats != nil {
				r.stats.FramesReceived.Add(1)
			}
			r.logger.Trace().Hex("raw", raw).Msg("frame received")
			emit(raw)
		}
	}

	if r.state != stateIdle && !r.holdPartial {
		r.logger.Trace().
			Int("have", len(r.buffer)).
			Int("want", r.length).
			Msg("input drained mid frame, discarding")
		if r.stats != nil {
			r.stats.PartialFrames.Add(1)
		}
		r.Reset()
	}
}

// decodeByte advances the state machine by one wire byte and returns the
// raw message when it completes.
func (r *Receiver) decodeByte(b byte) []byte {
	if r.state == stateIdle {
		start := byte(StartByte)
		if r.protocol == ProtocolASCII {
			start = ASCIIStartByte
		}
		if b == start {
			r.Reset()
			r.state = stateLength
		}
		return nil
	}

	if r.protocol == ProtocolASCII {
		if !r.haveNibble {
			r.nibble = hexValue(b) << 4
			r.haveNibble = true
			return nil
		}
		b = r.nibble + hexValue(b)
		r.haveNibble = false
	}

	if r.state == stateLength {
		r.length = int(b) + ChecksumSize
		r.buffer = r.buffer[:0]
		r.state = stateBody
		return nil
	}

	if r.protocol == ProtocolBinary {
		if b == EscByte {
			r.unstuff = true
			return nil
		}
		if r.unstuff {
			b |= EscXor
			r.unstuff = false
		}
	}

	r.buffer = append(r.buffer, b)
	if len(r.buffer) < r.length {
		return nil
	}

	raw := make([]byte, len(r.buffer))
	copy(raw, r.buffer)
	r.Reset()
	return raw
}
