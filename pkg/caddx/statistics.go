// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks link counters. The counters are updated from the read
// and dispatch goroutines and may be read at any time.
type Statistics struct {
	mu        sync.Mutex
	startTime time.Time

	// Receive path
	FramesReceived atomic.Uint64
	PartialFrames  atomic.Uint64
	DecodeErrors   atomic.Uint64
	ChecksumErrors atomic.Uint64
	HandoffDrops   atomic.Uint64

	// Validation (passive analysis)
	ValidMessages    atomic.Uint64
	LengthMismatches atomic.Uint64
	DirectionErrors  atomic.Uint64
	InvalidValues    atomic.Uint64

	// Dispatch loop
	MessagesSent      atomic.Uint64
	MessagesDelivered atomic.Uint64
	Retries           atomic.Uint64
	UnexpectedReplies atomic.Uint64
	GraceCycles       atomic.Uint64
	AcksSent          atomic.Uint64
	NaksSent          atomic.Uint64
}

// StatisticsSnapshot is a point in time copy of Statistics.
type StatisticsSnapshot struct {
	Elapsed time.Duration

	FramesReceived    uint64
	PartialFrames     uint64
	DecodeErrors      uint64
	ChecksumErrors    uint64
	HandoffDrops      uint64
	ValidMessages     uint64
	LengthMismatches  uint64
	DirectionErrors   uint64
	InvalidValues     uint64
	MessagesSent      uint64
	MessagesDelivered uint64
	Retries           uint64
	UnexpectedReplies uint64
	GraceCycles       uint64
	AcksSent          uint64
	NaksSent          uint64

	FrameRate float64 // frames/sec
	ErrorRate float64 // errors/sec
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	return &Statistics{startTime: time.Now()}
}

// Update records the outcome of decoding and validating one received frame.
// m is nil when the frame could not be decoded.
func (s *Statistics) Update(m *Message, decodeErr error, validationErrors []ValidationError) {
	if decodeErr != nil || m == nil {
		s.DecodeErrors.Add(1)
		return
	}

	if len(validationErrors) == 0 {
		s.ValidMessages.Add(1)
		return
	}

	for _, v := range validationErrors {
		switch v.Type {
		case AnomalyChecksum:
			s.ChecksumErrors.Add(1)
		case AnomalyLengthMismatch:
			s.LengthMismatches.Add(1)
		case AnomalyDirection:
			s.DirectionErrors.Add(1)
		case AnomalyInvalidValue:
			s.InvalidValues.Add(1)
		case AnomalyDecodeError:
			s.DecodeErrors.Add(1)
		}
	}
}

// Snapshot copies the counters and calculates rates.
func (s *Statistics) Snapshot() StatisticsSnapshot {
	s.mu.Lock()
	elapsed := time.Since(s.startTime)
	s.mu.Unlock()

	snap := StatisticsSnapshot{
		Elapsed:           elapsed,
		FramesReceived:    s.FramesReceived.Load(),
		PartialFrames:     s.PartialFrames.Load(),
		DecodeErrors:      s.DecodeErrors.Load(),
		ChecksumErrors:    s.ChecksumErrors.Load(),
		HandoffDrops:      s.HandoffDrops.Load(),
		ValidMessages:     s.ValidMessages.Load(),
		LengthMismatches:  s.LengthMismatches.Load(),
		DirectionErrors:   s.DirectionErrors.Load(),
		InvalidValues:     s.InvalidValues.Load(),
		MessagesSent:      s.MessagesSent.Load(),
		MessagesDelivered: s.MessagesDelivered.Load(),
		Retries:           s.Retries.Load(),
		UnexpectedReplies: s.UnexpectedReplies.Load(),
		GraceCycles:       s.GraceCycles.Load(),
		AcksSent:          s.AcksSent.Load(),
		NaksSent:          s.NaksSent.Load(),
	}

	if secs := elapsed.Seconds(); secs > 0 {
		snap.FrameRate = float64(snap.FramesReceived) / secs
		snap.ErrorRate = float64(snap.Errors()) / secs
	}

	return snap
}

// Errors sums every receive side failure.
func (s StatisticsSnapshot) Errors() uint64 {
	return s.PartialFrames + s.DecodeErrors + s.ChecksumErrors + s.LengthMismatches +
		s.DirectionErrors + s.InvalidValues
}

// String returns a formatted statistics summary
func (s *Statistics) String() string {
	snap := s.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "=== Statistics (%.0f seconds) ===\n", snap.Elapsed.Seconds())
	fmt.Fprintf(&b, "Frames Received: %8d\n", snap.FramesReceived)
	fmt.Fprintf(&b, "Valid Messages:  %8d%s\n", snap.ValidMessages, percent(snap.ValidMessages, snap.FramesReceived))

	counters := []struct {
		label string
		value uint64
	}{
		{"Checksum Errors", snap.ChecksumErrors},
		{"Decode Errors", snap.DecodeErrors},
		{"Partial Frames", snap.PartialFrames},
		{"Length Mismatch", snap.LengthMismatches},
		{"Direction Errors", snap.DirectionErrors},
		{"Invalid Values", snap.InvalidValues},
		{"Handoff Drops", snap.HandoffDrops},
	}
	for _, c := range counters {
		if c.value > 0 {
			fmt.Fprintf(&b, "%-17s%8d%s\n", c.label+":", c.value, percent(c.value, snap.FramesReceived))
		}
	}

	if snap.MessagesSent > 0 || snap.MessagesDelivered > 0 {
		fmt.Fprintf(&b, "Messages Sent:   %8d\n", snap.MessagesSent)
		fmt.Fprintf(&b, "  Retries:          %5d\n", snap.Retries)
		fmt.Fprintf(&b, "  Acks / Naks:      %5d / %d\n", snap.AcksSent, snap.NaksSent)
		fmt.Fprintf(&b, "Delivered:       %8d\n", snap.MessagesDelivered)
		fmt.Fprintf(&b, "  Unexpected:       %5d\n", snap.UnexpectedReplies)
	}

	fmt.Fprintf(&b, "Frame Rate:      %8.1f frames/sec\n", snap.FrameRate)
	fmt.Fprintf(&b, "Error Rate:      %8.1f errors/sec\n", snap.ErrorRate)
	b.WriteString("================================\n")

	return b.String()
}

func percent(n, total uint64) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf(" (%.1f%%)", float64(n)*100.0/float64(total))
}

// Reset resets all statistics counters
func (s *Statistics) Reset() {
	s.mu.Lock()
	s.startTime = time.Now()
	s.mu.Unlock()

	for _, c := range []*atomic.Uint64{
		&s.FramesReceived, &s.PartialFrames, &s.DecodeErrors, &s.ChecksumErrors,
		&s.HandoffDrops, &s.ValidMessages, &s.LengthMismatches, &s.DirectionErrors,
		&s.InvalidValues, &s.MessagesSent, &s.MessagesDelivered, &s.Retries,
		&s.UnexpectedReplies, &s.GraceCycles, &s.AcksSent, &s.NaksSent,
	} {
		c.Store(0)
	}
}
