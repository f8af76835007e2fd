// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Message is one decoded or locally built panel message. It is immutable once
// constructed; only the context changes when the communicator pairs a reply
// with its request.
type Message struct {
	msgType   *MessageType
	body      []byte // message number byte (ack flag cleared) + payload
	ackFlag   bool
	received  Checksum
	computed  Checksum
	context   Context
	timestamp time.Time

	values  []string // parallel to msgType.Properties, "" when undecodable
	byLabel map[string]string
	byID    map[string]string
}

// NewMessageFromBytes parses a raw buffer. With withChecksum the final two
// bytes are the received checksum; otherwise the checksum is computed and
// treated as received.
//
// The checksum covers the bytes as they came off the wire, so it is computed
// before the acknowledge flag is cleared from the first byte.
func NewMessageFromBytes(ctx Context, raw []byte, withChecksum bool) (*Message, error) {
	if withChecksum && len(raw) < 1+ChecksumSize {
		return nil, fmt.Errorf("%w: need at least %d bytes with checksum, got %d",
			ErrInvalidLength, 1+ChecksumSize, len(raw))
	}
	if !withChecksum && len(raw) < 1 {
		return nil, fmt.Errorf("%w: empty message", ErrInvalidLength)
	}

	data := raw
	var received Checksum
	if withChecksum {
		data = raw[:len(raw)-ChecksumSize]
		received = Checksum{raw[len(raw)-2], raw[len(raw)-1]}
	}

	computed := CalculateChecksum(data)
	if !withChecksum {
		received = computed
	}

	body := make([]byte, len(data))
	copy(body, data)
	ackFlag := body[0]&AckRequiredFlag != 0
	body[0] &= MessageTypeMask

	t, ok := Lookup(body[0])
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownMessageType, body[0])
	}

	return newMessage(ctx, t, body, ackFlag, received, computed), nil
}

// NewMessage builds an outbound message of type t from comma separated
// argument values, one per payload byte. Values use Go integer literal syntax
// so "12", "0x0C" and "014" are equivalent. Each value must fit a byte,
// signed or unsigned: -1 is sent as 0xFF, and 256 is rejected.
func NewMessage(ctx Context, t *MessageType, args string) (*Message, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil message type", ErrInvalidArgument)
	}

	tokens := strings.Split(args, ",")
	if t.Length != 1 && len(tokens) != t.Length-1 {
		return nil, fmt.Errorf("%w: %s takes %d values, got %d",
			ErrArgumentCount, t.Name, t.Length-1, len(tokens))
	}

	body := make([]byte, t.Length)
	body[0] = t.Number
	for i := 1; i < t.Length; i++ {
		token := strings.TrimSpace(tokens[i-1])
		v, err := strconv.ParseInt(token, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d of %s is %q: %v",
				ErrInvalidArgument, i, t.Name, token, err)
		}
		if v < -128 || v > 255 {
			return nil, fmt.Errorf("%w: value %d of %s is %d, outside -128..255",
				ErrInvalidArgument, i, t.Name, v)
		}
		body[i] = byte(v)
	}

	sum := CalculateChecksum(body)
	return newMessage(ctx, t, body, false, sum, sum), nil
}

func newMessage(ctx Context, t *MessageType, body []byte, ackFlag bool, received, computed Checksum) *Message {
	m := &Message{
		msgType:   t,
		body:      body,
		ackFlag:   ackFlag,
		received:  received,
		computed:  computed,
		context:   ctx,
		timestamp: time.Now(),
		values:    make([]string, len(t.Properties)),
		byLabel:   make(map[string]string, len(t.Properties)),
		byID:      make(map[string]string),
	}

	for i, p := range t.Properties {
		v, err := p.Value(body)
		if err != nil {
			log.Debug().Err(err).Str("type", t.Name).Msg("skipping undecodable field")
			continue
		}
		m.values[i] = v
		m.byLabel[p.Label] = v
		if p.ID != "" {
			m.byID[p.ID] = v
		}
	}

	return m
}

// withContext returns a shallow copy carrying ctx. The decoded fields are
// shared since they are never mutated.
func (m *Message) withContext(ctx Context) *Message {
	c := *m
	c.context = ctx
	return &c
}

// withTimestamp returns a shallow copy stamped at ts.
func (m *Message) withTimestamp(ts time.Time) *Message {
	c := *m
	c.timestamp = ts
	return &c
}

// Type returns the catalog entry of the message.
func (m *Message) Type() *MessageType {
	return m.msgType
}

// Number returns the message number with the acknowledge flag cleared.
func (m *Message) Number() byte {
	return m.body[0]
}

// Body returns a copy of the message body (number byte and payload).
func (m *Message) Body() []byte {
	b := make([]byte, len(m.body))
	copy(b, m.body)
	return b
}

// Context returns the correlation context.
func (m *Message) Context() Context {
	return m.context
}

// Timestamp returns when the message was constructed.
func (m *Message) Timestamp() time.Time {
	return m.timestamp
}

// PropertyValue returns a field value by label, or "" if the type has no
// such field.
func (m *Message) PropertyValue(label string) string {
	v, ok := m.byLabel[label]
	if !ok {
		log.Debug().Str("label", label).Str("type", m.msgType.Name).Msg("no such property")
	}
	return v
}

// PropertyByID returns a field value by its external id, or "" if the type
// has no such field.
func (m *Message) PropertyByID(id string) string {
	v, ok := m.byID[id]
	if !ok {
		log.Debug().Str("id", id).Str("type", m.msgType.Name).Msg("no such property id")
	}
	return v
}

// PropertyIntByID parses an Int field by id.
func (m *Message) PropertyIntByID(id string) (int, bool) {
	v, ok := m.byID[id]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// PropertyBoolByID parses a Bit field by id.
func (m *Message) PropertyBoolByID(id string) (bool, bool) {
	v, ok := m.byID[id]
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// IsChecksumCorrect reports whether the received checksum matches the one
// computed over the body.
func (m *Message) IsChecksumCorrect() bool {
	return m.received == m.computed
}

// IsLengthCorrect reports whether the body length matches the catalog.
func (m *Message) IsLengthCorrect() bool {
	return len(m.body) == m.msgType.Length
}

// HasAcknowledgementFlag reports whether the sender asked for an
// acknowledge.
func (m *Message) HasAcknowledgementFlag() bool {
	return m.ackFlag
}

// ReplyMessageNumbers returns the message numbers that answer this message,
// or nil if none is expected.
func (m *Message) ReplyMessageNumbers() []byte {
	return m.msgType.Replies
}

// Source returns the panel subsystem the message describes.
func (m *Message) Source() Source {
	return m.msgType.Source
}

// ReceivedChecksum returns the checksum bytes that arrived with the message.
func (m *Message) ReceivedChecksum() Checksum {
	return m.received
}

// CalculatedChecksum returns the checksum computed over the wire bytes.
func (m *Message) CalculatedChecksum() Checksum {
	return m.computed
}

// Name returns the type name with the zone, partition or log event number
// appended where the message refers to one.
func (m *Message) Name() string {
	switch m.msgType.Number {
	case MsgZoneStatusRequest, MsgZoneStatus:
		return fmt.Sprintf("%s [Zone: %s]", m.msgType.Name, m.byID["zone_number"])
	case MsgLogEventRequest, MsgLogEvent:
		return fmt.Sprintf("%s [Event: %s]", m.msgType.Name, m.byID["panel_log_event_number"])
	case MsgPartitionStatusRequest, MsgPartitionStatus:
		return fmt.Sprintf("%s [Partition: %s]", m.msgType.Name, m.byID["partition_number"])
	default:
		return m.msgType.Name
	}
}

// wireBody returns the body as it is framed, acknowledge flag included.
func (m *Message) wireBody() []byte {
	b := m.Body()
	if m.ackFlag {
		b[0] |= AckRequiredFlag
	}
	return b
}

// FrameBytes returns the message framed for protocol p, using the computed
// checksum.
func (m *Message) FrameBytes(p Protocol) ([]byte, error) {
	return EncodeFrame(p, m.wireBody(), m.computed)
}

func (m *Message) String() string {
	return FormatMessageCompact(m)
}
