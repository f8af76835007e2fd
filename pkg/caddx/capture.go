// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// CaptureRecord is one raw message in a capture file. Raw holds the message
// body followed by its two checksum bytes, exactly as the receiver emits
// them.
type CaptureRecord struct {
	Timestamp time.Time `cbor:"1,keyasint"`
	Protocol  Protocol  `cbor:"2,keyasint"`
	Direction Direction `cbor:"3,keyasint"`
	Raw       []byte    `cbor:"4,keyasint"`
}

// Message decodes the record. The message keeps the capture timestamp.
func (r *CaptureRecord) Message() (*Message, error) {
	m, err := NewMessageFromBytes(ContextNone, r.Raw, true)
	if err != nil {
		return nil, err
	}
	return m.withTimestamp(r.Timestamp), nil
}

// CaptureWriter appends records to a stream of concatenated CBOR items.
type CaptureWriter struct {
	enc *cbor.Encoder
}

// NewCaptureWriter creates a writer on w.
func NewCaptureWriter(w io.Writer) (*CaptureWriter, error) {
	mode, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		return nil, fmt.Errorf("capture encoder: %w", err)
	}
	return &CaptureWriter{enc: mode.NewEncoder(w)}, nil
}

// Write appends one record.
func (w *CaptureWriter) Write(rec CaptureRecord) error {
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("write capture record: %w", err)
	}
	return nil
}

// CaptureReader reads records written by CaptureWriter.
type CaptureReader struct {
	dec *cbor.Decoder
}

// NewCaptureReader creates a reader on r.
func NewCaptureReader(r io.Reader) *CaptureReader {
	return &CaptureReader{dec: cbor.NewDecoder(r)}
}

// Next returns the next record, or io.EOF after the last one.
func (r *CaptureReader) Next() (*CaptureRecord, error) {
	var rec CaptureRecord
	if err := r.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read capture record: %w", err)
	}
	return &rec, nil
}
