// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"bytes"
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// randomBody returns 1-40 bytes biased towards the framing bytes.
func randomBody(rng *rand.Rand) []byte {
	body := make([]byte, 1+rng.Intn(40))
	for i := range body {
		switch rng.Intn(4) {
		case 0:
			body[i] = StartByte
		case 1:
			body[i] = EscByte
		default:
			body[i] = byte(rng.Intn(256))
		}
	}
	return body
}

// ============================================================
// Frame Round Trip Fuzz Tests
// ============================================================

func TestFuzz_FrameRoundTrip(t *testing.T) {
	rng := newFuzzRng(t)

	for _, p := range []Protocol{ProtocolBinary, ProtocolASCII} {
		r := NewReceiver(p, zerolog.Nop(), nil)

		for i := 0; i < getFuzzRounds(); i++ {
			body := randomBody(rng)
			sum := CalculateChecksum(body)

			frame, err := EncodeFrame(p, body, sum)
			if err != nil {
				t.Fatalf("%s round %d: encode: %v", p, i, err)
			}

			var got [][]byte
			r.Feed(frame, func(raw []byte) { got = append(got, raw) })

			if len(got) != 1 {
				t.Fatalf("%s round %d: got %d frames from % X", p, i, len(got), frame)
			}
			want := append(append([]byte(nil), body...), sum[:]...)
			if !bytes.Equal(got[0], want) {
				t.Fatalf("%s round %d: got % X, want % X", p, i, got[0], want)
			}
		}
	}
}

func TestFuzz_FrameRoundTripChunked(t *testing.T) {
	rng := newFuzzRng(t)

	for _, p := range []Protocol{ProtocolBinary, ProtocolASCII} {
		r := NewReceiver(p, zerolog.Nop(), nil)
		r.SetHoldPartialFrames(true)

		for i := 0; i < getFuzzRounds(); i++ {
			var stream []byte
			var want [][]byte
			for n := 1 + rng.Intn(4); n > 0; n-- {
				body := randomBody(rng)
				sum := CalculateChecksum(body)
				frame, _ := EncodeFrame(p, body, sum)
				stream = append(stream, frame...)
				want = append(want, append(append([]byte(nil), body...), sum[:]...))
			}

			var got [][]byte
			for len(stream) > 0 {
				n := 1 + rng.Intn(len(stream))
				r.Feed(stream[:n], func(raw []byte) { got = append(got, raw) })
				stream = stream[n:]
			}

			if len(got) != len(want) {
				t.Fatalf("%s round %d: got %d frames, want %d", p, i, len(got), len(want))
			}
			for j := range want {
				if !bytes.Equal(got[j], want[j]) {
					t.Fatalf("%s round %d frame %d: got % X, want % X", p, i, j, got[j], want[j])
				}
			}
		}
	}
}

// ============================================================
// Message Fuzz Tests
// ============================================================

func TestFuzz_MessageFromRandomBytes(t *testing.T) {
	rng := newFuzzRng(t)

	for i := 0; i < getFuzzRounds(); i++ {
		raw := make([]byte, rng.Intn(24))
		rng.Read(raw)

		// Must never panic, whatever the input.
		m, err := NewMessageFromBytes(ContextNone, raw, rng.Intn(2) == 0)
		if err != nil {
			continue
		}
		_ = FormatMessage(m)
		_ = ValidateMessage(m)
		_ = m.Name()
	}
}

func TestFuzz_CatalogMessagesRoundTrip(t *testing.T) {
	rng := newFuzzRng(t)
	types := MessageTypes()

	for i := 0; i < getFuzzRounds(); i++ {
		mt := types[rng.Intn(len(types))]
		body := make([]byte, mt.Length)
		rng.Read(body)
		body[0] = mt.Number
		if rng.Intn(2) == 0 {
			body[0] |= AckRequiredFlag
		}

		m, err := NewMessageFromBytes(ContextNone, body, false)
		if err != nil {
			t.Fatalf("round %d: %s: %v", i, mt.Name, err)
		}

		p := Protocol(rng.Intn(2))
		frame, err := m.FrameBytes(p)
		if err != nil {
			t.Fatalf("round %d: frame: %v", i, err)
		}

		var got []byte
		NewReceiver(p, zerolog.Nop(), nil).Feed(frame, func(raw []byte) { got = raw })

		decoded, err := NewMessageFromBytes(ContextNone, got, true)
		if err != nil {
			t.Fatalf("round %d: decode: %v", i, err)
		}
		if !decoded.IsChecksumCorrect() {
			t.Fatalf("round %d: %s checksum mismatch after round trip", i, mt.Name)
		}
		if decoded.HasAcknowledgementFlag() != m.HasAcknowledgementFlag() {
			t.Fatalf("round %d: ack flag lost", i)
		}
		for _, prop := range mt.Properties {
			if prop.ID != "" && decoded.PropertyByID(prop.ID) != m.PropertyByID(prop.ID) {
				t.Fatalf("round %d: %s field %s changed", i, mt.Name, prop.ID)
			}
		}
	}
}
