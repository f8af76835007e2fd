// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================
// Test Port
// ============================================================

// pipePort stands in for the serial port. Bytes written by the test with
// panel arrive at the communicator in one read; frames the communicator
// writes are collected on written.
type pipePort struct {
	inR *io.PipeReader
	inW *io.PipeWriter

	written  chan []byte
	writeErr error

	closeOnce sync.Once
}

func newPipePort() *pipePort {
	r, w := io.Pipe()
	return &pipePort{
		inR:     r,
		inW:     w,
		written: make(chan []byte, 64),
	}
}

func (p *pipePort) Read(b []byte) (int, error) {
	return p.inR.Read(b)
}

func (p *pipePort) Write(b []byte) (int, error) {
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	frame := make([]byte, len(b))
	copy(frame, b)
	p.written <- frame
	return len(b), nil
}

func (p *pipePort) Close() error {
	p.closeOnce.Do(func() {
		p.inW.Close()
		p.inR.Close()
	})
	return nil
}

// panel sends bytes from the panel side.
func (p *pipePort) panel(t *testing.T, frame []byte) {
	t.Helper()
	_, err := p.inW.Write(frame)
	require.NoError(t, err)
}

func nextFrame(t *testing.T, p *pipePort, timeout time.Duration) []byte {
	t.Helper()
	select {
	case f := <-p.written:
		return f
	case <-time.After(timeout):
		t.Fatalf("no frame written within %s", timeout)
		return nil
	}
}

func noFrame(t *testing.T, p *pipePort, d time.Duration) {
	t.Helper()
	select {
	case f := <-p.written:
		t.Fatalf("unexpected frame % X", f)
	case <-time.After(d):
	}
}

func nextMessage(t *testing.T, ch <-chan *Message, timeout time.Duration) *Message {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(timeout):
		t.Fatalf("no message delivered within %s", timeout)
		return nil
	}
}

func noMessage(t *testing.T, ch <-chan *Message, d time.Duration) {
	t.Helper()
	select {
	case m := <-ch:
		t.Fatalf("unexpected delivery of %s", m.Name())
	case <-time.After(d):
	}
}

func testConfig(reply time.Duration) Config {
	cfg := DefaultConfig()
	cfg.ReplyTimeout = reply
	cfg.HandoffTimeout = 2 * time.Second
	cfg.StopTimeout = 2 * time.Second
	return cfg
}

func startCommunicator(t *testing.T, cfg Config, queued ...*Message) (*Communicator, *pipePort, <-chan *Message) {
	t.Helper()
	port := newPipePort()
	c := NewCommunicator(port, cfg, zerolog.Nop())

	delivered := make(chan *Message, 16)
	c.AddListener(ListenerFunc(func(_ *Communicator, m *Message) {
		delivered <- m
	}))
	for _, m := range queued {
		c.Transmit(m)
	}

	c.Start()
	t.Cleanup(func() { _ = c.Stop() })
	return c, port, delivered
}

var (
	ackFrame             = []byte{0x7E, 0x01, 0x1D, 0x1E, 0x1F}
	nakFrame             = []byte{0x7E, 0x01, 0x1E, 0x1F, 0x20}
	zoneStatusFrame      = []byte{0x7E, 0x08, 0x04, 0x02, 0x01, 0x00, 0x00, 0x00, 0x09, 0x00, 0x18, 0x8E}
	zoneStatusAckFrame   = []byte{0x7E, 0x08, 0x84, 0x02, 0x01, 0x00, 0x00, 0x00, 0x09, 0x00, 0x98, 0x92}
	zoneStatusBadFrame   = []byte{0x7E, 0x08, 0x84, 0x02, 0x01, 0x00, 0x00, 0x00, 0x09, 0x00, 0x98, 0x93}
	logEventFrame        = []byte{0x7E, 0x0A, 0x0A, 0x05, 0x20, 0x17, 0x03, 0x00, 0x0C, 0x1F, 0x10, 0x2D, 0xBB, 0x8F}
	zoneStatusASCIIReply = []byte("\n080402010000000900188E\r")
)

// ============================================================
// Dispatch Scenarios
// ============================================================

func TestCommunicator_RequestReply(t *testing.T) {
	req := NewZoneStatusRequest("req-1", 2)
	c, port, delivered := startCommunicator(t, testConfig(750*time.Millisecond), req)

	want, err := req.FrameBytes(ProtocolBinary)
	require.NoError(t, err)
	assert.Equal(t, want, nextFrame(t, port, 3*time.Second))

	port.panel(t, zoneStatusFrame)

	m := nextMessage(t, delivered, 2*time.Second)
	assert.Equal(t, byte(MsgZoneStatus), m.Number())
	assert.Equal(t, Context("req-1"), m.Context())
	assert.Equal(t, "2", m.PropertyByID("zone_number"))

	noMessage(t, delivered, 300*time.Millisecond)
	noFrame(t, port, time.Second)
	assert.Equal(t, 0, c.QueueLen())
	assert.Equal(t, uint64(1), c.Stats().MessagesSent.Load())
	assert.Equal(t, uint64(0), c.Stats().Retries.Load())
}

func TestCommunicator_RequestReplyASCII(t *testing.T) {
	cfg := testConfig(750 * time.Millisecond)
	cfg.Protocol = ProtocolASCII
	req := NewZoneStatusRequest(ContextCommand, 2)
	c, port, delivered := startCommunicator(t, cfg, req)

	assert.Equal(t, "\n0224022850\r", string(nextFrame(t, port, 3*time.Second)))

	port.panel(t, zoneStatusASCIIReply)

	m := nextMessage(t, delivered, 2*time.Second)
	assert.Equal(t, byte(MsgZoneStatus), m.Number())
	assert.Equal(t, ContextCommand, m.Context())
	assert.Equal(t, ProtocolASCII, c.Protocol())
}

func TestCommunicator_AckFlow(t *testing.T) {
	c, port, delivered := startCommunicator(t, testConfig(750*time.Millisecond))

	port.panel(t, zoneStatusAckFrame)
	queued := NewSystemStatusRequest("queued")
	c.Transmit(queued)

	assert.Equal(t, ackFrame, nextFrame(t, port, 3*time.Second))

	m := nextMessage(t, delivered, time.Second)
	assert.True(t, m.HasAcknowledgementFlag())
	assert.Equal(t, ContextNone, m.Context())

	queuedFrame, err := queued.FrameBytes(ProtocolBinary)
	require.NoError(t, err)
	assert.Equal(t, queuedFrame, nextFrame(t, port, 3*time.Second))

	// The unanswered request is retried; no second acknowledge is sent.
	assert.Equal(t, queuedFrame, nextFrame(t, port, 3*time.Second))
	assert.Equal(t, uint64(1), c.Stats().AcksSent.Load())
}

func TestCommunicator_NegativeAckOnBadChecksum(t *testing.T) {
	c, port, delivered := startCommunicator(t, testConfig(500*time.Millisecond))

	port.panel(t, zoneStatusBadFrame)

	assert.Equal(t, nakFrame, nextFrame(t, port, 3*time.Second))
	noMessage(t, delivered, 300*time.Millisecond)
	assert.Equal(t, uint64(1), c.Stats().ChecksumErrors.Load())
	assert.Equal(t, uint64(1), c.Stats().NaksSent.Load())
}

func TestCommunicator_UnsolicitedMessage(t *testing.T) {
	_, port, delivered := startCommunicator(t, testConfig(500*time.Millisecond))

	port.panel(t, logEventFrame)

	m := nextMessage(t, delivered, 2*time.Second)
	assert.Equal(t, "Log Event Message [Event: 5]", m.Name())
	assert.Equal(t, ContextNone, m.Context())
	noFrame(t, port, 700*time.Millisecond)
}

func TestCommunicator_RetryOnSilence(t *testing.T) {
	reply := 300 * time.Millisecond
	req := NewZoneStatusRequest(ContextCommand, 9)
	c, port, _ := startCommunicator(t, testConfig(reply), req)

	first := nextFrame(t, port, 2*time.Second)
	sentAt := time.Now()
	second := nextFrame(t, port, 2*time.Second)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, time.Since(sentAt), reply/2)
	assert.GreaterOrEqual(t, c.Stats().Retries.Load(), uint64(1))
}

func TestCommunicator_UnexpectedReplyGraceCycle(t *testing.T) {
	reply := 600 * time.Millisecond
	req := NewZoneStatusRequest("zone", 2)
	c, port, delivered := startCommunicator(t, testConfig(reply), req)

	first := nextFrame(t, port, 3*time.Second)
	port.panel(t, logEventFrame)

	// The unrelated message is still delivered.
	m := nextMessage(t, delivered, time.Second)
	assert.Equal(t, byte(MsgLogEvent), m.Number())

	// The next cycle only listens.
	noFrame(t, port, reply/2)

	second := nextFrame(t, port, 3*time.Second)
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(1), c.Stats().GraceCycles.Load())
	assert.Equal(t, uint64(1), c.Stats().UnexpectedReplies.Load())
}

func TestCommunicator_ListenersInRegistrationOrder(t *testing.T) {
	port := newPipePort()
	c := NewCommunicator(port, testConfig(500*time.Millisecond), zerolog.Nop())

	var mu sync.Mutex
	var order []int
	done := make(chan struct{})
	for i := 1; i <= 3; i++ {
		i := i
		c.AddListener(ListenerFunc(func(_ *Communicator, _ *Message) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			if i == 3 {
				close(done)
			}
		}))
	}
	c.Start()
	defer c.Stop()

	port.panel(t, logEventFrame)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listeners not called")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestCommunicator_HandoffDrop(t *testing.T) {
	cfg := testConfig(500 * time.Millisecond)
	cfg.HandoffTimeout = 100 * time.Millisecond

	port := newPipePort()
	c := NewCommunicator(port, cfg, zerolog.Nop())

	entered := make(chan struct{}, 4)
	release := make(chan struct{})
	c.AddListener(ListenerFunc(func(_ *Communicator, _ *Message) {
		entered <- struct{}{}
		<-release
	}))
	c.Start()
	defer c.Stop()

	port.panel(t, logEventFrame)
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("listener not called")
	}

	// The dispatch loop is busy in the listener, so this one is dropped.
	port.panel(t, logEventFrame)
	assert.Eventually(t, func() bool {
		return c.Stats().HandoffDrops.Load() == 1
	}, 2*time.Second, 20*time.Millisecond)

	close(release)
}

// ============================================================
// Lifecycle
// ============================================================

func TestCommunicator_WriteErrorIsFatal(t *testing.T) {
	port := newPipePort()
	port.writeErr = errors.New("device gone")
	c := NewCommunicator(port, testConfig(200*time.Millisecond), zerolog.Nop())
	c.Transmit(NewSystemStatusRequest(ContextNone))
	c.Start()

	select {
	case <-c.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("communicator still running after write error")
	}

	require.Error(t, c.Err())
	assert.Contains(t, c.Err().Error(), "device gone")
	assert.NoError(t, c.Stop())
}

func TestCommunicator_ReadErrorIsFatal(t *testing.T) {
	port := newPipePort()
	c := NewCommunicator(port, testConfig(time.Second), zerolog.Nop())
	c.Start()
	defer c.Stop()

	port.inW.CloseWithError(errors.New("unplugged"))

	select {
	case <-c.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("communicator still running after read error")
	}

	require.Error(t, c.Err())
	assert.Contains(t, c.Err().Error(), "unplugged")
}

func TestCommunicator_Stop(t *testing.T) {
	port := newPipePort()
	c := NewCommunicator(port, testConfig(5*time.Second), zerolog.Nop())
	c.Start()

	start := time.Now()
	require.NoError(t, c.Stop())
	assert.Less(t, time.Since(start), 2*time.Second)

	select {
	case <-c.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}
	assert.NoError(t, c.Err())
	assert.NoError(t, c.Stop())

	_, err := port.inW.Write([]byte{0x00})
	assert.Error(t, err, "port closed")
}

func TestCommunicator_StopWithoutStart(t *testing.T) {
	port := newPipePort()
	c := NewCommunicator(port, Config{}, zerolog.Nop())
	assert.NoError(t, c.Stop())

	_, err := port.inW.Write([]byte{0x00})
	assert.Error(t, err)
}

func TestCommunicator_TransmitFirst(t *testing.T) {
	c := NewCommunicator(newPipePort(), DefaultConfig(), zerolog.Nop())
	a := NewSystemStatusRequest("a")
	b := NewSystemStatusRequest("b")
	first := NewPositiveAcknowledge("first")

	c.Transmit(a)
	c.Transmit(b)
	c.TransmitFirst(first)
	assert.Equal(t, 3, c.QueueLen())

	assert.Same(t, first, c.queue.poll())
	assert.Same(t, a, c.queue.poll())
	assert.Same(t, b, c.queue.poll())
	assert.Nil(t, c.queue.poll())
}
