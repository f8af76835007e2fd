// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Port is the byte stream to the panel interface: a serial port or a
// serial bridge.
type Port interface {
	io.Reader
	io.Writer
	io.Closer
}

// drainer is implemented by ports that can block until written bytes have
// left the transmit buffer (go.bug.st/serial).
type drainer interface {
	Drain() error
}

// Config holds the communicator settings. Protocol cannot change for the
// lifetime of a Communicator.
type Config struct {
	Protocol Protocol

	// ReplyTimeout bounds each wait for an inbound message in the dispatch
	// loop; an unanswered request is resent after it.
	ReplyTimeout time.Duration

	// HandoffTimeout bounds how long a decoded message waits for the
	// dispatch loop before it is dropped.
	HandoffTimeout time.Duration

	// StopTimeout bounds Stop's wait for the goroutines to exit.
	StopTimeout time.Duration

	ReadBufferSize    int
	HoldPartialFrames bool
}

// DefaultConfig returns the timings of the panel interface documentation.
func DefaultConfig() Config {
	return Config{
		Protocol:       ProtocolBinary,
		ReplyTimeout:   3 * time.Second,
		HandoffTimeout: 3 * time.Second,
		StopTimeout:    3 * time.Second,
		ReadBufferSize: 256,
	}
}

// Listener receives every checksum-valid message from the panel, solicited
// or not. It runs on the dispatch goroutine and must not call Stop.
type Listener interface {
	CaddxMessage(c *Communicator, m *Message)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(c *Communicator, m *Message)

// CaddxMessage calls f(c, m).
func (f ListenerFunc) CaddxMessage(c *Communicator, m *Message) {
	f(c, m)
}

// Communicator runs the half duplex request/reply protocol over a Port.
//
// A read goroutine decodes frames and hands each message to the dispatch
// goroutine through an unbuffered channel. The dispatch goroutine is the only
// writer to the port: it sends the head of the queue, waits for a reply,
// resends on silence, acknowledges panel messages that ask for it and
// delivers everything with a valid checksum to the listeners.
//
// Unanswered requests are resent every ReplyTimeout without limit. An I/O
// error ends the communicator for good; watch Done and create a new one.
type Communicator struct {
	port   Port
	cfg    Config
	logger zerolog.Logger
	stats  *Statistics
	queue  *outboundQueue

	exchange chan *Message

	listenersMu sync.RWMutex
	listeners   []Listener

	started      atomic.Bool
	stop         chan struct{}
	stopOnce     sync.Once
	dispatchDone chan struct{}
	readerDone   chan struct{}
	readerFailed chan struct{}

	errMu sync.Mutex
	err   error
}

// NewCommunicator creates a communicator on an open port. Call Start to
// begin exchanging messages.
func NewCommunicator(port Port, cfg Config, logger zerolog.Logger) *Communicator {
	def := DefaultConfig()
	if cfg.ReplyTimeout <= 0 {
		cfg.ReplyTimeout = def.ReplyTimeout
	}
	if cfg.HandoffTimeout <= 0 {
		cfg.HandoffTimeout = def.HandoffTimeout
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = def.StopTimeout
	}
	if cfg.ReadBufferSize <= 0 {
		cfg.ReadBufferSize = def.ReadBufferSize
	}

	return &Communicator{
		port:         port,
		cfg:          cfg,
		logger:       logger.With().Str("component", "communicator").Logger(),
		stats:        NewStatistics(),
		queue:        newOutboundQueue(),
		exchange:     make(chan *Message),
		stop:         make(chan struct{}),
		dispatchDone: make(chan struct{}),
		readerDone:   make(chan struct{}),
		readerFailed: make(chan struct{}),
	}
}

// Protocol returns the line framing in use.
func (c *Communicator) Protocol() Protocol {
	return c.cfg.Protocol
}

// Stats returns the live link counters.
func (c *Communicator) Stats() *Statistics {
	return c.stats
}

// AddListener registers l. Listeners are called in registration order.
func (c *Communicator) AddListener(l Listener) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()
	c.listeners = append(c.listeners, l)
}

// Transmit queues m behind any pending messages.
func (c *Communicator) Transmit(m *Message) {
	c.queue.pushBack(m)
}

// TransmitFirst queues m ahead of every pending message.
func (c *Communicator) TransmitFirst(m *Message) {
	c.queue.pushFront(m)
}

// QueueLen returns the number of messages waiting to be sent.
func (c *Communicator) QueueLen() int {
	return c.queue.size()
}

// Start launches the read and dispatch goroutines. It is a no-op after the
// first call.
func (c *Communicator) Start() {
	if !c.started.CompareAndSwap(false, true) {
		return
	}
	go c.readLoop()
	go c.dispatchLoop()
}

// Done is closed when the dispatch loop has exited, either through Stop or
// an I/O error.
func (c *Communicator) Done() <-chan struct{} {
	return c.dispatchDone
}

// Err returns the I/O error that ended the communicator, or nil.
func (c *Communicator) Err() error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.err
}

// Stop ends both goroutines and closes the port. Close errors are logged
// and otherwise ignored. Stop waits at most StopTimeout.
func (c *Communicator) Stop() error {
	c.stopOnce.Do(func() {
		close(c.stop)
		if err := c.port.Close(); err != nil {
			c.logger.Debug().Err(err).Msg("closing port")
		}
	})

	if !c.started.Load() {
		return nil
	}

	timer := time.NewTimer(c.cfg.StopTimeout)
	defer timer.Stop()

	for _, done := range []chan struct{}{c.dispatchDone, c.readerDone} {
		select {
		case <-done:
		case <-timer.C:
			return fmt.Errorf("caddx: communicator did not stop within %s", c.cfg.StopTimeout)
		}
	}

	return nil
}

func (c *Communicator) stopping() bool {
	select {
	case <-c.stop:
		return true
	default:
		return false
	}
}

// fail records the first fatal error unless the communicator is being
// stopped, in which case I/O errors are expected.
func (c *Communicator) fail(err error) {
	if c.stopping() {
		return
	}
	c.errMu.Lock()
	defer c.errMu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

//////////////////////////////////////////////////////////////
// Read side
//////////////////////////////////////////////////////////////

func (c *Communicator) readLoop() {
	defer close(c.readerDone)

	receiver := NewReceiver(c.cfg.Protocol, c.logger, c.stats)
	receiver.SetHoldPartialFrames(c.cfg.HoldPartialFrames)
	buf := make([]byte, c.cfg.ReadBufferSize)

	for {
		n, err := c.port.Read(buf)
		if n > 0 {
			receiver.Feed(buf[:n], c.offer)
		}
		if err != nil {
			if !c.stopping() {
				c.logger.Error().Err(err).Msg("read failed")
				c.fail(fmt.Errorf("caddx: read: %w", err))
				close(c.readerFailed)
			}
			return
		}
	}
}

// offer hands a received frame to the dispatch loop, dropping it if the
// loop does not take it within HandoffTimeout.
func (c *Communicator) offer(raw []byte) {
	m, err := NewMessageFromBytes(ContextNone, raw, true)
	if err != nil {
		c.stats.DecodeErrors.Add(1)
		c.logger.Debug().Err(err).Hex("raw", raw).Msg("dropping undecodable frame")
		return
	}

	timer := time.NewTimer(c.cfg.HandoffTimeout)
	defer timer.Stop()

	select {
	case c.exchange <- m:
	case <-timer.C:
		c.stats.HandoffDrops.Add(1)
		c.logger.Warn().Str("message", m.Name()).Msg("dispatch loop not receiving, message dropped")
	case <-c.stop:
	}
}

//////////////////////////////////////////////////////////////
// Dispatch side
//////////////////////////////////////////////////////////////

func (c *Communicator) dispatchLoop() {
	defer close(c.dispatchDone)

	// The first cycle only listens.
	skipTransmit := true

	for {
		if c.stopping() {
			return
		}

		var outgoing *Message
		var expected []byte
		ctx := ContextNone

		if skipTransmit {
			skipTransmit = false
		} else if outgoing = c.queue.poll(); outgoing != nil {
			frame, err := outgoing.FrameBytes(c.cfg.Protocol)
			if err != nil {
				c.logger.Error().Err(err).Str("message", outgoing.Name()).Msg("cannot frame message, dropped")
				outgoing = nil
			} else if err := c.write(outgoing, frame); err != nil {
				c.logger.Error().Err(err).Str("message", outgoing.Name()).Msg("write failed")
				c.fail(err)
				return
			} else {
				expected = outgoing.ReplyMessageNumbers()
				ctx = outgoing.Context()
			}
		}

		incoming, ok := c.receive()
		if !ok {
			return
		}

		switch {
		case expected == nil && incoming == nil:
			continue

		case expected == nil:
			if incoming.HasAcknowledgementFlag() {
				if incoming.IsChecksumCorrect() {
					c.stats.AcksSent.Add(1)
					c.TransmitFirst(NewPositiveAcknowledge(ContextNone))
				} else {
					c.stats.NaksSent.Add(1)
					c.TransmitFirst(NewNegativeAcknowledge(ContextNone))
				}
			}

		case incoming == nil:
			c.logger.Debug().Str("message", outgoing.Name()).Msg("no reply, resending")
			c.stats.Retries.Add(1)
			c.TransmitFirst(outgoing)

		case !outgoing.Type().IsReply(incoming.Number()):
			c.logger.Debug().
				Str("message", outgoing.Name()).
				Str("received", incoming.Name()).
				Msg("unexpected reply, resending after one receive cycle")
			c.stats.UnexpectedReplies.Add(1)
			c.stats.Retries.Add(1)
			c.stats.GraceCycles.Add(1)
			c.TransmitFirst(outgoing)
			skipTransmit = true
		}

		if incoming == nil {
			continue
		}

		if !incoming.IsChecksumCorrect() {
			c.stats.ChecksumErrors.Add(1)
			c.logger.Warn().
				Str("message", incoming.Name()).
				Hex("received", incoming.received[:]).
				Hex("calculated", incoming.computed[:]).
				Msg("checksum mismatch, message dropped")
			continue
		}

		c.deliver(incoming.withContext(ctx))
	}
}

// write sends one frame and drains the port.
func (c *Communicator) write(m *Message, frame []byte) error {
	c.logger.Debug().Str("message", m.Name()).Str("context", string(m.Context())).Msg("sending")
	c.logger.Trace().Hex("frame", frame).Msg("tx")

	if _, err := c.port.Write(frame); err != nil {
		return fmt.Errorf("caddx: write: %w", err)
	}
	if d, ok := c.port.(drainer); ok {
		if err := d.Drain(); err != nil {
			return fmt.Errorf("caddx: drain: %w", err)
		}
	}

	c.stats.MessagesSent.Add(1)
	return nil
}

// receive waits up to ReplyTimeout for a message from the read side. ok is
// false when the loop must exit.
func (c *Communicator) receive() (m *Message, ok bool) {
	timer := time.NewTimer(c.cfg.ReplyTimeout)
	defer timer.Stop()

	select {
	case m = <-c.exchange:
		c.logger.Debug().
			Str("message", m.Name()).
			Bool("ack_required", m.HasAcknowledgementFlag()).
			Msg("received")
		return m, true
	case <-timer.C:
		return nil, true
	case <-c.stop:
		return nil, false
	case <-c.readerFailed:
		return nil, false
	}
}

func (c *Communicator) deliver(m *Message) {
	c.listenersMu.RLock()
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.listenersMu.RUnlock()

	c.stats.MessagesDelivered.Add(1)
	for _, l := range listeners {
		l.CaddxMessage(c, m)
	}
}
