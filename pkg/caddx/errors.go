// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import "errors"

var (
	ErrInvalidLength       = errors.New("caddx: invalid message length")
	ErrUnknownMessageType  = errors.New("caddx: unknown message type")
	ErrArgumentCount       = errors.New("caddx: wrong number of arguments")
	ErrInvalidArgument     = errors.New("caddx: invalid argument")
	ErrUnknownPropertyType = errors.New("caddx: unknown property type")
	ErrFieldOutOfRange     = errors.New("caddx: field outside message body")
	ErrFrameTooLong        = errors.New("caddx: message body too long for frame")
	ErrCommunicatorStopped = errors.New("caddx: communicator stopped")
)
