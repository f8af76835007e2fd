// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package caddx

import (
	"sort"
	"strings"
)

// MessageType is a catalog entry: the fixed layout of one message number.
type MessageType struct {
	Number      byte
	Key         string
	Name        string
	Description string
	Length      int
	Direction   Direction
	Source      Source
	Replies     []byte
	Properties  []Property
}

// ExpectsReply reports whether the communicator waits for an answer after
// sending this type.
func (t *MessageType) ExpectsReply() bool {
	return t.Replies != nil
}

// IsReply reports whether number answers a message of this type.
func (t *MessageType) IsReply(number byte) bool {
	for _, r := range t.Replies {
		if r == number {
			return true
		}
	}
	return false
}

var (
	catalogByNumber = indexByNumber(catalogTable)
	catalogByKey    = indexByKey(catalogTable)
)

func indexByNumber(table []MessageType) map[byte]*MessageType {
	m := make(map[byte]*MessageType, len(table))
	for i := range table {
		m[table[i].Number] = &table[i]
	}
	return m
}

func indexByKey(table []MessageType) map[string]*MessageType {
	m := make(map[string]*MessageType, len(table))
	for i := range table {
		m[table[i].Key] = &table[i]
	}
	return m
}

// Lookup returns the catalog entry for a message number. The acknowledge
// flag must already be cleared.
func Lookup(number byte) (*MessageType, bool) {
	t, ok := catalogByNumber[number]
	return t, ok
}

// LookupKey returns the catalog entry for a snake_case key such as
// "zone_status_request".
func LookupKey(key string) (*MessageType, bool) {
	t, ok := catalogByKey[strings.ToLower(key)]
	return t, ok
}

// MessageTypes returns every catalog entry ordered by message number.
func MessageTypes() []*MessageType {
	types := make([]*MessageType, 0, len(catalogByNumber))
	for _, t := range catalogByNumber {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Number < types[j].Number
	})
	return types
}
