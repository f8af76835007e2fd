// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"strings"
	"testing"

	"github.com/Thermoquad/nx584/pkg/caddx"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastLog(m monitorModel) errorLogEntry {
	if len(m.errorLog) == 0 {
		return errorLogEntry{}
	}
	return m.errorLog[len(m.errorLog)-1]
}

func TestParseCommandLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		number  byte
		body    []byte
		wantErr bool
	}{
		{"key with arg", "zone_status_request 4", 0x24, []byte{0x24, 0x04}, false},
		{"number with comma args", "0x3D 2,1,1", 0x3D, []byte{0x3D, 0x02, 0x01, 0x01}, false},
		{"no args", "system_status_request", 0x28, []byte{0x28}, false},
		{"empty", "   ", 0, nil, true},
		{"unknown", "no_such_message", 0, nil, true},
		{"bad arg", "zone_status_request four", 0, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := parseCommandLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.number, msg.Number())
			assert.Equal(t, tt.body, msg.Body())
			assert.True(t, strings.HasPrefix(string(msg.Context()), string(caddx.ContextCommand)+":"))
		})
	}
}

func TestMonitorModel_ZoneTransitionLogged(t *testing.T) {
	m := initialMonitorModel(nil, "test", 16)
	require.Len(t, m.zoneList.Items(), 16)

	msg, err := caddx.NewMessageFromBytes(caddx.ContextNone,
		[]byte{0x04, 0x02, 0x01, 0x00, 0x00, 0x00, 0x09, 0x00}, false)
	require.NoError(t, err)

	updated, _ := m.Update(monitorBatchMsg{messages: []*caddx.Message{msg}})
	m = updated.(monitorModel)

	assert.Equal(t, "Zone 3: ok -> faulted, bypassed", lastLog(m).message)
	z, ok := m.zoneList.Items()[2].(zoneState)
	require.True(t, ok)
	assert.True(t, z.faulted)
}

func TestMonitorModel_Refusal(t *testing.T) {
	m := initialMonitorModel(nil, "test", 16)
	msg, err := caddx.NewMessageFromBytes(caddx.ContextNone, []byte{caddx.MsgMessageRejected}, false)
	require.NoError(t, err)

	m.processMessage(msg)
	assert.True(t, lastLog(m).isError)
	assert.Contains(t, lastLog(m).message, "refused")
}

func TestMonitorModel_Keys(t *testing.T) {
	m := initialMonitorModel(nil, "test", 16)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(monitorModel)
	assert.Equal(t, focusCommand, m.focusedField)

	// q goes to the command line while it has focus
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(monitorModel)
	assert.False(t, m.quitting)
	_ = cmd
	assert.Equal(t, "q", m.command.Value())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(monitorModel)
	assert.Equal(t, focusZoneList, m.focusedField)

	// Without a link, Enter on a zone reports the link as down
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(monitorModel)
	assert.Equal(t, "Cannot send: link down", lastLog(m).message)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(monitorModel)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}

func TestMonitorModel_LinkMessages(t *testing.T) {
	m := initialMonitorModel(nil, "test", 16)

	updated, _ := m.Update(linkLostMsg{err: assert.AnError})
	m = updated.(monitorModel)
	assert.True(t, m.linkLost)
	assert.True(t, lastLog(m).isError)
	assert.Contains(t, m.View(), "RECONNECTING")

	updated, _ = m.Update(linkUpMsg{connInfo: "Serial: /dev/ttyUSB0 @ 38400 baud", protocol: caddx.ProtocolBinary})
	m = updated.(monitorModel)
	assert.False(t, m.linkLost)
	assert.Equal(t, caddx.ProtocolBinary, m.protocol)
	assert.Contains(t, m.View(), "/dev/ttyUSB0")
}
