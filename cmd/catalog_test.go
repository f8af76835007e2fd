// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"bytes"
	"testing"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLookupMessageType(t *testing.T) {
	tests := []struct {
		input   string
		number  byte
		wantErr bool
	}{
		{"zone_status_request", 0x24, false},
		{"ZONE_STATUS_REQUEST", 0x24, false},
		{"0x24", 0x24, false},
		{"36", 0x24, false},
		{"0x02", 0, true},
		{"0x1FF", 0, true},
		{"nope", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mt, err := lookupMessageType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, caddx.ErrUnknownMessageType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.number, mt.Number)
		})
	}
}

func TestNewCatalogEntry(t *testing.T) {
	mt, ok := caddx.Lookup(caddx.MsgZoneStatus)
	require.True(t, ok)

	e := newCatalogEntry(mt, false, nil)
	assert.Equal(t, "0x04", e.Number)
	assert.Equal(t, "in", e.Direction)
	assert.Equal(t, "zone", e.Source)
	assert.Empty(t, e.Properties)

	e = newCatalogEntry(mt, true, nil)
	assert.Len(t, e.Properties, len(mt.Properties))

	bit := caddx.PropertyBit
	e = newCatalogEntry(mt, true, &bit)
	require.NotEmpty(t, e.Properties)
	for _, p := range e.Properties {
		assert.Equal(t, caddx.PropertyBit, p.Type)
	}

	req, ok := caddx.LookupKey("zone_status_request")
	require.True(t, ok)
	e = newCatalogEntry(req, false, nil)
	assert.Equal(t, []string{"0x04", "0x1C", "0x1F"}, e.Replies)
}

func TestWriteCatalogYAML(t *testing.T) {
	mt, ok := caddx.Lookup(caddx.MsgZoneName)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, writeCatalogYAML(&buf, []catalogEntry{newCatalogEntry(mt, true, nil)}))

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "0x03", decoded[0]["number"])
	assert.Equal(t, "zone_name_message", decoded[0]["key"])

	props, ok := decoded[0]["properties"].([]interface{})
	require.True(t, ok)
	require.Len(t, props, 3)
	name := props[2].(map[string]interface{})
	assert.Equal(t, "zone_name", name["id"])
	assert.Equal(t, "String", name["type"])
	assert.Equal(t, 16, name["byte_length"])
}

func TestWriteCatalogText(t *testing.T) {
	mt, ok := caddx.Lookup(caddx.MsgZoneName)
	require.True(t, ok)

	var buf bytes.Buffer
	writeCatalogText(&buf, []catalogEntry{newCatalogEntry(mt, true, nil)}, true)
	out := buf.String()

	assert.Contains(t, out, "0x03  zone_name_message")
	assert.Contains(t, out, "bytes 3-18")
	assert.Contains(t, out, "zone_name")
}
