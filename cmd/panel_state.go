// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
)

// zonesPerSnapshot is the number of zones covered by one Zones Snapshot
// Message; its offset counts in these groups.
const zonesPerSnapshot = 16

// zoneState is what is known about one zone. Number is 1-based.
type zoneState struct {
	number      int
	name        string
	faulted     bool
	bypassed    bool
	trouble     bool
	alarmMemory bool
	lastUpdate  time.Time
}

func (z zoneState) flags() []string {
	var f []string
	if z.faulted {
		f = append(f, "faulted")
	}
	if z.bypassed {
		f = append(f, "bypassed")
	}
	if z.trouble {
		f = append(f, "trouble")
	}
	if z.alarmMemory {
		f = append(f, "alarm memory")
	}
	return f
}

// Implement list.Item interface
func (z zoneState) Title() string {
	if z.name != "" {
		return fmt.Sprintf("Zone %d: %s", z.number, z.name)
	}
	return fmt.Sprintf("Zone %d", z.number)
}

func (z zoneState) Description() string {
	if f := z.flags(); len(f) > 0 {
		return strings.Join(f, ", ")
	}
	return "ok"
}

func (z zoneState) FilterValue() string { return z.Title() }

// partitionState is what is known about one partition. Number is 1-based.
type partitionState struct {
	number        int
	valid         bool
	ready         bool
	armed         bool
	stay          bool
	chime         bool
	entryDelay    bool
	exitDelay     bool
	previousAlarm bool
	lastUser      int
}

func (p partitionState) String() string {
	state := "disarmed"
	if p.armed {
		state = "armed"
		if p.stay {
			state = "armed stay"
		}
	}
	parts := []string{state}
	if p.ready {
		parts = append(parts, "ready")
	} else {
		parts = append(parts, "not ready")
	}
	if p.chime {
		parts = append(parts, "chime")
	}
	if p.entryDelay {
		parts = append(parts, "entry delay")
	}
	if p.exitDelay {
		parts = append(parts, "exit delay")
	}
	if p.previousAlarm {
		parts = append(parts, "previous alarm")
	}
	return strings.Join(parts, ", ")
}

// panelState accumulates panel messages into a picture of the system.
type panelState struct {
	firmware   string
	panelID    int
	hasSystem  bool
	acFail     bool
	lowBattery bool
	partitions [caddx.MaxPartitions]partitionState
	zones      map[int]*zoneState
	lastEvent  string
	updated    time.Time
}

func newPanelState() *panelState {
	s := &panelState{zones: make(map[int]*zoneState)}
	for i := range s.partitions {
		s.partitions[i].number = i + 1
	}
	return s
}

func (s *panelState) zone(number int) *zoneState {
	z, ok := s.zones[number]
	if !ok {
		z = &zoneState{number: number}
		s.zones[number] = z
	}
	return z
}

// sortedZones returns the known zones ordered by number.
func (s *panelState) sortedZones() []zoneState {
	out := make([]zoneState, 0, len(s.zones))
	for _, z := range s.zones {
		out = append(out, *z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].number < out[j].number })
	return out
}

func isSet(m *caddx.Message, label string) bool {
	return m.PropertyValue(label) == "true"
}

func bitByID(m *caddx.Message, id string) bool {
	b, _ := m.PropertyBoolByID(id)
	return b
}

// apply folds a checksum-valid message into the state. It reports whether
// the message carried panel state.
func (s *panelState) apply(m *caddx.Message) bool {
	switch m.Number() {
	case caddx.MsgInterfaceConfiguration:
		s.firmware = strings.TrimSpace(m.PropertyByID("panel_firmware_version"))

	case caddx.MsgSystemStatus:
		s.hasSystem = true
		fmt.Sscan(m.PropertyValue("Panel ID number"), &s.panelID)
		s.acFail = bitByID(m, "panel_ac_fail")
		s.lowBattery = isSet(m, "Low Battery")
		for i := range s.partitions {
			s.partitions[i].valid = isSet(m, fmt.Sprintf("Valid partition %d", i+1))
		}

	case caddx.MsgPartitionsSnapshot:
		for i := range s.partitions {
			p := &s.partitions[i]
			prefix := fmt.Sprintf("Partition %d ", i+1)
			p.valid = isSet(m, prefix+"valid partition")
			p.ready = isSet(m, prefix+"ready")
			p.armed = isSet(m, prefix+"armed")
			p.stay = isSet(m, prefix+"stay mode")
			p.chime = isSet(m, prefix+"chime mode")
			p.entryDelay = isSet(m, prefix+"any entry delay")
			p.exitDelay = isSet(m, prefix+"any exit delay")
			p.previousAlarm = isSet(m, prefix+"previous alarm")
		}

	case caddx.MsgPartitionStatus:
		n, ok := m.PropertyIntByID("partition_number")
		if !ok || n < 0 || n >= caddx.MaxPartitions {
			return false
		}
		p := &s.partitions[n]
		p.valid = true
		p.armed = bitByID(m, "partition_armed")
		p.ready = bitByID(m, "partition_ready_to_arm")
		p.stay = bitByID(m, "partition_entryguard")
		p.chime = bitByID(m, "partition_chime_mode_on")
		p.entryDelay = bitByID(m, "partition_entry")
		p.exitDelay = bitByID(m, "partition_exit1") || bitByID(m, "partition_exit2")
		p.previousAlarm = bitByID(m, "partition_previous_alarm")
		fmt.Sscan(m.PropertyValue("Last user number"), &p.lastUser)

	case caddx.MsgZonesSnapshot:
		offset, ok := m.PropertyIntByID("zone_offset")
		if !ok {
			return false
		}
		for i := 1; i <= zonesPerSnapshot; i++ {
			number := offset*zonesPerSnapshot + i
			if number > caddx.MaxZones {
				break
			}
			z := s.zone(number)
			z.faulted = bitByID(m, fmt.Sprintf("zone_%d_faulted", i))
			z.bypassed = bitByID(m, fmt.Sprintf("zone_%d_bypassed", i))
			z.trouble = bitByID(m, fmt.Sprintf("zone_%d_trouble", i))
			z.alarmMemory = bitByID(m, fmt.Sprintf("zone_%d_alarm_memory", i))
			z.lastUpdate = m.Timestamp()
		}

	case caddx.MsgZoneStatus:
		n, ok := m.PropertyIntByID("zone_number")
		if !ok {
			return false
		}
		z := s.zone(n + 1)
		z.faulted = bitByID(m, "zone_faulted")
		z.bypassed = bitByID(m, "zone_bypassed")
		z.trouble = bitByID(m, "zone_trouble") || bitByID(m, "zone_tampered")
		z.alarmMemory = bitByID(m, "zone_alarm_memory")
		z.lastUpdate = m.Timestamp()

	case caddx.MsgZoneName:
		n, ok := m.PropertyIntByID("zone_number")
		if !ok {
			return false
		}
		s.zone(n + 1).name = strings.TrimRight(m.PropertyByID("zone_name"), " \x00")

	case caddx.MsgLogEvent:
		s.lastEvent = describeLogEvent(m)

	default:
		return false
	}

	s.updated = m.Timestamp()
	return true
}

// describeLogEvent renders a Log Event Message on one line.
func describeLogEvent(m *caddx.Message) string {
	get := func(id string) int {
		v, _ := m.PropertyIntByID(id)
		return v
	}
	return fmt.Sprintf("event %d: type %d, zone/user/device %d, partition %d at %02d/%02d %02d:%02d",
		get("panel_log_event_number"),
		get("panel_log_event_type"),
		get("panel_log_event_zud"),
		get("panel_log_event_partition")+1,
		get("panel_log_event_month"),
		get("panel_log_event_day"),
		get("panel_log_event_hour"),
		get("panel_log_event_minute"),
	)
}
