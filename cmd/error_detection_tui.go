// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Error log entry
type errorLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool // true for errors, false for warnings
}

// messageCount tracks how often a message type was seen
type messageCount struct {
	number   byte
	name     string
	count    int
	errors   int
	lastSeen time.Time
}

// TUI model
type model struct {
	connInfo      string
	protocol      caddx.Protocol
	statsInterval int
	showAll       bool
	stats         *caddx.Statistics
	errorLog      []errorLogEntry
	maxLogEntries int
	synchronized  bool
	invalidFrames int
	width         int
	height        int
	quitting      bool
	linkErr       error
	seen          map[byte]*messageCount
}

// Messages
type tickMsg time.Time
type frameMsg frameEvent
type syncMsg struct {
	invalidFrames int
}
type linkErrorMsg struct {
	err error
}

// formatUptime formats uptime in milliseconds to human-friendly string
func formatUptime(ms uint64) string {
	if ms == 0 {
		return "0 seconds"
	}

	seconds := ms / 1000
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	seconds %= 60
	minutes %= 60
	hours %= 24

	unit := func(n uint64, name string) string {
		if n == 1 {
			return "1 " + name
		}
		return fmt.Sprintf("%d %ss", n, name)
	}

	parts := []string{}
	if days > 0 {
		parts = append(parts, unit(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, unit(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, unit(minutes, "minute"))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, unit(seconds, "second"))
	}

	// Join with commas and "and" for last item
	if len(parts) == 1 {
		return parts[0]
	}
	if len(parts) == 2 {
		return parts[0] + " and " + parts[1]
	}
	last := parts[len(parts)-1]
	rest := strings.Join(parts[:len(parts)-1], ", ")
	return rest + ", and " + last
}

func initialModel(connInfo string, protocol caddx.Protocol, stats *caddx.Statistics, statsInterval int, showAll bool) model {
	return model{
		connInfo:      connInfo,
		protocol:      protocol,
		statsInterval: statsInterval,
		showAll:       showAll,
		stats:         stats,
		errorLog:      make([]errorLogEntry, 0),
		maxLogEntries: 100,
		width:         80,
		height:        24,
		seen:          make(map[byte]*messageCount),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		tea.EnterAltScreen,
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.stats.Reset()
			m.seen = make(map[byte]*messageCount)
			m.addLogEntry("Statistics reset", false)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// Redraw with fresh rates
		return m, tickCmd()

	case syncMsg:
		m.synchronized = true
		m.invalidFrames = msg.invalidFrames
		if msg.invalidFrames > 0 {
			m.addLogEntry(fmt.Sprintf("Synchronized after skipping %d invalid frames", msg.invalidFrames), false)
		} else {
			m.addLogEntry("Synchronized", false)
		}

	case linkErrorMsg:
		m.linkErr = msg.err
		m.addLogEntry(fmt.Sprintf("LINK ERROR: %v", msg.err), true)

	case frameMsg:
		m.stats.Update(msg.message, msg.decodeErr, msg.validationErrors)

		if msg.decodeErr != nil {
			m.addLogEntry(fmt.Sprintf("DECODE ERROR: %v [%s]", msg.decodeErr, caddx.FormatHex(msg.raw)), true)
			break
		}

		m.countMessage(msg.message, len(msg.validationErrors) > 0)

		if len(msg.validationErrors) > 0 {
			// Validation errors
			for _, err := range msg.validationErrors {
				m.addLogEntry(fmt.Sprintf("%s: %s", msg.message.Name(), err.Message), true)
			}
		} else if m.showAll {
			// Valid message (only if --show-all)
			m.addLogEntry(fmt.Sprintf("%s (valid)", msg.message.Name()), false)
		}
	}

	return m, nil
}

func (m *model) addLogEntry(message string, isError bool) {
	entry := errorLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	}
	m.errorLog = append(m.errorLog, entry)

	// Keep only last N entries
	if len(m.errorLog) > m.maxLogEntries {
		m.errorLog = m.errorLog[len(m.errorLog)-m.maxLogEntries:]
	}
}

func (m *model) countMessage(msg *caddx.Message, failed bool) {
	c, ok := m.seen[msg.Number()]
	if !ok {
		c = &messageCount{number: msg.Number(), name: msg.Type().Name}
		m.seen[msg.Number()] = c
	}
	c.count++
	if failed {
		c.errors++
	}
	c.lastSeen = msg.Timestamp()
}

func (m model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	statsLabelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	statsValueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	// Header
	var s strings.Builder
	s.WriteString(titleStyle.Render("NX-584 - ERROR DETECTION"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s (%s) | Mode: %s | 'r' reset, 'q' quit",
		m.connInfo, m.protocol, func() string {
			if m.showAll {
				return "All messages"
			}
			return "Errors only"
		}())))
	s.WriteString("\n\n")

	// Sync status
	switch {
	case m.linkErr != nil:
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ Link down: %v", m.linkErr)))
	case !m.synchronized:
		s.WriteString(warningStyle.Render("⏳ Waiting for synchronization..."))
	default:
		s.WriteString(statsValueStyle.Render("✓ Synchronized"))
		if m.invalidFrames > 0 {
			s.WriteString(headerStyle.Render(fmt.Sprintf(" (skipped %d invalid frames)", m.invalidFrames)))
		}
	}
	s.WriteString("\n\n")

	// Statistics
	snap := m.stats.Snapshot()
	var validPercent, errorPercent float64
	if snap.FramesReceived > 0 {
		validPercent = float64(snap.ValidMessages) * 100.0 / float64(snap.FramesReceived)
		errorPercent = float64(snap.Errors()) * 100.0 / float64(snap.FramesReceived)
	}

	statsContent := strings.Builder{}
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		statsLabelStyle.Render("Frames:"), statsValueStyle.Render(fmt.Sprintf("%d", snap.FramesReceived)),
		statsLabelStyle.Render("Valid:"), statsValueStyle.Render(fmt.Sprintf("%d (%.1f%%)", snap.ValidMessages, validPercent)),
		statsLabelStyle.Render("Errors:"), errorStyle.Render(fmt.Sprintf("%d (%.1f%%)", snap.Errors(), errorPercent)),
	))

	if snap.ChecksumErrors > 0 || snap.DecodeErrors > 0 || snap.PartialFrames > 0 {
		statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
			statsLabelStyle.Render("Checksum:"), errorStyle.Render(fmt.Sprintf("%d", snap.ChecksumErrors)),
			statsLabelStyle.Render("Decode:"), errorStyle.Render(fmt.Sprintf("%d", snap.DecodeErrors)),
			statsLabelStyle.Render("Partial:"), errorStyle.Render(fmt.Sprintf("%d", snap.PartialFrames)),
		))
	}

	if snap.LengthMismatches > 0 || snap.DirectionErrors > 0 || snap.InvalidValues > 0 {
		statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
			statsLabelStyle.Render("Length:"), warningStyle.Render(fmt.Sprintf("%d", snap.LengthMismatches)),
			statsLabelStyle.Render("Direction:"), warningStyle.Render(fmt.Sprintf("%d", snap.DirectionErrors)),
			statsLabelStyle.Render("Values:"), warningStyle.Render(fmt.Sprintf("%d", snap.InvalidValues)),
		))
	}

	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s",
		statsLabelStyle.Render("Frame Rate:"), statsValueStyle.Render(fmt.Sprintf("%.1f frames/s", snap.FrameRate)),
		statsLabelStyle.Render("Error Rate:"), func() string {
			if snap.ErrorRate > 0 {
				return errorStyle.Render(fmt.Sprintf("%.1f err/s", snap.ErrorRate))
			}
			return statsValueStyle.Render(fmt.Sprintf("%.1f err/s", snap.ErrorRate))
		}(),
		statsLabelStyle.Render("Uptime:"), statsValueStyle.Render(formatUptime(uint64(snap.Elapsed.Milliseconds()))),
	))

	s.WriteString(boxStyle.Render(statsContent.String()))
	s.WriteString("\n\n")

	// Message types seen so far
	if len(m.seen) > 0 {
		s.WriteString(statsLabelStyle.Render("Message Types:"))
		s.WriteString("\n")

		counts := make([]*messageCount, 0, len(m.seen))
		for _, c := range m.seen {
			counts = append(counts, c)
		}
		sort.Slice(counts, func(i, j int) bool { return counts[i].number < counts[j].number })

		typesContent := strings.Builder{}
		for _, c := range counts {
			line := fmt.Sprintf("0x%02X %-34s %6d", c.number, c.name, c.count)
			if c.errors > 0 {
				line += errorStyle.Render(fmt.Sprintf("  %d bad", c.errors))
			}
			typesContent.WriteString(line)
			typesContent.WriteString(headerStyle.Render("  " + c.lastSeen.Format("15:04:05")))
			typesContent.WriteString("\n")
		}

		s.WriteString(boxStyle.Render(strings.TrimRight(typesContent.String(), "\n")))
		s.WriteString("\n\n")
	}

	// Error log
	s.WriteString(statsLabelStyle.Render("Recent Events:"))
	s.WriteString("\n")

	// Calculate how many log entries we can show
	logHeight := m.height - 15 - len(m.seen) // Reserve space for header and stats
	if logHeight < 5 {
		logHeight = 5
	}

	logContent := strings.Builder{}
	startIdx := len(m.errorLog) - logHeight
	if startIdx < 0 {
		startIdx = 0
	}

	if len(m.errorLog) == 0 {
		logContent.WriteString(headerStyle.Render("  (no events yet)"))
	} else {
		for i := startIdx; i < len(m.errorLog); i++ {
			entry := m.errorLog[i]
			timestamp := entry.timestamp.Format("01/02/06 15:04:05.000")
			if entry.isError {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					errorStyle.Render("✗ "+entry.message),
				))
			} else {
				logContent.WriteString(fmt.Sprintf("%s %s\n",
					headerStyle.Render(timestamp),
					warningStyle.Render("ℹ "+entry.message),
				))
			}
		}
	}

	s.WriteString(boxStyle.Width(m.width - 4).Render(logContent.String()))

	return s.String()
}
