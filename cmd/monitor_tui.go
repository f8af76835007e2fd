// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/Thermoquad/nx584/pkg/caddx"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

//////////////////////////////////////////////////////////////
// Constants
//////////////////////////////////////////////////////////////

// Focus states
const (
	focusZoneList = iota
	focusCommand
)

const zoneListWidth = 34

//////////////////////////////////////////////////////////////
// Types
//////////////////////////////////////////////////////////////

// monitorModel is the Bubble Tea model for the monitor TUI
type monitorModel struct {
	link     *linkManager
	connInfo string
	protocol caddx.Protocol

	// Panel state
	state     *panelState
	zoneCount int
	zoneList  list.Model

	// Operator input
	command      textinput.Model
	focusedField int

	// Monitoring
	stats         caddx.StatisticsSnapshot
	errorLog      []errorLogEntry
	maxLogEntries int

	// UI state
	width    int
	height   int
	quitting bool
	linkLost bool
}

//////////////////////////////////////////////////////////////
// Messages
//////////////////////////////////////////////////////////////

type monitorTickMsg time.Time

type monitorBatchMsg struct {
	messages []*caddx.Message
}

type linkUpMsg struct {
	connInfo string
	protocol caddx.Protocol
}

type linkLostMsg struct {
	err error
}

//////////////////////////////////////////////////////////////
// Model Initialization
//////////////////////////////////////////////////////////////

func initialMonitorModel(link *linkManager, connInfo string, zones int) monitorModel {
	ti := textinput.New()
	ti.Placeholder = "zone_status_request 0"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "> "

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.SetHeight(2)
	zoneList := list.New([]list.Item{}, delegate, zoneListWidth-2, 10)
	zoneList.Title = "Zones"
	zoneList.SetShowStatusBar(false)
	zoneList.SetShowHelp(false)
	zoneList.SetFilteringEnabled(false)

	m := monitorModel{
		link:          link,
		connInfo:      connInfo,
		state:         newPanelState(),
		zoneCount:     zones,
		zoneList:      zoneList,
		command:       ti,
		focusedField:  focusZoneList,
		errorLog:      make([]errorLogEntry, 0),
		maxLogEntries: 100,
		width:         80,
		height:        24,
	}
	for i := 1; i <= zones; i++ {
		m.state.zone(i)
	}
	m.updateZoneList()
	return m
}

//////////////////////////////////////////////////////////////
// Bubble Tea Interface
//////////////////////////////////////////////////////////////

func (m monitorModel) Init() tea.Cmd {
	return monitorTickCmd()
}

func monitorTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return monitorTickMsg(t)
	})
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateListSize()

	case monitorTickMsg:
		if m.link != nil {
			m.stats = m.link.snapshot()
		}
		return m, monitorTickCmd()

	case monitorBatchMsg:
		for _, pm := range msg.messages {
			m.processMessage(pm)
		}

	case linkUpMsg:
		m.linkLost = false
		m.connInfo = msg.connInfo
		m.protocol = msg.protocol
		m.addLogEntry(fmt.Sprintf("Connected (%s protocol), reading panel state", msg.protocol), false)

	case linkLostMsg:
		m.linkLost = true
		m.addLogEntry(fmt.Sprintf("Link lost: %v - reconnecting...", msg.err), true)
	}

	var cmd tea.Cmd
	if m.focusedField == focusCommand {
		m.command, cmd = m.command.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.zoneList, cmd = m.zoneList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m monitorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab", "shift+tab":
		if m.focusedField == focusZoneList {
			m.focusedField = focusCommand
			m.command.Focus()
		} else {
			m.focusedField = focusZoneList
			m.command.Blur()
		}
		return m, nil

	case "enter":
		if m.focusedField == focusCommand {
			m.submitCommand()
		} else {
			m.toggleSelectedZone()
		}
		return m, nil
	}

	if m.focusedField == focusCommand {
		var cmd tea.Cmd
		m.command, cmd = m.command.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.zoneList, cmd = m.zoneList.Update(msg)
	return m, cmd
}

func (m monitorModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var s strings.Builder

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
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

	focusedBoxStyle := boxStyle.
		BorderForeground(lipgloss.Color("12"))

	// Header
	s.WriteString(titleStyle.Render("NX-584 MONITOR"))
	s.WriteString(" ")
	connStatus := m.connInfo
	if m.linkLost {
		connStatus = warningStyle.Render("RECONNECTING...")
	}
	s.WriteString(headerStyle.Render(fmt.Sprintf("| %s | q=quit Tab=switch Enter=bypass r=refresh", connStatus)))
	s.WriteString("\n\n")

	// Layout: left panel (zones) | right panel (panel and partitions)
	listStyle := boxStyle.Width(zoneListWidth)
	if m.focusedField == focusZoneList {
		listStyle = focusedBoxStyle.Width(zoneListWidth)
	}
	zonePanel := listStyle.Render(m.zoneList.View())

	rightWidth := m.width - zoneListWidth - 6
	if rightWidth < 20 {
		rightWidth = 20
	}
	panelBox := boxStyle.Width(rightWidth).Render(m.renderPanel(labelStyle, valueStyle, errorStyle, headerStyle))

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, zonePanel, " ", panelBox))
	s.WriteString("\n")

	s.WriteString(m.renderStatisticsBar(labelStyle, valueStyle, errorStyle, boxStyle))
	s.WriteString("\n")

	commandStyle := boxStyle
	if m.focusedField == focusCommand {
		commandStyle = focusedBoxStyle
	}
	s.WriteString(commandStyle.Width(m.width - 4).Render(m.command.View()))
	s.WriteString("\n")

	s.WriteString(m.renderEventLog(labelStyle, warningStyle, errorStyle, headerStyle, boxStyle))

	return s.String()
}

//////////////////////////////////////////////////////////////
// View Helpers
//////////////////////////////////////////////////////////////

func (m monitorModel) renderPanel(labelStyle, valueStyle, errorStyle, headerStyle lipgloss.Style) string {
	var s strings.Builder

	s.WriteString(labelStyle.Render("PANEL"))
	s.WriteString("\n")
	if m.state.firmware != "" {
		s.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Firmware:"), valueStyle.Render(m.state.firmware)))
	}
	if m.state.hasSystem {
		s.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Panel ID:"), valueStyle.Render(fmt.Sprintf("%d", m.state.panelID))))
		ac := valueStyle.Render("ok")
		if m.state.acFail {
			ac = errorStyle.Render("FAIL")
		}
		battery := valueStyle.Render("ok")
		if m.state.lowBattery {
			battery = errorStyle.Render("LOW")
		}
		s.WriteString(fmt.Sprintf("%s %s  %s %s\n", labelStyle.Render("AC:"), ac, labelStyle.Render("Battery:"), battery))
	} else {
		s.WriteString(headerStyle.Render("(waiting for system status)"))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(labelStyle.Render("PARTITIONS"))
	s.WriteString("\n")
	shown := 0
	for _, p := range m.state.partitions {
		if !p.valid {
			continue
		}
		style := valueStyle
		if p.armed {
			style = errorStyle
		}
		s.WriteString(fmt.Sprintf("%d: %s\n", p.number, style.Render(p.String())))
		shown++
	}
	if shown == 0 {
		s.WriteString(headerStyle.Render("(none reported)"))
		s.WriteString("\n")
	}

	if m.state.lastEvent != "" {
		s.WriteString("\n")
		s.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Last log:"), m.state.lastEvent))
	}

	return s.String()
}

func (m monitorModel) renderStatisticsBar(labelStyle, valueStyle, errorStyle, boxStyle lipgloss.Style) string {
	var rate float64
	if secs := m.stats.Elapsed.Seconds(); secs > 0 {
		rate = float64(m.stats.MessagesDelivered) / secs
	}

	errCount := m.stats.ChecksumErrors + m.stats.DecodeErrors
	errText := valueStyle.Render("0")
	if errCount > 0 {
		errText = errorStyle.Render(fmt.Sprintf("%d", errCount))
	}

	content := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		labelStyle.Render("Sent:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.MessagesSent)),
		labelStyle.Render("Received:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.MessagesDelivered)),
		labelStyle.Render("Retries:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Retries)),
		labelStyle.Render("Errors:"), errText,
		labelStyle.Render("Rate:"), valueStyle.Render(fmt.Sprintf("%.1f msg/s", rate)),
	)

	return boxStyle.Width(m.width - 4).Render(content)
}

func (m monitorModel) renderEventLog(labelStyle, warningStyle, errorStyle, headerStyle, boxStyle lipgloss.Style) string {
	var s strings.Builder
	s.WriteString(labelStyle.Render("EVENTS"))
	s.WriteString("\n")

	logHeight := 8
	if len(m.errorLog) < logHeight {
		logHeight = len(m.errorLog)
	}
	startIdx := len(m.errorLog) - logHeight

	if len(m.errorLog) == 0 {
		s.WriteString(headerStyle.Render("  (no events yet)"))
	} else {
		for i := startIdx; i < len(m.errorLog); i++ {
			entry := m.errorLog[i]
			icon := "i"
			style := warningStyle
			if entry.isError {
				icon = "x"
				style = errorStyle
			}
			s.WriteString(fmt.Sprintf("%s %s %s\n",
				headerStyle.Render(entry.timestamp.Format("15:04:05.000")),
				style.Render(icon),
				entry.message))
		}
	}

	return boxStyle.Width(m.width - 4).Render(s.String())
}

//////////////////////////////////////////////////////////////
// Data Processing
//////////////////////////////////////////////////////////////

func (m *monitorModel) processMessage(msg *caddx.Message) {
	if isRefusal(msg) {
		m.addLogEntry(fmt.Sprintf("Panel refused request: %s", msg.Name()), true)
		return
	}

	zonesBefore := make(map[int]string, len(m.state.zones))
	for n, z := range m.state.zones {
		zonesBefore[n] = z.Description()
	}
	partitionsBefore := m.state.partitions

	if !m.state.apply(msg) {
		return
	}

	if msg.Number() == caddx.MsgLogEvent {
		m.addLogEntry("Log "+m.state.lastEvent, false)
	}

	for _, z := range m.state.sortedZones() {
		before, known := zonesBefore[z.number]
		if known && before != z.Description() {
			m.addLogEntry(fmt.Sprintf("%s: %s -> %s", z.Title(), before, z.Description()), false)
		}
	}
	for i, p := range m.state.partitions {
		was := partitionsBefore[i]
		if p.valid && was.valid && was.String() != p.String() {
			m.addLogEntry(fmt.Sprintf("Partition %d: %s -> %s", p.number, was, p), false)
		}
	}

	m.updateZoneList()
}

//////////////////////////////////////////////////////////////
// Commands
//////////////////////////////////////////////////////////////

// parseCommandLine builds a message from "TYPE [ARGS...]" where ARGS are
// separated by spaces or commas.
func parseCommandLine(line string) (*caddx.Message, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty command", caddx.ErrInvalidArgument)
	}
	t, err := lookupMessageType(fields[0])
	if err != nil {
		return nil, err
	}
	return caddx.NewMessage(commandContext(), t, strings.Join(fields[1:], ","))
}

func (m *monitorModel) submitCommand() {
	line := strings.TrimSpace(m.command.Value())
	if line == "" {
		return
	}

	msg, err := parseCommandLine(line)
	if err != nil {
		m.addLogEntry(fmt.Sprintf("Invalid command: %v", err), true)
		return
	}
	if err := m.sendMessages(msg); err != nil {
		return
	}
	m.command.SetValue("")
	m.addLogEntry(fmt.Sprintf("Sent %s", caddx.FormatMessageCompact(msg)), false)
}

func (m *monitorModel) toggleSelectedZone() {
	z, ok := m.zoneList.SelectedItem().(zoneState)
	if !ok {
		return
	}

	wire := uint8(z.number - 1)
	ctx := commandContext()
	if err := m.sendMessages(
		caddx.NewZoneBypassToggle(ctx, wire),
		caddx.NewZoneStatusRequest(ctx, wire),
	); err != nil {
		return
	}
	m.addLogEntry(fmt.Sprintf("Sent bypass toggle for %s", z.Title()), false)
}

func (m *monitorModel) refresh() {
	if err := m.sendMessages(statusRequests(m.zoneCount, false)...); err != nil {
		return
	}
	m.addLogEntry("Re-reading panel state", false)
}

func (m *monitorModel) sendMessages(msgs ...*caddx.Message) error {
	if m.link == nil || m.linkLost {
		m.addLogEntry("Cannot send: link down", true)
		return errLinkDown
	}
	if err := m.link.send(msgs...); err != nil {
		m.addLogEntry(fmt.Sprintf("Cannot send: %v", err), true)
		return err
	}
	return nil
}

//////////////////////////////////////////////////////////////
// Helpers
//////////////////////////////////////////////////////////////

func (m *monitorModel) addLogEntry(message string, isError bool) {
	m.errorLog = append(m.errorLog, errorLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	})

	if len(m.errorLog) > m.maxLogEntries {
		m.errorLog = m.errorLog[len(m.errorLog)-m.maxLogEntries:]
	}
}

func (m *monitorModel) updateZoneList() {
	zones := m.state.sortedZones()
	items := make([]list.Item, len(zones))
	for i, z := range zones {
		items[i] = z
	}
	m.zoneList.SetItems(items)
}

func (m *monitorModel) updateListSize() {
	listHeight := m.height / 2
	if listHeight < 6 {
		listHeight = 6
	}
	m.zoneList.SetSize(zoneListWidth-2, listHeight)
}
