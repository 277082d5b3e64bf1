package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	highlightDuration  = 500 * time.Millisecond
	refreshResetDelay  = 1000 * time.Millisecond
	refreshIdleLabel   = "↻ Refresh"
	refreshActiveLabel = "Refreshing..."
)

type (
	highlightDoneMsg struct{ id int }
	refreshResetMsg  struct{ id int }
)

// startHighlight flashes the detail panel. A newer flash outlives older timers.
func (m *model) startHighlight() tea.Cmd {
	m.ui.highlight = true
	m.ui.highlightSeq++
	id := m.ui.highlightSeq
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg { return highlightDoneMsg{id: id} })
}

func (m *model) endHighlight(id int) {
	if id == m.ui.highlightSeq {
		m.ui.highlight = false
	}
}

// startRefreshCooldown disables the refresh action for a fixed time. It is a
// UX timer only and says nothing about whether the loads have finished.
func (m *model) startRefreshCooldown() tea.Cmd {
	m.ui.refreshing = true
	m.ui.refreshSeq++
	id := m.ui.refreshSeq
	return tea.Tick(refreshResetDelay, func(time.Time) tea.Msg { return refreshResetMsg{id: id} })
}

func (m *model) endRefreshCooldown(id int) {
	if id == m.ui.refreshSeq {
		m.ui.refreshing = false
	}
}

func (m *model) refreshLabel() string {
	if m.ui.refreshing {
		return refreshActiveLabel
	}
	return refreshIdleLabel
}
