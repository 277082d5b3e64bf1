package main

import (
	"fmt"
	"strings"

	"github.com/andareed/wrwatch/logging"
	"github.com/andareed/wrwatch/records"
	"github.com/charmbracelet/lipgloss"
)

const (
	cursorGutter = 2
	cursorMarker = "▸ "
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.selectorView(contentW),
		m.detailView(contentW),
		m.headerView(),
		bordered,
		m.footerView(contentW),
	))
}

// selectorView is the radio row of known categories plus the refresh control.
func (m *model) selectorView(width int) string {
	selected := m.panel.State().Selected
	items := make([]string, 0, len(records.KnownKeys))
	for i, k := range records.KnownKeys {
		if k == selected {
			items = append(items, radioCheckedStyle.Render(fmt.Sprintf("(•) %d %s", i+1, records.Label(k))))
			continue
		}
		items = append(items, radioStyle.Render(fmt.Sprintf("( ) %d %s", i+1, records.Label(k))))
	}
	radios := lipgloss.NewStyle().Width(max(width-16, 0)).Render(lipgloss.JoinHorizontal(lipgloss.Center, items...))

	button := refreshStyle
	if m.ui.refreshing {
		button = refreshBusyStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, radios, button.Render(m.refreshLabel()))
}

func (m *model) detailView(width int) string {
	style := detailStyle
	if m.ui.highlight {
		style = detailHighlightStyle
	}
	style = style.Width(max(width-2, 10))

	switch m.detailState {
	case detailLoading:
		return style.Render(fmt.Sprintf("%s Loading %s world record...", m.spinner.View(), records.Label(m.loadingKey)))
	case detailFailed:
		return style.Render(errorStyle.Render("× Error loading world record data. Press r to try again."))
	}

	d := m.detail
	lines := []string{
		titleStyle.Render("🏆 " + d.Title),
		timeStyle.Render(d.Time),
		labelStyle.Render("Runner: ") + d.Runner,
		labelStyle.Render("Date:   ") + d.Date,
		"",
		titleStyle.Render(d.InfoTitle),
		d.Description,
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *model) headerView() string {
	var cells []string
	for _, col := range m.header {
		if col.Width <= 0 {
			continue
		}
		cells = append(cells, cellStyle.Width(col.Width).Render(col.Name))
	}
	return headerStyle.Render(strings.Repeat(" ", cursorGutter) + lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// renderTable builds the viewport content: data rows, or a single full-width
// status row while loading or after a failure.
func (m *model) renderTable() string {
	logging.Debug("renderTable called")
	width := m.viewport.Width
	full := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch m.tableState {
	case tableLoading:
		return full.Render(labelStyle.Render("Loading records..."))
	case tableFailed:
		return full.Render(errorStyle.Render("⚠ Error loading category data"))
	}
	if len(m.rows) == 0 {
		return full.Render(labelStyle.Render("No records available"))
	}

	var b strings.Builder
	for i, row := range m.rows {
		content := row.Render(cellStyle, m.header)
		if i == m.cursor {
			b.WriteString(rowSelectedStyle.Render(cursorMarker + content))
		} else {
			b.WriteString(rowStyle.Render(strings.Repeat(" ", cursorGutter) + content))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:        m.footerMode(),
		Category:    records.Label(m.panel.State().Selected),
		LastUpdated: "never",
		Row:         m.cursor + 1,
		TotalRows:   len(m.rows),
		Legend:      "(? help · tab category · enter select · r refresh · x export · y copy)",
	}
	if len(m.rows) == 0 {
		st.Row = 0
	}
	if !m.detail.UpdatedAt.IsZero() {
		st.LastUpdated = m.detail.UpdatedAt.Format("15:04:05")
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height, m.cursor)
	}

	return RenderFooter(width, st, DefaultFooterStyles())
}

func (m *model) footerMode() string {
	switch {
	case m.ui.refreshing:
		return "REFRESHING"
	case m.detailState == detailLoading || m.tableState == tableLoading:
		return "LOADING"
	case m.detailState == detailFailed || m.tableState == tableFailed:
		return "ERROR"
	default:
		return "NORMAL"
	}
}
