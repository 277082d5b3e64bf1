package main

import (
	"strings"

	"github.com/andareed/wrwatch/records"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	selectedBadgeText = "Selected"
	ellipsis          = "…"
)

type renderedRow struct {
	key      records.Key
	cols     []string
	selected bool // carries the badge
}

func newRenderedRow(r records.Row) renderedRow {
	return renderedRow{
		key:      r.Key,
		selected: r.Selected,
		cols: []string{
			r.Record.Category,
			r.Record.DetailedTime,
			r.Record.Runner,
			r.Record.Date,
		},
	}
}

// String joins the plain cell text with tabs.
func (r renderedRow) String() string {
	return strings.Join(r.cols, "\t")
}

// Render lays the row out on a single line using the column widths in meta.
func (r renderedRow) Render(style lipgloss.Style, meta []ColumnMeta) string {
	inner := style.GetHorizontalPadding()
	rendered := make([]string, 0, len(meta))

	for i, col := range meta {
		if col.Width <= 0 {
			continue
		}
		text := ""
		if i < len(r.cols) {
			text = r.cols[i]
		}
		limit := max(col.Width-inner, 0)

		if i == 0 && r.selected {
			badge := " " + badgeStyle.Render(selectedBadgeText)
			nameLimit := max(limit-lipgloss.Width(badge), 0)
			text = truncate.StringWithTail(text, uint(nameLimit), ellipsis) + badge
		} else {
			text = truncate.StringWithTail(text, uint(limit), ellipsis)
		}
		rendered = append(rendered, style.Width(col.Width).Render(text))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
