package main

import (
	"strings"
	"testing"

	"github.com/andareed/wrwatch/records"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutColumns_SpreadsByWeight(t *testing.T) {
	cols := layoutColumns(recordColumns(), 100)
	require.Len(t, cols, 4)

	total := 0
	for _, c := range cols {
		assert.GreaterOrEqual(t, c.Width, c.MinWidth, c.Name)
		total += c.Width
	}
	assert.LessOrEqual(t, total, 100)
	assert.Greater(t, cols[0].Width, cols[1].Width, "category gets the largest share")
}

func TestLayoutColumns_Narrow(t *testing.T) {
	cols := layoutColumns(recordColumns(), 20)
	for _, c := range cols {
		assert.LessOrEqual(t, c.Width, 20)
	}
	assert.Equal(t, 20, cols[0].Width)
}

func TestRenderedRow(t *testing.T) {
	row := newRenderedRow(records.Row{
		Entry: records.Entry{
			Key:    "any",
			Record: records.Record{Category: "Any%", DetailedTime: "10:00.000", Runner: "X", Date: "2024-01-01"},
		},
		Selected: true,
	})

	assert.Equal(t, "Any%\t10:00.000\tX\t2024-01-01", row.String())

	out := row.Render(lipgloss.NewStyle(), layoutColumns(recordColumns(), 100))
	assert.Contains(t, out, "Any%")
	assert.Contains(t, out, selectedBadgeText)
	assert.NotContains(t, out, "\n")
}

func TestRenderedRow_TruncatesLongCells(t *testing.T) {
	row := newRenderedRow(records.Row{Entry: records.Entry{
		Key:    "x",
		Record: records.Record{Category: "Category", Runner: strings.Repeat("r", 40)},
	}})
	meta := []ColumnMeta{
		{Name: "Category", Width: 12},
		{Name: "Time", Width: 4},
		{Name: "Runner", Width: 10},
	}

	out := row.Render(lipgloss.NewStyle(), meta)
	assert.Contains(t, out, ellipsis)
	assert.NotContains(t, out, strings.Repeat("r", 11))
	assert.Equal(t, 26, lipgloss.Width(out))
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter(80, FooterState{
		Category:      "Any%",
		LastUpdated:   "12:30:00",
		Row:           2,
		TotalRows:     8,
		StatusMessage: "✓ Copied",
		Legend:        "? help",
	}, DefaultFooterStyles())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], " NORMAL ")
	assert.Contains(t, lines[0], "▸ Any%")
	assert.Contains(t, lines[0], "last updated 12:30:00")
	assert.Contains(t, lines[0], "Rows 2/8")
	assert.Contains(t, lines[1], "✓ Copied")
	assert.Contains(t, lines[1], "? help")

	assert.Empty(t, RenderFooter(0, FooterState{}, DefaultFooterStyles()))
}

func TestNoticeText(t *testing.T) {
	assert.Equal(t, "", noticeText("", "info"))
	assert.Equal(t, "✓ done", noticeText("done", "success"))
	assert.Equal(t, "× broke", noticeText("broke", "error"))
	assert.Equal(t, "plain", noticeText("plain", ""))
}
