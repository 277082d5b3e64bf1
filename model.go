package main

import (
	"context"
	"fmt"
	"time"

	"github.com/andareed/wrwatch/clipboard"
	"github.com/andareed/wrwatch/dialogs"
	"github.com/andareed/wrwatch/logging"
	"github.com/andareed/wrwatch/records"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Rows reserved around the table for selector, detail panel, header and footer.
const reservedHeight = 22

type (
	categoryLoadedMsg struct {
		req records.Request
		rec records.Record
		err error
	}
	tableLoadedMsg struct {
		seq     uint64
		entries []records.Entry
		err     error
	}
)

type model struct {
	ctx   context.Context
	cfg   Config
	panel *records.Panel

	detail      records.Detail
	detailState detailState
	detailErr   error
	loadingKey  records.Key

	rows       []renderedRow
	tableState tableState
	tableErr   error
	cursor     int // index into rows

	header         []ColumnMeta
	viewport       viewport.Model
	spinner        spinner.Model
	ready          bool
	terminalWidth  int
	terminalHeight int

	activeDialog dialogs.Dialog
	ui           uiState

	now    func() time.Time
	copyFn func(string) (clipboard.Method, error)
}

func newModel(ctx context.Context, cfg Config, f records.Fetcher) *model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &model{
		ctx:     ctx,
		cfg:     cfg,
		header:  recordColumns(),
		spinner: sp,
		now:     time.Now,
		copyFn:  clipboard.Copy,
	}
	m.panel = records.NewPanel(f, m, cfg.DefaultCategory)
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("wrwatch: initialised, default category %q", m.panel.State().Selected)
	return tea.Batch(
		m.spinner.Tick,
		m.loadCategory(m.panel.State().Selected),
		m.loadTable(),
	)
}

// --- records.Renderer -------------------------------------------------------

func (m *model) RenderLoading(k records.Key) {
	m.detailState = detailLoading
	m.detailErr = nil
	m.loadingKey = k
}

func (m *model) RenderDetail(d records.Detail) {
	m.detail = d
	m.detailState = detailReady
	m.detailErr = nil
}

func (m *model) RenderTable(rows []records.Row) {
	var cursorKey records.Key
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		cursorKey = m.rows[m.cursor].key
	}

	m.rows = make([]renderedRow, len(rows))
	m.cursor = 0
	for i, r := range rows {
		m.rows[i] = newRenderedRow(r)
		if r.Key == cursorKey {
			m.cursor = i
		}
	}
	m.tableState = tableReady
	m.tableErr = nil
	m.refreshViewport()
}

func (m *model) RenderError(target records.Target, err error) {
	switch target {
	case records.TargetTable:
		m.tableState = tableFailed
		m.tableErr = err
		m.rows = nil
		m.cursor = 0
		m.refreshViewport()
	default:
		m.detailState = detailFailed
		m.detailErr = err
	}
}

// --- commands ---------------------------------------------------------------

func (m *model) loadCategory(k records.Key) tea.Cmd {
	return m.fetchCategory(m.panel.BeginCategory(k))
}

func (m *model) fetchCategory(req records.Request) tea.Cmd {
	ctx, panel := m.ctx, m.panel
	return func() tea.Msg {
		rec, err := panel.Fetch(ctx, req)
		return categoryLoadedMsg{req: req, rec: rec, err: err}
	}
}

func (m *model) loadTable() tea.Cmd {
	seq := m.panel.BeginTable()
	ctx, panel := m.ctx, m.panel
	return func() tea.Msg {
		entries, err := panel.FetchTable(ctx)
		return tableLoadedMsg{seq: seq, entries: entries, err: err}
	}
}

// selectRow makes the row under the cursor the selected category.
func (m *model) selectRow() tea.Cmd {
	if m.tableState != tableReady || m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.fetchCategory(m.panel.Select(m.rows[m.cursor].key))
}

// refresh reloads the selected category and the table side by side.
func (m *model) refresh() tea.Cmd {
	if m.ui.refreshing {
		return nil
	}
	logging.Infof("wrwatch: refresh requested")
	return tea.Batch(
		m.startRefreshCooldown(),
		m.loadCategory(m.panel.State().Selected),
		m.loadTable(),
	)
}

// pickCategory checks selector idx. Re-checking the active one does nothing.
func (m *model) pickCategory(idx int) tea.Cmd {
	if idx < 0 || idx >= len(records.KnownKeys) {
		return nil
	}
	k := records.KnownKeys[idx]
	if k == m.panel.State().Selected {
		return nil
	}
	return m.loadCategory(k)
}

func (m *model) stepCategory(delta int) tea.Cmd {
	n := len(records.KnownKeys)
	idx := records.IndexOf(m.panel.State().Selected)
	if idx < 0 {
		idx = 0
		if delta > 0 {
			delta = 0
		}
	}
	return m.pickCategory(((idx+delta)%n + n) % n)
}

// --- update -----------------------------------------------------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case categoryLoadedMsg:
		applied := m.panel.CompleteCategory(msg.req, msg.rec, msg.err)
		if applied && m.detailState == detailReady {
			return m, m.startHighlight()
		}
		return m, nil

	case tableLoadedMsg:
		m.panel.CompleteTable(msg.seq, msg.entries, msg.err)
		return m, nil

	case highlightDoneMsg:
		m.endHighlight(msg.id)
		return m, nil

	case refreshResetMsg:
		m.endRefreshCooldown(msg.id)
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, m.exportCmd(msg.Path)

	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil

	case dialogs.ExportOKMsg:
		return m, m.startNotice(exportNotice(msg), "success", noticeDuration)

	case dialogs.ExportErrorMsg:
		logging.Errorf("export failed: %v", msg.Err)
		return m, m.startNotice("Export failed: "+msg.Err.Error(), "error", noticeDuration)

	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			var cmd tea.Cmd
			m.activeDialog, cmd = m.activeDialog.Update(msg)
			if !m.activeDialog.IsVisible() {
				m.activeDialog = nil
			}
			return m, cmd
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.NextCategory):
		return m, m.stepCategory(1)
	case key.Matches(msg, Keys.PrevCategory):
		return m, m.stepCategory(-1)
	case key.Matches(msg, Keys.PickCategory):
		return m, m.pickCategory(int(msg.Runes[0] - '1'))
	case key.Matches(msg, Keys.RowDown):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.refreshViewport()
		}
	case key.Matches(msg, Keys.RowUp):
		if m.cursor > 0 {
			m.cursor--
			m.refreshViewport()
		}
	case key.Matches(msg, Keys.SelectRow):
		return m, m.selectRow()
	case key.Matches(msg, Keys.Refresh):
		return m, m.refresh()
	case key.Matches(msg, Keys.ExportToFile):
		return m, m.openExport()
	case key.Matches(msg, Keys.CopyRecord):
		return m, m.copyCurrent()
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
		return m, m.activeDialog.Init()
	}
	return m, nil
}

func (m *model) openExport() tea.Cmd {
	if len(m.panel.Entries()) == 0 {
		return m.startNotice("No records loaded to export", "warn", noticeDuration)
	}
	m.activeDialog = dialogs.NewExportDialog(records.DefaultExportName(m.now()), m.cfg.ExportDir)
	return m.activeDialog.Init()
}

func (m *model) copyCurrent() tea.Cmd {
	if m.detailState != detailReady {
		return m.startNotice("No record to copy", "warn", noticeDuration)
	}
	method, err := m.copyFn(m.detail.Line())
	if err != nil {
		logging.Warnf("copy failed: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Copied "+m.detail.Category+" ("+string(method)+")", "success", noticeDuration)
}

func exportNotice(msg dialogs.ExportOKMsg) string {
	return fmt.Sprintf("Exported %d records to %s", msg.Count, msg.Path)
}

func (m *model) exportCmd(path string) tea.Cmd {
	entries := m.panel.Entries()
	asOf := m.now()
	source := m.cfg.Source
	return func() tea.Msg {
		n, err := writeExportFile(path, entries, asOf, source)
		if err != nil {
			return dialogs.ExportErrorMsg{Err: err}
		}
		return dialogs.ExportOKMsg{Path: path, Count: n}
	}
}

// --- layout -----------------------------------------------------------------

func (m *model) resize(w, h int) {
	m.terminalWidth = w
	m.terminalHeight = h
	m.viewport = viewport.New(max(w-6, 20), max(h-reservedHeight, 3))
	m.header = layoutColumns(m.header, m.viewport.Width-cursorGutter)
	m.ready = true
	m.refreshViewport()
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTable())

	// rows are a single line each
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}
