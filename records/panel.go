package records

import (
	"context"
	"fmt"
	"time"

	"github.com/andareed/wrwatch/logging"
)

// Target says which part of the view a failure replaces.
type Target int

const (
	TargetDetail Target = iota // error panel instead of the detail panel
	TargetTable                // single error row instead of table rows
)

func (t Target) String() string {
	if t == TargetTable {
		return "table"
	}
	return "detail"
}

// Detail is everything the detail panel shows after a successful load.
type Detail struct {
	Key          Key
	Category     string
	Title        string
	InfoTitle    string
	Time         string
	DetailedTime string
	Runner       string
	Date         string
	Description  string
	UpdatedAt    time.Time
}

// Line is the one-line form used when copying a record.
func (d Detail) Line() string {
	return fmt.Sprintf("%s: %s by %s (%s)", d.Category, d.DetailedTime, d.Runner, d.Date)
}

// Row is one table line. Selected rows carry the "Selected" badge.
type Row struct {
	Entry
	Selected bool
}

// Renderer receives every visible state change the Panel decides on.
type Renderer interface {
	RenderLoading(key Key)
	RenderDetail(d Detail)
	RenderTable(rows []Row)
	RenderError(target Target, err error)
}

// State is the controller's mutable selection.
type State struct {
	Selected Key
}

// Request identifies one issued category load. Only the most recently issued
// request is allowed to reach the renderer.
type Request struct {
	Seq uint64
	Key Key
}

// Panel owns selection state and turns fetch results into render calls.
// It is not safe for concurrent use: callers drive it from one event loop and
// do the fetching elsewhere, handing results back through the Complete methods.
type Panel struct {
	fetcher  Fetcher
	renderer Renderer
	now      func() time.Time

	state       State
	categorySeq uint64
	tableSeq    uint64

	entries     []Entry
	tableLoaded bool
}

// NewPanel builds a controller with initial selected. An empty key falls back
// to DefaultKey.
func NewPanel(f Fetcher, r Renderer, initial Key) *Panel {
	if initial == "" {
		initial = DefaultKey
	}
	return &Panel{
		fetcher:  f,
		renderer: r,
		now:      time.Now,
		state:    State{Selected: initial},
	}
}

// SetClock replaces the time source used for UpdatedAt.
func (p *Panel) SetClock(now func() time.Time) {
	p.now = now
}

func (p *Panel) State() State {
	return p.state
}

// Entries returns the last successfully loaded table in display order.
func (p *Panel) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Current returns the loaded record for the selected key, if the table has it.
func (p *Panel) Current() (Entry, bool) {
	for _, e := range p.entries {
		if e.Key == p.state.Selected {
			return e, true
		}
	}
	return Entry{}, false
}

// BeginCategory selects key, enters the loading state and moves the table
// badge. The returned request must be fetched and passed to CompleteCategory.
func (p *Panel) BeginCategory(key Key) Request {
	p.state.Selected = key
	p.categorySeq++
	req := Request{Seq: p.categorySeq, Key: key}
	logging.Debugf("panel: begin category %q seq=%d", key, req.Seq)

	p.renderer.RenderLoading(key)
	if p.tableLoaded {
		p.renderer.RenderTable(p.rows())
	}
	return req
}

// Select is row activation: the same as choosing key in the selector.
func (p *Panel) Select(key Key) Request {
	logging.Infof("panel: row selected %q", key)
	return p.BeginCategory(key)
}

// Fetch performs the network half of req. It touches no Panel state and may
// run off the event loop.
func (p *Panel) Fetch(ctx context.Context, req Request) (Record, error) {
	return p.fetcher.FetchCategory(ctx, req.Key)
}

// CompleteCategory renders the outcome of req. Results for anything but the
// latest issued request are dropped; it reports whether req was applied.
func (p *Panel) CompleteCategory(req Request, rec Record, err error) bool {
	if req.Seq != p.categorySeq {
		logging.Debugf("panel: dropping stale category result %q seq=%d latest=%d", req.Key, req.Seq, p.categorySeq)
		return false
	}
	if err != nil {
		logging.Warnf("panel: category %q failed: %v", req.Key, err)
		p.renderer.RenderError(TargetDetail, err)
		return true
	}
	p.renderer.RenderDetail(Detail{
		Key:          req.Key,
		Category:     rec.Category,
		Title:        rec.Category + " World Record",
		InfoTitle:    "What is " + rec.Category + "?",
		Time:         rec.FormattedTime,
		DetailedTime: rec.DetailedTime,
		Runner:       rec.Runner,
		Date:         rec.Date,
		Description:  Describe(req.Key),
		UpdatedAt:    p.now(),
	})
	return true
}

// BeginTable issues a table load and returns its sequence number.
func (p *Panel) BeginTable() uint64 {
	p.tableSeq++
	logging.Debugf("panel: begin table seq=%d", p.tableSeq)
	return p.tableSeq
}

// FetchTable is the network half of a table load.
func (p *Panel) FetchTable(ctx context.Context) ([]Entry, error) {
	return p.fetcher.FetchAll(ctx)
}

// CompleteTable sorts and renders entries, or the table error row.
func (p *Panel) CompleteTable(seq uint64, entries []Entry, err error) bool {
	if seq != p.tableSeq {
		logging.Debugf("panel: dropping stale table result seq=%d latest=%d", seq, p.tableSeq)
		return false
	}
	if err != nil {
		logging.Warnf("panel: categories failed: %v", err)
		p.entries = nil
		p.tableLoaded = false
		p.renderer.RenderError(TargetTable, err)
		return true
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	SortByTime(sorted)
	p.entries = sorted
	p.tableLoaded = true
	p.renderer.RenderTable(p.rows())
	return true
}

// LoadCategory runs a full category load synchronously.
func (p *Panel) LoadCategory(ctx context.Context, key Key) error {
	req := p.BeginCategory(key)
	rec, err := p.Fetch(ctx, req)
	p.CompleteCategory(req, rec, err)
	return err
}

// LoadAllCategories runs a full table load synchronously.
func (p *Panel) LoadAllCategories(ctx context.Context) error {
	seq := p.BeginTable()
	entries, err := p.FetchTable(ctx)
	p.CompleteTable(seq, entries, err)
	return err
}

func (p *Panel) rows() []Row {
	rows := make([]Row, len(p.entries))
	for i, e := range p.entries {
		rows[i] = Row{Entry: e, Selected: e.Key == p.state.Selected}
	}
	return rows
}
