package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andareed/wrwatch/logging"
	"github.com/andareed/wrwatch/records"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var showCmd = &cobra.Command{
	Use:   "show [category]",
	Short: "Print one category's record and the full table, then exit.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := newClient(vcfg)
		if err != nil {
			return err
		}
		k := cfg.DefaultCategory
		if len(args) == 1 {
			k = records.Key(args[0])
		}
		panel := records.NewPanel(client, &textRenderer{w: cmd.OutOrStdout()}, k)
		return loadBoth(cmd.Context(), panel, k)
	},
}

// loadBoth issues the category and table loads together, waits for both
// fetches and applies the results on the calling goroutine.
func loadBoth(ctx context.Context, panel *records.Panel, k records.Key) error {
	req := panel.BeginCategory(k)
	seq := panel.BeginTable()

	var (
		rec      records.Record
		catErr   error
		entries  []records.Entry
		tableErr error
		g        errgroup.Group
	)
	g.Go(func() error {
		rec, catErr = panel.Fetch(ctx, req)
		return nil
	})
	g.Go(func() error {
		entries, tableErr = panel.FetchTable(ctx)
		return nil
	})
	_ = g.Wait()

	panel.CompleteCategory(req, rec, catErr)
	panel.CompleteTable(seq, entries, tableErr)
	return errors.Join(catErr, tableErr)
}

const textWrapWidth = 72

// textRenderer prints panel output as plain text for non-interactive use.
type textRenderer struct {
	w io.Writer
}

func (r *textRenderer) RenderLoading(k records.Key) {
	logging.Debugf("show: loading %q", k)
}

func (r *textRenderer) RenderDetail(d records.Detail) {
	fmt.Fprintf(r.w, "%s\n", d.Title)
	fmt.Fprintf(r.w, "  Time:   %s (%s)\n", d.Time, d.DetailedTime)
	fmt.Fprintf(r.w, "  Runner: %s\n", d.Runner)
	fmt.Fprintf(r.w, "  Date:   %s\n\n", d.Date)
	fmt.Fprintf(r.w, "%s\n%s\n\n", d.InfoTitle, wordwrap.String(d.Description, textWrapWidth))
	fmt.Fprintf(r.w, "Last updated %s\n\n", d.UpdatedAt.Format("15:04:05"))
}

func (r *textRenderer) RenderTable(rows []records.Row) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Time", "Runner", "Date")
	for _, row := range rows {
		name := row.Record.Category
		if row.Selected {
			name += " [" + selectedBadgeText + "]"
		}
		t.Row(name, row.Record.DetailedTime, row.Record.Runner, row.Record.Date)
	}
	fmt.Fprintln(r.w, t.Render())
}

func (r *textRenderer) RenderError(target records.Target, err error) {
	switch target {
	case records.TargetTable:
		fmt.Fprintf(r.w, "Error loading category data: %v\n", err)
	default:
		fmt.Fprintf(r.w, "Error loading world record data: %v\n\n", err)
	}
}
