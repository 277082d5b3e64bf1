package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/andareed/wrwatch/logging"
	"github.com/andareed/wrwatch/records"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write every category's record to a text summary.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := newClient(vcfg)
		if err != nil {
			return err
		}
		entries, err := client.FetchAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch categories: %w", err)
		}
		records.SortByTime(entries)

		now := time.Now()
		path := records.DefaultExportName(now)
		if len(args) == 1 {
			path = args[0]
		}
		path = exportPath(cfg.ExportDir, path)

		n, err := writeExportFile(path, entries, now, cfg.Source)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", n, path)
		return nil
	},
}

// exportPath places bare file names in dir.
func exportPath(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(dir, name)
}

// writeExportFile writes the summary to path and returns how many records it
// contains.
func writeExportFile(path string, entries []records.Entry, asOf time.Time, source string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create export file: %w", err)
	}
	if err := records.WriteSummary(f, entries, asOf, source); err != nil {
		f.Close()
		return 0, fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close export file: %w", err)
	}
	n := len(records.Exportable(entries))
	logging.Infof("export: wrote %d records to %s", n, path)
	return n, nil
}
