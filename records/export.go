package records

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// minExportSeconds filters placeholder records ("No runs yet" has raw_time 0).
const minExportSeconds = 1

// DefaultExportName is the file name used when the user does not pick one.
func DefaultExportName(t time.Time) string {
	return "outlast_world_records_" + t.Format("20060102_150405") + ".txt"
}

// WriteSummary writes entries as a single-line summary:
//
//	As of: 2024-01-01 10:00:00 from: <source> | Any% : 10:00.000 by: X  | ...
func WriteSummary(w io.Writer, entries []Entry, asOf time.Time, source string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "As of: %s ", asOf.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "from: %s | ", source)
	for _, e := range Exportable(entries) {
		fmt.Fprintf(bw, "%s ", e.Record.Category)
		fmt.Fprintf(bw, ": %s ", e.Record.DetailedTime)
		fmt.Fprintf(bw, "by: %s ", e.Record.Runner)
		bw.WriteString(" | ")
	}
	return bw.Flush()
}

// Exportable drops placeholder records that have no real time.
func Exportable(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Record.RawTime > minExportSeconds {
			out = append(out, e)
		}
	}
	return out
}
