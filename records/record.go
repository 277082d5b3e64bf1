package records

import (
	"cmp"
	"slices"
)

// Record is one category's world record as the backend reports it.
// All fields except RawTime are display strings.
type Record struct {
	Category      string  `json:"category"`
	FormattedTime string  `json:"formatted_time"`
	DetailedTime  string  `json:"detailed_time"`
	Runner        string  `json:"runner"`
	Date          string  `json:"date"`
	RawTime       float64 `json:"raw_time"`
}

// Entry is a keyed record from the all-categories map.
type Entry struct {
	Key    Key
	Record Record
}

// SortByTime orders entries fastest first. Equal times keep their input order.
func SortByTime(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Record.RawTime, b.Record.RawTime)
	})
}
