package main

type detailState int

const (
	detailLoading detailState = iota
	detailReady
	detailFailed
)

type tableState int

const (
	tableLoading tableState = iota
	tableReady
	tableFailed
)

type uiState struct {
	noticeMsg  string
	noticeType string
	noticeSeq  int

	// highlight is the short flash on the detail panel after a load
	highlight    bool
	highlightSeq int

	// refreshing disables the refresh action until its timer fires
	refreshing bool
	refreshSeq int
}
