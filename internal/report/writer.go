package report

import "context"

// Writer receives one sheet of rows per network, then persists the whole
// report under a run name.
type Writer interface {
	Write(ctx context.Context, sheet string, rows []Row, symbols []string) error
	Flush(ctx context.Context, name string) error
}

// symbolHeader expands the used symbols into the paired amount and average
// columns appended after the fixed ones.
func symbolHeader(symbols []string) []string {
	cols := make([]string, 0, len(symbols)*2)
	for _, symbol := range symbols {
		cols = append(cols, symbol+"(amt)", symbol+"(ave)")
	}
	return cols
}
