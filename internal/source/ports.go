// Package source defines the port for tabular transaction sources.
// Adapters materialize the whole table in one scoped read; the aggregation
// core never fetches anything itself.
package source

import "context"

// Reader yields the raw table of a transaction source, headers included as
// the first row. The read is one-shot with no retry: open, read fully,
// close. A failure is fatal for the invocation.
type Reader interface {
	Read(ctx context.Context) ([][]string, error)
}
