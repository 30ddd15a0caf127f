package source

import (
	"database/sql"

	"github.com/seqkit/lookahead"
)

// RowsSource adapts a [sql.Rows] result set to [lookahead.Source]. A query
// result is exactly a forward-only fallible sequence, which makes row
// decoding a natural fit for buffered lookahead.
type RowsSource[Item any] struct {
	rows *sql.Rows
	scan func(rows *sql.Rows) (Item, error)
}

var _ lookahead.Source[any] = (*RowsSource[any])(nil)

// Rows returns a source that decodes each row with scan. The caller keeps
// ownership of rows and must close it after the source is no longer used.
func Rows[Item any](rows *sql.Rows, scan func(rows *sql.Rows) (Item, error)) *RowsSource[Item] {
	if rows == nil {
		panic("rows can't be nil")
	}
	if scan == nil {
		panic("scan can't be nil")
	}
	return &RowsSource[Item]{rows: rows, scan: scan}
}

func (s *RowsSource[Item]) Next() (Item, bool, error) {
	var zero Item

	if !s.rows.Next() {
		// Err is nil on clean exhaustion and sticky on failure, so a failed
		// pull keeps reporting the same error on later calls.
		return zero, false, s.rows.Err()
	}

	item, err := s.scan(s.rows)
	if err != nil {
		return zero, false, err
	}

	return item, true, nil
}
