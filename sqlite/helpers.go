package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docsnip"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanReport reads the id, stage and started_at columns of a report row.
func scanReport(row rowScanner) (*docsnip.Report, error) {
	var report docsnip.Report
	var startedAt string
	if err := row.Scan(&report.ID, &report.Stage, &startedAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse started_at of report %s: %w", report.ID, err)
	}
	report.StartedAt = t
	return &report, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder.
// SQLite only accepts OFFSET after a LIMIT, so an offset without a limit
// uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit <= 0 && offset <= 0 {
		return
	}
	if limit <= 0 {
		limit = -1
	}
	query.WriteString(" LIMIT ?")
	*args = append(*args, limit)
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
