package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/docsnip"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docsnip.ReportService = (*ReportService)(nil)

// ReportService implements docsnip.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReport stores the report and its results in one transaction.
func (s *ReportService) CreateReport(ctx context.Context, report *docsnip.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	if report.StartedAt.IsZero() {
		report.StartedAt = time.Now()
	}
	report.StartedAt = report.StartedAt.UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO reports (id, stage, started_at)
		VALUES (?, ?, ?)
	`, report.ID, report.Stage, report.StartedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, res := range report.Results {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO results (report_id, position, name, path, title, reason, detail, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, report.ID, i, res.Name, res.Path, res.Title, string(res.Reason), res.Detail, res.ContentHash); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindReportByID retrieves a report with its results.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*docsnip.Report, error) {
	report, err := scanReport(s.db.QueryRowContext(ctx, `
		SELECT id, stage, started_at
		FROM reports
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, docsnip.Errorf(docsnip.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}

	if report.Results, err = s.findResults(ctx, report.ID); err != nil {
		return nil, err
	}

	return report, nil
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter docsnip.ReportFilter) ([]*docsnip.Report, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, stage, started_at FROM reports WHERE 1=1")

	if filter.Stage != nil {
		query.WriteString(" AND stage = ?")
		args = append(args, *filter.Stage)
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*docsnip.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, report := range reports {
		if report.Results, err = s.findResults(ctx, report.ID); err != nil {
			return nil, err
		}
	}

	return reports, nil
}

func (s *ReportService) findResults(ctx context.Context, reportID string) ([]docsnip.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, path, title, reason, detail, content_hash
		FROM results
		WHERE report_id = ?
		ORDER BY position
	`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []docsnip.Result
	for rows.Next() {
		var res docsnip.Result
		var reason string
		if err := rows.Scan(&res.Name, &res.Path, &res.Title, &reason, &res.Detail, &res.ContentHash); err != nil {
			return nil, err
		}
		res.Reason = docsnip.Reason(reason)
		results = append(results, res)
	}
	return results, rows.Err()
}
