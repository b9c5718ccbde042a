package mock

import (
	"context"

	"github.com/fwojciec/docsnip"
)

var _ docsnip.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of docsnip.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *docsnip.Report) error
	FindReportByIDFn func(ctx context.Context, id string) (*docsnip.Report, error)
	FindReportsFn    func(ctx context.Context, filter docsnip.ReportFilter) ([]*docsnip.Report, error)
}

func (s *ReportService) CreateReport(ctx context.Context, report *docsnip.Report) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*docsnip.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter docsnip.ReportFilter) ([]*docsnip.Report, error) {
	return s.FindReportsFn(ctx, filter)
}
