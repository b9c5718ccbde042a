package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docsnip"
	"github.com/fwojciec/docsnip/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openDB opens an in-memory database closed at test cleanup.
func openDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReportService_CreateReport(t *testing.T) {
	t.Parallel()

	t.Run("stores report with results in order", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewReportService(openDB(t))

		report := &docsnip.Report{
			Stage:     docsnip.StageCheck,
			StartedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
			Results: []docsnip.Result{
				{Name: "avatar", Path: "docs/avatar.mdx", Title: "Avatar", ContentHash: "abc"},
				{Name: "form", Path: "docs/form.mdx", Reason: docsnip.ReasonWrongBlockCount, Detail: "has 5 code blocks"},
			},
		}

		require.NoError(t, svc.CreateReport(ctx, report))
		require.NotEmpty(t, report.ID)

		got, err := svc.FindReportByID(ctx, report.ID)
		require.NoError(t, err)
		assert.Equal(t, report.ID, got.ID)
		assert.Equal(t, docsnip.StageCheck, got.Stage)
		assert.True(t, report.StartedAt.Equal(got.StartedAt))
		assert.Equal(t, report.Results, got.Results)
		assert.False(t, got.Success())
	})

	t.Run("sets start time when missing", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(openDB(t))
		report := &docsnip.Report{Stage: docsnip.StageExtract}

		require.NoError(t, svc.CreateReport(context.Background(), report))

		assert.False(t, report.StartedAt.IsZero())
	})

	t.Run("rejects report without stage", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewReportService(openDB(t))

		err := svc.CreateReport(context.Background(), &docsnip.Report{})

		assert.Equal(t, docsnip.EINVALID, docsnip.ErrorCode(err))
	})
}

func TestReportService_FindReportByID(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewReportService(openDB(t))

	_, err := svc.FindReportByID(context.Background(), "missing")

	assert.Equal(t, docsnip.ENOTFOUND, docsnip.ErrorCode(err))
}

func TestReportService_FindReports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := sqlite.NewReportService(openDB(t))
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	for i, stage := range []string{docsnip.StageCheck, docsnip.StageExtract, docsnip.StageCheck} {
		require.NoError(t, svc.CreateReport(ctx, &docsnip.Report{
			Stage:     stage,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			Results:   []docsnip.Result{{Name: "r"}},
		}))
	}

	t.Run("returns newest first with results", func(t *testing.T) {
		t.Parallel()

		reports, err := svc.FindReports(ctx, docsnip.ReportFilter{})

		require.NoError(t, err)
		require.Len(t, reports, 3)
		assert.True(t, reports[0].StartedAt.Equal(base.Add(2*time.Minute)))
		assert.True(t, reports[2].StartedAt.Equal(base))
		assert.Len(t, reports[0].Results, 1)
	})

	t.Run("filters by stage", func(t *testing.T) {
		t.Parallel()

		stage := docsnip.StageExtract
		reports, err := svc.FindReports(ctx, docsnip.ReportFilter{Stage: &stage})

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, docsnip.StageExtract, reports[0].Stage)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		reports, err := svc.FindReports(ctx, docsnip.ReportFilter{Limit: 1})

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.True(t, reports[0].StartedAt.Equal(base.Add(2*time.Minute)))
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		reports, err := svc.FindReports(ctx, docsnip.ReportFilter{Offset: 2})

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.True(t, reports[0].StartedAt.Equal(base))
	})
}
