package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/docsnip"
)

// ReviewRouter places a placeholder in the manual-review location for
// documents that cannot be processed automatically.
type ReviewRouter struct {
	// Writer must not overwrite existing files.
	Writer docsnip.DocumentWriter
}

// Route writes the placeholder for filename unless a file of that name
// already exists. It returns whether a file was created.
func (r *ReviewRouter) Route(ctx context.Context, filename string) (bool, error) {
	return r.Writer.WriteDocument(ctx, filename, docsnip.PlaceholderDocument)
}

// Checker classifies raw documentation files. Valid documents are copied
// to the auto-docs location; invalid ones get a manual-review placeholder.
type Checker struct {
	Source     docsnip.DocumentSource
	Classifier docsnip.Classifier
	AutoDocs   docsnip.DocumentWriter

	// Review is optional. Without it invalid documents are only reported.
	Review *ReviewRouter

	// Reports is optional. When set, every run is recorded.
	Reports docsnip.ReportService
}

// Check processes every file in dir. A failure on one file is recorded in
// the report and processing continues with the next file.
func (c *Checker) Check(ctx context.Context, dir string, progress ProgressFunc) (*docsnip.Report, error) {
	paths, err := c.Source.ListFiles(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	report := &docsnip.Report{Stage: docsnip.StageCheck, StartedAt: time.Now()}
	track := newTracker(progress, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := c.checkFile(ctx, path)
		report.Results = append(report.Results, res)
		track.done(res)
	}
	track.finish()

	return report, saveReport(ctx, c.Reports, report)
}

func (c *Checker) checkFile(ctx context.Context, path string) docsnip.Result {
	doc, cls, res := readResult(ctx, c.Source, c.Classifier, path)
	if doc == nil {
		return res
	}

	if cls.Valid() {
		written, err := c.AutoDocs.WriteDocument(ctx, doc.Filename, doc.Content)
		if err != nil {
			res.Reason = docsnip.ReasonIOFailure
			res.Detail = docsnip.ErrorMessage(err)
		} else if !written {
			res.Detail = "auto doc exists, skipped"
		}
		return res
	}

	if c.Review == nil {
		return res
	}
	if _, err := c.Review.Route(ctx, doc.Filename); err != nil {
		res.Detail = fmt.Sprintf("%s; placeholder not written: %s", res.Detail, docsnip.ErrorMessage(err))
	}
	return res
}
