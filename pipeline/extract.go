package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docsnip"
)

// Extractor turns checked documents into records.
type Extractor struct {
	Source     docsnip.DocumentSource
	Classifier docsnip.Classifier
	Records    docsnip.RecordStore

	// Clean removes existing records before extracting.
	Clean bool

	// Reports is optional. When set, every run is recorded.
	Reports docsnip.ReportService
}

// Extract reads every file from roots and writes a record for each valid
// document. Documents sharing a record name are all excluded and
// reported; missing roots are treated as empty.
func (e *Extractor) Extract(ctx context.Context, roots []string, progress ProgressFunc) (*docsnip.Report, error) {
	var paths []string
	for _, root := range roots {
		found, err := e.Source.ListFiles(ctx, root)
		if docsnip.ErrorCode(err) == docsnip.ENOTFOUND {
			continue
		} else if err != nil {
			return nil, fmt.Errorf("listing %s: %w", root, err)
		}
		paths = append(paths, found...)
	}

	if e.Clean {
		if err := e.Records.Clean(ctx); err != nil {
			return nil, fmt.Errorf("cleaning records: %w", err)
		}
	}

	unique, dups := docsnip.SplitDuplicates(paths)

	report := &docsnip.Report{Stage: docsnip.StageExtract, StartedAt: time.Now()}
	track := newTracker(progress, len(paths))

	for _, group := range dups {
		for _, path := range group.Paths {
			res := docsnip.Result{
				Name:   group.Name,
				Path:   path,
				Reason: docsnip.ReasonDuplicateName,
				Detail: "same name as " + strings.Join(others(group.Paths, path), ", "),
			}
			report.Results = append(report.Results, res)
			track.done(res)
		}
	}

	for _, path := range unique {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := e.extractFile(ctx, path)
		report.Results = append(report.Results, res)
		track.done(res)
	}
	track.finish()

	return report, saveReport(ctx, e.Reports, report)
}

func (e *Extractor) extractFile(ctx context.Context, path string) docsnip.Result {
	doc, cls, res := readResult(ctx, e.Source, e.Classifier, path)
	if doc == nil || !cls.Valid() {
		return res
	}

	created, err := e.Records.CreateRecord(ctx, docsnip.NewRecord(doc, cls))
	if err != nil {
		res.Reason = docsnip.ReasonIOFailure
		res.Detail = docsnip.ErrorMessage(err)
	} else if !created {
		res.Detail = "record exists, skipped"
	}
	return res
}

func others(paths []string, self string) []string {
	var out []string
	for _, p := range paths {
		if p != self {
			out = append(out, p)
		}
	}
	return out
}
