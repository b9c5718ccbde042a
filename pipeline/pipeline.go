// Package pipeline orchestrates the documentation stages: checking raw
// documents, extracting records and assembling template sets. Stages run
// sequentially and isolate failures to the document that caused them.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/docsnip"
)

// ProgressEvent reports progress during a stage.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Result    docsnip.Result
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting stage progress.
type ProgressFunc func(event ProgressEvent)

// tracker emits progress events for one stage run.
type tracker struct {
	fn        ProgressFunc
	total     int
	completed int
}

func newTracker(fn ProgressFunc, total int) *tracker {
	t := &tracker{fn: fn, total: total}
	t.emit(ProgressEvent{Type: ProgressStarted, Total: total})
	return t
}

func (t *tracker) done(res docsnip.Result) {
	t.completed++
	typ := ProgressCompleted
	if !res.OK() {
		typ = ProgressFailed
	}
	t.emit(ProgressEvent{Type: typ, Completed: t.completed, Total: t.total, Result: res})
}

func (t *tracker) finish() {
	t.emit(ProgressEvent{Type: ProgressFinished, Completed: t.completed, Total: t.total})
}

func (t *tracker) emit(e ProgressEvent) {
	if t.fn != nil {
		t.fn(e)
	}
}

// readResult reads and classifies one file. It returns the document, its
// classification and the result describing the outcome so far. The
// document is nil when the file was rejected before classification.
func readResult(ctx context.Context, src docsnip.DocumentSource, cls docsnip.Classifier, path string) (*docsnip.Document, docsnip.Classification, docsnip.Result) {
	res := docsnip.Result{Name: docsnip.RecordName(path), Path: path}

	if !docsnip.IsSupported(path) {
		res.Reason = docsnip.ReasonUnsupportedExtension
		res.Detail = fmt.Sprintf("extension %q is not allowed", filepath.Ext(path))
		return nil, docsnip.Classification{}, res
	}

	doc, err := src.ReadDocument(ctx, path)
	if err != nil {
		res.Reason = docsnip.ReasonIOFailure
		res.Detail = docsnip.ErrorMessage(err)
		return nil, docsnip.Classification{}, res
	}
	res.ContentHash = doc.ContentHash
	res.Title = doc.Title

	c := cls.Classify(doc)
	res.Reason = c.Reason
	res.Detail = c.Detail
	return doc, c, res
}

// saveReport stores the report when a ledger is configured.
func saveReport(ctx context.Context, reports docsnip.ReportService, report *docsnip.Report) error {
	if reports == nil {
		return nil
	}
	if err := reports.CreateReport(ctx, report); err != nil {
		return fmt.Errorf("saving %s report: %w", report.Stage, err)
	}
	return nil
}
