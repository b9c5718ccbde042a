// Package slog provides logging decorators for docsnip services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsnip"
)

// Ensure LoggingClassifier implements docsnip.Classifier.
var _ docsnip.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next   docsnip.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next docsnip.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the verdict.
func (c *LoggingClassifier) Classify(doc *docsnip.Document) (cls docsnip.Classification) {
	defer func(begin time.Time) {
		attrs := []any{
			"file", doc.Filename,
			"title", doc.Title,
			"valid", cls.Valid(),
			"duration", time.Since(begin),
		}
		if !cls.Valid() {
			attrs = append(attrs, "reason", cls.Reason, "detail", cls.Detail)
		}
		c.logger.Debug("classify", attrs...)
	}(time.Now())
	return c.next.Classify(doc)
}

// Ensure LoggingRecordStore implements docsnip.RecordStore.
var _ docsnip.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with logging.
type LoggingRecordStore struct {
	next   docsnip.RecordStore
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next docsnip.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped store and logs the write.
func (s *LoggingRecordStore) CreateRecord(ctx context.Context, record *docsnip.Record) (created bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("record write",
			"name", record.Name,
			"created", created,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, record)
}

// FindRecords delegates to the wrapped store and logs the count.
func (s *LoggingRecordStore) FindRecords(ctx context.Context) (records []*docsnip.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("record read",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx)
}

// Clean delegates to the wrapped store.
func (s *LoggingRecordStore) Clean(ctx context.Context) (err error) {
	defer func() {
		s.logger.Info("record clean", "err", err)
	}()
	return s.next.Clean(ctx)
}

// Ensure LoggingFetcher implements docsnip.Fetcher.
var _ docsnip.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   docsnip.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docsnip.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context) (dir string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"dir", dir,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx)
}

// Ensure LoggingTemplateWriter implements docsnip.TemplateWriter.
var _ docsnip.TemplateWriter = (*LoggingTemplateWriter)(nil)

// LoggingTemplateWriter wraps a TemplateWriter with logging.
type LoggingTemplateWriter struct {
	next   docsnip.TemplateWriter
	logger *slog.Logger
}

// NewLoggingTemplateWriter creates a new LoggingTemplateWriter.
func NewLoggingTemplateWriter(next docsnip.TemplateWriter, logger *slog.Logger) *LoggingTemplateWriter {
	return &LoggingTemplateWriter{next: next, logger: logger}
}

// WriteTemplateSet delegates to the wrapped writer and logs the output path.
func (w *LoggingTemplateWriter) WriteTemplateSet(ctx context.Context, set *docsnip.TemplateSet) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("template set",
			"group", set.Group,
			"templates", len(set.Templates),
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteTemplateSet(ctx, set)
}
