package mock

import (
	"context"

	"github.com/fwojciec/docsnip"
)

var _ docsnip.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of docsnip.DocumentSource.
type DocumentSource struct {
	ListFilesFn    func(ctx context.Context, dir string) ([]string, error)
	ReadDocumentFn func(ctx context.Context, path string) (*docsnip.Document, error)
}

func (s *DocumentSource) ListFiles(ctx context.Context, dir string) ([]string, error) {
	return s.ListFilesFn(ctx, dir)
}

func (s *DocumentSource) ReadDocument(ctx context.Context, path string) (*docsnip.Document, error) {
	return s.ReadDocumentFn(ctx, path)
}

var _ docsnip.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of docsnip.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, filename, content string) (bool, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, filename, content string) (bool, error) {
	return w.WriteDocumentFn(ctx, filename, content)
}
