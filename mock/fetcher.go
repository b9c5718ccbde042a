package mock

import (
	"context"

	"github.com/fwojciec/docsnip"
)

var _ docsnip.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docsnip.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	return f.FetchFn(ctx)
}
