package mock

import (
	"context"

	"github.com/fwojciec/docsnip"
)

var _ docsnip.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of docsnip.RecordStore.
type RecordStore struct {
	CreateRecordFn func(ctx context.Context, record *docsnip.Record) (bool, error)
	FindRecordsFn  func(ctx context.Context) ([]*docsnip.Record, error)
	CleanFn        func(ctx context.Context) error
}

func (s *RecordStore) CreateRecord(ctx context.Context, record *docsnip.Record) (bool, error) {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordStore) FindRecords(ctx context.Context) ([]*docsnip.Record, error) {
	return s.FindRecordsFn(ctx)
}

func (s *RecordStore) Clean(ctx context.Context) error {
	return s.CleanFn(ctx)
}
