package docsnip

import "context"

// Record is the import/usage snippet pair extracted from one document.
type Record struct {
	Name   string `json:"name"`
	Import string `json:"import"`
	Usage  string `json:"usage"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "record name required")
	}
	return nil
}

// NewRecord builds the record for a valid classification of doc.
func NewRecord(doc *Document, c Classification) *Record {
	return &Record{
		Name:   doc.Name(),
		Import: c.Import.Code,
		Usage:  c.Usage.Code,
	}
}

// RecordStore persists records.
type RecordStore interface {
	// CreateRecord stores the record under its name. It returns false
	// without writing when a record of that name exists and overwriting
	// is disabled.
	CreateRecord(ctx context.Context, rec *Record) (bool, error)

	// FindRecords returns all stored records ordered by name.
	FindRecords(ctx context.Context) ([]*Record, error)

	// Clean removes every stored record.
	Clean(ctx context.Context) error
}
