package docsnip

import "context"

// Fetcher brings a local copy of the documentation sources up to date.
type Fetcher interface {
	// Fetch clones or updates the sources and returns the directory
	// holding the documentation files.
	Fetch(ctx context.Context) (dir string, err error)
}
