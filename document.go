package docsnip

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// SupportedExtensions lists the file extensions accepted as documentation input.
var SupportedExtensions = []string{".md", ".mdx", ".txt"}

// Document represents a documentation page read from disk.
type Document struct {
	// Filename is the base name of the file, including its extension.
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Title    string `json:"title"` // from front matter, may be empty
	Content  string `json:"content"`

	ContentHash string `json:"contentHash"`
}

// Name returns the record name for the document: the file name with its
// extension stripped.
func (d *Document) Name() string {
	return RecordName(d.Filename)
}

// RecordName strips the extension from a file name.
func RecordName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsSupported reports whether the file name carries a supported extension.
func IsSupported(filename string) bool {
	ext := filepath.Ext(filename)
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ContentHash computes a hash of the content using xxhash.
func ContentHash(content string) string {
	return strconv.FormatUint(xxhash.Sum64String(content), 16)
}

// DocumentSource lists and reads documentation files.
type DocumentSource interface {
	// ListFiles returns the paths of all regular files in dir, sorted by name.
	// Subdirectories are not descended into.
	ListFiles(ctx context.Context, dir string) ([]string, error)

	// ReadDocument reads the file at path.
	ReadDocument(ctx context.Context, path string) (*Document, error)
}

// DocumentWriter writes named text files into an output location.
type DocumentWriter interface {
	// WriteDocument writes content to filename. It returns false without
	// writing when the file already exists and overwriting is disabled.
	WriteDocument(ctx context.Context, filename, content string) (bool, error)
}
