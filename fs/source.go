// Package fs provides file-based storage for documentation, records and
// generated templates.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/frontmatter"
	"github.com/fwojciec/docsnip"
)

// Ensure Source implements docsnip.DocumentSource at compile time.
var _ docsnip.DocumentSource = (*Source)(nil)

// Source reads documentation files from local directories.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// ListFiles returns the regular files directly inside dir, sorted by name.
func (s *Source) ListFiles(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, docsnip.Errorf(docsnip.ENOTFOUND, "directory %q does not exist", dir)
		}
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadDocument reads a documentation file. The title is taken from YAML
// front matter when the file has one; the content is always the raw text.
func (s *Source) ReadDocument(ctx context.Context, path string) (*docsnip.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filename := filepath.Base(path)
	if !docsnip.IsSupported(filename) {
		return nil, docsnip.Errorf(docsnip.EINVALID, "unsupported file extension %q", filepath.Ext(filename))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	return &docsnip.Document{
		Filename:    filename,
		Path:        path,
		Title:       parseTitle(data),
		Content:     content,
		ContentHash: docsnip.ContentHash(content),
	}, nil
}

type frontMatter struct {
	Title string `yaml:"title"`
}

// parseTitle returns the front matter title, or "" when the document has
// no front matter or it cannot be parsed.
func parseTitle(data []byte) string {
	var meta frontMatter
	if _, err := frontmatter.Parse(bytes.NewReader(data), &meta); err != nil {
		return ""
	}
	return meta.Title
}
