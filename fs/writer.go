package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsnip"
)

// Ensure Writer implements docsnip.DocumentWriter at compile time.
var _ docsnip.DocumentWriter = (*Writer)(nil)

// Writer writes text files into a directory.
type Writer struct {
	baseDir   string
	overwrite bool
}

// NewWriter creates a new Writer that writes to the given base directory.
// Existing files are left untouched unless overwrite is set.
func NewWriter(baseDir string, overwrite bool) *Writer {
	return &Writer{baseDir: baseDir, overwrite: overwrite}
}

// WriteDocument writes content to filename inside the base directory.
func (w *Writer) WriteDocument(ctx context.Context, filename, content string) (bool, error) {
	if filename == "" || filepath.Base(filename) != filename {
		return false, docsnip.Errorf(docsnip.EINVALID, "invalid file name %q", filename)
	}
	return writeFile(filepath.Join(w.baseDir, filename), []byte(content), w.overwrite)
}

// writeFile writes data to path, creating parent directories. It skips
// existing files unless overwrite is set and removes partial output when
// the write fails.
func writeFile(path string, data []byte, overwrite bool) (bool, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !os.IsNotExist(err) {
			return false, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		_ = os.Remove(path)
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
