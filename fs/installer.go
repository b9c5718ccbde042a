package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsnip"
)

// Ensure Installer implements docsnip.Installer at compile time.
var _ docsnip.Installer = (*Installer)(nil)

// Installer copies generated files into another directory, overwriting
// files of the same name.
type Installer struct{}

// NewInstaller creates a new Installer.
func NewInstaller() *Installer {
	return &Installer{}
}

// Install copies every regular file in src to dst. Both directories must exist.
func (i *Installer) Install(ctx context.Context, src, dst string) ([]string, error) {
	if !isDir(src) {
		return nil, docsnip.Errorf(docsnip.ENOTFOUND, "directory %q does not exist", src)
	}
	if !isDir(dst) {
		return nil, docsnip.Errorf(docsnip.ENOTFOUND, "directory %q does not exist", dst)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, err
	}

	var copied []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		if !e.Type().IsRegular() {
			continue
		}
		target := filepath.Join(dst, e.Name())
		if err := copyFile(filepath.Join(src, e.Name()), target); err != nil {
			return copied, err
		}
		copied = append(copied, target)
	}
	return copied, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
