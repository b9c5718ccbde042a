package mock

import (
	"context"

	"github.com/fwojciec/docsnip"
)

var _ docsnip.TemplateWriter = (*TemplateWriter)(nil)

// TemplateWriter is a mock implementation of docsnip.TemplateWriter.
type TemplateWriter struct {
	WriteTemplateSetFn func(ctx context.Context, set *docsnip.TemplateSet) (string, error)
}

func (w *TemplateWriter) WriteTemplateSet(ctx context.Context, set *docsnip.TemplateSet) (string, error) {
	return w.WriteTemplateSetFn(ctx, set)
}

var _ docsnip.TemplateReader = (*TemplateReader)(nil)

// TemplateReader is a mock implementation of docsnip.TemplateReader.
type TemplateReader struct {
	ReadTemplateSetFn func(ctx context.Context, filename string) (*docsnip.TemplateSet, error)
}

func (r *TemplateReader) ReadTemplateSet(ctx context.Context, filename string) (*docsnip.TemplateSet, error) {
	return r.ReadTemplateSetFn(ctx, filename)
}

var _ docsnip.Installer = (*Installer)(nil)

// Installer is a mock implementation of docsnip.Installer.
type Installer struct {
	InstallFn func(ctx context.Context, src, dst string) ([]string, error)
}

func (i *Installer) Install(ctx context.Context, src, dst string) ([]string, error) {
	return i.InstallFn(ctx, src, dst)
}
