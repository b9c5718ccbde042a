package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsnip"
	"github.com/fwojciec/docsnip/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstaller_Install(t *testing.T) {
	t.Parallel()

	t.Run("copies files overwriting existing ones", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		dst := t.TempDir()
		writeFile(t, filepath.Join(src, "imports.xml"), "<templateSet/>")
		writeFile(t, filepath.Join(src, "usage.xml"), "<templateSet group=\"new\"/>")
		writeFile(t, filepath.Join(dst, "usage.xml"), "old")

		copied, err := fs.NewInstaller().Install(context.Background(), src, dst)

		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dst, "imports.xml"), filepath.Join(dst, "usage.xml")}, copied)
		data, err := os.ReadFile(filepath.Join(dst, "usage.xml"))
		require.NoError(t, err)
		assert.Equal(t, "<templateSet group=\"new\"/>", string(data))
	})

	t.Run("requires existing source directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewInstaller().Install(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir())

		assert.Equal(t, docsnip.ENOTFOUND, docsnip.ErrorCode(err))
	})

	t.Run("requires existing destination directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewInstaller().Install(context.Background(), t.TempDir(), filepath.Join(t.TempDir(), "missing"))

		assert.Equal(t, docsnip.ENOTFOUND, docsnip.ErrorCode(err))
	})
}
