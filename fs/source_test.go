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

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSource_ListFiles(t *testing.T) {
	t.Parallel()

	t.Run("lists regular files sorted and skips directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "card.mdx"), "")
		writeFile(t, filepath.Join(dir, "avatar.md"), "")
		writeFile(t, filepath.Join(dir, "logo.png"), "")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

		paths, err := fs.NewSource().ListFiles(context.Background(), dir)

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "avatar.md"),
			filepath.Join(dir, "card.mdx"),
			filepath.Join(dir, "logo.png"),
		}, paths)
	})

	t.Run("returns not found for missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource().ListFiles(context.Background(), filepath.Join(t.TempDir(), "missing"))

		assert.Equal(t, docsnip.ENOTFOUND, docsnip.ErrorCode(err))
	})
}

func TestSource_ReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads content and front matter title", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "avatar.mdx")
		content := "---\ntitle: Avatar\ndescription: An image element.\n---\n\n## Usage\n"
		writeFile(t, path, content)

		doc, err := fs.NewSource().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "avatar.mdx", doc.Filename)
		assert.Equal(t, "avatar", doc.Name())
		assert.Equal(t, path, doc.Path)
		assert.Equal(t, "Avatar", doc.Title)
		assert.Equal(t, content, doc.Content)
		assert.Equal(t, docsnip.ContentHash(content), doc.ContentHash)
	})

	t.Run("reads document without front matter", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "card.md")
		writeFile(t, path, "## Usage\n")

		doc, err := fs.NewSource().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, doc.Title)
		assert.Equal(t, "## Usage\n", doc.Content)
	})

	t.Run("rejects unsupported extension before reading", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource().ReadDocument(context.Background(), filepath.Join(t.TempDir(), "missing.json"))

		assert.Equal(t, docsnip.EINVALID, docsnip.ErrorCode(err))
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewSource().ReadDocument(context.Background(), filepath.Join(t.TempDir(), "missing.md"))

		require.Error(t, err)
		assert.Equal(t, docsnip.EINTERNAL, docsnip.ErrorCode(err))
	})
}
