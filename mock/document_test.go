package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docsnip"
	"github.com/fwojciec/docsnip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteDocumentFn", func(t *testing.T) {
		t.Parallel()

		var gotName, gotContent string
		w := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, filename, content string) (bool, error) {
				gotName, gotContent = filename, content
				return true, nil
			},
		}

		created, err := w.WriteDocument(context.Background(), "button.mdx", docsnip.PlaceholderDocument)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "button.mdx", gotName)
		assert.Equal(t, docsnip.PlaceholderDocument, gotContent)
	})

	t.Run("returns error from WriteDocumentFn", func(t *testing.T) {
		t.Parallel()

		w := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, _, _ string) (bool, error) {
				return false, docsnip.Errorf(docsnip.EINTERNAL, "disk full")
			},
		}

		_, err := w.WriteDocument(context.Background(), "a.md", "")

		assert.Equal(t, docsnip.EINTERNAL, docsnip.ErrorCode(err))
	})
}
