package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/docsnip"
	docgit "github.com/fwojciec/docsnip/git"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitFile writes a file into the repository worktree and commits it.
func commitFile(t *testing.T, repo *git.Repository, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(filepath.ToSlash(name))
	require.NoError(t, err)
	_, err = wt.Commit("update "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("clones then pulls updates", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		origin := t.TempDir()
		repo, err := git.PlainInit(origin, false)
		require.NoError(t, err)
		commitFile(t, repo, origin, "docs/components/avatar.mdx", "## Usage\n")

		workdir := filepath.Join(t.TempDir(), "checkout")
		f := docgit.NewFetcher(docsnip.RepositoryConfig{
			URL:      origin,
			Dir:      workdir,
			DocsPath: "",
		})

		dir, err := f.Fetch(ctx)
		require.NoError(t, err)
		assert.Equal(t, workdir, dir)
		data, err := os.ReadFile(filepath.Join(workdir, "docs", "components", "avatar.mdx"))
		require.NoError(t, err)
		assert.Equal(t, "## Usage\n", string(data))

		// Already up to date is not an error.
		_, err = f.Fetch(ctx)
		require.NoError(t, err)

		commitFile(t, repo, origin, "docs/components/card.mdx", "## Usage\n\ncard")

		_, err = f.Fetch(ctx)
		require.NoError(t, err)
		data, err = os.ReadFile(filepath.Join(workdir, "docs", "components", "card.mdx"))
		require.NoError(t, err)
		assert.Equal(t, "## Usage\n\ncard", string(data))
	})

	t.Run("returns docs path inside working copy", func(t *testing.T) {
		t.Parallel()

		origin := t.TempDir()
		repo, err := git.PlainInit(origin, false)
		require.NoError(t, err)
		commitFile(t, repo, origin, "docs/components/avatar.mdx", "## Usage\n")
		commitFile(t, repo, origin, "README.md", "readme")

		workdir := filepath.Join(t.TempDir(), "checkout")
		f := docgit.NewFetcher(docsnip.RepositoryConfig{
			URL:      origin,
			Dir:      workdir,
			DocsPath: "docs/components",
		})

		dir, err := f.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(workdir, "docs", "components"), dir)
		_, err = os.Stat(filepath.Join(dir, "avatar.mdx"))
		assert.NoError(t, err)
	})

	t.Run("returns error for unreachable repository", func(t *testing.T) {
		t.Parallel()

		f := docgit.NewFetcher(docsnip.RepositoryConfig{
			URL: filepath.Join(t.TempDir(), "missing"),
			Dir: filepath.Join(t.TempDir(), "checkout"),
		})

		_, err := f.Fetch(context.Background())

		assert.Error(t, err)
	})

	t.Run("requires URL and directory", func(t *testing.T) {
		t.Parallel()

		_, err := docgit.NewFetcher(docsnip.RepositoryConfig{Dir: "x"}).Fetch(context.Background())
		assert.Equal(t, docsnip.EINVALID, docsnip.ErrorCode(err))

		_, err = docgit.NewFetcher(docsnip.RepositoryConfig{URL: "x"}).Fetch(context.Background())
		assert.Equal(t, docsnip.EINVALID, docsnip.ErrorCode(err))
	})
}
