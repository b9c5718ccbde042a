// Package git fetches documentation sources from git repositories.
package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsnip"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Ensure Fetcher implements docsnip.Fetcher at compile time.
var _ docsnip.Fetcher = (*Fetcher)(nil)

// Fetcher keeps a local working copy of a repository up to date.
type Fetcher struct {
	cfg      docsnip.RepositoryConfig
	progress io.Writer
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithProgress streams remote progress messages to w.
func WithProgress(w io.Writer) Option {
	return func(f *Fetcher) {
		f.progress = w
	}
}

// NewFetcher creates a new Fetcher for the repository described by cfg.
func NewFetcher(cfg docsnip.RepositoryConfig, opts ...Option) *Fetcher {
	f := &Fetcher{cfg: cfg}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch clones the repository when the working copy does not exist and
// pulls it otherwise. Only DocsPath is checked out on clone when it is set.
// It returns the documentation directory inside the working copy.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	if f.cfg.URL == "" {
		return "", docsnip.Errorf(docsnip.EINVALID, "repository URL required")
	}
	if f.cfg.Dir == "" {
		return "", docsnip.Errorf(docsnip.EINVALID, "repository directory required")
	}

	if _, err := os.Stat(filepath.Join(f.cfg.Dir, ".git")); err != nil {
		if err := f.clone(ctx); err != nil {
			return "", err
		}
	} else if err := f.pull(ctx); err != nil {
		return "", err
	}

	return filepath.Join(f.cfg.Dir, filepath.FromSlash(f.cfg.DocsPath)), nil
}

func (f *Fetcher) clone(ctx context.Context) error {
	opts := &git.CloneOptions{
		URL:        f.cfg.URL,
		Depth:      f.cfg.Depth,
		NoCheckout: f.cfg.DocsPath != "",
	}
	if f.progress != nil {
		opts.Progress = f.progress
	}
	if f.cfg.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(f.cfg.Branch)
		opts.SingleBranch = true
	}

	repo, err := git.PlainCloneContext(ctx, f.cfg.Dir, false, opts)
	if err != nil {
		return fmt.Errorf("failed to clone repository %s: %w", f.cfg.URL, err)
	}

	if f.cfg.DocsPath == "" {
		return nil
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{
		Branch:                    head.Name(),
		SparseCheckoutDirectories: []string{f.cfg.DocsPath},
	}); err != nil {
		return fmt.Errorf("failed to check out %s: %w", f.cfg.DocsPath, err)
	}
	return nil
}

func (f *Fetcher) pull(ctx context.Context) error {
	repo, err := git.PlainOpen(f.cfg.Dir)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	opts := &git.PullOptions{
		RemoteName: "origin",
		Depth:      f.cfg.Depth,
	}
	if f.progress != nil {
		opts.Progress = f.progress
	}
	if f.cfg.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(f.cfg.Branch)
		opts.SingleBranch = true
	}

	err = wt.PullContext(ctx, opts)
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to pull repository %s: %w", f.cfg.URL, err)
	}
	return nil
}
