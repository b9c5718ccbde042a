package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsnip"
	"github.com/fwojciec/docsnip/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docsnip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("returns defaults for empty path", func(t *testing.T) {
		cfg, err := yaml.LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, docsnip.DefaultConfig(), *cfg)
	})

	t.Run("merges file over defaults", func(t *testing.T) {
		path := writeConfig(t, `
docs_dir: raw
overwrite: true
repository:
  branch: next
templates:
  usage_prefix: use-
`)

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		def := docsnip.DefaultConfig()
		assert.Equal(t, "raw", cfg.DocsDir)
		assert.True(t, cfg.Overwrite)
		assert.Equal(t, "next", cfg.Repository.Branch)
		assert.Equal(t, def.Repository.URL, cfg.Repository.URL)
		assert.Equal(t, "use-", cfg.Templates.UsagePrefix)
		assert.Equal(t, def.Templates.ImportPrefix, cfg.Templates.ImportPrefix)
		assert.Equal(t, def.RecordsDir, cfg.RecordsDir)
	})

	t.Run("accepts empty file", func(t *testing.T) {
		cfg, err := yaml.LoadConfig(writeConfig(t, ""))

		require.NoError(t, err)
		assert.Equal(t, docsnip.DefaultConfig(), *cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := yaml.LoadConfig(writeConfig(t, "doc_dir: raw\n"))

		assert.Equal(t, docsnip.EINVALID, docsnip.ErrorCode(err))
	})

	t.Run("rejects unknown policy", func(t *testing.T) {
		_, err := yaml.LoadConfig(writeConfig(t, "policy: fuzzy\n"))

		assert.Equal(t, docsnip.EINVALID, docsnip.ErrorCode(err))
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, docsnip.ENOTFOUND, docsnip.ErrorCode(err))
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv(yaml.EnvRepositoryURL, "https://example.com/fork.git")
		t.Setenv(yaml.EnvPolicy, "content")

		cfg, err := yaml.LoadConfig(writeConfig(t, "policy: strict\n"))

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/fork.git", cfg.Repository.URL)
		assert.Equal(t, docsnip.PolicyContent, cfg.Policy)
	})
}

func TestEncodeConfig(t *testing.T) {
	t.Parallel()

	cfg := docsnip.DefaultConfig()
	cfg.DocsDir = "raw"

	data, err := yaml.EncodeConfig(&cfg)
	require.NoError(t, err)

	decoded := docsnip.Config{}
	require.NoError(t, yaml.DecodeConfig(data, &decoded))
	assert.Equal(t, cfg, decoded)
	assert.Contains(t, string(data), "docs_dir: raw")
}
