// Package yaml loads docsnip configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/docsnip"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvRepositoryURL = "DOCSNIP_REPO_URL"
	EnvPolicy        = "DOCSNIP_POLICY"
)

// LoadConfig reads the configuration at path on top of the defaults.
// An empty path yields the defaults. Unknown keys are rejected.
func LoadConfig(path string) (*docsnip.Config, error) {
	cfg := docsnip.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return nil, docsnip.Errorf(docsnip.ENOTFOUND, "config file %q does not exist", path)
		} else if err != nil {
			return nil, err
		}
		if err := DecodeConfig(data, &cfg); err != nil {
			return nil, err
		}
	}

	if url := os.Getenv(EnvRepositoryURL); url != "" {
		cfg.Repository.URL = url
	}
	if policy := os.Getenv(EnvPolicy); policy != "" {
		cfg.Policy = docsnip.Policy(policy)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DecodeConfig merges YAML data into cfg. Keys absent from data keep
// their current values.
func DecodeConfig(data []byte, cfg *docsnip.Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return docsnip.Errorf(docsnip.EINVALID, "parsing config: %v", err)
	}
	return nil
}

// EncodeConfig returns the YAML form of cfg.
func EncodeConfig(cfg *docsnip.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
