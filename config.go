package docsnip

// PlaceholderDocument is written for documents that need manual editing.
// It is shaped so that a filled-in copy passes the strict classifier.
const PlaceholderDocument = "## Usage\n\n```tsx\n \n```\n\n```tsx\n \n```\n"

// Config holds the directories and settings shared by all pipeline stages.
type Config struct {
	// DocsDir holds the raw documentation files from the repository.
	DocsDir string `yaml:"docs_dir"`

	// AutoDocsDir receives copies of documents that passed the check.
	AutoDocsDir string `yaml:"auto_docs_dir"`

	// ManualDocsDir receives placeholders for documents that need editing.
	ManualDocsDir string `yaml:"manual_docs_dir"`

	RecordsDir   string `yaml:"records_dir"`
	TemplatesDir string `yaml:"templates_dir"`
	PluginDir    string `yaml:"plugin_dir"`

	Policy    Policy `yaml:"policy"`
	Overwrite bool   `yaml:"overwrite"`

	Repository RepositoryConfig `yaml:"repository"`
	Templates  TemplateConfig   `yaml:"templates"`
}

// RepositoryConfig describes where documentation sources are fetched from.
type RepositoryConfig struct {
	URL    string `yaml:"url"`
	Branch string `yaml:"branch"`
	Depth  int    `yaml:"depth"`

	// Dir is the local working copy.
	Dir string `yaml:"dir"`

	// DocsPath is the documentation directory inside the repository.
	// Only this path is checked out.
	DocsPath string `yaml:"docs_path"`
}

// DefaultConfig returns the configuration for shadcn/ui.
func DefaultConfig() Config {
	return Config{
		DocsDir:       "shadcn-ui-repo/apps/www/content/docs/components",
		AutoDocsDir:   "docs/auto",
		ManualDocsDir: "docs/manual",
		RecordsDir:    "generated/json",
		TemplatesDir:  "generated/templates",
		PluginDir:     "src/main/resources/liveTemplates",
		Policy:        PolicyStrict,
		Repository: RepositoryConfig{
			URL:      "https://github.com/shadcn-ui/ui.git",
			Branch:   "main",
			Depth:    1,
			Dir:      "shadcn-ui-repo",
			DocsPath: "apps/www/content/docs/components",
		},
		Templates: TemplateConfig{
			ImportGroup:    "shadcn/ui-imports",
			UsageGroup:     "shadcn/ui-usage",
			ImportPrefix:   "cni-",
			UsagePrefix:    "cnu-",
			ImportFile:     "shadcn-ui-import-snippets.xml",
			UsageFile:      "shadcn-ui-usage-snippets.xml",
			DescriptionURL: "https://ui.shadcn.com/docs/components/%s",
		},
	}
}

// Validate returns an error if required directories are missing.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return Errorf(EINVALID, "docs directory required")
	}
	if c.AutoDocsDir == "" || c.ManualDocsDir == "" {
		return Errorf(EINVALID, "auto and manual docs directories required")
	}
	if c.RecordsDir == "" {
		return Errorf(EINVALID, "records directory required")
	}
	if c.TemplatesDir == "" {
		return Errorf(EINVALID, "templates directory required")
	}
	if _, err := NewClassifier(c.Policy); err != nil {
		return err
	}
	return nil
}
