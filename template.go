package docsnip

import (
	"context"
	"fmt"
	"sort"
)

// Template is a single live template entry.
type Template struct {
	Name        string
	Value       string
	Description string
	Options     []TemplateOption
}

// TemplateOption enables a template for a language context.
type TemplateOption struct {
	Name  string
	Value bool
}

// DefaultTemplateOptions enables templates in JavaScript and TypeScript files.
var DefaultTemplateOptions = []TemplateOption{
	{Name: "JavaScript", Value: true},
	{Name: "TypeScript", Value: true},
}

// TemplateSet is a named group of templates serialized to one file.
type TemplateSet struct {
	Group     string
	Filename  string
	Templates []Template
}

// TemplateConfig controls how records become templates.
type TemplateConfig struct {
	ImportGroup  string `yaml:"import_group"`
	UsageGroup   string `yaml:"usage_group"`
	ImportPrefix string `yaml:"import_prefix"`
	UsagePrefix  string `yaml:"usage_prefix"`
	ImportFile   string `yaml:"import_file"`
	UsageFile    string `yaml:"usage_file"`

	// DescriptionURL is a format string receiving the record name.
	DescriptionURL string `yaml:"description_url"`
}

// BuildTemplateSets converts records into the import and usage template
// sets. Records are ordered by name.
func BuildTemplateSets(records []*Record, cfg TemplateConfig) (imports, usage *TemplateSet) {
	sorted := make([]*Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	imports = &TemplateSet{Group: cfg.ImportGroup, Filename: cfg.ImportFile}
	usage = &TemplateSet{Group: cfg.UsageGroup, Filename: cfg.UsageFile}

	for _, rec := range sorted {
		desc := fmt.Sprintf(cfg.DescriptionURL, rec.Name)
		imports.Templates = append(imports.Templates, Template{
			Name:        cfg.ImportPrefix + rec.Name,
			Value:       rec.Import,
			Description: desc,
			Options:     DefaultTemplateOptions,
		})
		usage.Templates = append(usage.Templates, Template{
			Name:        cfg.UsagePrefix + rec.Name,
			Value:       rec.Usage,
			Description: desc,
			Options:     DefaultTemplateOptions,
		})
	}

	return imports, usage
}

// TemplateWriter serializes template sets.
type TemplateWriter interface {
	// WriteTemplateSet writes set to its file and returns the file path.
	WriteTemplateSet(ctx context.Context, set *TemplateSet) (string, error)
}

// TemplateReader loads previously written template sets.
type TemplateReader interface {
	// ReadTemplateSet parses the template set stored under filename.
	ReadTemplateSet(ctx context.Context, filename string) (*TemplateSet, error)
}

// Installer copies generated template files into the editor plugin.
type Installer interface {
	// Install copies every file from src to dst and returns the copied paths.
	Install(ctx context.Context, src, dst string) ([]string, error)
}
