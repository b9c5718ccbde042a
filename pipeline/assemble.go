package pipeline

import (
	"context"
	"fmt"

	"github.com/fwojciec/docsnip"
)

// Assembler builds template sets from stored records.
type Assembler struct {
	Records   docsnip.RecordStore
	Templates docsnip.TemplateWriter
	Config    docsnip.TemplateConfig
}

// Assemble writes the import and usage template sets and returns the
// written file paths.
func (a *Assembler) Assemble(ctx context.Context) ([]string, error) {
	records, err := a.Records.FindRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	imports, usage := docsnip.BuildTemplateSets(records, a.Config)

	var paths []string
	for _, set := range []*docsnip.TemplateSet{imports, usage} {
		path, err := a.Templates.WriteTemplateSet(ctx, set)
		if err != nil {
			return paths, fmt.Errorf("writing %s: %w", set.Group, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
