package main

import (
	"fmt"

	"github.com/fwojciec/docsnip"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	doc, err := deps.Source.ReadDocument(deps.Ctx, c.Path)
	if err != nil {
		return err
	}

	cls := deps.Classifier.Classify(doc)
	if !cls.Valid() {
		fmt.Fprintf(deps.Stdout, "%s: %s (%s)\n", doc.Filename, cls.Reason, cls.Detail)
		return docsnip.Errorf(docsnip.EINVALID, "manual intervention required: %s", cls.Reason)
	}

	fmt.Fprintf(deps.Stdout, "%s: ok\n", doc.Filename)
	fmt.Fprintf(deps.Stdout, "\nimport:\n%s\n\nusage:\n%s\n", cls.Import.Code, cls.Usage.Code)
	return nil
}
