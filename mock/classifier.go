package mock

import "github.com/fwojciec/docsnip"

var _ docsnip.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of docsnip.Classifier.
type Classifier struct {
	ClassifyFn func(doc *docsnip.Document) docsnip.Classification
}

func (c *Classifier) Classify(doc *docsnip.Document) docsnip.Classification {
	return c.ClassifyFn(doc)
}
