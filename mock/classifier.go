package mock

import "github.com/fwojciec/docset"

var _ docset.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of docset.Classifier.
type Classifier struct {
	ClassifyFn func(path string, html []byte) ([]docset.Entry, error)
}

func (c *Classifier) Classify(path string, html []byte) ([]docset.Entry, error) {
	return c.ClassifyFn(path, html)
}
