package mock

import "github.com/fwojciec/docset"

var _ docset.Transformer = (*Transformer)(nil)

// Transformer is a mock implementation of docset.Transformer.
type Transformer struct {
	TransformFn func(page *docset.Page) ([]byte, error)
}

func (t *Transformer) Transform(page *docset.Page) ([]byte, error) {
	return t.TransformFn(page)
}
