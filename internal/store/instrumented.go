package store

import "time"

// OpObserver receives the duration of a completed store operation.
type OpObserver func(op string, duration time.Duration)

type instrumentedStore struct {
	inner   Store
	observe OpObserver
}

// NewInstrumentedStore wraps a store so load/save timings reach the metrics
// pipeline.
func NewInstrumentedStore(inner Store, observe OpObserver) Store {
	if observe == nil {
		return inner
	}
	return &instrumentedStore{inner: inner, observe: observe}
}

func (s *instrumentedStore) Load() *Document {
	start := time.Now()
	doc := s.inner.Load()
	s.observe("load", time.Since(start))
	return doc
}

func (s *instrumentedStore) Save(doc *Document) {
	start := time.Now()
	s.inner.Save(doc)
	s.observe("save", time.Since(start))
}
