package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInstrumentedStoreObservesOps(t *testing.T) {
	ops := []string{}
	store := NewInstrumentedStore(NewMemoryStore(), func(op string, _ time.Duration) {
		ops = append(ops, op)
	})

	doc := store.Load()
	store.Save(doc)

	assert.Equal(t, []string{"load", "save"}, ops)
}
