// Package store holds the whole application state as one serializable
// document and provides load/save access to it. Every accessor in the service
// layer performs a full load, mutates one part of the document, and saves the
// whole value back (last writer wins).
package store

// Store provides whole-document load/save semantics.
//
// Load never fails: when the backing medium is unavailable it yields a fresh
// seeded document and Save degrades to a no-op. Neither operation surfaces an
// error to the caller; failures are logged and swallowed.
type Store interface {
	Load() *Document
	Save(doc *Document)
}
