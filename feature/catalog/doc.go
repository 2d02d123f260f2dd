// Package catalog implements the synchronization pipeline for the external
// product catalog.
//
// One run extracts the full source collection page by page, normalizes
// each raw record into a product plus its tag, image, and review
// collections, and reconciles the result against the persistent store so
// the store mirrors the source exactly. The reconcile subpackage holds the
// diff/upsert/evict engine; this package composes it with the extractor,
// the transformer, the validation audit, and optional run-report archival.
package catalog
