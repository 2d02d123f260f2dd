// Package reconcile implements the diff-based synchronization of the
// catalog store against a source snapshot.
//
// # Algorithm
//
// One run proceeds in three phases against a single pre-run snapshot of
// the store's identifiers:
//
//  1. Snapshot: the existing IDs are queried once. The snapshot classifies
//     each source record as created or updated and later drives stale
//     detection; it is deliberately not re-queried per record.
//  2. Upsert: each source record is written in its own transaction. The
//     product row is inserted or fully overwritten (stamped with the run
//     epoch), then its tag, image, and review collections are replaced
//     wholesale. A failed record rolls back alone and is counted; the
//     batch continues.
//  3. Evict: IDs in the snapshot but not in the source set are deleted in
//     one bulk statement, with cascade constraints removing child rows.
//
// # Idempotence
//
// Re-running against an unchanged source creates nothing and updates every
// record: the engine always overwrites rather than diffing, trading write
// volume for simplicity. All records touched in one run carry an identical
// updated_at value (the run epoch), which makes "which run touched this
// row" answerable later.
//
// # Failure semantics
//
// Per-record storage faults are isolated and counted in Stats.Failed.
// Faults in the whole-run operations (snapshot, stale removal, store size)
// wrap ErrReconciliationFailed and abort the run.
package reconcile
