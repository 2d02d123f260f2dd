package reconcile

import "errors"

// ErrReconciliationFailed marks a fatal, whole-run storage fault: the
// initial ID snapshot, the stale-record removal, or the store size query
// failed. Per-record faults never carry it; they are isolated and counted.
var ErrReconciliationFailed = errors.New("reconciliation failed")

// WriteMode selects how source records are written to the store.
type WriteMode string

const (
	// ModeInsertOnly always inserts, suitable for loading into an empty
	// store. Records keep their source timestamps.
	ModeInsertOnly WriteMode = "insert"

	// ModeUpsert inserts new records, fully overwrites existing ones, and
	// enables stale-record eviction. Every touched record is stamped with
	// the run epoch.
	ModeUpsert WriteMode = "upsert"
)

// Stats summarizes one reconciliation run.
type Stats struct {
	// TotalSource is the number of records seen in the source.
	TotalSource int `json:"total_source_records"`

	// Created counts records absent from the pre-run snapshot.
	Created int `json:"created"`

	// Updated counts records present in the pre-run snapshot. Unchanged
	// records still count here: the engine always overwrites, never skips.
	Updated int `json:"updated"`

	// Failed counts records whose transaction rolled back.
	Failed int `json:"failed"`

	// StaleRemoved counts store rows evicted because their ID vanished
	// from the source.
	StaleRemoved int `json:"stale_removed"`

	// StoreBefore is the store size at snapshot time.
	StoreBefore int `json:"store_before"`

	// StoreAfter is the store size after stale removal.
	StoreAfter int `json:"store_after"`

	// ElapsedSeconds is the wall-clock duration of the run.
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}
