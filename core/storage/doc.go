// Package storage provides the object-storage client used to archive run
// reports.
//
// After each reconciliation run the stats summary can be written to a
// bucket as JSON, keyed by run ID, so past runs remain auditable without
// querying the database. Consumers depend on the Client interface; the
// mocks subpackage provides a testify mock for tests.
package storage
