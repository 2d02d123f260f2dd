// Package database provides the persistent-store connection for the catalog.
//
// It wraps GORM with a MySQL driver, applying sane pool limits and verifying
// the connection with a ping before handing it out. The store must support
// transactional commit/rollback and cascade-delete of child rows, both of
// which the catalog schema declares via foreign key constraints.
package database
