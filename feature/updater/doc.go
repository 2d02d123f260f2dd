// Package updater pushes bulk product updates back to the external source.
//
// Requests are validated eagerly, executed by a bounded worker pool with a
// shared rate limiter, and every request yields exactly one result whether
// it succeeds, fails validation, errors over the wire, or panics.
package updater
