// Package models defines the relational shape of the synchronized catalog.
//
// A Product exclusively owns its ProductTag, ProductImage, and Review rows;
// the foreign keys are declared with cascade-on-delete so evicting a stale
// product cleans up all three child tables without extra statements.
package models
