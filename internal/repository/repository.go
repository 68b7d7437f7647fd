// Package repository owns persisted and reference data.
//
// The product catalog is a fixed in-memory list. Orders are written to
// Postgres when a database is configured and kept in memory otherwise.
package repository
