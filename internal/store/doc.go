// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, so the in-memory backend can later be swapped for
// a persistent one without touching services or handlers.
package store
