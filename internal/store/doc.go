// Package store is the transactional gateway to the embedded bbolt
// database.
//
// Records are JSON documents in two tables (buckets), accounts and players,
// both keyed by username. Reads run in read transactions. Registration
// writes both records in one write transaction that first checks the key is
// free in every table, so concurrent registrations of the same name commit
// at most once. Transient write failures are retried a bounded number of
// times.
package store
