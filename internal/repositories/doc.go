// Package repositories implements the SQLite offline cache behind the
// dashboard.
//
// The cache mirrors the server's podcast and translation collections so the
// dashboard can render the last known library without a network round trip.
// Writes are replace-all: each successful fetch overwrites the cached
// collection inside a transaction, stamping every row with the fetch time.
//
// Key Implementations:
//   - [PodcastRepository] : cached podcast collection
//   - [TranslationRepository] : cached translation jobs, queryable per podcast
//   - [Cache] : the combined write-through adapter wired into the flow engine
package repositories
