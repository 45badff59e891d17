// Package store holds the in-memory roster for a run and its ordering and
// lookup algorithms.
//
// # Ordering
//
// SortByFullName is a stable, in-place insertion sort on the case-insensitive
// full-name key ("first last"). Only elements strictly greater than the held
// key are shifted, so records with equal keys keep their relative order.
//
// # Lookup
//
// SearchByFullName always sorts before it searches. That side effect is part
// of the contract: after any search the roster is in full-name order.
//
// When several records share a full name, which of them the binary search
// lands on depends on the probe sequence for the current length; it is not
// guaranteed to be the first or the last of the run.
//
// # Concurrency
//
// RecordStore has no internal locking. A single goroutine must own it, or the
// caller must serialise access.
package store
