// Package notifications keeps the single notification registry of a run.
//
// A Center is constructed once by the caller (typically main) and passed to
// whoever needs the registry. The first Acquire creates the registry and
// reports ActivationInitialized; every later Acquire returns the same
// registry with ActivationAlreadyActive. Entries are append-only and listed in
// insertion order.
package notifications
