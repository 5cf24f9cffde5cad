// Package common defines shared sentinel errors used across stocktrack
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Parser errors (user-correctable, no state change).
	ErrEmptyInput        = errors.New("empty input")
	ErrNoValidCandidates = errors.New("no valid candidates")

	// Store errors.
	// ErrNoAvailableRecords is an expected outcome (intake pool exhausted),
	// not a fault; callers surface it as a transient notice.
	ErrNoAvailableRecords = errors.New("no available records")

	// ErrRecordNotFound indicates a stale id reference, a caller bug.
	ErrRecordNotFound = errors.New("record not found")

	// ErrPersistenceFailure means the durable snapshot could not be written;
	// the in-memory state is rolled back to keep both sides consistent.
	ErrPersistenceFailure = errors.New("persistence failure")
)
