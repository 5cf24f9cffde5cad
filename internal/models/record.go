// Package models defines the account record entity, its lifecycle status
// values, and the pre-ingestion candidate type.
package models

import "time"

// Status is the lifecycle state of a record.
//
// Transitions:
//
//	available --assign--> processing
//	processing --complete(success)--> completed
//	processing --complete(failure)--> failed
//	completed --qc(approved)--> qc_approved
//	completed --qc(wrong_pass)--> qc_wrong_pass
//
// failed, qc_wrong_pass and qc_approved are terminal; the paid flag keeps
// toggling independently once a record is qc_approved.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusProcessing  Status = "processing"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusQCApproved  Status = "qc_approved"
	StatusQCWrongPass Status = "qc_wrong_pass"
)

// Terminal reports whether no further status transition is exposed from s.
func (s Status) Terminal() bool {
	return s == StatusFailed || s == StatusQCWrongPass || s == StatusQCApproved
}

// Settled reports whether s is past the working stage, i.e. the record shows
// up in the activity log.
func (s Status) Settled() bool {
	return s == StatusCompleted || s.Terminal()
}

// Outcome is the result of working an assigned record.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// QCVerdict is the result of a quality-control review.
type QCVerdict string

const (
	QCApproved  QCVerdict = "qc_approved"
	QCWrongPass QCVerdict = "qc_wrong_pass"
)

// Record is a stored, identity-bearing account entry.
//
// The JSON field names are the persisted wire format; CreatedAt serializes
// as an RFC 3339 timestamp.
type Record struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	Pass      string    `json:"pass"`
	Status    Status    `json:"status"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"timestamp"`
}

// Candidate is a parsed, not-yet-stored record awaiting deduplication.
type Candidate struct {
	FirstName string
	LastName  string
	Email     string
	Pass      string
}

// Complete reports whether the candidate carries both fields required for
// ingestion. Email is the dedup key, Pass the credential secret.
func (c Candidate) Complete() bool {
	return c.Email != "" && c.Pass != ""
}
