package store

import (
	"github.com/dmitrijs2005/stocktrack/internal/common"
	"github.com/dmitrijs2005/stocktrack/internal/models"
)

// View caps, matching the original dashboard.
const (
	paymentHistoryLimit = 20
	activityLogLimit    = 15
	adminTableLimit     = 30
)

// Counts is the dashboard stat line.
type Counts struct {
	Available  int
	Processing int
	Completed  int
	Verified   int // qc_approved
	Paid       int // qc_approved and paid
	Issues     int // failed or qc_wrong_pass
}

// Counts tallies records per dashboard bucket.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c Counts
	for i := range s.records {
		r := &s.records[i]
		switch r.Status {
		case models.StatusAvailable:
			c.Available++
		case models.StatusProcessing:
			c.Processing++
		case models.StatusCompleted:
			c.Completed++
		case models.StatusQCApproved:
			c.Verified++
			if r.Paid {
				c.Paid++
			}
		case models.StatusFailed, models.StatusQCWrongPass:
			c.Issues++
		}
	}
	return c
}

// ActiveTasks returns records being worked, in insertion order.
func (s *Store) ActiveTasks() []models.Record {
	return s.filter(func(r *models.Record) bool { return r.Status == models.StatusProcessing }, 0, false)
}

// QCQueue returns records awaiting quality control, in insertion order.
func (s *Store) QCQueue() []models.Record {
	return s.filter(func(r *models.Record) bool { return r.Status == models.StatusCompleted }, 0, false)
}

// PaymentsPending returns verified-but-unpaid records, in insertion order.
func (s *Store) PaymentsPending() []models.Record {
	return s.filter(func(r *models.Record) bool {
		return r.Status == models.StatusQCApproved && !r.Paid
	}, 0, false)
}

// PaymentHistory returns paid records, newest first, capped at 20.
func (s *Store) PaymentHistory() []models.Record {
	return s.filter(func(r *models.Record) bool {
		return r.Status == models.StatusQCApproved && r.Paid
	}, paymentHistoryLimit, true)
}

// ActivityLog returns settled records, newest first, capped at 15.
func (s *Store) ActivityLog() []models.Record {
	return s.filter(func(r *models.Record) bool { return r.Status.Settled() }, activityLogLimit, true)
}

// AdminTable returns all records, newest first, capped at 30.
func (s *Store) AdminTable() []models.Record {
	return s.filter(func(r *models.Record) bool { return true }, adminTableLimit, true)
}

// All returns a copy of every record in insertion order.
func (s *Store) All() []models.Record {
	return s.filter(func(r *models.Record) bool { return true }, 0, false)
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Find returns the record with the given id.
func (s *Store) Find(id int64) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			return s.records[i], nil
		}
	}
	return models.Record{}, common.ErrRecordNotFound
}

// filter copies matching records; newestFirst reverses insertion order
// before applying the cap (cap 0 means unlimited). Callers receive their
// own slice and cannot mutate store state through it.
func (s *Store) filter(pred func(*models.Record) bool, limit int, newestFirst bool) []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Record, 0, len(s.records))
	if newestFirst {
		for i := len(s.records) - 1; i >= 0; i-- {
			if pred(&s.records[i]) {
				out = append(out, s.records[i])
			}
		}
	} else {
		for i := range s.records {
			if pred(&s.records[i]) {
				out = append(out, s.records[i])
			}
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
