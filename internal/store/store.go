// Package store owns the canonical ordered list of account records and every
// lifecycle transition on them. It is the single source of truth: each
// mutation is applied to a working copy, persisted as a whole snapshot, and
// only committed to the live state when the write succeeds.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/stocktrack/internal/common"
	"github.com/dmitrijs2005/stocktrack/internal/logging"
	"github.com/dmitrijs2005/stocktrack/internal/models"
)

// Storage is the persistence port. Load returns the last saved snapshot
// (an empty slice when nothing was ever saved) and Save replaces it
// wholesale; there is no incremental persistence.
type Storage interface {
	Load(ctx context.Context) ([]models.Record, error)
	Save(ctx context.Context, records []models.Record) error
}

// IngestReport summarizes one bulk ingestion batch.
type IngestReport struct {
	Added      int
	Duplicates int
	Skipped    int // structurally incomplete candidates, neither added nor duplicate
}

// Store is the record store and lifecycle engine. A single mutex serializes
// every operation; "read state, decide, write state" is never interleaved.
type Store struct {
	mu       sync.Mutex
	storage  Storage
	logger   logging.Logger
	records  []models.Record
	onChange func()

	now func() time.Time // test seam
}

func New(storage Storage, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Store{storage: storage, logger: logger, now: time.Now}
}

// OnChange registers a callback invoked after every committed mutation, so a
// front end can re-render. Must be set before the store is shared.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// Open loads the persisted snapshot into memory. A missing blob is an empty
// store, not an error.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	s.records = records
	s.logger.Debug(ctx, "store opened", "records", len(records))
	return nil
}

// Ingest deduplicates candidates against the store (and against earlier
// candidates in the same batch) by exact email match, appends the survivors
// with sequential ids and status available, and persists once for the whole
// batch. Candidates missing email or password are skipped silently; the
// parser never emits those, this is a defensive guard only.
func (s *Store) Ingest(ctx context.Context, candidates []models.Candidate) (IngestReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.cloneLocked()
	now := s.now()

	var report IngestReport
	for _, c := range candidates {
		if !c.Complete() {
			report.Skipped++
			continue
		}
		if hasEmail(working, c.Email) {
			report.Duplicates++
			continue
		}
		working = append(working, models.Record{
			ID:        nextID(working),
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Pass:      c.Pass,
			Status:    models.StatusAvailable,
			Paid:      false,
			CreatedAt: now,
		})
		report.Added++
	}

	if err := s.commitLocked(ctx, working); err != nil {
		return IngestReport{}, err
	}

	s.logger.Info(ctx, "batch ingested",
		"batch_id", uuid.NewString(),
		"added", report.Added,
		"duplicates", report.Duplicates,
		"skipped", report.Skipped,
	)
	return report, nil
}

// AssignNext hands out the earliest-inserted record still available, flipping
// it to processing. Returns common.ErrNoAvailableRecords when the pool is
// exhausted; that is an expected outcome, not a fault.
func (s *Store) AssignNext(ctx context.Context) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.cloneLocked()
	idx := -1
	for i := range working {
		if working[i].Status == models.StatusAvailable {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Record{}, common.ErrNoAvailableRecords
	}

	working[idx].Status = models.StatusProcessing
	if err := s.commitLocked(ctx, working); err != nil {
		return models.Record{}, err
	}

	s.logger.Info(ctx, "record assigned", "id", working[idx].ID)
	return working[idx], nil
}

// Complete sets the record's status to completed on success, failed
// otherwise. The current status is not checked; completing a record that was
// never assigned matches the original tracker's behavior.
func (s *Store) Complete(ctx context.Context, id int64, outcome models.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.cloneLocked()
	idx, err := indexByID(working, id)
	if err != nil {
		return err
	}

	if outcome == models.OutcomeSuccess {
		working[idx].Status = models.StatusCompleted
	} else {
		working[idx].Status = models.StatusFailed
	}

	if err := s.commitLocked(ctx, working); err != nil {
		return err
	}

	s.logger.Info(ctx, "record completed", "id", id, "outcome", string(outcome))
	return nil
}

// MarkQC records a quality-control verdict on a record.
func (s *Store) MarkQC(ctx context.Context, id int64, verdict models.QCVerdict) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.cloneLocked()
	idx, err := indexByID(working, id)
	if err != nil {
		return err
	}

	working[idx].Status = models.Status(verdict)

	if err := s.commitLocked(ctx, working); err != nil {
		return err
	}

	s.logger.Info(ctx, "qc verdict recorded", "id", id, "verdict", string(verdict))
	return nil
}

// TogglePaid flips the record's paid flag. The flag is orthogonal to status;
// whether it means anything before qc_approved is the caller's concern.
func (s *Store) TogglePaid(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.cloneLocked()
	idx, err := indexByID(working, id)
	if err != nil {
		return err
	}

	working[idx].Paid = !working[idx].Paid

	if err := s.commitLocked(ctx, working); err != nil {
		return err
	}

	s.logger.Info(ctx, "paid toggled", "id", id, "paid", working[idx].Paid)
	return nil
}

// Clear empties the store and persists the empty state. Irreversible.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commitLocked(ctx, []models.Record{}); err != nil {
		return err
	}

	s.logger.Warn(ctx, "store cleared")
	return nil
}

// commitLocked persists the working set and, only on success, makes it the
// live state and fires the change notification. On failure the previous
// state stays intact so memory and durable state cannot diverge.
func (s *Store) commitLocked(ctx context.Context, working []models.Record) error {
	if err := s.storage.Save(ctx, working); err != nil {
		return fmt.Errorf("%w: %w", common.ErrPersistenceFailure, err)
	}
	s.records = working
	if s.onChange != nil {
		s.onChange()
	}
	return nil
}

// cloneLocked returns a mutable copy of the live record set.
func (s *Store) cloneLocked() []models.Record {
	working := make([]models.Record, len(s.records))
	copy(working, s.records)
	return working
}

// nextID follows the original assignment rule: one past the last record's
// id, or 1 for an empty store. No deletion operation exists, so ids are
// strictly increasing regardless.
func nextID(records []models.Record) int64 {
	if len(records) == 0 {
		return 1
	}
	return records[len(records)-1].ID + 1
}

func hasEmail(records []models.Record, email string) bool {
	for i := range records {
		if records[i].Email == email {
			return true
		}
	}
	return false
}

func indexByID(records []models.Record, id int64) (int, error) {
	for i := range records {
		if records[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("record %d: %w", id, common.ErrRecordNotFound)
}
