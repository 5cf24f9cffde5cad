package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/stocktrack/internal/common"
	"github.com/dmitrijs2005/stocktrack/internal/models"
)

// Assign takes the next available account and shows its details. An empty
// pool is an ordinary situation and only produces a notice.
func (a *App) Assign(ctx context.Context) error {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	record, err := a.store.AssignNext(opCtx)
	if err != nil {
		if errors.Is(err, common.ErrNoAvailableRecords) {
			fmt.Fprintln(a.out, "No accounts available. Upload more stock first.")
			return nil
		}
		a.logger.Error(ctx, "assign failed", "error", err)
		fmt.Fprintf(a.out, "Could not assign: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Assigned #%d\n", record.ID)
	a.printDetails(record)
	return nil
}

// Done marks an active account successfully worked; it moves to the QC queue.
func (a *App) Done(ctx context.Context, arg string) error {
	return a.complete(ctx, arg, models.OutcomeSuccess, "done")
}

// Fail marks an active account failed.
func (a *App) Fail(ctx context.Context, arg string) error {
	return a.complete(ctx, arg, models.OutcomeFailure, "fail")
}

func (a *App) complete(ctx context.Context, arg string, outcome models.Outcome, usage string) error {
	id, err := a.parseID(arg, usage)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.store.Complete(opCtx, id, outcome); err != nil {
		return a.reportOpError(ctx, "complete", id, err)
	}
	return nil
}

// Copy prints one account's details on a single line, ready to paste
// elsewhere.
func (a *App) Copy(arg string) error {
	id, err := a.parseID(arg, "copy")
	if err != nil {
		return err
	}

	record, err := a.store.Find(id)
	if err != nil {
		fmt.Fprintf(a.out, "No record #%d\n", id)
		return err
	}

	fmt.Fprintf(a.out, "#%d | Name: %s | Email: %s | Pass: %s\n",
		record.ID, record.FirstName, record.Email, record.Pass)
	return nil
}

func (a *App) parseID(arg, usage string) (int64, error) {
	if arg == "" {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", usage)
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Not a record id: %q\n", arg)
		return 0, err
	}
	return id, nil
}

// reportOpError distinguishes stale-id references (a bug worth logging loudly)
// from persistence failures.
func (a *App) reportOpError(ctx context.Context, op string, id int64, err error) error {
	if errors.Is(err, common.ErrRecordNotFound) {
		a.logger.Error(ctx, "stale record reference", "op", op, "id", id)
		fmt.Fprintf(a.out, "No record #%d\n", id)
		return err
	}
	a.logger.Error(ctx, "operation failed", "op", op, "id", id, "error", err)
	fmt.Fprintf(a.out, "Could not save: %v\n", err)
	return err
}

func (a *App) printDetails(r models.Record) {
	fmt.Fprintf(a.out, "  First name: %s\n", r.FirstName)
	fmt.Fprintf(a.out, "  Last name:  %s\n", r.LastName)
	fmt.Fprintf(a.out, "  Email:      %s\n", r.Email)
	fmt.Fprintf(a.out, "  Password:   %s\n", r.Pass)
}
