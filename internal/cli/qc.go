package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stocktrack/internal/models"
)

// QC lists accounts waiting for a quality-control verdict.
func (a *App) QC() {
	queue := a.store.QCQueue()
	if len(queue) == 0 {
		fmt.Fprintln(a.out, "QC queue is empty. All clear.")
		return
	}
	for _, r := range queue {
		fmt.Fprintf(a.out, "#%d  %s / %s\n", r.ID, r.Email, r.Pass)
	}
}

// Approve records a positive QC verdict.
func (a *App) Approve(ctx context.Context, arg string) error {
	return a.markQC(ctx, arg, models.QCApproved, "ok")
}

// Reject records a wrong-password QC verdict.
func (a *App) Reject(ctx context.Context, arg string) error {
	return a.markQC(ctx, arg, models.QCWrongPass, "wrong")
}

func (a *App) markQC(ctx context.Context, arg string, verdict models.QCVerdict, usage string) error {
	id, err := a.parseID(arg, usage)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.store.MarkQC(opCtx, id, verdict); err != nil {
		return a.reportOpError(ctx, "qc", id, err)
	}
	return nil
}
