package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stocktrack/internal/bulk"
	"github.com/dmitrijs2005/stocktrack/internal/common"
)

// Upload reads a pasted block of account lines, parses it and ingests the
// candidates. Parse problems are user mistakes and get a plain message;
// persistence failures are logged and reported.
func (a *App) Upload(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Paste account data", a.out)
	if err != nil {
		return err
	}

	candidates, err := bulk.Parse(text)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyInput):
			fmt.Fprintln(a.out, "Please paste data first.")
		case errors.Is(err, common.ErrNoValidCandidates):
			fmt.Fprintln(a.out, "No valid account data found.")
		default:
			fmt.Fprintf(a.out, "Parse error: %v\n", err)
		}
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	report, err := a.store.Ingest(opCtx, candidates)
	if err != nil {
		a.logger.Error(ctx, "ingest failed", "error", err)
		fmt.Fprintf(a.out, "Could not save: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Added: %d | Duplicates: %d\n", report.Added, report.Duplicates)
	return nil
}
