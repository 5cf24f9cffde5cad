package cli

import (
	"context"
	"fmt"
)

// Clear deletes every record after an explicit confirmation. Irreversible.
func (a *App) Clear(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete ALL %d records? Type 'yes' to confirm", a.store.Len()), a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Aborted.")
		return nil
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.store.Clear(opCtx); err != nil {
		a.logger.Error(ctx, "clear failed", "error", err)
		fmt.Fprintf(a.out, "Could not clear: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Stock cleared.")
	return nil
}
