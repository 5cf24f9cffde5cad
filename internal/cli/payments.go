package cli

import (
	"context"
	"fmt"
)

// Payments lists verified accounts that have not been paid out yet.
func (a *App) Payments() {
	pending := a.store.PaymentsPending()
	if len(pending) == 0 {
		fmt.Fprintln(a.out, "No pending payments.")
		return
	}
	for _, r := range pending {
		fmt.Fprintf(a.out, "#%d  %s\n", r.ID, r.Email)
	}
}

// History shows the most recent payments, newest first.
func (a *App) History() {
	paid := a.store.PaymentHistory()
	if len(paid) == 0 {
		fmt.Fprintln(a.out, "No paid history.")
		return
	}
	for _, r := range paid {
		fmt.Fprintf(a.out, "#%d  %s  PAID\n", r.ID, r.Email)
	}
}

// Pay toggles the paid flag; running it again on the same id undoes the
// payment mark.
func (a *App) Pay(ctx context.Context, arg string) error {
	id, err := a.parseID(arg, "pay")
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.store.TogglePaid(opCtx, id); err != nil {
		return a.reportOpError(ctx, "pay", id, err)
	}

	record, err := a.store.Find(id)
	if err != nil {
		return err
	}
	if record.Paid {
		fmt.Fprintf(a.out, "#%d marked paid\n", id)
	} else {
		fmt.Fprintf(a.out, "#%d payment undone\n", id)
	}
	return nil
}
