package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stocktrack/internal/models"
	"github.com/dmitrijs2005/stocktrack/internal/shared"
)

// Add ingests a single account entered interactively. The password is read
// without echo and wiped after use. Dedup rules are the same as for bulk
// upload.
func (a *App) Add(ctx context.Context) error {
	firstName, err := GetSimpleText(a.reader, "First name (optional)", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Last name (optional)", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		fmt.Fprintln(a.out, "Email is required.")
		return fmt.Errorf("email is required")
	}

	pass, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pass)
	if len(pass) == 0 {
		fmt.Fprintln(a.out, "Password is required.")
		return fmt.Errorf("password is required")
	}

	candidate := models.Candidate{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Pass:      string(pass),
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	report, err := a.store.Ingest(opCtx, []models.Candidate{candidate})
	if err != nil {
		a.logger.Error(ctx, "add failed", "error", err)
		fmt.Fprintf(a.out, "Could not save: %v\n", err)
		return err
	}

	if report.Duplicates > 0 {
		fmt.Fprintf(a.out, "%s already in stock.\n", email)
		return nil
	}
	fmt.Fprintln(a.out, "Added 1 account.")
	return nil
}
