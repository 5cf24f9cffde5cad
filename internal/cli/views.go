package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/stocktrack/internal/models"
)

// Tasks lists the accounts currently being worked.
func (a *App) Tasks() {
	tasks := a.store.ActiveTasks()
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No active tasks. Use 'get' to take one.")
		return
	}
	for _, r := range tasks {
		fmt.Fprintf(a.out, "#%d\n", r.ID)
		a.printDetails(r)
	}
}

// Activity shows the recent activity log, newest first.
func (a *App) Activity() {
	items := a.store.ActivityLog()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No recent activity.")
		return
	}
	for _, r := range items {
		fmt.Fprintf(a.out, "#%d  %s  %s\n", r.ID, r.Email, activityLabel(r))
	}
}

// Stock renders the admin table of the most recent records.
func (a *App) Stock() {
	records := a.store.AdminTable()
	if len(records) == 0 {
		fmt.Fprintln(a.out, "Stock is empty.")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tSTATUS\tPAID")
	for _, r := range records {
		paid := "-"
		if r.Paid {
			paid = "PAID"
		}
		status := strings.TrimPrefix(string(r.Status), "qc_")
		fmt.Fprintf(w, "#%d\t%s\t%s\t%s\n", r.ID, r.Email, status, paid)
	}
	_ = w.Flush()
}

// Stats prints the dashboard counters.
func (a *App) Stats() {
	c := a.store.Counts()
	fmt.Fprintf(a.out, "Available:  %d\n", c.Available)
	fmt.Fprintf(a.out, "Processing: %d\n", c.Processing)
	fmt.Fprintf(a.out, "Completed:  %d\n", c.Completed)
	fmt.Fprintf(a.out, "Verified:   %d\n", c.Verified)
	fmt.Fprintf(a.out, "Paid:       %d\n", c.Paid)
	fmt.Fprintf(a.out, "Issues:     %d\n", c.Issues)
}

// activityLabel matches the dashboard wording for settled records.
func activityLabel(r models.Record) string {
	switch r.Status {
	case models.StatusCompleted:
		return "To QC"
	case models.StatusQCApproved:
		if r.Paid {
			return "PAID"
		}
		return "Verified"
	case models.StatusQCWrongPass:
		return "Pass"
	case models.StatusFailed:
		return "Fail"
	default:
		return string(r.Status)
	}
}
