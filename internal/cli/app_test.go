package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/stocktrack/internal/config"
	"github.com/dmitrijs2005/stocktrack/internal/logging"
	"github.com/dmitrijs2005/stocktrack/internal/models"
	"github.com/dmitrijs2005/stocktrack/internal/repositories/storage"
	"github.com/dmitrijs2005/stocktrack/internal/store"
)

// newTestApp wires a real store over in-memory storage, with stdin replaced
// by the given script and stdout captured in a buffer.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	st := store.New(storage.NewMemoryStorage(), nil)
	require.NoError(t, st.Open(context.Background()))

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	a := &App{
		config: cfg,
		store:  st,
		logger: logging.NewNopLogger(),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
	}
	st.OnChange(a.refreshStatus)
	a.refreshStatus()
	return a, &out
}

func seedApp(t *testing.T, a *App, n int) {
	t.Helper()
	candidates := make([]models.Candidate, 0, n)
	for i := 0; i < n; i++ {
		candidates = append(candidates, models.Candidate{
			Email: string(rune('a'+i)) + "@x.com",
			Pass:  "p",
		})
	}
	_, err := a.store.Ingest(context.Background(), candidates)
	require.NoError(t, err)
}

func TestUpload_AddsAndReports(t *testing.T) {
	a, out := newTestApp(t, "First name: Jo\nEmail: a@x.com\nPassword: p1\n\n")

	require.NoError(t, a.Upload(context.Background()))

	assert.Contains(t, out.String(), "Added: 1 | Duplicates: 0")
	assert.Equal(t, 1, a.store.Len())
}

func TestUpload_EmptyPaste(t *testing.T) {
	a, out := newTestApp(t, "\n")

	err := a.Upload(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "Please paste data first.")
	assert.Equal(t, 0, a.store.Len())
}

func TestUpload_NoValidData(t *testing.T) {
	a, out := newTestApp(t, "junk line\n\n")

	err := a.Upload(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "No valid account data found.")
}

func TestUpload_ReportsDuplicates(t *testing.T) {
	a, out := newTestApp(t, "Email: a@x.com\nPassword: p\nEmail: a@x.com\nPassword: q\n\n")

	require.NoError(t, a.Upload(context.Background()))
	assert.Contains(t, out.String(), "Added: 1 | Duplicates: 1")
}

func TestAssign_ShowsDetailsAndFlipsStatus(t *testing.T) {
	a, out := newTestApp(t, "")
	seedApp(t, a, 2)

	require.NoError(t, a.Assign(context.Background()))

	assert.Contains(t, out.String(), "Assigned #1")
	assert.Contains(t, out.String(), "a@x.com")

	r, err := a.store.Find(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, r.Status)
}

func TestAssign_EmptyPoolIsNotice(t *testing.T) {
	a, out := newTestApp(t, "")

	require.NoError(t, a.Assign(context.Background()))
	assert.Contains(t, out.String(), "No accounts available")
}

func TestDoneAndFail(t *testing.T) {
	a, _ := newTestApp(t, "")
	seedApp(t, a, 2)
	ctx := context.Background()

	require.NoError(t, a.Done(ctx, "1"))
	require.NoError(t, a.Fail(ctx, "2"))

	r1, _ := a.store.Find(1)
	r2, _ := a.store.Find(2)
	assert.Equal(t, models.StatusCompleted, r1.Status)
	assert.Equal(t, models.StatusFailed, r2.Status)
}

func TestDone_BadArgs(t *testing.T) {
	a, out := newTestApp(t, "")

	assert.Error(t, a.Done(context.Background(), ""))
	assert.Contains(t, out.String(), "Usage: done <id>")

	out.Reset()
	assert.Error(t, a.Done(context.Background(), "abc"))
	assert.Contains(t, out.String(), `Not a record id: "abc"`)
}

func TestDone_UnknownID(t *testing.T) {
	a, out := newTestApp(t, "")

	assert.Error(t, a.Done(context.Background(), "42"))
	assert.Contains(t, out.String(), "No record #42")
}

func TestQCFlow(t *testing.T) {
	a, out := newTestApp(t, "")
	seedApp(t, a, 2)
	ctx := context.Background()

	require.NoError(t, a.Done(ctx, "1"))
	require.NoError(t, a.Done(ctx, "2"))

	a.QC()
	assert.Contains(t, out.String(), "#1")
	assert.Contains(t, out.String(), "#2")

	require.NoError(t, a.Approve(ctx, "1"))
	require.NoError(t, a.Reject(ctx, "2"))

	r1, _ := a.store.Find(1)
	r2, _ := a.store.Find(2)
	assert.Equal(t, models.StatusQCApproved, r1.Status)
	assert.Equal(t, models.StatusQCWrongPass, r2.Status)
}

func TestPay_ToggleAndUndo(t *testing.T) {
	a, out := newTestApp(t, "")
	seedApp(t, a, 1)
	ctx := context.Background()

	require.NoError(t, a.Done(ctx, "1"))
	require.NoError(t, a.Approve(ctx, "1"))

	require.NoError(t, a.Pay(ctx, "1"))
	assert.Contains(t, out.String(), "#1 marked paid")

	out.Reset()
	require.NoError(t, a.Pay(ctx, "1"))
	assert.Contains(t, out.String(), "#1 payment undone")

	r, _ := a.store.Find(1)
	assert.False(t, r.Paid)
}

func TestCopy_PrintsSingleLine(t *testing.T) {
	a, out := newTestApp(t, "")
	_, err := a.store.Ingest(context.Background(), []models.Candidate{
		{FirstName: "Jo", Email: "a@x.com", Pass: "p1"},
	})
	require.NoError(t, err)

	require.NoError(t, a.Copy("1"))
	assert.Contains(t, out.String(), "#1 | Name: Jo | Email: a@x.com | Pass: p1")
}

func TestAdd_SingleAccount(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("hunter2"), nil }

	a, out := newTestApp(t, "Jo\nDoe\njo@x.com\n")

	require.NoError(t, a.Add(context.Background()))
	assert.Contains(t, out.String(), "Added 1 account.")

	r, err := a.store.Find(1)
	require.NoError(t, err)
	assert.Equal(t, "jo@x.com", r.Email)
	assert.Equal(t, "hunter2", r.Pass)
}

func TestAdd_DuplicateEmail(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("p"), nil }

	a, out := newTestApp(t, "\n\njo@x.com\n")
	_, err := a.store.Ingest(context.Background(), []models.Candidate{{Email: "jo@x.com", Pass: "p"}})
	require.NoError(t, err)

	require.NoError(t, a.Add(context.Background()))
	assert.Contains(t, out.String(), "jo@x.com already in stock.")
	assert.Equal(t, 1, a.store.Len())
}

func TestClear_RequiresConfirmation(t *testing.T) {
	a, out := newTestApp(t, "no\n")
	seedApp(t, a, 3)

	require.NoError(t, a.Clear(context.Background()))
	assert.Contains(t, out.String(), "Aborted.")
	assert.Equal(t, 3, a.store.Len())
}

func TestClear_Confirmed(t *testing.T) {
	a, out := newTestApp(t, "yes\n")
	seedApp(t, a, 3)

	require.NoError(t, a.Clear(context.Background()))
	assert.Contains(t, out.String(), "Stock cleared.")
	assert.Equal(t, 0, a.store.Len())
}

func TestStats_PrintsCounters(t *testing.T) {
	a, out := newTestApp(t, "")
	seedApp(t, a, 2)
	require.NoError(t, a.Done(context.Background(), "1"))

	a.Stats()
	assert.Contains(t, out.String(), "Available:  1")
	assert.Contains(t, out.String(), "Completed:  1")
}

func TestStock_RendersTable(t *testing.T) {
	a, out := newTestApp(t, "")
	seedApp(t, a, 2)

	a.Stock()
	s := out.String()
	assert.Contains(t, s, "EMAIL")
	assert.Contains(t, s, "a@x.com")
	assert.Contains(t, s, "available")
}

func TestStatusLine_TracksMutations(t *testing.T) {
	a, _ := newTestApp(t, "")
	assert.Equal(t, "(0 avail / 0 active / 0 qc)", a.status)

	seedApp(t, a, 2)
	assert.Equal(t, "(2 avail / 0 active / 0 qc)", a.status)

	require.NoError(t, a.Assign(context.Background()))
	assert.Equal(t, "(1 avail / 1 active / 0 qc)", a.status)
}

func TestActivity_ShowsLabels(t *testing.T) {
	a, out := newTestApp(t, "")
	seedApp(t, a, 3)
	ctx := context.Background()

	require.NoError(t, a.Done(ctx, "1"))
	require.NoError(t, a.Fail(ctx, "2"))
	require.NoError(t, a.Done(ctx, "3"))
	require.NoError(t, a.Approve(ctx, "3"))

	a.Activity()
	s := out.String()
	assert.Contains(t, s, "To QC")
	assert.Contains(t, s, "Fail")
	assert.Contains(t, s, "Verified")
}
