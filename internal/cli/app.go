// Package cli is the terminal front end of stocktrack. It renders the
// store's query views and invokes its lifecycle operations; all workflow
// logic lives in the store and parser packages.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/stocktrack/internal/config"
	"github.com/dmitrijs2005/stocktrack/internal/logging"
	"github.com/dmitrijs2005/stocktrack/internal/store"
)

type App struct {
	config *config.Config
	store  *store.Store
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// status is the prompt summary, refreshed through the store's change
	// notification after every committed mutation.
	status string
}

func NewApp(cfg *config.Config, st *store.Store, logger logging.Logger) *App {
	a := &App{
		config: cfg,
		store:  st,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	st.OnChange(a.refreshStatus)
	a.refreshStatus()
	return a
}

func (a *App) Run(ctx context.Context) {
	printlnFn("stocktrack: type 'help' for commands")
	runREPL(ctx, a, func() string { return a.status }, a.reader)
}

func (a *App) refreshStatus() {
	c := a.store.Counts()
	a.status = fmt.Sprintf("(%d avail / %d active / %d qc)", c.Available, c.Processing, c.Completed)
}

// opCtx bounds one mutating operation; a snapshot write slower than the
// configured flush timeout is reported as a persistence failure.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.FlushTimeout)
}
