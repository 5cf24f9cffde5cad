package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/stocktrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend: file, sqlite, encrypted or memory
//	-f string   snapshot file path (file/encrypted backends)
//	-d string   sqlite database path (sqlite backend)
//	-t int      snapshot flush timeout in seconds
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (file, sqlite, encrypted, memory)")
	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "snapshot file path")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite database path")
	flushTimeout := fs.Int("t", int(cfg.FlushTimeout.Seconds()), "snapshot flush timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.FlushTimeout = time.Duration(*flushTimeout) * time.Second
}
