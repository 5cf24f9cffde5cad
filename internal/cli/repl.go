package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Upload(ctx context.Context) error
	Add(ctx context.Context) error
	Assign(ctx context.Context) error
	Done(ctx context.Context, arg string) error
	Fail(ctx context.Context, arg string) error
	Approve(ctx context.Context, arg string) error
	Reject(ctx context.Context, arg string) error
	Pay(ctx context.Context, arg string) error
	Copy(arg string) error
	Clear(ctx context.Context) error
	Tasks()
	QC()
	Payments()
	History()
	Activity()
	Stock()
	Stats()
}

const helpText = `Commands:
  upload            paste a block of accounts (empty line finishes)
  add               add a single account interactively
  get               take the next available account
  done <id>         mark an active account done (goes to QC)
  fail <id>         mark an active account failed
  tasks             list active accounts
  qc                list accounts awaiting QC
  ok <id>           QC: approve
  wrong <id>        QC: reject (wrong password)
  payments          list verified accounts awaiting payment
  pay <id>          toggle paid (also: undo <id>)
  history           recent payments
  log               recent activity
  stock             admin table of recent records
  stats             dashboard counters
  copy <id>         print one account's details on a single line
  clear             delete ALL records
  exit | quit       leave`

// runREPL starts a read-eval-print loop over the stocktrack commands.
//
// It reads a line from the provided reader, parses the first token as the
// command and the second (when present) as its argument, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on EOF or when the user types "exit" or "quit". Commands that read
// further input (upload, add) share the same reader, so nothing is lost to
// a second buffer.
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("st %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "upload":
			_ = a.Upload(ctx)

		case "add":
			_ = a.Add(ctx)

		case "get":
			_ = a.Assign(ctx)

		case "done":
			_ = a.Done(ctx, arg)

		case "fail":
			_ = a.Fail(ctx, arg)

		case "ok":
			_ = a.Approve(ctx, arg)

		case "wrong":
			_ = a.Reject(ctx, arg)

		case "pay", "undo":
			_ = a.Pay(ctx, arg)

		case "copy":
			_ = a.Copy(arg)

		case "tasks":
			a.Tasks()

		case "qc":
			a.QC()

		case "payments":
			a.Payments()

		case "history":
			a.History()

		case "log":
			a.Activity()

		case "stock":
			a.Stock()

		case "stats":
			a.Stats()

		case "clear":
			_ = a.Clear(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if readErr != nil {
			return
		}
	}
}
