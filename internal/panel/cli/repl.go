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
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Role(ctx context.Context, role string) error
	Sort(ctx context.Context, field string) error
	Page(ctx context.Context, arg string) error
	PageSize(ctx context.Context, arg string) error
	Select(ctx context.Context, id string) error
	SelectAll(ctx context.Context) error
	ClearSelection(ctx context.Context) error
	Create(ctx context.Context) error
	Update(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteSelected(ctx context.Context) error
	Export(ctx context.Context, path string) error
}

// runREPL starts a simple read-eval-print loop for the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Until a user is signed in, only login, help and exit are accepted; every
// other command is refused with a hint.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("useradmin %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search [term], role [role], sort <field>, page <n>, pagesize <n>,")
				printlnFn("  select <id>, selectall, clearsel, create, update <id>, delete <id>, deletesel, export <file>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "login":
			_ = a.Login(ctx)
			continue
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first (type 'login').")
			continue
		}

		switch cmd {
		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "role":
			_ = a.Role(ctx, strings.Join(args, " "))

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort <name|email|role|status|dob|gender>")
				continue
			}
			_ = a.Sort(ctx, args[0])

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.Page(ctx, args[0])

		case "pagesize":
			if len(args) == 0 {
				printlnFn("Usage: pagesize <n>")
				continue
			}
			_ = a.PageSize(ctx, args[0])

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <id>")
				continue
			}
			_ = a.Select(ctx, args[0])

		case "selectall":
			_ = a.SelectAll(ctx)

		case "clearsel":
			_ = a.ClearSelection(ctx)

		case "create":
			_ = a.Create(ctx)

		case "update":
			if len(args) == 0 {
				printlnFn("Usage: update <id>")
				continue
			}
			_ = a.Update(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "deletesel":
			_ = a.DeleteSelected(ctx)

		case "export":
			if len(args) == 0 {
				printlnFn("Usage: export <file>")
				continue
			}
			_ = a.Export(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
