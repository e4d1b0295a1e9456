package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests drive the loop with a lightweight stub.
type execIface interface {
	LoggedIn(ctx context.Context) bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	ShowDocuments(ctx context.Context, categoryID string) error
	ShowDocument(ctx context.Context, id string) error
	NewDocument(ctx context.Context) error
	EditDocument(ctx context.Context, id string) error
	DeleteDocument(ctx context.Context, id string) error
	Download(ctx context.Context, id string) error

	ShowCategories(ctx context.Context) error
	ShowCategory(ctx context.Context, id string) error
	NewCategory(ctx context.Context) error
	EditCategory(ctx context.Context, id string) error
	DeleteCategory(ctx context.Context, id string) error
}

// runREPL reads commands line by line and dispatches them. Handlers report
// their own failures to the user; the loop ignores their errors to stay
// resilient. Exits on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "dochub %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func(usage string) (string, bool) {
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage:", usage)
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			if a.LoggedIn(ctx) {
				fmt.Fprintln(out, "Available commands: docs [category|null], doc <id>, newdoc, editdoc <id>, deldoc <id>, download <id>,")
				fmt.Fprintln(out, "                    cats, cat <id>, newcat, editcat <id>, delcat <id>, whoami, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)

		case "d", "docs":
			category := ""
			if len(args) > 0 {
				category = args[0]
			}
			_ = a.ShowDocuments(ctx, category)
		case "doc":
			if id, ok := arg("doc <id>"); ok {
				_ = a.ShowDocument(ctx, id)
			}
		case "newdoc":
			_ = a.NewDocument(ctx)
		case "editdoc":
			if id, ok := arg("editdoc <id>"); ok {
				_ = a.EditDocument(ctx, id)
			}
		case "deldoc":
			if id, ok := arg("deldoc <id>"); ok {
				_ = a.DeleteDocument(ctx, id)
			}
		case "download":
			if id, ok := arg("download <id>"); ok {
				_ = a.Download(ctx, id)
			}

		case "c", "cats":
			_ = a.ShowCategories(ctx)
		case "cat":
			if id, ok := arg("cat <id>"); ok {
				_ = a.ShowCategory(ctx, id)
			}
		case "newcat":
			_ = a.NewCategory(ctx)
		case "editcat":
			if id, ok := arg("editcat <id>"); ok {
				_ = a.EditCategory(ctx, id)
			}
		case "delcat":
			if id, ok := arg("delcat <id>"); ok {
				_ = a.DeleteCategory(ctx, id)
			}

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
