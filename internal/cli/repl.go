package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isLocal() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	Tag(ctx context.Context, args []string) error
	Tags(ctx context.Context) error
	FavoritesOnly(ctx context.Context) error
	Stats(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Local(ctx context.Context) error
	ClearLocal(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "slambook %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(a, out)

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "fav", "favorite":
			_ = a.Favorite(ctx, args)

		case "search":
			_ = a.Search(ctx, args)

		case "sort":
			_ = a.Sort(ctx, args)

		case "tag":
			_ = a.Tag(ctx, args)

		case "tags":
			_ = a.Tags(ctx)

		case "favs":
			_ = a.FavoritesOnly(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "export":
			_ = a.Export(ctx, args)

		case "import":
			_ = a.Import(ctx, args)

		case "local":
			_ = a.Local(ctx)

		case "clear":
			_ = a.ClearLocal(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface, out io.Writer) {
	if a.isLoggedIn() || a.isLocal() {
		fmt.Fprintln(out, "Entries:  (l)ist, show <id>, add, edit <id>, delete <id>, fav <id>")
		fmt.Fprintln(out, "View:     search [term], sort <asc|desc|new|old|favorites>, tag <name|all>, tags, favs, stats")
		fmt.Fprintln(out, "Data:     export [file], import <file>, local, clear (local only)")
		fmt.Fprintln(out, "Session:  logout, exit")
		return
	}
	fmt.Fprintln(out, "Available commands: signup, login, local, exit")
}
