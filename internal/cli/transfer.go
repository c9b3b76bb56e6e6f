package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Export prints the collection as JSON, or writes it to a file when one is
// named.
func (a *App) Export(ctx context.Context, args []string) error {
	if err := a.requireData(); err != nil {
		return err
	}

	data, err := a.facade().Export(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if len(args) == 0 {
		fmt.Fprintln(a.out, data)
		return nil
	}

	if err := os.WriteFile(args[0], []byte(data), 0o600); err != nil {
		fmt.Fprintln(a.out, "Export failed:", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Exported to %s\n", args[0])
	return nil
}

// Import loads entries from a JSON file. Items that fail to import are
// reported individually; the rest go through.
func (a *App) Import(ctx context.Context, args []string) error {
	if err := a.requireData(); err != nil {
		return err
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: import <file>")
		return nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Import failed:", err.Error())
		return err
	}

	result, err := a.facade().Import(ctx, string(data))
	if err != nil {
		fmt.Fprintln(a.out, "Import failed:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Imported %d entries\n", result.Success)
	for _, e := range result.Errors {
		fmt.Fprintln(a.out, " ", e)
	}
	return nil
}

// Local toggles between the remote API and the local database.
func (a *App) Local(ctx context.Context) error {
	a.useLocal = !a.useLocal
	if a.useLocal {
		fmt.Fprintln(a.out, "Switched to local mode")
	} else {
		fmt.Fprintln(a.out, "Switched to remote mode")
	}
	return nil
}

// ClearLocal wipes the local database after confirmation. It never touches
// the server.
func (a *App) ClearLocal(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Delete ALL local entries? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "yes" {
		fmt.Fprintln(a.out, "Aborted")
		return nil
	}

	if err := a.store.ClearAll(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Local entries cleared")
	return nil
}
