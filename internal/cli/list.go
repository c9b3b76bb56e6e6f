package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"slambook/internal/query"
)

var errNotReady = errors.New("not logged in")

// requireData guards commands that need a data path: either an
// authenticated session or local mode.
func (a *App) requireData() error {
	if a.useLocal || a.isLoggedIn() {
		return nil
	}
	fmt.Fprintln(a.out, "Please login first, or switch to 'local' mode")
	return errNotReady
}

// List prints the collection through the current view (search term, tag
// filter, favorites flag, sort mode) and a found-of-total summary.
func (a *App) List(ctx context.Context) error {
	if err := a.requireData(); err != nil {
		return err
	}

	entries, err := a.facade().List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	visible := query.Apply(entries, a.view)
	for _, e := range visible {
		fmt.Fprintln(a.out, entryLine(e))
	}
	fmt.Fprintf(a.out, "%d of %d entries found\n", len(visible), len(entries))
	return nil
}

// Search sets the view's search term; with no argument it clears it.
func (a *App) Search(ctx context.Context, args []string) error {
	a.view.Search = strings.Join(args, " ")
	if a.view.Search == "" {
		fmt.Fprintln(a.out, "Search cleared")
		return a.List(ctx)
	}
	fmt.Fprintf(a.out, "Searching for %q\n", a.view.Search)
	return a.List(ctx)
}

// Sort sets the view's sort mode.
func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: sort <asc|desc|new|old|favorites>")
		return nil
	}
	mode := query.SortMode(args[0])
	switch mode {
	case query.SortNameAsc, query.SortNameDesc, query.SortNewest, query.SortOldest, query.SortFavorites:
		a.view.Sort = mode
	default:
		fmt.Fprintln(a.out, "Unknown sort mode:", args[0])
		return nil
	}
	return a.List(ctx)
}

// Tag sets the view's tag filter; "all" shows every entry again.
func (a *App) Tag(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: tag <name|all>")
		return nil
	}
	a.view.Tag = args[0]
	return a.List(ctx)
}

// Tags prints every distinct tag in the collection.
func (a *App) Tags(ctx context.Context) error {
	if err := a.requireData(); err != nil {
		return err
	}

	entries, err := a.facade().List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	tags := query.AllTags(entries)
	if len(tags) == 0 {
		fmt.Fprintln(a.out, "No tags yet")
		return nil
	}
	fmt.Fprintln(a.out, strings.Join(tags, ", "))
	return nil
}

// FavoritesOnly toggles the view's favorites filter.
func (a *App) FavoritesOnly(ctx context.Context) error {
	a.view.FavoritesOnly = !a.view.FavoritesOnly
	if a.view.FavoritesOnly {
		fmt.Fprintln(a.out, "Showing favorites only")
	} else {
		fmt.Fprintln(a.out, "Showing all entries")
	}
	return a.List(ctx)
}

// Stats prints the collection statistics, tags sorted by count descending
// and then alphabetically.
func (a *App) Stats(ctx context.Context) error {
	if err := a.requireData(); err != nil {
		return err
	}

	stats, err := a.facade().Statistics(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Entries:   %d\n", stats.Total)
	fmt.Fprintf(a.out, "Favorites: %d\n", stats.Favorites)
	if len(stats.ByTag) == 0 {
		return nil
	}

	tags := make([]string, 0, len(stats.ByTag))
	for tag := range stats.ByTag {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if stats.ByTag[tags[i]] != stats.ByTag[tags[j]] {
			return stats.ByTag[tags[i]] > stats.ByTag[tags[j]]
		}
		return tags[i] < tags[j]
	})

	fmt.Fprintln(a.out, "By tag:")
	for _, tag := range tags {
		fmt.Fprintf(a.out, "  %-16s %d\n", tag, stats.ByTag[tag])
	}
	return nil
}
