package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"slambook/internal/api"
	"slambook/internal/models"
	"slambook/internal/store"
)

// entryLine renders one row of the list view.
func entryLine(e models.Entry) string {
	star := " "
	if e.IsFavorite {
		star = "*"
	}
	line := fmt.Sprintf("%s %-12s %s", star, e.ID, e.Name)
	if e.Nickname != "" {
		line += fmt.Sprintf(" (%s)", e.Nickname)
	}
	if len(e.Tags) > 0 {
		line += "  [" + strings.Join(e.Tags, ", ") + "]"
	}
	return line
}

// Show prints the full card for one entry, with the birthday formatted for
// reading and the age derived from it.
func (a *App) Show(ctx context.Context, args []string) error {
	if err := a.requireData(); err != nil {
		return err
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	entry, err := a.facade().Get(ctx, args[0])
	if err != nil {
		if errors.Is(err, api.ErrNotFound) || errors.Is(err, store.ErrNotFound) {
			fmt.Fprintln(a.out, "Entry not found:", args[0])
			return nil
		}
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Name:           %s\n", entry.Name)
	fmt.Fprintf(a.out, "Nickname:       %s\n", entry.Nickname)
	birthday := models.FormatDate(entry.Birthday)
	if age := models.Age(entry.Birthday, time.Now()); age >= 0 {
		birthday = fmt.Sprintf("%s (%d years)", birthday, age)
	}
	fmt.Fprintf(a.out, "Birthday:       %s\n", birthday)
	fmt.Fprintf(a.out, "Contact:        %s\n", entry.ContactNumber)
	fmt.Fprintf(a.out, "Likes:          %s\n", entry.Likes)
	fmt.Fprintf(a.out, "Dislikes:       %s\n", entry.Dislikes)
	fmt.Fprintf(a.out, "Favorite movie: %s\n", entry.FavoriteMovie)
	fmt.Fprintf(a.out, "Favorite food:  %s\n", entry.FavoriteFood)
	fmt.Fprintf(a.out, "About:          %s\n", entry.About)
	fmt.Fprintf(a.out, "Message:        %s\n", entry.Message)
	if len(entry.Tags) > 0 {
		fmt.Fprintf(a.out, "Tags:           %s\n", strings.Join(entry.Tags, ", "))
	}
	if entry.IsFavorite {
		fmt.Fprintln(a.out, "Marked as favorite")
	}
	return nil
}

// Add prompts for every field of a fresh draft and saves it.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireData(); err != nil {
		return err
	}
	draft, err := a.promptDraft(models.EntryDraft{})
	if err != nil {
		return err
	}
	return a.saveDraft(ctx, draft)
}

// Edit loads an entry, prompts field by field with current values kept on
// empty input, and saves the result.
func (a *App) Edit(ctx context.Context, args []string) error {
	if err := a.requireData(); err != nil {
		return err
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return nil
	}

	entry, err := a.facade().Get(ctx, args[0])
	if err != nil {
		if errors.Is(err, api.ErrNotFound) || errors.Is(err, store.ErrNotFound) {
			fmt.Fprintln(a.out, "Entry not found:", args[0])
			return nil
		}
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	draft, err := a.promptDraft(entry.Draft())
	if err != nil {
		return err
	}
	return a.saveDraft(ctx, draft)
}

// promptDraft walks the user through every editable field. A zero draft
// means creation; a pre-filled one means editing, and empty answers keep
// the current values.
func (a *App) promptDraft(draft models.EntryDraft) (models.EntryDraft, error) {
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Name", &draft.Name},
		{"Nickname", &draft.Nickname},
		{"Birthday (YYYY-MM-DD)", &draft.Birthday},
		{"Contact number", &draft.ContactNumber},
		{"Likes", &draft.Likes},
		{"Dislikes", &draft.Dislikes},
		{"Favorite movie", &draft.FavoriteMovie},
		{"Favorite food", &draft.FavoriteFood},
		{"About yourself", &draft.About},
		{"Message", &draft.Message},
	}

	for _, f := range fields {
		var (
			text string
			err  error
		)
		if draft.IsNew() {
			text, err = GetSimpleText(a.reader, f.prompt, a.out)
		} else {
			text, err = GetEditText(a.reader, f.prompt, *f.value, a.out)
		}
		if err != nil {
			return models.EntryDraft{}, err
		}
		*f.value = text
	}

	tags, err := GetEditText(a.reader, "Tags (comma-separated)", strings.Join(draft.Tags, ", "), a.out)
	if err != nil {
		return models.EntryDraft{}, err
	}
	draft.Tags = models.NormalizeTags(strings.Split(tags, ","))
	return draft, nil
}

func (a *App) saveDraft(ctx context.Context, draft models.EntryDraft) error {
	entry, updated, err := a.facade().Save(ctx, draft)
	if err != nil {
		a.reportValidation(err)
		return err
	}
	if updated {
		fmt.Fprintf(a.out, "Entry %s updated\n", entry.ID)
	} else {
		fmt.Fprintf(a.out, "Entry %s created\n", entry.ID)
	}
	return nil
}

// reportValidation prints validation failures one field per line; any other
// error is printed as-is.
func (a *App) reportValidation(err error) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", field, verrs[field].Error())
	}
}

// Delete removes an entry. Deleting an unknown id is not an error.
func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.requireData(); err != nil {
		return err
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return nil
	}

	if err := a.facade().Delete(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Entry %s deleted\n", args[0])
	return nil
}

// Favorite flips the favorite flag and reports the resulting state.
func (a *App) Favorite(ctx context.Context, args []string) error {
	if err := a.requireData(); err != nil {
		return err
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: fav <id>")
		return nil
	}

	entry, err := a.facade().ToggleFavorite(ctx, args[0])
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "Entry not found:", args[0])
			return nil
		}
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if entry == nil {
		// The local store treats a missing id as a silent no-op.
		return nil
	}

	if entry.IsFavorite {
		fmt.Fprintln(a.out, "Added to favorites")
	} else {
		fmt.Fprintln(a.out, "Removed from favorites")
	}
	return nil
}
