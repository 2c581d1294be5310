package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/directory"
	"github.com/dmitrijs2005/sharenodes/internal/models"
)

const notePreviewLen = 40

func (a *App) Users(ctx context.Context, query string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.directory.Search(ctx, query)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No matching users.")
		return nil
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOGIN\tNAME\t")
	for _, u := range list {
		mark := ""
		if slices.Contains(a.staged, u.Login) {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t\n", mark, u.Login, u.Name)
	}
	tw.Flush()
	printlnFn(strings.TrimRight(b.String(), "\n"))
	return nil
}

func (a *App) Whois(ctx context.Context, login string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.directory.Resolve(ctx, login)
	if err != nil {
		return fmt.Errorf("user %s: %w", login, err)
	}
	printlnFn(u.Name)
	printlnFn(directory.Tooltip(u))
	return nil
}

// Stage adds login to the recipients. Only directory users can be staged.
func (a *App) Stage(ctx context.Context, login string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.directory.Resolve(ctx, login); err != nil {
		return fmt.Errorf("user %s: %w", login, err)
	}
	if !slices.Contains(a.staged, login) {
		a.staged = append(a.staged, login)
	}
	return nil
}

func (a *App) Unstage(login string) error {
	i := slices.Index(a.staged, login)
	if i < 0 {
		return fmt.Errorf("%s is not staged", login)
	}
	a.staged = slices.Delete(a.staged, i, i+1)
	return nil
}

func (a *App) Staged() error {
	if len(a.staged) == 0 {
		printlnFn("No recipients staged.")
	} else {
		printlnFn("Recipients:", strings.Join(a.staged, ", "))
	}
	if a.note != "" {
		printlnFn("Note:", a.note)
	}
	if sel := a.host.Selection(); sel != "" {
		printlnFn("Selection:", sel)
	}
	return nil
}

func (a *App) SetNote(text string) error {
	a.note = text
	return nil
}

func (a *App) Select(path string) error {
	return a.host.Select(path)
}

// Send shares the selection. On success the staged recipients and the note
// are reset; on failure they are kept so the user can retry. Record writes
// are bounded individually by the send service.
func (a *App) Send(ctx context.Context) error {
	res, err := a.sendService.Send(ctx, a.staged, a.note)
	if err != nil {
		if res != nil && len(res.Delivered) > 0 {
			return fmt.Errorf("sent to %s only: %w", strings.Join(res.Delivered, ", "), err)
		}
		return err
	}

	printlnFn(fmt.Sprintf("Sent to %s.", strings.Join(res.Delivered, ", ")))
	if len(res.NotifyErrors) > 0 {
		printlnFn(fmt.Sprintf("Recipients were not notified (%v); they will see it in their history.", errors.Join(res.NotifyErrors...)))
	}
	a.staged = nil
	a.note = ""
	return nil
}

func (a *App) History(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	items, err := a.inboxService.ListInbox(ctx, a.config.CurrentUser)
	if err != nil {
		return err
	}
	a.inbox = items

	if len(items) == 0 {
		printlnFn("Nothing received yet.")
		return nil
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tDATE\tNOTE\t")
	for i, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", i+1, it.Sender.Name, it.Recency, preview(it.Record.Note, notePreviewLen))
	}
	tw.Flush()
	printlnFn(strings.TrimRight(b.String(), "\n"))
	return nil
}

func (a *App) Show(n int) error {
	it, err := a.row(n)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("From: %s <%s>", it.Sender.Name, it.Sender.Login))
	printlnFn("Sent:", it.Record.SubmittedAt.Local().Format("2006-01-02 15:04:05"))
	if it.Record.Note == "" {
		printlnFn("(no note)")
	} else {
		printlnFn(it.Record.Note)
	}
	return nil
}

func (a *App) Paste(ctx context.Context, n int) error {
	it, err := a.row(n)
	if err != nil {
		return err
	}
	return a.inboxService.Paste(ctx, it.Record)
}

func (a *App) Refresh(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.directory.Refresh(ctx)
}

func (a *App) row(n int) (models.InboxItem, error) {
	if len(a.inbox) == 0 {
		return models.InboxItem{}, errors.New("no history loaded; run 'history' first")
	}
	if n < 1 || n > len(a.inbox) {
		return models.InboxItem{}, fmt.Errorf("%w: row %d (history has %d rows)", common.ErrorNotFound, n, len(a.inbox))
	}
	return a.inbox[n-1], nil
}
