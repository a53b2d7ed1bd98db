package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/notemark/internal/client/export"
)

// Search sets the query and lists what matches.
func (a *App) Search(ctx context.Context, query string) error {
	a.store.SetSearchQuery(query)
	return a.List(ctx)
}

func (a *App) ClearSearch(ctx context.Context) error {
	a.store.ClearSearch()
	return nil
}

// Reset drops the active note, both filters and the search query.
func (a *App) Reset(ctx context.Context) error {
	a.store.ClearActiveSelections()
	return nil
}

// Export writes every note, regardless of filters, as markdown under dir.
func (a *App) Export(ctx context.Context, dir string) error {
	n, err := export.WriteMarkdown(dir, a.store.State())
	if err != nil {
		return a.fail(ctx, "export", err)
	}
	a.log.Info(ctx, "notes exported", "dir", dir, "count", n)
	fmt.Fprintf(a.out, "Exported %d note(s) to %s\n", n, dir)
	return nil
}
