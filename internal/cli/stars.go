package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/integrations/github"
)

func (c *CLI) starsCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "stars [config]",
		Short: "Show GitHub star counts for the portfolio's projects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStars(cmd.Context(), args, refresh)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	return cmd
}

func (c *CLI) runStars(ctx context.Context, args []string, refresh bool) error {
	doc, err := c.loadDocument(ctx, args)
	if err != nil {
		return err
	}
	if len(doc.Projects) == 0 {
		printInfo("No projects")
		return nil
	}
	store := c.openCache(ctx, false)
	defer store.Close()

	spin := newSpinner(ctx, fmt.Sprintf("Fetching star counts for %d projects...", len(doc.Projects)))
	spin.Start()
	stars := c.fetchStars(ctx, doc, store, refresh)
	if spin.Cancelled() {
		spin.Stop()
		return ctx.Err()
	}
	spin.StopWithSuccess("Fetched %d of %d", len(stars), len(doc.Projects))

	var rows [][]string
	total := 0
	for _, p := range doc.Projects {
		repo, count := "—", "—"
		if owner, name, ok := github.ExtractURL(p.URL); ok {
			repo = owner + "/" + name
			if n, ok := stars[p.URL]; ok {
				count = strconv.Itoa(n)
				total += n
			}
		}
		rows = append(rows, []string{p.Name, repo, count})
	}

	t := newTable([]string{"Project", "Repository", "Stars"}, rows, func(row, col int) lipgloss.Style {
		switch {
		case col == 2:
			return StyleHighlight.Align(lipgloss.Right)
		case rows[row][1] == "—":
			return StyleDim
		}
		return StyleValue
	})

	fmt.Fprintln(out, t.Render())
	printDetail("%d stars across %d repositories", total, len(stars))
	return nil
}
