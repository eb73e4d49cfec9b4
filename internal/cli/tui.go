package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/internal/tui"
	"github.com/matzehuels/folio/pkg/theme"
)

func (c *CLI) tuiCommand() *cobra.Command {
	var noStars bool

	cmd := &cobra.Command{
		Use:   "tui [config]",
		Short: "Page through the portfolio in the terminal",
		Long: `Open the portfolio as a full-screen pager, one section per page.

Scroll with the mouse wheel or drag with the left button; a section's own
content scrolls first and the page turns at its edge. Arrow and page keys
turn pages directly, j/k scroll, 1-9 jump, t switches theme, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), args, noStars)
		},
	}

	cmd.Flags().BoolVar(&noStars, "no-stars", false, "skip GitHub star lookups")
	return cmd
}

func (c *CLI) runTUI(ctx context.Context, args []string, noStars bool) error {
	s, err := c.loadSettings()
	if err != nil {
		return err
	}
	doc, err := c.loadDocument(ctx, args)
	if err != nil {
		return err
	}
	store := c.openCache(ctx, false)
	defer store.Close()

	var stars map[string]int
	if !noStars && len(doc.Projects) > 0 {
		spin := newSpinner(ctx, "Fetching star counts...")
		spin.Start()
		starsCtx, cancel := context.WithTimeout(ctx, starsTimeout)
		stars = c.fetchStars(starsCtx, doc, store, false)
		cancel()
		spin.Stop()
	}

	// The terminal belongs to the pager from here on.
	if f, err := tui.OpenLog(); err == nil {
		defer f.Close()
		c.Logger.SetOutput(f)
	} else {
		c.Logger.SetOutput(io.Discard)
	}

	return tui.Run(ctx, tui.Options{
		Doc:        doc,
		Nav:        s.Nav.Options(),
		Themes:     theme.NewCacheStore(store),
		Stars:      stars,
		WheelDelta: s.TUI.WheelDelta,
		RowPixels:  s.TUI.RowPixels,
		NoMouse:    s.TUI.MouseDisabled,
		Logger:     c.Logger,
	})
}
