package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/render/graph"
)

func (c *CLI) graphCommand() *cobra.Command {
	var (
		output  string
		format  string
		themeID string
		noStars bool
	)

	cmd := &cobra.Command{
		Use:   "graph [config]",
		Short: "Draw projects and the technologies they use",
		Long: `Draw a Graphviz diagram linking each project to its technologies.

The format follows the output extension (.svg, .pdf, .png) unless --format
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), args, output, format, themeID, noStars)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <config>-graph.svg)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "svg, pdf or png")
	cmd.Flags().StringVar(&themeID, "theme", "", "theme ID")
	cmd.Flags().BoolVar(&noStars, "no-stars", false, "skip GitHub star lookups")
	return cmd
}

func (c *CLI) runGraph(ctx context.Context, args []string, output, format, themeID string, noStars bool) error {
	logger := loggerFromContext(ctx)
	doc, err := c.loadDocument(ctx, args)
	if err != nil {
		return err
	}
	if len(doc.Projects) == 0 {
		printWarning("No projects to draw")
		return nil
	}
	t, err := resolveTheme(ctx, doc.Themes, themeID)
	if err != nil {
		return err
	}

	format = graphFormat(output, format)
	if output == "" {
		input := c.documentPath(args)
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "-graph." + format
	}

	var stars map[string]int
	if !noStars {
		store := c.openCache(ctx, false)
		defer store.Close()
		starsCtx, cancel := context.WithTimeout(ctx, starsTimeout)
		stars = c.fetchStars(starsCtx, doc, store, false)
		cancel()
	}

	prog := newProgress(logger)
	data, err := graph.Render(ctx, doc, format, graph.Options{Theme: t, Stars: stars})
	if err != nil {
		return err
	}
	if err := writeFile(output, data); err != nil {
		return err
	}
	prog.done("Rendered graph")
	printFile(output)
	return nil
}

// graphFormat resolves the format from the flag, then the output extension.
func graphFormat(output, format string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(output), ".")); ext {
	case "pdf", "png":
		return ext
	}
	return "svg"
}
