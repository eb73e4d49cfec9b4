package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/observability"
	"github.com/matzehuels/folio/pkg/theme"
)

func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List or select themes",
	}

	cmd.AddCommand(c.themeListCommand())
	cmd.AddCommand(c.themeSetCommand())
	return cmd
}

func (c *CLI) themeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [config]",
		Short: "List the document's themes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw, closeFn, err := c.themeSwitch(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer closeFn()

			current := sw.Current().ID
			for _, t := range sw.Available() {
				marker := "  "
				name := StyleValue.Render(t.Name)
				if t.ID == current {
					marker = StyleSuccess.Render(iconSuccess) + " "
					name = StyleHighlight.Render(t.Name)
				}
				fmt.Fprintf(out, "%s%s %s\n", marker, name, StyleDim.Render("("+t.ID+")"))
				if t.Description != "" {
					printDetail("  %s", t.Description)
				}
			}
			return nil
		},
	}
}

func (c *CLI) themeSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> [config]",
		Short: "Select the theme used by tui",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sw, closeFn, err := c.themeSwitch(ctx, args[1:])
			if err != nil {
				return err
			}
			defer closeFn()

			id := args[0]
			if _, ok := theme.Find(sw.Available(), id); !ok {
				return errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", id)
			}
			changed, err := sw.Select(ctx, id)
			if err != nil {
				return fmt.Errorf("save theme: %w", err)
			}
			if !changed {
				printInfo("Theme %s is already selected", id)
				return nil
			}
			observability.Navigation().OnThemeChange(ctx, "cli", id)
			printSuccess("Selected theme %s", StyleHighlight.Render(sw.Current().Name))
			return nil
		},
	}
}

// themeSwitch builds the switch persisted in the configured cache.
func (c *CLI) themeSwitch(ctx context.Context, args []string) (*theme.Switch, func(), error) {
	doc, err := c.loadDocument(ctx, args)
	if err != nil {
		return nil, nil, err
	}
	store := c.openCache(ctx, false)
	closeFn := func() { store.Close() }
	return theme.NewSwitch(ctx, doc.Themes, theme.NewCacheStore(store)), closeFn, nil
}
