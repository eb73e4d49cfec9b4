package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/profile"
)

func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [config]",
		Short: "Validate a portfolio document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args)
		},
	}
}

func (c *CLI) runCheck(_ context.Context, args []string) error {
	path := c.documentPath(args)
	doc, err := profile.Load(path)
	if err != nil {
		return err
	}

	msgs := make([]string, len(doc.Warnings))
	for i, w := range doc.Warnings {
		msgs[i] = errors.UserMessage(w)
	}
	active := doc.ActiveSections()
	if len(msgs) == 0 {
		printSuccess("%s is valid", path)
	} else {
		printWarnings(msgs)
	}
	printKeyValue("Title", doc.Title())
	printKeyValue("Sections", strings.Join(active, " → "))
	printKeyValue("Projects", strconv.Itoa(len(doc.Projects)))
	printKeyValue("Cards", strconv.Itoa(len(doc.Cards())))

	if len(active) == 0 {
		printNextStep("Give at least one section a positive order in", path)
		return nil
	}
	printNextStep("Page through it", "folio tui "+path)
	return nil
}
