package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/render/term"
)

const (
	statusShown   = "shown"
	statusHidden  = "hidden"
	statusUnknown = "no renderer"
)

func (c *CLI) sectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections [config]",
		Short: "List declared sections and the order they are shown in",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSections(cmd.Context(), args)
		},
	}
}

func (c *CLI) runSections(ctx context.Context, args []string) error {
	doc, err := c.loadDocument(ctx, args)
	if err != nil {
		return err
	}
	rows := sectionRows(doc, term.NewRegistry())
	if len(rows) == 0 {
		printWarning("No sections declared")
		return nil
	}

	t := newTable([]string{"#", "Section", "Order", "Status"}, rows, func(row, col int) lipgloss.Style {
		switch rows[row][3] {
		case statusShown:
			if col == 1 {
				return StyleSuccess
			}
			return StyleValue
		case statusUnknown:
			return StyleWarning
		}
		return StyleDim
	})

	fmt.Fprintln(out, StyleTitle.Render(doc.Title()))
	fmt.Fprintln(out, t.Render())
	printDetail("%d of %d sections shown", len(doc.ActiveSections()), len(rows))
	return nil
}

// sectionRows lists active sections in presentation order followed by the
// hidden ones in declaration order.
func sectionRows(doc *profile.Document, reg *term.Registry) [][]string {
	active := doc.ActiveSections()
	order := make(map[string]int, len(active))
	for i, name := range active {
		order[name] = i
	}

	rows := make([][]string, 0, len(doc.Sections.All()))
	for i, name := range active {
		status := statusShown
		if !reg.Has(name) {
			status = statusUnknown
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), name, strconv.Itoa(declaredOrder(doc, name)), status})
	}
	for _, s := range doc.Sections.All() {
		if _, ok := order[s.Name]; ok {
			continue
		}
		rows = append(rows, []string{"", s.Name, strconv.Itoa(s.Order), statusHidden})
	}
	return rows
}

func declaredOrder(doc *profile.Document, name string) int {
	for _, s := range doc.Sections.All() {
		if s.Name == name {
			return s.Order
		}
	}
	return 0
}
