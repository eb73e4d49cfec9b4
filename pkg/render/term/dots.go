package term

import (
	"strings"

	"github.com/matzehuels/folio/pkg/nav"
	"github.com/matzehuels/folio/pkg/theme"
)

// Dot glyphs for the section indicator.
const (
	DotActive = "●"
	Dot       = "○"
	NextArrow = "⌄"
)

// Dots draws one indicator per section, vertically, with the active one
// highlighted.
func Dots(inds []nav.Indicator, p theme.Palette) string {
	lines := make([]string, len(inds))
	for i, ind := range inds {
		if ind.Active {
			lines[i] = p.DotActive.Render(DotActive)
		} else {
			lines[i] = p.Dot.Render(Dot)
		}
	}
	return strings.Join(lines, "\n")
}
