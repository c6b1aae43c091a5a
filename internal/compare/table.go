package compare

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// FallbackTable renders the rows as a plain markdown table for local
// display when the comment could not be posted. The percentage here is
// derived from the critcmp factor columns, matching what the tool
// itself prints, and there is no significance column.
func FallbackTable(rows []Row) string {
	var b strings.Builder
	b.WriteString("| Test | Base | PR | % |\n")
	b.WriteString("|------|------|----|---|\n")
	for _, row := range rows {
		name := escapePipes(row.Name)
		baseCell, changesCell, diffCell := "N/A", "N/A", "N/A"
		if row.Base.Present {
			baseCell = row.Base.Display
		}
		if row.Changes.Present {
			changesCell = row.Changes.Display
		}
		if row.Base.Present && row.Changes.Present && row.Base.Factor != 0 {
			diffCell = formatPercentage(diffPercentage(row.Base.Factor, row.Changes.Factor))
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", name, baseCell, changesCell, diffCell)
	}
	return b.String()
}

// RenderLocal renders markdown for the terminal. On any rendering
// problem the raw markdown is returned instead.
func RenderLocal(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
