package compare

import (
	"fmt"
	"strings"
)

// Report renders the comparison as the markdown body of a pull-request
// comment: a header naming the benchmarked commit and a collapsible
// table of the parsed rows.
func Report(rows []Row, commitSHA string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Benchmark for %s\n", shortSHA(commitSHA))
	b.WriteString("<details>\n")
	b.WriteString("  <summary>Click to view benchmark</summary>\n\n")
	b.WriteString("| Test | Base | PR | % | significant % |\n")
	b.WriteString("|------|------|----|---|---------------|\n")
	for _, row := range rows {
		b.WriteString(markdownRow(row))
	}
	b.WriteString("\n</details>\n")
	return b.String()
}

func markdownRow(row Row) string {
	name := escapePipes(row.Name)
	baseCell, changesCell := "N/A", "N/A"
	diffCell, significantCell := "N/A", "N/A"

	if row.Base.Present {
		baseCell = row.Base.Display
	}
	if row.Changes.Present {
		changesCell = row.Changes.Display
	}

	if row.Base.Present && row.Changes.Present {
		diff := diffPercentage(row.Base.Duration, row.Changes.Duration)
		significant := significantDiffPercentage(row.Base.Duration, row.Base.Error, row.Changes.Duration, row.Changes.Error)
		diffCell = formatPercentage(diff)
		significantCell = formatPercentage(significant)

		if row.Significant() && row.Changes.Duration < row.Base.Duration {
			baseCell = "**" + baseCell + "**"
			changesCell = "**" + changesCell + "**"
		}
	}

	return fmt.Sprintf("| %s | %s | %s | %s | %s |\n", name, baseCell, changesCell, diffCell, significantCell)
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// SignificantCount returns how many rows show a significant difference.
func SignificantCount(rows []Row) int {
	n := 0
	for _, row := range rows {
		if row.Significant() {
			n++
		}
	}
	return n
}
