package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"copulagof/domain/gof"
)

// BuildMarkdown renders a scoring run as a markdown document: run
// metadata followed by the 2xK score table, families as columns.
func BuildMarkdown(run *gof.ScoringRun) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Goodness-of-fit scores\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", run.ID)
	fmt.Fprintf(&b, "- Created: %s\n", run.CreatedAt)
	fmt.Fprintf(&b, "- Observations: %d\n", run.SampleSize)
	fmt.Fprintf(&b, "- Significance level: %v\n", run.Alpha)
	fmt.Fprintf(&b, "- Correction: %s\n\n", run.Correction)

	// Header
	b.WriteString("| test |")
	for _, family := range run.Matrix.Families {
		fmt.Fprintf(&b, " %s |", family.Name())
	}
	b.WriteString("\n|------|")
	for range run.Matrix.Families {
		b.WriteString("------|")
	}
	b.WriteString("\n")

	writeRow := func(label string, scores []int) {
		fmt.Fprintf(&b, "| %s |", label)
		for _, s := range scores {
			fmt.Fprintf(&b, " %d |", s)
		}
		b.WriteString("\n")
	}
	writeRow("Vuong", run.Matrix.Vuong)
	writeRow("Clarke", run.Matrix.Clarke)

	b.WriteString("\nScores are wins minus losses against every other candidate; higher is better.\n")
	return b.String()
}

// RenderHTML converts a markdown report into an HTML fragment
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
