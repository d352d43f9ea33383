package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/passcheck/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. attaching an
// audit of a credentials list to a ticket.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs one analysis result in Markdown format.
func (w *MarkdownWriter) Write(result *model.AnalysisResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Analysis Report")
	md.PlainText("")

	w.writeResult(md, result, 2)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteSummary outputs the batch summary in Markdown format: per-tier
// distribution first, then one section per analyzed password.
func (w *MarkdownWriter) WriteSummary(summary *model.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Analysis Report")
	md.PlainText("")

	w.writeDistribution(md, summary)

	for i, result := range summary.Results {
		md.H2("Password " + strconv.Itoa(i+1) + " of " + strconv.Itoa(summary.Total()))
		md.PlainText("")
		w.writeResult(md, result, 3)
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeResult writes one result's overview table, alert, criteria table,
// and advisory lists. headingLevel selects H2 or H3 for subsections so the
// same layout nests under both single and batch reports.
func (w *MarkdownWriter) writeResult(md *markdown.Markdown, result *model.AnalysisResult, headingLevel int) {
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Password", "`" + result.MaskedPassword() + "`"},
			{"Length", strconv.Itoa(result.Length)},
			{"Score", strconv.Itoa(result.Score) + "/100"},
			{"Strength", result.Strength.String()},
			{"Indicator", result.Indicator},
			{"Estimated crack time", result.CrackTime},
		},
	})
	md.PlainText("")

	w.writeAlert(md, result)

	w.heading(md, headingLevel, "Security Criteria")
	md.PlainText("")
	w.writeCriteriaTable(md, result.Criteria)

	if len(result.Warnings) > 0 {
		w.heading(md, headingLevel, "Warnings")
		md.PlainText("")
		md.BulletList(result.Warnings...)
		md.PlainText("")
	}

	if len(result.Suggestions) > 0 {
		w.heading(md, headingLevel, "Suggestions")
		md.PlainText("")
		md.BulletList(result.Suggestions...)
		md.PlainText("")
	}
}

// heading writes an H2 or H3 depending on nesting.
func (w *MarkdownWriter) heading(md *markdown.Markdown, level int, text string) {
	if level <= 2 {
		md.H2(text)
		return
	}
	md.H3(text)
}

// writeAlert writes a GFM alert keyed to the strength tier.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.AnalysisResult) {
	switch result.Strength {
	case model.StrengthVeryWeak:
		md.Cautionf("Very weak password (score %d). It would fall to brute force almost immediately.", result.Score)
	case model.StrengthWeak:
		md.Warningf("Weak password (score %d). Several security criteria are unmet.", result.Score)
	case model.StrengthModerate:
		md.Importantf("Moderate password (score %d). Acceptable only for low-value accounts.", result.Score)
	case model.StrengthStrong:
		md.Note(fmt.Sprintf("Strong password (score %d). Minor improvements remain possible.", result.Score))
	case model.StrengthVeryStrong:
		md.Tip(fmt.Sprintf("Very strong password (score %d). All or nearly all criteria are met.", result.Score))
	}
	md.PlainText("")
}

// writeCriteriaTable writes the criteria checklist as a table in display
// order.
func (w *MarkdownWriter) writeCriteriaTable(md *markdown.Markdown, criteria *model.CriteriaSet) {
	all := criteria.All()
	rows := make([][]string, len(all))
	for i, c := range all {
		status := "❌"
		if c.Met {
			status = "✅"
		}
		rows[i] = []string{status, c.Label, c.Description}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Met", "Criterion", "Description"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeDistribution writes the per-tier counts with a mermaid pie chart.
func (w *MarkdownWriter) writeDistribution(md *markdown.Markdown, summary *model.Summary) {
	md.H2("Strength Distribution")
	md.PlainText("")

	rows := make([][]string, 0, len(strengthOrder)+1)
	for _, s := range strengthOrder {
		rows = append(rows, []string{s.String(), strconv.Itoa(summary.CountForStrength(s))})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(summary.Total()) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Strength", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if summary.Total() > 0 {
		w.writePieChart(md, summary)
	}
}

// writePieChart writes a mermaid pie chart of the tier distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Password Strength Distribution"),
		piechart.WithShowData(true),
	)

	for _, s := range strengthOrder {
		if count := summary.CountForStrength(s); count > 0 {
			chart.LabelAndIntValue(s.String(), uint64(count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [passcheck](https://github.com/nao1215/passcheck)*")
}
