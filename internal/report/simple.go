package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/nao1215/passcheck/internal/model"
)

// strengthStyles maps each tier to its terminal color style. Orange has no
// slot in the 16-color palette, so Weak renders as light red.
var strengthStyles = map[model.Strength]color.Style{
	model.StrengthVeryWeak:   color.New(color.FgRed),
	model.StrengthWeak:       color.New(color.FgLightRed),
	model.StrengthModerate:   color.New(color.FgYellow),
	model.StrengthStrong:     color.New(color.FgBlue),
	model.StrengthVeryStrong: color.New(color.FgGreen),
}

// SimpleWriter outputs human-readable text reports for terminal display.
// The layout follows the classic analysis report: overall strength,
// criteria checklist, warnings, suggestions, and general best practices.
type SimpleWriter struct {
	baseWriter

	// colored enables ANSI-colored strength rendering. Disabled when the
	// report goes to a file so the output stays pipe- and diff-friendly.
	colored bool

	// showTips controls whether the best-practices footer is printed.
	showTips bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables or disables ANSI color in the output.
func WithColor(colored bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.colored = colored
	}
}

// WithTips enables or disables the best-practices footer.
func WithTips(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showTips = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		colored:    false,
		showTips:   true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs one analysis result in human-readable format.
func (w *SimpleWriter) Write(result *model.AnalysisResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb)
	w.writeStrength(&sb, result)
	w.writeCriteria(&sb, result)
	w.writeAdvisory(&sb, result)
	if w.showTips {
		w.writeTips(&sb)
	}
	w.writeRule(&sb, "=")

	return w.output.Write([]byte(sb.String()))
}

// WriteSummary outputs each result followed by the per-tier totals.
func (w *SimpleWriter) WriteSummary(summary *model.Summary) (int, error) {
	var total int
	for i, result := range summary.Results {
		fmt.Fprintf(w.output, "\nAnalysis %d/%d\n", i+1, summary.Total())
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}

	var sb strings.Builder
	w.writeRule(&sb, "-")
	sb.WriteString("STRENGTH DISTRIBUTION\n")
	w.writeRule(&sb, "-")
	sb.WriteString("\n")
	for _, s := range strengthOrder {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", s.String()+":", summary.CountForStrength(s)))
	}
	sb.WriteString(fmt.Sprintf("\n  TOTAL:       %d passwords\n", summary.Total()))

	n, err := w.output.Write([]byte(sb.String()))
	return total + n, err
}

// writeHeader writes the report banner.
func (w *SimpleWriter) writeHeader(sb *strings.Builder) {
	sb.WriteString("\n")
	w.writeRule(sb, "=")
	sb.WriteString("                PASSWORD SECURITY ANALYSIS REPORT\n")
	w.writeRule(sb, "=")
	sb.WriteString("\n")
}

// writeStrength writes the overall strength section.
func (w *SimpleWriter) writeStrength(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString("OVERALL STRENGTH\n")
	sb.WriteString(fmt.Sprintf("  Password:   %s (%d characters)\n", result.MaskedPassword(), result.Length))
	sb.WriteString(fmt.Sprintf("  Score:      %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("  Level:      %s [%s]\n", w.renderStrength(result.Strength), result.Indicator))
	sb.WriteString(fmt.Sprintf("  Crack time: %s\n", result.CrackTime))
	sb.WriteString("\n")
}

// renderStrength returns the tier label, colorized when enabled.
func (w *SimpleWriter) renderStrength(s model.Strength) string {
	if !w.colored {
		return s.String()
	}
	if style, ok := strengthStyles[s]; ok {
		return style.Sprint(s.String())
	}
	return s.String()
}

// writeCriteria writes the criteria checklist in display order.
func (w *SimpleWriter) writeCriteria(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString("SECURITY CRITERIA\n")
	for _, c := range result.Criteria.All() {
		mark := "[ ]"
		if c.Met {
			mark = "[x]"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, c.Label))
		sb.WriteString(fmt.Sprintf("      %s\n", c.Description))
	}
	sb.WriteString("\n")
}

// writeAdvisory writes the warnings and suggestions sections.
// Empty sections are omitted.
func (w *SimpleWriter) writeAdvisory(sb *strings.Builder, result *model.AnalysisResult) {
	if len(result.Warnings) > 0 {
		sb.WriteString("SECURITY WARNINGS\n")
		for _, warning := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  * %s\n", warning))
		}
		sb.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("IMPROVEMENT SUGGESTIONS\n")
		for _, suggestion := range result.Suggestions {
			sb.WriteString(fmt.Sprintf("  * %s\n", suggestion))
		}
		sb.WriteString("\n")
	}
}

// writeTips writes the fixed best-practices footer.
func (w *SimpleWriter) writeTips(sb *strings.Builder) {
	sb.WriteString("SECURITY BEST PRACTICES\n")
	for _, tip := range bestPractices {
		sb.WriteString(fmt.Sprintf("  * %s\n", tip))
	}
	sb.WriteString("\n")
}

// writeRule writes a 70-column horizontal rule of the given character.
func (w *SimpleWriter) writeRule(sb *strings.Builder, ch string) {
	sb.WriteString(strings.Repeat(ch, 70))
	sb.WriteString("\n")
}
