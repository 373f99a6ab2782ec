package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ethos/internal/contract"
	"github.com/alexanderramin/ethos/internal/domain"
)

// FormatReport renders a full cross-framework evaluation report.
func FormatReport(report *contract.Report) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Moral evaluation: %s", report.Action)))
	b.WriteString("\n")
	if report.Description != "" {
		b.WriteString(Dim(report.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	headers := []string{"FRAMEWORK", "VERDICT", "CORE", "RATIONALE"}
	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		rows = append(rows, []string{
			Bold(res.Framework),
			CoreColor(res.Core).Render(res.Display),
			CoreIndicator(res.Core),
			Dim(res.Quality),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(FormatConsistency(report))

	return b.String()
}

// FormatConsistency renders the agreement summary for one report.
func FormatConsistency(report *contract.Report) string {
	c := report.Summarize()

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Agreement"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %d   %s %d   %s %d\n",
		StyleGreen.Render("good"), c.GoodCount,
		StyleRed.Render("bad"), c.BadCount,
		StyleYellow.Render("neutral"), c.NeutralCount,
	))
	if c.Unanimous {
		b.WriteString(fmt.Sprintf("  Unanimous: %s\n", CoreColor(c.Majority).Render(c.Majority.Display())))
	} else {
		b.WriteString(fmt.Sprintf("  Majority: %s\n", CoreColor(c.Majority).Render(c.Majority.Display())))
	}
	return b.String()
}

// FormatHistory renders past evaluation runs as a table.
func FormatHistory(reports []*contract.Report) string {
	if len(reports) == 0 {
		return Dim("No evaluations recorded.") + "\n"
	}
	headers := []string{"RAN AT", "ACTION", "GOOD", "BAD", "NEUTRAL", "MAJORITY"}
	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		c := report.Summarize()
		rows = append(rows, []string{
			Dim(report.RanAt.Format("2006-01-02 15:04")),
			Bold(report.Action),
			StyleGreen.Render(fmt.Sprintf("%d", c.GoodCount)),
			StyleRed.Render(fmt.Sprintf("%d", c.BadCount)),
			StyleYellow.Render(fmt.Sprintf("%d", c.NeutralCount)),
			CoreIndicator(c.Majority),
		})
	}
	return RenderTable(headers, rows)
}

// FormatFrameworks renders each framework's verdict values and their core
// mappings.
func FormatFrameworks(frameworks []FrameworkInfo) string {
	headers := []string{"FRAMEWORK", "VERDICTS"}
	rows := make([][]string, 0, len(frameworks))
	for _, fw := range frameworks {
		parts := make([]string, 0, len(fw.Verdicts))
		for _, v := range fw.Verdicts {
			parts = append(parts, CoreColor(v.Core()).Render(v.Display()))
		}
		rows = append(rows, []string{Bold(fw.Name), strings.Join(parts, Dim(" / "))})
	}
	return RenderTable(headers, rows)
}

// FrameworkInfo pairs a framework name with its enumerated verdict values.
type FrameworkInfo struct {
	Name     string
	Verdicts []domain.Verdict
}
