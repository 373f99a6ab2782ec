package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/alexanderramin/ethos/internal/repository"
)

// FormatContextList renders the stored contexts as a table.
func FormatContextList(summaries []repository.ContextSummary) string {
	if len(summaries) == 0 {
		return Dim("No contexts stored.") + "\n"
	}
	headers := []string{"NAME", "ACTION", "UPDATED"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			Bold(s.Name),
			StyleFg.Render(truncate(s.ActionDescription, 60)),
			Dim(s.UpdatedAt.Format("2006-01-02")),
		})
	}
	return RenderTable(headers, rows)
}

// FormatContext renders the full detail view of one context.
func FormatContext(name string, ctx *domain.MoralContext) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(name))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(ctx.ActionDescription))
	b.WriteString("\n\n")

	section(&b, "Universalization")
	field(&b, "self collapse", yesNo(ctx.Universalized.SelfCollapse))
	field(&b, "contradiction in will", yesNo(ctx.Universalized.ContradictionInWill))

	section(&b, "Consequences")
	field(&b, "net flourishing", signed(ctx.Consequences.NetFlourishing))
	field(&b, "net utility", signed(ctx.Consequences.NetUtility))
	field(&b, "effective utility", signed(ctx.Consequences.EffectiveUtility()))
	field(&b, "power expression", signed(ctx.Consequences.PowerExpression))
	field(&b, "time horizon", string(ctx.Consequences.TimeHorizon))
	if len(ctx.Consequences.IndividualImpact) > 0 {
		subjects := make([]domain.ImpactSubject, 0, len(ctx.Consequences.IndividualImpact))
		for subject := range ctx.Consequences.IndividualImpact {
			subjects = append(subjects, subject)
		}
		sort.Slice(subjects, func(i, j int) bool { return subjects[i] < subjects[j] })
		for _, subject := range subjects {
			field(&b, "  "+strings.ToLower(string(subject)), signed(ctx.Consequences.IndividualImpact[subject]))
		}
	}

	section(&b, "Cooperation")
	field(&b, "stable", yesNo(ctx.Cooperation.Stable))
	field(&b, "societal trust change", signed(ctx.Cooperation.SocietalTrustChange))

	section(&b, "Trust")
	field(&b, "breach", yesNo(ctx.Trust.Breach))
	if len(ctx.Trust.RelationshipsAffected) > 0 {
		field(&b, "relationships", joinNames(ctx.Trust.RelationshipsAffected))
	}
	if len(ctx.Trust.ImpactType) > 0 {
		field(&b, "impact", joinNames(ctx.Trust.ImpactType))
	}

	section(&b, "Agent")
	field(&b, "type", string(ctx.Agent.AgentType))
	if len(ctx.Agent.Virtues) > 0 {
		field(&b, "virtues", joinNames(ctx.Agent.Virtues))
	}
	if len(ctx.Agent.Vices) > 0 {
		field(&b, "vices", joinNames(ctx.Agent.Vices))
	}

	section(&b, "Duties")
	if len(ctx.Duties.DutiesUpheld) > 0 {
		field(&b, "upheld", joinNames(ctx.Duties.DutiesUpheld))
	}
	if len(ctx.Duties.DutiesViolated) > 0 {
		field(&b, "violated", joinNames(ctx.Duties.DutiesViolated))
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString(StyleBlue.Render(title))
	b.WriteString("\n")
}

func field(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim(label+":"), StyleFg.Render(value)))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

func joinNames[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strings.ToLower(string(v))
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
