package codec

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/ethos/internal/domain"
)

// Encode renders a context as an indented JSON document.
func Encode(ctx *domain.MoralContext) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("encoding context: nil context")
	}
	data, err := json.MarshalIndent(ToSchema(ctx), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding context: %w", err)
	}
	return data, nil
}

// Decode parses a JSON document back into a validated context.
// Round-tripping a context through Encode and Decode reproduces an equal
// context.
func Decode(data []byte) (*domain.MoralContext, error) {
	var schema ContextSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("decoding context: %w", err)
	}
	return FromSchema(&schema)
}

// ToSchema maps a domain context onto the wire shape. The stable flag is
// always written out explicitly so a stored false survives the absent-key
// default on the way back in.
func ToSchema(ctx *domain.MoralContext) *ContextSchema {
	stable := ctx.Cooperation.Stable
	schema := &ContextSchema{
		ActionDescription: ctx.ActionDescription,
		UniversalizedResult: UniversalizedSchema{
			SelfCollapse:        ctx.Universalized.SelfCollapse,
			ContradictionInWill: ctx.Universalized.ContradictionInWill,
		},
		Consequences: ConsequencesSchema{
			NetFlourishing:  ctx.Consequences.NetFlourishing,
			NetUtility:      ctx.Consequences.NetUtility,
			PowerExpression: ctx.Consequences.PowerExpression,
			TimeHorizon:     string(ctx.Consequences.TimeHorizon),
		},
		CooperativeOutcome: CooperativeOutcomeSchema{
			Stable:              &stable,
			SocietalTrustChange: ctx.Cooperation.SocietalTrustChange,
		},
		TrustImpact: TrustImpactSchema{
			Breach:                ctx.Trust.Breach,
			RelationshipsAffected: namesOf(ctx.Trust.RelationshipsAffected),
			ImpactType:            namesOf(ctx.Trust.ImpactType),
		},
		Agent: AgentSchema{
			AgentType: string(ctx.Agent.AgentType),
			Virtues:   namesOf(ctx.Agent.Virtues),
			Vices:     namesOf(ctx.Agent.Vices),
		},
		DutyAssessment: DutyAssessmentSchema{
			DutiesUpheld:   namesOf(ctx.Duties.DutiesUpheld),
			DutiesViolated: namesOf(ctx.Duties.DutiesViolated),
		},
	}
	if len(ctx.Consequences.IndividualImpact) > 0 {
		impact := make(map[string]int, len(ctx.Consequences.IndividualImpact))
		for subject, magnitude := range ctx.Consequences.IndividualImpact {
			impact[string(subject)] = magnitude
		}
		schema.Consequences.IndividualImpact = impact
	}
	return schema
}

// FromSchema rebuilds a domain context from the wire shape, resolving every
// enumerated name through its lookup table.
func FromSchema(schema *ContextSchema) (*domain.MoralContext, error) {
	// Empty names are left to the constructor's defaults.
	var horizon domain.TimeHorizon
	if schema.Consequences.TimeHorizon != "" {
		parsed, err := domain.ParseTimeHorizon(schema.Consequences.TimeHorizon)
		if err != nil {
			return nil, fmt.Errorf("consequences: %w", err)
		}
		horizon = parsed
	}

	var impact map[domain.ImpactSubject]int
	if len(schema.Consequences.IndividualImpact) > 0 {
		impact = make(map[domain.ImpactSubject]int, len(schema.Consequences.IndividualImpact))
		for name, magnitude := range schema.Consequences.IndividualImpact {
			subject, err := domain.ParseImpactSubject(name)
			if err != nil {
				return nil, fmt.Errorf("individual impact: %w", err)
			}
			impact[subject] = magnitude
		}
	}

	relationships, err := parseAll(schema.TrustImpact.RelationshipsAffected, domain.ParseRelationshipType)
	if err != nil {
		return nil, fmt.Errorf("trust impact: %w", err)
	}
	impactTypes, err := parseAll(schema.TrustImpact.ImpactType, domain.ParseRelationshipImpact)
	if err != nil {
		return nil, fmt.Errorf("trust impact: %w", err)
	}

	var agentType domain.AgentType
	if schema.Agent.AgentType != "" {
		parsed, err := domain.ParseAgentType(schema.Agent.AgentType)
		if err != nil {
			return nil, fmt.Errorf("agent: %w", err)
		}
		agentType = parsed
	}
	virtues, err := parseAll(schema.Agent.Virtues, domain.ParseVirtue)
	if err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}
	vices, err := parseAll(schema.Agent.Vices, domain.ParseVice)
	if err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}

	upheld, err := parseAll(schema.DutyAssessment.DutiesUpheld, domain.ParseDutyType)
	if err != nil {
		return nil, fmt.Errorf("duty assessment: %w", err)
	}
	violated, err := parseAll(schema.DutyAssessment.DutiesViolated, domain.ParseDutyType)
	if err != nil {
		return nil, fmt.Errorf("duty assessment: %w", err)
	}

	// Absent stable key means the default, not false.
	stable := true
	if schema.CooperativeOutcome.Stable != nil {
		stable = *schema.CooperativeOutcome.Stable
	}

	return domain.NewMoralContext(
		schema.ActionDescription,
		&domain.UniversalizedResult{
			SelfCollapse:        schema.UniversalizedResult.SelfCollapse,
			ContradictionInWill: schema.UniversalizedResult.ContradictionInWill,
		},
		&domain.Consequences{
			NetFlourishing:   schema.Consequences.NetFlourishing,
			NetUtility:       schema.Consequences.NetUtility,
			PowerExpression:  schema.Consequences.PowerExpression,
			TimeHorizon:      horizon,
			IndividualImpact: impact,
		},
		&domain.CooperativeOutcome{
			Stable:              stable,
			SocietalTrustChange: schema.CooperativeOutcome.SocietalTrustChange,
		},
		&domain.TrustImpact{
			Breach:                schema.TrustImpact.Breach,
			RelationshipsAffected: relationships,
			ImpactType:            impactTypes,
		},
		&domain.Agent{
			AgentType: agentType,
			Virtues:   virtues,
			Vices:     vices,
		},
		&domain.DutyAssessment{
			DutiesUpheld:   upheld,
			DutiesViolated: violated,
		},
	)
}

func namesOf[T ~string](values []T) []string {
	if len(values) == 0 {
		return nil
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return names
}

func parseAll[T ~string](names []string, parse func(string) (T, error)) ([]T, error) {
	if len(names) == 0 {
		return nil, nil
	}
	values := make([]T, len(names))
	for i, name := range names {
		v, err := parse(name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
