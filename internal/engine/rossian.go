package engine

import (
	"fmt"

	"github.com/alexanderramin/ethos/internal/domain"
)

// Rossian weighs prima facie duties against each other. Base stringency
// weights are fixed; contextual modifiers adjust them per action, and a
// closeness threshold models Ross's view that duty-weighing is often
// genuinely indeterminate.
type Rossian struct{}

func (Rossian) Name() string { return "Rossian" }

// baseStringency orders the duties by how hard they are to override.
var baseStringency = map[domain.DutyType]int{
	domain.DutyNonMaleficence:  12,
	domain.DutyJustice:         10,
	domain.DutyFidelity:        9,
	domain.DutyReparation:      8,
	domain.DutyGratitude:       7,
	domain.DutyBeneficence:     6,
	domain.DutySelfImprovement: 5,
}

func (Rossian) Evaluate(_ string, ctx *domain.MoralContext) (domain.Verdict, error) {
	weights, err := contextualWeights(ctx)
	if err != nil {
		return nil, err
	}

	weightUpheld, err := sumWeights(weights, ctx.Duties.DutiesUpheld)
	if err != nil {
		return nil, err
	}
	weightViolated, err := sumWeights(weights, ctx.Duties.DutiesViolated)
	if err != nil {
		return nil, err
	}

	diff := weightUpheld - weightViolated
	if diff < 0 {
		diff = -diff
	}
	threshold := 2 +
		len(ctx.Duties.DutiesUpheld) + len(ctx.Duties.DutiesViolated) +
		distinctRelationships(ctx.Trust.RelationshipsAffected)

	switch {
	case diff < threshold:
		return domain.RossianConflicting, nil
	case weightUpheld > weightViolated:
		return domain.RossianPermissible, nil
	default:
		return domain.RossianImpermissible, nil
	}
}

// contextualWeights applies the modifiers in order: time-horizon factor,
// relationship bonus, severe-harm bonus, trust-erosion bonus.
func contextualWeights(ctx *domain.MoralContext) (map[domain.DutyType]int, error) {
	var factor float64
	switch ctx.Consequences.TimeHorizon {
	case domain.HorizonShort:
		factor = 0.8
	case domain.HorizonMedium:
		factor = 1.0
	case domain.HorizonLong:
		factor = 1.2
	default:
		return nil, fmt.Errorf("no horizon factor for %q", ctx.Consequences.TimeHorizon)
	}

	weights := make(map[domain.DutyType]int, len(baseStringency))
	for duty, base := range baseStringency {
		weights[duty] = int(float64(base) * factor)
	}

	if ctx.Agent.AgentType == domain.AgentFriend || ctx.Agent.AgentType == domain.AgentFamilyMember {
		weights[domain.DutyFidelity] += 3
		weights[domain.DutyGratitude] += 2
	}
	if ctx.Consequences.NetUtility < -10 {
		weights[domain.DutyNonMaleficence] += 4
	}
	if ctx.Cooperation.SocietalTrustChange < -5 {
		weights[domain.DutyJustice] += 3
	}
	return weights, nil
}

// sumWeights adds up the weight of each listed duty. A duty missing from
// the weight table is an error; it must never silently count as zero.
func sumWeights(weights map[domain.DutyType]int, duties []domain.DutyType) (int, error) {
	var sum int
	for _, duty := range duties {
		w, ok := weights[duty]
		if !ok {
			return 0, fmt.Errorf("no stringency weight for duty %q", duty)
		}
		sum += w
	}
	return sum, nil
}

func distinctRelationships(rels []domain.RelationshipType) int {
	seen := make(map[domain.RelationshipType]struct{}, len(rels))
	for _, r := range rels {
		seen[r] = struct{}{}
	}
	return len(seen)
}
