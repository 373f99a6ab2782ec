package engine

import "github.com/alexanderramin/ethos/internal/domain"

// Care judges by what the action does to relationships. Only the impact
// kinds matter; the list of affected relationships does not.
type Care struct{}

func (Care) Name() string { return "Ethics of Care" }

func (Care) Evaluate(_ string, ctx *domain.MoralContext) (domain.Verdict, error) {
	if containsImpact(ctx.Trust.ImpactType, domain.ImpactNurtures, domain.ImpactStrengthens) {
		return domain.CareCaring, nil
	}
	if containsImpact(ctx.Trust.ImpactType, domain.ImpactExploits, domain.ImpactWeakens) {
		return domain.CareUncaring, nil
	}
	return domain.CareNeutral, nil
}

func containsImpact(impacts []domain.RelationshipImpact, wanted ...domain.RelationshipImpact) bool {
	for _, i := range impacts {
		for _, w := range wanted {
			if i == w {
				return true
			}
		}
	}
	return false
}
