package testutil

import "github.com/alexanderramin/ethos/internal/domain"

// BenignContext is a minimal context no framework objects to: positive
// flourishing and utility, stable cooperation, no breach.
func BenignContext() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Helped a neighbor carry groceries.",
		Consequences: domain.Consequences{
			NetFlourishing: 5,
			NetUtility:     5,
			TimeHorizon:    domain.HorizonMedium,
		},
		Cooperation: domain.CooperativeOutcome{Stable: true},
		Agent:       domain.Agent{AgentType: domain.AgentStranger},
	}
}

// BreachContext is a minimal context with a trust breach and negative
// outcomes throughout.
func BreachContext() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Broke a promise for personal gain.",
		Universalized: domain.UniversalizedResult{
			SelfCollapse:        true,
			ContradictionInWill: true,
		},
		Consequences: domain.Consequences{
			NetFlourishing:  -10,
			NetUtility:      -10,
			PowerExpression: -2,
			TimeHorizon:     domain.HorizonMedium,
		},
		Cooperation: domain.CooperativeOutcome{Stable: false, SocietalTrustChange: -5},
		Trust: domain.TrustImpact{
			Breach:                true,
			RelationshipsAffected: []domain.RelationshipType{domain.RelFriendFriend},
			ImpactType:            []domain.RelationshipImpact{domain.ImpactBreachesTrust, domain.ImpactWeakens},
		},
		Agent: domain.Agent{
			AgentType: domain.AgentStranger,
			Vices:     []domain.Vice{domain.ViceDishonesty},
		},
		Duties: domain.DutyAssessment{
			DutiesViolated: []domain.DutyType{domain.DutyFidelity},
		},
	}
}
