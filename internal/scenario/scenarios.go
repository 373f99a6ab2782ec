// Package scenario holds the built-in example moral cases: classic
// dilemmas plus a few everyday actions, spanning unanimous and divided
// verdicts across the frameworks.
package scenario

import (
	"sort"

	"github.com/alexanderramin/ethos/internal/domain"
)

// builders maps scenario name to its context constructor.
var builders = map[string]func() *domain.MoralContext{
	"adultery":            Adultery,
	"pork_modern":         PorkModern,
	"pork_premodern":      PorkPremodern,
	"tell_a_lie":          TellALie,
	"charitable_donation": CharitableDonation,
	"mass_surveillance":   MassSurveillance,
	"trolley_switch":      TrolleySwitch,
	"trolley_fat_man":     TrolleyFatMan,
	"suicide":             Suicide,
}

// Names lists the built-in scenario names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named scenario's context, or nil if unknown.
func Get(name string) *domain.MoralContext {
	build, ok := builders[name]
	if !ok {
		return nil
	}
	return build()
}

// Adultery: a trust breach with long-horizon harm across the family.
func Adultery() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Engaged in sexual relations with someone else's spouse.",
		Universalized: domain.UniversalizedResult{
			SelfCollapse:        true,
			ContradictionInWill: true,
		},
		Consequences: domain.Consequences{
			NetFlourishing:  -15,
			NetUtility:      -20,
			PowerExpression: -5,
			TimeHorizon:     domain.HorizonLong,
			IndividualImpact: map[domain.ImpactSubject]int{
				domain.SubjectBetrayedSpouse: -50,
				domain.SubjectCommunity:      -30,
				domain.SubjectChild:          -40,
				domain.SubjectAgent:          10, // short-term pleasure, long-term harm
			},
		},
		Cooperation: domain.CooperativeOutcome{Stable: false, SocietalTrustChange: -3},
		Trust: domain.TrustImpact{
			Breach: true,
			RelationshipsAffected: []domain.RelationshipType{
				domain.RelSpouseSpouse, domain.RelFamilyMember, domain.RelCitizenState,
			},
			ImpactType: []domain.RelationshipImpact{
				domain.ImpactBreachesTrust, domain.ImpactWeakens,
			},
		},
		Agent: domain.Agent{
			AgentType: domain.AgentStranger,
			Vices:     []domain.Vice{domain.ViceDishonesty, domain.ViceBetrayal, domain.ViceIndulgence},
		},
		Duties: domain.DutyAssessment{
			DutiesViolated: []domain.DutyType{domain.DutyFidelity, domain.DutyNonMaleficence},
		},
	}
}

// PorkModern: eating regulated, properly cooked pork.
func PorkModern() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Ate properly cooked pork from a regulated source.",
		Universalized:     domain.UniversalizedResult{},
		Consequences: domain.Consequences{
			NetFlourishing:  8,
			NetUtility:      10,
			PowerExpression: 2, // exercising personal choice
			TimeHorizon:     domain.HorizonMedium,
			IndividualImpact: map[domain.ImpactSubject]int{
				domain.SubjectEater:   15,
				domain.SubjectFarmer:  5,
				domain.SubjectSociety: 0,
			},
		},
		Cooperation: domain.CooperativeOutcome{Stable: true},
		Trust:       domain.TrustImpact{},
		Agent: domain.Agent{
			AgentType: domain.AgentStranger,
			Virtues:   []domain.Virtue{domain.VirtueTemperance},
		},
		Duties: domain.DutyAssessment{
			DutiesUpheld: []domain.DutyType{domain.DutySelfImprovement},
		},
	}
}

// PorkPremodern: eating undercooked pork where parasites are a known risk.
func PorkPremodern() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Ate undercooked pork from an unregulated source in a context with known parasites.",
		Universalized:     domain.UniversalizedResult{},
		Consequences: domain.Consequences{
			NetFlourishing:  -12,
			NetUtility:      -15,
			PowerExpression: -3,
			TimeHorizon:     domain.HorizonMedium,
			IndividualImpact: map[domain.ImpactSubject]int{
				domain.SubjectEater:        -20,
				domain.SubjectFamilyMember: -10,
				domain.SubjectCommunity:    -5,
			},
		},
		// The social contract itself isn't threatened.
		Cooperation: domain.CooperativeOutcome{Stable: true},
		Trust:       domain.TrustImpact{},
		Agent: domain.Agent{
			AgentType: domain.AgentStranger,
			Vices:     []domain.Vice{domain.ViceFoolishness},
		},
		Duties: domain.DutyAssessment{
			DutiesViolated: []domain.DutyType{domain.DutySelfImprovement},
		},
	}
}

// TellALie: lying to an official to protect a friend.
func TellALie() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Lied to an inquiring official about a friend's whereabouts to protect them from potential harm.",
		Universalized: domain.UniversalizedResult{
			SelfCollapse:        true,
			ContradictionInWill: true,
		},
		Consequences: domain.Consequences{
			NetFlourishing:  10,
			NetUtility:      15,
			PowerExpression: -2,
			TimeHorizon:     domain.HorizonMedium,
			IndividualImpact: map[domain.ImpactSubject]int{
				domain.SubjectFriend:   100,
				domain.SubjectSociety:  -15,
				domain.SubjectOfficial: -5,
				domain.SubjectAgent:    5,
			},
		},
		Cooperation: domain.CooperativeOutcome{Stable: true, SocietalTrustChange: -1},
		Trust: domain.TrustImpact{
			Breach: true,
			RelationshipsAffected: []domain.RelationshipType{
				domain.RelCitizenState, domain.RelFriendFriend, domain.RelCitizenState,
			},
			ImpactType: []domain.RelationshipImpact{
				domain.ImpactBreachesTrust, // to society/official
				domain.ImpactStrengthens,   // to friend
				domain.ImpactNurtures,      // the friendship
			},
		},
		Agent: domain.Agent{
			AgentType: domain.AgentFriend,
			Virtues:   []domain.Virtue{domain.VirtueLoyalty, domain.VirtueCompassion, domain.VirtueCourage},
			Vices:     []domain.Vice{domain.ViceDishonesty},
		},
		Duties: domain.DutyAssessment{
			DutiesUpheld:   []domain.DutyType{domain.DutyBeneficence, domain.DutyFidelity},
			DutiesViolated: []domain.DutyType{domain.DutyFidelity, domain.DutyNonMaleficence},
		},
	}
}

// CharitableDonation: giving a significant share of income to the global poor.
func CharitableDonation() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Donated a significant portion of income to effective charities helping the global poor.",
		Universalized:     domain.UniversalizedResult{},
		Consequences: domain.Consequences{
			NetFlourishing:  25,
			NetUtility:      30,
			PowerExpression: 3,
			TimeHorizon:     domain.HorizonLong,
			IndividualImpact: map[domain.ImpactSubject]int{
				domain.SubjectRecipient: 80,
				domain.SubjectDonor:     -10,
				domain.SubjectSociety:   5,
			},
		},
		Cooperation: domain.CooperativeOutcome{Stable: true, SocietalTrustChange: 2},
		Trust: domain.TrustImpact{
			RelationshipsAffected: []domain.RelationshipType{
				domain.RelHumanHuman, domain.RelCaregiverReceiver,
			},
			ImpactType: []domain.RelationshipImpact{
				domain.ImpactBuildsTrust, domain.ImpactNurtures, domain.ImpactStrengthens,
			},
		},
		Agent: domain.Agent{
			AgentType: domain.AgentStranger,
			Virtues:   []domain.Virtue{domain.VirtueCompassion, domain.VirtueJustice, domain.VirtueTemperance},
		},
		Duties: domain.DutyAssessment{
			DutiesUpheld: []domain.DutyType{
				domain.DutyBeneficence, domain.DutyJustice, domain.DutyGratitude,
			},
		},
	}
}

// MassSurveillance: warrantless data collection on all citizens.
func MassSurveillance() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Implemented mass surveillance program collecting data on all citizens without individualized warrants, justified by national security claims.",
		Universalized: domain.UniversalizedResult{
			SelfCollapse:        true,
			ContradictionInWill: true,
		},
		Consequences: domain.Consequences{
			NetFlourishing:  -15,
			NetUtility:      -5,
			PowerExpression: 8,
			TimeHorizon:     domain.HorizonLong,
			IndividualImpact: map[domain.ImpactSubject]int{
				domain.SubjectCitizens:   -30,
				domain.SubjectGovernment: 10,
				domain.SubjectDissident:  -50,
				domain.SubjectCriminal:   -5,
			},
		},
		Cooperation: domain.CooperativeOutcome{Stable: false, SocietalTrustChange: -20},
		Trust: domain.TrustImpact{
			Breach: true,
			RelationshipsAffected: []domain.RelationshipType{
				domain.RelCitizenState, domain.RelCommunityMember, domain.RelHumanHuman,
			},
			ImpactType: []domain.RelationshipImpact{
				domain.ImpactBreachesTrust, domain.ImpactExploits, domain.ImpactWeakens,
			},
		},
		Agent: domain.Agent{
			AgentType: domain.AgentStateOfficial,
			Virtues:   []domain.Virtue{domain.VirtueJustice},
			Vices:     []domain.Vice{domain.ViceDishonesty, domain.ViceUnfairness, domain.ViceCruelty},
		},
		Duties: domain.DutyAssessment{
			DutiesUpheld: []domain.DutyType{domain.DutyBeneficence, domain.DutyJustice},
			DutiesViolated: []domain.DutyType{
				domain.DutyFidelity, domain.DutyNonMaleficence, domain.DutyJustice,
			},
		},
	}
}

// TrolleySwitch: diverting the trolley onto the side track.
func TrolleySwitch() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Pulled a lever to divert a runaway trolley onto a side track, resulting in one death but saving five people.",
		Universalized:     domain.UniversalizedResult{},
		Consequences: domain.Consequences{
			NetFlourishing:  4, // 5 lives saved - 1 life lost
			NetUtility:      4,
			PowerExpression: 3,
			TimeHorizon:     domain.HorizonLong,
			IndividualImpact: map[domain.ImpactSubject]int{
				domain.SubjectSavedPeople: 5,
				domain.SubjectStranger:    -1,
				domain.SubjectAgent:       -2,
			},
		},
		Cooperation: domain.CooperativeOutcome{Stable: true},
		Trust:       domain.TrustImpact{},
		Agent: domain.Agent{
			AgentType: domain.AgentStranger,
			Virtues:   []domain.Virtue{domain.VirtueCourage, domain.VirtueJustice},
		},
		Duties: domain.DutyAssessment{
			DutiesUpheld:   []domain.DutyType{domain.DutyBeneficence, domain.DutyJustice},
			DutiesViolated: []domain.DutyType{domain.DutyNonMaleficence},
		},
	}
}

// TrolleyFatMan: pushing a person off the bridge to stop the trolley.
func TrolleyFatMan() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "Pushed a large person off a bridge to stop a runaway trolley, resulting in their death but saving five people.",
		Universalized: domain.UniversalizedResult{
			SelfCollapse:        true,
			ContradictionInWill: true,
		},
		Consequences: domain.Consequences{
			NetFlourishing:  4,
			NetUtility:      4,
			PowerExpression: -2, // using someone as mere means
			TimeHorizon:     domain.HorizonLong,
			IndividualImpact: map[domain.ImpactSubject]int{
				domain.SubjectSavedPeople: 5,
				domain.SubjectStranger:    -1,
				domain.SubjectAgent:       -5,
			},
		},
		Cooperation: domain.CooperativeOutcome{Stable: false, SocietalTrustChange: -3},
		Trust: domain.TrustImpact{
			Breach:                true,
			RelationshipsAffected: []domain.RelationshipType{domain.RelCommunityMember},
			ImpactType: []domain.RelationshipImpact{
				domain.ImpactBreachesTrust, domain.ImpactWeakens,
			},
		},
		Agent: domain.Agent{
			AgentType: domain.AgentStranger,
			Virtues:   []domain.Virtue{domain.VirtueJustice},
			Vices:     []domain.Vice{domain.ViceCruelty},
		},
		Duties: domain.DutyAssessment{
			DutiesUpheld:   []domain.DutyType{domain.DutyBeneficence},
			DutiesViolated: []domain.DutyType{domain.DutyNonMaleficence, domain.DutyJustice},
		},
	}
}

// Suicide: ending one's own life to escape unbearable suffering.
func Suicide() *domain.MoralContext {
	return &domain.MoralContext{
		ActionDescription: "A person intentionally ends their own life to escape unbearable suffering.",
		Universalized: domain.UniversalizedResult{
			SelfCollapse:        true,
			ContradictionInWill: true,
		},
		Consequences: domain.Consequences{
			NetFlourishing:  -20,
			NetUtility:      -15,
			PowerExpression: -8,
			TimeHorizon:     domain.HorizonLong,
			IndividualImpact: map[domain.ImpactSubject]int{
				domain.SubjectAgent:        -100,
				domain.SubjectFamilyMember: -40,
				domain.SubjectFriend:       -30,
				domain.SubjectCommunity:    -10,
				domain.SubjectSociety:      -5,
			},
		},
		Cooperation: domain.CooperativeOutcome{Stable: false, SocietalTrustChange: -2},
		Trust: domain.TrustImpact{
			Breach: true,
			RelationshipsAffected: []domain.RelationshipType{
				domain.RelFamilyMember, domain.RelFriendFriend,
				domain.RelCommunityMember, domain.RelHumanHuman,
			},
			ImpactType: []domain.RelationshipImpact{
				domain.ImpactBreachesTrust, domain.ImpactWeakens, domain.ImpactExploits,
			},
		},
		Agent: domain.Agent{
			AgentType: domain.AgentStranger,
			Virtues:   []domain.Virtue{domain.VirtueCourage},
			Vices:     []domain.Vice{domain.ViceCowardice, domain.ViceIndulgence},
		},
		Duties: domain.DutyAssessment{
			DutiesViolated: []domain.DutyType{
				domain.DutyNonMaleficence, domain.DutyBeneficence, domain.DutyFidelity,
				domain.DutyGratitude, domain.DutySelfImprovement,
			},
		},
	}
}
