// Package codec converts a MoralContext to and from its structured JSON
// representation. Every enumerated value serializes as its canonical name
// and deserializes through an exact name lookup; an unknown name fails the
// whole decode.
package codec

// ContextSchema is the wire shape of a moral context document.
type ContextSchema struct {
	ActionDescription   string                   `json:"action_description"`
	UniversalizedResult UniversalizedSchema      `json:"universalized_result"`
	Consequences        ConsequencesSchema       `json:"consequences"`
	CooperativeOutcome  CooperativeOutcomeSchema `json:"cooperative_outcome"`
	TrustImpact         TrustImpactSchema        `json:"trust_impact"`
	Agent               AgentSchema              `json:"agent"`
	DutyAssessment      DutyAssessmentSchema     `json:"duty_assessment"`
}

type UniversalizedSchema struct {
	SelfCollapse        bool `json:"self_collapse"`
	ContradictionInWill bool `json:"contradiction_in_will"`
}

type ConsequencesSchema struct {
	NetFlourishing   int            `json:"net_flourishing"`
	NetUtility       int            `json:"net_utility"`
	PowerExpression  int            `json:"power_expression"`
	TimeHorizon      string         `json:"time_horizon"`
	IndividualImpact map[string]int `json:"individual_impact,omitempty"`
}

type CooperativeOutcomeSchema struct {
	// Stable defaults to true when the key is absent from the document.
	Stable              *bool `json:"stable,omitempty"`
	SocietalTrustChange int   `json:"societal_trust_change"`
}

type TrustImpactSchema struct {
	Breach                bool     `json:"breach"`
	RelationshipsAffected []string `json:"relationships_affected,omitempty"`
	ImpactType            []string `json:"impact_type,omitempty"`
}

type AgentSchema struct {
	AgentType string   `json:"agent_type"`
	Virtues   []string `json:"virtues,omitempty"`
	Vices     []string `json:"vices,omitempty"`
}

type DutyAssessmentSchema struct {
	DutiesUpheld   []string `json:"duties_upheld,omitempty"`
	DutiesViolated []string `json:"duties_violated,omitempty"`
}
