package domain

import "fmt"

// DefaultActionDescription is used when a context is built without one.
const DefaultActionDescription = "An action was performed."

// UniversalizedResult records whether universalizing the action's maxim is
// self-defeating or produces a contradiction a rational agent could not will.
type UniversalizedResult struct {
	SelfCollapse        bool
	ContradictionInWill bool
}

// Consequences records the outcome measures of an action.
type Consequences struct {
	NetFlourishing  int
	NetUtility      int
	PowerExpression int
	TimeHorizon     TimeHorizon
	// IndividualImpact maps each affected subject to a signed magnitude.
	IndividualImpact map[ImpactSubject]int
}

// EffectiveUtility discounts NetUtility by the time horizon: SHORT keeps it
// unchanged, MEDIUM scales by 0.8, LONG by 0.6, truncated toward zero.
func (c Consequences) EffectiveUtility() int {
	switch c.TimeHorizon {
	case HorizonShort:
		return c.NetUtility
	case HorizonLong:
		return int(float64(c.NetUtility) * 0.6)
	default: // MEDIUM
		return int(float64(c.NetUtility) * 0.8)
	}
}

func (c Consequences) Validate() error {
	if !c.TimeHorizon.Valid() {
		return fmt.Errorf("consequences: invalid time horizon %q", c.TimeHorizon)
	}
	for subject := range c.IndividualImpact {
		if !subject.Valid() {
			return fmt.Errorf("consequences: invalid impact subject %q", subject)
		}
	}
	return nil
}

// CooperativeOutcome records the effect on social cooperation.
type CooperativeOutcome struct {
	Stable              bool
	SocietalTrustChange int
}

// TrustImpact records whether trust was breached and which relationships
// were affected, and how.
type TrustImpact struct {
	Breach                bool
	RelationshipsAffected []RelationshipType
	ImpactType            []RelationshipImpact
}

func (t TrustImpact) Validate() error {
	for _, r := range t.RelationshipsAffected {
		if !r.Valid() {
			return fmt.Errorf("trust impact: invalid relationship type %q", r)
		}
	}
	for _, i := range t.ImpactType {
		if !i.Valid() {
			return fmt.Errorf("trust impact: invalid relationship impact %q", i)
		}
	}
	return nil
}

// Agent describes the actor's standing and character.
type Agent struct {
	AgentType AgentType
	Virtues   []Virtue
	Vices     []Vice
}

func (a Agent) Validate() error {
	if !a.AgentType.Valid() {
		return fmt.Errorf("agent: invalid agent type %q", a.AgentType)
	}
	for _, v := range a.Virtues {
		if !v.Valid() {
			return fmt.Errorf("agent: invalid virtue %q", v)
		}
	}
	for _, v := range a.Vices {
		if !v.Valid() {
			return fmt.Errorf("agent: invalid vice %q", v)
		}
	}
	return nil
}

// DutyAssessment lists the prima facie duties the action upholds and
// violates. A duty may appear in both lists; both occurrences contribute
// to their respective weighted sums.
type DutyAssessment struct {
	DutiesUpheld   []DutyType
	DutiesViolated []DutyType
}

func (d DutyAssessment) Validate() error {
	for _, duty := range d.DutiesUpheld {
		if !duty.Valid() {
			return fmt.Errorf("duty assessment: invalid upheld duty %q", duty)
		}
	}
	for _, duty := range d.DutiesViolated {
		if !duty.Valid() {
			return fmt.Errorf("duty assessment: invalid violated duty %q", duty)
		}
	}
	return nil
}

// MoralContext is the complete structured record of facts about one action.
// It is built once per evaluated action and never mutated afterward.
type MoralContext struct {
	ActionDescription string
	Universalized     UniversalizedResult
	Consequences      Consequences
	Cooperation       CooperativeOutcome
	Trust             TrustImpact
	Agent             Agent
	Duties            DutyAssessment
}

// NewMoralContext assembles a context from its six sub-records, applying
// defaults and validating every enumerated field. A nil sub-record takes
// its default value; an omitted cooperative outcome defaults to stable.
// Construction fails atomically: on error no context is returned.
func NewMoralContext(
	description string,
	universalized *UniversalizedResult,
	consequences *Consequences,
	cooperation *CooperativeOutcome,
	trust *TrustImpact,
	agent *Agent,
	duties *DutyAssessment,
) (*MoralContext, error) {
	if cooperation == nil {
		cooperation = &CooperativeOutcome{Stable: true}
	}
	c := &MoralContext{
		ActionDescription: description,
		Cooperation:       *cooperation,
	}
	if universalized != nil {
		c.Universalized = *universalized
	}
	if consequences != nil {
		c.Consequences = *consequences
	}
	if trust != nil {
		c.Trust = *trust
	}
	if agent != nil {
		c.Agent = *agent
	}
	if duties != nil {
		c.Duties = *duties
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *MoralContext) applyDefaults() {
	if c.ActionDescription == "" {
		c.ActionDescription = DefaultActionDescription
	}
	if c.Consequences.TimeHorizon == "" {
		c.Consequences.TimeHorizon = HorizonMedium
	}
	if c.Agent.AgentType == "" {
		c.Agent.AgentType = AgentStranger
	}
}

// Validate checks every enumerated field of every sub-record.
func (c *MoralContext) Validate() error {
	if err := c.Consequences.Validate(); err != nil {
		return err
	}
	if err := c.Trust.Validate(); err != nil {
		return err
	}
	if err := c.Agent.Validate(); err != nil {
		return err
	}
	return c.Duties.Validate()
}
