package domain

import "fmt"

// Enumerated vocabulary used by MoralContext. Values serialize under their
// canonical uppercase names, and parsing is an exact, case-sensitive lookup
// against the tables below. Unknown names are an error, never a default.

type AgentType string

const (
	AgentStranger      AgentType = "STRANGER"
	AgentFriend        AgentType = "FRIEND"
	AgentFamilyMember  AgentType = "FAMILY_MEMBER"
	AgentStateOfficial AgentType = "STATE_OFFICIAL"
	AgentMaster        AgentType = "MASTER"
	AgentSlave         AgentType = "SLAVE"
	AgentVirtuous      AgentType = "VIRTUOUS"
	AgentVicious       AgentType = "VICIOUS"
)

type Virtue string

const (
	VirtueHonesty    Virtue = "HONESTY"
	VirtueCourage    Virtue = "COURAGE"
	VirtueLoyalty    Virtue = "LOYALTY"
	VirtueCompassion Virtue = "COMPASSION"
	VirtueJustice    Virtue = "JUSTICE"
	VirtueTemperance Virtue = "TEMPERANCE"
	VirtueWisdom     Virtue = "WISDOM"
)

type Vice string

const (
	ViceDishonesty  Vice = "DISHONESTY"
	ViceCowardice   Vice = "COWARDICE"
	ViceBetrayal    Vice = "BETRAYAL"
	ViceCruelty     Vice = "CRUELTY"
	ViceUnfairness  Vice = "UNFAIRNESS"
	ViceIndulgence  Vice = "INDULGENCE"
	ViceFoolishness Vice = "FOOLISHNESS"
)

// DutyType is one of Ross's prima facie duties.
type DutyType string

const (
	DutyFidelity        DutyType = "FIDELITY"
	DutyReparation      DutyType = "REPARATION"
	DutyGratitude       DutyType = "GRATITUDE"
	DutyJustice         DutyType = "JUSTICE"
	DutyBeneficence     DutyType = "BENEFICENCE"
	DutySelfImprovement DutyType = "SELF_IMPROVEMENT"
	DutyNonMaleficence  DutyType = "NON_MALEFICENCE"
)

type RelationshipType string

const (
	RelParentChild        RelationshipType = "PARENT_CHILD"
	RelSpouseSpouse       RelationshipType = "SPOUSE_SPOUSE"
	RelSiblingSibling     RelationshipType = "SIBLING_SIBLING"
	RelFamilyMember       RelationshipType = "FAMILY_MEMBER"
	RelFriendFriend       RelationshipType = "FRIEND_FRIEND"
	RelRomanticPartner    RelationshipType = "ROMANTIC_PARTNER"
	RelCaregiverReceiver  RelationshipType = "CAREGIVER_RECEIVER"
	RelTeacherStudent     RelationshipType = "TEACHER_STUDENT"
	RelNeighborNeighbor   RelationshipType = "NEIGHBOR_NEIGHBOR"
	RelCommunityMember    RelationshipType = "COMMUNITY_MEMBER"
	RelColleagueColleague RelationshipType = "COLLEAGUE_COLLEAGUE"
	RelCitizenState       RelationshipType = "CITIZEN_STATE"
	RelProfessionalClient RelationshipType = "PROFESSIONAL_CLIENT"
	RelStrangerStranger   RelationshipType = "STRANGER_STRANGER"
	RelHumanHuman         RelationshipType = "HUMAN_HUMAN"
	RelEmployerEmployee   RelationshipType = "EMPLOYER_EMPLOYEE"
	RelBusinessCustomer   RelationshipType = "BUSINESS_CUSTOMER"
)

type RelationshipImpact string

const (
	ImpactNurtures      RelationshipImpact = "NURTURES"
	ImpactExploits      RelationshipImpact = "EXPLOITS"
	ImpactStrengthens   RelationshipImpact = "STRENGTHENS"
	ImpactWeakens       RelationshipImpact = "WEAKENS"
	ImpactBreachesTrust RelationshipImpact = "BREACHES_TRUST"
	ImpactBuildsTrust   RelationshipImpact = "BUILDS_TRUST"
)

// ImpactSubject names a person, role, or group an action can affect.
type ImpactSubject string

const (
	SubjectAgent             ImpactSubject = "AGENT"
	SubjectSelf              ImpactSubject = "SELF"
	SubjectFriend            ImpactSubject = "FRIEND"
	SubjectFamilyMember      ImpactSubject = "FAMILY_MEMBER"
	SubjectSpouse            ImpactSubject = "SPOUSE"
	SubjectChild             ImpactSubject = "CHILD"
	SubjectParent            ImpactSubject = "PARENT"
	SubjectStranger          ImpactSubject = "STRANGER"
	SubjectOfficial          ImpactSubject = "OFFICIAL"
	SubjectDissident         ImpactSubject = "DISSIDENT"
	SubjectCriminal          ImpactSubject = "CRIMINAL"
	SubjectEater             ImpactSubject = "EATER"
	SubjectFarmer            ImpactSubject = "FARMER"
	SubjectDonor             ImpactSubject = "DONOR"
	SubjectRecipient         ImpactSubject = "RECIPIENT"
	SubjectCaregiver         ImpactSubject = "CAREGIVER"
	SubjectTeacher           ImpactSubject = "TEACHER"
	SubjectStudent           ImpactSubject = "STUDENT"
	SubjectEmployer          ImpactSubject = "EMPLOYER"
	SubjectEmployee          ImpactSubject = "EMPLOYEE"
	SubjectSociety           ImpactSubject = "SOCIETY"
	SubjectCommunity         ImpactSubject = "COMMUNITY"
	SubjectGovernment        ImpactSubject = "GOVERNMENT"
	SubjectCitizens          ImpactSubject = "CITIZENS"
	SubjectHumanity          ImpactSubject = "HUMANITY"
	SubjectEnvironment       ImpactSubject = "ENVIRONMENT"
	SubjectBetrayedSpouse    ImpactSubject = "BETRAYED_SPOUSE"
	SubjectSavedPeople       ImpactSubject = "SAVED_PEOPLE"
	SubjectPersonOnSideTrack ImpactSubject = "PERSON_ON_SIDE_TRACK"
	SubjectDecisionMaker     ImpactSubject = "DECISION_MAKER"
	SubjectPushedPerson      ImpactSubject = "PUSHED_PERSON"
)

// TimeHorizon governs discounting in Consequences.EffectiveUtility.
type TimeHorizon string

const (
	HorizonShort  TimeHorizon = "SHORT"
	HorizonMedium TimeHorizon = "MEDIUM"
	HorizonLong   TimeHorizon = "LONG"
)

var agentTypeNames = nameTable(
	AgentStranger, AgentFriend, AgentFamilyMember, AgentStateOfficial,
	AgentMaster, AgentSlave, AgentVirtuous, AgentVicious,
)

var virtueNames = nameTable(
	VirtueHonesty, VirtueCourage, VirtueLoyalty, VirtueCompassion,
	VirtueJustice, VirtueTemperance, VirtueWisdom,
)

var viceNames = nameTable(
	ViceDishonesty, ViceCowardice, ViceBetrayal, ViceCruelty,
	ViceUnfairness, ViceIndulgence, ViceFoolishness,
)

var dutyTypeNames = nameTable(
	DutyFidelity, DutyReparation, DutyGratitude, DutyJustice,
	DutyBeneficence, DutySelfImprovement, DutyNonMaleficence,
)

var relationshipTypeNames = nameTable(
	RelParentChild, RelSpouseSpouse, RelSiblingSibling, RelFamilyMember,
	RelFriendFriend, RelRomanticPartner, RelCaregiverReceiver,
	RelTeacherStudent, RelNeighborNeighbor, RelCommunityMember,
	RelColleagueColleague, RelCitizenState, RelProfessionalClient,
	RelStrangerStranger, RelHumanHuman, RelEmployerEmployee,
	RelBusinessCustomer,
)

var relationshipImpactNames = nameTable(
	ImpactNurtures, ImpactExploits, ImpactStrengthens, ImpactWeakens,
	ImpactBreachesTrust, ImpactBuildsTrust,
)

var impactSubjectNames = nameTable(
	SubjectAgent, SubjectSelf, SubjectFriend, SubjectFamilyMember,
	SubjectSpouse, SubjectChild, SubjectParent, SubjectStranger,
	SubjectOfficial, SubjectDissident, SubjectCriminal, SubjectEater,
	SubjectFarmer, SubjectDonor, SubjectRecipient, SubjectCaregiver,
	SubjectTeacher, SubjectStudent, SubjectEmployer, SubjectEmployee,
	SubjectSociety, SubjectCommunity, SubjectGovernment, SubjectCitizens,
	SubjectHumanity, SubjectEnvironment, SubjectBetrayedSpouse,
	SubjectSavedPeople, SubjectPersonOnSideTrack, SubjectDecisionMaker,
	SubjectPushedPerson,
)

var timeHorizonNames = nameTable(HorizonShort, HorizonMedium, HorizonLong)

func nameTable[T ~string](values ...T) map[string]T {
	table := make(map[string]T, len(values))
	for _, v := range values {
		table[string(v)] = v
	}
	return table
}

func lookupName[T ~string](kind string, table map[string]T, name string) (T, error) {
	v, ok := table[name]
	if !ok {
		return "", fmt.Errorf("unknown %s %q", kind, name)
	}
	return v, nil
}

func ParseAgentType(name string) (AgentType, error) {
	return lookupName("agent type", agentTypeNames, name)
}

func ParseVirtue(name string) (Virtue, error) {
	return lookupName("virtue", virtueNames, name)
}

func ParseVice(name string) (Vice, error) {
	return lookupName("vice", viceNames, name)
}

func ParseDutyType(name string) (DutyType, error) {
	return lookupName("duty type", dutyTypeNames, name)
}

func ParseRelationshipType(name string) (RelationshipType, error) {
	return lookupName("relationship type", relationshipTypeNames, name)
}

func ParseRelationshipImpact(name string) (RelationshipImpact, error) {
	return lookupName("relationship impact", relationshipImpactNames, name)
}

func ParseImpactSubject(name string) (ImpactSubject, error) {
	return lookupName("impact subject", impactSubjectNames, name)
}

func ParseTimeHorizon(name string) (TimeHorizon, error) {
	return lookupName("time horizon", timeHorizonNames, name)
}

func (a AgentType) Valid() bool          { _, ok := agentTypeNames[string(a)]; return ok }
func (v Virtue) Valid() bool             { _, ok := virtueNames[string(v)]; return ok }
func (v Vice) Valid() bool               { _, ok := viceNames[string(v)]; return ok }
func (d DutyType) Valid() bool           { _, ok := dutyTypeNames[string(d)]; return ok }
func (r RelationshipType) Valid() bool   { _, ok := relationshipTypeNames[string(r)]; return ok }
func (r RelationshipImpact) Valid() bool { _, ok := relationshipImpactNames[string(r)]; return ok }
func (s ImpactSubject) Valid() bool      { _, ok := impactSubjectNames[string(s)]; return ok }
func (h TimeHorizon) Valid() bool        { _, ok := timeHorizonNames[string(h)]; return ok }
