package domain

import "strings"

// MoralValue is the universal three-valued outcome scale every
// framework-specific verdict reduces to.
type MoralValue string

const (
	Good    MoralValue = "GOOD"
	Bad     MoralValue = "BAD"
	Neutral MoralValue = "NEUTRAL"
)

func (v MoralValue) IsPositive() bool { return v == Good }
func (v MoralValue) IsNegative() bool { return v == Bad }
func (v MoralValue) IsNeutral() bool  { return v == Neutral }

// Display returns the title-cased name, e.g. "Good".
func (v MoralValue) Display() string { return titleCase(string(v), "_") }

// Verdict is the contract every framework-specific outcome type implements.
// The Core mapping is fixed and hand-specified per value, not computed.
type Verdict interface {
	// Name is the canonical uppercase value name, e.g. "MASTER_GOOD".
	Name() string
	// Display is the human-readable form of the name.
	Display() string
	// Core reduces this verdict to the universal moral value.
	Core() MoralValue
	// Quality is the fixed rationale text for this value.
	Quality() string
}

// titleCase turns "MASTER_GOOD" into "Master_Good" joined by sep.
func titleCase(name, sep string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, sep)
}

// KantianVerdict is the outcome of the categorical-imperative test.
type KantianVerdict string

const (
	KantianPermissible   KantianVerdict = "PERMISSIBLE"
	KantianImpermissible KantianVerdict = "IMPERMISSIBLE"
)

func (v KantianVerdict) Name() string    { return string(v) }
func (v KantianVerdict) Display() string { return titleCase(string(v), "_") }

func (v KantianVerdict) Core() MoralValue {
	if v == KantianPermissible {
		return Good
	}
	return Bad
}

func (v KantianVerdict) Quality() string {
	if v == KantianPermissible {
		return "Passes the categorical imperative test (universalizable without contradiction)"
	}
	return "Fails the categorical imperative test (cannot be universalized without contradiction)"
}

// UtilitarianVerdict is the outcome of the net-utility calculus.
type UtilitarianVerdict string

const (
	UtilitarianPermissible   UtilitarianVerdict = "PERMISSIBLE"
	UtilitarianImpermissible UtilitarianVerdict = "IMPERMISSIBLE"
	UtilitarianNeutral       UtilitarianVerdict = "NEUTRAL"
)

func (v UtilitarianVerdict) Name() string    { return string(v) }
func (v UtilitarianVerdict) Display() string { return titleCase(string(v), "_") }

func (v UtilitarianVerdict) Core() MoralValue {
	switch v {
	case UtilitarianPermissible:
		return Good
	case UtilitarianImpermissible:
		return Bad
	default:
		return Neutral
	}
}

func (v UtilitarianVerdict) Quality() string {
	switch v {
	case UtilitarianPermissible:
		return "Produces net positive utility/consequences"
	case UtilitarianImpermissible:
		return "Produces net negative utility/consequences"
	default:
		return "Neutral impact on overall utility"
	}
}

// AristotelianVerdict is one of Aristotle's four character states from the
// Nicomachean Ethics.
type AristotelianVerdict string

const (
	AristotelianVirtuous    AristotelianVerdict = "VIRTUOUS"
	AristotelianVicious     AristotelianVerdict = "VICIOUS"
	AristotelianContinent   AristotelianVerdict = "CONTINENT"
	AristotelianIncontinent AristotelianVerdict = "INCONTINENT"
)

func (v AristotelianVerdict) Name() string    { return string(v) }
func (v AristotelianVerdict) Display() string { return titleCase(string(v), "_") }

func (v AristotelianVerdict) Core() MoralValue {
	switch v {
	case AristotelianVirtuous:
		return Good
	case AristotelianVicious:
		return Bad
	default: // CONTINENT or INCONTINENT
		return Neutral
	}
}

func (v AristotelianVerdict) Quality() string {
	switch v {
	case AristotelianVirtuous:
		return "Excellence of character (right action + right desire)"
	case AristotelianVicious:
		return "Corruption of character (wrong action + wrong desire)"
	case AristotelianContinent:
		return "Self-control (right action + wrong desire)"
	default:
		return "Weakness of will (wrong action + right desire)"
	}
}

// ContractualistVerdict is the outcome of the reasonable-rejection test.
type ContractualistVerdict string

const (
	ContractualistPermissible   ContractualistVerdict = "PERMISSIBLE"
	ContractualistImpermissible ContractualistVerdict = "IMPERMISSIBLE"
)

func (v ContractualistVerdict) Name() string    { return string(v) }
func (v ContractualistVerdict) Display() string { return titleCase(string(v), "_") }

func (v ContractualistVerdict) Core() MoralValue {
	if v == ContractualistPermissible {
		return Good
	}
	return Bad
}

func (v ContractualistVerdict) Quality() string {
	if v == ContractualistPermissible {
		return "Reasonable persons could not reject this principle"
	}
	return "Reasonable persons would reject this principle"
}

// RossianVerdict is the outcome of weighing prima facie duties.
type RossianVerdict string

const (
	RossianPermissible   RossianVerdict = "PERMISSIBLE"
	RossianImpermissible RossianVerdict = "IMPERMISSIBLE"
	RossianConflicting   RossianVerdict = "CONFLICTING"
)

func (v RossianVerdict) Name() string    { return string(v) }
func (v RossianVerdict) Display() string { return titleCase(string(v), "_") }

func (v RossianVerdict) Core() MoralValue {
	switch v {
	case RossianPermissible:
		return Good
	case RossianImpermissible:
		return Bad
	default:
		return Neutral
	}
}

func (v RossianVerdict) Quality() string {
	switch v {
	case RossianPermissible:
		return "Upheld duties outweigh violated duties"
	case RossianImpermissible:
		return "Violated duties outweigh upheld duties"
	default:
		return "Duties genuinely conflict; no clear resolution"
	}
}

// NietzscheanVerdict is a valuation under master vs. slave morality and the
// will to power.
type NietzscheanVerdict string

const (
	NietzscheanMasterGood NietzscheanVerdict = "MASTER_GOOD"
	NietzscheanMasterBad  NietzscheanVerdict = "MASTER_BAD"
	NietzscheanSlaveGood  NietzscheanVerdict = "SLAVE_GOOD"
	NietzscheanSlaveBad   NietzscheanVerdict = "SLAVE_BAD"
)

func (v NietzscheanVerdict) Name() string { return string(v) }

// Display replaces the underscore with a space, e.g. "Master Good".
func (v NietzscheanVerdict) Display() string { return titleCase(string(v), " ") }

func (v NietzscheanVerdict) Core() MoralValue {
	switch v {
	case NietzscheanMasterGood, NietzscheanSlaveGood:
		return Good
	default:
		return Bad
	}
}

func (v NietzscheanVerdict) Quality() string {
	switch v {
	case NietzscheanMasterGood:
		return "Life-affirming master virtue (noble, powerful)"
	case NietzscheanMasterBad:
		return "Life-denying master vice (contemptible, weak)"
	case NietzscheanSlaveGood:
		return "Slave virtue (meek, humble, pious)"
	default:
		return "Slave vice (proud, powerful, 'evil')"
	}
}

// CareVerdict is the outcome of the ethics-of-care relational reading.
type CareVerdict string

const (
	CareCaring   CareVerdict = "CARING"
	CareUncaring CareVerdict = "UNCARING"
	CareNeutral  CareVerdict = "NEUTRAL"
)

func (v CareVerdict) Name() string    { return string(v) }
func (v CareVerdict) Display() string { return titleCase(string(v), "_") }

func (v CareVerdict) Core() MoralValue {
	switch v {
	case CareCaring:
		return Good
	case CareUncaring:
		return Bad
	default:
		return Neutral
	}
}

func (v CareVerdict) Quality() string {
	switch v {
	case CareCaring:
		return "Nurtures and maintains caring relationships"
	case CareUncaring:
		return "Harms or exploits relationships"
	default:
		return "Neutral impact on relationships"
	}
}

// RawlsianVerdict is the outcome of the fairness reading from behind the
// veil of ignorance.
type RawlsianVerdict string

const (
	RawlsianJust    RawlsianVerdict = "JUST"
	RawlsianUnjust  RawlsianVerdict = "UNJUST"
	RawlsianNeutral RawlsianVerdict = "NEUTRAL"
)

func (v RawlsianVerdict) Name() string    { return string(v) }
func (v RawlsianVerdict) Display() string { return titleCase(string(v), "_") }

func (v RawlsianVerdict) Core() MoralValue {
	switch v {
	case RawlsianJust:
		return Good
	case RawlsianUnjust:
		return Bad
	default:
		return Neutral
	}
}

func (v RawlsianVerdict) Quality() string {
	switch v {
	case RawlsianJust:
		return "Promotes fair social arrangements (just)"
	case RawlsianUnjust:
		return "Creates or maintains unfair inequality (unjust)"
	default:
		return "Neutral impact on social justice"
	}
}
