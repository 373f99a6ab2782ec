package contract

import (
	"time"

	"github.com/alexanderramin/ethos/internal/domain"
)

// EngineResult bundles one framework's verdict for an evaluated action.
type EngineResult struct {
	Framework string            `json:"framework"`
	Verdict   string            `json:"verdict"`
	Display   string            `json:"display"`
	Quality   string            `json:"quality"`
	Core      domain.MoralValue `json:"core"`
}

// Report is the full cross-framework evaluation of one action.
type Report struct {
	ID          string         `json:"id,omitempty"`
	Action      string         `json:"action"`
	ContextName string         `json:"context_name,omitempty"`
	Description string         `json:"description"`
	RanAt       time.Time      `json:"ran_at"`
	Results     []EngineResult `json:"results"`
}

// Consistency summarizes how far the frameworks agree on one action.
type Consistency struct {
	GoodCount    int               `json:"good_count"`
	BadCount     int               `json:"bad_count"`
	NeutralCount int               `json:"neutral_count"`
	Majority     domain.MoralValue `json:"majority"`
	Unanimous    bool              `json:"unanimous"`
}

// Summarize computes the agreement summary across the report's results.
// Ties between the leading counts yield a NEUTRAL majority.
func (r *Report) Summarize() Consistency {
	var c Consistency
	for _, res := range r.Results {
		switch res.Core {
		case domain.Good:
			c.GoodCount++
		case domain.Bad:
			c.BadCount++
		default:
			c.NeutralCount++
		}
	}
	total := len(r.Results)
	switch {
	case c.GoodCount > c.BadCount && c.GoodCount > c.NeutralCount:
		c.Majority = domain.Good
	case c.BadCount > c.GoodCount && c.BadCount > c.NeutralCount:
		c.Majority = domain.Bad
	default:
		c.Majority = domain.Neutral
	}
	c.Unanimous = total > 0 &&
		(c.GoodCount == total || c.BadCount == total || c.NeutralCount == total)
	return c
}
