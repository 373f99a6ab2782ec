package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/ethos/internal/contract"
	"github.com/alexanderramin/ethos/internal/domain"
)

func reportFixture() *contract.Report {
	return &contract.Report{
		Action:      "tell_a_lie",
		Description: "Lied to an official to protect a friend.",
		RanAt:       time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Results: []contract.EngineResult{
			{Framework: "Kantian", Verdict: "IMPERMISSIBLE", Display: "Impermissible",
				Quality: "Fails the categorical imperative test (cannot be universalized without contradiction)",
				Core:    domain.Bad},
			{Framework: "Utilitarian", Verdict: "PERMISSIBLE", Display: "Permissible",
				Quality: "Produces net positive utility/consequences",
				Core:    domain.Good},
			{Framework: "Ethics of Care", Verdict: "CARING", Display: "Caring",
				Quality: "Nurtures and maintains caring relationships",
				Core:    domain.Good},
		},
	}
}

func TestFormatReport(t *testing.T) {
	out := FormatReport(reportFixture())

	assert.Contains(t, out, "Moral evaluation: tell_a_lie")
	assert.Contains(t, out, "Lied to an official to protect a friend.")
	assert.Contains(t, out, "FRAMEWORK")
	assert.Contains(t, out, "Kantian")
	assert.Contains(t, out, "Impermissible")
	assert.Contains(t, out, "Ethics of Care")
	assert.Contains(t, out, "Caring")
	assert.Contains(t, out, "Agreement")
}

func TestFormatConsistency_Majority(t *testing.T) {
	out := FormatConsistency(reportFixture())
	assert.Contains(t, out, "Majority")
	assert.Contains(t, out, "Good")
	assert.NotContains(t, out, "Unanimous")
}

func TestFormatConsistency_Unanimous(t *testing.T) {
	report := &contract.Report{Results: []contract.EngineResult{
		{Framework: "Kantian", Core: domain.Bad},
		{Framework: "Rawlsian", Core: domain.Bad},
	}}
	out := FormatConsistency(report)
	assert.Contains(t, out, "Unanimous")
	assert.Contains(t, out, "Bad")
}

func TestFormatHistory(t *testing.T) {
	out := FormatHistory([]*contract.Report{reportFixture()})
	assert.Contains(t, out, "RAN AT")
	assert.Contains(t, out, "tell_a_lie")
	assert.Contains(t, out, "2026-03-14")

	assert.Contains(t, FormatHistory(nil), "No evaluations recorded.")
}

func TestFormatFrameworks(t *testing.T) {
	out := FormatFrameworks([]FrameworkInfo{
		{Name: "Nietzschean", Verdicts: []domain.Verdict{
			domain.NietzscheanMasterGood, domain.NietzscheanSlaveBad,
		}},
	})
	assert.Contains(t, out, "Nietzschean")
	assert.Contains(t, out, "Master Good")
	assert.Contains(t, out, "Slave Bad")
}
