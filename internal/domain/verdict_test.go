package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictCoreTotality(t *testing.T) {
	// Every value of every verdict type must map to a core value and carry a
	// non-empty quality text.
	all := []Verdict{
		KantianPermissible, KantianImpermissible,
		UtilitarianPermissible, UtilitarianImpermissible, UtilitarianNeutral,
		AristotelianVirtuous, AristotelianVicious, AristotelianContinent, AristotelianIncontinent,
		ContractualistPermissible, ContractualistImpermissible,
		RossianPermissible, RossianImpermissible, RossianConflicting,
		NietzscheanMasterGood, NietzscheanMasterBad, NietzscheanSlaveGood, NietzscheanSlaveBad,
		CareCaring, CareUncaring, CareNeutral,
		RawlsianJust, RawlsianUnjust, RawlsianNeutral,
	}
	for _, v := range all {
		core := v.Core()
		assert.Contains(t, []MoralValue{Good, Bad, Neutral}, core, "%s", v.Name())
		assert.NotEmpty(t, v.Quality(), "%s", v.Name())
		assert.NotEmpty(t, v.Display(), "%s", v.Name())
	}
}

func TestVerdictCoreMapping(t *testing.T) {
	cases := []struct {
		verdict Verdict
		want    MoralValue
	}{
		{KantianPermissible, Good},
		{KantianImpermissible, Bad},
		{UtilitarianNeutral, Neutral},
		{AristotelianVirtuous, Good},
		{AristotelianVicious, Bad},
		{AristotelianContinent, Neutral},
		{AristotelianIncontinent, Neutral},
		{RossianConflicting, Neutral},
		{NietzscheanMasterGood, Good},
		{NietzscheanMasterBad, Bad},
		{NietzscheanSlaveGood, Good},
		{NietzscheanSlaveBad, Bad},
		{CareUncaring, Bad},
		{RawlsianJust, Good},
		{RawlsianNeutral, Neutral},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.verdict.Core(), "%s", tc.verdict.Name())
	}
}

func TestVerdictDisplay(t *testing.T) {
	assert.Equal(t, "Permissible", KantianPermissible.Display())
	assert.Equal(t, "Incontinent", AristotelianIncontinent.Display())
	// Nietzschean verdicts join their words with a space, not an underscore.
	assert.Equal(t, "Master Good", NietzscheanMasterGood.Display())
	assert.Equal(t, "Slave Bad", NietzscheanSlaveBad.Display())
	assert.Equal(t, "Good", Good.Display())
	assert.Equal(t, "Neutral", Neutral.Display())
}

func TestMoralValuePredicates(t *testing.T) {
	assert.True(t, Good.IsPositive())
	assert.True(t, Bad.IsNegative())
	assert.True(t, Neutral.IsNeutral())
	assert.False(t, Good.IsNegative())
	assert.False(t, Neutral.IsPositive())
}
