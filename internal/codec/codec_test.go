package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ethos/internal/codec"
	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/alexanderramin/ethos/internal/engine"
	"github.com/alexanderramin/ethos/internal/scenario"
)

func TestRoundTrip_Scenarios(t *testing.T) {
	for _, name := range scenario.Names() {
		t.Run(name, func(t *testing.T) {
			original := scenario.Get(name)
			require.NotNil(t, original)

			data, err := codec.Encode(original)
			require.NoError(t, err)

			decoded, err := codec.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, original, decoded)
		})
	}
}

func TestEncode_NilContext(t *testing.T) {
	_, err := codec.Encode(nil)
	assert.Error(t, err)
}

func TestEncode_SnakeCaseKeys(t *testing.T) {
	data, err := codec.Encode(scenario.Get("mass_surveillance"))
	require.NoError(t, err)

	doc := string(data)
	for _, key := range []string{
		`"action_description"`, `"universalized_result"`, `"self_collapse"`,
		`"contradiction_in_will"`, `"net_flourishing"`, `"net_utility"`,
		`"power_expression"`, `"time_horizon"`, `"individual_impact"`,
		`"cooperative_outcome"`, `"societal_trust_change"`, `"trust_impact"`,
		`"relationships_affected"`, `"impact_type"`, `"agent_type"`,
		`"duties_upheld"`, `"duties_violated"`,
	} {
		assert.Contains(t, doc, key)
	}
}

func TestDecode_EmptyDocumentGetsDefaults(t *testing.T) {
	ctx, err := codec.Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultActionDescription, ctx.ActionDescription)
	assert.Equal(t, domain.HorizonMedium, ctx.Consequences.TimeHorizon)
	assert.Equal(t, domain.AgentStranger, ctx.Agent.AgentType)
	assert.True(t, ctx.Cooperation.Stable)
}

func TestDecode_StableDefaultsTrue(t *testing.T) {
	// A document that never mentions cooperation is stable; one that sets
	// stable false keeps the false.
	ctx, err := codec.Decode([]byte(`{"consequences":{"net_flourishing":5}}`))
	require.NoError(t, err)
	assert.True(t, ctx.Cooperation.Stable)

	// The default carries through to the evaluators: positive flourishing
	// with stable cooperation and no traits reads as self-control.
	v, err := engine.Aristotelian{}.Evaluate("x", ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.AristotelianContinent, v)

	ctx, err = codec.Decode([]byte(`{"cooperative_outcome":{"stable":false}}`))
	require.NoError(t, err)
	assert.False(t, ctx.Cooperation.Stable)

	// Same when the record is present but the key is not.
	ctx, err = codec.Decode([]byte(`{"cooperative_outcome":{"societal_trust_change":1}}`))
	require.NoError(t, err)
	assert.True(t, ctx.Cooperation.Stable)
}

func TestRoundTrip_KeepsInstability(t *testing.T) {
	original := scenario.Get("mass_surveillance")
	require.False(t, original.Cooperation.Stable)

	data, err := codec.Encode(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"stable": false`)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)
	assert.False(t, decoded.Cooperation.Stable)
}

func TestDecode_Failures(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed json", `{`, "decoding context"},
		{"unknown horizon", `{"consequences":{"time_horizon":"DECADE"}}`, "DECADE"},
		{"unknown impact subject", `{"consequences":{"time_horizon":"SHORT","individual_impact":{"ALIEN":1}}}`, "ALIEN"},
		{"unknown relationship", `{"trust_impact":{"relationships_affected":["PET_OWNER"]}}`, "PET_OWNER"},
		{"unknown impact type", `{"trust_impact":{"impact_type":["DESTROYS"]}}`, "DESTROYS"},
		{"unknown agent type", `{"agent":{"agent_type":"ROBOT"}}`, "ROBOT"},
		{"unknown virtue", `{"agent":{"virtues":["PUNCTUALITY"]}}`, "PUNCTUALITY"},
		{"unknown vice", `{"agent":{"vices":["SLOTH"]}}`, "SLOTH"},
		{"unknown duty", `{"duty_assessment":{"duties_upheld":["OBEDIENCE"]}}`, "OBEDIENCE"},
		{"lowercase name", `{"consequences":{"time_horizon":"short"}}`, "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, err := codec.Decode([]byte(tc.doc))
			require.Error(t, err)
			assert.Nil(t, ctx)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
