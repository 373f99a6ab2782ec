package engine

import "github.com/alexanderramin/ethos/internal/domain"

// Aristotelian crosses "right action" (flourishing sign, stability) with
// "right desire" (virtues vs. vices) into the four character states.
type Aristotelian struct{}

func (Aristotelian) Name() string { return "Aristotelian" }

func (Aristotelian) Evaluate(_ string, ctx *domain.MoralContext) (domain.Verdict, error) {
	flourishing := ctx.Consequences.NetFlourishing
	stable := ctx.Cooperation.Stable
	hasVirtues := len(ctx.Agent.Virtues) > 0
	hasVices := len(ctx.Agent.Vices) > 0

	// Short-term gain masking a long-run loss is weakness of will,
	// whatever the main classification would say.
	if flourishing > 0 &&
		ctx.Consequences.TimeHorizon == domain.HorizonShort &&
		ctx.Consequences.EffectiveUtility() < 0 {
		return domain.AristotelianIncontinent, nil
	}

	switch {
	case flourishing < 0 && !stable:
		return domain.AristotelianVicious, nil
	case flourishing < 0:
		if hasVices {
			return domain.AristotelianVicious, nil
		}
		return domain.AristotelianIncontinent, nil
	case flourishing > 0 && stable:
		if hasVirtues && !hasVices {
			return domain.AristotelianVirtuous, nil
		}
		return domain.AristotelianContinent, nil
	case flourishing > 0:
		if hasVirtues {
			return domain.AristotelianContinent, nil
		}
		return domain.AristotelianIncontinent, nil
	default: // flourishing == 0
		if stable {
			return domain.AristotelianContinent, nil
		}
		return domain.AristotelianIncontinent, nil
	}
}
