package engine

import "github.com/alexanderramin/ethos/internal/domain"

// Nietzschean reads the action through will-to-power: is it active or
// reactive, life-affirming or life-denying, done from strength or from
// fear. Clauses are checked in fixed priority order; the first match wins.
type Nietzschean struct{}

func (Nietzschean) Name() string { return "Nietzschean" }

func (Nietzschean) Evaluate(_ string, ctx *domain.MoralContext) (domain.Verdict, error) {
	power := ctx.Consequences.PowerExpression
	flourishing := ctx.Consequences.NetFlourishing
	breach := ctx.Trust.Breach

	isActive := power > 2 && !breach
	isReactive := breach || power < 0
	isLifeAffirming := flourishing > 0 || power > 5
	isLifeDenying := flourishing < -5 || ctx.Cooperation.SocietalTrustChange < -3
	fromStrength := power > 3 && len(ctx.Agent.Virtues) > len(ctx.Agent.Vices)
	fromFear := power < 0 || !ctx.Cooperation.Stable

	switch {
	case isActive && isLifeAffirming && fromStrength:
		return domain.NietzscheanMasterGood, nil
	case isReactive && isLifeDenying && fromFear:
		return domain.NietzscheanSlaveBad, nil
	case !breach && flourishing >= 0:
		return domain.NietzscheanSlaveGood, nil
	default:
		return domain.NietzscheanSlaveBad, nil
	}
}
