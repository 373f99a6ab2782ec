package engine

import "github.com/alexanderramin/ethos/internal/domain"

// Utilitarian judges by discounted net utility, falling back to raw
// flourishing when the discounted reading is uninformative (zero).
type Utilitarian struct{}

func (Utilitarian) Name() string { return "Utilitarian" }

func (Utilitarian) Evaluate(_ string, ctx *domain.MoralContext) (domain.Verdict, error) {
	net := ctx.Consequences.EffectiveUtility()
	if net == 0 {
		net = ctx.Consequences.NetFlourishing
	}
	switch {
	case net > 0:
		return domain.UtilitarianPermissible, nil
	case net < 0:
		return domain.UtilitarianImpermissible, nil
	default:
		return domain.UtilitarianNeutral, nil
	}
}
