package engine

import "github.com/alexanderramin/ethos/internal/domain"

// Kantian applies the categorical-imperative test: any universalization
// failure condemns the act.
type Kantian struct{}

func (Kantian) Name() string { return "Kantian" }

func (Kantian) Evaluate(_ string, ctx *domain.MoralContext) (domain.Verdict, error) {
	if ctx.Universalized.SelfCollapse || ctx.Universalized.ContradictionInWill {
		return domain.KantianImpermissible, nil
	}
	return domain.KantianPermissible, nil
}
