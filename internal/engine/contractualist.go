package engine

import "github.com/alexanderramin/ethos/internal/domain"

// Contractualist marks impermissible any rule a reasonable party would
// reject: a trust breach or a net loss of societal trust.
type Contractualist struct{}

func (Contractualist) Name() string { return "Contractualist" }

func (Contractualist) Evaluate(_ string, ctx *domain.MoralContext) (domain.Verdict, error) {
	if ctx.Trust.Breach || ctx.Cooperation.SocietalTrustChange < 0 {
		return domain.ContractualistImpermissible, nil
	}
	return domain.ContractualistPermissible, nil
}
