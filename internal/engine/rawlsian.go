package engine

import "github.com/alexanderramin/ethos/internal/domain"

// Rawlsian marks unjust any action that erodes societal trust.
type Rawlsian struct{}

func (Rawlsian) Name() string { return "Rawlsian" }

func (Rawlsian) Evaluate(_ string, ctx *domain.MoralContext) (domain.Verdict, error) {
	if ctx.Cooperation.SocietalTrustChange < 0 {
		return domain.RawlsianUnjust, nil
	}
	return domain.RawlsianJust, nil
}
