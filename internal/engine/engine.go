// Package engine holds the per-framework evaluators and the runner that
// fans one moral context out to all of them. Every evaluator is a pure
// function of its inputs; engines share no state and their order of
// invocation cannot change any verdict, only display order.
package engine

import (
	"fmt"

	"github.com/alexanderramin/ethos/internal/contract"
	"github.com/alexanderramin/ethos/internal/domain"
)

// Engine is one ethical framework's evaluation function over a context.
type Engine interface {
	// Name is the framework's display name, e.g. "Kantian".
	Name() string
	// Evaluate judges the action described by ctx. The action label is an
	// opaque identifier used for reporting only.
	Evaluate(action string, ctx *domain.MoralContext) (domain.Verdict, error)
}

// Runner invokes all registered engines against one context. The engine
// list is built once and never mutated.
type Runner struct {
	engines []Engine
}

// NewRunner builds a runner over the canonical fixed framework ordering.
func NewRunner() *Runner {
	return &Runner{
		engines: []Engine{
			Kantian{},
			Utilitarian{},
			Aristotelian{},
			Contractualist{},
			Rossian{},
			Nietzschean{},
			Care{},
			Rawlsian{},
		},
	}
}

// Engines returns the engines in display order.
func (r *Runner) Engines() []Engine {
	out := make([]Engine, len(r.engines))
	copy(out, r.engines)
	return out
}

// Run evaluates the context under every framework and returns the results
// in the fixed display order. A single evaluator error fails the whole run;
// there is no partial aggregation.
func (r *Runner) Run(action string, ctx *domain.MoralContext) ([]contract.EngineResult, error) {
	results := make([]contract.EngineResult, 0, len(r.engines))
	for _, eng := range r.engines {
		verdict, err := eng.Evaluate(action, ctx)
		if err != nil {
			return nil, fmt.Errorf("%s engine: %w", eng.Name(), err)
		}
		results = append(results, contract.EngineResult{
			Framework: eng.Name(),
			Verdict:   verdict.Name(),
			Display:   verdict.Display(),
			Quality:   verdict.Quality(),
			Core:      verdict.Core(),
		})
	}
	return results, nil
}
