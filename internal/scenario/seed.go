package scenario

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ethos/internal/service"
)

// Seed stores every built-in scenario that is not already present.
// Existing contexts are left untouched. Returns the names it stored.
func Seed(ctx context.Context, contexts service.ContextService) ([]string, error) {
	var seeded []string
	for _, name := range Names() {
		exists, err := contexts.ContextExists(ctx, name)
		if err != nil {
			return seeded, fmt.Errorf("seeding scenario %q: %w", name, err)
		}
		if exists {
			continue
		}
		if err := contexts.SaveContext(ctx, name, Get(name)); err != nil {
			return seeded, fmt.Errorf("seeding scenario %q: %w", name, err)
		}
		seeded = append(seeded, name)
	}
	return seeded, nil
}
