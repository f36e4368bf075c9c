package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/spf13/pflag"
)

// resolvePlan loads a stored plan by full id, unique id prefix, or
// "latest". An empty input also means the newest plan.
func resolvePlan(ctx context.Context, app *App, input string) (*contract.StoredPlan, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "latest") {
		return app.Plans.Latest(ctx)
	}

	plans, err := app.Plans.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, p := range plans {
		if p.ID == input {
			return app.Plans.Get(ctx, p.ID)
		}
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("plan not found: %q", input)
	case 1:
		return app.Plans.Get(ctx, matches[0])
	default:
		return nil, fmt.Errorf("plan ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// planArg returns the optional first positional argument.
func planArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// addSeedFlag registers --seed on fs.
func addSeedFlag(fs *pflag.FlagSet) {
	fs.Int64("seed", 0, "Seed for placement order (default: STUDYWEEK_SEED, else the clock)")
}

// placementSeed resolves the seed: --seed first, then the configured seed,
// then the clock.
func placementSeed(fs *pflag.FlagSet, app *App) (*int64, error) {
	if fs.Changed("seed") {
		seed, err := fs.GetInt64("seed")
		if err != nil {
			return nil, fmt.Errorf("reading --seed: %w", err)
		}
		return &seed, nil
	}
	if app.Seed != nil {
		seed := *app.Seed
		return &seed, nil
	}
	seed := app.now().UnixNano()
	return &seed, nil
}
