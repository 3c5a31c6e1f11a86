package health

import (
	"context"
	"fmt"

	"postalform/internal/core/domain/postalcode"
	"postalform/internal/platform/health"
)

// RulesChecker self-tests the compiled postal code pattern against the
// example codes of every format family.
type RulesChecker struct {
	families []postalcode.Family
	match    func(string) bool
}

func NewRulesChecker() *RulesChecker {
	return &RulesChecker{
		families: postalcode.Families(),
		match:    postalcode.MatchesPattern,
	}
}

func (c *RulesChecker) Name() string {
	return "postal_code_rules"
}

func (c *RulesChecker) Check(ctx context.Context) health.CheckResult {
	select {
	case <-ctx.Done():
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "postal code rules check cancelled",
			Error:   ctx.Err().Error(),
		}
	default:
	}

	examples := 0
	for _, family := range c.families {
		for _, example := range family.Examples {
			if !c.match(example) {
				return health.CheckResult{
					Status:  health.StatusUnhealthy,
					Message: "postal code pattern rejects a known example",
					Error:   fmt.Sprintf("family %s: %q did not match", family.Name, example),
				}
			}
			examples++
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d formats, %d examples matched", len(c.families), examples),
	}
}
