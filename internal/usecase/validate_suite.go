package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/ports"
)

type ValidateSuite struct {
	suites ports.SuiteLoader
}

func NewValidateSuite(sl ports.SuiteLoader) *ValidateSuite {
	return &ValidateSuite{suites: sl}
}

// Execute loads a suite and checks every case spec without solving anything.
func (uc *ValidateSuite) Execute(ctx context.Context, suitePath string) error {
	suite, err := uc.suites.LoadSuite(suitePath)
	if err != nil {
		return err
	}

	seen := map[string]bool{}
	for _, c := range suite.Cases {
		if err := ctx.Err(); err != nil {
			return err
		}
		if seen[c.Name] {
			return &domain.OpError{
				Op:   "suite.validate",
				Kind: domain.KindInvalidConfig,
				Path: suitePath,
				Err:  fmt.Errorf("duplicate case name %q", c.Name),
			}
		}
		seen[c.Name] = true

		if err := ValidateSpec(c.Spec); err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	return nil
}
