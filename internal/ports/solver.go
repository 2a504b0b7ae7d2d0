package ports

import (
	"context"

	"github.com/aalvaropc/eulerseq/internal/domain"
)

// Solver answers a single problem.
type Solver interface {
	Solve(ctx context.Context, spec domain.ProblemSpec) (domain.Solution, error)
}
