package usecase

import (
	"context"
	"time"

	"github.com/aalvaropc/eulerseq/internal/divisors"
	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/lazy"
	"github.com/aalvaropc/eulerseq/internal/ports"
	"github.com/aalvaropc/eulerseq/internal/primes"
	"github.com/aalvaropc/eulerseq/internal/triangular"
)

// MaxPrimeCount bounds how many primes a single request may list.
const MaxPrimeCount = 1_000_000

// MaxRecursivePrimeCount bounds requests served by the recursive sieve, whose
// cost grows with the square of the prime index.
const MaxRecursivePrimeCount = 20_000

func primeLimit(st primes.Strategy) int {
	if st == primes.Recursive {
		return MaxRecursivePrimeCount
	}
	return MaxPrimeCount
}

func checkPrimeLimit(op string, spec domain.ProblemSpec, st primes.Strategy) error {
	limit := primeLimit(st)
	if spec.Count > limit || spec.Index > limit {
		return domain.InvalidArgument(op, "at most %d primes per request with the %s strategy", limit, st)
	}
	return nil
}

// ctxCheckEvery is how many primes are pulled between context checks.
const ctxCheckEvery = 256

type SolveProblem struct {
	strategy string
	search   *triangular.Search
	now      func() time.Time
}

type SolveOption func(*SolveProblem)

// WithDefaultStrategy sets the sieve strategy used when a spec has none.
func WithDefaultStrategy(s string) SolveOption {
	return func(uc *SolveProblem) { uc.strategy = s }
}

// WithSearch replaces the triangular search (e.g., with a custom divisor counter).
func WithSearch(s *triangular.Search) SolveOption {
	return func(uc *SolveProblem) {
		if s != nil {
			uc.search = s
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) SolveOption {
	return func(uc *SolveProblem) { uc.now = now }
}

func NewSolveProblem(opts ...SolveOption) *SolveProblem {
	uc := &SolveProblem{
		strategy: string(primes.DefaultStrategy),
		search:   triangular.NewSearch(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ ports.Solver = (*SolveProblem)(nil)

// Solve implements ports.Solver.
func (uc *SolveProblem) Solve(ctx context.Context, spec domain.ProblemSpec) (domain.Solution, error) {
	return uc.Execute(ctx, spec)
}

// Execute validates spec and answers it.
func (uc *SolveProblem) Execute(ctx context.Context, spec domain.ProblemSpec) (domain.Solution, error) {
	if err := ValidateSpec(spec); err != nil {
		return domain.Solution{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Solution{}, err
	}

	start := uc.now()

	var (
		sol domain.Solution
		err error
	)
	switch spec.Problem {
	case domain.ProblemPrimes:
		sol, err = uc.solvePrimes(ctx, spec)
	case domain.ProblemTriangle:
		sol, err = uc.solveTriangle(ctx, spec)
	case domain.ProblemDivisors:
		sol = solveDivisors(spec)
	}
	if err != nil {
		return domain.Solution{}, err
	}

	sol.Problem = spec.Problem
	sol.ElapsedMS = uc.now().Sub(start).Milliseconds()
	return sol, nil
}

func (uc *SolveProblem) solvePrimes(ctx context.Context, spec domain.ProblemSpec) (domain.Solution, error) {
	name := spec.Strategy
	if name == "" {
		name = uc.strategy
	}
	st, err := primes.ParseStrategy(name)
	if err != nil {
		return domain.Solution{}, err
	}
	if err := checkPrimeLimit("solve.primes", spec, st); err != nil {
		return domain.Solution{}, err
	}
	seq, err := primes.New(string(st))
	if err != nil {
		return domain.Solution{}, err
	}

	want := spec.Count
	if spec.Index > 0 {
		want = spec.Index
	}

	values := make([]int64, 0, min(want, 4096))
	i := 0
	for p := range lazy.Take(seq, want).All() {
		i++
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return domain.Solution{}, err
			}
		}
		values = append(values, int64(p))
	}
	if len(values) < want {
		return domain.Solution{}, &domain.OpError{Op: "solve.primes", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}

	sol := domain.Solution{
		Strategy: string(st),
		Value:    values[len(values)-1],
		Steps:    int64(len(values)),
	}
	if spec.Index == 0 {
		sol.Values = values
	}
	return sol, nil
}

func (uc *SolveProblem) solveTriangle(ctx context.Context, spec domain.ProblemSpec) (domain.Solution, error) {
	r, err := uc.search.Find(ctx, spec.Threshold)
	if err != nil {
		return domain.Solution{}, err
	}
	return domain.Solution{
		Value:    r.Value,
		Divisors: r.Divisors,
		Steps:    r.Index,
	}, nil
}

func solveDivisors(spec domain.ProblemSpec) domain.Solution {
	ds := divisors.Of(spec.N)
	return domain.Solution{
		Value:    spec.N,
		Values:   ds,
		Divisors: len(ds),
	}
}

// ValidateSpec checks a problem spec without solving it.
func ValidateSpec(spec domain.ProblemSpec) error {
	const op = "solve.validate"

	switch spec.Problem {
	case domain.ProblemPrimes:
		st := primes.Iterative
		if spec.Strategy != "" {
			parsed, err := primes.ParseStrategy(spec.Strategy)
			if err != nil {
				return err
			}
			st = parsed
		}
		if spec.Index < 0 {
			return domain.InvalidArgument(op, "index must be >= 1, got %d", spec.Index)
		}
		if spec.Index == 0 && spec.Count < 1 {
			return domain.InvalidArgument(op, "count must be >= 1, got %d", spec.Count)
		}
		// An unset strategy resolves at solve time, so only the global
		// bound applies here.
		if err := checkPrimeLimit(op, spec, st); err != nil {
			return err
		}
	case domain.ProblemTriangle:
		if spec.Threshold < 0 {
			return domain.InvalidArgument(op, "threshold must be >= 0, got %d", spec.Threshold)
		}
	case domain.ProblemDivisors:
		if spec.N < 1 {
			return domain.InvalidArgument(op, "n must be >= 1, got %d", spec.N)
		}
	default:
		return domain.Unsupported(op, "unknown problem %q (expected primes|triangle|divisors)", spec.Problem)
	}
	return nil
}
