package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/ports"
	ucassert "github.com/aalvaropc/eulerseq/internal/usecase/assert"
)

type RunSuite struct {
	suites ports.SuiteLoader
	solver ports.Solver
	store  ports.ArtifactStore
	logger *slog.Logger
	now    func() time.Time

	parallel int
}

type RunOption func(*RunSuite)

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunSuite) {
		if l != nil {
			uc.logger = l
		}
	}
}

func WithRunClock(now func() time.Time) RunOption {
	return func(uc *RunSuite) { uc.now = now }
}

// WithParallelism solves up to n cases at once. Values below 1 mean 1.
// Results keep the suite's case order either way.
func WithParallelism(n int) RunOption {
	return func(uc *RunSuite) { uc.parallel = max(1, n) }
}

// NewRunSuite wires the suite runner. store may be nil to skip persistence.
func NewRunSuite(sl ports.SuiteLoader, solver ports.Solver, store ports.ArtifactStore, opts ...RunOption) *RunSuite {
	uc := &RunSuite{
		suites: sl,
		solver: solver,
		store:  store,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,

		parallel: 1,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute solves every case of the suite and evaluates its assertions.
// A case that fails to solve is recorded and the run continues; a cancelled
// context stops the run and returns what was collected so far.
func (uc *RunSuite) Execute(ctx context.Context, suitePath string) (domain.RunArtifact, string, error) {
	suite, err := uc.suites.LoadSuite(suitePath)
	if err != nil {
		return domain.RunArtifact{}, "", err
	}

	run := domain.RunArtifact{
		SuiteName: suite.Name,
		SuitePath: suitePath,
		StartedAt: uc.now(),
	}

	results, runErr := uc.runCases(ctx, suite)
	run.Results = results
	run.EndedAt = uc.now()
	if runErr != nil {
		return run, "", runErr
	}

	if uc.store == nil {
		return run, "", nil
	}
	id, err := uc.store.SaveRun(run)
	if err != nil {
		return run, "", err
	}
	return run, id, nil
}

// runCases solves the cases with at most uc.parallel in flight. Once ctx is
// cancelled no new case starts; the cases that finished are returned in
// suite order together with the context error.
func (uc *RunSuite) runCases(ctx context.Context, suite domain.Suite) ([]domain.CaseResult, error) {
	slots := make([]*domain.CaseResult, len(suite.Cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.parallel)
	for i, c := range suite.Cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := uc.runCase(gctx, suite.Name, c)
			slots[i] = &res
			return nil
		})
	}
	waitErr := g.Wait()

	results := make([]domain.CaseResult, 0, len(suite.Cases))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, waitErr
}

func (uc *RunSuite) runCase(ctx context.Context, suiteName string, c domain.CaseSpec) domain.CaseResult {
	res := domain.CaseResult{
		Name:       c.Name,
		Spec:       c.Spec,
		Assertions: []domain.AssertionResult{},
	}

	sol, err := uc.solver.Solve(ctx, c.Spec)
	if err != nil {
		res.Error = domain.NewCaseError(err)
		uc.logger.Warn("suite.case.error", "suite", suiteName, "case", c.Name, "err", err)
		return res
	}

	res.Solution = &sol
	body, err := json.Marshal(sol)
	if err != nil {
		res.Error = domain.NewCaseError(&domain.OpError{Op: "suite.marshal", Kind: domain.KindExecution, Err: err})
		return res
	}
	res.Assertions = ucassert.Evaluate(c.Assert, sol.ElapsedMS, body)

	uc.logger.Info("suite.case.done",
		"suite", suiteName,
		"case", c.Name,
		"problem", string(c.Spec.Problem),
		"value", sol.Value,
		"elapsed_ms", sol.ElapsedMS,
		"failed", res.Failed(),
	)
	return res
}
