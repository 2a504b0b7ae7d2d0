package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/eulerseq/internal/domain"
)

// --- fakes ---

type fakeSuiteLoader struct {
	suite domain.Suite
	err   error
}

func (f fakeSuiteLoader) LoadSuite(_ string) (domain.Suite, error) {
	return f.suite, f.err
}
func (f fakeSuiteLoader) ListSuites(_ string) ([]domain.SuiteRef, error) {
	return nil, nil
}

type fakeStore struct {
	saved bool
	last  domain.RunArtifact
}

func (s *fakeStore) SaveRun(run domain.RunArtifact) (string, error) {
	s.saved = true
	s.last = run
	return "run-123", nil
}

type errStore struct{ err error }

func (s *errStore) SaveRun(_ domain.RunArtifact) (string, error) { return "", s.err }

// cancelSolver cancels the run context on its first call.
type cancelSolver struct {
	cancel context.CancelFunc
	calls  int
}

func (s *cancelSolver) Solve(_ context.Context, _ domain.ProblemSpec) (domain.Solution, error) {
	s.calls++
	if s.calls == 1 {
		s.cancel()
	}
	return domain.Solution{Value: 1}, nil
}

func strPtr(s string) *string { return &s }

func eulerSuite() domain.Suite {
	return domain.Suite{
		Name: "euler",
		Cases: []domain.CaseSpec{
			{
				Name: "problem-12-small",
				Spec: domain.ProblemSpec{Problem: domain.ProblemTriangle, Threshold: 5},
				Assert: domain.AssertionsSpec{JSONPath: map[string]domain.JSONPathAssertion{
					"$.value": {Eq: strPtr("28")},
				}},
			},
			{
				Name: "first-five-primes",
				Spec: domain.ProblemSpec{Problem: domain.ProblemPrimes, Count: 5},
				Assert: domain.AssertionsSpec{JSONPath: map[string]domain.JSONPathAssertion{
					"$.values[4]": {Eq: strPtr("11")},
				}},
			},
		},
	}
}

// --- RunSuite.Execute ---

func TestRunSuite_AllPass_StoreNil(t *testing.T) {
	uc := NewRunSuite(fakeSuiteLoader{suite: eulerSuite()}, NewSolveProblem(), nil)

	run, id, err := uc.Execute(context.Background(), "suites/euler.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id when store is nil, got %q", id)
	}
	if run.SuiteName != "euler" || run.SuitePath != "suites/euler.yaml" {
		t.Fatalf("unexpected run header: %+v", run)
	}
	if len(run.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(run.Results))
	}
	if n := run.Failures(); n != 0 {
		t.Fatalf("expected no failures, got %d: %+v", n, run.Results)
	}
	if run.Results[0].Solution == nil || run.Results[0].Solution.Value != 28 {
		t.Fatalf("expected solution 28, got %+v", run.Results[0].Solution)
	}
}

func TestRunSuite_StoreCalled(t *testing.T) {
	store := &fakeStore{}
	uc := NewRunSuite(fakeSuiteLoader{suite: eulerSuite()}, NewSolveProblem(), store)

	_, id, err := uc.Execute(context.Background(), "euler.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "run-123" {
		t.Fatalf("expected id=run-123, got %q", id)
	}
	if !store.saved || store.last.SuiteName != "euler" {
		t.Fatalf("expected SaveRun to receive the artifact, got %+v", store.last)
	}
}

func TestRunSuite_StoreError(t *testing.T) {
	saveErr := errors.New("disk full")
	uc := NewRunSuite(fakeSuiteLoader{suite: eulerSuite()}, NewSolveProblem(), &errStore{err: saveErr})

	run, _, err := uc.Execute(context.Background(), "euler.yaml")
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}
	if len(run.Results) != 2 {
		t.Fatalf("expected results to be returned alongside the error")
	}
}

func TestRunSuite_LoadError(t *testing.T) {
	loadErr := errors.New("suite not found")
	uc := NewRunSuite(fakeSuiteLoader{err: loadErr}, NewSolveProblem(), nil)

	_, _, err := uc.Execute(context.Background(), "x.yaml")
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped loadErr, got %v", err)
	}
}

func TestRunSuite_SolveErrorRecordedAndContinues(t *testing.T) {
	suite := domain.Suite{
		Name: "mixed",
		Cases: []domain.CaseSpec{
			{Name: "bad", Spec: domain.ProblemSpec{Problem: domain.ProblemTriangle, Threshold: -1}},
			{Name: "good", Spec: domain.ProblemSpec{Problem: domain.ProblemDivisors, N: 12}},
		},
	}
	uc := NewRunSuite(fakeSuiteLoader{suite: suite}, NewSolveProblem(), nil)

	run, _, err := uc.Execute(context.Background(), "mixed.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(run.Results))
	}
	if run.Results[0].Error == nil || run.Results[0].Error.Kind != domain.KindInvalidArgument {
		t.Fatalf("expected invalid_argument case error, got %+v", run.Results[0].Error)
	}
	if run.Results[1].Error != nil || run.Results[1].Solution.Divisors != 6 {
		t.Fatalf("expected second case to succeed, got %+v", run.Results[1])
	}
}

func TestRunSuite_AssertionFailureRecorded(t *testing.T) {
	suite := domain.Suite{
		Name: "wrong",
		Cases: []domain.CaseSpec{{
			Name: "wrong-answer",
			Spec: domain.ProblemSpec{Problem: domain.ProblemTriangle, Threshold: 5},
			Assert: domain.AssertionsSpec{JSONPath: map[string]domain.JSONPathAssertion{
				"$.value": {Eq: strPtr("36")},
			}},
		}},
	}
	uc := NewRunSuite(fakeSuiteLoader{suite: suite}, NewSolveProblem(), nil)

	run, _, err := uc.Execute(context.Background(), "wrong.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Failures() != 1 {
		t.Fatalf("expected one failure, got %d", run.Failures())
	}
}

func TestRunSuite_ContextCancelledBeforeFirstCase(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &fakeStore{}
	uc := NewRunSuite(fakeSuiteLoader{suite: eulerSuite()}, NewSolveProblem(), store)
	run, id, err := uc.Execute(ctx, "euler.yaml")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if id != "" || store.saved {
		t.Fatalf("expected no artifact to be saved on cancel")
	}
	if len(run.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(run.Results))
	}
}

func TestRunSuite_ContextCancelledDuringIteration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	solver := &cancelSolver{cancel: cancel}
	uc := NewRunSuite(fakeSuiteLoader{suite: eulerSuite()}, solver, nil)

	run, _, err := uc.Execute(ctx, "euler.yaml")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if solver.calls != 1 {
		t.Fatalf("expected exactly one solve before stopping, got %d", solver.calls)
	}
	if len(run.Results) != 1 {
		t.Fatalf("expected partial results, got %d", len(run.Results))
	}
}

func TestRunSuite_ParallelKeepsCaseOrder(t *testing.T) {
	suite := eulerSuite()
	for i := 0; i < 6; i++ {
		suite.Cases = append(suite.Cases, domain.CaseSpec{
			Name: fmt.Sprintf("divisors-%d", i),
			Spec: domain.ProblemSpec{Problem: domain.ProblemDivisors, N: int64(i + 1)},
		})
	}

	store := &fakeStore{}
	uc := NewRunSuite(fakeSuiteLoader{suite: suite}, NewSolveProblem(), store, WithParallelism(4))
	run, id, err := uc.Execute(context.Background(), "euler.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "run-123" {
		t.Fatalf("expected saved run id, got %q", id)
	}
	if len(run.Results) != len(suite.Cases) {
		t.Fatalf("expected %d results, got %d", len(suite.Cases), len(run.Results))
	}
	for i, r := range run.Results {
		if r.Name != suite.Cases[i].Name {
			t.Errorf("result %d: got %q, want %q", i, r.Name, suite.Cases[i].Name)
		}
	}
	if run.Failures() != 0 {
		t.Errorf("expected no failures, got %d", run.Failures())
	}
}

func TestWithParallelism_ClampsToOne(t *testing.T) {
	uc := NewRunSuite(fakeSuiteLoader{}, NewSolveProblem(), nil, WithParallelism(0))
	if uc.parallel != 1 {
		t.Fatalf("expected parallel=1, got %d", uc.parallel)
	}
}
