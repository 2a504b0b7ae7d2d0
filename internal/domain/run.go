package domain

import "time"

// AssertionResult is the output of a single assertion.
type AssertionResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// CaseError is a structured error recorded for a case that could not be solved.
type CaseError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewCaseError classifies err using its OpError kind, defaulting to KindExecution.
func NewCaseError(err error) *CaseError {
	if err == nil {
		return nil
	}
	kind := KindExecution
	for _, k := range []ErrorKind{KindInvalidArgument, KindUnsupported, KindNotFound, KindInvalidConfig} {
		if IsKind(err, k) {
			kind = k
			break
		}
	}
	return &CaseError{Kind: kind, Message: err.Error()}
}

// CaseResult is the outcome of running one CaseSpec.
type CaseResult struct {
	Name       string            `json:"name"`
	Spec       ProblemSpec       `json:"spec"`
	Solution   *Solution         `json:"solution,omitempty"`
	Assertions []AssertionResult `json:"assertions"`
	Error      *CaseError        `json:"error,omitempty"`
}

// Failed reports whether the case errored or any assertion did not pass.
func (r CaseResult) Failed() bool {
	if r.Error != nil {
		return true
	}
	for _, a := range r.Assertions {
		if !a.Passed {
			return true
		}
	}
	return false
}

// RunArtifact represents a persisted suite run.
type RunArtifact struct {
	SuiteName string `json:"suite_name"`
	SuitePath string `json:"suite_path"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Results []CaseResult `json:"results"`
}

// Failures counts failed cases.
func (a RunArtifact) Failures() int {
	n := 0
	for _, r := range a.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}
