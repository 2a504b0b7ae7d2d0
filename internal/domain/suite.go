package domain

// Suite is a named list of cases loaded from a YAML file.
type Suite struct {
	Name  string
	Cases []CaseSpec
}

// SuiteRef is a lightweight pointer to a suite on disk.
type SuiteRef struct {
	Name string
	Path string
}

// CaseSpec is one problem to solve plus the checks applied to its solution.
type CaseSpec struct {
	Name   string
	Spec   ProblemSpec
	Assert AssertionsSpec
}

// AssertionsSpec lists the checks applied to a solution.
type AssertionsSpec struct {
	MaxMS *int

	// JSONPath assertions are evaluated against the solution encoded as JSON.
	JSONPath map[string]JSONPathAssertion
}

type JSONPathAssertion struct {
	Exists   bool
	Eq       *string
	Contains *string
	Matches  *string
	Gt       *float64
	Lt       *float64
}
