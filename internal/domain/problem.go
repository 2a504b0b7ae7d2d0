package domain

import "strings"

// Problem names a question eulerseq knows how to answer.
type Problem string

const (
	ProblemPrimes   Problem = "primes"
	ProblemTriangle Problem = "triangle"
	ProblemDivisors Problem = "divisors"
)

// ParseProblem normalizes a problem name. The boolean is false for unknown names.
func ParseProblem(s string) (Problem, bool) {
	p := Problem(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProblemPrimes, ProblemTriangle, ProblemDivisors:
		return p, true
	default:
		return "", false
	}
}

// ProblemSpec is a single question with its arguments.
//
// For ProblemPrimes exactly one of Count (first N primes) or Index (the
// 1-based N-th prime) is used; Index wins when both are set.
type ProblemSpec struct {
	Problem   Problem `json:"problem"`
	Count     int     `json:"count,omitempty"`
	Index     int     `json:"index,omitempty"`
	Threshold int     `json:"threshold,omitempty"`
	N         int64   `json:"n,omitempty"`
	Strategy  string  `json:"strategy,omitempty"`
}

// Solution is the JSON-encodable answer to a ProblemSpec.
type Solution struct {
	Problem  Problem `json:"problem"`
	Strategy string  `json:"strategy,omitempty"`

	Value    int64   `json:"value"`
	Values   []int64 `json:"values,omitempty"`
	Divisors int     `json:"divisors,omitempty"`
	Steps    int64   `json:"steps,omitempty"`

	ElapsedMS int64 `json:"elapsed_ms"`
}
