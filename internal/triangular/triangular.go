// Package triangular produces the triangular numbers 1, 3, 6, 10, ... as a
// lazy sequence and searches it for the first one with more than a given
// number of divisors.
package triangular

import (
	"context"

	"github.com/aalvaropc/eulerseq/internal/divisors"
	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/lazy"
)

// Counter returns the number of positive divisors of n.
type Counter func(n int64) int

// checkEvery is how many candidates are examined between context checks.
const checkEvery = 1024

// Numbers returns the running sums of 1, 2, 3, ... The sequence ends before
// the first sum that would overflow int64.
func Numbers() lazy.Seq[int64] {
	sums := lazy.ScanLeft(lazy.From[int64](1), 0, func(acc, n int64) int64 { return acc + n })
	return lazy.TakeWhile(sums.Tail(), func(t int64) bool { return t > 0 })
}

// Nth returns the 1-based n-th triangular number, n*(n+1)/2.
func Nth(n int64) int64 {
	if n%2 == 0 {
		return (n / 2) * (n + 1)
	}
	return n * ((n + 1) / 2)
}

// Result describes a match found by Search.
type Result struct {
	// Index is the 1-based position of Value in Numbers.
	Index    int64
	Value    int64
	Divisors int
}

// Search finds triangular numbers by divisor count.
type Search struct {
	count Counter
}

type Option func(*Search)

// WithCounter replaces the divisor counter. Nil keeps the default.
func WithCounter(c Counter) Option {
	return func(s *Search) {
		if c != nil {
			s.count = c
		}
	}
}

func NewSearch(opts ...Option) *Search {
	s := &Search{count: divisors.Count}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Find returns the first triangular number whose divisor count is strictly
// greater than threshold. A negative threshold is rejected.
func (s *Search) Find(ctx context.Context, threshold int) (Result, error) {
	if threshold < 0 {
		return Result{}, domain.InvalidArgument("triangular.find", "threshold must be >= 0, got %d", threshold)
	}

	var (
		idx   int64
		found *Result
		err   error
	)
	lazy.Each(Numbers(), func(t int64) bool {
		idx++
		if idx%checkEvery == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		if d := s.count(t); d > threshold {
			found = &Result{Index: idx, Value: t, Divisors: d}
			return false
		}
		return true
	})
	if err != nil {
		return Result{}, err
	}
	if found != nil {
		return *found, nil
	}

	return Result{}, &domain.OpError{
		Op:   "triangular.find",
		Kind: domain.KindNotFound,
		Err:  domain.ErrNotFound,
	}
}

// FirstWithMoreDivisorsThan returns the smallest triangular number with more
// than threshold divisors.
func FirstWithMoreDivisorsThan(threshold int) (int64, error) {
	r, err := NewSearch().Find(context.Background(), threshold)
	if err != nil {
		return 0, err
	}
	return r.Value, nil
}
