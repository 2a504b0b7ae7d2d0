// Package primes generates the infinite, increasing sequence of primes as a
// lazy.Seq.
//
// Two strategies produce the same sequence:
//
//   - Recursive is the incremental sieve by filtering: the head of the
//     candidates is prime, and the tail is the sieve of the remaining
//     candidates not divisible by it. Every prime found adds one filter to
//     the chain, so forcing the n-th prime nests n filters deep. Stack and
//     work grow with the prime index; this is inherent to the construction.
//   - Iterative keeps the found primes in a growable slice and tests each
//     candidate by trial division up to its square root. Forcing a tail
//     costs one frame regardless of the prime index.
package primes

import (
	"strings"

	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/lazy"
)

// Strategy selects how the prime sequence is built.
type Strategy string

const (
	Recursive Strategy = "recursive"
	Iterative Strategy = "iterative"
)

// DefaultStrategy is used when no strategy is configured.
const DefaultStrategy = Recursive

// ParseStrategy normalizes a strategy name. An empty name selects
// DefaultStrategy; unknown names fail with domain.KindUnsupported.
func ParseStrategy(s string) (Strategy, error) {
	switch v := Strategy(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return DefaultStrategy, nil
	case Recursive, Iterative:
		return v, nil
	default:
		return "", domain.Unsupported("primes.strategy", "unknown sieve strategy %q (expected recursive|iterative)", s)
	}
}

// New returns a fresh prime sequence built with the named strategy.
func New(strategy string) (lazy.Seq[int], error) {
	st, err := ParseStrategy(strategy)
	if err != nil {
		return lazy.Seq[int]{}, err
	}
	if st == Iterative {
		return Trial(), nil
	}
	return Sieve(), nil
}

// Sieve returns the primes using the recursive filtering sieve.
func Sieve() lazy.Seq[int] {
	return sieve(lazy.From(2))
}

func sieve(numbers lazy.Seq[int]) lazy.Seq[int] {
	p := numbers.Head()
	return lazy.Cons(p, func() lazy.Seq[int] {
		return sieve(lazy.Filter(numbers.Tail(), func(x int) bool { return x%p > 0 }))
	})
}

// Trial returns the primes using trial division against the primes found so
// far. Each call owns its own slice of found primes.
func Trial() lazy.Seq[int] {
	var found []int

	var next func(candidate int) lazy.Seq[int]
	next = func(candidate int) lazy.Seq[int] {
		for !coprimeToAll(found, candidate) {
			candidate++
		}
		found = append(found, candidate)
		p := candidate
		return lazy.Cons(p, func() lazy.Seq[int] { return next(p + 1) })
	}
	return next(2)
}

func coprimeToAll(found []int, n int) bool {
	for _, p := range found {
		if p > n/p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	return true
}

// Nth returns the 1-based n-th prime of seq.
func Nth(seq lazy.Seq[int], n int) (int, error) {
	if n < 1 {
		return 0, domain.InvalidArgument("primes.nth", "index must be >= 1, got %d", n)
	}
	v, ok := lazy.Nth(seq, n-1)
	if !ok {
		return 0, &domain.OpError{Op: "primes.nth", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return v, nil
}

// IsPrime reports whether n is prime by trial division.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
