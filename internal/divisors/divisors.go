// Package divisors enumerates and counts the positive divisors of an integer
// by trial division up to its square root.
package divisors

// Count returns the number of positive divisors of n, or 0 for n <= 0.
func Count(n int64) int {
	if n <= 0 {
		return 0
	}
	c := 0
	for i := int64(1); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		if i == n/i {
			c++
		} else {
			c += 2
		}
	}
	return c
}

// Of returns the positive divisors of n in increasing order, or nil for n <= 0.
func Of(n int64) []int64 {
	if n <= 0 {
		return nil
	}
	var small, large []int64
	for i := int64(1); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}
	for k := len(large) - 1; k >= 0; k-- {
		small = append(small, large[k])
	}
	return small
}
