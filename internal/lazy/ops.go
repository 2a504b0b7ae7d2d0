package lazy

// From returns start, start+1, start+2, ...
func From[T Integer](start T) Seq[T] {
	return Iterate(start, func(v T) T { return v + 1 })
}

// Iterate returns seed, f(seed), f(f(seed)), ...
func Iterate[T any](seed T, f func(T) T) Seq[T] {
	return Cons(seed, func() Seq[T] { return Iterate(f(seed), f) })
}

// Filter keeps the elements matching keep. The head of the result is located
// eagerly; everything after it is deferred.
func Filter[T any](s Seq[T], keep func(T) bool) Seq[T] {
	for !s.IsEmpty() && !keep(s.Head()) {
		s = s.Tail()
	}
	if s.IsEmpty() {
		return s
	}
	return Cons(s.Head(), func() Seq[T] { return Filter(s.Tail(), keep) })
}

// Map applies f lazily to every element.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	if s.IsEmpty() {
		return Empty[U]()
	}
	return Cons(f(s.Head()), func() Seq[U] { return Map(s.Tail(), f) })
}

// ScanLeft returns the running accumulation: zero, f(zero, s0), f(f(zero, s0), s1), ...
func ScanLeft[T, A any](s Seq[T], zero A, f func(A, T) A) Seq[A] {
	return Cons(zero, func() Seq[A] {
		if s.IsEmpty() {
			return Empty[A]()
		}
		return ScanLeft(s.Tail(), f(zero, s.Head()), f)
	})
}

// TakeWhile returns the longest prefix whose elements satisfy keep.
func TakeWhile[T any](s Seq[T], keep func(T) bool) Seq[T] {
	if s.IsEmpty() || !keep(s.Head()) {
		return Empty[T]()
	}
	return Cons(s.Head(), func() Seq[T] { return TakeWhile(s.Tail(), keep) })
}

// Take returns at most the first n elements, lazily. It never forces the
// source beyond the n-th element.
func Take[T any](s Seq[T], n int) Seq[T] {
	if n <= 0 || s.IsEmpty() {
		return Empty[T]()
	}
	return Cons(s.Head(), func() Seq[T] {
		if n == 1 {
			return Empty[T]()
		}
		return Take(s.Tail(), n-1)
	})
}

// Drop skips the first n elements.
func Drop[T any](s Seq[T], n int) Seq[T] {
	for ; n > 0 && !s.IsEmpty(); n-- {
		s = s.Tail()
	}
	return s
}

// Nth returns the element at 0-based index i.
func Nth[T any](s Seq[T], i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}
	s = Drop(s, i)
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.Head(), true
}

// Find returns the first element matching match. On an infinite sequence with
// no match it does not return.
func Find[T any](s Seq[T], match func(T) bool) (T, bool) {
	var (
		found T
		ok    bool
	)
	Each(s, func(v T) bool {
		if match(v) {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// Collect forces a finite sequence into a slice.
func Collect[T any](s Seq[T]) []T {
	var out []T
	Each(s, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Slice returns the first n elements as a slice.
func Slice[T any](s Seq[T], n int) []T {
	return Collect(Take(s, n))
}
