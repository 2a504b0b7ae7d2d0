// Package lazy provides a persistent, memoized, possibly infinite sequence.
//
// A Seq is a cons cell: a realized head and a tail that is computed on first
// access and cached in the node. Re-traversing a Seq from a saved value
// never recomputes an element. Forcing a tail is not synchronized, so a Seq
// must not be forced from several goroutines at once.
package lazy

import (
	"fmt"
	"iter"
	"strings"
)

// Seq is an immutable sequence. The zero value is the empty sequence.
type Seq[T any] struct {
	n *node[T]
}

type node[T any] struct {
	head  T
	thunk func() Seq[T]
	rest  Seq[T]
}

// Integer is the set of types From can count over.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Empty returns the empty sequence.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Cons builds a sequence from a head and a deferred tail. tail is called at
// most once, the first time the tail is requested. A nil tail ends the sequence.
func Cons[T any](head T, tail func() Seq[T]) Seq[T] {
	if tail == nil {
		tail = Empty[T]
	}
	return Seq[T]{n: &node[T]{head: head, thunk: tail}}
}

// Of returns a finite sequence of the given values.
func Of[T any](values ...T) Seq[T] {
	out := Empty[T]()
	for i := len(values) - 1; i >= 0; i-- {
		rest := out
		out = Cons(values[i], func() Seq[T] { return rest })
	}
	return out
}

func (s Seq[T]) IsEmpty() bool {
	return s.n == nil
}

// Head returns the first element. It panics on the empty sequence.
func (s Seq[T]) Head() T {
	if s.n == nil {
		panic("lazy: Head of empty sequence")
	}
	return s.n.head
}

// Tail returns the sequence after the head, forcing and caching it on first
// use. The tail of the empty sequence is empty.
func (s Seq[T]) Tail() Seq[T] {
	if s.n == nil {
		return s
	}
	if s.n.thunk != nil {
		s.n.rest = s.n.thunk()
		s.n.thunk = nil
	}
	return s.n.rest
}

// All iterates the sequence in order. Ranging over an infinite sequence only
// terminates when the loop body breaks. The iterator holds s, so every node
// realized during the loop stays reachable until the loop ends; use Each for
// long one-pass scans.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
			if !yield(cur.Head()) {
				return
			}
		}
	}
}

// Each calls yield for every element of s in order until yield returns false.
// It does not keep the head of s, so nodes already passed can be collected
// once the caller holds no other reference to them.
func Each[T any](s Seq[T], yield func(T) bool) {
	for ; !s.IsEmpty(); s = s.Tail() {
		if !yield(s.Head()) {
			return
		}
	}
}

// String renders the realized prefix without forcing anything, e.g. "Seq(2, 3, ...)".
func (s Seq[T]) String() string {
	var b strings.Builder
	b.WriteString("Seq(")
	for i, v := range Realized(s) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	if pending(s) {
		if !s.IsEmpty() {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteString(")")
	return b.String()
}

// Realized returns the elements already computed, without forcing any tail.
func Realized[T any](s Seq[T]) []T {
	var out []T
	for cur := s; cur.n != nil; cur = cur.n.rest {
		out = append(out, cur.n.head)
		if cur.n.thunk != nil {
			break
		}
	}
	return out
}

func pending[T any](s Seq[T]) bool {
	for cur := s; cur.n != nil; cur = cur.n.rest {
		if cur.n.thunk != nil {
			return true
		}
	}
	return false
}
