// Package lazylist provides Seq, an immutable lazy list, and the capabilities
// that traverse it.
//
// A Seq is a chain of memoized cells. Cells are computed on first access and
// shared by every Seq that reaches them, so prepending is O(1) and the same
// Seq can be walked any number of times, concurrently if need be. Nothing
// after the cell being inspected is computed, which makes infinite sequences
// such as From(1) usable as long as a consumer only asks for a finite prefix.
//
// The fold, traverse and tailRecM operations of Instance never recurse on the
// native stack per element and are safe on sequences of any length.
package lazylist

import (
	"iter"
	"strings"
	"sync"

	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

// K brands Seq.
type K struct{}

// thunk is a memoized cell. A nil thunk is the empty sequence.
type thunk struct {
	ready bool // c was known at construction; immutable
	once  sync.Once
	f     func() *cell
	c     *cell
}

// cell is a forced position. A nil cell marks the end.
type cell struct {
	head any
	tail *thunk
}

func (t *thunk) force() *cell {
	if t == nil {
		return nil
	}
	if t.ready {
		return t.c
	}
	t.once.Do(func() {
		t.c = t.f()
		t.f = nil
	})
	return t.c
}

// knownEmpty reports an end that is visible without forcing anything.
func (t *thunk) knownEmpty() bool {
	return t == nil || (t.ready && t.c == nil)
}

func strict(head any, tail *thunk) *thunk {
	return &thunk{ready: true, c: &cell{head: head, tail: tail}}
}

func lazy(f func() *cell) *thunk {
	return &thunk{f: f}
}

// Seq is a lazy, possibly infinite sequence of A. The zero Seq is empty.
type Seq[A any] struct {
	t *thunk
}

func (Seq[A]) KindOf(K) {}

func (s Seq[A]) Repr() any { return s.t }

func (Seq[A]) Retag(repr any) any {
	if repr == nil {
		return Seq[A]{}
	}
	if t, ok := repr.(*thunk); ok {
		return Seq[A]{t: t}
	}
	return nil
}

// Narrow recovers a Seq from its kinded form.
func Narrow[A any](fa kind.Of[K, A]) Seq[A] {
	return kind.Cast[Seq[A]](fa)
}

// Empty is the empty sequence.
func Empty[A any]() Seq[A] { return Seq[A]{} }

// Cons prepends head to tail.
func Cons[A any](head A, tail Seq[A]) Seq[A] {
	return Seq[A]{t: strict(head, tail.t)}
}

// ConsLazy prepends head to a tail that is computed on first access.
func ConsLazy[A any](head A, tail func() Seq[A]) Seq[A] {
	rest := lazy(func() *cell { return tail().t.force() })
	return Seq[A]{t: strict(head, rest)}
}

// Defer postpones building s until it is first inspected.
func Defer[A any](s func() Seq[A]) Seq[A] {
	return Seq[A]{t: lazy(func() *cell { return s().t.force() })}
}

// Of builds a finite sequence.
func Of[A any](as ...A) Seq[A] {
	return FromSlice(as)
}

// FromSlice builds a finite sequence holding the elements of as. Later
// changes to as are not observed.
func FromSlice[A any](as []A) Seq[A] {
	var t *thunk
	for i := len(as) - 1; i >= 0; i-- {
		t = strict(as[i], t)
	}
	return Seq[A]{t: t}
}

// FromIterator pulls elements from next as the sequence is forced. next is
// called at most once per position, in order, and never again after it
// reports false.
func FromIterator[A any](next func() (A, bool)) Seq[A] {
	var step func() *thunk
	step = func() *thunk {
		return lazy(func() *cell {
			a, ok := next()
			if !ok {
				return nil
			}
			return &cell{head: a, tail: step()}
		})
	}
	return Seq[A]{t: step()}
}

// FromSeq adapts a standard iterator.
func FromSeq[A any](it iter.Seq[A]) Seq[A] {
	next, stop := iter.Pull(it)
	return FromIterator(func() (A, bool) {
		a, ok := next()
		if !ok {
			stop()
		}
		return a, ok
	})
}

// Iterate is the infinite sequence seed, f(seed), f(f(seed)), ...
func Iterate[A any](seed A, f func(A) A) Seq[A] {
	var from func(A) *thunk
	from = func(a A) *thunk {
		return lazy(func() *cell { return &cell{head: a, tail: from(f(a))} })
	}
	return Seq[A]{t: from(seed)}
}

// From is the infinite sequence n, n+1, n+2, ...
func From(n int) Seq[int] {
	return Iterate(n, func(i int) int { return i + 1 })
}

// Range is the half-open interval [start, end).
func Range(start, end int) Seq[int] {
	return TakeWhile(From(start), func(i int) bool { return i < end })
}

// Repeat is the infinite sequence a, a, a, ...
func Repeat[A any](a A) Seq[A] {
	t := &thunk{}
	t.f = func() *cell { return &cell{head: a, tail: t} }
	return Seq[A]{t: t}
}

// Unfold grows a sequence from a state until f reports false.
func Unfold[S, A any](s S, f func(S) (A, S, bool)) Seq[A] {
	var from func(S) *thunk
	from = func(s S) *thunk {
		return lazy(func() *cell {
			a, next, ok := f(s)
			if !ok {
				return nil
			}
			return &cell{head: a, tail: from(next)}
		})
	}
	return Seq[A]{t: from(s)}
}

// IsEmpty forces the first cell.
func (s Seq[A]) IsEmpty() bool { return s.t.force() == nil }

// Head returns the first element.
func (s Seq[A]) Head() (A, bool) {
	c := s.t.force()
	if c == nil {
		var zero A
		return zero, false
	}
	return kind.Cast[A](c.head), true
}

// Tail drops the first element. The tail of the empty sequence is empty.
func (s Seq[A]) Tail() Seq[A] {
	c := s.t.force()
	if c == nil {
		return s
	}
	return Seq[A]{t: c.tail}
}

// Uncons splits off the first element.
func (s Seq[A]) Uncons() (A, Seq[A], bool) {
	c := s.t.force()
	if c == nil {
		var zero A
		return zero, s, false
	}
	return kind.Cast[A](c.head), Seq[A]{t: c.tail}, true
}

// All iterates over the elements. Ranging over an infinite sequence only
// ends when the loop breaks.
func (s Seq[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for c := s.t.force(); c != nil; c = c.tail.force() {
			if !yield(kind.Cast[A](c.head)) {
				return
			}
		}
	}
}

// ToSlice forces the whole sequence. It does not return for an infinite one.
func (s Seq[A]) ToSlice() []A {
	var out []A
	for a := range s.All() {
		out = append(out, a)
	}
	return out
}

// Len counts the elements of a finite sequence.
func (s Seq[A]) Len() int {
	n := 0
	for c := s.t.force(); c != nil; c = c.tail.force() {
		n++
	}
	return n
}

// String renders only the first element, so printing never forces the tail:
// "Seq()" for the empty sequence, "Seq(h, ?)" otherwise.
func (s Seq[A]) String() string {
	return Show(fmtShow[A]{}).Show(s)
}

// Get returns the element at index i. Negative and out of range indexes are
// None.
func Get[A any](s Seq[A], i int) data.Option[A] {
	if i < 0 {
		return data.None[A]()
	}
	for c := s.t.force(); c != nil; c = c.tail.force() {
		if i == 0 {
			return data.Some(kind.Cast[A](c.head))
		}
		i--
	}
	return data.None[A]()
}

// Take keeps the first n elements.
func Take[A any](s Seq[A], n int) Seq[A] {
	return Seq[A]{t: take(s.t, n)}
}

func take(t *thunk, n int) *thunk {
	if n <= 0 {
		return nil
	}
	return lazy(func() *cell {
		c := t.force()
		if c == nil {
			return nil
		}
		return &cell{head: c.head, tail: take(c.tail, n-1)}
	})
}

// Drop skips the first n elements.
func Drop[A any](s Seq[A], n int) Seq[A] {
	t := s.t
	return Seq[A]{t: lazy(func() *cell {
		c := t.force()
		for i := 0; i < n && c != nil; i++ {
			c = c.tail.force()
		}
		return c
	})}
}

// TakeWhile keeps the longest prefix satisfying p.
func TakeWhile[A any](s Seq[A], p func(A) bool) Seq[A] {
	var from func(*thunk) *thunk
	from = func(t *thunk) *thunk {
		return lazy(func() *cell {
			c := t.force()
			if c == nil || !p(kind.Cast[A](c.head)) {
				return nil
			}
			return &cell{head: c.head, tail: from(c.tail)}
		})
	}
	return Seq[A]{t: from(s.t)}
}

// DropWhile skips the longest prefix satisfying p.
func DropWhile[A any](s Seq[A], p func(A) bool) Seq[A] {
	t := s.t
	return Seq[A]{t: lazy(func() *cell {
		c := t.force()
		for c != nil && p(kind.Cast[A](c.head)) {
			c = c.tail.force()
		}
		return c
	})}
}

// Append concatenates s and other. other is not inspected until s is
// exhausted.
func Append[A any](s, other Seq[A]) Seq[A] {
	return Seq[A]{t: concat(s.t, func() *thunk { return other.t })}
}

func concat(t *thunk, rest func() *thunk) *thunk {
	if t.knownEmpty() {
		return lazy(func() *cell { return rest().force() })
	}
	return lazy(func() *cell {
		c := t.force()
		if c == nil {
			return rest().force()
		}
		return &cell{head: c.head, tail: concat(c.tail, rest)}
	})
}

// Tails is the sequence of suffixes of s, from s itself down to and
// including the empty sequence.
func Tails[A any](s Seq[A]) Seq[Seq[A]] {
	var from func(*thunk) *thunk
	from = func(t *thunk) *thunk {
		return lazy(func() *cell {
			c := t.force()
			if c == nil {
				return &cell{head: Seq[A]{}}
			}
			return &cell{head: Seq[A]{t: t}, tail: from(c.tail)}
		})
	}
	return Seq[Seq[A]]{t: from(s.t)}
}

// Map applies f lazily.
func Map[A, B any](s Seq[A], f func(A) B) Seq[B] {
	return Seq[B]{t: mapThunk(s.t, func(a any) any { return f(kind.Cast[A](a)) })}
}

func mapThunk(t *thunk, f func(any) any) *thunk {
	if t.knownEmpty() {
		return nil
	}
	return lazy(func() *cell {
		c := t.force()
		if c == nil {
			return nil
		}
		return &cell{head: f(c.head), tail: mapThunk(c.tail, f)}
	})
}

// Filter keeps the elements satisfying p.
func Filter[A any](s Seq[A], p func(A) bool) Seq[A] {
	return Seq[A]{t: mapFilterThunk(s.t, func(a any) (any, bool) {
		return a, p(kind.Cast[A](a))
	})}
}

func mapFilterThunk(t *thunk, f func(any) (any, bool)) *thunk {
	if t.knownEmpty() {
		return nil
	}
	return lazy(func() *cell {
		for c := t.force(); c != nil; c = c.tail.force() {
			if b, ok := f(c.head); ok {
				return &cell{head: b, tail: mapFilterThunk(c.tail, f)}
			}
		}
		return nil
	})
}

// FlatMap replaces every element with the sequence f returns for it.
func FlatMap[A, B any](s Seq[A], f func(A) Seq[B]) Seq[B] {
	return Seq[B]{t: flatMapThunk(s.t, func(a any) *thunk { return f(kind.Cast[A](a)).t })}
}

func flatMapThunk(t *thunk, f func(any) *thunk) *thunk {
	if t.knownEmpty() {
		return nil
	}
	return lazy(func() *cell {
		for c := t.force(); c != nil; c = c.tail.force() {
			inner := f(c.head).force()
			if inner == nil {
				continue
			}
			rest := c.tail
			return &cell{head: inner.head, tail: concat(inner.tail, func() *thunk {
				return flatMapThunk(rest, f)
			})}
		}
		return nil
	})
}

// Zip pairs the elements of a and b, stopping at the shorter.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[data.Pair[A, B]] {
	return Seq[data.Pair[A, B]]{t: zipWith(a.t, b.t, func(x, y any) any {
		return data.Tuple(kind.Cast[A](x), kind.Cast[B](y))
	})}
}

func zipWith(a, b *thunk, f func(any, any) any) *thunk {
	if a.knownEmpty() || b.knownEmpty() {
		return nil
	}
	return lazy(func() *cell {
		ca := a.force()
		if ca == nil {
			return nil
		}
		cb := b.force()
		if cb == nil {
			return nil
		}
		return &cell{head: f(ca.head, cb.head), tail: zipWith(ca.tail, cb.tail, f)}
	})
}

// ZipWithIndex pairs every element with its position.
func ZipWithIndex[A any](s Seq[A]) Seq[data.Pair[A, int]] {
	return Zip(s, From(0))
}

// MapWithIndex applies f to every element and its position.
func MapWithIndex[A, B any](s Seq[A], f func(A, int) B) Seq[B] {
	return Map(ZipWithIndex(s), func(p data.Pair[A, int]) B { return f(p.Unpack()) })
}

// Exists reports whether some element satisfies p, stopping at the first.
func Exists[A any](s Seq[A], p func(A) bool) bool {
	for a := range s.All() {
		if p(a) {
			return true
		}
	}
	return false
}

// Forall reports whether every element satisfies p, stopping at the first
// that does not.
func Forall[A any](s Seq[A], p func(A) bool) bool {
	return !Exists(s, func(a A) bool { return !p(a) })
}

// Find returns the first element satisfying p.
func Find[A any](s Seq[A], p func(A) bool) data.Option[A] {
	for a := range s.All() {
		if p(a) {
			return data.Some(a)
		}
	}
	return data.None[A]()
}

// CollectFirst returns the first Some that f produces.
func CollectFirst[A, B any](s Seq[A], f func(A) data.Option[B]) data.Option[B] {
	for a := range s.All() {
		if b := f(a); b.IsSome() {
			return b
		}
	}
	return data.None[B]()
}

func joinShown(parts []string) string {
	return "Seq(" + strings.Join(parts, ", ") + ")"
}
