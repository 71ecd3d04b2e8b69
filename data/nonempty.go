package data

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/traverse_ive_go/kind"
)

// NonEmptySliceK brands NonEmptySlice.
type NonEmptySliceK struct{}

type nonEmptyRepr struct {
	elems []any
}

// NonEmptySlice is an immutable slice holding at least one element.
type NonEmptySlice[A any] struct {
	r nonEmptyRepr
}

func (NonEmptySlice[A]) KindOf(NonEmptySliceK) {}

func (n NonEmptySlice[A]) Repr() any { return n.r }

func (NonEmptySlice[A]) Retag(repr any) any {
	if r, ok := repr.(nonEmptyRepr); ok {
		return NonEmptySlice[A]{r: r}
	}
	return nil
}

// NonEmpty builds a NonEmptySlice from a head and further elements.
func NonEmpty[A any](head A, tail ...A) NonEmptySlice[A] {
	elems := make([]any, 0, 1+len(tail))
	elems = append(elems, head)
	for _, a := range tail {
		elems = append(elems, a)
	}
	return NonEmptySlice[A]{r: nonEmptyRepr{elems: elems}}
}

// NonEmptyFromSlice returns None for an empty slice.
func NonEmptyFromSlice[A any](as []A) Option[NonEmptySlice[A]] {
	if len(as) == 0 {
		return None[NonEmptySlice[A]]()
	}
	return Some(NonEmpty(as[0], as[1:]...))
}

// NonEmptyErased builds a NonEmptySlice around erased elements. It panics
// when elems is empty.
func NonEmptyErased[A any](elems []any) NonEmptySlice[A] {
	if len(elems) == 0 {
		panic("data: NonEmptyErased called with no elements")
	}
	return NonEmptySlice[A]{r: nonEmptyRepr{elems: elems}}
}

// NarrowNonEmpty recovers a NonEmptySlice from its kinded form.
func NarrowNonEmpty[A any](fa kind.Of[NonEmptySliceK, A]) NonEmptySlice[A] {
	return kind.Cast[NonEmptySlice[A]](fa)
}

func (n NonEmptySlice[A]) Head() A { return kind.Cast[A](n.r.elems[0]) }

func (n NonEmptySlice[A]) Len() int { return len(n.r.elems) }

// At returns the element at i. It panics when i is out of range.
func (n NonEmptySlice[A]) At(i int) A { return kind.Cast[A](n.r.elems[i]) }

// Tail returns every element after the head.
func (n NonEmptySlice[A]) Tail() []A {
	return castAll[A](n.r.elems[1:])
}

// Slice copies the elements out.
func (n NonEmptySlice[A]) Slice() []A {
	return castAll[A](n.r.elems)
}

// Erased exposes the erased elements without copying. Callers must not
// mutate the result.
func (n NonEmptySlice[A]) Erased() []any { return n.r.elems }

func (n NonEmptySlice[A]) String() string {
	parts := make([]string, len(n.r.elems))
	for i, e := range n.r.elems {
		parts[i] = fmt.Sprintf("%v", e)
	}
	return "NonEmpty(" + strings.Join(parts, ", ") + ")"
}

func castAll[A any](elems []any) []A {
	out := make([]A, len(elems))
	for i, e := range elems {
		out[i] = kind.Cast[A](e)
	}
	return out
}
