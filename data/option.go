// Package data holds the small algebraic data types the capabilities speak in:
// Option, Either, Ior, Validated, Pair and NonEmptySlice.
//
// Each type keeps its payload type-erased, so every instantiation of one type
// shares a representation and kind.Cast converts between them for free.
package data

import (
	"fmt"

	"github.com/on-the-ground/traverse_ive_go/kind"
)

// OptionK brands Option.
type OptionK struct{}

type optionRepr struct {
	ok bool
	v  any
}

// Option is an optional value.
type Option[A any] struct {
	r optionRepr
}

func (Option[A]) KindOf(OptionK) {}

func (o Option[A]) Repr() any { return o.r }

func (Option[A]) Retag(repr any) any {
	if r, ok := repr.(optionRepr); ok {
		return Option[A]{r: r}
	}
	return nil
}

// Some wraps a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{r: optionRepr{ok: true, v: a}}
}

// None is the absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPtr maps nil to None.
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// NarrowOption recovers an Option from its kinded form.
func NarrowOption[A any](fa kind.Of[OptionK, A]) Option[A] {
	return kind.Cast[Option[A]](fa)
}

func (o Option[A]) IsSome() bool { return o.r.ok }

func (o Option[A]) IsNone() bool { return !o.r.ok }

// Get returns the value and whether it is present.
func (o Option[A]) Get() (A, bool) {
	if !o.r.ok {
		var zero A
		return zero, false
	}
	return kind.Cast[A](o.r.v), true
}

// GetOrElse returns the value or def.
func (o Option[A]) GetOrElse(def A) A {
	if a, ok := o.Get(); ok {
		return a
	}
	return def
}

// OrElse returns o when present, otherwise alt.
func (o Option[A]) OrElse(alt Option[A]) Option[A] {
	if o.r.ok {
		return o
	}
	return alt
}

func (o Option[A]) String() string {
	if a, ok := o.Get(); ok {
		return fmt.Sprintf("Some(%v)", a)
	}
	return "None"
}

// MapOption applies f to a present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if a, ok := o.Get(); ok {
		return Some(f(a))
	}
	return None[B]()
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if a, ok := o.Get(); ok {
		return f(a)
	}
	return None[B]()
}

// FoldOption pattern matches on o.
func FoldOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if a, ok := o.Get(); ok {
		return onSome(a)
	}
	return onNone()
}
