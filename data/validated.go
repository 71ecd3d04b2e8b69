package data

import (
	"fmt"

	"github.com/on-the-ground/traverse_ive_go/kind"
)

// ValidatedK brands Validated with its error type fixed.
type ValidatedK[E any] struct{}

type validatedRepr struct {
	valid bool
	err   any
	v     any
}

// Validated is an Either whose applicative composition accumulates errors
// instead of stopping at the first one. It has no lawful Monad.
type Validated[E, A any] struct {
	r validatedRepr
}

func (Validated[E, A]) KindOf(ValidatedK[E]) {}

func (v Validated[E, A]) Repr() any { return v.r }

func (Validated[E, A]) Retag(repr any) any {
	if r, ok := repr.(validatedRepr); ok {
		return Validated[E, A]{r: r}
	}
	return nil
}

// Valid wraps a success.
func Valid[E, A any](a A) Validated[E, A] {
	return Validated[E, A]{r: validatedRepr{valid: true, v: a}}
}

// Invalid wraps an error.
func Invalid[E, A any](e E) Validated[E, A] {
	return Validated[E, A]{r: validatedRepr{err: e}}
}

// NarrowValidated recovers a Validated from its kinded form.
func NarrowValidated[E, A any](fa kind.Of[ValidatedK[E], A]) Validated[E, A] {
	return kind.Cast[Validated[E, A]](fa)
}

func (v Validated[E, A]) IsValid() bool { return v.r.valid }

func (v Validated[E, A]) IsInvalid() bool { return !v.r.valid }

// Get returns the success value and true, or zero and false.
func (v Validated[E, A]) Get() (A, bool) {
	if v.r.valid {
		return kind.Cast[A](v.r.v), true
	}
	var zero A
	return zero, false
}

// Err returns the error and true, or zero and false.
func (v Validated[E, A]) Err() (E, bool) {
	if !v.r.valid {
		return kind.Cast[E](v.r.err), true
	}
	var zero E
	return zero, false
}

// ToEither converts to the short-circuiting representation.
func (v Validated[E, A]) ToEither() Either[E, A] {
	if v.r.valid {
		return Either[E, A]{r: eitherRepr{isRight: true, right: v.r.v}}
	}
	return Either[E, A]{r: eitherRepr{left: v.r.err}}
}

func (v Validated[E, A]) String() string {
	if v.r.valid {
		return fmt.Sprintf("Valid(%v)", v.r.v)
	}
	return fmt.Sprintf("Invalid(%v)", v.r.err)
}

// FromEither converts from the short-circuiting representation.
func FromEither[E, A any](e Either[E, A]) Validated[E, A] {
	if e.r.isRight {
		return Validated[E, A]{r: validatedRepr{valid: true, v: e.r.right}}
	}
	return Validated[E, A]{r: validatedRepr{err: e.r.left}}
}
