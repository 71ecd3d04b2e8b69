package typeclass

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

// forgetApply presents an Apply[G] as an Apply over the Erased brand. Values
// going in are unwrapped with kind.Remember and results are wrapped again
// with kind.Forget.
type forgetApply[G any] struct {
	g Apply[G]
}

func (f forgetApply[G]) Map(fa kind.Of[Erased, Erased], fn func(Erased) Erased) kind.Of[Erased, Erased] {
	return kind.Forget[G, Erased](f.g.Map(kind.Remember[G, Erased](fa), fn))
}

func (f forgetApply[G]) Map2(fa, fb kind.Of[Erased, Erased], fn func(Erased, Erased) Erased) kind.Of[Erased, Erased] {
	return kind.Forget[G, Erased](f.g.Map2(kind.Remember[G, Erased](fa), kind.Remember[G, Erased](fb), fn))
}

func (f forgetApply[G]) Map2Eval(fa kind.Of[Erased, Erased], fb eval.Eval[kind.Of[Erased, Erased]], fn func(Erased, Erased) Erased) eval.Eval[kind.Of[Erased, Erased]] {
	gb := eval.Map(fb, func(b kind.Of[Erased, Erased]) kind.Of[G, Erased] {
		return kind.Remember[G, Erased](b)
	})
	return eval.Map(f.g.Map2Eval(kind.Remember[G, Erased](fa), gb, fn), func(r kind.Of[G, Erased]) kind.Of[Erased, Erased] {
		return kind.Forget[G, Erased](r)
	})
}

type forgetApplicative[G any] struct {
	forgetApply[G]
	g Applicative[G]
}

func (f forgetApplicative[G]) Pure(a Erased) kind.Of[Erased, Erased] {
	return kind.Forget[G, Erased](f.g.Pure(a))
}

type forgetCommutative[G any] struct {
	forgetApplicative[G]
}

func (forgetCommutative[G]) Commutes() {}

type forgetMonad[G any] struct {
	forgetApplicative[G]
	m Monad[G]
}

func (f forgetMonad[G]) FlatMap(fa kind.Of[Erased, Erased], fn func(Erased) kind.Of[Erased, Erased]) kind.Of[Erased, Erased] {
	return kind.Forget[G, Erased](f.m.FlatMap(kind.Remember[G, Erased](fa), func(a Erased) kind.Of[G, Erased] {
		return kind.Remember[G, Erased](fn(a))
	}))
}

func (f forgetMonad[G]) TailRecM(a Erased, fn func(Erased) kind.Of[Erased, data.Either[Erased, Erased]]) kind.Of[Erased, Erased] {
	return kind.Forget[G, Erased](f.m.TailRecM(a, func(s Erased) kind.Of[G, data.Either[Erased, Erased]] {
		return kind.Remember[G, data.Either[Erased, Erased]](fn(s))
	}))
}

// ForgetApply erases the brand of g.
func ForgetApply[G any](g Apply[G]) Apply[Erased] {
	if e, ok := any(g).(Apply[Erased]); ok {
		return e
	}
	return forgetApply[G]{g: g}
}

// ForgetApplicative erases the brand of g. Capability methods that traverse
// into an arbitrary applicative receive the result.
func ForgetApplicative[G any](g Applicative[G]) Applicative[Erased] {
	if e, ok := any(g).(Applicative[Erased]); ok {
		return e
	}
	return forgetApplicative[G]{forgetApply: forgetApply[G]{g: g}, g: g}
}

// ForgetCommutative erases the brand of a commutative applicative.
func ForgetCommutative[G any](g CommutativeApplicative[G]) CommutativeApplicative[Erased] {
	if e, ok := any(g).(CommutativeApplicative[Erased]); ok {
		return e
	}
	return forgetCommutative[G]{forgetApplicative[G]{forgetApply: forgetApply[G]{g: g}, g: g}}
}

// ForgetMonad erases the brand of m.
func ForgetMonad[G any](m Monad[G]) Monad[Erased] {
	if e, ok := any(m).(Monad[Erased]); ok {
		return e
	}
	return forgetMonad[G]{forgetApplicative: forgetApplicative[G]{forgetApply: forgetApply[G]{g: m}, g: m}, m: m}
}
