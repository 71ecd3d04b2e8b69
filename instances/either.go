package instances

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

// EitherInstance is the right-biased MonadError and Traverse of Either with
// its left type fixed to L. Composition stops at the first Left.
type EitherInstance[L any] struct{}

// Either returns the instance for Either[L, _].
func Either[L any]() EitherInstance[L] { return EitherInstance[L]{} }

var (
	_ typeclass.MonadError[data.EitherK[error], error] = EitherInstance[error]{}
	_ typeclass.Traverse[data.EitherK[error]]          = EitherInstance[error]{}
)

type eitherK[L any] = kind.Of[data.EitherK[L], erased]

func narrowEither[L any](fa eitherK[L]) data.Either[L, erased] {
	return data.NarrowEither[L, erased](fa)
}

// leftOf reuses a Left under a new right type.
func leftOf[L any](e data.Either[L, erased]) eitherK[L] {
	l, _ := e.GetLeft()
	return data.Left[L, erased](l)
}

func (EitherInstance[L]) Map(fa eitherK[L], f func(erased) erased) eitherK[L] {
	return data.MapEither(narrowEither[L](fa), f)
}

func (EitherInstance[L]) Map2(fa, fb eitherK[L], f func(erased, erased) erased) eitherK[L] {
	ea := narrowEither[L](fa)
	a, ok := ea.GetRight()
	if !ok {
		return leftOf(ea)
	}
	eb := narrowEither[L](fb)
	b, ok := eb.GetRight()
	if !ok {
		return leftOf(eb)
	}
	return data.Right[L](f(a, b))
}

// Map2Eval leaves fb unforced when fa is a Left.
func (e EitherInstance[L]) Map2Eval(fa eitherK[L], fb eval.Eval[eitherK[L]], f func(erased, erased) erased) eval.Eval[eitherK[L]] {
	if ea := narrowEither[L](fa); ea.IsLeft() {
		return eval.Now(leftOf(ea))
	}
	return eval.Map(fb, func(b eitherK[L]) eitherK[L] { return e.Map2(fa, b, f) })
}

func (EitherInstance[L]) Pure(a erased) eitherK[L] { return data.Right[L](a) }

func (EitherInstance[L]) FlatMap(fa eitherK[L], f func(erased) eitherK[L]) eitherK[L] {
	ea := narrowEither[L](fa)
	if a, ok := ea.GetRight(); ok {
		return f(a)
	}
	return leftOf(ea)
}

func (EitherInstance[L]) TailRecM(a erased, f func(erased) kind.Of[data.EitherK[L], data.Either[erased, erased]]) eitherK[L] {
	for {
		outer := data.NarrowEither[L, data.Either[erased, erased]](f(a))
		step, ok := outer.GetRight()
		if !ok {
			l, _ := outer.GetLeft()
			return data.Left[L, erased](l)
		}
		if b, done := step.GetRight(); done {
			return data.Right[L](b)
		}
		a, _ = step.GetLeft()
	}
}

func (EitherInstance[L]) RaiseError(l L) eitherK[L] { return data.Left[L, erased](l) }

func (EitherInstance[L]) HandleErrorWith(fa eitherK[L], f func(L) eitherK[L]) eitherK[L] {
	ea := narrowEither[L](fa)
	if l, ok := ea.GetLeft(); ok {
		return f(l)
	}
	return fa
}

func (EitherInstance[L]) FoldLeft(fa eitherK[L], b erased, f func(erased, erased) erased) erased {
	if a, ok := narrowEither[L](fa).GetRight(); ok {
		return f(b, a)
	}
	return b
}

func (EitherInstance[L]) FoldRight(fa eitherK[L], lb eval.Eval[erased], f func(erased, eval.Eval[erased]) eval.Eval[erased]) eval.Eval[erased] {
	if a, ok := narrowEither[L](fa).GetRight(); ok {
		return f(a, lb)
	}
	return lb
}

func (EitherInstance[L]) Traverse(g typeclass.Applicative[erased], fa eitherK[L], f func(erased) kind.Of[erased, erased]) kind.Of[erased, erased] {
	ea := narrowEither[L](fa)
	a, ok := ea.GetRight()
	if !ok {
		return g.Pure(leftOf(ea))
	}
	return g.Map(f(a), func(b erased) erased { return data.Right[L](b) })
}

// EitherBiInstance is the Bitraverse of Either over both of its parameters.
type EitherBiInstance struct{}

// EitherBi is the shared EitherBiInstance.
var EitherBi EitherBiInstance

var _ typeclass.Bitraverse[data.Either2K] = EitherBi

type either2K = kind.Of2[data.Either2K, erased, erased]

func (EitherBiInstance) Bimap(fab either2K, f, g func(erased) erased) either2K {
	e := data.NarrowEither2[erased, erased](fab)
	if r, ok := e.GetRight(); ok {
		return data.Right[erased](g(r))
	}
	l, _ := e.GetLeft()
	return data.Left[erased, erased](f(l))
}

func (EitherBiInstance) Bitraverse(g typeclass.Applicative[erased], fab either2K, f, h func(erased) kind.Of[erased, erased]) kind.Of[erased, erased] {
	e := data.NarrowEither2[erased, erased](fab)
	if r, ok := e.GetRight(); ok {
		return g.Map(h(r), func(d erased) erased { return data.Right[erased](d) })
	}
	l, _ := e.GetLeft()
	return g.Map(f(l), func(c erased) erased { return data.Left[erased, erased](c) })
}
