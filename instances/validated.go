package instances

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kernel"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

// ValidatedInstance is the error-accumulating ApplicativeError and the
// Traverse of Validated. When both sides of Map2 are Invalid their errors are
// combined, left first, with the semigroup.
type ValidatedInstance[E any] struct {
	sg kernel.Semigroup[E]
}

// Validated returns the instance for Validated[E, _] combining errors with sg.
func Validated[E any](sg kernel.Semigroup[E]) ValidatedInstance[E] {
	return ValidatedInstance[E]{sg: sg}
}

var (
	_ typeclass.ApplicativeError[data.ValidatedK[[]error], []error] = ValidatedInstance[[]error]{}
	_ typeclass.Traverse[data.ValidatedK[[]error]]                  = ValidatedInstance[[]error]{}
)

type validatedK[E any] = kind.Of[data.ValidatedK[E], erased]

func narrowValidated[E any](fa validatedK[E]) data.Validated[E, erased] {
	return data.NarrowValidated[E, erased](fa)
}

func (ValidatedInstance[E]) Map(fa validatedK[E], f func(erased) erased) validatedK[E] {
	v := narrowValidated[E](fa)
	if a, ok := v.Get(); ok {
		return data.Valid[E](f(a))
	}
	e, _ := v.Err()
	return data.Invalid[E, erased](e)
}

func (vi ValidatedInstance[E]) Map2(fa, fb validatedK[E], f func(erased, erased) erased) validatedK[E] {
	va, vb := narrowValidated[E](fa), narrowValidated[E](fb)
	a, aok := va.Get()
	b, bok := vb.Get()
	switch {
	case aok && bok:
		return data.Valid[E](f(a, b))
	case aok:
		e, _ := vb.Err()
		return data.Invalid[E, erased](e)
	case bok:
		e, _ := va.Err()
		return data.Invalid[E, erased](e)
	default:
		ea, _ := va.Err()
		eb, _ := vb.Err()
		return data.Invalid[E, erased](vi.sg.Combine(ea, eb))
	}
}

// Map2Eval always forces fb: an Invalid fa still collects the errors of fb.
func (vi ValidatedInstance[E]) Map2Eval(fa validatedK[E], fb eval.Eval[validatedK[E]], f func(erased, erased) erased) eval.Eval[validatedK[E]] {
	return typeclass.DefaultMap2Eval[data.ValidatedK[E]](vi, fa, fb, f)
}

func (ValidatedInstance[E]) Pure(a erased) validatedK[E] { return data.Valid[E](a) }

func (ValidatedInstance[E]) RaiseError(e E) validatedK[E] { return data.Invalid[E, erased](e) }

func (ValidatedInstance[E]) HandleErrorWith(fa validatedK[E], f func(E) validatedK[E]) validatedK[E] {
	if e, ok := narrowValidated[E](fa).Err(); ok {
		return f(e)
	}
	return fa
}

func (ValidatedInstance[E]) FoldLeft(fa validatedK[E], b erased, f func(erased, erased) erased) erased {
	if a, ok := narrowValidated[E](fa).Get(); ok {
		return f(b, a)
	}
	return b
}

func (ValidatedInstance[E]) FoldRight(fa validatedK[E], lb eval.Eval[erased], f func(erased, eval.Eval[erased]) eval.Eval[erased]) eval.Eval[erased] {
	if a, ok := narrowValidated[E](fa).Get(); ok {
		return f(a, lb)
	}
	return lb
}

func (ValidatedInstance[E]) Traverse(g typeclass.Applicative[erased], fa validatedK[E], f func(erased) kind.Of[erased, erased]) kind.Of[erased, erased] {
	v := narrowValidated[E](fa)
	a, ok := v.Get()
	if !ok {
		e, _ := v.Err()
		return g.Pure(data.Invalid[E, erased](e))
	}
	return g.Map(f(a), func(b erased) erased { return data.Valid[E](b) })
}
