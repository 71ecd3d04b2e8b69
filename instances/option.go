// Package instances provides the capabilities of the types in package data
// and of Eval.
//
// Each instance is a stateless value passed explicitly to the functions of
// package typeclass; the ones that need configuration (Validated needs a way
// to combine errors) are built by a constructor.
package instances

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

type (
	erased = kind.Erased
	optK   = kind.Of[data.OptionK, erased]
)

// OptionInstance is the Monad, Traverse, Alternative and TraverseFilter of
// Option. Its error type is struct{}: RaiseError yields None.
type OptionInstance struct{}

// Option is the shared OptionInstance.
var Option OptionInstance

var (
	_ typeclass.MonadError[data.OptionK, struct{}]   = Option
	_ typeclass.CommutativeApplicative[data.OptionK] = Option
	_ typeclass.Alternative[data.OptionK]            = Option
	_ typeclass.TraverseFilter[data.OptionK]         = Option
	_ typeclass.UnorderedTraverse[data.OptionK]      = Option
)

func narrowOpt(fa optK) data.Option[erased] { return data.NarrowOption[erased](fa) }

func (OptionInstance) Map(fa optK, f func(erased) erased) optK {
	return data.MapOption(narrowOpt(fa), f)
}

func (OptionInstance) Map2(fa, fb optK, f func(erased, erased) erased) optK {
	a, ok := narrowOpt(fa).Get()
	if !ok {
		return data.None[erased]()
	}
	b, ok := narrowOpt(fb).Get()
	if !ok {
		return data.None[erased]()
	}
	return data.Some(f(a, b))
}

// Map2Eval leaves fb unforced when fa is None.
func (o OptionInstance) Map2Eval(fa optK, fb eval.Eval[optK], f func(erased, erased) erased) eval.Eval[optK] {
	if narrowOpt(fa).IsNone() {
		return eval.Now[optK](data.None[erased]())
	}
	return eval.Map(fb, func(b optK) optK { return o.Map2(fa, b, f) })
}

func (OptionInstance) Pure(a erased) optK { return data.Some(a) }

func (OptionInstance) Commutes() {}

func (OptionInstance) FlatMap(fa optK, f func(erased) optK) optK {
	if a, ok := narrowOpt(fa).Get(); ok {
		return f(a)
	}
	return data.None[erased]()
}

func (OptionInstance) TailRecM(a erased, f func(erased) kind.Of[data.OptionK, data.Either[erased, erased]]) optK {
	for {
		step, ok := data.NarrowOption[data.Either[erased, erased]](f(a)).Get()
		if !ok {
			return data.None[erased]()
		}
		if b, done := step.GetRight(); done {
			return data.Some(b)
		}
		a, _ = step.GetLeft()
	}
}

func (OptionInstance) RaiseError(struct{}) optK { return data.None[erased]() }

func (OptionInstance) HandleErrorWith(fa optK, f func(struct{}) optK) optK {
	if narrowOpt(fa).IsSome() {
		return fa
	}
	return f(struct{}{})
}

func (OptionInstance) CombineK(x, y optK) optK {
	return narrowOpt(x).OrElse(narrowOpt(y))
}

func (OptionInstance) Empty() optK { return data.None[erased]() }

func (OptionInstance) FoldLeft(fa optK, b erased, f func(erased, erased) erased) erased {
	if a, ok := narrowOpt(fa).Get(); ok {
		return f(b, a)
	}
	return b
}

func (OptionInstance) FoldRight(fa optK, lb eval.Eval[erased], f func(erased, eval.Eval[erased]) eval.Eval[erased]) eval.Eval[erased] {
	if a, ok := narrowOpt(fa).Get(); ok {
		return f(a, lb)
	}
	return lb
}

func (OptionInstance) Traverse(g typeclass.Applicative[erased], fa optK, f func(erased) kind.Of[erased, erased]) kind.Of[erased, erased] {
	a, ok := narrowOpt(fa).Get()
	if !ok {
		return g.Pure(data.None[erased]())
	}
	return g.Map(f(a), func(b erased) erased { return data.Some(b) })
}

func (o OptionInstance) UnorderedTraverse(g typeclass.CommutativeApplicative[erased], fa optK, f func(erased) kind.Of[erased, erased]) kind.Of[erased, erased] {
	return o.Traverse(g, fa, f)
}

func (OptionInstance) MapFilter(fa optK, f func(erased) data.Option[erased]) optK {
	if a, ok := narrowOpt(fa).Get(); ok {
		return f(a)
	}
	return data.None[erased]()
}

func (OptionInstance) TraverseFilter(g typeclass.Applicative[erased], fa optK, f func(erased) kind.Of[erased, data.Option[erased]]) kind.Of[erased, erased] {
	a, ok := narrowOpt(fa).Get()
	if !ok {
		return g.Pure(data.None[erased]())
	}
	return g.Map(f(a), func(o erased) erased { return kind.Cast[data.Option[erased]](o) })
}
