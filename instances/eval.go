package instances

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

// EvalInstance is the Monad of Eval. Nothing it builds is forced until
// Value is called.
type EvalInstance struct{}

// Eval is the shared EvalInstance.
var Eval EvalInstance

var _ typeclass.Monad[eval.K] = Eval

type evalK = kind.Of[eval.K, erased]

func narrowEval(fa evalK) eval.Eval[erased] { return eval.Narrow[erased](fa) }

func (EvalInstance) Map(fa evalK, f func(erased) erased) evalK {
	return eval.Map(narrowEval(fa), f)
}

func (EvalInstance) Map2(fa, fb evalK, f func(erased, erased) erased) evalK {
	return eval.Map2(narrowEval(fa), narrowEval(fb), f)
}

// Map2Eval defers forcing the outer fb until the result is forced.
func (EvalInstance) Map2Eval(fa evalK, fb eval.Eval[evalK], f func(erased, erased) erased) eval.Eval[evalK] {
	inner := eval.FlatMap(fb, func(b evalK) eval.Eval[erased] { return narrowEval(b) })
	return eval.Now[evalK](eval.Map2(narrowEval(fa), inner, f))
}

func (EvalInstance) Pure(a erased) evalK { return eval.Now(a) }

func (EvalInstance) FlatMap(fa evalK, f func(erased) evalK) evalK {
	return eval.FlatMap(narrowEval(fa), func(a erased) eval.Eval[erased] {
		return narrowEval(f(a))
	})
}

// TailRecM chains steps through Defer, so Value drains them in constant
// native stack.
func (EvalInstance) TailRecM(a erased, f func(erased) kind.Of[eval.K, data.Either[erased, erased]]) evalK {
	var loop func(erased) eval.Eval[erased]
	loop = func(s erased) eval.Eval[erased] {
		step := eval.Narrow[data.Either[erased, erased]](f(s))
		return eval.FlatMap(step, func(e data.Either[erased, erased]) eval.Eval[erased] {
			if b, done := e.GetRight(); done {
				return eval.Now(b)
			}
			next, _ := e.GetLeft()
			return eval.Defer(func() eval.Eval[erased] { return loop(next) })
		})
	}
	return loop(a)
}
