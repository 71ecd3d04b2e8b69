package instances

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

// NonEmptySliceInstance is the Monad, NonEmptyTraverse and SemigroupK of
// NonEmptySlice. Its Map2 is the cartesian product.
type NonEmptySliceInstance struct{}

// NonEmptySlice is the shared NonEmptySliceInstance.
var NonEmptySlice NonEmptySliceInstance

var (
	_ typeclass.Monad[data.NonEmptySliceK]            = NonEmptySlice
	_ typeclass.NonEmptyTraverse[data.NonEmptySliceK] = NonEmptySlice
	_ typeclass.SemigroupK[data.NonEmptySliceK]       = NonEmptySlice
)

type nelK = kind.Of[data.NonEmptySliceK, erased]

func elemsOf(fa nelK) []erased { return data.NarrowNonEmpty[erased](fa).Erased() }

func (NonEmptySliceInstance) Map(fa nelK, f func(erased) erased) nelK {
	src := elemsOf(fa)
	out := make([]erased, len(src))
	for i, a := range src {
		out[i] = f(a)
	}
	return data.NonEmptyErased[erased](out)
}

func (NonEmptySliceInstance) Map2(fa, fb nelK, f func(erased, erased) erased) nelK {
	as, bs := elemsOf(fa), elemsOf(fb)
	out := make([]erased, 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			out = append(out, f(a, b))
		}
	}
	return data.NonEmptyErased[erased](out)
}

func (n NonEmptySliceInstance) Map2Eval(fa nelK, fb eval.Eval[nelK], f func(erased, erased) erased) eval.Eval[nelK] {
	return typeclass.DefaultMap2Eval[data.NonEmptySliceK](n, fa, fb, f)
}

func (NonEmptySliceInstance) Pure(a erased) nelK { return data.NonEmpty(a) }

func (NonEmptySliceInstance) FlatMap(fa nelK, f func(erased) nelK) nelK {
	var out []erased
	for _, a := range elemsOf(fa) {
		out = append(out, elemsOf(f(a))...)
	}
	return data.NonEmptyErased[erased](out)
}

// TailRecM expands seeds depth first with an explicit stack, emitting results
// in the order the naive recursion would.
func (NonEmptySliceInstance) TailRecM(a erased, f func(erased) kind.Of[data.NonEmptySliceK, data.Either[erased, erased]]) nelK {
	var out []erased
	stack := [][]erased{elemsOf(kind.Of[data.NonEmptySliceK, erased](f(a)))}
	for len(stack) > 0 {
		top := len(stack) - 1
		pending := stack[top]
		if len(pending) == 0 {
			stack = stack[:top]
			continue
		}
		stack[top] = pending[1:]
		e := kind.Cast[data.Either[erased, erased]](pending[0])
		if b, done := e.GetRight(); done {
			out = append(out, b)
			continue
		}
		next, _ := e.GetLeft()
		stack = append(stack, elemsOf(kind.Of[data.NonEmptySliceK, erased](f(next))))
	}
	return data.NonEmptyErased[erased](out)
}

func (NonEmptySliceInstance) CombineK(x, y nelK) nelK {
	xs, ys := elemsOf(x), elemsOf(y)
	out := make([]erased, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return data.NonEmptyErased[erased](append(out, ys...))
}

func (NonEmptySliceInstance) FoldLeft(fa nelK, b erased, f func(erased, erased) erased) erased {
	for _, a := range elemsOf(fa) {
		b = f(b, a)
	}
	return b
}

func (NonEmptySliceInstance) FoldRight(fa nelK, lb eval.Eval[erased], f func(erased, eval.Eval[erased]) eval.Eval[erased]) eval.Eval[erased] {
	elems := elemsOf(fa)
	var step func(int) eval.Eval[erased]
	step = func(i int) eval.Eval[erased] {
		if i == len(elems) {
			return lb
		}
		return f(elems[i], eval.Defer(func() eval.Eval[erased] { return step(i + 1) }))
	}
	return eval.Defer(func() eval.Eval[erased] { return step(0) })
}

func (NonEmptySliceInstance) ReduceLeft(fa nelK, f func(erased, erased) erased) erased {
	elems := elemsOf(fa)
	acc := elems[0]
	for _, a := range elems[1:] {
		acc = f(acc, a)
	}
	return acc
}

func (n NonEmptySliceInstance) Traverse(g typeclass.Applicative[erased], fa nelK, f func(erased) kind.Of[erased, erased]) kind.Of[erased, erased] {
	return n.NonEmptyTraverse(g, fa, f)
}

// NonEmptyTraverse starts from the last element, so Pure is never needed.
// Effects still run front to back and stop where g short-circuits.
func (NonEmptySliceInstance) NonEmptyTraverse(g typeclass.Apply[erased], fa nelK, f func(erased) kind.Of[erased, erased]) kind.Of[erased, erased] {
	elems := elemsOf(fa)
	last := len(elems) - 1
	var step func(int) eval.Eval[kind.Of[erased, erased]]
	step = func(i int) eval.Eval[kind.Of[erased, erased]] {
		if i == last {
			return eval.Later(func() kind.Of[erased, erased] {
				return g.Map(f(elems[i]), func(b erased) erased { return &acc{head: b} })
			})
		}
		rest := eval.Defer(func() eval.Eval[kind.Of[erased, erased]] { return step(i + 1) })
		return g.Map2Eval(f(elems[i]), rest, func(b, tail erased) erased {
			return &acc{head: b, tail: kind.Cast[*acc](tail)}
		})
	}
	built := step(0).Value()
	return g.Map(built, func(l erased) erased {
		out := make([]erased, 0, len(elems))
		for c := kind.Cast[*acc](l); c != nil; c = c.tail {
			out = append(out, c.head)
		}
		return data.NonEmptyErased[erased](out)
	})
}

// acc is a front-to-back cons list assembled during traversal.
type acc struct {
	head erased
	tail *acc
}
