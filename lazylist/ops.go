package lazylist

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

// FoldLeft folds s from the front. It forces the whole sequence.
func FoldLeft[A, B any](s Seq[A], b B, f func(B, A) B) B {
	return typeclass.FoldLeft[K](Instance, s, b, f)
}

// FoldRight folds s lazily from the back. When f returns without forcing its
// second argument the rest of s is never visited, so folding an infinite
// sequence terminates as soon as f stops asking.
func FoldRight[A, B any](s Seq[A], lb eval.Eval[B], f func(A, eval.Eval[B]) eval.Eval[B]) eval.Eval[B] {
	return typeclass.FoldRight[K](Instance, s, lb, f)
}

// Traverse applies f to every element and collects the results in g, in the
// original order. An empty s gives g.Pure of the empty Seq.
func Traverse[G, A, B any](g typeclass.Applicative[G], s Seq[A], f func(A) kind.Of[G, B]) kind.Of[G, Seq[B]] {
	return typeclass.TraverseA[K, G](Instance, g, s, f)
}

// TailRecM expands a with f until every branch ends in a Right and emits
// those values left to right.
func TailRecM[A, B any](a A, f func(A) Seq[data.Either[A, B]]) Seq[B] {
	res := Instance.TailRecM(a, func(s erased) kind.Of[K, data.Either[erased, erased]] {
		return f(kind.Cast[A](s))
	})
	return Narrow[B](res)
}

// FoldM folds s from the front through g. It loops in g's TailRecM, so the
// fold stops where g short-circuits and the rest of s is never forced.
func FoldM[G, A, B any](g typeclass.Monad[G], s Seq[A], z B, f func(B, A) kind.Of[G, B]) kind.Of[G, B] {
	return g.TailRecM(data.Tuple(s, z), func(st erased) kind.Of[G, data.Either[erased, erased]] {
		rest, acc := kind.Cast[data.Pair[Seq[A], B]](st).Unpack()
		a, tail, ok := rest.Uncons()
		if !ok {
			return g.Pure(data.Right[erased, erased](acc))
		}
		return g.Map(f(acc, a), func(b erased) erased {
			return data.Left[erased, erased](data.Tuple(tail, kind.Cast[B](b)))
		})
	})
}

// AlignOf pairs s and other position by position up to the end of the
// longer one.
func AlignOf[A, B any](s Seq[A], other Seq[B]) Seq[data.Ior[A, B]] {
	return Narrow[data.Ior[A, B]](typeclass.AlignOf[K, A, B](Instance, s, other))
}

// AlignWith combines the aligned positions of s and other with f.
func AlignWith[A, B, C any](s Seq[A], other Seq[B], f func(data.Ior[A, B]) C) Seq[C] {
	return Narrow[C](typeclass.AlignWith[K](Instance, s, other, f))
}

// CoflatMap applies f to every non-empty suffix of s.
func CoflatMap[A, B any](s Seq[A], f func(Seq[A]) B) Seq[B] {
	res := Instance.CoflatMap(s, func(w seqK) erased { return f(Narrow[A](w)) })
	return Narrow[B](res)
}
