package parallel

import (
	"fmt"

	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kernel"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

// ParTraverse applies f to every element of ta, combines the results in F and
// returns them in M. The order of the results follows ta.
func ParTraverse[T, M, F, A, B any](tr typeclass.Traverse[T], p Parallel[M, F], ta kind.Of[T, A], f func(A) kind.Of[M, B]) kind.Of[M, kind.Of[T, B]] {
	gtb := typeclass.TraverseA[T, F, A, B](tr, p.Applicative(), ta, func(a A) kind.Of[F, B] {
		return p.Parallel(f(a))
	})
	return p.Sequential(gtb)
}

// ParSequence is ParTraverse with the identity function.
func ParSequence[T, M, F, A any](tr typeclass.Traverse[T], p Parallel[M, F], tma kind.Of[T, kind.Of[M, A]]) kind.Of[M, kind.Of[T, A]] {
	return ParTraverse[T, M, F, kind.Of[M, A], A](tr, p, tma, func(ma kind.Of[M, A]) kind.Of[M, A] { return ma })
}

// ParTraverseVoid runs f on every element for its effect only.
func ParTraverseVoid[T, M, F, A, B any](fo typeclass.Foldable[T], p Parallel[M, F], ta kind.Of[T, A], f func(A) kind.Of[M, B]) kind.Of[M, struct{}] {
	fu := typeclass.TraverseVoid[T, F, A, B](fo, p.Applicative(), ta, func(a A) kind.Of[F, B] {
		return p.Parallel(f(a))
	})
	return p.Sequential(fu)
}

// ParSequenceVoid runs every effect of tma and discards the results.
func ParSequenceVoid[T, M, F, A any](fo typeclass.Foldable[T], p Parallel[M, F], tma kind.Of[T, kind.Of[M, A]]) kind.Of[M, struct{}] {
	return ParTraverseVoid[T, M, F, kind.Of[M, A], A](fo, p, tma, func(ma kind.Of[M, A]) kind.Of[M, A] { return ma })
}

// ParFlatTraverse traverses with f and flattens the nested T.
func ParFlatTraverse[T, M, F, A, B any](tr typeclass.Traverse[T], fm typeclass.FlatMap[T], p Parallel[M, F], ta kind.Of[T, A], f func(A) kind.Of[M, kind.Of[T, B]]) kind.Of[M, kind.Of[T, B]] {
	gtb := typeclass.FlatTraverse[T, F, A, B](tr, fm, p.Applicative(), ta, func(a A) kind.Of[F, kind.Of[T, B]] {
		return p.Parallel(f(a))
	})
	return p.Sequential(gtb)
}

// ParFlatSequence sequences tmta in parallel and flattens.
func ParFlatSequence[T, M, F, A any](tr typeclass.Traverse[T], fm typeclass.FlatMap[T], p Parallel[M, F], tmta kind.Of[T, kind.Of[M, kind.Of[T, A]]]) kind.Of[M, kind.Of[T, A]] {
	return ParFlatTraverse[T, M, F, kind.Of[M, kind.Of[T, A]], A](tr, fm, p, tmta, func(mta kind.Of[M, kind.Of[T, A]]) kind.Of[M, kind.Of[T, A]] { return mta })
}

// ParTraverseFilter traverses in parallel and keeps the Some results.
func ParTraverseFilter[T, M, F, A, B any](tf typeclass.TraverseFilter[T], p Parallel[M, F], ta kind.Of[T, A], f func(A) kind.Of[M, data.Option[B]]) kind.Of[M, kind.Of[T, B]] {
	gtb := typeclass.TraverseFilterA[T, F, A, B](tf, p.Applicative(), ta, func(a A) kind.Of[F, data.Option[B]] {
		return p.Parallel(f(a))
	})
	return p.Sequential(gtb)
}

// ParSequenceFilter sequences in parallel and keeps the Some results.
func ParSequenceFilter[T, M, F, A any](tf typeclass.TraverseFilter[T], p Parallel[M, F], tmoa kind.Of[T, kind.Of[M, data.Option[A]]]) kind.Of[M, kind.Of[T, A]] {
	return ParTraverseFilter[T, M, F, kind.Of[M, data.Option[A]], A](tf, p, tmoa, func(moa kind.Of[M, data.Option[A]]) kind.Of[M, data.Option[A]] { return moa })
}

// ParFilterA keeps the elements for which the effectful predicate holds,
// evaluating the predicates in parallel.
func ParFilterA[T, M, F, A any](tf typeclass.TraverseFilter[T], p Parallel[M, F], ta kind.Of[T, A], pred func(A) kind.Of[M, bool]) kind.Of[M, kind.Of[T, A]] {
	gta := typeclass.FilterA[T, F, A](tf, p.Applicative(), ta, func(a A) kind.Of[F, bool] {
		return p.Parallel(pred(a))
	})
	return p.Sequential(gta)
}

// ParBitraverse traverses both sides of tab in parallel.
func ParBitraverse[T, M, F, A, B, C, D any](bt typeclass.Bitraverse[T], p Parallel[M, F], tab kind.Of2[T, A, B], f func(A) kind.Of[M, C], g func(B) kind.Of[M, D]) kind.Of[M, kind.Of2[T, C, D]] {
	res := typeclass.BitraverseA[T, F, A, B, C, D](bt, p.Applicative(), tab,
		func(a A) kind.Of[F, C] { return p.Parallel(f(a)) },
		func(b B) kind.Of[F, D] { return p.Parallel(g(b)) },
	)
	return p.Sequential(res)
}

// ParBisequence sequences both sides of tab in parallel.
func ParBisequence[T, M, F, A, B any](bt typeclass.Bitraverse[T], p Parallel[M, F], tab kind.Of2[T, kind.Of[M, A], kind.Of[M, B]]) kind.Of[M, kind.Of2[T, A, B]] {
	return ParBitraverse[T, M, F, kind.Of[M, A], kind.Of[M, B], A, B](bt, p, tab,
		func(ma kind.Of[M, A]) kind.Of[M, A] { return ma },
		func(mb kind.Of[M, B]) kind.Of[M, B] { return mb },
	)
}

// ParLeftTraverse traverses the left side of tab in parallel.
func ParLeftTraverse[T, M, F, A, B, C any](bt typeclass.Bitraverse[T], p Parallel[M, F], tab kind.Of2[T, A, B], f func(A) kind.Of[M, C]) kind.Of[M, kind.Of2[T, C, B]] {
	res := typeclass.LeftTraverse[T, F, A, B, C](bt, p.Applicative(), tab, func(a A) kind.Of[F, C] {
		return p.Parallel(f(a))
	})
	return p.Sequential(res)
}

// ParReplicateA runs ma n times in parallel and collects the results in order.
func ParReplicateA[M, F, A any](p Parallel[M, F], n int, ma kind.Of[M, A]) kind.Of[M, []A] {
	return p.Sequential(typeclass.ReplicateA[F, A](p.Applicative(), n, ToParallel[M, F, A](p, ma)))
}

// ParReplicateAVoid runs ma n times in parallel for its effect only.
func ParReplicateAVoid[M, F, A any](p Parallel[M, F], n int, ma kind.Of[M, A]) kind.Of[M, struct{}] {
	return p.Sequential(typeclass.ReplicateAVoid[F, A](p.Applicative(), n, ToParallel[M, F, A](p, ma)))
}

// commutativeOf requires the parallel applicative to be commutative.
func commutativeOf[M, F any](p Parallel[M, F]) typeclass.CommutativeApplicative[F] {
	ca, ok := p.Applicative().(typeclass.CommutativeApplicative[F])
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrNotCommutative, p.Applicative()))
	}
	return ca
}

// ParUnorderedTraverse traverses ta in parallel in no particular order. The
// parallel side of p must be a CommutativeApplicative.
func ParUnorderedTraverse[T, M, F, A, B any](ut typeclass.UnorderedTraverse[T], p Parallel[M, F], ta kind.Of[T, A], f func(A) kind.Of[M, B]) kind.Of[M, kind.Of[T, B]] {
	res := typeclass.UnorderedTraverseA[T, F, A, B](ut, commutativeOf[M, F](p), ta, func(a A) kind.Of[F, B] {
		return p.Parallel(f(a))
	})
	return p.Sequential(res)
}

// ParUnorderedSequence sequences tma in parallel in no particular order.
func ParUnorderedSequence[T, M, F, A any](ut typeclass.UnorderedTraverse[T], p Parallel[M, F], tma kind.Of[T, kind.Of[M, A]]) kind.Of[M, kind.Of[T, A]] {
	return ParUnorderedTraverse[T, M, F, kind.Of[M, A], A](ut, p, tma, func(ma kind.Of[M, A]) kind.Of[M, A] { return ma })
}

// ParUnorderedFlatTraverse traverses in no particular order and flattens.
func ParUnorderedFlatTraverse[T, M, F, A, B any](ut typeclass.UnorderedTraverse[T], fm typeclass.FlatMap[T], p Parallel[M, F], ta kind.Of[T, A], f func(A) kind.Of[M, kind.Of[T, B]]) kind.Of[M, kind.Of[T, B]] {
	nested := ParUnorderedTraverse[T, M, F, A, kind.Of[T, B]](ut, p, ta, f)
	return typeclass.Map[M, kind.Of[T, kind.Of[T, B]], kind.Of[T, B]](p.Monad(), nested, func(ttb kind.Of[T, kind.Of[T, B]]) kind.Of[T, B] {
		return typeclass.Flatten[T, B](fm, ttb)
	})
}

// ParNonEmptyTraverse traverses a non-empty ta in parallel using only the
// Apply of p.
func ParNonEmptyTraverse[T, M, F, A, B any](nt typeclass.NonEmptyTraverse[T], p NonEmptyParallel[M, F], ta kind.Of[T, A], f func(A) kind.Of[M, B]) kind.Of[M, kind.Of[T, B]] {
	res := typeclass.NonEmptyTraverseA[T, F, A, B](nt, p.Apply(), ta, func(a A) kind.Of[F, B] {
		return p.Parallel(f(a))
	})
	return p.Sequential(res)
}

// ParNonEmptySequence sequences a non-empty tma in parallel.
func ParNonEmptySequence[T, M, F, A any](nt typeclass.NonEmptyTraverse[T], p NonEmptyParallel[M, F], tma kind.Of[T, kind.Of[M, A]]) kind.Of[M, kind.Of[T, A]] {
	return ParNonEmptyTraverse[T, M, F, kind.Of[M, A], A](nt, p, tma, func(ma kind.Of[M, A]) kind.Of[M, A] { return ma })
}

// ParAp applies the functions of mf to the values of ma, both evaluated
// independently.
func ParAp[M, F, A, B any](p NonEmptyParallel[M, F], mf kind.Of[M, func(A) B], ma kind.Of[M, A]) kind.Of[M, B] {
	return p.Sequential(typeclass.Ap[F, A, B](p.Apply(), ToParallel[M, F, func(A) B](p, mf), ToParallel[M, F, A](p, ma)))
}

// ParAp2 applies two-argument functions to independently evaluated values.
func ParAp2[M, F, A, B, C any](p NonEmptyParallel[M, F], mf kind.Of[M, func(A, B) C], ma kind.Of[M, A], mb kind.Of[M, B]) kind.Of[M, C] {
	return p.Sequential(typeclass.Ap2[F, A, B, C](p.Apply(), ToParallel[M, F, func(A, B) C](p, mf), ToParallel[M, F, A](p, ma), ToParallel[M, F, B](p, mb)))
}

// ParProduct pairs ma and mb evaluated independently. For successful
// computations the pair equals the one typeclass.Product gives on M.
func ParProduct[M, F, A, B any](p NonEmptyParallel[M, F], ma kind.Of[M, A], mb kind.Of[M, B]) kind.Of[M, data.Pair[A, B]] {
	return p.Sequential(typeclass.Product[F, A, B](p.Apply(), ToParallel[M, F, A](p, ma), ToParallel[M, F, B](p, mb)))
}

// ParProductL keeps the result of ma.
func ParProductL[M, F, A, B any](p NonEmptyParallel[M, F], ma kind.Of[M, A], mb kind.Of[M, B]) kind.Of[M, A] {
	return p.Sequential(typeclass.ProductL[F, A, B](p.Apply(), ToParallel[M, F, A](p, ma), ToParallel[M, F, B](p, mb)))
}

// ParProductR keeps the result of mb.
func ParProductR[M, F, A, B any](p NonEmptyParallel[M, F], ma kind.Of[M, A], mb kind.Of[M, B]) kind.Of[M, B] {
	return p.Sequential(typeclass.ProductR[F, A, B](p.Apply(), ToParallel[M, F, A](p, ma), ToParallel[M, F, B](p, mb)))
}

// ParMap2 combines independently evaluated ma and mb with f.
func ParMap2[M, F, A, B, C any](p NonEmptyParallel[M, F], ma kind.Of[M, A], mb kind.Of[M, B], f func(A, B) C) kind.Of[M, C] {
	return p.Sequential(typeclass.Map2[F, A, B, C](p.Apply(), ToParallel[M, F, A](p, ma), ToParallel[M, F, B](p, mb), f))
}

// ParMap3 combines three independently evaluated values with f.
func ParMap3[M, F, A, B, C, D any](p NonEmptyParallel[M, F], ma kind.Of[M, A], mb kind.Of[M, B], mc kind.Of[M, C], f func(A, B, C) D) kind.Of[M, D] {
	return p.Sequential(typeclass.Map3[F, A, B, C, D](p.Apply(), ToParallel[M, F, A](p, ma), ToParallel[M, F, B](p, mb), ToParallel[M, F, C](p, mc), f))
}

// ParFoldMapA maps every element with f in parallel and combines the results
// with m.
func ParFoldMapA[T, M, F, A, B any](fo typeclass.Foldable[T], p Parallel[M, F], m kernel.Monoid[B], ta kind.Of[T, A], f func(A) kind.Of[M, B]) kind.Of[M, B] {
	res := typeclass.FoldMapA[T, F, A, B](fo, p.Applicative(), m, ta, func(a A) kind.Of[F, B] {
		return p.Parallel(f(a))
	})
	return p.Sequential(res)
}
