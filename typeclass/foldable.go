package typeclass

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kernel"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

// Foldable reduces the elements of F to a summary value.
//
// FoldRight must be lazy in its second argument: when f returns without
// forcing lb, no later element is visited. FoldLeft is strict.
type Foldable[F any] interface {
	FoldLeft(fa kind.Of[F, Erased], b Erased, f func(Erased, Erased) Erased) Erased
	FoldRight(fa kind.Of[F, Erased], lb eval.Eval[Erased], f func(Erased, eval.Eval[Erased]) eval.Eval[Erased]) eval.Eval[Erased]
}

// Traverse visits every element of F with an effect and rebuilds F inside
// that effect, in the original order.
type Traverse[F any] interface {
	Functor[F]
	Foldable[F]
	Traverse(g Applicative[Erased], fa kind.Of[F, Erased], f func(Erased) kind.Of[Erased, Erased]) kind.Of[Erased, Erased]
}

// UnorderedTraverse is a traversal whose order is unspecified, so it needs a
// commutative effect.
type UnorderedTraverse[F any] interface {
	UnorderedTraverse(g CommutativeApplicative[Erased], fa kind.Of[F, Erased], f func(Erased) kind.Of[Erased, Erased]) kind.Of[Erased, Erased]
}

// NonEmptyTraverse traverses containers that always hold an element, so an
// Apply without Pure is enough.
type NonEmptyTraverse[F any] interface {
	Traverse[F]
	NonEmptyTraverse(g Apply[Erased], fa kind.Of[F, Erased], f func(Erased) kind.Of[Erased, Erased]) kind.Of[Erased, Erased]
	ReduceLeft(fa kind.Of[F, Erased], f func(Erased, Erased) Erased) Erased
}

// Bitraverse traverses both sides of a two-parameter constructor.
type Bitraverse[F any] interface {
	Bimap(fab kind.Of2[F, Erased, Erased], f, g func(Erased) Erased) kind.Of2[F, Erased, Erased]
	Bitraverse(g Applicative[Erased], fab kind.Of2[F, Erased, Erased], f, h func(Erased) kind.Of[Erased, Erased]) kind.Of[Erased, Erased]
}

// FoldLeft folds fa from the front.
func FoldLeft[F, A, B any](fo Foldable[F], fa kind.Of[F, A], b B, f func(B, A) B) B {
	return kind.Cast[B](fo.FoldLeft(fa, b, func(acc, a Erased) Erased {
		return f(kind.Cast[B](acc), kind.Cast[A](a))
	}))
}

// FoldRight folds fa from the back, lazily.
func FoldRight[F, A, B any](fo Foldable[F], fa kind.Of[F, A], lb eval.Eval[B], f func(A, eval.Eval[B]) eval.Eval[B]) eval.Eval[B] {
	res := fo.FoldRight(fa, eraseEval(lb), func(a Erased, rest eval.Eval[Erased]) eval.Eval[Erased] {
		return eraseEval(f(kind.Cast[A](a), castEval[B](rest)))
	})
	return castEval[B](res)
}

// FoldMap maps every element into a monoid and combines the results.
func FoldMap[F, A, B any](fo Foldable[F], m kernel.Monoid[B], fa kind.Of[F, A], f func(A) B) B {
	return FoldLeft(fo, fa, m.Empty(), func(acc B, a A) B { return m.Combine(acc, f(a)) })
}

// FoldMapA is FoldMap with an effectful f, combined through g.
func FoldMapA[F, G, A, B any](fo Foldable[F], g Applicative[G], m kernel.Monoid[B], fa kind.Of[F, A], f func(A) kind.Of[G, B]) kind.Of[G, B] {
	empty := eval.Now(g.Pure(m.Empty()))
	res := FoldRight(fo, fa, empty, func(a A, lgb eval.Eval[kind.Of[G, Erased]]) eval.Eval[kind.Of[G, Erased]] {
		return g.Map2Eval(f(a), lgb, func(x, y Erased) Erased {
			return m.Combine(kind.Cast[B](x), kind.Cast[B](y))
		})
	})
	return res.Value()
}

// Exists reports whether p holds for some element, stopping at the first.
func Exists[F, A any](fo Foldable[F], fa kind.Of[F, A], p func(A) bool) bool {
	return FoldRight(fo, fa, eval.False, func(a A, rest eval.Eval[bool]) eval.Eval[bool] {
		if p(a) {
			return eval.True
		}
		return rest
	}).Value()
}

// Forall reports whether p holds for every element, stopping at the first
// failure.
func Forall[F, A any](fo Foldable[F], fa kind.Of[F, A], p func(A) bool) bool {
	return FoldRight(fo, fa, eval.True, func(a A, rest eval.Eval[bool]) eval.Eval[bool] {
		if !p(a) {
			return eval.False
		}
		return rest
	}).Value()
}

// ToSlice collects the elements of a finite fa.
func ToSlice[F, A any](fo Foldable[F], fa kind.Of[F, A]) []A {
	return FoldLeft(fo, fa, []A(nil), func(acc []A, a A) []A { return append(acc, a) })
}

// foldSource is one step of a lazy walk over a Foldable, built from FoldRight.
// A nil source marks the end.
type foldSource struct {
	head Erased
	rest eval.Eval[Erased]
}

func sourceOf[F any](fo Foldable[F], fa kind.Of[F, Erased]) eval.Eval[Erased] {
	end := eval.Now[Erased](nil)
	return fo.FoldRight(fa, end, func(a Erased, rest eval.Eval[Erased]) eval.Eval[Erased] {
		return eval.Now[Erased](&foldSource{head: a, rest: rest})
	})
}

type foldState[B any] struct {
	src eval.Eval[Erased]
	acc B
}

// FoldM folds fa from the front through the monadic f. The loop runs in g's
// TailRecM, so g decides when to stop (a None or a Left ends the fold) and
// elements after that point are never visited.
func FoldM[F, G, A, B any](fo Foldable[F], g Monad[G], fa kind.Of[F, A], z B, f func(B, A) kind.Of[G, B]) kind.Of[G, B] {
	start := foldState[B]{src: sourceOf[F](fo, fa), acc: z}
	return g.TailRecM(start, func(s Erased) kind.Of[G, data.Either[Erased, Erased]] {
		st := kind.Cast[foldState[B]](s)
		step := kind.Cast[*foldSource](st.src.Value())
		if step == nil {
			return g.Pure(data.Right[Erased, Erased](st.acc))
		}
		return g.Map(f(st.acc, kind.Cast[A](step.head)), func(b Erased) Erased {
			return data.Left[Erased, Erased](foldState[B]{src: step.rest, acc: kind.Cast[B](b)})
		})
	})
}

// TraverseA applies f to every element of fa and collects the results in g.
func TraverseA[F, G, A, B any](tr Traverse[F], g Applicative[G], fa kind.Of[F, A], f func(A) kind.Of[G, B]) kind.Of[G, kind.Of[F, B]] {
	res := tr.Traverse(ForgetApplicative(g), fa, func(a Erased) kind.Of[Erased, Erased] {
		return kind.Forget[G, B](f(kind.Cast[A](a)))
	})
	return kind.Remember[G, kind.Of[F, B]](res)
}

// Sequence turns an F of effects into an effect of F.
func Sequence[F, G, A any](tr Traverse[F], g Applicative[G], fga kind.Of[F, kind.Of[G, A]]) kind.Of[G, kind.Of[F, A]] {
	return TraverseA[F, G, kind.Of[G, A], A](tr, g, fga, func(ga kind.Of[G, A]) kind.Of[G, A] { return ga })
}

// FlatTraverse traverses with f and flattens the nested F.
func FlatTraverse[F, G, A, B any](tr Traverse[F], m FlatMap[F], g Applicative[G], fa kind.Of[F, A], f func(A) kind.Of[G, kind.Of[F, B]]) kind.Of[G, kind.Of[F, B]] {
	nested := TraverseA[F, G, A, kind.Of[F, B]](tr, g, fa, f)
	return Map[G, kind.Of[F, kind.Of[F, B]], kind.Of[F, B]](g, nested, func(ffb kind.Of[F, kind.Of[F, B]]) kind.Of[F, B] {
		return Flatten[F, B](m, ffb)
	})
}

// FlatSequence sequences and flattens.
func FlatSequence[F, G, A any](tr Traverse[F], m FlatMap[F], g Applicative[G], fgfa kind.Of[F, kind.Of[G, kind.Of[F, A]]]) kind.Of[G, kind.Of[F, A]] {
	return FlatTraverse[F, G, kind.Of[G, kind.Of[F, A]], A](tr, m, g, fgfa, func(gfa kind.Of[G, kind.Of[F, A]]) kind.Of[G, kind.Of[F, A]] { return gfa })
}

// TraverseVoid runs f for its effect on every element and discards the
// results. Like TraverseA it stops as soon as g short-circuits.
func TraverseVoid[F, G, A, B any](fo Foldable[F], g Applicative[G], fa kind.Of[F, A], f func(A) kind.Of[G, B]) kind.Of[G, struct{}] {
	unit := eval.Now(g.Pure(struct{}{}))
	res := FoldRight[F, A, kind.Of[G, Erased]](fo, fa, unit, func(a A, lgu eval.Eval[kind.Of[G, Erased]]) eval.Eval[kind.Of[G, Erased]] {
		return g.Map2Eval(f(a), lgu, func(_, u Erased) Erased { return u })
	})
	return res.Value()
}

// SequenceVoid runs every effect in fga and discards the results.
func SequenceVoid[F, G, A any](fo Foldable[F], g Applicative[G], fga kind.Of[F, kind.Of[G, A]]) kind.Of[G, struct{}] {
	return TraverseVoid[F, G, kind.Of[G, A], A](fo, g, fga, func(ga kind.Of[G, A]) kind.Of[G, A] { return ga })
}

// UnorderedTraverseA traverses fa with a commutative effect.
func UnorderedTraverseA[F, G, A, B any](ut UnorderedTraverse[F], g CommutativeApplicative[G], fa kind.Of[F, A], f func(A) kind.Of[G, B]) kind.Of[G, kind.Of[F, B]] {
	res := ut.UnorderedTraverse(ForgetCommutative(g), fa, func(a Erased) kind.Of[Erased, Erased] {
		return kind.Forget[G, B](f(kind.Cast[A](a)))
	})
	return kind.Remember[G, kind.Of[F, B]](res)
}

// UnorderedSequence sequences fga with a commutative effect.
func UnorderedSequence[F, G, A any](ut UnorderedTraverse[F], g CommutativeApplicative[G], fga kind.Of[F, kind.Of[G, A]]) kind.Of[G, kind.Of[F, A]] {
	return UnorderedTraverseA[F, G, kind.Of[G, A], A](ut, g, fga, func(ga kind.Of[G, A]) kind.Of[G, A] { return ga })
}

// NonEmptyTraverseA traverses a non-empty fa with an Apply.
func NonEmptyTraverseA[F, G, A, B any](nt NonEmptyTraverse[F], g Apply[G], fa kind.Of[F, A], f func(A) kind.Of[G, B]) kind.Of[G, kind.Of[F, B]] {
	res := nt.NonEmptyTraverse(ForgetApply(g), fa, func(a Erased) kind.Of[Erased, Erased] {
		return kind.Forget[G, B](f(kind.Cast[A](a)))
	})
	return kind.Remember[G, kind.Of[F, B]](res)
}

// NonEmptySequence sequences a non-empty fga with an Apply.
func NonEmptySequence[F, G, A any](nt NonEmptyTraverse[F], g Apply[G], fga kind.Of[F, kind.Of[G, A]]) kind.Of[G, kind.Of[F, A]] {
	return NonEmptyTraverseA[F, G, kind.Of[G, A], A](nt, g, fga, func(ga kind.Of[G, A]) kind.Of[G, A] { return ga })
}

// ReduceLeft combines the elements of a non-empty fa from the front.
func ReduceLeft[F, A any](nt NonEmptyTraverse[F], fa kind.Of[F, A], f func(A, A) A) A {
	return kind.Cast[A](nt.ReduceLeft(fa, func(x, y Erased) Erased {
		return f(kind.Cast[A](x), kind.Cast[A](y))
	}))
}

// Bimap maps both sides of fab.
func Bimap[F, A, B, C, D any](bt Bitraverse[F], fab kind.Of2[F, A, B], f func(A) C, g func(B) D) kind.Of2[F, C, D] {
	return bt.Bimap(fab,
		func(a Erased) Erased { return f(kind.Cast[A](a)) },
		func(b Erased) Erased { return g(kind.Cast[B](b)) },
	)
}

// BitraverseA traverses both sides of fab, left first.
func BitraverseA[F, G, A, B, C, D any](bt Bitraverse[F], g Applicative[G], fab kind.Of2[F, A, B], f func(A) kind.Of[G, C], h func(B) kind.Of[G, D]) kind.Of[G, kind.Of2[F, C, D]] {
	res := bt.Bitraverse(ForgetApplicative(g), fab,
		func(a Erased) kind.Of[Erased, Erased] { return kind.Forget[G, C](f(kind.Cast[A](a))) },
		func(b Erased) kind.Of[Erased, Erased] { return kind.Forget[G, D](h(kind.Cast[B](b))) },
	)
	return kind.Remember[G, kind.Of2[F, C, D]](res)
}

// Bisequence sequences both sides of fab.
func Bisequence[F, G, A, B any](bt Bitraverse[F], g Applicative[G], fab kind.Of2[F, kind.Of[G, A], kind.Of[G, B]]) kind.Of[G, kind.Of2[F, A, B]] {
	return BitraverseA[F, G, kind.Of[G, A], kind.Of[G, B], A, B](bt, g, fab,
		func(ga kind.Of[G, A]) kind.Of[G, A] { return ga },
		func(gb kind.Of[G, B]) kind.Of[G, B] { return gb },
	)
}

// LeftTraverse traverses the left side of fab and keeps the right side.
func LeftTraverse[F, G, A, B, C any](bt Bitraverse[F], g Applicative[G], fab kind.Of2[F, A, B], f func(A) kind.Of[G, C]) kind.Of[G, kind.Of2[F, C, B]] {
	return BitraverseA[F, G, A, B, C, B](bt, g, fab, f, func(b B) kind.Of[G, B] { return g.Pure(b) })
}

func eraseEval[A any](e eval.Eval[A]) eval.Eval[Erased] {
	return kind.Cast[eval.Eval[Erased]](e)
}

func castEval[A any](e eval.Eval[Erased]) eval.Eval[A] {
	return kind.Cast[eval.Eval[A]](e)
}
