package typeclass

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

// FunctorFilter maps and drops elements in one pass.
type FunctorFilter[F any] interface {
	Functor[F]
	MapFilter(fa kind.Of[F, Erased], f func(Erased) data.Option[Erased]) kind.Of[F, Erased]
}

// TraverseFilter is a traversal that may drop elements.
type TraverseFilter[F any] interface {
	FunctorFilter[F]
	Traverse[F]
	TraverseFilter(g Applicative[Erased], fa kind.Of[F, Erased], f func(Erased) kind.Of[Erased, data.Option[Erased]]) kind.Of[Erased, Erased]
}

// MapFilter keeps the Some results of f.
func MapFilter[F, A, B any](ff FunctorFilter[F], fa kind.Of[F, A], f func(A) data.Option[B]) kind.Of[F, B] {
	return ff.MapFilter(fa, func(a Erased) data.Option[Erased] {
		return kind.Cast[data.Option[Erased]](f(kind.Cast[A](a)))
	})
}

// Filter keeps the elements satisfying p.
func Filter[F, A any](ff FunctorFilter[F], fa kind.Of[F, A], p func(A) bool) kind.Of[F, A] {
	return ff.MapFilter(fa, func(a Erased) data.Option[Erased] {
		if p(kind.Cast[A](a)) {
			return data.Some(a)
		}
		return data.None[Erased]()
	})
}

// FlattenOption drops the None elements of fa.
func FlattenOption[F, A any](ff FunctorFilter[F], fa kind.Of[F, data.Option[A]]) kind.Of[F, A] {
	return ff.MapFilter(fa, func(o Erased) data.Option[Erased] {
		return kind.Cast[data.Option[Erased]](o)
	})
}

// TraverseFilterA traverses fa with f and keeps the Some results.
func TraverseFilterA[F, G, A, B any](tf TraverseFilter[F], g Applicative[G], fa kind.Of[F, A], f func(A) kind.Of[G, data.Option[B]]) kind.Of[G, kind.Of[F, B]] {
	res := tf.TraverseFilter(ForgetApplicative(g), fa, func(a Erased) kind.Of[Erased, data.Option[Erased]] {
		return kind.Forget[G, data.Option[B]](f(kind.Cast[A](a)))
	})
	return kind.Remember[G, kind.Of[F, B]](res)
}

// SequenceFilter sequences fgoa and keeps the Some results.
func SequenceFilter[F, G, A any](tf TraverseFilter[F], g Applicative[G], fgoa kind.Of[F, kind.Of[G, data.Option[A]]]) kind.Of[G, kind.Of[F, A]] {
	return TraverseFilterA[F, G, kind.Of[G, data.Option[A]], A](tf, g, fgoa, func(goa kind.Of[G, data.Option[A]]) kind.Of[G, data.Option[A]] { return goa })
}

// FilterA keeps the elements for which the effectful p yields true.
func FilterA[F, G, A any](tf TraverseFilter[F], g Applicative[G], fa kind.Of[F, A], p func(A) kind.Of[G, bool]) kind.Of[G, kind.Of[F, A]] {
	return TraverseFilterA[F, G, A, A](tf, g, fa, func(a A) kind.Of[G, data.Option[A]] {
		return Map[G, bool, data.Option[A]](g, p(a), func(keep bool) data.Option[A] {
			if keep {
				return data.Some(a)
			}
			return data.None[A]()
		})
	})
}
