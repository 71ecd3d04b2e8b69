package typeclass

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

// SemigroupK combines two F values regardless of their element type.
type SemigroupK[F any] interface {
	CombineK(x, y kind.Of[F, Erased]) kind.Of[F, Erased]
}

// MonoidK is a SemigroupK with an empty F.
type MonoidK[F any] interface {
	SemigroupK[F]
	Empty() kind.Of[F, Erased]
}

// Alternative is an Applicative that is also a MonoidK.
type Alternative[F any] interface {
	Applicative[F]
	MonoidK[F]
}

// CoflatMap extends a computation over every suffix (or context) of F.
type CoflatMap[F any] interface {
	Functor[F]
	CoflatMap(fa kind.Of[F, Erased], f func(kind.Of[F, Erased]) Erased) kind.Of[F, Erased]
}

// Align zips two F values of possibly different shape, keeping the parts
// only one side has.
type Align[F any] interface {
	Functor[F]
	Align(fa, fb kind.Of[F, Erased]) kind.Of[F, data.Ior[Erased, Erased]]
	AlignWith(fa, fb kind.Of[F, Erased], f func(data.Ior[Erased, Erased]) Erased) kind.Of[F, Erased]
}

// CombineK combines x and y.
func CombineK[F, A any](sk SemigroupK[F], x, y kind.Of[F, A]) kind.Of[F, A] {
	return sk.CombineK(x, y)
}

// EmptyK is the empty F.
func EmptyK[F, A any](mk MonoidK[F]) kind.Of[F, A] {
	return mk.Empty()
}

// Guard is Pure(unit) when cond holds and empty otherwise.
func Guard[F any](alt Alternative[F], cond bool) kind.Of[F, struct{}] {
	if cond {
		return alt.Pure(struct{}{})
	}
	return alt.Empty()
}

// Extend applies f to every suffix of fa.
func Extend[F, A, B any](cf CoflatMap[F], fa kind.Of[F, A], f func(kind.Of[F, A]) B) kind.Of[F, B] {
	return cf.CoflatMap(fa, func(w kind.Of[F, Erased]) Erased { return f(w) })
}

// Coflatten replaces every element with the suffix it starts.
func Coflatten[F, A any](cf CoflatMap[F], fa kind.Of[F, A]) kind.Of[F, kind.Of[F, A]] {
	return cf.CoflatMap(fa, func(w kind.Of[F, Erased]) Erased { return w })
}

// AlignOf pairs the elements of fa and fb position by position. The result is
// as long as the longer input.
func AlignOf[F, A, B any](al Align[F], fa kind.Of[F, A], fb kind.Of[F, B]) kind.Of[F, data.Ior[A, B]] {
	return al.Align(fa, fb)
}

// AlignWith combines aligned positions with f.
func AlignWith[F, A, B, C any](al Align[F], fa kind.Of[F, A], fb kind.Of[F, B], f func(data.Ior[A, B]) C) kind.Of[F, C] {
	return al.AlignWith(fa, fb, func(i data.Ior[Erased, Erased]) Erased {
		return f(kind.Cast[data.Ior[A, B]](i))
	})
}
