package typeclass

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

// FlatMap is an Apply whose computations may depend on earlier results.
//
// TailRecM runs f from a until it yields a Right, without growing the native
// stack. Every instance must implement it iteratively.
type FlatMap[F any] interface {
	Apply[F]
	FlatMap(fa kind.Of[F, Erased], f func(Erased) kind.Of[F, Erased]) kind.Of[F, Erased]
	TailRecM(a Erased, f func(Erased) kind.Of[F, data.Either[Erased, Erased]]) kind.Of[F, Erased]
}

// Monad is a FlatMap with Pure.
type Monad[F any] interface {
	FlatMap[F]
	Applicative[F]
}

// ApplicativeError is an Applicative that can raise and recover from errors
// of type E.
type ApplicativeError[F, E any] interface {
	Applicative[F]
	RaiseError(e E) kind.Of[F, Erased]
	HandleErrorWith(fa kind.Of[F, Erased], f func(E) kind.Of[F, Erased]) kind.Of[F, Erased]
}

// MonadError is a Monad with error handling.
type MonadError[F, E any] interface {
	Monad[F]
	ApplicativeError[F, E]
}

// Bind sequences fa with f.
func Bind[F, A, B any](m FlatMap[F], fa kind.Of[F, A], f func(A) kind.Of[F, B]) kind.Of[F, B] {
	return m.FlatMap(fa, func(a Erased) kind.Of[F, Erased] { return f(kind.Cast[A](a)) })
}

// Flatten removes one layer of F.
func Flatten[F, A any](m FlatMap[F], ffa kind.Of[F, kind.Of[F, A]]) kind.Of[F, A] {
	return m.FlatMap(ffa, func(fa Erased) kind.Of[F, Erased] {
		return kind.Cast[kind.Of[F, Erased]](fa)
	})
}

// TailRecM iterates f from a: a Left continues with a new seed, a Right ends
// with a result. Instances retag the Either elements with kind.Cast.
func TailRecM[F, A, B any](m FlatMap[F], a A, f func(A) kind.Of[F, data.Either[A, B]]) kind.Of[F, B] {
	return m.TailRecM(a, func(s Erased) kind.Of[F, data.Either[Erased, Erased]] {
		return f(kind.Cast[A](s))
	})
}

// RaiseError lifts e into F.
func RaiseError[F, E, A any](ae ApplicativeError[F, E], e E) kind.Of[F, A] {
	return ae.RaiseError(e)
}

// HandleErrorWith recovers from an error in fa with f.
func HandleErrorWith[F, E, A any](ae ApplicativeError[F, E], fa kind.Of[F, A], f func(E) kind.Of[F, A]) kind.Of[F, A] {
	return ae.HandleErrorWith(fa, func(e E) kind.Of[F, Erased] { return f(e) })
}

// HandleError recovers from an error in fa with a pure value.
func HandleError[F, E, A any](ae ApplicativeError[F, E], fa kind.Of[F, A], f func(E) A) kind.Of[F, A] {
	return ae.HandleErrorWith(fa, func(e E) kind.Of[F, Erased] { return ae.Pure(f(e)) })
}

// Attempt exposes the error of fa as a Left.
func Attempt[F, E, A any](ae ApplicativeError[F, E], fa kind.Of[F, A]) kind.Of[F, data.Either[E, A]] {
	right := ae.Map(fa, func(a Erased) Erased { return data.Right[E](kind.Cast[A](a)) })
	return ae.HandleErrorWith(right, func(e E) kind.Of[F, Erased] {
		return ae.Pure(data.Left[E, A](e))
	})
}

// FromEither lifts an Either into F, raising its Left.
func FromEither[F, E, A any](ae ApplicativeError[F, E], e data.Either[E, A]) kind.Of[F, A] {
	if a, ok := e.GetRight(); ok {
		return ae.Pure(a)
	}
	l, _ := e.GetLeft()
	return ae.RaiseError(l)
}
