package typeclass

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

// Erased is the element type capability methods traffic in.
type Erased = kind.Erased

// Functor maps over the elements of F.
type Functor[F any] interface {
	Map(fa kind.Of[F, Erased], f func(Erased) Erased) kind.Of[F, Erased]
}

// Apply combines independent F values.
//
// Map2Eval is the lazy form of Map2: an effect that can decide the result from
// fa alone (a None, a Left) must not force fb. Traversals rely on this to stop
// early.
type Apply[F any] interface {
	Functor[F]
	Map2(fa, fb kind.Of[F, Erased], f func(Erased, Erased) Erased) kind.Of[F, Erased]
	Map2Eval(fa kind.Of[F, Erased], fb eval.Eval[kind.Of[F, Erased]], f func(Erased, Erased) Erased) eval.Eval[kind.Of[F, Erased]]
}

// Applicative is an Apply that can lift pure values.
type Applicative[F any] interface {
	Apply[F]
	Pure(a Erased) kind.Of[F, Erased]
}

// CommutativeApplicative is an Applicative whose Map2 result does not depend
// on the order of its arguments. Unordered traversals require it.
type CommutativeApplicative[F any] interface {
	Applicative[F]
	Commutes()
}

// DefaultMap2Eval derives Map2Eval from Map2. It always forces fb, so effects
// that short-circuit should provide their own.
func DefaultMap2Eval[F any](ap Apply[F], fa kind.Of[F, Erased], fb eval.Eval[kind.Of[F, Erased]], f func(Erased, Erased) Erased) eval.Eval[kind.Of[F, Erased]] {
	return eval.Map(fb, func(b kind.Of[F, Erased]) kind.Of[F, Erased] {
		return ap.Map2(fa, b, f)
	})
}

// Map applies f to every element of fa.
func Map[F, A, B any](fn Functor[F], fa kind.Of[F, A], f func(A) B) kind.Of[F, B] {
	return fn.Map(fa, func(a Erased) Erased { return f(kind.Cast[A](a)) })
}

// As replaces every element of fa with b.
func As[F, A, B any](fn Functor[F], fa kind.Of[F, A], b B) kind.Of[F, B] {
	return fn.Map(fa, func(Erased) Erased { return b })
}

// Void discards the elements of fa.
func Void[F, A any](fn Functor[F], fa kind.Of[F, A]) kind.Of[F, struct{}] {
	return As[F, A, struct{}](fn, fa, struct{}{})
}

// Pure lifts a into F.
func Pure[F, A any](ap Applicative[F], a A) kind.Of[F, A] {
	return ap.Pure(a)
}

// Map2 combines fa and fb with f.
func Map2[F, A, B, C any](ap Apply[F], fa kind.Of[F, A], fb kind.Of[F, B], f func(A, B) C) kind.Of[F, C] {
	return ap.Map2(fa, fb, func(a, b Erased) Erased {
		return f(kind.Cast[A](a), kind.Cast[B](b))
	})
}

// Map2Eval combines fa with a lazily computed fb.
func Map2Eval[F, A, B, C any](ap Apply[F], fa kind.Of[F, A], fb eval.Eval[kind.Of[F, B]], f func(A, B) C) eval.Eval[kind.Of[F, C]] {
	lfb := eval.Map(fb, func(b kind.Of[F, B]) kind.Of[F, Erased] { return b })
	res := ap.Map2Eval(fa, lfb, func(a, b Erased) Erased {
		return f(kind.Cast[A](a), kind.Cast[B](b))
	})
	return eval.Map(res, func(c kind.Of[F, Erased]) kind.Of[F, C] { return c })
}

// Map3 combines three values left to right.
func Map3[F, A, B, C, D any](ap Apply[F], fa kind.Of[F, A], fb kind.Of[F, B], fc kind.Of[F, C], f func(A, B, C) D) kind.Of[F, D] {
	ab := Product[F, A, B](ap, fa, fb)
	return Map2[F, data.Pair[A, B], C, D](ap, ab, fc, func(p data.Pair[A, B], c C) D {
		return f(p.First(), p.Second(), c)
	})
}

// Product pairs the elements of fa and fb.
func Product[F, A, B any](ap Apply[F], fa kind.Of[F, A], fb kind.Of[F, B]) kind.Of[F, data.Pair[A, B]] {
	return Map2[F, A, B, data.Pair[A, B]](ap, fa, fb, data.Tuple[A, B])
}

// ProductL combines fa and fb, keeping the elements of fa.
func ProductL[F, A, B any](ap Apply[F], fa kind.Of[F, A], fb kind.Of[F, B]) kind.Of[F, A] {
	return Map2[F, A, B, A](ap, fa, fb, func(a A, _ B) A { return a })
}

// ProductR combines fa and fb, keeping the elements of fb.
func ProductR[F, A, B any](ap Apply[F], fa kind.Of[F, A], fb kind.Of[F, B]) kind.Of[F, B] {
	return Map2[F, A, B, B](ap, fa, fb, func(_ A, b B) B { return b })
}

// Ap applies the functions in ff to the values in fa.
func Ap[F, A, B any](ap Apply[F], ff kind.Of[F, func(A) B], fa kind.Of[F, A]) kind.Of[F, B] {
	return Map2[F, func(A) B, A, B](ap, ff, fa, func(f func(A) B, a A) B { return f(a) })
}

// Ap2 applies the two-argument functions in ff to fa and fb.
func Ap2[F, A, B, C any](ap Apply[F], ff kind.Of[F, func(A, B) C], fa kind.Of[F, A], fb kind.Of[F, B]) kind.Of[F, C] {
	return Map2[F, func(A, B) C, data.Pair[A, B], C](ap, ff, Product[F, A, B](ap, fa, fb), func(f func(A, B) C, p data.Pair[A, B]) C {
		return f(p.First(), p.Second())
	})
}

// ReplicateA runs fa n times and collects the results in order. A
// non-positive n yields Pure of an empty slice.
func ReplicateA[F, A any](ap Applicative[F], n int, fa kind.Of[F, A]) kind.Of[F, []A] {
	var acc kind.Of[F, Erased] = ap.Pure((*cell)(nil))
	for range n {
		acc = ap.Map2(acc, fa, func(l, a Erased) Erased {
			return &cell{head: a, tail: kind.Cast[*cell](l)}
		})
	}
	return Map[F, *cell, []A](ap, acc, func(l *cell) []A {
		return reverseCells[A](l)
	})
}

// ReplicateAVoid runs fa n times discarding the results.
func ReplicateAVoid[F, A any](ap Applicative[F], n int, fa kind.Of[F, A]) kind.Of[F, struct{}] {
	var acc kind.Of[F, Erased] = ap.Pure(struct{}{})
	for range n {
		acc = ap.Map2(acc, fa, func(u, _ Erased) Erased { return u })
	}
	return acc
}

// cell is a persistent cons list used to accumulate without copying.
type cell struct {
	head Erased
	tail *cell
}

func reverseCells[A any](l *cell) []A {
	n := 0
	for c := l; c != nil; c = c.tail {
		n++
	}
	out := make([]A, n)
	for c := l; c != nil; c = c.tail {
		n--
		out[n] = kind.Cast[A](c.head)
	}
	return out
}
