package data

import (
	"fmt"

	"github.com/on-the-ground/traverse_ive_go/kind"
)

// EitherK brands Either with its left type fixed, the shape its Monad needs.
type EitherK[L any] struct{}

// Either2K brands Either as a two-parameter constructor.
type Either2K struct{}

type eitherRepr struct {
	isRight bool
	left    any
	right   any
}

// Either represents a value that is either Left (by convention an error or a
// continuation) or Right (a success or a result).
type Either[L, R any] struct {
	r eitherRepr
}

func (Either[L, R]) KindOf(EitherK[L]) {}

func (Either[L, R]) KindOf2(Either2K) {}

func (e Either[L, R]) Repr() any { return e.r }

func (Either[L, R]) Retag(repr any) any {
	if r, ok := repr.(eitherRepr); ok {
		return Either[L, R]{r: r}
	}
	return nil
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{r: eitherRepr{left: l}}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{r: eitherRepr{isRight: true, right: r}}
}

// NarrowEither recovers an Either from its kinded form.
func NarrowEither[L, R any](fa kind.Of[EitherK[L], R]) Either[L, R] {
	return kind.Cast[Either[L, R]](fa)
}

// NarrowEither2 recovers an Either from its two-parameter kinded form.
func NarrowEither2[L, R any](fab kind.Of2[Either2K, L, R]) Either[L, R] {
	return kind.Cast[Either[L, R]](fab)
}

func (e Either[L, R]) IsRight() bool { return e.r.isRight }

func (e Either[L, R]) IsLeft() bool { return !e.r.isRight }

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.r.isRight {
		return kind.Cast[R](e.r.right), true
	}
	var zero R
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.r.isRight {
		return kind.Cast[L](e.r.left), true
	}
	var zero L
	return zero, false
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{r: eitherRepr{isRight: !e.r.isRight, left: e.r.right, right: e.r.left}}
}

// ToOption drops the Left value.
func (e Either[L, R]) ToOption() Option[R] {
	if r, ok := e.GetRight(); ok {
		return Some(r)
	}
	return None[R]()
}

func (e Either[L, R]) String() string {
	if e.r.isRight {
		return fmt.Sprintf("Right(%v)", e.r.right)
	}
	return fmt.Sprintf("Left(%v)", e.r.left)
}

// FoldEither pattern matches on e.
func FoldEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if r, ok := e.GetRight(); ok {
		return onRight(r)
	}
	l, _ := e.GetLeft()
	return onLeft(l)
}

// MapEither applies f to the Right value.
func MapEither[L, R, B any](e Either[L, R], f func(R) B) Either[L, B] {
	if r, ok := e.GetRight(); ok {
		return Right[L](f(r))
	}
	return Either[L, B]{r: e.r}
}

// MapLeft applies f to the Left value.
func MapLeft[L, R, M any](e Either[L, R], f func(L) M) Either[M, R] {
	if l, ok := e.GetLeft(); ok {
		return Left[M, R](f(l))
	}
	return Either[M, R]{r: e.r}
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[L, R, B any](e Either[L, R], f func(R) Either[L, B]) Either[L, B] {
	if r, ok := e.GetRight(); ok {
		return f(r)
	}
	return Either[L, B]{r: e.r}
}

// FromResult lifts a Go (value, error) pair.
func FromResult[R any](r R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](r)
}
