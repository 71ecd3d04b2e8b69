// Package parallel bridges a sequential effect M and its parallel companion F.
//
// M composes with a Monad: later steps may depend on earlier ones and the
// first failure stops the rest. F composes with an Applicative only, so its
// steps are independent and can accumulate failures or run concurrently. A
// bridge converts between the two:
//
//	Sequential(Parallel(m)) == m
//
// The Par* functions lift every M into F, combine there and lower the result
// back into M. For computations that succeed the result equals the one M's
// own composition gives; only the handling of failures and scheduling differ.
package parallel

import (
	"errors"

	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

type erased = kind.Erased

// ErrNotCommutative is raised when an unordered Par* operation is given a
// bridge whose parallel applicative does not commute.
var ErrNotCommutative = errors.New("parallel applicative is not commutative")

// NonEmptyParallel relates a FlatMap M to an Apply F.
type NonEmptyParallel[M, F any] interface {
	Apply() typeclass.Apply[F]
	FlatMap() typeclass.FlatMap[M]
	Sequential(fa kind.Of[F, erased]) kind.Of[M, erased]
	Parallel(ma kind.Of[M, erased]) kind.Of[F, erased]
}

// Parallel relates a Monad M to an Applicative F.
type Parallel[M, F any] interface {
	NonEmptyParallel[M, F]
	Applicative() typeclass.Applicative[F]
	Monad() typeclass.Monad[M]
}

// Bridge is a Parallel built from its parts.
type Bridge[M, F any] struct {
	monad       typeclass.Monad[M]
	applicative typeclass.Applicative[F]
	sequential  func(kind.Of[F, erased]) kind.Of[M, erased]
	parallel    func(kind.Of[M, erased]) kind.Of[F, erased]
}

var _ Parallel[struct{}, struct{}] = Bridge[struct{}, struct{}]{}

// New builds a bridge. sequential and parallel must be mutually inverse.
func New[M, F any](
	monad typeclass.Monad[M],
	applicative typeclass.Applicative[F],
	sequential func(kind.Of[F, erased]) kind.Of[M, erased],
	parallel func(kind.Of[M, erased]) kind.Of[F, erased],
) Bridge[M, F] {
	return Bridge[M, F]{
		monad:       monad,
		applicative: applicative,
		sequential:  sequential,
		parallel:    parallel,
	}
}

// Identity is the bridge of an effect without a separate parallel form: F is
// M and both conversions return their argument. Parallel composition then
// degrades to the sequential one.
func Identity[M any](monad typeclass.Monad[M]) Bridge[M, M] {
	id := func(m kind.Of[M, erased]) kind.Of[M, erased] { return m }
	return New[M, M](monad, monad, id, id)
}

func (b Bridge[M, F]) Apply() typeclass.Apply[F] { return b.applicative }

func (b Bridge[M, F]) Applicative() typeclass.Applicative[F] { return b.applicative }

func (b Bridge[M, F]) FlatMap() typeclass.FlatMap[M] { return b.monad }

func (b Bridge[M, F]) Monad() typeclass.Monad[M] { return b.monad }

func (b Bridge[M, F]) Sequential(fa kind.Of[F, erased]) kind.Of[M, erased] { return b.sequential(fa) }

func (b Bridge[M, F]) Parallel(ma kind.Of[M, erased]) kind.Of[F, erased] { return b.parallel(ma) }

// ToParallel lifts ma into F.
func ToParallel[M, F, A any](p NonEmptyParallel[M, F], ma kind.Of[M, A]) kind.Of[F, A] {
	return p.Parallel(ma)
}

// ToSequential lowers fa into M.
func ToSequential[M, F, A any](p NonEmptyParallel[M, F], fa kind.Of[F, A]) kind.Of[M, A] {
	return p.Sequential(fa)
}

// parallelErr lowers, handles and re-lifts around the error handler of M.
type parallelErr[M, F, E any] struct {
	typeclass.Applicative[F]
	p  Parallel[M, F]
	me typeclass.MonadError[M, E]
}

// ApplicativeError derives error handling for F from that of M. Raising and
// recovering through F behaves exactly as it does on M.
func ApplicativeError[M, F, E any](p Parallel[M, F], me typeclass.MonadError[M, E]) typeclass.ApplicativeError[F, E] {
	return parallelErr[M, F, E]{Applicative: p.Applicative(), p: p, me: me}
}

func (pe parallelErr[M, F, E]) RaiseError(e E) kind.Of[F, erased] {
	return pe.p.Parallel(pe.me.RaiseError(e))
}

func (pe parallelErr[M, F, E]) HandleErrorWith(fa kind.Of[F, erased], f func(E) kind.Of[F, erased]) kind.Of[F, erased] {
	handled := pe.me.HandleErrorWith(pe.p.Sequential(fa), func(e E) kind.Of[M, erased] {
		return pe.p.Sequential(f(e))
	})
	return pe.p.Parallel(handled)
}
