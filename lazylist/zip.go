package lazylist

import (
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

// ZipK brands ZipSeq.
type ZipK struct{}

// ZipSeq is a Seq whose applicative composition pairs elements by position
// instead of forming every combination. Its products differ from Seq's, so it
// is a standalone applicative rather than the parallel side of Seq.
type ZipSeq[A any] struct {
	t *thunk
}

func (ZipSeq[A]) KindOf(ZipK) {}

func (z ZipSeq[A]) Repr() any { return z.t }

func (ZipSeq[A]) Retag(repr any) any {
	if repr == nil {
		return ZipSeq[A]{}
	}
	if t, ok := repr.(*thunk); ok {
		return ZipSeq[A]{t: t}
	}
	return nil
}

// Zipped views s as a ZipSeq.
func Zipped[A any](s Seq[A]) ZipSeq[A] { return ZipSeq[A]{t: s.t} }

// Unzipped views z as a Seq.
func (z ZipSeq[A]) Unzipped() Seq[A] { return Seq[A]{t: z.t} }

// NarrowZip recovers a ZipSeq from its kinded form.
func NarrowZip[A any](fa kind.Of[ZipK, A]) ZipSeq[A] {
	return kind.Cast[ZipSeq[A]](fa)
}

type zipK = kind.Of[ZipK, erased]

func zipThunk(fa zipK) *thunk { return NarrowZip[erased](fa).t }

// ZipSeqInstance is the CommutativeApplicative and Alternative of ZipSeq.
// Pure repeats its argument forever so that it is an identity for Map2.
type ZipSeqInstance struct{}

// ZipInstance is the shared ZipSeqInstance.
var ZipInstance ZipSeqInstance

var (
	_ typeclass.CommutativeApplicative[ZipK] = ZipInstance
	_ typeclass.Alternative[ZipK]            = ZipInstance
)

func (ZipSeqInstance) Map(fa zipK, f func(erased) erased) zipK {
	return ZipSeq[erased]{t: mapThunk(zipThunk(fa), f)}
}

func (ZipSeqInstance) Map2(fa, fb zipK, f func(erased, erased) erased) zipK {
	return ZipSeq[erased]{t: zipWith(zipThunk(fa), zipThunk(fb), f)}
}

// Map2Eval leaves fb unforced when fa is empty.
func (z ZipSeqInstance) Map2Eval(fa zipK, fb eval.Eval[zipK], f func(erased, erased) erased) eval.Eval[zipK] {
	if zipThunk(fa).force() == nil {
		return eval.Now[zipK](ZipSeq[erased]{})
	}
	return eval.Map(fb, func(b zipK) zipK { return z.Map2(fa, b, f) })
}

func (ZipSeqInstance) Pure(a erased) zipK { return ZipSeq[erased]{t: Repeat(a).t} }

func (ZipSeqInstance) Commutes() {}

func (ZipSeqInstance) CombineK(x, y zipK) zipK {
	tx, ty := zipThunk(x), zipThunk(y)
	return ZipSeq[erased]{t: concat(tx, func() *thunk { return ty })}
}

func (ZipSeqInstance) Empty() zipK { return ZipSeq[erased]{} }
