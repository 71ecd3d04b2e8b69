package data

import (
	"fmt"

	"github.com/on-the-ground/traverse_ive_go/kind"
)

// PairK brands Pair as a two-parameter constructor.
type PairK struct{}

type pairRepr struct {
	first  any
	second any
}

// Pair is an ordered pair, the result of a product.
type Pair[A, B any] struct {
	r pairRepr
}

func (Pair[A, B]) KindOf2(PairK) {}

func (p Pair[A, B]) Repr() any { return p.r }

func (Pair[A, B]) Retag(repr any) any {
	if r, ok := repr.(pairRepr); ok {
		return Pair[A, B]{r: r}
	}
	return nil
}

// Tuple builds a pair.
func Tuple[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{r: pairRepr{first: a, second: b}}
}

// NarrowPair recovers a Pair from its kinded form.
func NarrowPair[A, B any](fab kind.Of2[PairK, A, B]) Pair[A, B] {
	return kind.Cast[Pair[A, B]](fab)
}

func (p Pair[A, B]) First() A { return kind.Cast[A](p.r.first) }

func (p Pair[A, B]) Second() B { return kind.Cast[B](p.r.second) }

// Unpack returns both components.
func (p Pair[A, B]) Unpack() (A, B) { return p.First(), p.Second() }

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.r.first, p.r.second)
}
