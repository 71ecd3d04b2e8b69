package instances

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

// PairInstance is the Bitraverse of Pair.
type PairInstance struct{}

// Pair is the shared PairInstance.
var Pair PairInstance

var _ typeclass.Bitraverse[data.PairK] = Pair

type pairK = kind.Of2[data.PairK, erased, erased]

func (PairInstance) Bimap(fab pairK, f, g func(erased) erased) pairK {
	p := data.NarrowPair[erased, erased](fab)
	return data.Tuple(f(p.First()), g(p.Second()))
}

// Bitraverse runs the effect of the first component before the second.
func (PairInstance) Bitraverse(g typeclass.Applicative[erased], fab pairK, f, h func(erased) kind.Of[erased, erased]) kind.Of[erased, erased] {
	p := data.NarrowPair[erased, erased](fab)
	return g.Map2(f(p.First()), h(p.Second()), func(c, d erased) erased {
		return data.Tuple(c, d)
	})
}
