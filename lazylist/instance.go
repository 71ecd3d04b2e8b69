package lazylist

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/parallel"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

type (
	erased = kind.Erased
	seqK   = kind.Of[K, erased]
	anyK   = kind.Of[erased, erased]
)

// SeqInstance holds every capability of Seq: Traverse, TraverseFilter,
// UnorderedTraverse, Monad, Alternative, CoflatMap and Align.
type SeqInstance struct{}

// Instance is the shared SeqInstance.
var Instance SeqInstance

var (
	_ typeclass.Monad[K]             = Instance
	_ typeclass.Alternative[K]       = Instance
	_ typeclass.TraverseFilter[K]    = Instance
	_ typeclass.UnorderedTraverse[K] = Instance
	_ typeclass.CoflatMap[K]         = Instance
	_ typeclass.Align[K]             = Instance
)

func thunkOf(fa seqK) *thunk { return Narrow[erased](fa).t }

func seqOfThunk(t *thunk) Seq[erased] { return Seq[erased]{t: t} }

func (SeqInstance) Map(fa seqK, f func(erased) erased) seqK {
	return seqOfThunk(mapThunk(thunkOf(fa), f))
}

// Map2 is the cartesian product, with fb walked once per element of fa.
func (SeqInstance) Map2(fa, fb seqK, f func(erased, erased) erased) seqK {
	ta, tb := thunkOf(fa), thunkOf(fb)
	if ta.force() == nil || tb.force() == nil {
		return Seq[erased]{}
	}
	return seqOfThunk(flatMapThunk(ta, func(a erased) *thunk {
		return mapThunk(tb, func(b erased) erased { return f(a, b) })
	}))
}

// Map2Eval leaves fb unforced when fa is empty.
func (i SeqInstance) Map2Eval(fa seqK, fb eval.Eval[seqK], f func(erased, erased) erased) eval.Eval[seqK] {
	if thunkOf(fa).force() == nil {
		return eval.Now[seqK](Seq[erased]{})
	}
	return eval.Map(fb, func(b seqK) seqK { return i.Map2(fa, b, f) })
}

func (SeqInstance) Pure(a erased) seqK { return Seq[erased]{t: strict(a, nil)} }

func (SeqInstance) FlatMap(fa seqK, f func(erased) seqK) seqK {
	return seqOfThunk(flatMapThunk(thunkOf(fa), func(a erased) *thunk { return thunkOf(f(a)) }))
}

// TailRecM emits the Right values of the expansion of a in the order a
// depth-first recursion would, lazily and in constant native stack.
func (SeqInstance) TailRecM(a erased, f func(erased) kind.Of[K, data.Either[erased, erased]]) seqK {
	it := newTailRecIterator(a, func(s erased) *thunk { return thunkOf(f(s)) })
	return seqOfThunk(it.thunk())
}

func (SeqInstance) CombineK(x, y seqK) seqK {
	return seqOfThunk(concat(thunkOf(x), func() *thunk { return thunkOf(y) }))
}

func (SeqInstance) Empty() seqK { return Seq[erased]{} }

func (SeqInstance) FoldLeft(fa seqK, b erased, f func(erased, erased) erased) erased {
	for c := thunkOf(fa).force(); c != nil; c = c.tail.force() {
		b = f(b, c.head)
	}
	return b
}

// FoldRight visits an element only when the fold of the element before it
// forces its continuation.
func (SeqInstance) FoldRight(fa seqK, lb eval.Eval[erased], f func(erased, eval.Eval[erased]) eval.Eval[erased]) eval.Eval[erased] {
	var loop func(*thunk) eval.Eval[erased]
	loop = func(t *thunk) eval.Eval[erased] {
		return eval.Defer(func() eval.Eval[erased] {
			c := t.force()
			if c == nil {
				return lb
			}
			return f(c.head, loop(c.tail))
		})
	}
	return loop(thunkOf(fa))
}

// Traverse folds from the right through g's Map2Eval, so g may stop early
// and the elements after that point are never visited.
func (SeqInstance) Traverse(g typeclass.Applicative[erased], fa seqK, f func(erased) anyK) anyK {
	return traverseWith(g, fa, func(a erased, rest eval.Eval[anyK]) eval.Eval[anyK] {
		return g.Map2Eval(f(a), rest, func(b, tail erased) erased {
			return Cons(b, kind.Cast[Seq[erased]](tail))
		})
	})
}

func (i SeqInstance) UnorderedTraverse(g typeclass.CommutativeApplicative[erased], fa seqK, f func(erased) anyK) anyK {
	return i.Traverse(g, fa, f)
}

func (SeqInstance) TraverseFilter(g typeclass.Applicative[erased], fa seqK, f func(erased) kind.Of[erased, data.Option[erased]]) anyK {
	return traverseWith(g, fa, func(a erased, rest eval.Eval[anyK]) eval.Eval[anyK] {
		return g.Map2Eval(f(a), rest, func(ob, tail erased) erased {
			s := kind.Cast[Seq[erased]](tail)
			if b, ok := kind.Cast[data.Option[erased]](ob).Get(); ok {
				return Cons(b, s)
			}
			return s
		})
	})
}

func traverseWith(g typeclass.Applicative[erased], fa seqK, step func(erased, eval.Eval[anyK]) eval.Eval[anyK]) anyK {
	base := eval.Always(func() erased { return g.Pure(Seq[erased]{}) })
	res := Instance.FoldRight(fa, base, func(a erased, rest eval.Eval[erased]) eval.Eval[erased] {
		lg := eval.Map(rest, func(r erased) anyK { return kind.Cast[anyK](r) })
		return eval.Map(step(a, lg), func(r anyK) erased { return r })
	})
	return kind.Cast[anyK](res.Value())
}

func (SeqInstance) MapFilter(fa seqK, f func(erased) data.Option[erased]) seqK {
	return seqOfThunk(mapFilterThunk(thunkOf(fa), func(a erased) (erased, bool) {
		return f(a).Get()
	}))
}

// CoflatMap applies f to every non-empty suffix of fa.
func (SeqInstance) CoflatMap(fa seqK, f func(seqK) erased) seqK {
	var from func(*thunk) *thunk
	from = func(t *thunk) *thunk {
		return lazy(func() *cell {
			c := t.force()
			if c == nil {
				return nil
			}
			return &cell{head: f(Seq[erased]{t: t}), tail: from(c.tail)}
		})
	}
	return seqOfThunk(from(thunkOf(fa)))
}

func (i SeqInstance) Align(fa, fb seqK) kind.Of[K, data.Ior[erased, erased]] {
	return i.AlignWith(fa, fb, func(ior data.Ior[erased, erased]) erased { return ior })
}

// AlignWith runs to the end of the longer sequence. Past the end of the
// shorter one every position holds only the longer sequence's element.
func (SeqInstance) AlignWith(fa, fb seqK, f func(data.Ior[erased, erased]) erased) seqK {
	return seqOfThunk(alignThunk(thunkOf(fa), thunkOf(fb), f))
}

func alignThunk(a, b *thunk, f func(data.Ior[erased, erased]) erased) *thunk {
	if a.knownEmpty() && b.knownEmpty() {
		return nil
	}
	return lazy(func() *cell {
		ca, cb := a.force(), b.force()
		switch {
		case ca == nil && cb == nil:
			return nil
		case cb == nil:
			return &cell{head: f(data.This[erased, erased](ca.head)), tail: alignThunk(ca.tail, nil, f)}
		case ca == nil:
			return &cell{head: f(data.That[erased, erased](cb.head)), tail: alignThunk(nil, cb.tail, f)}
		default:
			return &cell{head: f(data.Both(ca.head, cb.head)), tail: alignThunk(ca.tail, cb.tail, f)}
		}
	})
}

// Parallel is the identity bridge of Seq. Par operations over Seq give the
// same results as their sequential forms.
func Parallel() parallel.Bridge[K, K] {
	return parallel.Identity[K](Instance)
}
