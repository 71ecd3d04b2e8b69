package lazylist

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

type iterState uint8

const (
	notStarted iterState = iota
	hasNext
	exhausted
)

// tailRecIterator drains the expansion of a TailRecM seed.
//
// pending is a stack of suffixes still to be emitted, the innermost
// expansion on top. Advancing replaces the top with its tail before looking
// at its head; a Left pushes its own expansion above the remainder, which
// keeps emission in left-to-right, depth-first order.
type tailRecIterator struct {
	step    func(erased) *thunk
	pending []*thunk
	state   iterState
	next    erased
}

func newTailRecIterator(seed erased, step func(erased) *thunk) *tailRecIterator {
	return &tailRecIterator{step: step, pending: []*thunk{step(seed)}}
}

func (it *tailRecIterator) hasNext() bool {
	if it.state == notStarted {
		it.advance()
	}
	return it.state == hasNext
}

// take returns the value found by hasNext and rearms the iterator.
func (it *tailRecIterator) take() erased {
	v := it.next
	it.next = nil
	it.state = notStarted
	return v
}

func (it *tailRecIterator) advance() {
	for len(it.pending) > 0 {
		top := len(it.pending) - 1
		c := it.pending[top].force()
		if c == nil {
			it.pending[top] = nil
			it.pending = it.pending[:top]
			continue
		}
		if c.tail.knownEmpty() {
			it.pending[top] = nil
			it.pending = it.pending[:top]
		} else {
			it.pending[top] = c.tail
		}
		e := kind.Cast[data.Either[erased, erased]](c.head)
		if b, done := e.GetRight(); done {
			it.next = b
			it.state = hasNext
			return
		}
		seed, _ := e.GetLeft()
		it.pending = append(it.pending, it.step(seed))
	}
	it.step = nil
	it.state = exhausted
}

// thunk exposes the remaining emissions as a lazy sequence. Each cell asks
// the iterator for one value, so consumers that stop early stop the
// expansion too.
func (it *tailRecIterator) thunk() *thunk {
	return lazy(func() *cell {
		if !it.hasNext() {
			return nil
		}
		return &cell{head: it.take(), tail: it.thunk()}
	})
}
