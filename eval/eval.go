// Package eval provides Eval, a deferred result that is forced by an
// iterative trampoline instead of the native call stack.
//
// An Eval is built from a small set of nodes:
//
//   - [Now]: an already computed value
//   - [Later]: a thunk run at most once, its result memoized
//   - [Always]: a thunk run every time the Eval is forced
//   - [Defer]: a thunk producing another Eval, used to break recursion
//   - [FlatMap] and [Map]: sequencing
//
// [Eval.Value] walks these nodes with an explicit continuation stack. A chain of
// FlatMap or Defer nodes of any depth is forced in constant native stack space,
// and forcing the same Eval again is always safe.
package eval

import (
	"sync"

	"github.com/on-the-ground/traverse_ive_go/kind"
)

// K brands Eval as a type constructor.
type K struct{}

// Eval is a suspended computation producing an A.
// The zero Eval evaluates to the zero A.
type Eval[A any] struct {
	n node
}

func (Eval[A]) KindOf(K) {}

func (e Eval[A]) Repr() any { return e.n }

func (Eval[A]) Retag(repr any) any {
	if repr == nil {
		return Eval[A]{}
	}
	if n, ok := repr.(node); ok {
		return Eval[A]{n: n}
	}
	return nil
}

// Narrow recovers an Eval from its kinded form.
func Narrow[A any](fa kind.Of[K, A]) Eval[A] {
	return kind.Cast[Eval[A]](fa)
}

type node interface {
	isNode()
}

type nowNode struct{ v any }

type alwaysNode struct{ thunk func() any }

type laterNode struct {
	once  sync.Once
	thunk func() any
	v     any
}

type deferNode struct{ thunk func() node }

type bindNode struct {
	src  node
	cont func(any) node
}

func (*nowNode) isNode()    {}
func (*alwaysNode) isNode() {}
func (*laterNode) isNode()  {}
func (*deferNode) isNode()  {}
func (*bindNode) isNode()   {}

func (l *laterNode) force() any {
	l.once.Do(func() {
		l.v = l.thunk()
		l.thunk = nil
	})
	return l.v
}

// Now wraps an already computed value.
func Now[A any](a A) Eval[A] {
	return Eval[A]{n: &nowNode{v: a}}
}

// Later defers f until the first Value call and memoizes its result.
// Concurrent first calls run f once.
func Later[A any](f func() A) Eval[A] {
	return Eval[A]{n: &laterNode{thunk: func() any { return f() }}}
}

// Always defers f and runs it again on every Value call.
func Always[A any](f func() A) Eval[A] {
	return Eval[A]{n: &alwaysNode{thunk: func() any { return f() }}}
}

// Defer suspends the construction of an Eval. Recursive definitions wrap
// their recursive call in Defer so that building the chain does not recurse.
func Defer[A any](f func() Eval[A]) Eval[A] {
	return Eval[A]{n: &deferNode{thunk: func() node { return f().n }}}
}

// FlatMap sequences e with f.
func FlatMap[A, B any](e Eval[A], f func(A) Eval[B]) Eval[B] {
	return Eval[B]{n: &bindNode{
		src:  e.n,
		cont: func(v any) node { return f(kind.Cast[A](v)).n },
	}}
}

// Map applies a pure function to the result of e.
func Map[A, B any](e Eval[A], f func(A) B) Eval[B] {
	return Eval[B]{n: &bindNode{
		src:  e.n,
		cont: func(v any) node { return &nowNode{v: f(kind.Cast[A](v))} },
	}}
}

// Map2 combines the results of two Evals, forcing ea before eb.
func Map2[A, B, C any](ea Eval[A], eb Eval[B], f func(A, B) C) Eval[C] {
	return FlatMap(ea, func(a A) Eval[C] {
		return Map(eb, func(b B) C { return f(a, b) })
	})
}

// Value forces the computation.
func (e Eval[A]) Value() A {
	return kind.Cast[A](evaluate(e.n))
}

// Memoize returns an Eval that forces e at most once.
func (e Eval[A]) Memoize() Eval[A] {
	switch e.n.(type) {
	case *nowNode, *laterNode:
		return e
	}
	n := e.n
	return Eval[A]{n: &laterNode{thunk: func() any { return evaluate(n) }}}
}

// Unit, True and False are shared constants.
var (
	Unit  = Now(struct{}{})
	True  = Now(true)
	False = Now(false)
)

// evaluate is the trampoline. Continuations are kept on a heap-allocated stack
// and applied innermost first.
func evaluate(n node) any {
	var stack []func(any) node
	cur := n
	for {
		var v any
		switch c := cur.(type) {
		case nil:
			v = nil
		case *nowNode:
			v = c.v
		case *alwaysNode:
			v = c.thunk()
		case *laterNode:
			v = c.force()
		case *deferNode:
			cur = c.thunk()
			continue
		case *bindNode:
			stack = append(stack, c.cont)
			cur = c.src
			continue
		}
		if len(stack) == 0 {
			return v
		}
		last := len(stack) - 1
		cont := stack[last]
		stack[last] = nil
		stack = stack[:last]
		cur = cont(v)
	}
}
