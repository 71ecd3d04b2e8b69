package data

import (
	"fmt"

	"github.com/on-the-ground/traverse_ive_go/kind"
)

type iorTag uint8

const (
	iorThis iorTag = iota
	iorThat
	iorBoth
)

type iorRepr struct {
	tag   iorTag
	left  any
	right any
}

// Ior is an inclusive or: a left value, a right value, or both.
// Alignment uses it to mark positions present in the first sequence only
// (This), the second only (That), or both.
type Ior[A, B any] struct {
	r iorRepr
}

func (i Ior[A, B]) Repr() any { return i.r }

func (Ior[A, B]) Retag(repr any) any {
	if r, ok := repr.(iorRepr); ok {
		return Ior[A, B]{r: r}
	}
	return nil
}

// This holds only a left value.
func This[A, B any](a A) Ior[A, B] {
	return Ior[A, B]{r: iorRepr{tag: iorThis, left: a}}
}

// That holds only a right value.
func That[A, B any](b B) Ior[A, B] {
	return Ior[A, B]{r: iorRepr{tag: iorThat, right: b}}
}

// Both holds a left and a right value.
func Both[A, B any](a A, b B) Ior[A, B] {
	return Ior[A, B]{r: iorRepr{tag: iorBoth, left: a, right: b}}
}

func (i Ior[A, B]) IsThis() bool { return i.r.tag == iorThis }

func (i Ior[A, B]) IsThat() bool { return i.r.tag == iorThat }

func (i Ior[A, B]) IsBoth() bool { return i.r.tag == iorBoth }

// Left returns the left value when present.
func (i Ior[A, B]) Left() Option[A] {
	if i.r.tag == iorThat {
		return None[A]()
	}
	return Some(kind.Cast[A](i.r.left))
}

// Right returns the right value when present.
func (i Ior[A, B]) Right() Option[B] {
	if i.r.tag == iorThis {
		return None[B]()
	}
	return Some(kind.Cast[B](i.r.right))
}

func (i Ior[A, B]) String() string {
	switch i.r.tag {
	case iorThis:
		return fmt.Sprintf("This(%v)", i.r.left)
	case iorThat:
		return fmt.Sprintf("That(%v)", i.r.right)
	default:
		return fmt.Sprintf("Both(%v, %v)", i.r.left, i.r.right)
	}
}

// FoldIor pattern matches on i.
func FoldIor[A, B, T any](i Ior[A, B], onThis func(A) T, onThat func(B) T, onBoth func(A, B) T) T {
	switch i.r.tag {
	case iorThis:
		return onThis(kind.Cast[A](i.r.left))
	case iorThat:
		return onThat(kind.Cast[B](i.r.right))
	default:
		return onBoth(kind.Cast[A](i.r.left), kind.Cast[B](i.r.right))
	}
}
