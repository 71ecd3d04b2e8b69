// Package kind encodes type constructors for Go generics.
//
// Go cannot abstract over a type constructor such as "Seq" or "Option" on its
// own, only over fully applied types like Seq[int]. kind works around this with
// brands: every container declares an empty struct (its brand) and implements
// Of[Brand, A], whose single marker method mentions only the brand. The element
// type A is phantom, so Of[F, int] and Of[F, Erased] name the same method set.
//
// Containers keep their elements type-erased internally. A Seq[int] and a
// Seq[Erased] therefore share one representation, and Cast moves between them
// without copying.
package kind

import (
	"errors"
	"fmt"
)

// Erased marks a type-erased value crossing a capability boundary. Concrete
// types are recovered with Cast.
type Erased = any

// Of is a value of the type constructor branded by F applied to A.
type Of[F, A any] interface {
	KindOf(F)
}

// Of2 is a value of the two-parameter type constructor branded by F applied to
// A and B.
type Of2[F, A, B any] interface {
	KindOf2(F)
}

// Retaggable is implemented by containers whose instantiations share one
// erased representation. Retag is called on a zero value to build the
// receiver's instantiation around repr.
type Retaggable interface {
	Repr() any
	Retag(repr any) any
}

// ErrUnexpectedKind is raised when an erased value cannot be recovered as the
// requested type.
var ErrUnexpectedKind = errors.New("unexpected kind")

// Cast recovers a value of type A from an erased value.
//
// A nil value becomes the zero A. When v is another instantiation of the same
// container as A (a Seq[Erased] requested as a Seq[int]) the representation
// is retagged in place. Any other mismatch panics with ErrUnexpectedKind.
func Cast[A any](v Erased) A {
	var zero A
	if v == nil {
		return zero
	}
	if a, ok := v.(A); ok {
		return a
	}
	if target, ok := any(zero).(Retaggable); ok {
		if src, ok := v.(Retaggable); ok {
			if a, ok := target.Retag(src.Repr()).(A); ok {
				return a
			}
		}
	}
	panic(fmt.Errorf("%w: %T is not %T", ErrUnexpectedKind, v, zero))
}

// forgotten hides the brand of a kinded value behind the Erased brand.
type forgotten[F any] struct {
	v Of[F, Erased]
}

func (forgotten[F]) KindOf(Erased) {}

// Forget hides the brand of fa. Capability methods that would need a type
// parameter of their own (traversing into an arbitrary applicative) accept
// forgotten values instead.
func Forget[F, A any](fa Of[F, A]) Of[Erased, Erased] {
	return forgotten[F]{v: fa}
}

// Remember restores the brand hidden by Forget.
func Remember[F, A any](v Of[Erased, Erased]) Of[F, A] {
	if f, ok := v.(forgotten[F]); ok {
		return f.v
	}
	if fa, ok := v.(Of[F, A]); ok {
		return fa
	}
	panic(fmt.Errorf("%w: %T does not carry the requested brand", ErrUnexpectedKind, v))
}
