// Package kernel holds the value-level capabilities the rest of the module
// builds on: equality, ordering, hashing, rendering and combination.
package kernel

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Eq decides equality of two values.
type Eq[A any] interface {
	Eqv(x, y A) bool
}

// Order is a total order over A.
type Order[A any] interface {
	Eq[A]
	Compare(x, y A) int
}

// Hash is an equality that can also produce a hash consistent with it.
type Hash[A any] interface {
	Eq[A]
	Hash(x A) uint64
}

// Show renders a value for humans.
type Show[A any] interface {
	Show(a A) string
}

// Semigroup combines two values associatively.
type Semigroup[A any] interface {
	Combine(x, y A) A
}

// Monoid is a Semigroup with an identity element.
type Monoid[A any] interface {
	Semigroup[A]
	Empty() A
}

// EqFunc adapts a function to Eq.
type EqFunc[A any] func(x, y A) bool

func (f EqFunc[A]) Eqv(x, y A) bool { return f(x, y) }

// ShowFunc adapts a function to Show.
type ShowFunc[A any] func(a A) string

func (f ShowFunc[A]) Show(a A) string { return f(a) }

// SemigroupFunc adapts a function to Semigroup.
type SemigroupFunc[A any] func(x, y A) A

func (f SemigroupFunc[A]) Combine(x, y A) A { return f(x, y) }

type comparableEq[A comparable] struct{}

func (comparableEq[A]) Eqv(x, y A) bool { return x == y }

// ComparableEq is the equality of Go's == operator.
func ComparableEq[A comparable]() Eq[A] { return comparableEq[A]{} }

type orderedOrder[A cmp.Ordered] struct{}

func (orderedOrder[A]) Eqv(x, y A) bool { return x == y }
func (orderedOrder[A]) Compare(x, y A) int { return cmp.Compare(x, y) }
func (orderedOrder[A]) Hash(x A) uint64 { return xxhash.Sum64String(fmt.Sprint(x)) }

// OrderedOrder orders values with cmp.Compare.
func OrderedOrder[A cmp.Ordered]() Order[A] { return orderedOrder[A]{} }

type stringHash struct{}

func (stringHash) Eqv(x, y string) bool { return x == y }
func (stringHash) Hash(x string) uint64 { return xxhash.Sum64String(x) }

// StringHash hashes strings with xxhash.
func StringHash() Hash[string] { return stringHash{} }

type intHash struct{}

func (intHash) Eqv(x, y int) bool { return x == y }
func (intHash) Hash(x int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(x))
	return xxhash.Sum64(buf[:])
}

// IntHash hashes ints with xxhash over their little-endian encoding.
func IntHash() Hash[int] { return intHash{} }

// FmtShow renders values with fmt's %v verb.
func FmtShow[A any]() Show[A] {
	return ShowFunc[A](func(a A) string { return fmt.Sprintf("%v", a) })
}

type intSum struct{}

func (intSum) Combine(x, y int) int { return x + y }
func (intSum) Empty() int { return 0 }

// IntSum is the additive monoid over int.
func IntSum() Monoid[int] { return intSum{} }

type stringConcat struct{}

func (stringConcat) Combine(x, y string) string { return x + y }
func (stringConcat) Empty() string { return "" }

// StringConcat is the concatenation monoid over string.
func StringConcat() Monoid[string] { return stringConcat{} }

type sliceConcat[A any] struct{}

func (sliceConcat[A]) Combine(x, y []A) []A {
	out := make([]A, 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

func (sliceConcat[A]) Empty() []A { return nil }

// SliceConcat concatenates slices without aliasing either operand.
func SliceConcat[A any]() Monoid[[]A] { return sliceConcat[A]{} }

// CombineAll folds values left to right through m.
func CombineAll[A any](m Monoid[A], as ...A) A {
	acc := m.Empty()
	for _, a := range as {
		acc = m.Combine(acc, a)
	}
	return acc
}
