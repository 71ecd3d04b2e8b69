package lazylist

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/on-the-ground/traverse_ive_go/kernel"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

type fmtShow[A any] struct{}

func (fmtShow[A]) Show(a A) string { return fmt.Sprintf("%v", a) }

type seqShow[A any] struct {
	elem kernel.Show[A]
}

// Show renders a Seq by its first element only: "Seq()" when empty and
// "Seq(h, ?)" otherwise. The tail is never forced.
func Show[A any](elem kernel.Show[A]) kernel.Show[Seq[A]] {
	return seqShow[A]{elem: elem}
}

func (s seqShow[A]) Show(xs Seq[A]) string {
	h, ok := xs.Head()
	if !ok {
		return joinShown(nil)
	}
	return joinShown([]string{s.elem.Show(h), "?"})
}

type seqEq[A any] struct {
	elem kernel.Eq[A]
}

// Eq compares finite sequences element by element. Shared suffixes are
// recognised without walking them.
func Eq[A any](elem kernel.Eq[A]) kernel.Eq[Seq[A]] {
	return seqEq[A]{elem: elem}
}

func (e seqEq[A]) Eqv(x, y Seq[A]) bool {
	tx, ty := x.t, y.t
	for {
		if tx == ty {
			return true
		}
		cx, cy := tx.force(), ty.force()
		if cx == nil || cy == nil {
			return cx == nil && cy == nil
		}
		if !e.elem.Eqv(kind.Cast[A](cx.head), kind.Cast[A](cy.head)) {
			return false
		}
		tx, ty = cx.tail, cy.tail
	}
}

type seqOrder[A any] struct {
	seqEq[A]
	elem kernel.Order[A]
}

// Order is the lexicographic order of finite sequences; a proper prefix comes
// first.
func Order[A any](elem kernel.Order[A]) kernel.Order[Seq[A]] {
	return seqOrder[A]{seqEq: seqEq[A]{elem: elem}, elem: elem}
}

func (o seqOrder[A]) Compare(x, y Seq[A]) int {
	tx, ty := x.t, y.t
	for {
		if tx == ty {
			return 0
		}
		cx, cy := tx.force(), ty.force()
		switch {
		case cx == nil && cy == nil:
			return 0
		case cx == nil:
			return -1
		case cy == nil:
			return 1
		}
		if c := o.elem.Compare(kind.Cast[A](cx.head), kind.Cast[A](cy.head)); c != 0 {
			return c
		}
		tx, ty = cx.tail, cy.tail
	}
}

type seqHash[A any] struct {
	seqEq[A]
	elem kernel.Hash[A]
}

// Hash hashes finite sequences by feeding every element hash, in order, to
// an xxhash digest.
func Hash[A any](elem kernel.Hash[A]) kernel.Hash[Seq[A]] {
	return seqHash[A]{seqEq: seqEq[A]{elem: elem}, elem: elem}
}

func (h seqHash[A]) Hash(xs Seq[A]) uint64 {
	d := xxhash.New()
	var buf [8]byte
	n := 0
	for a := range xs.All() {
		binary.LittleEndian.PutUint64(buf[:], h.elem.Hash(a))
		_, _ = d.Write(buf[:])
		n++
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = d.Write(buf[:])
	return d.Sum64()
}
