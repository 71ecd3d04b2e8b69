package kind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kind"
)

type boxK struct{}

type box[A any] struct{ v any }

func (box[A]) KindOf(boxK) {}

func TestCast(t *testing.T) {
	assert.Equal(t, 3, kind.Cast[int](3))
	assert.Equal(t, 0, kind.Cast[int](nil))

	erased := data.Some[kind.Erased](4)
	typed := kind.Cast[data.Option[int]](erased)
	v, ok := typed.Get()
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	assert.PanicsWithError(t, "unexpected kind: string is not int", func() { kind.Cast[int]("x") })
}

func TestForgetRemember(t *testing.T) {
	b := box[int]{v: 1}
	forgotten := kind.Forget[boxK, int](b)
	back := kind.Remember[boxK, int](forgotten)
	assert.Equal(t, b, back)

	assert.Panics(t, func() { kind.Remember[data.OptionK, int](forgotten) })
}
