package instances_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/instances"
	"github.com/on-the-ground/traverse_ive_go/kernel"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

type (
	optK = data.OptionK
	eitK = data.EitherK[string]
	valK = data.ValidatedK[[]string]
)

func TestOption_Monad(t *testing.T) {
	sum := typeclass.Map2[optK, int, int, int](instances.Option, data.Some(1), data.Some(2), func(a, b int) int { return a + b })
	assert.Equal(t, data.Some(3), data.NarrowOption[int](sum))

	none := typeclass.Map2[optK, int, int, int](instances.Option, data.Some(1), data.None[int](), func(a, b int) int { return a + b })
	assert.True(t, data.NarrowOption[int](none).IsNone())

	half := func(n int) kind.Of[optK, int] {
		if n%2 != 0 {
			return data.None[int]()
		}
		return data.Some(n / 2)
	}
	assert.Equal(t, data.Some(2), data.NarrowOption[int](typeclass.Bind[optK](instances.Option, data.Some(4), half)))
	assert.True(t, data.NarrowOption[int](typeclass.Bind[optK](instances.Option, data.Some(3), half)).IsNone())
}

func TestOption_Map2EvalDoesNotForceAfterNone(t *testing.T) {
	forced := false
	fb := eval.Later(func() kind.Of[optK, int] { forced = true; return data.Some(1) })
	res := typeclass.Map2Eval[optK, int, int, int](instances.Option, data.None[int](), fb, func(a, b int) int { return a + b })
	assert.True(t, data.NarrowOption[int](res.Value()).IsNone())
	assert.False(t, forced)
}

func TestOption_TailRecM(t *testing.T) {
	res := typeclass.TailRecM[optK](instances.Option, 0, func(n int) kind.Of[optK, data.Either[int, string]] {
		if n < 1_000_000 {
			return data.Some(data.Left[int, string](n + 1))
		}
		return data.Some(data.Right[int](strconv.Itoa(n)))
	})
	assert.Equal(t, data.Some("1000000"), data.NarrowOption[string](res))
}

func TestOption_ErrorHandling(t *testing.T) {
	recovered := typeclass.HandleError[optK, struct{}, int](instances.Option, data.None[int](), func(struct{}) int { return 7 })
	assert.Equal(t, data.Some(7), data.NarrowOption[int](recovered))

	combined := typeclass.CombineK[optK, int](instances.Option, data.None[int](), data.Some(5))
	assert.Equal(t, data.Some(5), data.NarrowOption[int](combined))
}

func TestOption_TraverseFilter(t *testing.T) {
	kept := typeclass.Filter[optK](instances.Option, data.Some(3), func(n int) bool { return n > 5 })
	assert.True(t, data.NarrowOption[int](kept).IsNone())

	inner := typeclass.TraverseA[optK, optK](instances.Option, instances.Option, data.Some(2), func(n int) kind.Of[optK, string] {
		return data.Some(strconv.Itoa(n))
	})
	outer, ok := data.NarrowOption[kind.Of[optK, string]](inner).Get()
	require.True(t, ok)
	assert.Equal(t, data.Some("2"), data.NarrowOption[string](outer))
}

func TestEither_MonadError(t *testing.T) {
	e := instances.Either[string]()
	failed := typeclass.RaiseError[eitK, string, int](e, "nope")
	l, ok := data.NarrowEither[string, int](failed).GetLeft()
	require.True(t, ok)
	assert.Equal(t, "nope", l)

	handled := typeclass.HandleErrorWith[eitK, string, int](e, failed, func(msg string) kind.Of[eitK, int] {
		return data.Right[string](len(msg))
	})
	assert.Equal(t, data.Right[string](4), data.NarrowEither[string, int](handled))

	attempted := typeclass.Attempt[eitK, string, int](e, data.Right[string](1))
	inner, _ := data.NarrowEither[string, data.Either[string, int]](attempted).GetRight()
	assert.Equal(t, data.Right[string](1), inner)
}

func TestEither_Map2StopsAtFirstLeft(t *testing.T) {
	e := instances.Either[string]()
	res := typeclass.Map2[eitK, int, int, int](e, data.Left[string, int]("first"), data.Left[string, int]("second"), func(a, b int) int { return a + b })
	l, _ := data.NarrowEither[string, int](res).GetLeft()
	assert.Equal(t, "first", l)
}

func TestEither_TailRecMEndsOnLeft(t *testing.T) {
	res := typeclass.TailRecM[eitK](instances.Either[string](), 0, func(n int) kind.Of[eitK, data.Either[int, int]] {
		if n == 10 {
			return data.Left[string, data.Either[int, int]]("stop")
		}
		return data.Right[string](data.Left[int, int](n + 1))
	})
	l, ok := data.NarrowEither[string, int](res).GetLeft()
	require.True(t, ok)
	assert.Equal(t, "stop", l)
}

func TestValidated_AccumulatesErrors(t *testing.T) {
	v := instances.Validated(kernel.SliceConcat[string]())
	res := typeclass.Map3[valK, int, int, int, int](v,
		data.Invalid[[]string, int]([]string{"a"}),
		data.Valid[[]string](2),
		data.Invalid[[]string, int]([]string{"b", "c"}),
		func(x, y, z int) int { return x + y + z },
	)
	errs, ok := data.NarrowValidated[[]string, int](res).Err()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, errs)

	ok3 := typeclass.Map2[valK, int, int, int](v, data.Valid[[]string](1), data.Valid[[]string](2), func(x, y int) int { return x*10 + y })
	got, _ := data.NarrowValidated[[]string, int](ok3).Get()
	assert.Equal(t, 12, got)
}

func TestValidated_HandleErrorWith(t *testing.T) {
	v := instances.Validated(kernel.SliceConcat[string]())
	res := typeclass.HandleErrorWith[valK, []string, int](v, data.Invalid[[]string, int]([]string{"x"}), func(errs []string) kind.Of[valK, int] {
		return data.Valid[[]string](len(errs))
	})
	got, ok := data.NarrowValidated[[]string, int](res).Get()
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestPair_Bitraverse(t *testing.T) {
	res := typeclass.BitraverseA[data.PairK, optK](instances.Pair, instances.Option, data.Tuple(1, "a"),
		func(n int) kind.Of[optK, string] { return data.Some(strconv.Itoa(n)) },
		func(s string) kind.Of[optK, int] { return data.Some(len(s)) },
	)
	p, ok := data.NarrowOption[kind.Of2[data.PairK, string, int]](res).Get()
	require.True(t, ok)
	assert.Equal(t, data.Tuple("1", 1), data.NarrowPair[string, int](p))

	mapped := typeclass.Bimap[data.PairK](instances.Pair, data.Tuple(2, 3), strconv.Itoa, func(n int) bool { return n > 2 })
	assert.Equal(t, data.Tuple("2", true), data.NarrowPair[string, bool](mapped))
}

func TestEitherBi_LeftTraverse(t *testing.T) {
	res := typeclass.LeftTraverse[data.Either2K, optK, int, string, int](instances.EitherBi, instances.Option, data.Left[int, string](4),
		func(n int) kind.Of[optK, int] { return data.Some(n * 2) })
	e, ok := data.NarrowOption[kind.Of2[data.Either2K, int, string]](res).Get()
	require.True(t, ok)
	l, _ := data.NarrowEither2[int, string](e).GetLeft()
	assert.Equal(t, 8, l)
}

func TestEval_TailRecMStackSafe(t *testing.T) {
	res := typeclass.TailRecM[eval.K](instances.Eval, 0, func(n int) kind.Of[eval.K, data.Either[int, int]] {
		if n < 1_000_000 {
			return eval.Now(data.Left[int, int](n + 1))
		}
		return eval.Now(data.Right[int](n))
	})
	assert.Equal(t, 1_000_000, eval.Narrow[int](res).Value())
}

func TestNonEmptySlice_Monad(t *testing.T) {
	nel := instances.NonEmptySlice
	prod := typeclass.Product[data.NonEmptySliceK, int, string](nel, data.NonEmpty(1, 2), data.NonEmpty("a", "b"))
	assert.Equal(t, []data.Pair[int, string]{
		data.Tuple(1, "a"), data.Tuple(1, "b"), data.Tuple(2, "a"), data.Tuple(2, "b"),
	}, data.NarrowNonEmpty[data.Pair[int, string]](prod).Slice())

	tree := typeclass.TailRecM[data.NonEmptySliceK](nel, 1, func(n int) kind.Of[data.NonEmptySliceK, data.Either[int, int]] {
		if n >= 4 {
			return data.NonEmpty(data.Right[int](n))
		}
		return data.NonEmpty(data.Right[int](n), data.Left[int, int](2*n), data.Left[int, int](2*n+1))
	})
	assert.Equal(t, []int{1, 2, 4, 5, 3, 6, 7}, data.NarrowNonEmpty[int](tree).Slice())
}

func TestNonEmptySlice_NonEmptyTraverse(t *testing.T) {
	nel := instances.NonEmptySlice
	res := typeclass.NonEmptyTraverseA[data.NonEmptySliceK, optK](nel, instances.Option, data.NonEmpty(1, 2, 3),
		func(n int) kind.Of[optK, int] { return data.Some(n * n) })
	got, ok := data.NarrowOption[kind.Of[data.NonEmptySliceK, int]](res).Get()
	require.True(t, ok)
	assert.Equal(t, []int{1, 4, 9}, data.NarrowNonEmpty[int](got).Slice())

	visited := 0
	stopped := typeclass.NonEmptyTraverseA[data.NonEmptySliceK, optK](nel, instances.Option, data.NonEmpty(1, 2, 3),
		func(n int) kind.Of[optK, int] {
			visited++
			if n == 2 {
				return data.None[int]()
			}
			return data.Some(n)
		})
	assert.True(t, data.NarrowOption[kind.Of[data.NonEmptySliceK, int]](stopped).IsNone())
	assert.Equal(t, 2, visited)

	assert.Equal(t, 6, typeclass.ReduceLeft[data.NonEmptySliceK](nel, data.NonEmpty(1, 2, 3), func(a, b int) int { return a + b }))
}

func TestEitherParallel_RoundTrip(t *testing.T) {
	p := instances.EitherParallel(instances.AccumulateErrors())
	errBad := errors.New("bad")
	for _, m := range []data.Either[[]error, int]{data.Right[[]error](1), data.Left[[]error, int]([]error{errBad})} {
		back := p.Sequential(p.Parallel(m))
		assert.Equal(t, m, data.NarrowEither[[]error, int](back))
	}
}

func TestOptionParallel_IsIdentity(t *testing.T) {
	p := instances.OptionParallel()
	m := data.Some(3)
	assert.Equal(t, m, data.NarrowOption[int](p.Parallel(m)))
	assert.Equal(t, m, data.NarrowOption[int](p.Sequential(m)))
}
