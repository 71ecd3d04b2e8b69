package parallel_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/instances"
	"github.com/on-the-ground/traverse_ive_go/kernel"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/lazylist"
	"github.com/on-the-ground/traverse_ive_go/parallel"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

type (
	eitK = data.EitherK[[]error]
	valK = data.ValidatedK[[]error]
	optK = data.OptionK
	seqK = lazylist.K
)

func bridge() parallel.Bridge[eitK, valK] {
	return instances.EitherParallel(instances.AccumulateErrors())
}

func failOdd(n int) kind.Of[eitK, int] {
	if n%2 != 0 {
		return data.Left[[]error, int]([]error{fmt.Errorf("odd %d", n)})
	}
	return data.Right[[]error](n * 10)
}

func double(n int) kind.Of[eitK, int] { return data.Right[[]error](n * 2) }

func rightSeq(t *testing.T, res kind.Of[eitK, kind.Of[seqK, int]]) []int {
	t.Helper()
	s, ok := data.NarrowEither[[]error, kind.Of[seqK, int]](res).GetRight()
	require.True(t, ok)
	return lazylist.Narrow[int](s).ToSlice()
}

func leftMessages(t *testing.T, errs []error) []string {
	t.Helper()
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}

func TestParTraverse_MatchesTraverseOnSuccess(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	p := bridge()
	for range 50 {
		xs := make([]int, rng.IntN(40))
		for i := range xs {
			xs[i] = rng.IntN(1000)
		}
		s := lazylist.FromSlice(xs)

		par := parallel.ParTraverse[seqK, eitK, valK, int, int](lazylist.Instance, p, s, double)
		seq := typeclass.TraverseA[seqK, eitK, int, int](lazylist.Instance, instances.Either[[]error](), s, double)
		assert.Equal(t, rightSeq(t, seq), rightSeq(t, par))
	}
}

func TestParTraverse_AccumulatesEveryFailure(t *testing.T) {
	res := parallel.ParTraverse[seqK, eitK, valK, int, int](lazylist.Instance, bridge(), lazylist.Of(1, 2, 3, 4, 5), failOdd)
	errs, ok := data.NarrowEither[[]error, kind.Of[seqK, int]](res).GetLeft()
	require.True(t, ok)
	assert.Equal(t, []string{"odd 1", "odd 3", "odd 5"}, leftMessages(t, errs))

	seq := typeclass.TraverseA[seqK, eitK, int, int](lazylist.Instance, instances.Either[[]error](), lazylist.Of(1, 2, 3, 4, 5), failOdd)
	first, _ := data.NarrowEither[[]error, kind.Of[seqK, int]](seq).GetLeft()
	assert.Equal(t, []string{"odd 1"}, leftMessages(t, first))
}

func TestParSequence(t *testing.T) {
	ms := lazylist.Of[kind.Of[eitK, int]](double(1), double(2))
	res := parallel.ParSequence[seqK, eitK, valK, int](lazylist.Instance, bridge(), ms)
	assert.Equal(t, []int{2, 4}, rightSeq(t, res))
}

func TestParTraverseVoid(t *testing.T) {
	res := parallel.ParTraverseVoid[seqK, eitK, valK, int, int](lazylist.Instance, bridge(), lazylist.Of(1, 3), failOdd)
	errs, ok := data.NarrowEither[[]error, struct{}](res).GetLeft()
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	p := bridge()
	for range 100 {
		var m data.Either[[]error, int]
		if rng.IntN(2) == 0 {
			m = data.Right[[]error](rng.Int())
		} else {
			m = data.Left[[]error, int]([]error{errors.New("boom")})
		}
		back := parallel.ToSequential[eitK, valK, int](p, parallel.ToParallel[eitK, valK, int](p, m))
		assert.Equal(t, m, data.NarrowEither[[]error, int](back))
	}
}

func TestParProductAndMap(t *testing.T) {
	p := bridge()
	pair := parallel.ParProduct[eitK, valK, int, string](p, double(1), data.Right[[]error]("x"))
	got, ok := data.NarrowEither[[]error, data.Pair[int, string]](pair).GetRight()
	require.True(t, ok)
	assert.Equal(t, data.Tuple(2, "x"), got)

	both := parallel.ParMap2[eitK, valK, int, int, int](p, failOdd(1), failOdd(3), func(a, b int) int { return a + b })
	errs, _ := data.NarrowEither[[]error, int](both).GetLeft()
	assert.Equal(t, []string{"odd 1", "odd 3"}, leftMessages(t, errs))

	sum := parallel.ParMap3[eitK, valK, int, int, int, int](p, double(1), double(2), double(3), func(a, b, c int) int { return a + b + c })
	assert.Equal(t, data.Right[[]error](12), data.NarrowEither[[]error, int](sum))

	l := parallel.ParProductL[eitK, valK, int, int](p, double(1), failOdd(5))
	assert.True(t, data.NarrowEither[[]error, int](l).IsLeft())
	r := parallel.ParProductR[eitK, valK, int, int](p, double(1), double(5))
	assert.Equal(t, data.Right[[]error](10), data.NarrowEither[[]error, int](r))

	inc := data.Right[[]error](func(n int) int { return n + 1 })
	ap := parallel.ParAp[eitK, valK, int, int](p, inc, double(4))
	assert.Equal(t, data.Right[[]error](9), data.NarrowEither[[]error, int](ap))
}

func TestParBitraverse_CollectsBothSides(t *testing.T) {
	res := parallel.ParBitraverse[data.PairK, eitK, valK, int, int, int, int](instances.Pair, bridge(), data.Tuple(1, 3), failOdd, failOdd)
	errs, ok := data.NarrowEither[[]error, kind.Of2[data.PairK, int, int]](res).GetLeft()
	require.True(t, ok)
	assert.Equal(t, []string{"odd 1", "odd 3"}, leftMessages(t, errs))

	left := parallel.ParLeftTraverse[data.PairK, eitK, valK, int, string, int](instances.Pair, bridge(), data.Tuple(2, "k"), failOdd)
	p, ok := data.NarrowEither[[]error, kind.Of2[data.PairK, int, string]](left).GetRight()
	require.True(t, ok)
	assert.Equal(t, data.Tuple(20, "k"), data.NarrowPair[int, string](p))
}

func TestParNonEmptyTraverse(t *testing.T) {
	res := parallel.ParNonEmptyTraverse[data.NonEmptySliceK, eitK, valK, int, int](instances.NonEmptySlice, bridge(), data.NonEmpty(1, 2, 3), failOdd)
	errs, ok := data.NarrowEither[[]error, kind.Of[data.NonEmptySliceK, int]](res).GetLeft()
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestParFilterAndFoldMap(t *testing.T) {
	p := bridge()
	kept := parallel.ParFilterA[seqK, eitK, valK, int](lazylist.Instance, p, lazylist.Range(0, 6), func(n int) kind.Of[eitK, bool] {
		return data.Right[[]error](n%3 == 0)
	})
	assert.Equal(t, []int{0, 3}, rightSeq(t, kept))

	total := parallel.ParFoldMapA[seqK, eitK, valK, int, int](lazylist.Instance, p, kernel.IntSum(), lazylist.Of(1, 2, 3), double)
	assert.Equal(t, data.Right[[]error](12), data.NarrowEither[[]error, int](total))
}

func TestParReplicateA_Identity(t *testing.T) {
	p := instances.OptionParallel()
	res := parallel.ParReplicateA[optK, optK, int](p, 2, data.Some(1))
	assert.Equal(t, data.Some([]int{1, 1}), data.NarrowOption[[]int](res))
}

func TestParUnorderedTraverse(t *testing.T) {
	res := parallel.ParUnorderedTraverse[seqK, optK, optK, int, int](lazylist.Instance, instances.OptionParallel(), lazylist.Of(1, 2),
		func(n int) kind.Of[optK, int] { return data.Some(n) })
	s, ok := data.NarrowOption[kind.Of[seqK, int]](res).Get()
	require.True(t, ok)
	assert.ElementsMatch(t, []int{1, 2}, lazylist.Narrow[int](s).ToSlice())
}

func TestParUnorderedTraverse_RequiresCommutative(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, parallel.ErrNotCommutative)
		assert.NotErrorIs(t, err, kind.ErrUnexpectedKind)
	}()
	parallel.ParUnorderedTraverse[seqK, eitK, valK, int, int](lazylist.Instance, bridge(), lazylist.Of(1), double)
}

func TestApplicativeError_DerivedFromSequential(t *testing.T) {
	ae := parallel.ApplicativeError[eitK, valK, []error](bridge(), instances.Either[[]error]())
	boom := errors.New("boom")

	raised := typeclass.RaiseError[valK, []error, int](ae, []error{boom})
	errs, ok := data.NarrowValidated[[]error, int](raised).Err()
	require.True(t, ok)
	assert.Equal(t, []error{boom}, errs)

	handled := typeclass.HandleErrorWith[valK, []error, int](ae, raised, func(errs []error) kind.Of[valK, int] {
		return data.Valid[[]error](len(errs))
	})
	n, ok := data.NarrowValidated[[]error, int](handled).Get()
	require.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestIdentityBridge(t *testing.T) {
	p := parallel.Identity[optK](instances.Option)
	res := parallel.ParMap2[optK, optK, int, int, int](p, data.Some(1), data.None[int](), func(a, b int) int { return a + b })
	assert.True(t, data.NarrowOption[int](res).IsNone())
	assert.Equal(t, data.Some(3), data.NarrowOption[int](p.Sequential(p.Parallel(data.Some(3)))))
}

func TestParFlatTraverseAndFilter(t *testing.T) {
	p := bridge()
	flat := parallel.ParFlatTraverse[seqK, eitK, valK, int, int](lazylist.Instance, lazylist.Instance, p, lazylist.Of(1, 2),
		func(n int) kind.Of[eitK, kind.Of[seqK, int]] {
			return data.Right[[]error, kind.Of[seqK, int]](lazylist.Of(n, n))
		})
	assert.Equal(t, []int{1, 1, 2, 2}, rightSeq(t, flat))

	evens := parallel.ParTraverseFilter[seqK, eitK, valK, int, int](lazylist.Instance, p, lazylist.Range(0, 5),
		func(n int) kind.Of[eitK, data.Option[int]] {
			if n%2 != 0 {
				return data.Right[[]error](data.None[int]())
			}
			return data.Right[[]error](data.Some(n))
		})
	assert.Equal(t, []int{0, 2, 4}, rightSeq(t, evens))
}

func TestParUnorderedFlatTraverse(t *testing.T) {
	res := parallel.ParUnorderedFlatTraverse[seqK, optK, optK, int, int](lazylist.Instance, lazylist.Instance, instances.OptionParallel(), lazylist.Of(1, 2),
		func(n int) kind.Of[optK, kind.Of[seqK, int]] {
			return data.Some[kind.Of[seqK, int]](lazylist.Of(n, n*10))
		})
	s, ok := data.NarrowOption[kind.Of[seqK, int]](res).Get()
	require.True(t, ok)
	assert.ElementsMatch(t, []int{1, 10, 2, 20}, lazylist.Narrow[int](s).ToSlice())
}

func TestParAp2(t *testing.T) {
	mul := data.Right[[]error](func(a, b int) int { return a * b })
	res := parallel.ParAp2[eitK, valK, int, int, int](bridge(), mul, double(1), double(3))
	assert.Equal(t, data.Right[[]error](12), data.NarrowEither[[]error, int](res))
}
