package lazylist_test

import (
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kernel"
	"github.com/on-the-ground/traverse_ive_go/lazylist"
)

func TestSeq_ZeroValueIsEmpty(t *testing.T) {
	var s lazylist.Seq[int]
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.ToSlice())
	_, ok := s.Head()
	assert.False(t, ok)
	assert.True(t, s.Tail().IsEmpty())
}

func TestSeq_CellsAreMemoized(t *testing.T) {
	calls := 0
	s := lazylist.Map(lazylist.Of(1, 2, 3), func(n int) int { calls++; return n * 10 })
	assert.Equal(t, 0, calls)

	assert.Equal(t, []int{10, 20, 30}, s.ToSlice())
	assert.Equal(t, []int{10, 20, 30}, s.ToSlice())
	assert.Equal(t, 3, calls)
}

func TestSeq_ConcurrentReaders(t *testing.T) {
	calls := 0
	var mu sync.Mutex
	s := lazylist.Map(lazylist.Range(0, 1000), func(n int) int {
		mu.Lock()
		calls++
		mu.Unlock()
		return n
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 1000, s.Len())
		}()
	}
	wg.Wait()
	assert.Equal(t, 1000, calls)
}

func TestSeq_FromSliceCopies(t *testing.T) {
	src := []string{"a", "b"}
	s := lazylist.FromSlice(src)
	src[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.ToSlice())
}

func TestSeq_Generators(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 8}, lazylist.Take(lazylist.Iterate(1, func(n int) int { return n * 2 }), 4).ToSlice())
	assert.Equal(t, []int{5, 6, 7}, lazylist.Take(lazylist.From(5), 3).ToSlice())
	assert.Equal(t, []int{2, 3, 4}, lazylist.Range(2, 5).ToSlice())
	assert.True(t, lazylist.Range(5, 2).IsEmpty())
	assert.Equal(t, []string{"x", "x"}, lazylist.Take(lazylist.Repeat("x"), 2).ToSlice())

	fib := lazylist.Unfold([2]int{0, 1}, func(s [2]int) (int, [2]int, bool) {
		return s[0], [2]int{s[1], s[0] + s[1]}, true
	})
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5, 8}, lazylist.Take(fib, 7).ToSlice())

	countdown := lazylist.Unfold(3, func(n int) (int, int, bool) { return n, n - 1, n > 0 })
	assert.Equal(t, []int{3, 2, 1}, countdown.ToSlice())
}

func TestSeq_FromIteratorPullsOnDemand(t *testing.T) {
	pulled := 0
	s := lazylist.FromIterator(func() (int, bool) {
		pulled++
		return pulled, pulled <= 100
	})
	assert.Equal(t, []int{1, 2}, lazylist.Take(s, 2).ToSlice())
	assert.Equal(t, 2, pulled)
	assert.Equal(t, 100, s.Len())
}

func TestSeq_FromSeq(t *testing.T) {
	s := lazylist.FromSeq(slices.Values([]int{4, 5, 6}))
	assert.Equal(t, []int{4, 5, 6}, s.ToSlice())
	assert.Equal(t, []int{4, 5, 6}, slices.Collect(s.All()))
}

func TestSeq_ConsLazyAndDefer(t *testing.T) {
	built := false
	s := lazylist.ConsLazy(1, func() lazylist.Seq[int] { built = true; return lazylist.Of(2) })
	h, ok := s.Head()
	require.True(t, ok)
	assert.Equal(t, 1, h)
	assert.False(t, built)
	assert.Equal(t, []int{1, 2}, s.ToSlice())
	assert.True(t, built)

	deferred := false
	d := lazylist.Defer(func() lazylist.Seq[int] { deferred = true; return lazylist.Of(9) })
	assert.False(t, deferred)
	assert.Equal(t, []int{9}, d.ToSlice())
}

func TestSeq_Uncons(t *testing.T) {
	h, rest, ok := lazylist.Cons(1, lazylist.Of(2, 3)).Uncons()
	require.True(t, ok)
	assert.Equal(t, 1, h)
	assert.Equal(t, []int{2, 3}, rest.ToSlice())

	_, _, ok = lazylist.Empty[int]().Uncons()
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	s := lazylist.Of("a", "b", "c")
	assert.Equal(t, data.Some("b"), lazylist.Get(s, 1))
	assert.True(t, lazylist.Get(s, -1).IsNone())
	assert.True(t, lazylist.Get(s, 3).IsNone())
	assert.True(t, lazylist.Get(s, 1<<20).IsNone())
	assert.True(t, lazylist.Get(lazylist.Empty[string](), 0).IsNone())
}

func TestGet_DeepIndex(t *testing.T) {
	v, ok := lazylist.Get(lazylist.From(0), 1_000_000).Get()
	require.True(t, ok)
	assert.Equal(t, 1_000_000, v)
}

func TestTakeDrop(t *testing.T) {
	s := lazylist.Range(0, 10)
	assert.Equal(t, []int{0, 1, 2}, lazylist.Take(s, 3).ToSlice())
	assert.True(t, lazylist.Take(s, 0).IsEmpty())
	assert.True(t, lazylist.Take(s, -1).IsEmpty())
	assert.Equal(t, []int{8, 9}, lazylist.Drop(s, 8).ToSlice())
	assert.True(t, lazylist.Drop(s, 20).IsEmpty())
	assert.Equal(t, s.ToSlice(), lazylist.Drop(s, -2).ToSlice())

	lt5 := func(n int) bool { return n < 5 }
	assert.Equal(t, []int{0, 1, 2, 3, 4}, lazylist.TakeWhile(lazylist.From(0), lt5).ToSlice())
	assert.Equal(t, []int{5, 6}, lazylist.Take(lazylist.DropWhile(lazylist.From(0), lt5), 2).ToSlice())
}

func TestAppend_RightSideIsLazy(t *testing.T) {
	touched := false
	right := lazylist.Defer(func() lazylist.Seq[int] { touched = true; return lazylist.Of(3) })
	s := lazylist.Append(lazylist.Of(1, 2), right)
	assert.Equal(t, []int{1, 2}, lazylist.Take(s, 2).ToSlice())
	assert.False(t, touched)
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())

	assert.Equal(t, []int{1}, lazylist.Append(lazylist.Empty[int](), lazylist.Of(1)).ToSlice())
}

func TestTails(t *testing.T) {
	var got [][]int
	for suffix := range lazylist.Tails(lazylist.Of(1, 2, 3)).All() {
		got = append(got, suffix.ToSlice())
	}
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 3}, {3}, {}}, normalize(got))
}

func normalize(xs [][]int) [][]int {
	for i, x := range xs {
		if x == nil {
			xs[i] = []int{}
		}
	}
	return xs
}

func TestCombinators(t *testing.T) {
	s := lazylist.Range(1, 7)
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4, 6}, lazylist.Filter(s, even).ToSlice())
	assert.Equal(t, []int{1, 1, 2, 2}, lazylist.FlatMap(lazylist.Of(1, 2), func(n int) lazylist.Seq[int] {
		return lazylist.Of(n, n)
	}).ToSlice())
	assert.Equal(t, []data.Pair[int, string]{data.Tuple(1, "a"), data.Tuple(2, "b")},
		lazylist.Zip(s, lazylist.Of("a", "b")).ToSlice())
	assert.Equal(t, []data.Pair[string, int]{data.Tuple("a", 0), data.Tuple("b", 1)},
		lazylist.ZipWithIndex(lazylist.Of("a", "b")).ToSlice())
	assert.Equal(t, []int{10, 21}, lazylist.MapWithIndex(lazylist.Of(10, 20), func(n, i int) int { return n + i }).ToSlice())

	assert.True(t, lazylist.Exists(lazylist.From(0), func(n int) bool { return n > 1000 }))
	assert.False(t, lazylist.Forall(lazylist.From(0), func(n int) bool { return n < 1000 }))
	assert.True(t, lazylist.Forall(lazylist.Empty[int](), even))
	assert.Equal(t, data.Some(4), lazylist.Find(s, func(n int) bool { return n > 3 }))
	assert.True(t, lazylist.Find(s, func(n int) bool { return n > 30 }).IsNone())
	assert.Equal(t, data.Some("2"), lazylist.CollectFirst(s, func(n int) data.Option[string] {
		if even(n) {
			return data.Some("2")
		}
		return data.None[string]()
	}))
}

func TestFlatMap_SkipsLongRunsOfEmptyResults(t *testing.T) {
	s := lazylist.FlatMap(lazylist.Range(0, 1_000_000), func(n int) lazylist.Seq[int] {
		if n == 999_999 {
			return lazylist.Of(n)
		}
		return lazylist.Empty[int]()
	})
	assert.Equal(t, []int{999_999}, s.ToSlice())
}

func TestShow(t *testing.T) {
	assert.Equal(t, "Seq()", lazylist.Empty[int]().String())
	assert.Equal(t, "Seq(1, ?)", lazylist.From(1).String())

	show := lazylist.Show(kernel.ShowFunc[int](func(n int) string { return "#" })).Show
	assert.Equal(t, "Seq(#, ?)", show(lazylist.Of(1, 2)))

	forced := false
	s := lazylist.ConsLazy(1, func() lazylist.Seq[int] { forced = true; return lazylist.Empty[int]() })
	assert.Equal(t, "Seq(1, ?)", s.String())
	assert.False(t, forced)
}

func TestEqOrderHash(t *testing.T) {
	eq := lazylist.Eq(kernel.ComparableEq[int]())
	ord := lazylist.Order(kernel.OrderedOrder[int]())
	h := lazylist.Hash(kernel.IntHash())

	assert.True(t, eq.Eqv(lazylist.Range(0, 5), lazylist.Of(0, 1, 2, 3, 4)))
	assert.False(t, eq.Eqv(lazylist.Of(1, 2), lazylist.Of(1, 2, 3)))
	assert.True(t, eq.Eqv(lazylist.Empty[int](), lazylist.Empty[int]()))

	assert.Equal(t, -1, ord.Compare(lazylist.Of(1, 2), lazylist.Of(1, 2, 0)))
	assert.Equal(t, 1, ord.Compare(lazylist.Of(1, 3), lazylist.Of(1, 2, 9)))
	assert.Equal(t, 0, ord.Compare(lazylist.Of(4), lazylist.Of(4)))

	assert.Equal(t, h.Hash(lazylist.Of(1, 2, 3)), h.Hash(lazylist.Range(1, 4)))
	assert.NotEqual(t, h.Hash(lazylist.Of(1, 2)), h.Hash(lazylist.Of(2, 1)))
	assert.NotEqual(t, h.Hash(lazylist.Empty[int]()), h.Hash(lazylist.Of(0)))
}

func TestEq_SharedSuffixIsNotWalked(t *testing.T) {
	eq := lazylist.Eq(kernel.ComparableEq[int]())
	inf := lazylist.From(1)
	assert.True(t, eq.Eqv(lazylist.Cons(0, inf), lazylist.Cons(0, inf)))
}

func TestTakeDropProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 200 {
		size := rng.IntN(50)
		n := rng.IntN(60)
		xs := make([]int, size)
		for i := range xs {
			xs[i] = rng.IntN(1000)
		}
		s := lazylist.FromSlice(xs)
		joined := lazylist.Append(lazylist.Take(s, n), lazylist.Drop(s, n))
		require.Equal(t, s.Len(), joined.Len())
		require.True(t, lazylist.Eq(kernel.ComparableEq[int]()).Eqv(s, joined))
	}
}
