package task

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/log"
	"github.com/on-the-ground/traverse_ive_go/parallel"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

// ParK brands ParTask.
type ParK struct{}

// ParTask is a Task whose applicative composition runs both sides at once.
type ParTask[A any] struct {
	run runFn
}

func (ParTask[A]) KindOf(ParK) {}

func (p ParTask[A]) Repr() any { return p.run }

func (ParTask[A]) Retag(repr any) any {
	if repr == nil {
		return ParTask[A]{}
	}
	if r, ok := repr.(runFn); ok {
		return ParTask[A]{run: r}
	}
	return nil
}

// NarrowPar recovers a ParTask from its kinded form.
func NarrowPar[A any](fa kind.Of[ParK, A]) ParTask[A] {
	return kind.Cast[ParTask[A]](fa)
}

// Par views t as a ParTask.
func Par[A any](t Task[A]) ParTask[A] { return ParTask[A]{run: t.run} }

// Seq views p as a Task.
func (p ParTask[A]) Seq() Task[A] { return Task[A]{run: p.run} }

// Run executes p like Task.Run.
func (p ParTask[A]) Run(ctx context.Context) (A, error) { return p.Seq().Run(ctx) }

type parK = kind.Of[ParK, erased]

func parRunOf(fa parK) runFn { return NarrowPar[erased](fa).run }

type result struct {
	v   any
	err error
}

// fork starts run on its own goroutine when the limiter of ctx has a free
// slot, and runs it inline otherwise. The returned channel yields exactly one
// result.
func fork(ctx context.Context, run runFn) <-chan result {
	resCh := make(chan result, 1)
	l := limiterFrom(ctx)
	if !l.tryAcquire() {
		v, err := runSafely(ctx, run)
		resCh <- result{v: v, err: err}
		close(resCh)
		return resCh
	}

	id := uuid.New().String()
	log.Debug(ctx, "fork started", map[string]any{"fork": id})
	go func() {
		defer close(resCh)
		defer l.release()
		v, err := runSafely(ctx, run)
		if err != nil {
			log.Debug(ctx, "fork failed", map[string]any{"fork": id, "error": err.Error()})
		}
		resCh <- result{v: v, err: err}
	}()
	return resCh
}

func await(resCh <-chan result) (any, error) {
	res, ok := <-resCh
	if !ok {
		return nil, ErrClosedResult
	}
	return res.v, res.err
}

// both runs ra inline and rb on a fork, waits for both and combines the
// errors left first.
func both(ra, rb runFn, f func(any, any) any) runFn {
	return func(ctx context.Context) (any, error) {
		resCh := fork(ctx, rb)
		a, errA := runSafely(ctx, ra)
		b, errB := await(resCh)
		if err := multierr.Combine(errA, errB); err != nil {
			return nil, err
		}
		return f(a, b), nil
	}
}

// ParTaskInstance is the CommutativeApplicative of ParTask. Map2 runs its
// arguments concurrently and fails with every error they produced.
type ParTaskInstance struct{}

// ParInstance is the shared ParTaskInstance.
var ParInstance ParTaskInstance

var _ typeclass.CommutativeApplicative[ParK] = ParInstance

func (ParTaskInstance) Map(fa parK, f func(erased) erased) parK {
	return ParTask[erased]{run: mapRun(parRunOf(fa), f)}
}

func (ParTaskInstance) Map2(fa, fb parK, f func(erased, erased) erased) parK {
	return ParTask[erased]{run: both(parRunOf(fa), parRunOf(fb), f)}
}

func (p ParTaskInstance) Map2Eval(fa parK, fb eval.Eval[parK], f func(erased, erased) erased) eval.Eval[parK] {
	return typeclass.DefaultMap2Eval[ParK](p, fa, fb, f)
}

func (ParTaskInstance) Pure(a erased) parK { return Par(Pure(a)) }

// Commutes holds for results: both sides always run and errors are reported
// in argument order regardless of which finished first.
func (ParTaskInstance) Commutes() {}

// Parallel bridges Task and ParTask.
func Parallel() parallel.Bridge[K, ParK] {
	return parallel.New[K, ParK](
		Instance,
		ParInstance,
		func(fa parK) taskK { return Task[erased]{run: parRunOf(fa)} },
		func(ma taskK) parK { return ParTask[erased]{run: runOf(ma)} },
	)
}

// Supervise runs every task concurrently, bounded by the configuration of ctx,
// and returns their results in order. The error combines the failures of all
// tasks in order; results of failed tasks are zero.
func Supervise[A any](ctx context.Context, tasks ...Task[A]) ([]A, error) {
	results := make([]A, len(tasks))
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	for i, t := range tasks {
		resCh := fork(ctx, t.run)
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := await(resCh)
			if err != nil {
				errs[i] = fmt.Errorf("task %d: %w", i, err)
				return
			}
			results[i] = kind.Cast[A](v)
		}()
	}
	wg.Wait()

	if err := multierr.Combine(errs...); err != nil {
		log.Warn(ctx, "supervised tasks failed", map[string]any{"count": len(multierr.Errors(err))})
		return results, err
	}
	return results, nil
}
