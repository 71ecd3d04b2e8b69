// Package task provides Task, a deferred computation returning a value or an
// error, and ParTask, its parallel form.
//
// Task composes sequentially: in FlatMap and Map2 the second step starts only
// after the first succeeded, and the first error ends the computation.
// ParTask runs both sides of Map2 concurrently, waits for both and reports
// every error. Parallel bridges them, so the par operations of package
// parallel run a batch of Tasks concurrently.
package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/traverse_ive_go/kind"
)

var (
	// ErrPanicked wraps a panic recovered while running a task.
	ErrPanicked = errors.New("task panicked")

	// ErrClosedResult is returned when a fork finished without a result.
	ErrClosedResult = errors.New("task result channel closed")
)

// K brands Task.
type K struct{}

type runFn func(context.Context) (any, error)

// Task is a computation of an A that may fail. Nothing runs until Run.
type Task[A any] struct {
	run runFn
}

func (Task[A]) KindOf(K) {}

func (t Task[A]) Repr() any { return t.run }

func (Task[A]) Retag(repr any) any {
	if repr == nil {
		return Task[A]{}
	}
	if r, ok := repr.(runFn); ok {
		return Task[A]{run: r}
	}
	return nil
}

// Narrow recovers a Task from its kinded form.
func Narrow[A any](fa kind.Of[K, A]) Task[A] {
	return kind.Cast[Task[A]](fa)
}

// Pure succeeds with a.
func Pure[A any](a A) Task[A] {
	return Task[A]{run: func(context.Context) (any, error) { return a, nil }}
}

// Fail fails with err.
func Fail[A any](err error) Task[A] {
	return Task[A]{run: func(context.Context) (any, error) { return nil, err }}
}

// FromFunc runs fn every time the task runs.
func FromFunc[A any](fn func(context.Context) (A, error)) Task[A] {
	return Task[A]{run: func(ctx context.Context) (any, error) { return fn(ctx) }}
}

// Delay runs the pure fn every time the task runs.
func Delay[A any](fn func() A) Task[A] {
	return Task[A]{run: func(context.Context) (any, error) { return fn(), nil }}
}

// Run executes t. A cancelled ctx fails the task before it starts, and a
// panic inside t is returned as an error wrapping ErrPanicked.
func (t Task[A]) Run(ctx context.Context) (a A, err error) {
	v, err := runSafely(ctx, t.run)
	if err != nil {
		return a, err
	}
	return kind.Cast[A](v), nil
}

func runSafely(ctx context.Context, run runFn) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}
	return run(ctx)
}

// Map transforms the result of t.
func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return Task[B]{run: mapRun(t.run, func(a any) any { return f(kind.Cast[A](a)) })}
}

func mapRun(run runFn, f func(any) any) runFn {
	return func(ctx context.Context) (any, error) {
		a, err := runSafely(ctx, run)
		if err != nil {
			return nil, err
		}
		return f(a), nil
	}
}

// FlatMap runs t and then the task f builds from its result.
func FlatMap[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return Task[B]{run: bindRun(t.run, func(a any) runFn { return f(kind.Cast[A](a)).run })}
}

func bindRun(run runFn, f func(any) runFn) runFn {
	return func(ctx context.Context) (any, error) {
		a, err := runSafely(ctx, run)
		if err != nil {
			return nil, err
		}
		return runSafely(ctx, f(a))
	}
}

// HandleErrorWith replaces a failure of t with the task f builds from the
// error.
func HandleErrorWith[A any](t Task[A], f func(error) Task[A]) Task[A] {
	return Task[A]{run: recoverRun(t.run, func(err error) runFn { return f(err).run })}
}

func recoverRun(run runFn, f func(error) runFn) runFn {
	return func(ctx context.Context) (any, error) {
		a, err := runSafely(ctx, run)
		if err == nil {
			return a, nil
		}
		return runSafely(ctx, f(err))
	}
}

// Timing is a result together with the span it took to compute.
type Timing[A any] struct {
	Value A
	Span  timespan.TimeSpan
}

// Timed measures the wall-clock span of every run of t.
func Timed[A any](t Task[A]) Task[Timing[A]] {
	return FromFunc(func(ctx context.Context) (Timing[A], error) {
		start := time.Now()
		a, err := t.Run(ctx)
		if err != nil {
			return Timing[A]{}, err
		}
		return Timing[A]{Value: a, Span: timespan.BetweenTimes(start, time.Now())}, nil
	})
}
