package task

import (
	"context"

	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/eval"
	"github.com/on-the-ground/traverse_ive_go/kind"
	"github.com/on-the-ground/traverse_ive_go/typeclass"
)

type erased = kind.Erased

type taskK = kind.Of[K, erased]

func runOf(fa taskK) runFn { return Narrow[erased](fa).run }

// TaskInstance is the MonadError of Task. Steps run one after another on the
// calling goroutine.
type TaskInstance struct{}

// Instance is the shared TaskInstance.
var Instance TaskInstance

var _ typeclass.MonadError[K, error] = Instance

func (TaskInstance) Map(fa taskK, f func(erased) erased) taskK {
	return Task[erased]{run: mapRun(runOf(fa), f)}
}

func (TaskInstance) Map2(fa, fb taskK, f func(erased, erased) erased) taskK {
	ra, rb := runOf(fa), runOf(fb)
	return Task[erased]{run: func(ctx context.Context) (any, error) {
		a, err := runSafely(ctx, ra)
		if err != nil {
			return nil, err
		}
		b, err := runSafely(ctx, rb)
		if err != nil {
			return nil, err
		}
		return f(a, b), nil
	}}
}

// Map2Eval forces fb only when the task runs and fa succeeded.
func (TaskInstance) Map2Eval(fa taskK, fb eval.Eval[taskK], f func(erased, erased) erased) eval.Eval[taskK] {
	ra := runOf(fa)
	return eval.Now[taskK](Task[erased]{run: func(ctx context.Context) (any, error) {
		a, err := runSafely(ctx, ra)
		if err != nil {
			return nil, err
		}
		b, err := runSafely(ctx, runOf(fb.Value()))
		if err != nil {
			return nil, err
		}
		return f(a, b), nil
	}})
}

func (TaskInstance) Pure(a erased) taskK { return Pure(a) }

func (TaskInstance) FlatMap(fa taskK, f func(erased) taskK) taskK {
	return Task[erased]{run: bindRun(runOf(fa), func(a any) runFn { return runOf(f(a)) })}
}

// TailRecM loops on the running goroutine, so deep recursion does not grow
// the stack.
func (TaskInstance) TailRecM(a erased, f func(erased) kind.Of[K, data.Either[erased, erased]]) taskK {
	return Task[erased]{run: func(ctx context.Context) (any, error) {
		s := a
		for {
			v, err := runSafely(ctx, Narrow[data.Either[erased, erased]](f(s)).run)
			if err != nil {
				return nil, err
			}
			step := kind.Cast[data.Either[erased, erased]](v)
			if b, done := step.GetRight(); done {
				return b, nil
			}
			s, _ = step.GetLeft()
		}
	}}
}

func (TaskInstance) RaiseError(err error) taskK { return Fail[erased](err) }

func (TaskInstance) HandleErrorWith(fa taskK, f func(error) taskK) taskK {
	return Task[erased]{run: recoverRun(runOf(fa), func(err error) runFn { return runOf(f(err)) })}
}
