package instances

import (
	"github.com/on-the-ground/traverse_ive_go/data"
	"github.com/on-the-ground/traverse_ive_go/kernel"
	"github.com/on-the-ground/traverse_ive_go/parallel"
)

// EitherParallel bridges Either, which stops at the first Left, and
// Validated, which combines every error with sg.
func EitherParallel[E any](sg kernel.Semigroup[E]) parallel.Bridge[data.EitherK[E], data.ValidatedK[E]] {
	return parallel.New[data.EitherK[E], data.ValidatedK[E]](
		Either[E](),
		Validated(sg),
		func(fa validatedK[E]) eitherK[E] {
			return narrowValidated[E](fa).ToEither()
		},
		func(ma eitherK[E]) validatedK[E] {
			return data.FromEither(narrowEither[E](ma))
		},
	)
}

// OptionParallel is the identity bridge of Option.
func OptionParallel() parallel.Bridge[data.OptionK, data.OptionK] {
	return parallel.Identity[data.OptionK](Option)
}

// AccumulateErrors is a semigroup over error slices for use with
// EitherParallel and Validated.
func AccumulateErrors() kernel.Semigroup[[]error] {
	return kernel.SliceConcat[error]()
}
