// Package typeclass defines the capabilities a container or effect can offer:
// Functor, Apply, Applicative, FlatMap, Monad, ApplicativeError, Foldable,
// Traverse, TraverseFilter, Bitraverse, Alternative, CoflatMap and Align.
//
// # Encoding
//
// A capability is an interface over a brand F (see package kind). Go methods
// cannot declare their own type parameters, so capability methods take and
// return type-erased values; the free functions of this package restore the
// types for callers:
//
//	xs := lazylist.Of(1, 2, 3)
//	res := typeclass.TraverseA[lazylist.K, data.OptionK](
//		lazylist.Instance, instances.Option, xs,
//		func(n int) kind.Of[data.OptionK, int] { return data.Some(n * 2) },
//	)
//	// data.NarrowOption(res) == Some(Seq(2, 4, 6))
//
// Capability values are passed explicitly. Nothing is resolved implicitly.
//
// Methods that would need a type parameter of their own, such as Traverse
// into an arbitrary applicative G, take an Applicative[kind.Erased] built by
// [ForgetApplicative]. The free functions do this wrapping.
//
// # Laws
//
// Implementations are expected to satisfy the usual laws:
//
//   - functor identity:   Map(fa, id) ~ fa
//   - left identity:      Bind(Pure(a), f) ~ f(a)
//   - right identity:     Bind(fa, Pure) ~ fa
//   - associativity:      Bind(Bind(fa, f), g) ~ Bind(fa, func(a) Bind(f(a), g))
//   - tailRecM:           TailRecM agrees with the naive recursion through Bind
//   - traverse identity:  TraverseA with an identity applicative ~ Map
package typeclass
