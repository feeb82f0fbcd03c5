package middleware

import "github.com/felixgeelhaar/pipeline-go/endpoint"

// Combine creates a middleware that applies both transforms in a fixed
// nesting order: first wraps the endpoint, then second wraps the result.
//
// At request time second's wrapper is the outermost layer: control enters
// it first, it invokes first's wrapper, and first's wrapper invokes the
// original endpoint. Any work a wrapper does after its inner call returns
// runs inner-to-outer, so first's post-processing completes before
// second's. Two header-appending middlewares combined as
// Combine(a, b) therefore append in the order a-then-b.
//
// Combine is associative: Combine(Combine(a, b), c) and
// Combine(a, Combine(b, c)) produce observably identical pipelines.
func Combine[E, M, O endpoint.Endpoint](first Middleware[E, M], second Middleware[M, O]) Middleware[E, O] {
	return func(ep E) O {
		return second.Transform(first.Transform(ep))
	}
}

// CombineIf combines first with second only when enabled is true.
//
// When enabled is false the result behaves exactly as first alone: second
// is never attached, not merely disabled. When true it behaves exactly as
// Combine(first, second). Both outcomes share the single concrete output
// type *endpoint.Either[M, O], so the result is usable anywhere a plain
// middleware is expected regardless of which branch was taken.
func CombineIf[E, M, O endpoint.Endpoint](first Middleware[E, M], enabled bool, second Middleware[M, O]) Middleware[E, *endpoint.Either[M, O]] {
	if !enabled {
		return Left[E, M, O](first)
	}
	return Right[E, M, O](Combine(first, second))
}

// Left wraps a middleware so its output is carried in the left variant of
// the either-branch endpoint. The branch tag is fixed at construction; the
// either wrapper forwards requests to the stored variant unchanged.
func Left[E, L, R endpoint.Endpoint](m Middleware[E, L]) Middleware[E, *endpoint.Either[L, R]] {
	return func(ep E) *endpoint.Either[L, R] {
		return endpoint.Left[L, R](m.Transform(ep))
	}
}

// Right wraps a middleware so its output is carried in the right variant
// of the either-branch endpoint.
func Right[E, L, R endpoint.Endpoint](m Middleware[E, R]) Middleware[E, *endpoint.Either[L, R]] {
	return func(ep E) *endpoint.Either[L, R] {
		return endpoint.Right[L, R](m.Transform(ep))
	}
}
