package middleware

import "github.com/felixgeelhaar/pipeline-go/endpoint"

// The ComposeN family applies a fixed-size ordered sequence of
// heterogeneous middlewares as a single middleware. Elements apply in
// declaration order, left to right: m1 transforms the base endpoint first
// (becoming the innermost wrapper), and each later element wraps the
// previous result. ComposeN(m1, ..., mN) is equivalent to folding the
// arguments through Combine in that order.

// Compose2 composes two middlewares in declaration order.
func Compose2[E, O1, O2 endpoint.Endpoint](
	m1 Middleware[E, O1],
	m2 Middleware[O1, O2],
) Middleware[E, O2] {
	return Combine(m1, m2)
}

// Compose3 composes three middlewares in declaration order.
func Compose3[E, O1, O2, O3 endpoint.Endpoint](
	m1 Middleware[E, O1],
	m2 Middleware[O1, O2],
	m3 Middleware[O2, O3],
) Middleware[E, O3] {
	return Combine(Compose2(m1, m2), m3)
}

// Compose4 composes four middlewares in declaration order.
func Compose4[E, O1, O2, O3, O4 endpoint.Endpoint](
	m1 Middleware[E, O1],
	m2 Middleware[O1, O2],
	m3 Middleware[O2, O3],
	m4 Middleware[O3, O4],
) Middleware[E, O4] {
	return Combine(Compose3(m1, m2, m3), m4)
}

// Compose5 composes five middlewares in declaration order.
func Compose5[E, O1, O2, O3, O4, O5 endpoint.Endpoint](
	m1 Middleware[E, O1],
	m2 Middleware[O1, O2],
	m3 Middleware[O2, O3],
	m4 Middleware[O3, O4],
	m5 Middleware[O4, O5],
) Middleware[E, O5] {
	return Combine(Compose4(m1, m2, m3, m4), m5)
}

// Compose6 composes six middlewares in declaration order.
func Compose6[E, O1, O2, O3, O4, O5, O6 endpoint.Endpoint](
	m1 Middleware[E, O1],
	m2 Middleware[O1, O2],
	m3 Middleware[O2, O3],
	m4 Middleware[O3, O4],
	m5 Middleware[O4, O5],
	m6 Middleware[O5, O6],
) Middleware[E, O6] {
	return Combine(Compose5(m1, m2, m3, m4, m5), m6)
}

// Compose7 composes seven middlewares in declaration order.
func Compose7[E, O1, O2, O3, O4, O5, O6, O7 endpoint.Endpoint](
	m1 Middleware[E, O1],
	m2 Middleware[O1, O2],
	m3 Middleware[O2, O3],
	m4 Middleware[O3, O4],
	m5 Middleware[O4, O5],
	m6 Middleware[O5, O6],
	m7 Middleware[O6, O7],
) Middleware[E, O7] {
	return Combine(Compose6(m1, m2, m3, m4, m5, m6), m7)
}

// Compose8 composes eight middlewares in declaration order.
func Compose8[E, O1, O2, O3, O4, O5, O6, O7, O8 endpoint.Endpoint](
	m1 Middleware[E, O1],
	m2 Middleware[O1, O2],
	m3 Middleware[O2, O3],
	m4 Middleware[O3, O4],
	m5 Middleware[O4, O5],
	m6 Middleware[O5, O6],
	m7 Middleware[O6, O7],
	m8 Middleware[O7, O8],
) Middleware[E, O8] {
	return Combine(Compose7(m1, m2, m3, m4, m5, m6, m7), m8)
}
