package bfv

import (
	"github.com/cathieyun/bfv12/ring"
	"github.com/cathieyun/bfv12/sampling"
)

// GenerateSecretKey samples a new SecretKey of ring degree n: a ring
// element whose coefficients are drawn uniformly from {0, 1}.
func GenerateSecretKey(n int, prng sampling.PRNG) *SecretKey {
	return &SecretKey{poly: sampling.Uniform(2, n, prng)}
}

// GenPublicKey derives a PublicKey from sk under ciphertext modulus q and
// error standard deviation sigma. It samples a uniformly on [0, q) and e
// from the Gaussian error distribution, and sets
//
//	p1 = a
//	p0 = Reduce(-(a*s + e), q, N)
func (sk *SecretKey) GenPublicKey(q int64, sigma float64, prng sampling.PRNG) *PublicKey {
	n := sk.poly.Degree()
	a := sampling.Uniform(q, n, prng)
	e := sampling.Gaussian(sigma, n, prng)

	p0 := a.Mul(sk.poly).Add(e).Neg().Reduce(q, n)

	return &PublicKey{p0: p0, p1: a, q: q}
}

// GenRelinearizationKey1 derives the first relinearization key variant from
// sk under ciphertext modulus q, error standard deviation sigma, and
// decomposition base t. L = floor(log_t(q)) gadget levels are produced; the
// i-th entry satisfies
//
//	rlk0_i = Reduce(-(a_i*s + e_i) + t^i*s^2, q, N)
//	rlk1_i = a_i
func (sk *SecretKey) GenRelinearizationKey1(q int64, sigma float64, prng sampling.PRNG, t int64) *RelinearizationKey1 {
	n := sk.poly.Degree()
	l := levelCount(q, t)
	sSquared := sk.poly.Mul(sk.poly)

	rlk0 := make([]*ring.Poly, l)
	rlk1 := make([]*ring.Poly, l)

	pow := int64(1)
	for i := 0; i < l; i++ {
		a := sampling.Uniform(q, n, prng)
		e := sampling.Gaussian(sigma, n, prng)

		rlk0[i] = a.Mul(sk.poly).Add(e).Neg().Add(sSquared.MulScalar(pow)).Reduce(q, n)
		rlk1[i] = a

		pow *= t
	}

	return &RelinearizationKey1{rlk0: rlk0, rlk1: rlk1, t: t, l: l}
}

// GenRelinearizationKey2 derives the second relinearization key variant
// from sk under ciphertext modulus q, error standard deviation sigma, and
// modulus-switch scale p. It samples a uniformly on [0, p*q), e Gaussian,
// and computes
//
//	rlk0 = Reduce(-(a*s + e) + p*s^2, p*q, N)
//	rlk1 = a
func (sk *SecretKey) GenRelinearizationKey2(q int64, sigma float64, prng sampling.PRNG, p int64) *RelinearizationKey2 {
	n := sk.poly.Degree()
	pq := p * q

	a := sampling.Uniform(pq, n, prng)
	e := sampling.Gaussian(sigma, n, prng)
	sSquared := sk.poly.Mul(sk.poly)

	rlk0 := a.Mul(sk.poly).Add(e).Neg().Add(sSquared.MulScalar(p)).Reduce(pq, n)

	return &RelinearizationKey2{rlk0: rlk0, rlk1: a, p: p}
}

// levelCount returns floor(log_t(q)).
func levelCount(q, t int64) int {
	l := 0
	for v := q; v >= t; v /= t {
		l++
	}
	return l
}
