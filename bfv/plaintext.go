package bfv

import (
	"fmt"

	"github.com/cathieyun/bfv12/ring"
	"github.com/cathieyun/bfv12/sampling"
)

// Plaintext is a ring element of length N together with the plaintext
// modulus t. Plaintexts from RandomPlaintext and Decrypt have coefficients
// in [0, t); NewPlaintext stores its values as given, without reducing them
// modulo t.
type Plaintext struct {
	poly *ring.Poly
	t    int64
}

// NewPlaintext wraps values as a Plaintext under plaintext modulus t. It
// panics if t <= 1.
func NewPlaintext(values []int64, t int64) *Plaintext {
	if t <= 1 {
		panic(fmt.Errorf("bfv: plaintext modulus must be > 1, got %d", t))
	}
	return &Plaintext{poly: ring.NewPoly(values), t: t}
}

// RandomPlaintext draws a new Plaintext of ring degree n with coefficients
// uniform on [0, t).
func RandomPlaintext(n int, t int64, prng sampling.PRNG) *Plaintext {
	if t <= 1 {
		panic(fmt.Errorf("bfv: plaintext modulus must be > 1, got %d", t))
	}
	return &Plaintext{poly: sampling.Uniform(t, n, prng), t: t}
}

// Poly returns the plaintext's underlying ring element.
func (pt *Plaintext) Poly() *ring.Poly {
	return pt.poly
}

// T returns the plaintext modulus.
func (pt *Plaintext) T() int64 {
	return pt.t
}

// Encrypt encrypts the plaintext against pub using error standard
// deviation sigma, returning a fresh Ciphertext. Let q = pub.Q(),
// N = the plaintext's ring degree, m the plaintext's ring element, and
// Delta = floor(q/t). It samples u uniformly from {0, 1} and e1, e2 from
// the Gaussian error distribution, and computes
//
//	c0 = Reduce(p0*u + e1 + m*Delta, q, N)
//	c1 = Reduce(p1*u + e2, q, N)
//
// The plaintext and public key must share the same ring degree; this
// precondition is the caller's responsibility.
func (pt *Plaintext) Encrypt(pub *PublicKey, sigma float64, prng sampling.PRNG) *Ciphertext {
	q := pub.q
	n := pt.poly.Degree()
	delta := q / pt.t

	u := sampling.Uniform(2, n, prng)
	e1 := sampling.Gaussian(sigma, n, prng)
	e2 := sampling.Gaussian(sigma, n, prng)

	c0 := pub.p0.Mul(u).Add(e1).Add(pt.poly.MulScalar(delta)).Reduce(q, n)
	c1 := pub.p1.Mul(u).Add(e2).Reduce(q, n)

	return &Ciphertext{c0: c0, c1: c1, q: q, t: pt.t}
}
