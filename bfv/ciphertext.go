package bfv

import (
	"fmt"

	"github.com/cathieyun/bfv12/ring"
)

// Ciphertext is a pair of ring elements (c0, c1), plus the ciphertext
// modulus q and plaintext modulus t it was produced under. Both components
// are reduced modulo (q, N).
type Ciphertext struct {
	c0, c1 *ring.Poly
	q, t   int64
}

// C0 returns the ciphertext's first component.
func (ct *Ciphertext) C0() *ring.Poly {
	return ct.c0
}

// C1 returns the ciphertext's second component.
func (ct *Ciphertext) C1() *ring.Poly {
	return ct.c1
}

// Q returns the ciphertext modulus.
func (ct *Ciphertext) Q() int64 {
	return ct.q
}

// T returns the plaintext modulus.
func (ct *Ciphertext) T() int64 {
	return ct.t
}

// Decrypt decrypts the ciphertext under sk, returning the recovered
// Plaintext. Let s = sk's ring element, N = its degree, and r = t/q as a
// real. It computes
//
//	raw = Reduce(c0 + c1*s, q, N)
//	out = Reduce(raw*r, t, N)
//
// where the real-scaled multiplication rounds half-away-from-zero.
func (ct *Ciphertext) Decrypt(sk *SecretKey) *Plaintext {
	n := sk.poly.Degree()
	raw := ct.c0.Add(ct.c1.Mul(sk.poly)).Reduce(ct.q, n)
	r := float64(ct.t) / float64(ct.q)
	out := raw.MulScalarReal(r).Reduce(ct.t, n)
	return &Plaintext{poly: out, t: ct.t}
}

// Add returns the componentwise sum of ct and other, reduced modulo (q, N).
// q and t carry through unchanged. The two operands must share q, t, and N;
// this is the caller's responsibility.
func (ct *Ciphertext) Add(other *Ciphertext) *Ciphertext {
	n := ct.c0.Degree()
	return &Ciphertext{
		c0: ct.c0.Add(other.c0).Reduce(ct.q, n),
		c1: ct.c1.Add(other.c1).Reduce(ct.q, n),
		q:  ct.q,
		t:  ct.t,
	}
}

// Sub returns the componentwise difference of ct and other, reduced modulo
// (q, N). q and t carry through unchanged. The two operands must share q, t,
// and N; this is the caller's responsibility.
func (ct *Ciphertext) Sub(other *Ciphertext) *Ciphertext {
	n := ct.c0.Degree()
	return &Ciphertext{
		c0: ct.c0.Sub(other.c0).Reduce(ct.q, n),
		c1: ct.c1.Sub(other.c1).Reduce(ct.q, n),
		q:  ct.q,
		t:  ct.t,
	}
}

// Neg returns the componentwise negation of ct, reduced modulo (q, N). q and
// t carry through unchanged.
func (ct *Ciphertext) Neg() *Ciphertext {
	n := ct.c0.Degree()
	return &Ciphertext{c0: ct.c0.Neg().Reduce(ct.q, n), c1: ct.c1.Neg().Reduce(ct.q, n), q: ct.q, t: ct.t}
}

// BasicMul computes the tensor-style product of ct and other, returning the
// degree-two intermediate (d0, d1, d2) whose decryption polynomial is
// d0 + d1*s + d2*s^2. It is not itself a valid ciphertext: relinearization
// collapses d2 back into a standard two-component ciphertext. Let
// r = t/q; then
//
//	d0 = Reduce(c0*c0' * r, q, N)
//	d1 = Reduce((c0*c1' + c1*c0') * r, q, N)
//	d2 = Reduce(c1*c1' * r, q, N)
//
// BasicMul panics if the four ring-element operands (ct.c0, ct.c1,
// other.c0, other.c1) do not all share the same length.
func (ct *Ciphertext) BasicMul(other *Ciphertext) (d0, d1, d2 *ring.Poly) {
	n := ct.c0.Degree()
	if ct.c1.Degree() != n || other.c0.Degree() != n || other.c1.Degree() != n {
		panic(fmt.Errorf("bfv: BasicMul operand length mismatch: %d, %d, %d, %d",
			ct.c0.Degree(), ct.c1.Degree(), other.c0.Degree(), other.c1.Degree()))
	}

	r := float64(ct.t) / float64(ct.q)

	d0 = ct.c0.Mul(other.c0).MulScalarReal(r).Reduce(ct.q, n)
	d1 = ct.c0.Mul(other.c1).Add(ct.c1.Mul(other.c0)).MulScalarReal(r).Reduce(ct.q, n)
	d2 = ct.c1.Mul(other.c1).MulScalarReal(r).Reduce(ct.q, n)

	return d0, d1, d2
}

// MulRelin1 homomorphically multiplies ct by other and relinearizes the
// result with rlk, returning a standard two-component ciphertext. It
// computes (d0, d1, d2) = BasicMul(other), decomposes d2 into rlk.L()
// base-rlk.T() digits, and accumulates
//
//	c2c0 = sum_i rlk0[i] * dec[i]
//	c2c1 = sum_i rlk1[i] * dec[i]
//
// without intermediate reduction; the final Reduce folds the accumulated
// sums together with (d0, d1) in one step.
func (ct *Ciphertext) MulRelin1(other *Ciphertext, rlk *RelinearizationKey1) *Ciphertext {
	n := ct.c0.Degree()
	d0, d1, d2 := ct.BasicMul(other)

	decomposed := d2.Decompose(rlk.l, rlk.t)

	c2c0 := ring.NewZeroPoly(n)
	c2c1 := ring.NewZeroPoly(n)
	for i, dec := range decomposed {
		c2c0 = c2c0.Add(rlk.rlk0[i].Mul(dec))
		c2c1 = c2c1.Add(rlk.rlk1[i].Mul(dec))
	}

	return &Ciphertext{
		c0: d0.Add(c2c0).Reduce(ct.q, n),
		c1: d1.Add(c2c1).Reduce(ct.q, n),
		q:  ct.q,
		t:  ct.t,
	}
}

// MulRelin2 homomorphically multiplies ct by other and relinearizes the
// result with rlk, returning a standard two-component ciphertext. It
// computes (d0, d1, d2) = BasicMul(other) and, with pf = rlk.P() as a real,
//
//	c2c0 = Reduce((d2*rlk0) * (1/pf), q, N)
//	c2c1 = Reduce((d2*rlk1) * (1/pf), q, N)
//
// The division by pf implements modulus switching from P*Q back to Q, with
// half-away-from-zero rounding.
func (ct *Ciphertext) MulRelin2(other *Ciphertext, rlk *RelinearizationKey2) *Ciphertext {
	n := ct.c0.Degree()
	d0, d1, d2 := ct.BasicMul(other)

	pf := float64(rlk.p)
	c2c0 := d2.Mul(rlk.rlk0).DivScalarReal(pf).Reduce(ct.q, n)
	c2c1 := d2.Mul(rlk.rlk1).DivScalarReal(pf).Reduce(ct.q, n)

	return &Ciphertext{
		c0: d0.Add(c2c0).Reduce(ct.q, n),
		c1: d1.Add(c2c1).Reduce(ct.q, n),
		q:  ct.q,
		t:  ct.t,
	}
}
