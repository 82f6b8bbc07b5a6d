package bfv

import "github.com/cathieyun/bfv12/ring"

// SecretKey is a structure that stores the secret key: a ring element whose
// coefficients are drawn uniformly from {0, 1}, matching a uniform sampler
// with bound 2.
type SecretKey struct {
	poly *ring.Poly
}

// Poly returns the secret key's underlying ring element. Callers must treat
// it as read-only: SecretKey is an immutable value shared across
// encryptions once constructed.
func (sk *SecretKey) Poly() *ring.Poly {
	return sk.poly
}

// PublicKey is a structure that stores the masked LWE-style public key pair
// (p0, p1), both reduced modulo (Q, N), together with the ciphertext
// modulus Q they were generated under.
type PublicKey struct {
	p0, p1 *ring.Poly
	q      int64
}

// P0 returns the public key's first component.
func (pk *PublicKey) P0() *ring.Poly {
	return pk.p0
}

// P1 returns the public key's second component.
func (pk *PublicKey) P1() *ring.Poly {
	return pk.p1
}

// Q returns the ciphertext modulus the public key was generated under.
func (pk *PublicKey) Q() int64 {
	return pk.q
}

// RelinearizationKey1 is the first relinearization key variant: a base-T
// gadget decomposition of L = floor(log_T(Q)) (rlk0, rlk1) pairs, each
// reduced modulo (Q, N). Used by Ciphertext.MulRelin1.
type RelinearizationKey1 struct {
	rlk0, rlk1 []*ring.Poly
	t          int64
	l          int
}

// T returns the decomposition base the key was generated with.
func (rlk *RelinearizationKey1) T() int64 {
	return rlk.t
}

// L returns the level count floor(log_T(Q)) the key was generated with.
func (rlk *RelinearizationKey1) L() int {
	return rlk.l
}

// RelinearizationKey2 is the second relinearization key variant: a single
// (rlk0, rlk1) pair reduced modulo (P*Q, N), where P is an integer scale
// enlarging the modulus during key encoding. Used by Ciphertext.MulRelin2.
type RelinearizationKey2 struct {
	rlk0, rlk1 *ring.Poly
	p          int64
}

// P returns the modulus-switch scale the key was generated with.
func (rlk *RelinearizationKey2) P() int64 {
	return rlk.p
}
