// Package bfv implements the BFV12 somewhat-homomorphic scheme: key
// generation, encryption, decryption, and homomorphic addition,
// subtraction, negation, and multiplication (with two relinearization
// variants) of ciphertexts over the ring Z[X]/(X^N+1).
package bfv

// Parameters represents an immutable parameter set for the BFV scheme: the
// ring degree N, the ciphertext modulus Q, the plaintext modulus T, and the
// standard deviation Sigma of the error distribution. Its fields are
// private; construct one with NewParameters.
type Parameters struct {
	n     int
	q     int64
	t     int64
	sigma float64
}

// NewParameters returns a new Parameters set. It does not itself validate
// that (n, q, t, sigma) yield correct decryption with overwhelming
// probability — that is a property of parameter choice, not a
// precondition this constructor enforces.
func NewParameters(n int, q, t int64, sigma float64) Parameters {
	return Parameters{n: n, q: q, t: t, sigma: sigma}
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.n
}

// Q returns the ciphertext modulus.
func (p Parameters) Q() int64 {
	return p.q
}

// T returns the plaintext modulus.
func (p Parameters) T() int64 {
	return p.t
}

// Sigma returns the standard deviation of the error distribution.
func (p Parameters) Sigma() float64 {
	return p.sigma
}

// Delta returns floor(Q/T), the scaling factor embedding plaintext
// coefficients into the ciphertext space.
func (p Parameters) Delta() int64 {
	return p.q / p.t
}
