// Package ring implements arithmetic in Z[X] and its reduction into the
// cyclotomic ring Z_q[X]/(X^N+1) used throughout the bfv package. It is the
// single arithmetic layer: every higher package composes polynomials
// through this interface and never inspects coefficients directly.
package ring

import "github.com/google/go-cmp/cmp"

// Poly represents an element of Z[X] as an ordered sequence of integer
// coefficients indexed by degree: Coeffs[i] is the coefficient of X^i. The
// length of Coeffs is the polynomial's degree parameter and is significant
// in its own right — it is not necessarily the true algebraic degree, since
// leading zero coefficients are permitted.
type Poly struct {
	Coeffs []int64
}

// NewPoly wraps values as a Poly. The length of values is preserved as-is.
func NewPoly(values []int64) *Poly {
	coeffs := make([]int64, len(values))
	copy(coeffs, values)
	return &Poly{Coeffs: coeffs}
}

// NewZeroPoly returns the zero polynomial of the given length.
func NewZeroPoly(n int) *Poly {
	return &Poly{Coeffs: make([]int64, n)}
}

// Degree returns the stored length of the polynomial. This is the length of
// the coefficient sequence, not the true algebraic degree.
func (p *Poly) Degree() int {
	return len(p.Coeffs)
}

// CopyNew returns an independent copy of p.
func (p *Poly) CopyNew() *Poly {
	coeffs := make([]int64, len(p.Coeffs))
	copy(coeffs, p.Coeffs)
	return &Poly{Coeffs: coeffs}
}

// Equal reports whether p and other hold identical coefficient sequences.
// Lengths must match exactly; this is strict equality, not congruence under
// a modulus.
func (p *Poly) Equal(other *Poly) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return cmp.Equal(p.Coeffs, other.Coeffs)
}

// Add returns p + other, elementwise. Missing positions in the shorter
// operand are treated as zero; the result's length is the maximum of the
// two operand lengths.
func (p *Poly) Add(other *Poly) *Poly {
	n := max(len(p.Coeffs), len(other.Coeffs))
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = at(p, i) + at(other, i)
	}
	return &Poly{Coeffs: out}
}

// Sub returns p - other, elementwise, with the same length rule as Add.
func (p *Poly) Sub(other *Poly) *Poly {
	n := max(len(p.Coeffs), len(other.Coeffs))
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = at(p, i) - at(other, i)
	}
	return &Poly{Coeffs: out}
}

// Neg returns the elementwise sign flip of p.
func (p *Poly) Neg() *Poly {
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = -c
	}
	return &Poly{Coeffs: out}
}

// MulScalar returns p with every coefficient multiplied by the integer k.
// Length is unchanged.
func (p *Poly) MulScalar(k int64) *Poly {
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = c * k
	}
	return &Poly{Coeffs: out}
}

// MulScalarReal returns p with every coefficient multiplied by the
// real number r, rounded to the nearest integer with ties away from zero
// (half-away-from-zero rounding). Length is unchanged. This is the scaling
// primitive used for the t/q and 1/p factors in decryption and
// multiplication.
func (p *Poly) MulScalarReal(r float64) *Poly {
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = roundHalfAwayFromZero(float64(c) * r)
	}
	return &Poly{Coeffs: out}
}

// DivScalarReal returns p divided by the real number r, implemented as
// MulScalarReal(1/r) so the same rounding rule applies.
func (p *Poly) DivScalarReal(r float64) *Poly {
	return p.MulScalarReal(1 / r)
}

// Mul returns the dense schoolbook convolution of p and other in Z[X]. The
// result has length len(p.Coeffs)+len(other.Coeffs)-1. No modular reduction
// of any kind is applied; callers reduce explicitly with Reduce.
func (p *Poly) Mul(other *Poly) *Poly {
	if len(p.Coeffs) == 0 || len(other.Coeffs) == 0 {
		return &Poly{}
	}
	out := make([]int64, len(p.Coeffs)+len(other.Coeffs)-1)
	for i, a := range p.Coeffs {
		if a == 0 {
			continue
		}
		for j, b := range other.Coeffs {
			out[i+j] += a * b
		}
	}
	return &Poly{Coeffs: out}
}

// Reduce folds p modulo the cyclotomic polynomial X^N+1 and then reduces
// every coefficient modulo q into [0, q). The fold is the standard
// anticyclic reduction: for the coefficient at input index i, let
// r = i mod 2N; if r < N it is added into output index r, otherwise it is
// subtracted from output index r-N. The returned polynomial always has
// length exactly N.
func (p *Poly) Reduce(q int64, n int) *Poly {
	folded := make([]int64, n)
	twoN := 2 * n
	for i, c := range p.Coeffs {
		if c == 0 {
			continue
		}
		r := i % twoN
		if r < n {
			folded[r] += c
		} else {
			folded[r-n] -= c
		}
	}
	for i, c := range folded {
		folded[i] = ((c % q) + q) % q
	}
	return &Poly{Coeffs: folded}
}

// Decompose produces L polynomials dec[0..L-1], each the same length as p,
// such that p equals the sum over i of T^i * dec[i] exactly, as elements of
// Z[X] with no modular reduction. Digits are extracted from the most
// significant level down to level 0 by truncating division toward zero
// (floor for nonnegative remainders, ceiling for negative ones); each
// digit's contribution is subtracted from the running remainder before the
// next, lower level is extracted. The returned slice is ordered from level
// 0 to level L-1.
func (p *Poly) Decompose(l int, t int64) []*Poly {
	n := len(p.Coeffs)
	digits := make([]*Poly, l)
	for i := range digits {
		digits[i] = NewZeroPoly(n)
	}

	remainder := make([]int64, n)
	copy(remainder, p.Coeffs)

	pow := int64(1)
	for i := 1; i < l; i++ {
		pow *= t
	}

	for level := l - 1; level >= 0; level-- {
		digit := digits[level].Coeffs
		for i := 0; i < n; i++ {
			digit[i] = truncDiv(remainder[i], pow)
			remainder[i] -= digit[i] * pow
		}
		if level > 0 {
			pow /= t
		}
	}

	return digits
}

// at returns the coefficient at index i of p, or 0 if i is out of range.
func at(p *Poly, i int) int64 {
	if i < len(p.Coeffs) {
		return p.Coeffs[i]
	}
	return 0
}

// truncDiv performs truncating integer division toward zero: floor for
// nonnegative a, ceiling for negative a.
func truncDiv(a, b int64) int64 {
	return a / b
}

// roundHalfAwayFromZero rounds x to the nearest integer, breaking ties by
// moving away from zero.
func roundHalfAwayFromZero(x float64) int64 {
	if x >= 0 {
		return int64(x + 0.5)
	}
	return -int64(-x + 0.5)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
