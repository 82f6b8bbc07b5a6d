package sampling

import (
	"math"
	"math/big"

	"github.com/cathieyun/bfv12/bignum"
	"github.com/cathieyun/bfv12/ring"
)

// Uniform draws n coefficients independently and uniformly from the
// integers in [0, bound) and returns them as a ring.Poly of length n. With
// bound = 2 this samples the secret-key domain {0, 1}.
func Uniform(bound int64, n int, prng PRNG) *ring.Poly {
	if bound <= 0 {
		return ring.NewZeroPoly(n)
	}
	mask := maskFor(bound)
	coeffs := make([]int64, n)
	for i := 0; i < n; i++ {
		coeffs[i] = rejectionSample(bound, mask, prng)
	}
	return ring.NewPoly(coeffs)
}

// Gaussian draws n coefficients independently from a continuous
// Normal(0, stddev) distribution, each converted to an integer by taking
// the absolute value and truncating toward zero, and returns them as a
// ring.Poly of length n. Samples are therefore always nonnegative: this is
// the simplified error distribution the scheme decrypts correctly under,
// not a centered representation.
func Gaussian(stddev float64, n int, prng PRNG) *ring.Poly {
	coeffs := make([]int64, n)
	for i := 0; i < n; i++ {
		coeffs[i] = int64(math.Abs(normalSample(stddev, prng)))
	}
	return ring.NewPoly(coeffs)
}

// rejectionSample draws a uniform integer in [0, bound) by repeatedly
// masking a random uint64 down to mask's bit width and rejecting draws that
// fall outside [0, bound). mask must be of the form 2^k-1 with 2^k >= bound.
func rejectionSample(bound int64, mask uint64, prng PRNG) int64 {
	for {
		v := readUint64(prng) & mask
		if int64(v) < bound {
			return int64(v)
		}
	}
}

// maskFor returns the smallest mask of the form 2^k-1 with 2^k >= bound.
func maskFor(bound int64) uint64 {
	mask := uint64(1)
	for mask < uint64(bound)-1 {
		mask = mask<<1 | 1
	}
	return mask
}

// normalSample draws one sample from Normal(0, stddev) using the
// Box-Muller transform, evaluating log and sqrt at extended precision via
// package bignum so the tail of the transform isn't bound to float64's
// fixed mantissa.
func normalSample(stddev float64, prng PRNG) float64 {
	u1 := readUnitFloat(prng)
	if u1 == 0 {
		u1 = math.SmallestNonzeroFloat64
	}
	u2 := readUnitFloat(prng)

	logU1 := bignum.Log(bignum.NewFloat(u1, bignum.Prec))
	radicand := new(big.Float).SetPrec(bignum.Prec).Mul(big.NewFloat(-2), logU1)
	radius, _ := bignum.Sqrt(radicand).Float64()

	theta := 2 * math.Pi * u2
	return radius * math.Cos(theta) * stddev
}
