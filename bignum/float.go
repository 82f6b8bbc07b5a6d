// Package bignum provides a handful of elementary functions evaluated at
// extended precision on math/big.Float, for callers that need more mantissa
// bits than float64's fixed 53. It exists to give the Gaussian sampler in
// package sampling a Box-Muller transform that is not bound to float64
// precision when a caller asks for more.
package bignum

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Prec is a default precision, in bits, for callers that do not need to
// track precision themselves; they pass it to NewFloat explicitly.
const Prec = 128

// NewFloat returns x as a big.Float with the given precision.
func NewFloat(x float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Sqrt returns the square root of x at x's precision.
func Sqrt(x *big.Float) *big.Float {
	return bigfloat.Sqrt(x)
}

// Log returns the natural logarithm of x at x's precision.
func Log(x *big.Float) *big.Float {
	return bigfloat.Log(x)
}
