package ring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func aPoly() *Poly {
	return NewPoly([]int64{-7, 0, 0, 3, -1, 6, -3, 5, 9, -5})
}

func bPoly() *Poly {
	return NewPoly([]int64{-1, -1, 0, 1, 0, -1, 1, 1, -1, -1})
}

func TestAdd(t *testing.T) {
	sum := aPoly().Add(bPoly())
	require.Equal(t, []int64{-8, -1, 0, 4, -1, 5, -2, 6, 8, -6}, sum.Coeffs)
}

func TestAddDifferentLengths(t *testing.T) {
	a := NewPoly([]int64{1, 2, 3})
	b := NewPoly([]int64{10, 20})
	sum := a.Add(b)
	require.Equal(t, []int64{11, 22, 3}, sum.Coeffs)
}

func TestSubSelfIsZero(t *testing.T) {
	a := aPoly()
	diff := a.Sub(a)
	require.Equal(t, NewZeroPoly(a.Degree()).Coeffs, diff.Coeffs)
}

func TestNegInvolution(t *testing.T) {
	a := aPoly()
	require.True(t, a.Neg().Neg().Equal(a))
}

func TestMulScalarDistributesOverAdd(t *testing.T) {
	a, b := aPoly(), bPoly()
	lhs := a.Add(b).MulScalar(5)
	rhs := a.MulScalar(5).Add(b.MulScalar(5))
	if diff := cmp.Diff(lhs.Coeffs, rhs.Coeffs); diff != "" {
		t.Fatalf("MulScalar does not distribute over Add (-lhs +rhs):\n%s", diff)
	}
}

func TestMulScalarByZero(t *testing.T) {
	a := aPoly()
	zero := a.MulScalar(0)
	require.Equal(t, NewZeroPoly(a.Degree()).Coeffs, zero.Coeffs)
}

func TestMulScalarRealOne(t *testing.T) {
	a := aPoly()
	require.True(t, a.MulScalarReal(1.0).Equal(a))
}

func TestMulConstI64(t *testing.T) {
	a := aPoly()
	require.Equal(t, []int64{-119, 0, 0, 51, -17, 102, -51, 85, 153, -85}, a.MulScalar(17).Coeffs)
}

func TestMulConstF64(t *testing.T) {
	a := aPoly()
	require.Equal(t, []int64{-26, 0, 0, 11, -4, 22, -11, 19, 33, -19}, a.MulScalarReal(3.7).Coeffs)
}

func TestMulPoly(t *testing.T) {
	a := NewPoly([]int64{4, 5, 0})
	b := NewPoly([]int64{7, 9, 0})
	got := a.Mul(b)
	require.Equal(t, 5, got.Degree())
	require.Equal(t, []int64{28, 71, 45, 0, 0}, got.Coeffs)
}

func TestMulPolyLengthAndFullConvolution(t *testing.T) {
	a, b := aPoly(), bPoly()
	got := a.Mul(b)
	require.Equal(t, a.Degree()+b.Degree()-1, got.Degree())
	require.Equal(t, []int64{
		7, 7, 0, -10, -2, 2, -7, -10, -4, 4, 6, 14, -9, -12, 16, 2, -19, -4, 5,
	}, got.Coeffs)
}

func TestMulPolyCommutativeAndAssociative(t *testing.T) {
	a, b, c := aPoly(), bPoly(), NewPoly([]int64{1, -2, 3})
	require.True(t, a.Mul(b).Equal(b.Mul(a)))
	require.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
}

func TestReduceWithFold(t *testing.T) {
	a, b := aPoly(), bPoly()
	full := a.Mul(b)

	require.Equal(t, []int64{11, 1, 2, 12}, full.Reduce(16, 4).Coeffs)
	require.Equal(t, []int64{8, 15, 15, 8, 7, 14, 9, 4}, full.Reduce(16, 8).Coeffs)
}

func TestReduceCoefficientsIntoNonnegativeRange(t *testing.T) {
	a := aPoly()
	got := a.Reduce(4, 10)
	require.Equal(t, []int64{1, 0, 0, 3, 3, 2, 1, 1, 1, 3}, got.Coeffs)
	for _, c := range got.Coeffs {
		require.GreaterOrEqual(t, c, int64(0))
		require.Less(t, c, int64(4))
	}
	require.Equal(t, 10, got.Degree())
}

func TestReduceIdempotent(t *testing.T) {
	a := aPoly()
	once := a.Reduce(16, 10)
	twice := once.Reduce(16, 10)
	require.True(t, once.Equal(twice))
}

func TestDecomposeRoundTrip(t *testing.T) {
	a := aPoly()
	digits := a.Decompose(4, 2)

	require.Len(t, digits, 4)
	expected := [][]int64{
		{-1, 0, 0, 1, -1, 0, -1, 1, 1, -1},
		{-1, 0, 0, 1, 0, 1, -1, 0, 0, 0},
		{-1, 0, 0, 0, 0, 1, 0, 1, 0, -1},
		{0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
	}
	for i, d := range digits {
		require.Equal(t, expected[i], d.Coeffs, "level %d", i)
	}

	recomposed := NewZeroPoly(a.Degree())
	pow := int64(1)
	for i := 0; i < 4; i++ {
		recomposed = recomposed.Add(digits[i].MulScalar(pow))
		pow *= 2
	}
	require.Equal(t, a.Coeffs, recomposed.Coeffs)
}

func TestDecomposeRoundTripIsGeneral(t *testing.T) {
	for _, tc := range []struct {
		l int
		t int64
	}{
		{3, 3}, {5, 4}, {2, 10},
	} {
		a := NewPoly([]int64{123, -456, 789, -1, 0, 42})
		digits := a.Decompose(tc.l, tc.t)
		recomposed := NewZeroPoly(a.Degree())
		pow := int64(1)
		for _, d := range digits {
			recomposed = recomposed.Add(d.MulScalar(pow))
			pow *= tc.t
		}
		require.Equal(t, a.Coeffs, recomposed.Coeffs, "L=%d T=%d", tc.l, tc.t)
	}
}
