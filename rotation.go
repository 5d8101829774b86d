package elp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v []float64) []float64 {
	var r mat.VecDense
	r.MulVec(m, mat.NewVecDense(len(v), v))
	return []float64{r.AtVec(0), r.AtVec(1), r.AtVec(2)}
}

// Laskar returns the rotation from the ELP ecliptic of date to the mean
// ecliptic of J2000, built from Laskar's precession series.
func Laskar(t TimePowers) *mat.Dense {
	pw := (P1 + P2*t[1] + P3*t[2] + P4*t[3] + P5*t[4]) * t[1]
	qw := (Q1 + Q2*t[1] + Q3*t[2] + Q4*t[3] + Q5*t[4]) * t[1]
	ra := 2 * math.Sqrt(1-pw*pw-qw*qw)
	pwqw := 2 * pw * qw
	pw2 := 1 - 2*pw*pw
	qw2 := 1 - 2*qw*qw
	pw *= ra
	qw *= ra
	return mat.NewDense(3, 3, []float64{
		pw2, pwqw, pw,
		pwqw, qw2, -qw,
		-pw, qw, pw2 + qw2 - 1,
	})
}

// EclipticToEquatorial returns the rotation from ecliptic to equatorial axes
// for the provided obliquity in radians.
func EclipticToEquatorial(ε float64) *mat.Dense {
	return R1(-ε)
}
