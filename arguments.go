package elp

import "math"

// arguments holds the polynomial coefficients of the fundamental arguments, in radians.
type arguments struct {
	w1   [5]float64    // mean longitude of the Moon
	del  [4][5]float64 // Delaunay: D, l', l, F
	zeta [2]float64    // mean longitude of the Moon referred to the equinox of date
	p    [8][2]float64 // mean longitudes of Mercury through Neptune
}

// fundamental is computed once and only ever read.
var fundamental = newArguments()

func dms(d, m, s float64) float64 {
	return (d + m/60 + s/3600) * DEG
}

func newArguments() *arguments {
	a := &arguments{}

	var w2, w3, eart, peri [5]float64
	a.w1 = [5]float64{dms(218, 18, 59.95571), 1732559343.73604 / RAD, -5.8883 / RAD, 0.6604e-2 / RAD, -0.3169e-4 / RAD}
	w2 = [5]float64{dms(83, 21, 11.67475), 14643420.2632 / RAD, -38.2776 / RAD, -0.45047e-1 / RAD, 0.21301e-3 / RAD}
	w3 = [5]float64{dms(125, 2, 40.39816), -6967919.3622 / RAD, 6.3622 / RAD, 0.7625e-2 / RAD, -0.3586e-4 / RAD}
	eart = [5]float64{dms(100, 27, 59.22059), 129597742.2758 / RAD, -0.0202 / RAD, 0.9e-5 / RAD, 0.15e-6 / RAD}
	peri = [5]float64{dms(102, 56, 14.42753), 1161.2283 / RAD, 0.5327 / RAD, -0.138e-3 / RAD, 0}

	for i := 0; i < 5; i++ {
		a.del[0][i] = a.w1[i] - eart[i]
		a.del[3][i] = a.w1[i] - w3[i]
		a.del[2][i] = a.w1[i] - w2[i]
		a.del[1][i] = eart[i] - peri[i]
	}
	a.del[0][0] += math.Pi

	a.zeta = [2]float64{a.w1[0], a.w1[1] + PRECES}

	a.p = [8][2]float64{
		{dms(252, 15, 3.25986), 538101628.68898 / RAD},
		{dms(181, 58, 47.28305), 210664136.43355 / RAD},
		{eart[0], eart[1]},
		{dms(355, 25, 59.78866), 68905077.59284 / RAD},
		{dms(34, 21, 5.34212), 10925660.42861 / RAD},
		{dms(50, 4, 38.89694), 4399609.65932 / RAD},
		{dms(314, 3, 18.01841), 1542481.19393 / RAD},
		{dms(304, 20, 55.19575), 786550.32074 / RAD},
	}
	return a
}

// meanLongitude evaluates the W1 polynomial, in radians.
func (a *arguments) meanLongitude(t *TimePowers) float64 {
	return a.w1[0] + a.w1[1]*t[1] + a.w1[2]*t[2] + a.w1[3]*t[3] + a.w1[4]*t[4]
}

// Delaunay returns the four Delaunay arguments D, l', l and F in radians at
// the provided time, without reduction to [0, 2π).
func Delaunay(t TimePowers) (d [4]float64) {
	for i := range d {
		for k := 0; k < 5; k++ {
			d[i] += fundamental.del[i][k] * t[k]
		}
	}
	return
}
