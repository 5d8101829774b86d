package elp

import (
	"math"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/unit"
)

// Spherical are the assembled ELP coordinates before the Laskar rotation:
// longitude and latitude referred to the inertial mean ecliptic of date and
// the departure point of J2000, and the distance in km.
type Spherical struct {
	Lon, Lat unit.Angle
	Dist     float64
}

// combine adds the series of each axis into the longitude (arc seconds),
// latitude (arc seconds) and distance (km) sums.
func combine(elp *[NumSeries]float64) (a, b, c float64) {
	for i := 0; i < NumSeries; i += 3 {
		a += elp[i]
		b += elp[i+1]
		c += elp[i+2]
	}
	return
}

// spherical turns the series sums into longitude, latitude (radians) and distance (km).
func spherical(elp *[NumSeries]float64, t *TimePowers) (lon, lat, dist float64) {
	a, b, c := combine(elp)
	lon = a/RAD + fundamental.meanLongitude(t)
	lat = b / RAD
	dist = c * A0 / ATH
	return
}

// cartesian keeps the decomposition order of the published theory.
func cartesian(lon, lat, dist float64) []float64 {
	z := dist * math.Cos(lat)
	y := z * math.Sin(lon)
	x := z * math.Cos(lon)
	z = dist * math.Sin(lat)
	return []float64{x, y, z}
}

// Spherical returns the ELP longitude, latitude and distance at the provided Julian day.
func (th *Theory) Spherical(jd, precision float64) Spherical {
	t := NewTimePowers(jd)
	elp := th.Evaluate(t, NewThresholds(precision))
	lon, lat, dist := spherical(&elp, &t)
	return Spherical{Lon: unit.Angle(unit.PMod(lon, 2*math.Pi)), Lat: unit.Angle(lat), Dist: dist}
}

// Ecliptic returns the geocentric position of the Moon in AU, referred to the
// mean ecliptic and equinox of J2000.
func (th *Theory) Ecliptic(jd, precision float64) []float64 {
	t := NewTimePowers(jd)
	elp := th.Evaluate(t, NewThresholds(precision))
	lon, lat, dist := spherical(&elp, &t)
	r := MxV33(Laskar(t), cartesian(lon, lat, dist))
	for i := range r {
		r[i] /= AU
	}
	return r
}

// Position returns the geocentric rectangular coordinates of the Moon in AU.
// The J2000 ecliptic vector is rotated by the mean obliquity of the date.
func (th *Theory) Position(jd, precision float64) (x, y, z float64) {
	ε := MeanObliquity(jd) * DEG
	r := MxV33(EclipticToEquatorial(ε), th.Ecliptic(jd, precision))
	return r[0], r[1], r[2]
}

// Equatorial returns the right ascension and declination of the position
// returned by Position, along with the distance in km. No aberration or
// nutation is applied.
func (th *Theory) Equatorial(jd, precision float64) (*coord.Equatorial, float64) {
	x, y, z := th.Position(jd, precision)
	r := math.Sqrt(x*x + y*y + z*z)
	ra := math.Atan2(y, x)
	return &coord.Equatorial{
		RA:  unit.RA(unit.PMod(ra, 2*math.Pi)),
		Dec: unit.Angle(math.Asin(z / r)),
	}, r * AU
}
