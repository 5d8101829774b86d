/*
Package elp computes the geocentric position of the Moon with the ELP2000-82B
semi-analytical lunar theory of M. Chapront-Touzé and J. Chapront.

The theory expresses the longitude, latitude and distance of the Moon as 36
series of periodic terms: the main problem (ELP1-3), the figure of the Earth
(ELP4-9), planetary perturbations (ELP10-21), tidal effects (ELP22-27), the
figure of the Moon (ELP28-30), relativity (ELP31-33) and the planetary
perturbations due to the solar eccentricity (ELP34-36). Terms whose amplitude
does not exceed a truncation threshold derived from the requested precision
are skipped.

The returned rectangular coordinates are expressed in astronomical units. The
ELP longitude and latitude are first referred to the fixed mean ecliptic of
J2000 with Laskar's precession series, and the vector is then rotated about
the x axis by the mean obliquity of the date. The result is therefore not a
J2000 equatorial (ICRF-like) frame: it is the J2000 ecliptic vector tilted by
the obliquity of the date, which differs from J2000 equatorial by the change
in obliquity since J2000.

All functions are pure: they only read immutable coefficient tables and may be
called concurrently.
*/
package elp

import "math"

const (
	// RAD is the number of arc seconds in one radian.
	RAD = 648000 / math.Pi
	// DEG converts degrees to radians.
	DEG = math.Pi / 180
	// PIS2 is a quarter turn.
	PIS2 = math.Pi / 2

	// ATH is the mean Earth-Moon distance in km used to scale distance thresholds.
	ATH = 384747.9806743165
	// A0 is the semi-major axis of the lunar orbit in km (ELP).
	A0 = 384747.9806448954
	// AM is the ratio of the mean motions of the Sun and the Moon.
	AM = 0.074801329518
	// ALPHA is the ratio of the semi-major axes of the Moon and the Sun.
	ALPHA = 0.002571881335
	// DTASM is 2α/(3m).
	DTASM = 2 * ALPHA / (3 * AM)

	// W12 is the sidereal mean motion of the Moon in radians per century.
	W12 = 1732559343.73604 / RAD
	// PRECES is the precession constant in radians per century.
	PRECES = 5029.0966 / RAD

	// Corrections of the constants for the DE200/LE200 fit.
	DELNU = (0.55604 / RAD) / W12
	DELE  = 0.01789 / RAD
	DELG  = -0.08066 / RAD
	DELNP = (-0.06424 / RAD) / W12
	DELEP = -0.12879 / RAD

	// Laskar's precession coefficients.
	P1 = 0.10180391e-4
	P2 = 0.47020439e-6
	P3 = -0.5417367e-9
	P4 = -0.2507948e-11
	P5 = 0.463486e-14
	Q1 = -0.113469002e-3
	Q2 = 0.12372674e-6
	Q3 = 0.1265417e-8
	Q4 = -0.1371808e-11
	Q5 = -0.320334e-14

	// AU is one astronomical unit in kilometers.
	AU = 149597870.691

	// J2000 is the Julian day of the J2000.0 epoch.
	J2000 = 2451545.0
	// JulianCentury is the number of days in a Julian century.
	JulianCentury = 36525.0

	// DefaultPrecision is the truncation precision used by GeocentricPosition.
	DefaultPrecision = 0.0001
	// MaxPrecision caps the precision; larger values behave as MaxPrecision.
	MaxPrecision = 0.01

	// NumSeries is the number of series of the theory.
	NumSeries = 36
)

// GeocentricPosition returns the geocentric rectangular coordinates of the Moon,
// in AU, at the provided Julian day using the default precision.
func GeocentricPosition(jd float64) (x, y, z float64) {
	return Builtin().Position(jd, DefaultPrecision)
}

// GeocentricPositionPrec is GeocentricPosition with an explicit precision.
// The precision is in radians for longitude and latitude, and scaled by ATH
// for distance. Values above MaxPrecision are capped.
func GeocentricPositionPrec(jd, precision float64) (x, y, z float64) {
	return Builtin().Position(jd, precision)
}
