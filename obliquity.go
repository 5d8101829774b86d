package elp

import "github.com/soniakeys/meeus/v3/base"

// MeanObliquity returns the mean obliquity of the ecliptic in degrees, using
// Laskar's polynomial in units of 10000 Julian years. It is valid within
// 10000 years of J2000.
func MeanObliquity(jd float64) float64 {
	return meanObliquity((jd - J2000) / (100 * JulianCentury))
}

func meanObliquity(u float64) float64 {
	return base.Horner(u, 84381.448, -4680.93, -1.55, 1999.25, -51.38, -249.67, -39.05, 7.12, 27.87, 5.79, 2.45) / 3600
}

// ObliquityCache memoises the last mean obliquity it computed. It is owned by
// its caller and must not be shared between goroutines.
type ObliquityCache struct {
	u, ε  float64
	valid bool
}

// MeanObliquity returns the mean obliquity in degrees, reusing the previous
// value when jd maps to the same argument.
func (c *ObliquityCache) MeanObliquity(jd float64) float64 {
	u := (jd - J2000) / (100 * JulianCentury)
	if c.valid && u == c.u {
		return c.ε
	}
	c.u, c.ε, c.valid = u, meanObliquity(u), true
	return c.ε
}
