package elp

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// TimePowers holds t⁰ through t⁴, where t is measured in Julian centuries from J2000.
type TimePowers [5]float64

// NewTimePowers returns the powers of the Julian centuries since J2000 for the provided Julian day.
func NewTimePowers(jd float64) TimePowers {
	var t TimePowers
	t[0] = 1
	t[1] = (jd - J2000) / JulianCentury
	t[2] = t[1] * t[1]
	t[3] = t[2] * t[1]
	t[4] = t[3] * t[1]
	return t
}

// T returns the Julian centuries since J2000.
func (t TimePowers) T() float64 {
	return t[1]
}

// JD returns the Julian day of the provided time, treated as dynamical time.
func JD(dt time.Time) float64 {
	return julian.TimeToJD(dt.UTC())
}

// Time returns the UTC time of the provided Julian day.
func Time(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}
