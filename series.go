package elp

import (
	"fmt"
	"math"
)

// Axis is the coordinate a series contributes to.
type Axis uint8

const (
	// Longitude series are in arc seconds.
	Longitude Axis = iota
	// Latitude series are in arc seconds.
	Latitude
	// Distance series are in kilometers.
	Distance
)

func (a Axis) String() string {
	switch a {
	case Longitude:
		return "longitude"
	case Latitude:
		return "latitude"
	case Distance:
		return "distance"
	default:
		panic(fmt.Errorf("unknown axis %d", a))
	}
}

// Family is the physical origin of a series, which determines the shape of its rows.
type Family uint8

const (
	// MainProblem series (ELP1-3) use MainTerm rows.
	MainProblem Family = iota
	// EarthFigure series (ELP4-9) use FigureTerm rows.
	EarthFigure
	// PlanetaryTable1 series (ELP10-15) use PlanetaryTerm rows on Mercury..Neptune, D, l and F.
	PlanetaryTable1
	// PlanetaryTable2 series (ELP16-21) use PlanetaryTerm rows on Mercury..Uranus, D, l', l and F.
	PlanetaryTable2
	// Tidal series (ELP22-27) use FigureTerm rows.
	Tidal
	// MoonFigure series (ELP28-30) use FigureTerm rows.
	MoonFigure
	// Relativistic series (ELP31-33) use FigureTerm rows.
	Relativistic
	// SolarEccentricity series (ELP34-36) use FigureTerm rows.
	SolarEccentricity
)

func (f Family) String() string {
	switch f {
	case MainProblem:
		return "main problem"
	case EarthFigure:
		return "earth figure"
	case PlanetaryTable1:
		return "planetary table 1"
	case PlanetaryTable2:
		return "planetary table 2"
	case Tidal:
		return "tidal"
	case MoonFigure:
		return "moon figure"
	case Relativistic:
		return "relativistic"
	case SolarEccentricity:
		return "solar eccentricity"
	default:
		panic(fmt.Errorf("unknown family %d", f))
	}
}

// Scale is the power of t multiplying every amplitude of a series.
type Scale uint8

const (
	// Unscaled amplitudes are used as is.
	Unscaled Scale = iota
	// PerT amplitudes are multiplied by t.
	PerT
	// PerT2 amplitudes are multiplied by t².
	PerT2
)

// Layout returns the family, axis and time scale of the nth series (1 to 36).
func Layout(n int) (Family, Axis, Scale) {
	if n < 1 || n > NumSeries {
		panic(fmt.Errorf("no ELP series %d", n))
	}
	axis := Axis((n - 1) % 3)
	switch {
	case n <= 3:
		return MainProblem, axis, Unscaled
	case n <= 6:
		return EarthFigure, axis, Unscaled
	case n <= 9:
		return EarthFigure, axis, PerT
	case n <= 12:
		return PlanetaryTable1, axis, Unscaled
	case n <= 15:
		return PlanetaryTable1, axis, PerT
	case n <= 18:
		return PlanetaryTable2, axis, Unscaled
	case n <= 21:
		return PlanetaryTable2, axis, PerT
	case n <= 24:
		return Tidal, axis, Unscaled
	case n <= 27:
		return Tidal, axis, PerT
	case n <= 30:
		return MoonFigure, axis, Unscaled
	case n <= 33:
		return Relativistic, axis, Unscaled
	default:
		return SolarEccentricity, axis, PerT2
	}
}

// MainTerm is a row of the main problem: multipliers of the four Delaunay
// arguments, the amplitude A and the derivatives B1..B6 of A with respect to
// the constants of the theory. B6 is carried by the published files but unused.
type MainTerm struct {
	ILU [4]int
	A   float64
	B   [6]float64
}

// FigureTerm is a row of the Earth figure, tidal, Moon figure, relativistic
// and solar eccentricity series: a multiplier of ζ, multipliers of the
// Delaunay arguments, a phase in degrees, the amplitude and the period in days.
type FigureTerm struct {
	IZ     int
	ILU    [4]int
	Phase  float64
	A      float64
	Period float64
}

// PlanetaryTerm is a row of the planetary perturbations: eight planetary
// multipliers followed by three Delaunay multipliers (table 1) or seven
// planetary multipliers followed by four Delaunay multipliers (table 2).
type PlanetaryTerm struct {
	IPla   [11]int
	Phase  float64
	A      float64
	Period float64
}

// Series is one of the 36 tables of the theory. Only the slice matching the
// family of the series is used.
type Series struct {
	Number    int
	Main      []MainTerm
	Figure    []FigureTerm
	Planetary []PlanetaryTerm
}

// Len returns the number of rows in the series.
func (s *Series) Len() int {
	return len(s.Main) + len(s.Figure) + len(s.Planetary)
}

// amplitudes returns the literal amplitudes of the rows matching the family of the series.
func (s *Series) amplitudes() []float64 {
	family, _, _ := Layout(s.Number)
	var a []float64
	switch family {
	case MainProblem:
		for _, r := range s.Main {
			a = append(a, r.A)
		}
	case PlanetaryTable1, PlanetaryTable2:
		for _, r := range s.Planetary {
			a = append(a, r.A)
		}
	default:
		for _, r := range s.Figure {
			a = append(a, r.A)
		}
	}
	return a
}

// Count returns how many rows pass the truncation threshold for this series.
func (s *Series) Count(pre Thresholds) int {
	_, axis, _ := Layout(s.Number)
	n := 0
	for _, a := range s.amplitudes() {
		if math.Abs(a) > pre[axis] {
			n++
		}
	}
	return n
}

// Sum evaluates the series at the provided time, skipping every row whose
// amplitude does not exceed the threshold of the series' axis.
func (s *Series) Sum(t *TimePowers, pre Thresholds) float64 {
	family, axis, scale := Layout(s.Number)
	limit := pre[axis]
	switch family {
	case MainProblem:
		return sumMain(s.Main, t, limit, axis == Distance)
	case PlanetaryTable1:
		return sumPlanetary1(s.Planetary, t, limit, scale)
	case PlanetaryTable2:
		return sumPlanetary2(s.Planetary, t, limit, scale)
	default:
		return sumFigure(s.Figure, t, limit, scale)
	}
}

// scaled multiplies the amplitude by the power of t of the series.
func scaled(a float64, t *TimePowers, scale Scale) float64 {
	switch scale {
	case PerT:
		return a * t[1]
	case PerT2:
		return a * t[2]
	default:
		return a
	}
}

// sumMain evaluates a main problem series. The amplitudes are corrected for
// the DE200/LE200 constants and the full quartic Delaunay polynomials are used.
// Distance rows are cosine terms.
func sumMain(rows []MainTerm, t *TimePowers, limit float64, cosine bool) float64 {
	del := &fundamental.del
	var sum float64
	for j := range rows {
		r := &rows[j]
		if math.Abs(r.A) <= limit {
			continue
		}
		tgv := r.B[0] + DTASM*r.B[4]
		x := r.A + tgv*(DELNP-AM*DELNU) + r.B[1]*DELG + r.B[2]*DELE + r.B[3]*DELEP
		var y float64
		for k := 0; k < 5; k++ {
			for i := 0; i < 4; i++ {
				y += float64(r.ILU[i]) * del[i][k] * t[k]
			}
		}
		if cosine {
			y += PIS2
		}
		sum += x * math.Sin(y)
	}
	return sum
}

// sumFigure evaluates the series built on ζ and the linear Delaunay arguments.
func sumFigure(rows []FigureTerm, t *TimePowers, limit float64, scale Scale) float64 {
	del := &fundamental.del
	zeta := &fundamental.zeta
	var sum float64
	for j := range rows {
		r := &rows[j]
		if math.Abs(r.A) <= limit {
			continue
		}
		y := r.Phase * DEG
		for k := 0; k < 2; k++ {
			y += float64(r.IZ) * zeta[k] * t[k]
			for i := 0; i < 4; i++ {
				y += float64(r.ILU[i]) * del[i][k] * t[k]
			}
		}
		sum += scaled(r.A, t, scale) * math.Sin(y)
	}
	return sum
}

// sumPlanetary1 evaluates table 1: Mercury through Neptune, then D, l and F.
func sumPlanetary1(rows []PlanetaryTerm, t *TimePowers, limit float64, scale Scale) float64 {
	del := &fundamental.del
	p := &fundamental.p
	var sum float64
	for j := range rows {
		r := &rows[j]
		if math.Abs(r.A) <= limit {
			continue
		}
		y := r.Phase * DEG
		for k := 0; k < 2; k++ {
			y += (float64(r.IPla[8])*del[0][k] + float64(r.IPla[9])*del[2][k] + float64(r.IPla[10])*del[3][k]) * t[k]
			for i := 0; i < 8; i++ {
				y += float64(r.IPla[i]) * p[i][k] * t[k]
			}
		}
		sum += scaled(r.A, t, scale) * math.Sin(y)
	}
	return sum
}

// sumPlanetary2 evaluates table 2: Mercury through Uranus, then D, l', l and F.
func sumPlanetary2(rows []PlanetaryTerm, t *TimePowers, limit float64, scale Scale) float64 {
	del := &fundamental.del
	p := &fundamental.p
	var sum float64
	for j := range rows {
		r := &rows[j]
		if math.Abs(r.A) <= limit {
			continue
		}
		y := r.Phase * DEG
		for k := 0; k < 2; k++ {
			for i := 0; i < 4; i++ {
				y += float64(r.IPla[i+7]) * del[i][k] * t[k]
			}
			for i := 0; i < 7; i++ {
				y += float64(r.IPla[i]) * p[i][k] * t[k]
			}
		}
		sum += scaled(r.A, t, scale) * math.Sin(y)
	}
	return sum
}
