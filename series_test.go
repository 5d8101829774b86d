package elp

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		n      int
		family Family
		axis   Axis
		scale  Scale
	}{
		{1, MainProblem, Longitude, Unscaled},
		{3, MainProblem, Distance, Unscaled},
		{5, EarthFigure, Latitude, Unscaled},
		{7, EarthFigure, Longitude, PerT},
		{12, PlanetaryTable1, Distance, Unscaled},
		{13, PlanetaryTable1, Longitude, PerT},
		{16, PlanetaryTable2, Longitude, Unscaled},
		{21, PlanetaryTable2, Distance, PerT},
		{22, Tidal, Longitude, Unscaled},
		{26, Tidal, Latitude, PerT},
		{29, MoonFigure, Latitude, Unscaled},
		{33, Relativistic, Distance, Unscaled},
		{34, SolarEccentricity, Longitude, PerT2},
		{36, SolarEccentricity, Distance, PerT2},
	}
	for _, tt := range tests {
		family, axis, scale := Layout(tt.n)
		if family != tt.family || axis != tt.axis || scale != tt.scale {
			t.Errorf("ELP%d: got %s/%s/%d, want %s/%s/%d", tt.n, family, axis, scale, tt.family, tt.axis, tt.scale)
		}
	}
	for _, n := range []int{0, 37} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Layout(%d) did not panic", n)
				}
			}()
			Layout(n)
		}()
	}
}

func TestThresholdIsStrict(t *testing.T) {
	s := Series{Number: 4, Figure: []FigureTerm{{Phase: 90, A: 1}}}
	tp := NewTimePowers(J2000 + 3652.5)
	if v := s.Sum(&tp, Thresholds{0.5, 0.5, 0.5}); !scalar.EqualWithinAbs(v, 1, 1e-15) {
		t.Fatalf("term above the threshold: %f", v)
	}
	if v := s.Sum(&tp, Thresholds{1, 1, 1}); v != 0 {
		t.Fatalf("term equal to the threshold was kept: %f", v)
	}
	if s.Count(Thresholds{1, 0, 0}) != 0 || s.Count(Thresholds{0.99, 2, 2}) != 1 {
		t.Fatal("Count does not use the longitude threshold strictly")
	}
	// Series 5 is a latitude series: only the latitude threshold matters.
	s.Number = 5
	if s.Count(Thresholds{2, 0.5, 2}) != 1 {
		t.Fatal("Count does not use the latitude threshold")
	}
}

func TestSumScales(t *testing.T) {
	tp := NewTimePowers(J2000 + 2*JulianCentury)
	for _, tt := range []struct {
		n   int
		exp float64
	}{{4, 3}, {7, 3 * 2}, {22, 3}, {25, 3 * 2}, {28, 3}, {31, 3}, {34, 3 * 4}} {
		s := Series{Number: tt.n, Figure: []FigureTerm{{Phase: 90, A: 3}}}
		if v := s.Sum(&tp, Thresholds{}); !scalar.EqualWithinAbs(v, tt.exp, 1e-12) {
			t.Errorf("ELP%d: %f != %f", tt.n, v, tt.exp)
		}
	}
	for _, tt := range []struct {
		n   int
		exp float64
	}{{10, 3}, {13, 6}, {16, 3}, {19, 6}} {
		s := Series{Number: tt.n, Planetary: []PlanetaryTerm{{Phase: 90, A: 3}}}
		if v := s.Sum(&tp, Thresholds{}); !scalar.EqualWithinAbs(v, tt.exp, 1e-12) {
			t.Errorf("ELP%d: %f != %f", tt.n, v, tt.exp)
		}
	}
}

func TestSumMain(t *testing.T) {
	tp := NewTimePowers(J2000 + 1000)
	d := Delaunay(tp)

	lon := Series{Number: 1, Main: []MainTerm{{ILU: [4]int{2, 0, -1, 0}, A: 10}}}
	exp := 10 * math.Sin(2*d[0]-d[2])
	if v := lon.Sum(&tp, Thresholds{}); !scalar.EqualWithinAbs(v, exp, 1e-9) {
		t.Fatalf("longitude: %f != %f", v, exp)
	}

	// Distance rows are cosines, and the amplitude is corrected with the B derivatives.
	b := [6]float64{1, 2, 3, 4, 5, 6}
	dist := Series{Number: 3, Main: []MainTerm{{A: 100, B: b}, {ILU: [4]int{0, 0, 1, 0}, A: -20}}}
	x := 100 + (b[0]+DTASM*b[4])*(DELNP-AM*DELNU) + b[1]*DELG + b[2]*DELE + b[3]*DELEP
	exp = x - 20*math.Cos(d[2])
	if v := dist.Sum(&tp, Thresholds{}); !scalar.EqualWithinAbs(v, exp, 1e-9) {
		t.Fatalf("distance: %f != %f", v, exp)
	}
	if dist.Count(Thresholds{0, 0, 50}) != 1 {
		t.Fatal("distance threshold not applied")
	}
}

func TestSumFigureArguments(t *testing.T) {
	tp := NewTimePowers(J2000 + 5000)
	T := tp.T()
	del := &fundamental.del
	zeta := fundamental.zeta[0] + fundamental.zeta[1]*T
	F := del[3][0] + del[3][1]*T
	s := Series{Number: 4, Figure: []FigureTerm{{IZ: 1, ILU: [4]int{0, 0, 0, -1}, Phase: 10, A: 7}}}
	exp := 7 * math.Sin(10*DEG+zeta-F)
	if v := s.Sum(&tp, Thresholds{}); !scalar.EqualWithinAbs(v, exp, 1e-9) {
		t.Fatalf("%f != %f", v, exp)
	}
}

func TestSumPlanetaryTables(t *testing.T) {
	tp := NewTimePowers(J2000 + 5000)
	T := tp.T()
	del := &fundamental.del
	p := &fundamental.p
	// Column 9 is D in table 1 and l' in table 2.
	var ipla [11]int
	ipla[1], ipla[8] = 1, 1
	t1 := Series{Number: 10, Planetary: []PlanetaryTerm{{IPla: ipla, A: 2}}}
	t2 := Series{Number: 16, Planetary: []PlanetaryTerm{{IPla: ipla, A: 2}}}
	venus := p[1][0] + p[1][1]*T
	exp1 := 2 * math.Sin(venus+del[0][0]+del[0][1]*T)
	exp2 := 2 * math.Sin(venus+del[1][0]+del[1][1]*T)
	if v := t1.Sum(&tp, Thresholds{}); !scalar.EqualWithinAbs(v, exp1, 1e-9) {
		t.Fatalf("table 1: %f != %f", v, exp1)
	}
	if v := t2.Sum(&tp, Thresholds{}); !scalar.EqualWithinAbs(v, exp2, 1e-9) {
		t.Fatalf("table 2: %f != %f", v, exp2)
	}
	// Column 8 is Neptune in table 1 and D in table 2.
	ipla = [11]int{}
	ipla[7] = 1
	t1.Planetary[0].IPla, t2.Planetary[0].IPla = ipla, ipla
	exp1 = 2 * math.Sin(p[7][0]+p[7][1]*T)
	exp2 = 2 * math.Sin(del[0][0]+del[0][1]*T)
	if v := t1.Sum(&tp, Thresholds{}); !scalar.EqualWithinAbs(v, exp1, 1e-9) {
		t.Fatalf("table 1 Neptune: %f != %f", v, exp1)
	}
	if v := t2.Sum(&tp, Thresholds{}); !scalar.EqualWithinAbs(v, exp2, 1e-9) {
		t.Fatalf("table 2 D: %f != %f", v, exp2)
	}
}
