package elp

import (
	"errors"
	"testing"
)

func numbered() (s [NumSeries]Series) {
	for i := range s {
		s[i].Number = i + 1
	}
	return
}

func TestNewTheory(t *testing.T) {
	if _, err := NewTheory(numbered()); err != nil {
		t.Fatalf("empty series: %s", err)
	}
	s := numbered()
	s[4].Number = 6
	if _, err := NewTheory(s); !errors.Is(err, ErrSeriesShape) {
		t.Fatalf("misnumbered series: %v", err)
	}
	s = numbered()
	s[3].Main = []MainTerm{{A: 1}}
	if _, err := NewTheory(s); !errors.Is(err, ErrSeriesShape) {
		t.Fatalf("main rows in an Earth figure series: %v", err)
	}
	s = numbered()
	s[0].Planetary = []PlanetaryTerm{{A: 1}}
	if _, err := NewTheory(s); !errors.Is(err, ErrSeriesShape) {
		t.Fatalf("planetary rows in a main problem series: %v", err)
	}
}

func TestBuiltin(t *testing.T) {
	th := Builtin()
	if th != Builtin() {
		t.Fatal("built-in theory rebuilt")
	}
	if th.Terms() == 0 {
		t.Fatal("no terms")
	}
	for _, n := range []int{1, 2, 3} {
		s := th.Series(n)
		if len(s.Main) == 0 {
			t.Fatalf("ELP%d is empty", n)
		}
	}
	if !Complete() {
		return
	}
	for n := 1; n <= NumSeries; n++ {
		if s := th.Series(n); s.Len() != publishedRows[n-1] {
			t.Errorf("ELP%d: %d rows instead of %d", n, s.Len(), publishedRows[n-1])
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := Builtin()
	par := seq.Parallel()
	if seq.Terms() != par.Terms() {
		t.Fatal("parallel copy lost terms")
	}
	for _, jd := range []float64{J2000, 2448724.5, 2415020.0, 2488069.5} {
		tp := NewTimePowers(jd)
		pre := NewThresholds(DefaultPrecision)
		if a, b := seq.Evaluate(tp, pre), par.Evaluate(tp, pre); a != b {
			t.Fatalf("JD %f: sequential %v != parallel %v", jd, a, b)
		}
		x0, y0, z0 := seq.Position(jd, 0)
		x1, y1, z1 := par.Position(jd, 0)
		if x0 != x1 || y0 != y1 || z0 != z1 {
			t.Fatalf("JD %f: positions differ", jd)
		}
	}
}

func TestCountMonotonic(t *testing.T) {
	th := Builtin()
	all := th.Count(0)
	fine := th.Count(DefaultPrecision)
	coarse := th.Count(MaxPrecision)
	capped := th.Count(1)
	total := 0
	for i := range all {
		if all[i] < fine[i] || fine[i] < coarse[i] {
			t.Fatalf("ELP%d: counts %d, %d, %d are not decreasing", i+1, all[i], fine[i], coarse[i])
		}
		if capped[i] != coarse[i] {
			t.Fatalf("ELP%d: precision above the cap kept %d terms instead of %d", i+1, capped[i], coarse[i])
		}
		total += all[i]
	}
	if total > th.Terms() {
		t.Fatalf("kept %d of %d terms", total, th.Terms())
	}
	if coarse[0] >= all[0] {
		t.Fatal("coarse precision did not truncate the main longitude series")
	}
}

func TestPrincipal(t *testing.T) {
	pr := Principal()
	if pr != Principal() {
		t.Fatal("principal theory rebuilt")
	}
	if !Complete() && Builtin() != pr {
		t.Fatal("built-in theory is not the principal one without the complete tables")
	}
	for _, n := range []int{1, 2, 3, 4, 5, 10, 11, 19, 20, 21, 34, 35, 36} {
		if s := pr.Series(n); s.Len() == 0 {
			t.Errorf("ELP%d is empty", n)
		}
	}
}

func TestEccentricityTerms(t *testing.T) {
	pr := Principal()
	for _, n := range []int{19, 20, 21} {
		s := pr.Series(n)
		for _, r := range s.Planetary {
			if r.IPla[8] == 0 {
				t.Fatalf("ELP%d: term %v does not depend on l'", n, r.IPla)
			}
			for i := 0; i < 7; i++ {
				if r.IPla[i] != 0 {
					t.Fatalf("ELP%d: term %v has a planetary argument", n, r.IPla)
				}
			}
		}
	}
	for _, n := range []int{34, 35, 36} {
		s := pr.Series(n)
		for _, r := range s.Figure {
			if r.ILU[1] == 0 {
				t.Fatalf("ELP%d: term %v does not depend on l'", n, r.ILU)
			}
		}
	}
	pre := NewThresholds(0)
	if e := pr.Evaluate(NewTimePowers(J2000), pre); e[18] != 0 || e[20] != 0 || e[33] != 0 {
		t.Fatal("eccentricity corrections do not vanish at J2000")
	}
	e := pr.Evaluate(NewTimePowers(J2000+JulianCentury), pre)
	if e[18] == 0 || e[20] == 0 || e[35] == 0 {
		t.Fatal("eccentricity corrections are not applied")
	}
}
