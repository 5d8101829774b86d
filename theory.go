package elp

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrSeriesShape is returned when a series holds rows of the wrong shape for its family.
var ErrSeriesShape = errors.New("series rows do not match the series family")

// Theory is a complete set of the 36 ELP2000-82B series. A Theory is never
// modified once built and is safe for concurrent use.
type Theory struct {
	series   [NumSeries]Series
	parallel bool
}

//go:generate go run ./cmd/elpgen -dir elp2000 -out tables_full.go

// completeSeries is installed by the tables generated with cmd/elpgen.
var completeSeries func() [NumSeries]Series

var (
	builtin   = sync.OnceValue(func() *Theory { return mustTheory(builtinSeries()) })
	principal = sync.OnceValue(func() *Theory { return mustTheory(principalSeries()) })
)

func builtinSeries() [NumSeries]Series {
	if completeSeries != nil {
		return completeSeries()
	}
	return principalSeries()
}

func mustTheory(series [NumSeries]Series) *Theory {
	th, err := NewTheory(series)
	if err != nil {
		panic(err)
	}
	return th
}

// Builtin returns the theory compiled into the package: the complete tables
// when the file generated by cmd/elpgen is present, the principal terms otherwise.
func Builtin() *Theory {
	return builtin()
}

// Principal returns the theory made of the principal terms only.
func Principal() *Theory {
	return principal()
}

// Complete reports whether Builtin holds the complete tables.
func Complete() bool {
	return completeSeries != nil
}

// NewTheory validates the series and returns a Theory. The series must be
// ordered: series[i].Number == i+1.
func NewTheory(series [NumSeries]Series) (*Theory, error) {
	for i := range series {
		s := &series[i]
		if s.Number != i+1 {
			return nil, fmt.Errorf("series at index %d is numbered %d: %w", i, s.Number, ErrSeriesShape)
		}
		var ok bool
		switch family, _, _ := Layout(s.Number); family {
		case MainProblem:
			ok = len(s.Figure) == 0 && len(s.Planetary) == 0
		case PlanetaryTable1, PlanetaryTable2:
			ok = len(s.Main) == 0 && len(s.Figure) == 0
		default:
			ok = len(s.Main) == 0 && len(s.Planetary) == 0
		}
		if !ok {
			return nil, fmt.Errorf("ELP%d: %w", s.Number, ErrSeriesShape)
		}
	}
	return &Theory{series: series}, nil
}

// Parallel returns a copy of the theory which evaluates its series concurrently.
func (th *Theory) Parallel() *Theory {
	return &Theory{series: th.series, parallel: true}
}

// Series returns the nth series (1 to 36). The returned rows must not be modified.
func (th *Theory) Series(n int) Series {
	Layout(n)
	return th.series[n-1]
}

// Terms returns the total number of rows of the theory.
func (th *Theory) Terms() int {
	n := 0
	for i := range th.series {
		n += th.series[i].Len()
	}
	return n
}

// Count returns, for each series, the number of rows kept at the provided precision.
func (th *Theory) Count(precision float64) (n [NumSeries]int) {
	pre := NewThresholds(precision)
	for i := range th.series {
		n[i] = th.series[i].Count(pre)
	}
	return
}

// Evaluate sums the 36 series at the provided time.
func (th *Theory) Evaluate(t TimePowers, pre Thresholds) (elp [NumSeries]float64) {
	if th.parallel {
		return th.evaluateParallel(t, pre)
	}
	for i := range th.series {
		elp[i] = th.series[i].Sum(&t, pre)
	}
	return
}

// evaluateParallel sums every series in its own goroutine, bounded by GOMAXPROCS.
// Each goroutine writes a distinct element of the result.
func (th *Theory) evaluateParallel(t TimePowers, pre Thresholds) (elp [NumSeries]float64) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range th.series {
		i := i
		if th.series[i].Len() == 0 {
			continue
		}
		g.Go(func() error {
			elp[i] = th.series[i].Sum(&t, pre)
			return nil
		})
	}
	g.Wait()
	return
}
