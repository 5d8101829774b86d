package elp

import (
	"context"
	"errors"
	"math"
	"runtime"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidRange is returned when an ephemeris range is empty or its step is not positive.
var ErrInvalidRange = errors.New("invalid ephemeris range")

// Sample is the position of the Moon, in AU, at a Julian day.
type Sample struct {
	JD float64 `json:"jd"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
}

// R returns the position vector.
func (s Sample) R() []float64 {
	return []float64{s.X, s.Y, s.Z}
}

// Distance returns the geocentric distance in km.
func (s Sample) Distance() float64 {
	return floats.Norm(s.R(), 2) * AU
}

// Sampler evaluates a theory over a range of dates with a bounded pool of workers.
type Sampler struct {
	Theory    *Theory
	Precision float64
	Workers   int        // defaults to GOMAXPROCS
	Logger    log.Logger // may be nil
}

// NewSampler returns a sampler of the provided theory with the default precision.
func NewSampler(th *Theory) *Sampler {
	return &Sampler{Theory: th, Precision: DefaultPrecision}
}

// Sample returns the positions at start, start+step, ... up to and including end.
// Samples are ordered by date whatever the order in which workers finish.
func (s *Sampler) Sample(ctx context.Context, start, end, step float64) ([]Sample, error) {
	if step <= 0 || end < start || math.IsNaN(start) || math.IsNaN(end) {
		return nil, ErrInvalidRange
	}
	logger := s.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := int(math.Floor((end-start)/step+1e-9)) + 1
	samples := make([]Sample, n)

	began := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			jd := start + float64(i)*step
			x, y, z := s.Theory.Position(jd, s.Precision)
			samples[i] = Sample{JD: jd, X: x, Y: y, Z: z}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		level.Warn(logger).Log("subsys", "ephemeris", "status", "cancelled", "err", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		level.Warn(logger).Log("subsys", "ephemeris", "status", "cancelled", "err", err)
		return nil, err
	}
	level.Debug(logger).Log("subsys", "ephemeris", "samples", n, "workers", workers, "duration", time.Since(began))
	return samples, nil
}

// Velocity returns the geocentric velocity of the Moon in AU per day, by
// central differences over ±h days, in the frame of Position.
func (th *Theory) Velocity(jd, precision, h float64) []float64 {
	x0, y0, z0 := th.Position(jd-h, precision)
	x1, y1, z1 := th.Position(jd+h, precision)
	v := make([]float64, 3)
	floats.SubTo(v, []float64{x1, y1, z1}, []float64{x0, y0, z0})
	floats.Scale(1/(2*h), v)
	return v
}
