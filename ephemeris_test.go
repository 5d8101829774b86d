package elp

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kit/log"
	"gonum.org/v1/gonum/floats"
)

func TestSampler(t *testing.T) {
	s := NewSampler(Builtin())
	s.Workers = 3
	s.Logger = log.NewNopLogger()
	samples, err := s.Sample(context.Background(), J2000, J2000+10, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 21 {
		t.Fatalf("expected 21 samples, got %d", len(samples))
	}
	for i, sample := range samples {
		if jd := J2000 + float64(i)*0.5; sample.JD != jd {
			t.Fatalf("sample %d at %f instead of %f", i, sample.JD, jd)
		}
		x, y, z := Builtin().Position(sample.JD, DefaultPrecision)
		if !floats.Equal(sample.R(), []float64{x, y, z}) {
			t.Fatalf("sample %d differs from Position", i)
		}
		if d := sample.Distance(); d < 350000 || d > 410000 {
			t.Fatalf("sample %d: distance %f km", i, d)
		}
	}

	single, err := s.Sample(context.Background(), J2000, J2000, 1)
	if err != nil || len(single) != 1 {
		t.Fatalf("single date: %v, %d samples", err, len(single))
	}
}

func TestSamplerInvalidRange(t *testing.T) {
	s := NewSampler(Builtin())
	for _, r := range [][3]float64{{J2000, J2000 + 1, 0}, {J2000, J2000 + 1, -1}, {J2000 + 1, J2000, 0.1}} {
		if _, err := s.Sample(context.Background(), r[0], r[1], r[2]); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("%v: expected ErrInvalidRange, got %v", r, err)
		}
	}
}

func TestSamplerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSampler(Builtin()).Sample(ctx, J2000, J2000+1000, 0.01); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestVelocity(t *testing.T) {
	v := Builtin().Velocity(2460000.5, DefaultPrecision, 1.0/1440)
	// About 1 km/s.
	if speed := floats.Norm(v, 2) * AU / 86400; speed < 0.9 || speed > 1.15 {
		t.Fatalf("speed %f km/s", speed)
	}
}
