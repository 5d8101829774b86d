package elp

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 86400

// InterpolatedState is a record of a Cosmographia "InterpolatedStates" trajectory.
type InterpolatedState struct {
	JD       float64
	Position []float64 // km
	Velocity []float64 // km/s
}

// FromText initializes from text.
// The `record` parameter must be an array of seven items.
func (i *InterpolatedState) FromText(record []string) error {
	if len(record) != 7 {
		return fmt.Errorf("expected 7 fields, got %d", len(record))
	}
	vals := make([]float64, 7)
	for j, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return err
		}
		vals[j] = v
	}
	i.JD = vals[0]
	i.Position = vals[1:4]
	i.Velocity = vals[4:7]
	return nil
}

// ToText converts to text for written output.
func (i *InterpolatedState) ToText() string {
	return fmt.Sprintf("%f %f %f %f %f %f %f", i.JD, i.Position[0], i.Position[1], i.Position[2], i.Velocity[0], i.Velocity[1], i.Velocity[2])
}

// ParseInterpolatedStates reads a whitespace separated xyzv stream.
func ParseInterpolatedStates(r io.Reader) ([]*InterpolatedState, error) {
	var states []*InterpolatedState
	cr := csv.NewReader(r)
	cr.Comma = ' '
	cr.Comment = '#'
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		state := &InterpolatedState{}
		if err := state.FromText(record); err != nil {
			return nil, fmt.Errorf("xyzv record %d: %w", len(states)+1, err)
		}
		states = append(states, state)
	}
	return states, nil
}

// WriteXYZV writes the samples as a Cosmographia xyzv trajectory in km and
// km/s. Velocities are computed from the theory with a one minute step.
func WriteXYZV(w io.Writer, th *Theory, precision float64, samples []Sample) error {
	if _, err := fmt.Fprintf(w, `# Creation date (UTC): %s
# Records are <jd> <x> <y> <z> <vel x> <vel y> <vel z>
#   Time is a TDB Julian date
#   Position in km
#   Velocity in km/sec
`, time.Now().UTC()); err != nil {
		return err
	}
	for _, s := range samples {
		v := th.Velocity(s.JD, precision, 1.0/1440)
		state := InterpolatedState{
			JD:       s.JD,
			Position: []float64{s.X * AU, s.Y * AU, s.Z * AU},
			Velocity: []float64{v[0] * AU / secondsPerDay, v[1] * AU / secondsPerDay, v[2] * AU / secondsPerDay},
		}
		if _, err := io.WriteString(w, state.ToText()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the samples with a jd,x,y,z header, positions in AU.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"jd", "x", "y", "z"}); err != nil {
		return err
	}
	for _, s := range samples {
		record := []string{
			strconv.FormatFloat(s.JD, 'f', -1, 64),
			strconv.FormatFloat(s.X, 'e', -1, 64),
			strconv.FormatFloat(s.Y, 'e', -1, 64),
			strconv.FormatFloat(s.Z, 'e', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the samples as a JSON array.
func WriteJSON(w io.Writer, samples []Sample) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", 2))
	return enc.Encode(samples)
}
