package elp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	// ErrMissingSeries is returned when a series file cannot be found in the data directory.
	ErrMissingSeries = errors.New("missing ELP series file")
	// ErrMalformedRow is returned when a row of a series file cannot be parsed.
	ErrMalformedRow = errors.New("malformed ELP row")
)

// intWidth is the width of the Fortran I3 integer columns. Adjacent columns may touch.
const intWidth = 3

// column is the [start, end) byte range of a fixed width real field.
type column struct{ start, end int }

// Real fields of the (4I3,2X,F13.5,6F12.2), (5I3,1X,F9.5,1X,F9.5,1X,F9.3)
// and (11I3,1X,F9.5,1X,F9.5,1X,F9.3) records.
var (
	mainColumns      = []column{{14, 27}, {27, 39}, {39, 51}, {51, 63}, {63, 75}, {75, 87}, {87, 99}}
	figureColumns    = []column{{16, 25}, {26, 35}, {36, 45}}
	planetaryColumns = []column{{34, 43}, {44, 53}, {54, 63}}
)

// SeriesFile returns the path of the nth series file in dir, accepting
// upper or lower case names (ELP1 or elp1).
func SeriesFile(dir string, n int) (string, error) {
	for _, name := range []string{fmt.Sprintf("ELP%d", n), fmt.Sprintf("elp%d", n)} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("ELP%d in %s: %w", n, dir, ErrMissingSeries)
}

// LoadTheory reads the 36 ELP2000-82B data files from dir.
func LoadTheory(dir string, logger log.Logger) (*Theory, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger = log.With(logger, "subsys", "loader")
	var series [NumSeries]Series
	for n := 1; n <= NumSeries; n++ {
		path, err := SeriesFile(dir, n)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		series[n-1], err = ParseSeries(f, n)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		level.Debug(logger).Log("file", path, "terms", series[n-1].Len())
	}
	th, err := NewTheory(series)
	if err != nil {
		return nil, err
	}
	level.Info(logger).Log("directory", dir, "terms", th.Terms())
	return th, nil
}

// ParseSeries reads the rows of the nth series. The first line of the file
// is a title and is skipped; blank lines are ignored.
func ParseSeries(r io.Reader, n int) (Series, error) {
	family, _, _ := Layout(n)
	s := Series{Number: n}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		var err error
		switch family {
		case MainProblem:
			var row MainTerm
			if err = parseMain(line, &row); err == nil {
				s.Main = append(s.Main, row)
			}
		case PlanetaryTable1, PlanetaryTable2:
			var row PlanetaryTerm
			if err = parsePlanetary(line, &row); err == nil {
				s.Planetary = append(s.Planetary, row)
			}
		default:
			var row FigureTerm
			if err = parseFigure(line, &row); err == nil {
				s.Figure = append(s.Figure, row)
			}
		}
		if err != nil {
			if s.Len() == 0 && isTitle(line) {
				continue
			}
			return s, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return s, scanner.Err()
}

// isTitle reports whether the line holds text rather than coefficients.
func isTitle(line string) bool {
	for _, r := range line {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

// splitRow reads n fixed width integers and the real fields at cols.
func splitRow(line string, n int, cols []column) ([]int, []float64, error) {
	if len(line) < n*intWidth {
		return nil, nil, fmt.Errorf("%q too short: %w", line, ErrMalformedRow)
	}
	ints := make([]int, n)
	for i := range ints {
		field := strings.TrimSpace(line[i*intWidth : (i+1)*intWidth])
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, nil, fmt.Errorf("integer column %d %q: %w", i+1, field, ErrMalformedRow)
		}
		ints[i] = v
	}
	reals := make([]float64, len(cols))
	for i, c := range cols {
		var field string
		if c.start < len(line) {
			field = strings.TrimSpace(line[c.start:min(c.end, len(line))])
		}
		if field == "" {
			return nil, nil, fmt.Errorf("real column %d missing: %w", i+1, ErrMalformedRow)
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("real column %d %q: %w", i+1, field, ErrMalformedRow)
		}
		reals[i] = v
	}
	return ints, reals, nil
}

func parseMain(line string, row *MainTerm) error {
	ints, reals, err := splitRow(line, 4, mainColumns)
	if err != nil {
		return err
	}
	copy(row.ILU[:], ints)
	row.A = reals[0]
	copy(row.B[:], reals[1:])
	return nil
}

func parseFigure(line string, row *FigureTerm) error {
	ints, reals, err := splitRow(line, 5, figureColumns)
	if err != nil {
		return err
	}
	row.IZ = ints[0]
	copy(row.ILU[:], ints[1:])
	row.Phase, row.A, row.Period = reals[0], reals[1], reals[2]
	return nil
}

func parsePlanetary(line string, row *PlanetaryTerm) error {
	ints, reals, err := splitRow(line, 11, planetaryColumns)
	if err != nil {
		return err
	}
	copy(row.IPla[:], ints)
	row.Phase, row.A, row.Period = reals[0], reals[1], reals[2]
	return nil
}
