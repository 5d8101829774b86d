// Command elpgen converts the ELP2000-82B data files into Go source. Once the
// generated file sits in the elp package, Builtin returns the complete theory.
//
//	elpgen -dir ./elp2000 -out tables_full.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"

	"github.com/ChristopherRabotin/elp"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	dir     string
	out     string
	verbose bool
)

func init() {
	flag.StringVar(&dir, "dir", ".", "directory of the ELP1 to ELP36 files")
	flag.StringVar(&out, "out", "tables_full.go", "generated Go file")
	flag.BoolVar(&verbose, "verbose", false, "debug logging")
}

func main() {
	flag.Parse()
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	th, err := elp.LoadTheory(dir, logger)
	if err != nil {
		level.Error(logger).Log("subsys", "elpgen", "err", err)
		os.Exit(1)
	}
	src, err := generate(th)
	if err != nil {
		level.Error(logger).Log("subsys", "elpgen", "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		level.Error(logger).Log("subsys", "elpgen", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("subsys", "elpgen", "file", out, "terms", th.Terms())
}

// generate returns the gofmt'ed source of the complete tables.
func generate(th *elp.Theory) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by elpgen. DO NOT EDIT.\n\npackage elp\n\n")
	buf.WriteString("func init() { completeSeries = elpSeries }\n\n")
	for n := 1; n <= elp.NumSeries; n++ {
		s := th.Series(n)
		writeSeries(&buf, &s)
	}
	buf.WriteString("func elpSeries() (s [NumSeries]Series) {\n")
	for n := 1; n <= elp.NumSeries; n++ {
		s := th.Series(n)
		fmt.Fprintf(&buf, "s[%d].Number = %d\n", n-1, n)
		if s.Len() == 0 {
			continue
		}
		family, _, _ := elp.Layout(n)
		fmt.Fprintf(&buf, "s[%d].%s = elp%d\n", n-1, field(family), n)
	}
	buf.WriteString("return\n}\n")
	return format.Source(buf.Bytes())
}

func field(f elp.Family) string {
	switch f {
	case elp.MainProblem:
		return "Main"
	case elp.PlanetaryTable1, elp.PlanetaryTable2:
		return "Planetary"
	default:
		return "Figure"
	}
}

func writeSeries(w io.Writer, s *elp.Series) {
	if s.Len() == 0 {
		return
	}
	family, _, _ := elp.Layout(s.Number)
	switch family {
	case elp.MainProblem:
		fmt.Fprintf(w, "var elp%d = []MainTerm{\n", s.Number)
		for _, r := range s.Main {
			fmt.Fprintf(w, "{ILU: %s, A: %s, B: [6]float64{", ints(r.ILU[:], "[4]int"), num(r.A))
			for i, b := range r.B {
				if i > 0 {
					io.WriteString(w, ", ")
				}
				io.WriteString(w, num(b))
			}
			io.WriteString(w, "}},\n")
		}
	case elp.PlanetaryTable1, elp.PlanetaryTable2:
		fmt.Fprintf(w, "var elp%d = []PlanetaryTerm{\n", s.Number)
		for _, r := range s.Planetary {
			fmt.Fprintf(w, "{IPla: %s, Phase: %s, A: %s, Period: %s},\n",
				ints(r.IPla[:], "[11]int"), num(r.Phase), num(r.A), num(r.Period))
		}
	default:
		fmt.Fprintf(w, "var elp%d = []FigureTerm{\n", s.Number)
		for _, r := range s.Figure {
			fmt.Fprintf(w, "{IZ: %d, ILU: %s, Phase: %s, A: %s, Period: %s},\n",
				r.IZ, ints(r.ILU[:], "[4]int"), num(r.Phase), num(r.A), num(r.Period))
		}
	}
	io.WriteString(w, "}\n\n")
}

func ints(v []int, typ string) string {
	b := []byte(typ + "{")
	for i, n := range v {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendInt(b, int64(n), 10)
	}
	return string(append(b, '}'))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
