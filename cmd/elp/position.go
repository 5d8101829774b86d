package main

import (
	"fmt"
	"io"
	"math"

	"github.com/ChristopherRabotin/elp"
	"github.com/spf13/cobra"
)

func positionCmd() *cobra.Command {
	var (
		jd   float64
		date string
	)
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Print the position of the Moon at a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := readJD(jd, date)
			if err != nil {
				return err
			}
			printPosition(cmd.OutOrStdout(), theory, when, conf.Precision)
			return nil
		},
	}
	cmd.Flags().Float64Var(&jd, "jd", 0, "Julian day (TDB)")
	cmd.Flags().StringVar(&date, "date", "", "date as \""+dateFormat+"\" in TT, no ΔT correction")
	return cmd
}

func printPosition(w io.Writer, th *elp.Theory, jd, precision float64) {
	x, y, z := th.Position(jd, precision)
	sph := th.Spherical(jd, precision)
	eq, dist := th.Equatorial(jd, precision)
	fmt.Fprintf(w, "JD        %.6f (%s)\n", jd, elp.Time(jd).Format(dateFormat))
	fmt.Fprintf(w, "X, Y, Z   %+.12f %+.12f %+.12f AU\n", x, y, z)
	fmt.Fprintf(w, "distance  %.3f km\n", dist)
	fmt.Fprintf(w, "λ, β      %.6f° %+.6f° (ELP, fixed departure point)\n", sph.Lon.Deg(), sph.Lat.Deg())
	fmt.Fprintf(w, "α, δ      %.6fh %+.6f°\n", eq.RA.Hour(), eq.Dec.Deg())
	fmt.Fprintf(w, "ε         %.6f°\n", elp.MeanObliquity(jd))
	if math.Abs(jd-elp.J2000) > 30*elp.JulianCentury {
		fmt.Fprintln(w, "warning: date is far outside the validity of the theory")
	}
}
