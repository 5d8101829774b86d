package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/ChristopherRabotin/elp"
	"github.com/spf13/cobra"
)

func ephemCmd() *cobra.Command {
	var (
		from, to float64
		fromDate string
		toDate   string
		step     float64
		format   string
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "ephem",
		Short: "Sample the position of the Moon over a range of dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := readJD(from, fromDate)
			if err != nil {
				return err
			}
			end, err := readJD(to, toDate)
			if err != nil {
				return err
			}
			sampler := conf.Sampler(theory, logger)
			if cmd.Flags().Changed("workers") {
				sampler.Workers = workers
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			samples, err := sampler.Sample(ctx, start, end, step)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case "csv":
				return elp.WriteCSV(out, samples)
			case "json":
				return elp.WriteJSON(out, samples)
			case "xyzv":
				return elp.WriteXYZV(out, theory, sampler.Precision, samples)
			default:
				return fmt.Errorf("unknown format `%s` (csv, json or xyzv)", format)
			}
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "first Julian day")
	cmd.Flags().Float64Var(&to, "to", 0, "last Julian day")
	cmd.Flags().StringVar(&fromDate, "from-date", "", "first date as \""+dateFormat+"\" in TT, no ΔT correction")
	cmd.Flags().StringVar(&toDate, "to-date", "", "last date as \""+dateFormat+"\" in TT, no ΔT correction")
	cmd.Flags().Float64Var(&step, "step", 1, "step in days")
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv, json or xyzv")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of workers (default from configuration)")
	return cmd
}
