package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ChristopherRabotin/elp"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

const dateFormat = "2006-01-02 15:04:05"

var (
	cfgFile   string
	verbose   bool
	precision float64
	logger    log.Logger
	conf      elp.Config
	theory    *elp.Theory
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "elp",
		Short:        "Geocentric position of the Moon from the ELP2000-82B theory",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
			logger = log.With(logger, "ts", log.DefaultTimestampUTC)
			if verbose {
				logger = level.NewFilter(logger, level.AllowDebug())
			} else {
				logger = level.NewFilter(logger, level.AllowInfo())
			}
			var err error
			if conf, err = elp.LoadConfig(cfgFile); err != nil {
				return err
			}
			if cmd.Flags().Changed("precision") {
				conf.Precision = precision
			}
			if theory, err = conf.Theory(logger); err != nil {
				return err
			}
			level.Debug(logger).Log("subsys", "conf", "directory", conf.DataDir, "precision", conf.Precision, "terms", theory.Terms())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default $ELP_CONFIG/elp.toml)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")
	root.PersistentFlags().Float64Var(&precision, "precision", elp.DefaultPrecision, "truncation precision (capped at 0.01)")
	root.AddCommand(positionCmd(), ephemCmd(), serveCmd())
	return root
}

// readJD returns the Julian day from either a --jd value or a --date string.
// The date is taken as TT: no ΔT correction is applied.
func readJD(jd float64, date string) (float64, error) {
	if date == "" {
		if jd == 0 {
			return elp.JD(time.Now()), nil
		}
		return jd, nil
	}
	dt, err := time.Parse(dateFormat, date)
	if err != nil {
		return 0, fmt.Errorf("could not parse date `%s` (expected %s): %w", date, dateFormat, err)
	}
	return elp.JD(dt), nil
}
