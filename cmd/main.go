package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orbitkit/rvorbit/pkg/ensemble"
	"github.com/orbitkit/rvorbit/pkg/orbit"
	"github.com/orbitkit/rvorbit/pkg/timeconv"
	"github.com/orbitkit/rvorbit/pkg/units"
	"github.com/orbitkit/rvorbit/pkg/utils"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rvorbit",
		Short: "Keplerian radial-velocity curve engine",
		Long: `Computes radial-velocity curves for two-body Keplerian orbits from
orbital elements, and unwraps periodic pericenter phases into absolute
pericenter-passage times.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rvorbit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add commands
	rootCmd.AddCommand(
		initCmd(),
		curveCmd(),
		t0Cmd(),
		ensembleCmd(),
	)

	// Initialize configuration
	cobra.OnInitialize(initConfig)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal(err)
		}

		viper.AddConfigPath(home + "/.rvorbit")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize client configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, _ := cmd.Flags().GetInt("workers")
			rvUnit, _ := cmd.Flags().GetString("rv-unit")

			config := utils.DefaultConfig()
			config.Ensemble.Workers = workers
			config.Output.RVUnit = rvUnit

			return utils.SaveConfig(config)
		},
	}

	cmd.Flags().Int("workers", 0, "Ensemble worker count (0 = one per CPU)")
	cmd.Flags().String("rv-unit", "km/s", "Default RV output unit")

	return cmd
}

// elementFlags registers the orbital element flags shared by curve-producing
// commands.
func elementFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("period", 0, "Orbital period")
	cmd.Flags().String("period-unit", "day", "Period unit (day, hour, yr)")
	cmd.Flags().Float64("k", 0, "RV semi-amplitude")
	cmd.Flags().String("k-unit", "km/s", "Semi-amplitude unit (km/s, m/s)")
	cmd.Flags().Float64("ecc", 0, "Eccentricity, 0 <= e < 1")
	cmd.Flags().Float64("phi0", 0, "Mean anomaly at the reference epoch")
	cmd.Flags().Float64("omega", 0, "Argument of periastron")
	cmd.Flags().String("angle-unit", "rad", "Angle unit for phi0 and omega (rad, deg)")
}

func elementsFromFlags(cmd *cobra.Command) (orbit.Elements, error) {
	period, _ := cmd.Flags().GetFloat64("period")
	periodUnit, _ := cmd.Flags().GetString("period-unit")
	k, _ := cmd.Flags().GetFloat64("k")
	kUnit, _ := cmd.Flags().GetString("k-unit")
	ecc, _ := cmd.Flags().GetFloat64("ecc")
	phi0, _ := cmd.Flags().GetFloat64("phi0")
	omega, _ := cmd.Flags().GetFloat64("omega")
	angleUnit, _ := cmd.Flags().GetString("angle-unit")

	pu, err := units.ParseUnit(periodUnit)
	if err != nil {
		return orbit.Elements{}, err
	}
	ku, err := units.ParseUnit(kUnit)
	if err != nil {
		return orbit.Elements{}, err
	}
	au, err := units.ParseUnit(angleUnit)
	if err != nil {
		return orbit.Elements{}, err
	}

	return orbit.NewElements(
		units.Quantity{Value: period, Unit: pu},
		units.Quantity{Value: k, Unit: ku},
		ecc,
		units.Quantity{Value: phi0, Unit: au},
		units.Quantity{Value: omega, Unit: au},
	)
}

func curveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Compute an RV curve over a time grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := elementsFromFlags(cmd)
			if err != nil {
				return err
			}

			tmin, _ := cmd.Flags().GetFloat64("tmin")
			tmax, _ := cmd.Flags().GetFloat64("tmax")
			n, _ := cmd.Flags().GetInt("n")
			output, _ := cmd.Flags().GetString("output")
			relativeToT0, _ := cmd.Flags().GetBool("relative-to-t0")

			config, err := utils.LoadConfig()
			if err != nil {
				return err
			}
			rvUnit, err := units.ParseUnit(config.Output.RVUnit)
			if err != nil {
				return err
			}

			grid := ensemble.TimeGrid(tmin, tmax, n)
			series, err := el.RVCurve(grid, rvUnit)
			if err != nil {
				return err
			}

			times := grid
			if relativeToT0 {
				t0, err := el.PericenterTime(tmin)
				if err != nil {
					return err
				}
				shifted := make([]float64, len(grid))
				for i, t := range grid {
					shifted[i] = t - t0
				}
				times = shifted
				log.Printf("Time axis relative to t0 = MJD %.6f", t0)
			}

			return writeCurveCSV(output, times, series, rvUnit)
		},
	}

	elementFlags(cmd)
	cmd.Flags().Float64("tmin", 0, "Grid start, MJD")
	cmd.Flags().Float64("tmax", 0, "Grid end, MJD")
	cmd.Flags().Int("n", 500, "Grid points")
	cmd.Flags().String("output", "", "Output CSV file (default stdout)")
	cmd.Flags().Bool("relative-to-t0", false, "Shift the time axis by the pericenter time nearest tmin")

	return cmd
}

func t0Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "t0",
		Short: "Find the pericenter passage nearest an epoch",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, _ := cmd.Flags().GetFloat64("period")
			periodUnit, _ := cmd.Flags().GetString("period-unit")
			phi0, _ := cmd.Flags().GetFloat64("phi0")
			angleUnit, _ := cmd.Flags().GetString("angle-unit")
			epoch, _ := cmd.Flags().GetFloat64("epoch")

			pu, err := units.ParseUnit(periodUnit)
			if err != nil {
				return err
			}
			au, err := units.ParseUnit(angleUnit)
			if err != nil {
				return err
			}

			p, err := units.Quantity{Value: period, Unit: pu}.In(units.Day)
			if err != nil {
				return err
			}
			phi, err := units.Quantity{Value: phi0, Unit: au}.In(units.Radian)
			if err != nil {
				return err
			}

			t0, err := orbit.FindPericenterTime(phi, p, epoch)
			if err != nil {
				return err
			}

			fmt.Printf("t0 = MJD %.6f (%s)\n", t0,
				timeconv.MJDToTime(t0).Format("2006-01-02 15:04:05 UTC"))
			return nil
		},
	}

	cmd.Flags().Float64("period", 0, "Orbital period")
	cmd.Flags().String("period-unit", "day", "Period unit (day, hour, yr)")
	cmd.Flags().Float64("phi0", 0, "Mean anomaly at the reference epoch")
	cmd.Flags().String("angle-unit", "rad", "Angle unit for phi0 (rad, deg)")
	cmd.Flags().Float64("epoch", 0, "Reference epoch, MJD")

	return cmd
}

func ensembleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensemble",
		Short: "Compute RV curves for a sample ensemble",
		RunE: func(cmd *cobra.Command, args []string) error {
			samplesFile, _ := cmd.Flags().GetString("samples")
			tmin, _ := cmd.Flags().GetFloat64("tmin")
			tmax, _ := cmd.Flags().GetFloat64("tmax")
			n, _ := cmd.Flags().GetInt("n")
			output, _ := cmd.Flags().GetString("output")

			config, err := utils.LoadConfig()
			if err != nil {
				return err
			}

			samples, err := ensemble.LoadSamplesCSV(samplesFile)
			if err != nil {
				return fmt.Errorf("failed to load samples: %w", err)
			}

			mgr := ensemble.NewManager(config.Ensemble.Workers).WithSolver(orbit.Solver{
				Tolerance:     config.Solver.Tolerance,
				MaxIterations: config.Solver.MaxIterations,
				HighEccSeed:   config.Solver.HighEccSeed,
			})

			grid := ensemble.TimeGrid(tmin, tmax, n)
			cs, err := mgr.Curves(context.Background(), samples, grid)
			if err != nil {
				return err
			}

			return writeSummaryCSV(output, cs.Grid, cs.MeanRV, cs.StdRV)
		},
	}

	cmd.Flags().String("samples", "", "Samples CSV (P_day,K_kms,e,phi0_rad,omega_rad)")
	cmd.Flags().Float64("tmin", 0, "Grid start, MJD")
	cmd.Flags().Float64("tmax", 0, "Grid end, MJD")
	cmd.Flags().Int("n", 500, "Grid points")
	cmd.Flags().String("output", "", "Output CSV file (default stdout)")
	cmd.MarkFlagRequired("samples")

	return cmd
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func writeCurveCSV(path string, times []float64, series orbit.RVSeries, rvUnit units.Unit) error {
	f, closeF, err := openOutput(path)
	if err != nil {
		return err
	}
	defer closeF()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"t_mjd", "rv_" + rvUnit.String()}); err != nil {
		return err
	}
	for i, pt := range series {
		row := []string{
			strconv.FormatFloat(times[i], 'g', -1, 64),
			strconv.FormatFloat(pt.RV.Value, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummaryCSV(path string, grid, mean, std []float64) error {
	f, closeF, err := openOutput(path)
	if err != nil {
		return err
	}
	defer closeF()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"t_mjd", "mean_rv_ms", "std_rv_ms"}); err != nil {
		return err
	}
	for i := range grid {
		row := []string{
			strconv.FormatFloat(grid[i], 'g', -1, 64),
			strconv.FormatFloat(mean[i], 'g', -1, 64),
			strconv.FormatFloat(std[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
