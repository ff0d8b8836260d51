package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"coal-benchmark/internal/analysis"
	"coal-benchmark/internal/config"
	"coal-benchmark/internal/consumption"
	"coal-benchmark/internal/data"
	"coal-benchmark/internal/model"
	"coal-benchmark/internal/report"

	"github.com/spf13/cobra"
)

var (
	cfgPath    string
	paramsPath string
	sheetName  string
	outPath    string
)

func main() {
	root := &cobra.Command{
		Use:           "coalbench",
		Short:         "Benchmark coal-consumption calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config (optional)")
	root.PersistentFlags().StringVar(&paramsPath, "params", "", "Parameter file (.json or .xlsx)")
	root.PersistentFlags().StringVar(&sheetName, "sheet", "Sheet1", "Worksheet name for .xlsx inputs")
	root.PersistentFlags().StringVar(&outPath, "out", "", "Optional CSV output path")

	root.AddCommand(calcCmd(), modesCmd(), heatingCmd(), annualCmd(), sensitivityCmd(), compareCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}

func loadParams() (model.Params, error) {
	if paramsPath == "" {
		return model.Params{}, nil
	}
	switch strings.ToLower(filepath.Ext(paramsPath)) {
	case ".xlsx":
		return data.LoadParamsXLSX(paramsPath, sheetName)
	case ".json":
		return data.LoadParamsJSON(paramsPath)
	default:
		return nil, fmt.Errorf("unsupported parameter file: %s", paramsPath)
	}
}

func writeCSV(write func(string) error) error {
	if outPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := write(outPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Compute the benchmark coal-consumption rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			overrides, err := loadParams()
			if err != nil {
				return err
			}
			res := consumption.New().Benchmark(cfg.Params(overrides), cfg.CalculationSettings)
			if err := report.RenderResult(os.Stdout, res, cfg.Output.Decimals); err != nil {
				return err
			}
			return writeCSV(func(p string) error { return report.WriteResultCSV(p, res) })
		},
	}
}

func modesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "Compute consumption under normal/peak/low/heating conditions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			overrides, err := loadParams()
			if err != nil {
				return err
			}
			modes := consumption.New().Modes(cfg.Params(overrides), cfg.CalculationSettings)

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "mode\tbasic\tbenchmark\tfactor")
			for _, mode := range consumption.AllModes {
				r := modes[mode]
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.4f\n", mode, r.Basic, r.Benchmark, r.Comprehensive)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			return writeCSV(func(p string) error { return report.WriteModesCSV(p, modes) })
		},
	}
}

func heatingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heating",
		Short: "Compute the combined heat-and-power consumption view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			overrides, err := loadParams()
			if err != nil {
				return err
			}
			res := consumption.New().Combined(cfg.Params(overrides), cfg.CalculationSettings)
			return report.RenderHeating(os.Stdout, res, cfg.Output.Decimals)
		},
	}
}

func annualCmd() *cobra.Command {
	var monthsPath string
	cmd := &cobra.Command{
		Use:   "annual",
		Short: "Aggregate monthly parameter sets into annual figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			months, err := data.LoadMonthlyJSON(monthsPath)
			if err != nil {
				return err
			}
			merged := make([]model.Params, 0, len(months))
			for _, m := range months {
				mm := cfg.Params(m)
				// Months reporting no generation of their own carry no weight.
				if _, ok := m[model.KeyElectricityOutput]; !ok {
					delete(mm, model.KeyElectricityOutput)
				}
				merged = append(merged, mm)
			}
			annual := consumption.New().Annual(merged, cfg.CalculationSettings)
			if err := report.RenderAnnual(os.Stdout, annual, cfg.Output.Decimals); err != nil {
				return err
			}
			s := analysis.Summarize(annual.Monthly)
			fmt.Printf("\nmonthly spread: mean=%.2f stddev=%.2f p05=%.2f p95=%.2f\n",
				s.Mean, s.StdDev, s.P05, s.P95)
			return nil
		},
	}
	cmd.Flags().StringVar(&monthsPath, "months", "months.json", "JSON array of monthly parameter sets")
	return cmd
}

func sensitivityCmd() *cobra.Command {
	var (
		variable string
		minValue float64
		maxValue float64
		steps    int
	)
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Sweep one parameter and report the benchmark rate at each step",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			overrides, err := loadParams()
			if err != nil {
				return err
			}
			points := consumption.New().Sensitivity(
				cfg.Params(overrides), cfg.CalculationSettings, variable, minValue, maxValue, steps)

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\tbenchmark g/kWh\n", variable)
			for _, pt := range points {
				fmt.Fprintf(tw, "%.3f\t%.2f\n", pt.Value, pt.Consumption)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			return writeCSV(func(p string) error { return report.WriteSensitivityCSV(p, variable, points) })
		},
	}
	cmd.Flags().StringVar(&variable, "variable", model.KeyActualLoad, "Parameter to sweep")
	cmd.Flags().Float64Var(&minValue, "min", 50, "Sweep minimum")
	cmd.Flags().Float64Var(&maxValue, "max", 100, "Sweep maximum")
	cmd.Flags().IntVar(&steps, "steps", 10, "Number of sweep points (>= 2)")
	return cmd
}

func compareCmd() *cobra.Command {
	var dataPath string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare monthly observations against the benchmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := data.LoadBenchmarkMonthlyXLSX(dataPath, sheetName)
			if err != nil {
				return err
			}
			calc := consumption.New()
			rates := calc.MonthlyConsumption(table.Benchmark, table.Months, cfg.CalculationSettings)

			fmt.Printf("benchmark rate: %.2f g/kWh\n\n", rates.Benchmark)
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "rank\tmonth\trate g/kWh")
			for _, r := range analysis.RankMonthsByRate(rates.Monthly) {
				fmt.Fprintf(tw, "%d\t%s\t%.2f\n", r.Rank, r.Month, r.Rate)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			comparison := calc.CompareWithBenchmark(table.Benchmark, table.Months)
			return writeCSV(func(p string) error { return report.WriteComparisonCSV(p, comparison) })
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "comparison.xlsx", "Workbook with benchmark and month columns")
	return cmd
}
