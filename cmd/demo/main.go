package main

import (
	"flag"
	"fmt"
	"os"

	"coal-benchmark/internal/config"
	"coal-benchmark/internal/consumption"
	"coal-benchmark/internal/model"
	"coal-benchmark/internal/report"
)

// Demo:
// - Build a parameter set for a typical 1000 MWh month
// - Run the benchmark calculation and show every correction factor
// - Show the operating-mode fan-out and a load sensitivity sweep
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	// A warm month at reduced load with slightly degraded coal.
	overrides := model.Params{
		model.KeyActualLoad:        85,
		model.KeyActualTemperature: 32,
		model.KeyActualCalorific:   4600,
		model.KeyHeatingLoad:       20,
	}
	params := cfg.Params(overrides)
	calc := consumption.New()

	fmt.Println("== benchmark calculation ==")
	res := calc.Benchmark(params, cfg.CalculationSettings)
	if err := report.RenderResult(os.Stdout, res, cfg.Output.Decimals); err != nil {
		panic(err)
	}

	fmt.Println("\n== operating modes ==")
	modes := calc.Modes(params, cfg.CalculationSettings)
	for _, mode := range consumption.AllModes {
		r := modes[mode]
		fmt.Printf("%-8s benchmark=%.2f g/kWh (factor %.4f)\n", mode, r.Benchmark, r.Comprehensive)
	}

	fmt.Println("\n== load sensitivity ==")
	points := calc.Sensitivity(params, cfg.CalculationSettings, model.KeyActualLoad, 50, 100, 6)
	for _, pt := range points {
		fmt.Printf("load=%5.1f%%  benchmark=%.2f g/kWh\n", pt.Value, pt.Consumption)
	}
}
