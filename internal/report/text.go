package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"coal-benchmark/internal/consumption"
	"coal-benchmark/internal/model"
)

// RenderResult writes a human-readable view of one calculation.
func RenderResult(w io.Writer, res consumption.Result, decimals int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "basic coal consumption\t%s g/kWh\n", num(res.Basic, decimals))
	fmt.Fprintf(tw, "benchmark coal consumption\t%s g/kWh\n", num(res.Benchmark, decimals))
	fmt.Fprintf(tw, "comprehensive factor\t%s\n", num(res.Comprehensive, 4))
	fmt.Fprintf(tw, "total correction factor\t%s\n", num(res.TotalFactor, 4))
	fmt.Fprintln(tw)
	for _, name := range model.CorrectionNames {
		if v, ok := res.Factors[name]; ok {
			fmt.Fprintf(tw, "%s\t%s\n", name, num(v, 4))
		}
	}
	return tw.Flush()
}

// RenderAnnual writes the annual aggregation alongside each month's rate.
func RenderAnnual(w io.Writer, annual consumption.AnnualResult, decimals int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, res := range annual.Monthly {
		fmt.Fprintf(tw, "month %d\t%s g/kWh\n", i+1, num(res.Benchmark, decimals))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "annual electricity output\t%s MWh\n", num(annual.ElectricityMWh, decimals))
	fmt.Fprintf(tw, "annual coal consumption\t%s t\n", num(annual.CoalTonnes, decimals))
	fmt.Fprintf(tw, "annual benchmark rate\t%s g/kWh\n", num(annual.BenchmarkRate, decimals))
	return tw.Flush()
}

// RenderHeating writes the combined heat-and-power view.
func RenderHeating(w io.Writer, res consumption.CombinedResult, decimals int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "power-only coal consumption\t%s g/kWh\n", num(res.PowerOnly, decimals))
	fmt.Fprintf(tw, "heating coal consumption\t%s kg\n", num(res.HeatingCoalKg, decimals))
	fmt.Fprintf(tw, "combined coal consumption\t%s g/kWh\n", num(res.Combined, decimals))
	fmt.Fprintf(tw, "heating impact\t%s g/kWh\n", num(res.Impact, decimals))
	fmt.Fprintf(tw, "heating ratio\t%s\n", num(res.HeatingRatio, 4))
	return tw.Flush()
}

func num(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
