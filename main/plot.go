package main

import (
	"fmt"

	"github.com/phil-mansfield/effarea"
	plt "github.com/phil-mansfield/pyplot"
)

// plotConvergence plots the estimates and their one-sigma errors against
// sample count and writes the figure to fname.
func plotConvergence(results []effarea.Result, fname string) {
	ns := make([]float64, len(results))
	areas := make([]float64, len(results))
	lows, highs := make([]float64, len(results)), make([]float64, len(results))

	for i := range results {
		res := &results[i]
		ns[i], areas[i] = float64(res.Samples), res.Area
		lows[i], highs[i] = res.Area - res.StdErr(), res.Area + res.StdErr()
	}

	first, last := &results[0], &results[len(results) - 1]
	nRange := []float64{ ns[0], ns[len(ns) - 1] }
	disk := first.DiskArea()

	plt.Reset()
	plt.Figure()
	plt.Plot(nRange, []float64{ disk, disk }, "r", plt.LW(2))
	plt.Plot(ns, lows, "k--")
	plt.Plot(ns, highs, "k--")
	plt.Plot(ns, areas, "ok")

	plt.Title(fmt.Sprintf(
		`$R$ = %g, $H$ = %g, $\theta$ = %.3g: $A_{\rm eff}$ = %.4g`,
		first.Radius, first.Height, first.Theta, last.Area,
	))
	plt.XLabel(`$N_{\rm samples}$`, plt.FontSize(16))
	plt.YLabel(`$A_{\rm eff}$`, plt.FontSize(16))

	plt.XScale("log")
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))
	plt.SaveFig(fname)

	plt.Execute()
}
