// Package main demonstrates robust ARMA estimation on simulated data with
// additive outliers, comparing the classical estimators against their
// robust counterparts, and optionally on a series loaded from CSV.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/sartorproj/robarma/arma"
	"github.com/sartorproj/robarma/estimators"
	"github.com/sartorproj/robarma/sim"
	"github.com/sartorproj/robarma/stats"
	"github.com/sartorproj/robarma/timeseries"
)

func main() {
	var (
		csvPath = flag.String("csv", "", "optional CSV file with a 'y' column to estimate instead of simulated data")
		p       = flag.Int("p", 1, "AR order")
		q       = flag.Int("q", 1, "MA order")
		n       = flag.Int("n", 500, "length of the simulated series")
		frac    = flag.Float64("outliers", 0.05, "fraction of additive outliers in the simulated series")
		seed    = flag.Int64("seed", 42, "simulation seed")
		verbose = flag.Bool("v", false, "enable debug logging of the optimizer")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		defer dev.Sync()
		logger = dev
	}

	y, truth := loadOrSimulate(*csvPath, *p, *q, *n, *frac, *seed)

	model, err := arma.NewModel(y, *p, *q)
	if err != nil {
		fmt.Fprintf(os.Stderr, "model: %v\n", err)
		os.Exit(1)
	}

	banner(fmt.Sprintf("Robust ARMA(%d,%d) estimation, n=%d", *p, *q, model.N))
	if truth != "" {
		fmt.Println(truth)
	}
	fmt.Printf("robust location: %.4f, robust scale: %.4f\n", model.Mu, model.Sigma)

	fits := []arma.Fit{
		estimators.HannanRissanen(model),
		estimators.OLS(model, estimators.WithLogger(logger)),
		estimators.MLE(model, estimators.WithLogger(logger)),
		estimators.FTau(model, estimators.WithLogger(logger)),
		estimators.MM(model, estimators.WithLogger(logger)),
		estimators.BIPMM(model, estimators.WithLogger(logger)),
	}

	for _, fit := range fits {
		banner(fit.Result.Method.String())
		fmt.Println(fit)
	}

	diagnostics(model, fits[len(fits)-1])
}

// loadOrSimulate returns the series to analyze: the CSV series when a path
// was given, otherwise a contaminated simulated draw. The second return
// value describes the ground truth, when there is one.
func loadOrSimulate(csvPath string, p, q, n int, frac float64, seed int64) ([]float64, string) {
	if csvPath != "" {
		series, err := timeseries.LoadCSV(csvPath, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "csv: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("loaded %d observations from %s\n", series.Len(), csvPath)
		return series.Values, ""
	}

	phi := make([]float64, p)
	theta := make([]float64, q)
	for i := range phi {
		phi[i] = 0.5 / float64(i+1)
	}
	for i := range theta {
		theta[i] = 0.3 / float64(i+1)
	}

	rng := rand.New(rand.NewSource(seed))
	e := sim.InnovationsWithOutliers(sim.DefaultBurnIn+n, frac, 10, rng)
	y, err := sim.SimulateInnovations(phi, theta, 0, e, sim.DefaultBurnIn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
	truth := fmt.Sprintf("true parameters: phi=%v theta=%v mu=0, %.0f%% additive outliers of magnitude 10",
		phi, theta, 100*frac)
	return y, truth
}

func diagnostics(model *arma.Model, fit arma.Fit) {
	banner("Residual diagnostics (" + fit.Result.Method.String() + ")")

	residuals := model.ResidualsReal(fit.Params)

	if lb := stats.LjungBox(residuals, 10, model.P+model.Q); lb != nil {
		verdict := "no remaining autocorrelation"
		if lb.PValue < 0.05 {
			verdict = "significant remaining autocorrelation"
		}
		fmt.Printf("Ljung-Box:     Q=%.4f  p=%.4f  (%s)\n", lb.Statistic, lb.PValue, verdict)
	}
	if dw := stats.DurbinWatson(residuals); dw != nil {
		fmt.Printf("Durbin-Watson: d=%.4f\n", dw.Statistic)
	}

	acf := stats.ACF(residuals, 10)
	bound := stats.ConfidenceBound(len(residuals))
	if acf != nil {
		fmt.Printf("residual ACF (bound %.3f):", bound)
		for _, v := range acf[1:] {
			fmt.Printf(" %6.3f", v)
		}
		fmt.Println()
		if sig := stats.SignificantLags(acf, bound); len(sig) > 0 {
			fmt.Printf("significant lags: %v\n", sig)
		}
	}
}

func banner(title string) {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 60), title, strings.Repeat("=", 60))
}
