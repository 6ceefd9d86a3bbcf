// Package timeseries provides the series container and data loading
// utilities feeding the ARMA estimators.
//
// # Creating a Series
//
// Create a series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load series data from CSV files:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "value"
//	series, err := timeseries.LoadCSV("data.csv", opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
//
// The Values field is handed directly to arma.NewModel for estimation.
package timeseries
