// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

import "fmt"

// Model identifies one of the fitted distribution families.
type Model int

const (
	DiscreteUniform Model = iota
	BetaBinomial
	Zipfian

	NumModels = 3
)

// Models lists every Model in table column order.
var Models = [NumModels]Model{DiscreteUniform, BetaBinomial, Zipfian}

var modelNames = [NumModels]string{
	DiscreteUniform: "Discrete Uniform",
	BetaBinomial:    "Beta Binomial",
	Zipfian:         "Zipfian",
}

func (m Model) String() string {
	if m >= 0 && m < NumModels {
		return modelNames[m]
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// Metric identifies a goodness-of-fit statistic.
type Metric int

const (
	ChiSquare Metric = iota
	RSquare
	RMSE
	KS

	NumMetrics = 4
)

// MetricList lists every Metric in table row order.
var MetricList = [NumMetrics]Metric{ChiSquare, RSquare, RMSE, KS}

var metricNames = [NumMetrics]string{
	ChiSquare: "Chi-Square",
	RSquare:   "R-Square",
	RMSE:      "RMSE",
	KS:        "K-S",
}

func (m Metric) String() string {
	if m >= 0 && m < NumMetrics {
		return metricNames[m]
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}
