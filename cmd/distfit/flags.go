package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-kit/log"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/distfit/distfit/curvefit"
	"github.com/distfit/distfit/distfit"
)

const (
	cfgConfigFile = "config"

	cfgFitMethod        = "fit.method"
	cfgFitMaxIterations = "fit.max_iterations"
	cfgFitMaxEvals      = "fit.max_evaluations"
	cfgFitTimeout       = "fit.timeout"
	cfgFitParallelism   = "fit.parallelism"

	cfgOutputFormat    = "output.format"
	cfgOutputPrecision = "output.precision"
	cfgOutputCurve     = "output.curve"
	cfgOutputCurveStep = "output.curve_step"

	cfgLogLevel  = "log.level"
	cfgLogFormat = "log.format"

	envPrefix = "DISTFIT"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var (
	rootFlags   = flag.NewFlagSet("", flag.ContinueOnError)
	fitFlags    = flag.NewFlagSet("", flag.ContinueOnError)
	outputFlags = flag.NewFlagSet("", flag.ContinueOnError)

	cfgFile string
	cfgErr  error
)

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			cfgErr = fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}
}

// fitOptions builds the fit options from the configuration.
func fitOptions(logger log.Logger) (*distfit.Options, error) {
	method, err := curvefit.ParseMethod(viper.GetString(cfgFitMethod))
	if err != nil {
		return nil, err
	}
	maxIter := viper.GetInt(cfgFitMaxIterations)
	if maxIter < 0 {
		return nil, fmt.Errorf("%s must not be negative", cfgFitMaxIterations)
	}
	maxEvals := viper.GetInt(cfgFitMaxEvals)
	if maxEvals < 0 {
		return nil, fmt.Errorf("%s must not be negative", cfgFitMaxEvals)
	}
	timeout := viper.GetDuration(cfgFitTimeout)
	if timeout < 0 {
		return nil, fmt.Errorf("%s must not be negative", cfgFitTimeout)
	}
	return &distfit.Options{
		Solver: curvefit.Settings{
			Method:         method,
			MaxIterations:  maxIter,
			MaxEvaluations: maxEvals,
			Timeout:        timeout,
		},
		Logger: logger,
	}, nil
}

type outputConfig struct {
	Format    string
	Precision int
	CurvePath string
	CurveStep float64
}

func outputSettings() (outputConfig, error) {
	out := outputConfig{
		Format:    strings.ToLower(viper.GetString(cfgOutputFormat)),
		Precision: viper.GetInt(cfgOutputPrecision),
		CurvePath: viper.GetString(cfgOutputCurve),
		CurveStep: viper.GetFloat64(cfgOutputCurveStep),
	}
	switch out.Format {
	case formatTable, formatJSON:
	default:
		return out, fmt.Errorf("unknown %s %q", cfgOutputFormat, out.Format)
	}
	if out.Precision < 0 || out.Precision > 17 {
		return out, fmt.Errorf("%s must be in [0, 17]", cfgOutputPrecision)
	}
	if !(out.CurveStep > 0) {
		return out, fmt.Errorf("%s must be positive", cfgOutputCurveStep)
	}
	return out, nil
}

func init() {
	rootFlags.StringVar(&cfgFile, cfgConfigFile, "", "config file (yaml, toml, or json)")
	rootFlags.String(cfgLogLevel, "warn", "log level (debug, info, warn, error)")
	rootFlags.String(cfgLogFormat, "logfmt", "log format (logfmt, json)")

	fitFlags.String(cfgFitMethod, curvefit.LevenbergMarquardt.String(), "least-squares method (lm, nelder-mead)")
	fitFlags.Int(cfgFitMaxIterations, 0, "solver iteration cap (0 for the solver default, 400)")
	fitFlags.Int(cfgFitMaxEvals, 0, "solver model-evaluation cap, checked along with the iteration cap (0 for the solver default, 4000)")
	fitFlags.Duration(cfgFitTimeout, time.Duration(0), "time limit per model fit (0 for none)")
	fitFlags.Int(cfgFitParallelism, 0, "number of inputs fit at once (0 for GOMAXPROCS)")

	outputFlags.String(cfgOutputFormat, formatTable, "output format (table, json)")
	outputFlags.Int(cfgOutputPrecision, 3, "decimal places in tables")
	outputFlags.String(cfgOutputCurve, "", "write the fitted curves as CSV to this file")
	outputFlags.Float64(cfgOutputCurveStep, 0.01, "x spacing of the fitted curves")

	for _, fs := range []*flag.FlagSet{rootFlags, fitFlags, outputFlags} {
		_ = viper.BindPFlags(fs)
	}
}
