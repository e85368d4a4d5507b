// Distfit reads newline-separated integers and fits discrete uniform,
// beta-binomial, and Zipfian distributions to them.
//
// Usage:
//
//	distfit [flags] [file...]
//
// Each file is fit separately. With no files, or a file named "-",
// distfit reads standard input. Flags may also be set in a config file
// (--config) or through DISTFIT_-prefixed environment variables, with
// dots in the key replaced by underscores (DISTFIT_FIT_METHOD).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/distfit/distfit/distfit"
)

var rootCmd = &cobra.Command{
	Use:           "distfit [file...]",
	Short:         "fit discrete distributions to integer samples",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)
	rootCmd.Flags().AddFlagSet(fitFlags)
	rootCmd.Flags().AddFlagSet(outputFlags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "distfit:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	logger, err := newLogger(os.Stderr, viper.GetString(cfgLogFormat), viper.GetString(cfgLogLevel))
	if err != nil {
		return err
	}
	opts, err := fitOptions(logger)
	if err != nil {
		return err
	}
	out, err := outputSettings()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	if out.CurvePath != "" && len(args) > 1 {
		return fmt.Errorf("--%s needs a single input", cfgOutputCurve)
	}

	inputs := make([][]int, len(args))
	for i, name := range args {
		if inputs[i], err = readFile(name); err != nil {
			return err
		}
		_ = level.Debug(logger).Log("msg", "read input", "file", name, "n", len(inputs[i]))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := distfit.FitAll(ctx, inputs, opts, viper.GetInt(cfgFitParallelism))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch out.Format {
	case formatJSON:
		err = writeJSON(w, args, results)
	default:
		for i, res := range results {
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s:\n", args[i])
			}
			writeTables(w, res, out.Precision)
		}
	}
	if err != nil {
		return err
	}

	if out.CurvePath != "" {
		c, err := distfit.Curves(results[0], out.CurveStep)
		if err != nil {
			return err
		}
		if err := writeCurveFile(out.CurvePath, c); err != nil {
			return err
		}
	}
	return nil
}
