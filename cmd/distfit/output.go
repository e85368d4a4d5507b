package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/multierr"

	"github.com/distfit/distfit/distfit"
)

// writeTables prints the summary statistics, the metrics table, and
// the fitted parameters of res, rounded to prec decimal places.
func writeTables(w io.Writer, res *distfit.Result, prec int) {
	f := func(x float64) string {
		return strconv.FormatFloat(x, 'f', prec, 64)
	}

	fmt.Fprintln(w, "Summary statistics:")
	st := res.Stats
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Mean", "Std Dev", "Range", "Variance", "IQR"})
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	t.Append([]string{f(st.Mean), f(st.StdDev), f(st.Range), f(st.Variance), f(st.IQR)})
	t.Render()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Goodness of fit:")
	t = tablewriter.NewWriter(w)
	header := []string{"Metric"}
	for _, m := range distfit.Models {
		header = append(header, m.String())
	}
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	table := res.Table()
	for i, metric := range distfit.MetricList {
		row := []string{metric.String()}
		for j := range distfit.Models {
			row = append(row, f(table[i][j]))
		}
		t.Append(row)
	}
	t.Render()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Fitted parameters:")
	fmt.Fprintf(w, "%s: a = %s, b = %s\n", distfit.BetaBinomial, f(res.Params.A), f(res.Params.B))
	fmt.Fprintf(w, "%s: c = %s\n", distfit.Zipfian, f(res.Params.C))
}

// jsonFloat marshals NaN and infinities, which JSON can't represent,
// as null.
type jsonFloat float64

func (x jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type jsonResult struct {
	Input    string                          `json:"input"`
	N        int                             `json:"n"`
	Stats    map[string]jsonFloat            `json:"stats"`
	Metrics  map[string]map[string]jsonFloat `json:"metrics"`
	Params   map[string]jsonFloat            `json:"params"`
	Support  []int                           `json:"support"`
	Observed []jsonFloat                     `json:"observed"`
	Expected map[string][]jsonFloat          `json:"expected"`
	Failures []string                        `json:"failures,omitempty"`
}

func floats(xs []float64) []jsonFloat {
	out := make([]jsonFloat, len(xs))
	for i, x := range xs {
		out[i] = jsonFloat(x)
	}
	return out
}

func toJSON(name string, res *distfit.Result) jsonResult {
	st := res.Stats
	jr := jsonResult{
		Input: name,
		N:     res.Empirical.N,
		Stats: map[string]jsonFloat{
			"mean":     jsonFloat(st.Mean),
			"std_dev":  jsonFloat(st.StdDev),
			"range":    jsonFloat(st.Range),
			"variance": jsonFloat(st.Variance),
			"iqr":      jsonFloat(st.IQR),
		},
		Metrics: make(map[string]map[string]jsonFloat),
		Params: map[string]jsonFloat{
			"a": jsonFloat(res.Params.A),
			"b": jsonFloat(res.Params.B),
			"c": jsonFloat(res.Params.C),
		},
		Observed: floats(res.Empirical.Probs),
		Expected: make(map[string][]jsonFloat),
	}
	for _, fit := range res.Fits {
		ms := make(map[string]jsonFloat)
		for _, metric := range distfit.MetricList {
			ms[metric.String()] = jsonFloat(fit.Metrics.Get(metric))
		}
		jr.Metrics[fit.Model.String()] = ms
		jr.Expected[fit.Model.String()] = floats(fit.Density)
	}
	for i := 0; i < res.Empirical.Len(); i++ {
		jr.Support = append(jr.Support, res.Empirical.Min+i)
	}
	for _, err := range multierr.Errors(res.Failures) {
		jr.Failures = append(jr.Failures, err.Error())
	}
	return jr
}

// writeJSON prints the results at full precision, one JSON array
// element per input.
func writeJSON(w io.Writer, names []string, results []*distfit.Result) error {
	out := make([]jsonResult, len(results))
	for i, res := range results {
		out[i] = toJSON(names[i], res)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeCurve writes c as CSV with an x column and one column per
// model.
func writeCurve(w io.Writer, c *distfit.Curve) error {
	cw := csv.NewWriter(w)
	header := []string{"x"}
	for _, m := range distfit.Models {
		header = append(header, m.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for i, x := range c.Xs {
		row[0] = strconv.FormatFloat(x, 'g', -1, 64)
		for j, m := range distfit.Models {
			row[j+1] = strconv.FormatFloat(c.Ys[m][i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCurveFile(path string, c *distfit.Curve) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return writeCurve(f, c)
}
