// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

import (
	"errors"
	"fmt"
	"math"
)

// InvalidInputError reports a sample set no statistics can be derived
// from. It aborts the whole fit.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "distfit: invalid input: " + e.Reason
}

func invalidInput(format string, args ...interface{}) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// FitFailure reports that the parameters of one model could not be
// estimated. It is confined to that model: its parameters and metrics
// are NaN and the other models are unaffected.
type FitFailure struct {
	Model Model
	Err   error
}

func (f *FitFailure) Error() string {
	return fmt.Sprintf("distfit: could not optimize %v fit: %v", f.Model, f.Err)
}

func (f *FitFailure) Unwrap() error {
	return f.Err
}

// ErrNoPositiveSupport is the cause of a Zipfian FitFailure when no
// support point is positive, so every Zipfian mass is 0 whatever the
// exponent.
var ErrNoPositiveSupport = errors.New("no positive support points")

// IsUndefined reports whether a metric or parameter value is the
// "undefined" sentinel, NaN.
func IsUndefined(x float64) bool {
	return math.IsNaN(x)
}
