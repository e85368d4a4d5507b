// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides descriptive statistics, discrete model
// distributions, and goodness-of-fit metrics for integer-valued
// samples.
package stats // import "github.com/distfit/distfit/stats"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrSampleSize is returned when a computation needs more
	// values than it was given.
	ErrSampleSize = errors.New("sample is too small")
)
