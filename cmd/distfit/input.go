package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/distfit/distfit/distfit"
)

// readFile reads the sample in the named file, or standard input if
// name is "-".
func readFile(name string) ([]int, error) {
	if name == "-" {
		return readInput(os.Stdin, "<stdin>")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readInput(f, name)
}

// readInput reads one integer per line from r. Blank lines are
// skipped. Values written as floats ("3.0", "1e3") are accepted if
// they are integral.
func readInput(r io.Reader, name string) ([]int, error) {
	var values []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	xs, err := distfit.Ints(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return xs, nil
}
