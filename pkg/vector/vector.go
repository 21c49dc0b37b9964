// Package vector converts between numeric sequences and their
// comma-separated text form.
package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a comma-separated list of numbers such as "2, 4,1,9".
func Parse(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}

	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, fmt.Errorf("item %d is empty", i+1)
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("item %d: %q is not a number", i+1, f)
		}
		out[i] = v
	}
	return out, nil
}

// Format writes v comma separated with the given number of decimals.
func Format(v []float64, precision int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', precision, 64)
	}
	return strings.Join(parts, ",")
}
