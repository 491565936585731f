// Package stats computes summary statistics over sequence lengths and
// renders them as text, either one value per line or as a compact row, plus
// a bar histogram for terminals.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var ErrNoData = errors.New("no data points")

// Summary holds the seven-number report printed by `length --summary` and
// `random --std`.
type Summary struct {
	Count  int
	Min    int
	Max    int
	Mean   float64
	Std    float64
	Q1     int
	Median int
	Q3     int
}

// Summarize computes the summary over lengths. An empty input is an error;
// the caller decides whether zero records is reportable.
func Summarize(lengths []int) (Summary, error) {
	if len(lengths) == 0 {
		return Summary{}, ErrNoData
	}

	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Ints(sorted)

	var sum float64
	for _, l := range sorted {
		sum += float64(l)
	}
	mean := sum / float64(len(sorted))

	var sq float64
	for _, l := range sorted {
		d := float64(l) - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(sorted)))

	return Summary{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Std:    std,
		Q1:     percentile(sorted, 25),
		Median: percentile(sorted, 50),
		Q3:     percentile(sorted, 75),
	}, nil
}

// percentile is nearest-rank over a sorted slice.
func percentile(sorted []int, p float64) int {
	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// Row renders the summary on a single tab-separated line.
func (s Summary) Row() string {
	return fmt.Sprintf("Min: %d\tMax: %d\tMean: %.1f\tSdev: %.1f\tQ1: %d\tMedian: %d\tQ3: %d",
		s.Min, s.Max, s.Mean, s.Std, s.Q1, s.Median, s.Q3)
}

// Column renders the summary one value per line.
func (s Summary) Column() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Min:\t%d\n", s.Min)
	fmt.Fprintf(&b, "Max:\t%d\n", s.Max)
	fmt.Fprintf(&b, "Mean:\t%.1f\n", s.Mean)
	fmt.Fprintf(&b, "Sdev:\t%.1f\n", s.Std)
	fmt.Fprintf(&b, "Q1:\t%d\n", s.Q1)
	fmt.Fprintf(&b, "Median:\t%d\n", s.Median)
	fmt.Fprintf(&b, "Q3:\t%d\n", s.Q3)
	return b.String()
}

// Histogram renders lengths as horizontal bars no wider than width columns.
// Buckets with zero observations are kept so gaps stay visible.
func Histogram(lengths []int, width int) string {
	if len(lengths) == 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}

	min, max := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}

	span := max - min + 1
	buckets := span
	if buckets > 20 {
		buckets = 20
	}
	size := (span + buckets - 1) / buckets

	counts := make([]int, buckets)
	for _, l := range lengths {
		counts[(l-min)/size]++
	}
	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	var b strings.Builder
	for i, c := range counts {
		lo := min + i*size
		hi := lo + size - 1
		if hi > max {
			hi = max
		}
		bar := 0
		if peak > 0 {
			bar = c * width / peak
		}
		if c > 0 && bar == 0 {
			bar = 1
		}
		fmt.Fprintf(&b, "%8d-%-8d %6d |%s\n", lo, hi, c, strings.Repeat("#", bar))
	}
	return b.String()
}
