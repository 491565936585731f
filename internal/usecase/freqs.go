package usecase

import (
	"fmt"
	"io"
	"sort"

	"github.com/aalvaropc/seqtools/internal/ports"
)

// Freqs writes a global residue frequency table: one "residue count pct"
// line per residue, keys sorted.
func Freqs(r ports.RecordReader, w io.Writer) error {
	counter := map[byte]int{}
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		for _, c := range rec.Sequence {
			counter[c]++
		}
	}
	return writeFreqTable(w, "", counter)
}

// FreqsPerSequence writes one frequency line per record, prefixed with the
// record id.
func FreqsPerSequence(r ports.RecordReader, w io.Writer) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		counter := map[byte]int{}
		for _, c := range rec.Sequence {
			counter[c]++
		}

		if _, err := fmt.Fprint(w, rec.ID); err != nil {
			return err
		}
		total := 0
		for _, n := range counter {
			total += n
		}
		for _, k := range sortedKeys(counter) {
			pct := float64(counter[k]) / float64(total) * 100
			if _, err := fmt.Fprintf(w, "\t%c: %d %.2f%%", k, counter[k], pct); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
}

func writeFreqTable(w io.Writer, prefix string, counter map[byte]int) error {
	total := 0
	for _, n := range counter {
		total += n
	}
	for _, k := range sortedKeys(counter) {
		pct := 0.0
		if total > 0 {
			pct = float64(counter[k]) / float64(total) * 100
		}
		if _, err := fmt.Fprintf(w, "%s%c\t%d\t%.2f %%\n", prefix, k, counter[k], pct); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(counter map[byte]int) []byte {
	keys := make([]byte, 0, len(counter))
	for k := range counter {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
