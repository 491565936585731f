package usecase

import (
	"fmt"
	"io"

	"github.com/aalvaropc/seqtools/internal/ports"
)

// Lengths writes one "id<TAB>length" line per record.
func Lengths(r ports.RecordReader, w io.Writer) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\n", rec.ID, len(rec.Sequence)); err != nil {
			return err
		}
	}
}

// CollectLengths drains the stream and returns every sequence length, for
// the summary and histogram modes that need the full distribution.
func CollectLengths(r ports.RecordReader) ([]int, error) {
	var lengths []int
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return lengths, nil
		}
		if err != nil {
			return nil, err
		}
		lengths = append(lengths, len(rec.Sequence))
	}
}
