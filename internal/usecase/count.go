package usecase

import (
	"io"

	"github.com/aalvaropc/seqtools/internal/ports"
)

// Count consumes the stream and returns the number of records.
func Count(r ports.RecordReader) (int, error) {
	n := 0
	for {
		_, err := r.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}
