package usecase

import (
	"fmt"
	"io"

	"github.com/aalvaropc/seqtools/internal/ports"
)

// Ids writes one identifier per line.
func Ids(r ports.RecordReader, w io.Writer) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, rec.ID); err != nil {
			return err
		}
	}
}
