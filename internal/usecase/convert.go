package usecase

import (
	"io"

	"github.com/aalvaropc/seqtools/internal/ports"
)

// Convert pumps every record from r into w. The target format (and any
// quality fill or drop) is the writer's concern.
func Convert(r ports.RecordReader, w ports.RecordWriter) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
}
