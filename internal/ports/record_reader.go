package ports

import "github.com/aalvaropc/seqtools/internal/domain"

// RecordReader is a forward-only, single-pass cursor over a record stream.
// Next returns io.EOF after the last record. A parse or read error is
// terminal: the reader does not resynchronize.
type RecordReader interface {
	Next() (domain.Record, error)
}
