package ports

import "github.com/aalvaropc/seqtools/internal/domain"

// RecordWriter serializes records to an output stream.
type RecordWriter interface {
	Write(domain.Record) error
}
