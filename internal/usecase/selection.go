package usecase

import (
	"io"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/ports"
)

// Select keeps the records covered by idx, preserving stream order.
// Identifier matches are per occurrence; positional matches are zero-based;
// positions past the end of the stream are silently ignored.
func Select(r ports.RecordReader, w ports.RecordWriter, idx *domain.Index) error {
	pos := 0
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if idx.Match(rec.ID, pos) {
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		pos++
	}
}

// Rename rewrites the id of every record idx maps; everything else passes
// through untouched. All records are emitted either way.
func Rename(r ports.RecordReader, w ports.RecordWriter, idx *domain.Index) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if replacement, ok := idx.Rename(rec.ID); ok {
			rec.ID = replacement
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
}

// AddID prefixes record ids with prefix. With an empty idx every record is
// touched; otherwise only the records idx covers.
func AddID(r ports.RecordReader, w ports.RecordWriter, prefix string, idx *domain.Index) error {
	pos := 0
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if idx.Empty() || idx.Match(rec.ID, pos) {
			rec.ID = prefix + rec.ID
		}
		if err := w.Write(rec); err != nil {
			return err
		}
		pos++
	}
}
