package fastx

import (
	"bufio"
	"bytes"
	"io"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/ports"
)

// DefaultFillQuality is the neutral quality character synthesized when a
// record without quality is encoded as FASTQ.
const DefaultFillQuality byte = 'I'

var _ ports.RecordWriter = (*Encoder)(nil)

// Encoder serializes records in a fixed target format. Converting FASTQ to
// FASTA drops the quality string (lossy, always permitted); converting
// FASTA to FASTQ fills the quality with the configured character.
type Encoder struct {
	w      *bufio.Writer
	format domain.Format
	fill   byte
}

type Option func(*Encoder)

// WithFillQuality overrides the neutral quality character.
func WithFillQuality(c byte) Option {
	return func(e *Encoder) { e.fill = c }
}

func NewEncoder(w io.Writer, format domain.Format, opts ...Option) *Encoder {
	e := &Encoder{
		w:      bufio.NewWriter(w),
		format: format,
		fill:   DefaultFillQuality,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Write serializes one record. The record is validated first, so a quality
// string of the wrong length is rejected rather than emitted.
func (e *Encoder) Write(rec domain.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	e.w.WriteByte(e.format.Sigil())
	e.w.WriteString(rec.ID)
	if rec.Description != "" {
		e.w.WriteByte(' ')
		e.w.WriteString(rec.Description)
	}
	e.w.WriteByte('\n')
	e.w.Write(rec.Sequence)
	e.w.WriteByte('\n')

	if e.format == domain.FormatFastq {
		e.w.WriteString("+\n")
		if rec.Quality != nil {
			e.w.Write(rec.Quality)
		} else {
			e.w.Write(bytes.Repeat([]byte{e.fill}, len(rec.Sequence)))
		}
		e.w.WriteByte('\n')
	}

	if err := e.w.Flush(); err != nil {
		return &domain.OpError{Op: "fastx.encode", Kind: domain.KindIO, Err: err}
	}
	return nil
}
