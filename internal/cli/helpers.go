package cli

import (
	"io"
	"strconv"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/infra/fastx"
	"github.com/aalvaropc/seqtools/internal/infra/idfile"
	"github.com/aalvaropc/seqtools/internal/infra/sink"
	"github.com/aalvaropc/seqtools/internal/infra/source"
	"github.com/aalvaropc/seqtools/internal/ports"
)

// openDecoder opens the input named by the global --in flag (stdin when
// empty) and layers the FASTX decoder on top of it.
func (a *app) openDecoder() (*source.Source, *fastx.Decoder, error) {
	src, err := source.Open(a.in)
	if err != nil {
		return nil, nil, err
	}
	return src, fastx.NewDecoder(src), nil
}

// streamPreserving runs a record transformation whose output keeps the
// input's own format. The first record is decoded up front so the encoder
// can be created with the detected format; empty input produces an empty
// output in FASTA framing.
func (a *app) streamPreserving(out string, run func(r ports.RecordReader, w ports.RecordWriter) error) error {
	src, dec, err := a.openDecoder()
	if err != nil {
		return err
	}
	defer src.Close()

	first, ferr := dec.Next()
	if ferr != nil && ferr != io.EOF {
		return ferr
	}

	format := dec.Format()
	if format == "" {
		format = domain.FormatFasta
	}

	snk, err := sink.Open(out)
	if err != nil {
		return err
	}
	enc := fastx.NewEncoder(snk, format, fastx.WithFillQuality(a.cfg.FillQuality))

	r := ports.RecordReader(dec)
	if ferr == nil {
		r = &replayReader{first: first, rest: dec}
	}
	if err := run(r, enc); err != nil {
		snk.Close()
		return err
	}
	return snk.Close()
}

// replayReader hands back an already-decoded record before resuming the
// underlying stream.
type replayReader struct {
	first domain.Record
	done  bool
	rest  ports.RecordReader
}

func (r *replayReader) Next() (domain.Record, error) {
	if !r.done {
		r.done = true
		return r.first, nil
	}
	return r.rest.Next()
}

// buildIndex assembles a selection index from positional arguments and an
// optional ids file. With useIndices the entries are zero-based record
// positions instead of identifiers.
func buildIndex(args []string, idsFile string, useIndices bool) (*domain.Index, error) {
	idx := domain.NewIndex()

	entries := append([]string(nil), args...)
	if idsFile != "" {
		fromFile, err := idfile.ReadIDs(idsFile)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fromFile...)
	}

	if !useIndices {
		idx.AddIDs(entries...)
		return idx, nil
	}

	positions := make([]int, 0, len(entries))
	for _, e := range entries {
		n, err := strconv.Atoi(e)
		if err != nil {
			return nil, err
		}
		positions = append(positions, n)
	}
	if err := idx.AddIndices(positions...); err != nil {
		return nil, err
	}
	return idx, nil
}
