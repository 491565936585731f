// Package source opens the byte stream behind a path-or-stdin argument and
// layers transparent decompression in front of it.
package source

import (
	"io"
	"os"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/infra/sniff"
)

// Source is a decompressed, read-once byte stream.
type Source struct {
	r    io.Reader
	file *os.File // nil when reading stdin
	Kind domain.CompressionKind
}

// Open returns a decompressed stream for path; "" or "-" selects stdin.
// Compression is detected from magic bytes, never the filename.
func Open(path string) (*Source, error) {
	var (
		raw  io.Reader
		file *os.File
	)
	if path == "" || path == "-" {
		raw = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, &domain.OpError{Op: "source.open", Kind: domain.KindIO, Err: err}
		}
		raw = f
		file = f
	}

	r, kind, err := sniff.Reader(raw)
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, err
	}
	return &Source{r: r, file: file, Kind: kind}, nil
}

func (s *Source) Read(p []byte) (int, error) { return s.r.Read(p) }

// Close releases the underlying file. Closing a stdin source is a no-op.
func (s *Source) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
