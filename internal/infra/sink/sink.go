// Package sink opens the byte stream behind a path-or-stdout argument.
// Output is buffered; Close flushes on every exit path. Stdout is flushed
// but never closed.
package sink

import (
	"bufio"
	"os"

	"github.com/aalvaropc/seqtools/internal/domain"
)

type Sink struct {
	w    *bufio.Writer
	file *os.File // nil when writing stdout
}

// Open returns a buffered writer for path; "" or "-" selects stdout. Named
// files are truncated.
func Open(path string) (*Sink, error) {
	if path == "" || path == "-" {
		return &Sink{w: bufio.NewWriter(os.Stdout)}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, &domain.OpError{Op: "sink.open", Kind: domain.KindIO, Err: err}
	}
	return &Sink{w: bufio.NewWriter(f), file: f}, nil
}

func (s *Sink) Write(p []byte) (int, error) { return s.w.Write(p) }

// Close flushes buffered output and closes the file, if any. The flush
// error wins over the close error so a full disk is reported as such.
func (s *Sink) Close() error {
	ferr := s.w.Flush()
	if s.file != nil {
		cerr := s.file.Close()
		if ferr == nil {
			ferr = cerr
		}
	}
	if ferr != nil {
		return &domain.OpError{Op: "sink.close", Kind: domain.KindIO, Err: ferr}
	}
	return nil
}
