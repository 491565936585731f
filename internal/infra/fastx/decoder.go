// Package fastx implements streaming FASTA/FASTQ decoding and encoding.
//
// The decoder is a pull-based cursor: single-pass, forward-only, not
// restartable. The grammar is chosen once per stream from the leading sigil
// ('>' selects FASTA, '@' selects FASTQ) and never changes afterwards.
package fastx

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/ports"
)

var _ ports.RecordReader = (*Decoder)(nil)

// Decoder reads records from a decompressed byte stream. Errors are
// terminal: once Next returns a non-EOF error it keeps returning it.
type Decoder struct {
	r      *bufio.Reader
	format domain.Format

	pending    []byte // pushed-back FASTA header line
	hasPending bool

	line    int // lines consumed from the stream, 1-based
	yielded int // records yielded so far
	err     error
}

// NewDecoder returns a decoder over r. The format is unknown until the
// first record has been requested.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Format reports the detected stream format; empty before the first Next.
func (d *Decoder) Format() domain.Format { return d.format }

// Next produces the next record, io.EOF at end of stream, or a terminal
// parse error. An input that is empty or all blank lines yields io.EOF
// immediately: zero records is a valid outcome, not an error.
func (d *Decoder) Next() (domain.Record, error) {
	if d.err != nil {
		return domain.Record{}, d.err
	}

	rec, err := d.next()
	if err != nil && err != io.EOF {
		d.err = err
	}
	return rec, err
}

func (d *Decoder) next() (domain.Record, error) {
	header, err := d.nextHeader()
	if err != nil {
		return domain.Record{}, err
	}

	if d.format == "" {
		switch header[0] {
		case '>':
			d.format = domain.FormatFasta
		case '@':
			d.format = domain.FormatFastq
		default:
			return domain.Record{}, d.fail("fastx.detect", domain.KindUnknownFormat,
				fmt.Errorf("leading byte %q is neither '>' nor '@': %w", header[0], domain.ErrUnknownFormat))
		}
	}

	if d.format == domain.FormatFastq {
		return d.readFastq(header)
	}
	return d.readFasta(header)
}

// nextHeader discards blank lines and returns the first non-blank one.
func (d *Decoder) nextHeader() ([]byte, error) {
	for {
		line, err := d.readLine()
		if err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(line)) > 0 {
			return line, nil
		}
	}
}

// readFasta accumulates body lines until the next '>' header or end of
// stream. Arbitrarily wrapped bodies are allowed; a '@' or '+' inside the
// body is body, never a new record.
func (d *Decoder) readFasta(header []byte) (domain.Record, error) {
	if header[0] != '>' {
		return domain.Record{}, d.fail("fastx.fasta", domain.KindUnknownFormat,
			fmt.Errorf("record header %q does not start with '>': %w", trimForMessage(header), domain.ErrUnknownFormat))
	}

	id, desc, err := d.parseHeader(header)
	if err != nil {
		return domain.Record{}, err
	}

	var body []byte
	for {
		line, lerr := d.readLine()
		if lerr == io.EOF {
			break
		}
		if lerr != nil {
			return domain.Record{}, lerr
		}
		if len(line) > 0 && line[0] == '>' {
			d.pushBack(line)
			break
		}
		body = append(body, bytes.Join(bytes.Fields(line), nil)...)
	}

	d.yielded++
	return domain.Record{ID: id, Description: desc, Sequence: body}, nil
}

// readFastq consumes the strict 4-line grammar: header, sequence,
// separator, quality. No line wrapping.
func (d *Decoder) readFastq(header []byte) (domain.Record, error) {
	if header[0] != '@' {
		return domain.Record{}, d.fail("fastx.fastq", domain.KindUnknownFormat,
			fmt.Errorf("record header %q does not start with '@': %w", trimForMessage(header), domain.ErrUnknownFormat))
	}

	id, desc, err := d.parseHeader(header)
	if err != nil {
		return domain.Record{}, err
	}

	seqLine, err := d.requireLine()
	if err != nil {
		return domain.Record{}, err
	}
	sep, err := d.requireLine()
	if err != nil {
		return domain.Record{}, err
	}
	if len(sep) == 0 || sep[0] != '+' {
		return domain.Record{}, d.fail("fastx.fastq", domain.KindUnknownFormat,
			fmt.Errorf("separator line %q does not start with '+': %w", trimForMessage(sep), domain.ErrUnknownFormat))
	}
	qualLine, err := d.requireLine()
	if err != nil {
		return domain.Record{}, err
	}

	seq := bytes.TrimSpace(seqLine)
	qual := bytes.TrimSpace(qualLine)
	if len(seq) != len(qual) {
		return domain.Record{}, d.fail("fastx.fastq", domain.KindQualityLengthMismatch,
			fmt.Errorf("sequence is %d bases but quality is %d: %w", len(seq), len(qual), domain.ErrQualityLengthMismatch))
	}

	d.yielded++
	return domain.Record{ID: id, Description: desc, Sequence: seq, Quality: qual}, nil
}

// requireLine reads a line that the 4-line grammar makes mandatory; end of
// stream here means the record was cut off.
func (d *Decoder) requireLine() ([]byte, error) {
	line, err := d.readLine()
	if err == io.EOF {
		return nil, d.fail("fastx.fastq", domain.KindTruncatedRecord,
			fmt.Errorf("stream ended mid-record: %w", domain.ErrTruncatedRecord))
	}
	return line, err
}

// parseHeader splits a sigil line into id (first whitespace-delimited
// token) and description (the trimmed remainder).
func (d *Decoder) parseHeader(header []byte) (id, desc string, err error) {
	rest := strings.TrimSpace(string(header[1:]))
	if rest == "" {
		return "", "", d.fail("fastx.header", domain.KindMissingIdentifier,
			fmt.Errorf("header line has no identifier: %w", domain.ErrMissingIdentifier))
	}
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		return rest[:i], strings.TrimSpace(rest[i+1:]), nil
	}
	return rest, "", nil
}

// readLine returns the next line without its terminator, serving a pushed
// back line first. io.EOF is only returned with no data.
func (d *Decoder) readLine() ([]byte, error) {
	if d.hasPending {
		line := d.pending
		d.pending, d.hasPending = nil, false
		return line, nil
	}

	line, err := d.r.ReadBytes('\n')
	if len(line) > 0 {
		d.line++
	}
	line = bytes.TrimRight(line, "\r\n")

	if err == io.EOF {
		if len(line) == 0 {
			return nil, io.EOF
		}
		return line, nil
	}
	if err != nil {
		return nil, d.fail("fastx.read", domain.KindIO, err)
	}
	return line, nil
}

func (d *Decoder) pushBack(line []byte) {
	d.pending = line
	d.hasPending = true
}

// fail builds a terminal OpError carrying the current record ordinal and
// line number.
func (d *Decoder) fail(op string, kind domain.ErrorKind, err error) error {
	return &domain.OpError{
		Op:     op,
		Kind:   kind,
		Record: d.yielded + 1,
		Line:   d.line,
		Err:    err,
	}
}

func trimForMessage(line []byte) string {
	const max = 20
	s := string(line)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
