// Package sniff selects a transparent decompression filter by inspecting
// the first bytes of a stream. Filename extensions are never consulted.
package sniff

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"github.com/aalvaropc/seqtools/internal/domain"
)

// peekLen covers the longest supported magic (xz, 6 bytes).
const peekLen = 6

var (
	magicGzip  = []byte{0x1f, 0x8b}
	magicBzip2 = []byte{0x42, 0x5a, 0x68}
	magicXz    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}

	// Recognized but unsupported: fail loudly instead of handing compressed
	// bytes to the decoder as if they were text.
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Detect peeks at r and classifies its compression. The returned reader
// replays the peeked bytes; no input is lost. Streams shorter than the peek
// window classify as CompressionNone and are left for the decoder to report.
func Detect(r io.Reader) (domain.CompressionKind, *bufio.Reader, error) {
	br := bufio.NewReader(r)

	prefix, err := br.Peek(peekLen)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return domain.CompressionNone, br, &domain.OpError{Op: "sniff.detect", Kind: domain.KindIO, Err: err}
	}

	switch {
	case bytes.HasPrefix(prefix, magicGzip):
		return domain.CompressionGzip, br, nil
	case bytes.HasPrefix(prefix, magicBzip2):
		return domain.CompressionBzip2, br, nil
	case bytes.HasPrefix(prefix, magicXz):
		return domain.CompressionXz, br, nil
	case bytes.HasPrefix(prefix, magicZstd):
		return domain.CompressionNone, br, &domain.OpError{
			Op:   "sniff.detect",
			Kind: domain.KindUnsupportedCompression,
			Err:  fmt.Errorf("zstd input: %w", domain.ErrUnsupportedCompression),
		}
	default:
		return domain.CompressionNone, br, nil
	}
}

// Reader wraps r with the filter Detect selected and reports which kind it
// chose. The caller reads plaintext regardless of the source encoding.
func Reader(r io.Reader) (io.Reader, domain.CompressionKind, error) {
	kind, br, err := Detect(r)
	if err != nil {
		return nil, kind, err
	}

	switch kind {
	case domain.CompressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, kind, &domain.OpError{Op: "sniff.gzip", Kind: domain.KindIO, Err: err}
		}
		return zr, kind, nil
	case domain.CompressionBzip2:
		return bzip2.NewReader(br), kind, nil
	case domain.CompressionXz:
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, kind, &domain.OpError{Op: "sniff.xz", Kind: domain.KindIO, Err: err}
		}
		return xr, kind, nil
	default:
		return br, kind, nil
	}
}
