package sniff

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"github.com/aalvaropc/seqtools/internal/domain"
)

const plaintext = ">Seq1 first\nACGTACGT\n>Seq2\nTTTTCCCC\n"

// The same plaintext compressed with the reference bzip2 tool; the stdlib
// only decompresses, so the fixture is embedded.
var bzip2Fixture = []byte{
	66, 90, 104, 57, 49, 65, 89, 38, 83, 89, 243, 16, 106, 43, 0, 0,
	4, 223, 128, 64, 16, 64, 0, 48, 1, 40, 128, 12, 0, 3, 32, 60,
	0, 32, 0, 49, 77, 50, 49, 49, 49, 4, 169, 160, 122, 141, 0, 39,
	139, 121, 46, 8, 163, 40, 39, 34, 57, 76, 12, 87, 38, 119, 179, 157,
	247, 197, 220, 145, 78, 20, 36, 60, 196, 26, 138, 192,
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func xzed(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write([]byte(s)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	return buf.Bytes()
}

func TestDetect_Plain(t *testing.T) {
	kind, br, err := Detect(strings.NewReader(plaintext))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != domain.CompressionNone {
		t.Fatalf("kind = %s, want none", kind)
	}
	// The peeked bytes must be replayed, not lost.
	got, err := io.ReadAll(br)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != plaintext {
		t.Fatalf("replayed stream differs: %q", got)
	}
}

func TestDetect_ShortInputIsNone(t *testing.T) {
	for _, in := range []string{"", ">", "AC"} {
		kind, br, err := Detect(strings.NewReader(in))
		if err != nil {
			t.Fatalf("Detect(%q): unexpected error: %v", in, err)
		}
		if kind != domain.CompressionNone {
			t.Fatalf("Detect(%q) = %s, want none", in, kind)
		}
		got, _ := io.ReadAll(br)
		if string(got) != in {
			t.Fatalf("Detect(%q) lost bytes: %q", in, got)
		}
	}
}

func TestDetect_Zstd_Unsupported(t *testing.T) {
	in := append([]byte{0x28, 0xb5, 0x2f, 0xfd}, []byte("....")...)
	_, _, err := Detect(bytes.NewReader(in))
	if !errors.Is(err, domain.ErrUnsupportedCompression) {
		t.Fatalf("expected ErrUnsupportedCompression, got %v", err)
	}
}

func TestReader_Transparency(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		kind domain.CompressionKind
	}{
		{"plain", []byte(plaintext), domain.CompressionNone},
		{"gzip", gzipped(t, plaintext), domain.CompressionGzip},
		{"bzip2", bzip2Fixture, domain.CompressionBzip2},
		{"xz", xzed(t, plaintext), domain.CompressionXz},
	}
	for _, c := range cases {
		r, kind, err := Reader(bytes.NewReader(c.data))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if kind != c.kind {
			t.Errorf("%s: kind = %s, want %s", c.name, kind, c.kind)
		}
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("%s: read: %v", c.name, err)
		}
		if string(got) != plaintext {
			t.Errorf("%s: decompressed %q, want %q", c.name, got, plaintext)
		}
	}
}
