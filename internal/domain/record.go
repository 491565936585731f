package domain

import (
	"fmt"
	"strings"
)

// Format identifies the sequence file grammar. It is detected once per
// stream from the leading sigil and threaded explicitly; mixed-format
// streams are malformed input.
type Format string

const (
	FormatFasta Format = "fasta"
	FormatFastq Format = "fastq"
)

// ParseFormat accepts the user-facing spellings of a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fasta", "fa":
		return FormatFasta, nil
	case "fastq", "fq":
		return FormatFastq, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected fasta|fastq)", s)
	}
}

// Sigil returns the header prefix character for the format.
func (f Format) Sigil() byte {
	if f == FormatFastq {
		return '@'
	}
	return '>'
}

// CompressionKind identifies the transparent decompression filter selected
// by magic-byte sniffing. Filename extensions are never consulted.
type CompressionKind string

const (
	CompressionNone  CompressionKind = "none"
	CompressionGzip  CompressionKind = "gzip"
	CompressionBzip2 CompressionKind = "bzip2"
	CompressionXz    CompressionKind = "xz"
)

// Record is one sequence entry. Quality is nil for FASTA records (absent,
// not empty). Records are constructed by the decoder and immutable once
// yielded; ownership passes to whichever consumer receives them.
type Record struct {
	ID          string
	Description string
	Sequence    []byte
	Quality     []byte
}

// HasQuality reports whether the record carries a quality string.
func (r Record) HasQuality() bool { return r.Quality != nil }

// Validate checks the structural invariants: a non-empty identifier, and a
// quality string (when present) as long as the sequence.
func (r Record) Validate() error {
	if r.ID == "" {
		return &OpError{Op: "record.validate", Kind: KindMissingIdentifier, Err: ErrMissingIdentifier}
	}
	if r.Quality != nil && len(r.Quality) != len(r.Sequence) {
		return &OpError{
			Op:   "record.validate",
			Kind: KindQualityLengthMismatch,
			Err:  fmt.Errorf("sequence is %d bases but quality is %d: %w", len(r.Sequence), len(r.Quality), ErrQualityLengthMismatch),
		}
	}
	return nil
}

// Molecule selects the residue charset for synthetic sequence generation.
type Molecule string

const (
	MoleculeDNA     Molecule = "dna"
	MoleculeRNA     Molecule = "rna"
	MoleculeProtein Molecule = "protein"
)

// ParseMolecule accepts the user-facing spellings of a molecule name.
func ParseMolecule(s string) (Molecule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dna":
		return MoleculeDNA, nil
	case "rna":
		return MoleculeRNA, nil
	case "protein", "aa":
		return MoleculeProtein, nil
	default:
		return "", fmt.Errorf("unsupported sequence type %q (expected dna|rna|protein)", s)
	}
}

// Charset returns the residue alphabet used when generating sequences.
func (m Molecule) Charset() []byte {
	switch m {
	case MoleculeRNA:
		return []byte("ACGU")
	case MoleculeProtein:
		return []byte("ACDEFGHIKLMNPQRSTVWY")
	default:
		return []byte("ACGT")
	}
}
