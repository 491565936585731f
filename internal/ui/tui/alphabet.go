package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alphabet selects the residue color scheme.
type Alphabet int

const (
	AlphabetNucleic Alphabet = iota
	AlphabetProtein
)

const nucleotides = "AaTtCcGgUu-"

// DetectAlphabet assumes nucleic acid unless any residue falls outside the
// nucleotide set.
func DetectAlphabet(seqs []string) Alphabet {
	for _, seq := range seqs {
		for _, c := range seq {
			if !strings.ContainsRune(nucleotides, c) {
				return AlphabetProtein
			}
		}
	}
	return AlphabetNucleic
}

// Colorize maps a residue to its display color, case-insensitively.
func (a Alphabet) Colorize(c rune) lipgloss.Color {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}

	if a == AlphabetNucleic {
		switch c {
		case 'A':
			return lipgloss.Color("1") // red
		case 'C':
			return lipgloss.Color("3") // yellow
		case 'G':
			return lipgloss.Color("4") // blue
		case 'T', 'U':
			return lipgloss.Color("2") // green
		default:
			return lipgloss.Color("7")
		}
	}

	switch c {
	case 'A', 'I', 'L', 'M', 'F', 'W', 'V':
		return lipgloss.Color("4") // hydrophobic: blue
	case 'K', 'R':
		return lipgloss.Color("1") // positive: red
	case 'E', 'D':
		return lipgloss.Color("5") // negative: magenta
	case 'N', 'Q', 'S', 'T':
		return lipgloss.Color("2") // polar: green
	case 'C':
		return lipgloss.Color("13")
	case 'G':
		return lipgloss.Color("9")
	case 'P':
		return lipgloss.Color("3")
	case 'H', 'Y':
		return lipgloss.Color("6") // aromatic: cyan
	default:
		return lipgloss.Color("7")
	}
}
