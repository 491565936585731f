package usecase

import (
	"fmt"
	"math/rand/v2"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/ports"
)

// RandomParams controls synthetic sequence generation.
type RandomParams struct {
	Num      int
	Len      float64 // mean length
	Std      float64 // standard deviation of lengths
	Molecule domain.Molecule
}

// Random writes Num synthetic records with normally distributed lengths and
// ids S0..S{n-1}, and returns the generated lengths so the caller can
// report their distribution.
func Random(w ports.RecordWriter, p RandomParams, rng *rand.Rand) ([]int, error) {
	charset := p.Molecule.Charset()
	lengths := make([]int, 0, p.Num)

	for i := 0; i < p.Num; i++ {
		n := int(rng.NormFloat64()*p.Std + p.Len)
		if n < 0 {
			n = 0
		}
		lengths = append(lengths, n)

		seq := make([]byte, n)
		for j := range seq {
			seq[j] = charset[rng.IntN(len(charset))]
		}

		rec := domain.Record{ID: fmt.Sprintf("S%d", i), Sequence: seq}
		if err := w.Write(rec); err != nil {
			return lengths, err
		}
	}
	return lengths, nil
}
