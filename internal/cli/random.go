package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/infra/fastx"
	"github.com/aalvaropc/seqtools/internal/infra/sink"
	"github.com/aalvaropc/seqtools/internal/usecase"
	"github.com/aalvaropc/seqtools/internal/usecase/stats"
)

func randomCmd(a *app) *cobra.Command {
	var (
		num     int
		length  float64
		std     float64
		seqType string
		format  string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random sequences with normally distributed lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("num") {
				num = a.cfg.Random.Num
			}
			if !cmd.Flags().Changed("len") {
				length = a.cfg.Random.Len
			}
			if !cmd.Flags().Changed("std") {
				std = a.cfg.Random.Std
			}

			mol, err := domain.ParseMolecule(seqType)
			if err != nil {
				return err
			}
			f, err := domain.ParseFormat(format)
			if err != nil {
				return err
			}

			snk, err := sink.Open(out)
			if err != nil {
				return err
			}
			enc := fastx.NewEncoder(snk, f, fastx.WithFillQuality(a.cfg.FillQuality))

			rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			lengths, err := usecase.Random(enc, usecase.RandomParams{
				Num:      num,
				Len:      length,
				Std:      std,
				Molecule: mol,
			}, rng)
			if err != nil {
				snk.Close()
				return err
			}
			if err := snk.Close(); err != nil {
				return err
			}

			if std > 0 && len(lengths) > 0 {
				sum, err := stats.Summarize(lengths)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.ErrOrStderr(), stats.Histogram(lengths, a.cfg.HistogramWidth))
				fmt.Fprintln(cmd.ErrOrStderr(), sum.Row())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&num, "num", "n", 0, "number of sequences to generate")
	cmd.Flags().Float64VarP(&length, "len", "l", 0, "mean sequence length")
	cmd.Flags().Float64VarP(&std, "std", "s", 0, "standard deviation of the sequence length")
	cmd.Flags().StringVarP(&seqType, "sequence-type", "t", "dna", "residue alphabet: dna, rna or protein")
	cmd.Flags().StringVarP(&format, "format", "f", "fasta", "output format: fasta or fastq")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
