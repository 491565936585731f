package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/infra/fastx"
	"github.com/aalvaropc/seqtools/internal/infra/sink"
	"github.com/aalvaropc/seqtools/internal/usecase"
)

func convertCmd(a *app) *cobra.Command {
	var (
		to  string
		out string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between FASTA and FASTQ",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := domain.ParseFormat(to)
			if err != nil {
				return err
			}

			src, dec, err := a.openDecoder()
			if err != nil {
				return err
			}
			defer src.Close()

			snk, err := sink.Open(out)
			if err != nil {
				return err
			}
			enc := fastx.NewEncoder(snk, format, fastx.WithFillQuality(a.cfg.FillQuality))
			if err := usecase.Convert(dec, enc); err != nil {
				snk.Close()
				return err
			}
			return snk.Close()
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "fasta", "target format: fasta or fastq")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
