package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/usecase"
)

func freqsCmd(a *app) *cobra.Command {
	var perSequence bool

	cmd := &cobra.Command{
		Use:   "freqs",
		Short: "Tabulate residue frequencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, dec, err := a.openDecoder()
			if err != nil {
				return err
			}
			defer src.Close()

			if perSequence {
				return usecase.FreqsPerSequence(dec, cmd.OutOrStdout())
			}
			return usecase.Freqs(dec, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&perSequence, "per-sequence", "p", false, "report one frequency table per record")
	return cmd
}
