package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/usecase"
	"github.com/aalvaropc/seqtools/internal/usecase/stats"
)

func lengthCmd(a *app) *cobra.Command {
	var (
		summary   bool
		histogram bool
	)

	cmd := &cobra.Command{
		Use:   "length",
		Short: "Report sequence lengths, optionally as summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, dec, err := a.openDecoder()
			if err != nil {
				return err
			}
			defer src.Close()

			if !summary && !histogram {
				return usecase.Lengths(dec, cmd.OutOrStdout())
			}

			lengths, err := usecase.CollectLengths(dec)
			if err != nil {
				return err
			}
			sum, err := stats.Summarize(lengths)
			if err != nil {
				return err
			}
			if histogram {
				fmt.Fprint(cmd.ErrOrStderr(), stats.Histogram(lengths, a.cfg.HistogramWidth))
				fmt.Fprintln(cmd.ErrOrStderr(), sum.Row())
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), sum.Column())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "print summary statistics instead of per-record lengths")
	cmd.Flags().BoolVarP(&histogram, "histogram", "t", false, "draw a length histogram on stderr")
	return cmd
}
