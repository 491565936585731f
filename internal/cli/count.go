package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/infra/logger"
	"github.com/aalvaropc/seqtools/internal/usecase"
)

func countCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count the number of sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, dec, err := a.openDecoder()
			if err != nil {
				return err
			}
			defer src.Close()

			n, err := usecase.Count(dec)
			if err != nil {
				return err
			}
			logger.L().Info("count.done", "records", n)
			fmt.Fprintf(cmd.OutOrStdout(), "%d sequences\n", n)
			return nil
		},
	}
}
