package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/usecase"
)

func idsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ids",
		Short: "Print the identifier of every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, dec, err := a.openDecoder()
			if err != nil {
				return err
			}
			defer src.Close()

			return usecase.Ids(dec, cmd.OutOrStdout())
		},
	}
}
