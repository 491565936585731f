package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/ports"
	"github.com/aalvaropc/seqtools/internal/usecase"
)

func selectCmd(a *app) *cobra.Command {
	var (
		useIndices bool
		idsFile    string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "select [IDS...]",
		Short: "Keep only the records named by id or position",
		RunE: func(_ *cobra.Command, args []string) error {
			idx, err := buildIndex(args, idsFile, useIndices)
			if err != nil {
				return err
			}
			return a.streamPreserving(out, func(r ports.RecordReader, w ports.RecordWriter) error {
				return usecase.Select(r, w, idx)
			})
		},
	}

	cmd.Flags().BoolVarP(&useIndices, "use-indices", "n", false, "treat the arguments as zero-based record positions")
	cmd.Flags().StringVarP(&idsFile, "ids-file", "f", "", "file with one id (or position) per line")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
