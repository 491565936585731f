package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/ports"
	"github.com/aalvaropc/seqtools/internal/usecase"
)

func addIDCmd(a *app) *cobra.Command {
	var (
		prefix     string
		useIndices bool
		idsFile    string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "add-id [IDS...]",
		Short: "Prefix record identifiers, optionally only for selected records",
		RunE: func(_ *cobra.Command, args []string) error {
			idx, err := buildIndex(args, idsFile, useIndices)
			if err != nil {
				return err
			}
			return a.streamPreserving(out, func(r ports.RecordReader, w ports.RecordWriter) error {
				return usecase.AddID(r, w, prefix, idx)
			})
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "string to prepend to each identifier")
	cmd.MarkFlagRequired("prefix")
	cmd.Flags().BoolVarP(&useIndices, "use-indices", "n", false, "treat the arguments as zero-based record positions")
	cmd.Flags().StringVarP(&idsFile, "ids-file", "f", "", "file with one id (or position) per line")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
