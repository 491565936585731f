package cli

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/infra/logger"
	"github.com/aalvaropc/seqtools/internal/ui/tui"
)

func viewCmd(a *app) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse records in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			src, dec, err := a.openDecoder()
			if err != nil {
				return err
			}
			defer src.Close()

			var records []domain.Record
			for {
				rec, err := dec.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				records = append(records, rec)
			}

			if title == "" {
				title = "stdin"
				if a.in != "" && a.in != "-" {
					title = filepath.Base(a.in)
				}
			}
			return tui.Run(tui.Deps{Logger: logger.L(), Debug: a.debug}, title, records)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "title shown above the records (default: input file name)")
	return cmd
}
