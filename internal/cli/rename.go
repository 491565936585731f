package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/infra/idfile"
	"github.com/aalvaropc/seqtools/internal/ports"
	"github.com/aalvaropc/seqtools/internal/usecase"
)

func renameCmd(a *app) *cobra.Command {
	var (
		mapFile string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "rename [OLD=NEW...]",
		Short: "Rewrite record identifiers from OLD=NEW pairs",
		RunE: func(_ *cobra.Command, args []string) error {
			idx := domain.NewIndex()
			for _, arg := range args {
				old, replacement, err := domain.ParseRenamePair(arg)
				if err != nil {
					return err
				}
				if err := idx.AddRename(old, replacement); err != nil {
					return err
				}
			}
			if mapFile != "" {
				if err := idfile.ReadRenames(mapFile, idx); err != nil {
					return err
				}
			}
			return a.streamPreserving(out, func(r ports.RecordReader, w ports.RecordWriter) error {
				return usecase.Rename(r, w, idx)
			})
		},
	}

	cmd.Flags().StringVarP(&mapFile, "map-file", "f", "", "file with one OLD=NEW (or tab-separated) pair per line")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
