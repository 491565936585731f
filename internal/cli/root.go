// Package cli wires the seqtools commands together: flags, config, logging,
// and the streaming core.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/seqtools/internal/domain"
	"github.com/aalvaropc/seqtools/internal/infra/config"
	"github.com/aalvaropc/seqtools/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the global flags and resolved config shared by every
// subcommand.
type app struct {
	in      string
	debug   bool
	cfgPath string

	cfg        domain.Config
	logCleanup func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "seqtools",
		Short: "Work with FASTX files from the command line",
		Long: "Seqtools is a simple utility to work with FASTX files from the command line.\n" +
			"It seamlessly handles gzip, bzip2 and xz compressed input.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a.logCleanup, _ = logger.Setup(logger.Config{Debug: a.debug})

			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logCleanup != nil {
				_ = a.logCleanup()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return errors.New("you must specify a command, see --help")
		},
	}

	cmd.PersistentFlags().StringVarP(&a.in, "in", "i", "", "path to an input FASTX file (default: stdin)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable verbose logging to the seqtools log file")
	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a config.yaml (default: user config dir)")

	cmd.AddCommand(
		countCmd(a),
		lengthCmd(a),
		freqsCmd(a),
		idsCmd(a),
		convertCmd(a),
		selectCmd(a),
		renameCmd(a),
		addIDCmd(a),
		randomCmd(a),
		viewCmd(a),
		versionCmd(),
	)
	return cmd
}
