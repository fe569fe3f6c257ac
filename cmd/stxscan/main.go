package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stxscan/internal/app"
	"stxscan/internal/cli"
	"stxscan/internal/version"
)

var (
	opts   cli.Options
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stxscan",
	Short: "Determine the stx operon type(s) of a genome assembly",
	Long: `stxscan aligns a genome assembly against a curated set of
Shiga-toxin subunit reference proteins and reports, per genomic locus,
the stx type and the structural state of the operon (complete, partial,
frameshifted, interrupted, or truncated at a contig end) as a
deterministic tab-separated table.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if opts.Verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if opts.Version {
			fmt.Fprintf(cmd.OutOrStdout(), "stxscan version %s\n", version.Version)
			return nil
		}
		if err := opts.Validate(); err != nil {
			return err
		}
		return app.RunContext(cmd.Context(), opts, logger, cmd.OutOrStdout())
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.Nucleotide, "nucleotide", "n", "", "input nucleotide FASTA file (can be gzipped, '-' for stdin)")
	f.StringVarP(&opts.ProteinDB, "database", "d", "", "stx reference protein FASTA")
	f.StringVar(&opts.Name, "name", "", "text added as the first column \"name\" to all report rows")
	f.StringVarP(&opts.Output, "output", "o", "", "write the report to a file instead of stdout")
	f.StringVar(&opts.BlastBin, "blast-bin", "", "directory holding the BLAST binaries (default: $BLAST_BIN, then $PATH)")
	rootCmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "enable debug logging")
	f.BoolVarP(&opts.Version, "version", "v", false, "print the version and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
