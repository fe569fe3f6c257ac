// Package app is the composition root: it wires the genome
// preparation, the BLAST collaborator, the interpretation pipeline, and
// the report writer into one run.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"stxscan/internal/blast"
	"stxscan/internal/cli"
	"stxscan/internal/fasta"
	"stxscan/internal/output"
	"stxscan/internal/pipeline"
)

// RunContext executes one genome's run to completion. Each run owns its
// hit and operon collections; nothing is shared across runs.
func RunContext(ctx context.Context, opts cli.Options, log *zap.Logger, stdout io.Writer) error {
	tmpDir, err := os.MkdirTemp("", "stxscan-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	flat, nSeq, err := fasta.Flatten(opts.Nucleotide, tmpDir)
	if err != nil {
		return fmt.Errorf("reading genome: %w", err)
	}
	log.Debug("genome flattened", zap.String("path", flat), zap.Int("records", nSeq))

	runner := &blast.Runner{BinDir: opts.BlastBin, Log: log}
	lines, err := runner.Align(ctx, opts.ProteinDB, flat, tmpDir)
	if err != nil {
		return fmt.Errorf("running alignment: %w", err)
	}

	calls, err := pipeline.Run(pipeline.Config{Log: log}, lines)
	if err != nil {
		return err
	}

	w := stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	return output.Write(w, calls, opts.Name)
}
