// Package cli holds the command-line options and their validation.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

// Options holds all CLI flags.
type Options struct {
	// Nucleotide is the input genome FASTA file (may be gzipped, "-"
	// for stdin).
	Nucleotide string
	// Name, when non-empty, is prepended as a "name" column to every
	// report row.
	Name string
	// Output is the report path; empty writes to stdout.
	Output string
	// BlastBin overrides the BLAST binary directory ($BLAST_BIN).
	BlastBin string
	// ProteinDB is the stx reference protein FASTA used as the tblastn
	// query set.
	ProteinDB string

	Verbose bool
	Version bool
}

// Validate checks flag consistency before any work happens.
func (o *Options) Validate() error {
	if o.Version {
		return nil
	}
	if o.Nucleotide == "" {
		return errors.New("a nucleotide FASTA file is required (--nucleotide)")
	}
	if o.ProteinDB == "" {
		return errors.New("a reference protein FASTA is required (--database)")
	}
	if strings.Contains(o.Name, "\t") {
		return fmt.Errorf("name %q cannot contain a tab character", o.Name)
	}
	return nil
}
