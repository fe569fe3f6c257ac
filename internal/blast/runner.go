// Package blast invokes the external alignment collaborator: it indexes
// the genome with makeblastdb and aligns the stx reference proteins
// with tblastn, returning the raw tabular hit lines. The call is
// blocking and returns a complete result set; the core never streams
// partial alignments.
package blast

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

// outFmt matches the parser's 10-column record layout:
// target id, subject id, target start/end/len, ref start/end/len,
// aligned target and reference sequences.
const outFmt = "6 sseqid qseqid sstart send slen qstart qend qlen sseq qseq"

// geneticCode is the NCBI translation table for the genome.
const geneticCode = 11

// Runner locates and drives the BLAST binaries.
type Runner struct {
	// BinDir overrides binary lookup; empty falls back to $BLAST_BIN,
	// then $PATH.
	BinDir string
	Log    *zap.Logger
}

func (r *Runner) prog(name string) string {
	dir := r.BinDir
	if dir == "" {
		dir = os.Getenv("BLAST_BIN")
	}
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

func (r *Runner) run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, r.prog(name), args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, out)
	}
	return nil
}

// Align indexes genomeFasta in tmpDir and runs tblastn with proteinDB
// as the query set, returning one line per alignment hit.
func (r *Runner) Align(ctx context.Context, proteinDB, genomeFasta, tmpDir string) ([]string, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	db := filepath.Join(tmpDir, "db")
	if err := r.run(ctx, "makeblastdb",
		"-in", genomeFasta,
		"-dbtype", "nucl",
		"-out", db,
		"-logfile", filepath.Join(tmpDir, "db.log"),
	); err != nil {
		return nil, err
	}
	log.Debug("genome database built", zap.String("db", db))

	blastOut := filepath.Join(tmpDir, "blast.tsv")
	if err := r.run(ctx, "tblastn",
		"-query", proteinDB,
		"-db", db,
		"-comp_based_stats", "0",
		"-evalue", "1e-10",
		"-seg", "no",
		"-max_target_seqs", "10000",
		"-word_size", "5",
		"-db_gencode", fmt.Sprint(geneticCode),
		"-outfmt", outFmt,
		"-out", blastOut,
	); err != nil {
		return nil, err
	}

	f, err := os.Open(blastOut)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	log.Debug("alignment finished", zap.Int("hits", len(lines)))
	return lines, nil
}
