// Package pipeline runs the alignment-interpretation engine end to end:
// parse -> merge frameshifts -> filter redundant hits -> assemble
// operons -> resolve redundancy -> deterministic call list. The whole
// run is purely sequential; all collections are owned by the run and
// discarded with it.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"stxscan/internal/align"
	"stxscan/internal/operon"
)

// Config is the immutable per-run configuration.
type Config struct {
	// Log receives stage-by-stage debug traces; nil disables tracing.
	Log *zap.Logger
}

// Run turns raw tabular alignment lines into the final ordered call
// list. Blank lines are ignored; any malformed line aborts the run
// before output.
func Run(cfg Config, lines []string) ([]*operon.Operon, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	hits := make([]*align.Hit, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		h, err := align.ParseHit(line)
		if err != nil {
			return nil, fmt.Errorf("parsing alignments: %w", err)
		}
		hits = append(hits, h)
	}
	log.Debug("parsed alignment hits", zap.Int("hits", len(hits)))

	if err := align.MergeFrameshifts(hits, log); err != nil {
		return nil, err
	}

	good := align.FilterRedundant(hits, log)
	log.Debug("good hits after redundancy filter", zap.Int("hits", len(good)))

	ops := operon.AssembleAll(good, log)
	log.Debug("assembled operons", zap.Int("operons", len(ops)))

	calls := operon.Resolve(ops, good, log)
	log.Debug("final calls", zap.Int("calls", len(calls)))
	return calls, nil
}
