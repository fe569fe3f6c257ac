package align

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// MergeFrameshifts detects consecutive same-locus hits whose reading
// frames differ and folds each run of fragments into one hit
// representing a frameshifted gene. A single left-to-right pass over
// hits sorted by (contig, strand, accession, target start) suffices:
// the absorbing hit keeps its own sort key, so merges may chain without
// re-sorting. Absorbed fragments are marked Reported and drop out of
// every later stage.
func MergeFrameshifts(hits []*Hit, log *zap.Logger) error {
	sort.SliceStable(hits, func(i, j int) bool { return FrameshiftLess(hits[i], hits[j]) })

	var prev *Hit
	for _, h := range hits {
		if prev != nil &&
			h.TargetName == prev.TargetName &&
			h.TargetStrand == prev.TargetStrand &&
			h.RefAccession == prev.RefAccession &&
			h.TargetStart > prev.TargetStart &&
			h.TargetStart-prev.TargetEnd < frameshiftGapMax &&
			h.Frame() != prev.Frame() {
			h.Merge(prev)
			if err := h.Validate(); err != nil {
				return fmt.Errorf("merged frameshift hit: %w", err)
			}
			prev.Reported = true
			log.Debug("merged frameshift fragment",
				zap.String("contig", h.TargetName),
				zap.String("ref", h.RefAccession),
				zap.Int("start", h.TargetStart),
				zap.Int("end", h.TargetEnd))
		}
		prev = h
	}
	return nil
}
