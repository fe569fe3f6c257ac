package operon

import (
	"sort"

	"go.uber.org/zap"

	"stxscan/internal/align"
)

// Resolve collapses overlapping operon calls and promotes leftover
// single-subunit hits to singleton calls, so that each genomic locus
// yields exactly one reported call.
//
// Paired operons are taken best-identity-first; an operon is dropped
// when an already accepted one on the same contig covers its range
// (widened by slack) with equal or better identity. Then any good hit
// still unreported becomes a singleton, after marking as consumed every
// later unreported hit contained in it that shares its type's first
// character or scores no better.
func Resolve(ops []*Operon, good []*align.Hit, log *zap.Logger) []*Operon {
	sort.SliceStable(ops, func(i, j int) bool { return less(ops[i], ops[j]) })

	keep := make([]*Operon, 0, len(ops))
	for _, op := range ops {
		covered := false
		for _, g := range keep {
			if op.L.TargetName == g.L.TargetName &&
				op.InsideEq(g) &&
				g.Identity() >= op.Identity() {
				covered = true
				break
			}
		}
		if covered {
			log.Debug("dropped covered operon",
				zap.String("contig", op.L.TargetName),
				zap.Int("start", op.L.TargetStart),
				zap.Int("end", op.R.TargetEnd))
			continue
		}
		keep = append(keep, op)
	}

	sort.SliceStable(good, func(i, j int) bool { return align.ReportLess(good[i], good[j]) })
	for i, h := range good {
		if h.Reported {
			continue
		}
		h.Reported = true
		keep = append(keep, &Operon{L: h})
		for j := i + 1; j < len(good); j++ {
			o := good[j]
			if o.TargetName != h.TargetName || o.TargetStrand != h.TargetStrand {
				break
			}
			if !o.Reported && o.InsideEq(h) &&
				(o.StxType[0] == h.StxType[0] || o.Diff() >= h.Diff()) {
				o.Reported = true
			}
		}
	}

	sort.SliceStable(keep, func(i, j int) bool { return ReportLess(keep[i], keep[j]) })
	return keep
}
