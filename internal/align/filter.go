package align

import (
	"sort"

	"go.uber.org/zap"
)

// FilterRedundant keeps, among hits of the same contig/strand/class/
// subunit that mutually overlap, only the non-dominated ones. A hit is
// dominated when its target range is fully contained in an earlier
// hit's range and its diff score is no better. Hits already consumed by
// the frameshift merge are excluded. The surviving "good hits" slice is
// what operon assembly works on, in SameTypeLess order.
func FilterRedundant(hits []*Hit, log *zap.Logger) []*Hit {
	sort.SliceStable(hits, func(i, j int) bool { return SameTypeLess(hits[i], hits[j]) })

	good := make([]*Hit, 0, len(hits))
	start := 0
	for i, h := range hits {
		// Slide the window past hits that can no longer overlap h.
		for start < i {
			w := hits[start]
			if w.TargetName == h.TargetName &&
				w.TargetStrand == h.TargetStrand &&
				w.StxClass == h.StxClass &&
				w.Subunit == h.Subunit &&
				w.TargetEnd > h.TargetStart {
				break
			}
			start++
		}
		if h.Reported {
			// Reported hits sort last, nothing further survives.
			break
		}
		suppressed := false
		for j := start; j < i; j++ {
			w := hits[j]
			if h.InsideEq(w) && h.Diff() >= w.Diff() {
				suppressed = true
				break
			}
		}
		if suppressed {
			log.Debug("suppressed contained hit",
				zap.String("contig", h.TargetName),
				zap.String("ref", h.RefAccession),
				zap.Int("start", h.TargetStart),
				zap.Int("end", h.TargetEnd))
			continue
		}
		good = append(good, h)
	}
	return good
}
