package operon

import (
	"sort"

	"go.uber.org/zap"

	"stxscan/internal/align"
)

// Pass is one strictness tier of operon assembly.
type Pass struct {
	// SameClass restricts candidate pairs to a shared stx class.
	SameClass bool
	// Strong demands the combined identity meet both subunits' class
	// thresholds and keeps the intergenic gap at IntergenicMax; a weak
	// pass waives the identity requirement and doubles the gap.
	Strong bool
}

// Passes is the fixed assembly schedule, strictness decreasing. Later
// passes only see hits left unreported by earlier ones.
var Passes = []Pass{
	{SameClass: true, Strong: true},
	{SameClass: false, Strong: true},
	{SameClass: false, Strong: false},
}

// Assemble runs one pass over good, which must be sorted so that hits
// of one contig/strand group are contiguous with A subunits before B
// subunits (SameTypeLess for the same-class pass, Less otherwise). For
// each unreported B hit it scans back through unreported A hits of the
// same group and accepts the pair when A's end precedes B's start
// within the pass's intergenic gap. Accepted pairs are appended to ops
// and both hits marked reported; afterwards every unreported hit whose
// range falls inside an accepted operon (widened by slack) is
// suppressed as covered.
func Assemble(good []*align.Hit, ops []*Operon, p Pass, log *zap.Logger) []*Operon {
	gapMax := align.IntergenicMax
	if !p.Strong {
		gapMax *= 2
	}

	start := 0
	for i, hb := range good {
		if hb.Reported {
			continue
		}
		if hb.Subunit != 'B' {
			continue
		}
		for start < i {
			w := good[start]
			if w.TargetName == hb.TargetName &&
				w.TargetStrand == hb.TargetStrand &&
				(!p.SameClass || w.StxClass == hb.StxClass) {
				break
			}
			start++
		}
		for j := start; j < i; j++ {
			ha := good[j]
			if ha.Reported {
				continue
			}
			if ha.Subunit == hb.Subunit {
				// A subunits sort first; past them only B's remain.
				break
			}
			l, r := ha, hb
			if !l.TargetStrand {
				l, r = r, l
			}
			if l.TargetEnd > r.TargetStart || r.TargetStart-l.TargetEnd > gapMax {
				continue
			}
			op := &Operon{L: l, R: r}
			if p.Strong &&
				(op.Identity() < align.ClassIdentityMin[l.StxClass] ||
					op.Identity() < align.ClassIdentityMin[r.StxClass]) {
				continue
			}
			ops = append(ops, op)
			l.Reported = true
			r.Reported = true
			log.Debug("accepted operon",
				zap.String("contig", l.TargetName),
				zap.Int("start", l.TargetStart),
				zap.Int("end", r.TargetEnd),
				zap.Bool("sameClass", p.SameClass),
				zap.Bool("strong", p.Strong),
				zap.Float64("identity", op.Identity()))
			break
		}
	}

	// Suppress leftover single-subunit hits now covered by an operon.
	for _, h := range good {
		if h.Reported {
			continue
		}
		for _, op := range ops {
			if h.TargetName == op.L.TargetName &&
				h.TargetStrand == op.L.TargetStrand &&
				h.TargetStart+align.Slack >= op.L.TargetStart &&
				h.TargetEnd <= op.R.TargetEnd+align.Slack {
				h.Reported = true
				break
			}
		}
	}
	return ops
}

// AssembleAll runs the three passes in order over good, grouping by
// class for the first pass and re-sorting without the class key for the
// cross-class passes.
func AssembleAll(good []*align.Hit, log *zap.Logger) []*Operon {
	var ops []*Operon
	sort.SliceStable(good, func(i, j int) bool { return align.SameTypeLess(good[i], good[j]) })
	ops = Assemble(good, ops, Passes[0], log)
	sort.SliceStable(good, func(i, j int) bool { return align.Less(good[i], good[j]) })
	ops = Assemble(good, ops, Passes[1], log)
	ops = Assemble(good, ops, Passes[2], log)
	return ops
}
