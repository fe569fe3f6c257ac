// Package operon assembles A+B subunit hit pairs into stx operon calls,
// collapses redundant calls, and refines the final stx type and
// structural status.
package operon

import "stxscan/internal/align"

// Operon is one reported call: a left hit and an optional right hit on
// the same contig and strand with L.TargetEnd < R.TargetStart. On the
// plus strand the left hit is subunit A; on the minus strand it is B.
// A singleton call has R == nil. An Operon is a read-only view over
// hits owned by the run-wide collection; it is never mutated after
// creation.
type Operon struct {
	L *align.Hit
	R *align.Hit
}

// A returns the subunit-A side, regardless of strand.
func (o *Operon) A() *align.Hit {
	if o.L.TargetStrand {
		return o.L
	}
	return o.R
}

// B returns the subunit-B side, regardless of strand.
func (o *Operon) B() *align.Hit {
	if o.L.TargetStrand {
		return o.R
	}
	return o.L
}

// Paired reports whether both subunits are present.
func (o *Operon) Paired() bool { return o.R != nil }

// Identity is the combined aligned-column identity of both subunits.
func (o *Operon) Identity() float64 {
	return float64(o.L.NIdent+o.R.NIdent) / float64(o.L.Length+o.R.Length)
}

// RefAccession2 is the right hit's accession, or "" for a singleton.
func (o *Operon) RefAccession2() string {
	if o.R == nil {
		return ""
	}
	return o.R.RefAccession
}

// InsideEq reports whether o's target range lies within other's range
// widened by the slack tolerance on each side, on the same strand.
func (o *Operon) InsideEq(other *Operon) bool {
	return o.L.TargetStrand == other.L.TargetStrand &&
		o.L.TargetStart+align.Slack >= other.L.TargetStart &&
		o.R.TargetEnd <= other.R.TargetEnd+align.Slack
}

// less orders paired operons for redundancy resolution: per contig,
// best combined identity first, accessions as deterministic tie-break.
func less(a, b *Operon) bool {
	if a.L.TargetName != b.L.TargetName {
		return a.L.TargetName < b.L.TargetName
	}
	if i1, i2 := a.Identity(), b.Identity(); i1 != i2 {
		return i1 > i2
	}
	if a.L.RefAccession != b.L.RefAccession {
		return a.L.RefAccession < b.L.RefAccession
	}
	return a.RefAccession2() < b.RefAccession2()
}

// ReportLess is the final deterministic output order: (contig, target
// start, target end, plus strand before minus, left accession,
// singletons before pairs, right accession).
func ReportLess(a, b *Operon) bool {
	if a.L.TargetName != b.L.TargetName {
		return a.L.TargetName < b.L.TargetName
	}
	if a.L.TargetStart != b.L.TargetStart {
		return a.L.TargetStart < b.L.TargetStart
	}
	if a.L.TargetEnd != b.L.TargetEnd {
		return a.L.TargetEnd < b.L.TargetEnd
	}
	if a.L.TargetStrand != b.L.TargetStrand {
		return a.L.TargetStrand && !b.L.TargetStrand
	}
	if a.L.RefAccession != b.L.RefAccession {
		return a.L.RefAccession < b.L.RefAccession
	}
	if a.Paired() != b.Paired() {
		return !a.Paired() && b.Paired()
	}
	return a.RefAccession2() < b.RefAccession2()
}
