// Package align models protein-vs-genome alignment hits against the stx
// reference set and the per-hit passes that run before operon assembly:
// parsing, frameshift merging, and redundancy filtering.
package align

import "fmt"

// Fixed geometry parameters shared by the per-hit passes and operon
// assembly. intergenicMax is the largest intergenic region observed in
// the reference set plus 2.
const (
	IntergenicMax = 36
	Slack         = 30

	// frameshiftGapMax bounds the target-side gap between two fragments
	// of one frameshifted gene (same order as a codon).
	frameshiftGapMax = 10

	// endDelta is how close to a contig end an alignment may stop and
	// still count as truncated by the contig boundary.
	endDelta = 3

	// missedMax is the window near a contig end in which the missing
	// partner subunit could plausibly have fallen off the contig:
	// intergenic region plus a minimal 20-codon domain.
	missedMax = IntergenicMax + 3*20
)

// ClassIdentityMin maps an stx class to the minimum operon identity for
// a COMPLETE (non-novel) call. Fixed configuration, not user-tunable.
var ClassIdentityMin = map[string]float64{
	"1a": 0.983,
	"1c": 0.983,
	"1d": 0.983,
	"1e": 0.983,
	"2":  0.98,
	"2b": 0.98,
	"2e": 0.98,
	"2f": 0.98,
	"2g": 0.98,
	"2h": 0.98,
	"2i": 0.98,
	"2j": 0.98,
	"2k": 0.985,
	"2l": 0.985,
	"2m": 0.98,
	"2n": 0.98,
	"2o": 0.98,
}

// Hit is one alignment between a genomic region and a reference subunit
// protein. Coordinates are 0-based half-open with TargetStart < TargetEnd
// regardless of strand. After construction a Hit is mutated only by
// Merge (once, when it absorbs a frameshift fragment) and by the
// Reported flag, which later stages may set but never clear.
type Hit struct {
	Length int // aligned columns (aa)
	NIdent int

	RefStart int
	RefEnd   int
	RefLen   int

	TargetStart int
	TargetEnd   int
	TargetLen   int

	StopCodon  bool
	Frameshift bool

	TargetName   string
	TargetSeq    string // gapped aligned sequence
	TargetStrand bool   // false <=> negative

	RefAccession string
	RefSeq       string // gapped; whole reference ends with '*'

	StxType       string // 2-character variant code, e.g. "2a"
	StxClass      string // StxType with 2a/2c/2d folded to "2"
	StxSuperClass string // first character of StxClass
	Subunit       byte   // 'A' or 'B'

	Reported bool
}

// Frame is the reading-frame residue of the hit's target start.
func (h *Hit) Frame() int { return h.TargetStart % 3 }

// Identity is the aligned-column identity fraction.
func (h *Hit) Identity() float64 { return float64(h.NIdent) / float64(h.Length) }

// AbsCoverage is the number of reference positions consumed.
func (h *Hit) AbsCoverage() int { return h.RefEnd - h.RefStart }

// RelCoverage is the reference coverage fraction.
func (h *Hit) RelCoverage() float64 { return float64(h.AbsCoverage()) / float64(h.RefLen) }

// Diff scores how far the hit is from a perfect full-length match:
// unaligned reference on both sides plus mismatches. Lower is better;
// it is the primary tie-break for "best hit".
func (h *Hit) Diff() int { return h.RefStart + (h.RefLen - h.RefEnd) + (h.Length - h.NIdent) }

// Truncated reports whether the alignment stops at a contig end with
// reference sequence left unconsumed on that side.
func (h *Hit) Truncated() bool {
	if h.TargetStart <= endDelta &&
		((h.TargetStrand && h.RefStart > 0) || (!h.TargetStrand && h.RefEnd+1 < h.RefLen)) {
		return true
	}
	if h.TargetLen-h.TargetEnd <= endDelta &&
		((h.TargetStrand && h.RefEnd+1 < h.RefLen) || (!h.TargetStrand && h.RefStart > 0)) {
		return true
	}
	return false
}

// OtherTruncated reports whether the hit sits close enough to a contig
// end, on the side where its partner subunit would be expected, that the
// partner may have fallen off the contig.
func (h *Hit) OtherTruncated() bool {
	if h.TargetStrand == (h.Subunit == 'B') && h.TargetStart <= missedMax {
		return true
	}
	if h.TargetStrand == (h.Subunit == 'A') && h.TargetLen-h.TargetEnd <= missedMax {
		return true
	}
	return false
}

// Extended reports an alignment that consumes the reference from its
// first position through its stop codon column.
func (h *Hit) Extended() bool { return h.RefStart == 0 && h.RefEnd+1 == h.RefLen }

// InsideEq reports whether h's target range lies within other's.
func (h *Hit) InsideEq(other *Hit) bool {
	return h.TargetStart >= other.TargetStart && h.TargetEnd <= other.TargetEnd
}

// RefMap projects the hit's target residues onto a fixed reference frame
// of n columns: reference positions outside the aligned span are '-',
// reference gap columns are dropped, and the result always has length n.
// A frameshift-merged hit carries only its absorbing fragment's
// alignment columns, so the absorbed fragment's reference span reads
// '-' as well.
func (h *Hit) RefMap(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = '-'
	}
	// The reference position of RefSeq's first non-gap column. After a
	// plus-strand merge RefStart has been widened past the absorbing
	// fragment, so anchor on RefEnd instead.
	pos := h.RefStart
	if h.Frameshift && h.TargetStrand {
		cov := 0
		for i := 0; i < len(h.RefSeq); i++ {
			if h.RefSeq[i] != '-' {
				cov++
			}
		}
		pos = h.RefEnd - cov
	}
	for i := 0; i < len(h.RefSeq); i++ {
		if h.RefSeq[i] == '-' {
			continue
		}
		if pos >= 0 && pos < n {
			buf[pos] = h.TargetSeq[i]
		}
		pos++
	}
	return string(buf)
}

// Merge absorbs prev, an upstream fragment of the same frameshifted
// gene, into h. The target range widens to prev's start; the
// reference-side boundary nearer the strand's 5' end widens; length and
// identity counts accumulate additively (approximate, not recomputed
// from alignment columns).
func (h *Hit) Merge(prev *Hit) {
	h.TargetStart = prev.TargetStart
	if h.TargetStrand {
		h.RefStart = prev.RefStart
	} else {
		h.RefEnd = prev.RefEnd
	}
	h.Length += prev.Length
	h.NIdent += prev.NIdent
	if prev.StopCodon {
		h.StopCodon = true
	}
	h.Frameshift = true
}

// Validate checks the Hit invariants. A violation is a defect in the
// upstream collaborator or a logic error, never recoverable.
func (h *Hit) Validate() error {
	switch {
	case h.Length <= 0:
		return fmt.Errorf("%w: non-positive alignment length", ErrMalformedRecord)
	case h.NIdent <= 0 || h.NIdent > h.Length:
		return fmt.Errorf("%w: identical count %d out of range for length %d", ErrMalformedRecord, h.NIdent, h.Length)
	case h.TargetStart >= h.TargetEnd:
		return fmt.Errorf("%w: empty target range [%d,%d)", ErrMalformedRecord, h.TargetStart, h.TargetEnd)
	case h.TargetEnd > h.TargetLen:
		return fmt.Errorf("%w: target end %d beyond contig length %d", ErrMalformedRecord, h.TargetEnd, h.TargetLen)
	case h.RefStart >= h.RefEnd:
		return fmt.Errorf("%w: empty reference range [%d,%d)", ErrMalformedRecord, h.RefStart, h.RefEnd)
	case h.RefEnd > h.RefLen:
		return fmt.Errorf("%w: reference end %d beyond reference length %d", ErrMalformedRecord, h.RefEnd, h.RefLen)
	case h.TargetName == "":
		return fmt.Errorf("%w: empty target name", ErrMalformedRecord)
	case h.RefAccession == "":
		return fmt.Errorf("%w: empty reference accession", ErrMalformedRecord)
	case h.Subunit != 'A' && h.Subunit != 'B':
		return fmt.Errorf("%w: subunit %q", ErrMalformedRecord, h.Subunit)
	case len(h.StxType) != 2:
		return fmt.Errorf("%w: stx type %q", ErrMalformedRecord, h.StxType)
	case len(h.TargetSeq) == 0 || len(h.TargetSeq) != len(h.RefSeq):
		return fmt.Errorf("%w: aligned sequence lengths differ", ErrMalformedRecord)
	}
	if _, ok := ClassIdentityMin[h.StxClass]; !ok {
		return fmt.Errorf("%w: unknown stx class %q", ErrMalformedDatabase, h.StxClass)
	}
	if !h.Frameshift {
		if h.NIdent > h.AbsCoverage() {
			return fmt.Errorf("%w: identical count %d exceeds reference coverage %d", ErrMalformedRecord, h.NIdent, h.AbsCoverage())
		}
		if h.AbsCoverage() > h.Length {
			return fmt.Errorf("%w: reference coverage %d exceeds alignment length %d", ErrMalformedRecord, h.AbsCoverage(), h.Length)
		}
		if h.Length != len(h.TargetSeq) {
			return fmt.Errorf("%w: alignment length %d does not match aligned sequence", ErrMalformedRecord, h.Length)
		}
	}
	return nil
}
