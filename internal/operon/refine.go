package operon

import "stxscan/internal/align"

// Structural status labels, listed from most to least severe. Paired
// calls use the operon-level subset; singletons may additionally report
// CompleteSubunit.
const (
	StatusFrameshift       = "FRAMESHIFT"
	StatusInternalStop     = "INTERNAL_STOP"
	StatusPartialContigEnd = "PARTIAL_CONTIG_END"
	StatusCompleteSubunit  = "COMPLETE_SUBUNIT"
	StatusExtended         = "EXTENDED"
	StatusPartial          = "PARTIAL"
	StatusComplete         = "COMPLETE"
	StatusCompleteNovel    = "COMPLETE_NOVEL"
)

// Reference-frame widths for the class-2 residue rule: subunit A
// projects onto 320 columns, subunit B onto 90.
const (
	refFrameA = 320
	refFrameB = 90
)

// StxType resolves the reported type string (without the "stx" prefix).
//
// A singleton keeps its own 2-character type. For a pair whose subunit
// classes differ, the shared super-class is reported, or nothing when
// even those disagree. A matching non-2 class reports the left hit's
// exact type. Class 2 is disambiguated by three fixed reference-frame
// residues: A column 313, A column 319, B column 35 (1-based); any
// combination outside the known 2a/2c/2d signatures reports the bare
// class.
func (o *Operon) StxType() string {
	if o.R == nil {
		return o.L.StxType
	}
	if o.L.StxClass != o.R.StxClass {
		if o.L.StxSuperClass == o.R.StxSuperClass {
			return o.L.StxSuperClass
		}
		return ""
	}
	if o.L.StxClass != "2" {
		return o.L.StxType
	}
	a := o.A().RefMap(refFrameA)
	b := o.B().RefMap(refFrameB)
	switch {
	case (a[312] == 'F' || a[312] == 'S') && (a[318] == 'K' || a[318] == 'E') && b[34] == 'D':
		return "2a"
	case a[312] == 'F' && (a[318] == 'K' || a[318] == 'E') && b[34] == 'N':
		return "2c"
	case a[312] == 'S' && a[318] == 'E' && b[34] == 'N':
		return "2d"
	}
	return "2"
}

// partial reports whether either side covers less than the full
// reference without being an extended alignment.
func (o *Operon) partial() bool {
	return (o.A().RelCoverage() < 1.0 && !o.A().Extended()) ||
		(o.B().RelCoverage() < 1.0 && !o.B().Extended())
}

// Status derives the structural status of a paired call, in priority
// order: frameshift, internal stop, truncation at a contig end, partial
// reference coverage, extended alignment, then complete — novel when
// the classes differ, the combined identity misses the class threshold,
// or the type could not be resolved past a bare class.
func (o *Operon) Status() string {
	if o.R == nil {
		return o.singletonStatus()
	}
	a, b := o.A(), o.B()
	switch {
	case a.Frameshift || b.Frameshift:
		return StatusFrameshift
	case a.StopCodon || b.StopCodon:
		return StatusInternalStop
	case a.Truncated() || b.Truncated():
		return StatusPartialContigEnd
	case o.partial():
		return StatusPartial
	case a.Extended() || b.Extended():
		return StatusExtended
	}
	novel := o.L.StxClass != o.R.StxClass ||
		o.Identity() < align.ClassIdentityMin[o.L.StxClass] ||
		len(o.StxType()) <= 1
	if novel {
		return StatusCompleteNovel
	}
	return StatusComplete
}

func (o *Operon) singletonStatus() string {
	h := o.L
	switch {
	case h.Frameshift:
		return StatusFrameshift
	case h.StopCodon:
		return StatusInternalStop
	case h.Truncated() || h.OtherTruncated():
		return StatusPartialContigEnd
	case h.RelCoverage() == 1.0:
		return StatusCompleteSubunit
	case h.Extended():
		return StatusExtended
	}
	return StatusPartial
}

// ReportedType is the type string as printed. A paired call whose
// structural status is neither COMPLETE nor COMPLETE_NOVEL is truncated
// to its class character; a singleton keeps its own 2-character type.
func (o *Operon) ReportedType() string {
	t := o.StxType()
	if o.R == nil {
		return t
	}
	if s := o.Status(); s != StatusComplete && s != StatusCompleteNovel && len(t) >= 2 {
		t = t[:1]
	}
	return t
}
