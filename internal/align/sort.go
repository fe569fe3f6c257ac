package align

// Sort orders for the per-hit passes. Each comparator is a strict
// multi-key "less" so that sort.SliceStable yields one deterministic
// order for any input permutation.

func boolLess(a, b bool) bool { return !a && b }

// FrameshiftLess orders hits for the frameshift merge scan:
// (contig, strand, reference accession, target start, target end).
func FrameshiftLess(a, b *Hit) bool {
	if a.TargetName != b.TargetName {
		return a.TargetName < b.TargetName
	}
	if a.TargetStrand != b.TargetStrand {
		return boolLess(a.TargetStrand, b.TargetStrand)
	}
	if a.RefAccession != b.RefAccession {
		return a.RefAccession < b.RefAccession
	}
	if a.TargetStart != b.TargetStart {
		return a.TargetStart < b.TargetStart
	}
	return a.TargetEnd < b.TargetEnd
}

// SameTypeLess orders hits for the redundancy filter and the same-class
// assembly pass: (reported, contig, strand, class, subunit, target
// start, diff, reference accession). Reported hits sort last so a scan
// may stop at the first one.
func SameTypeLess(a, b *Hit) bool {
	if a.Reported != b.Reported {
		return boolLess(a.Reported, b.Reported)
	}
	if a.TargetName != b.TargetName {
		return a.TargetName < b.TargetName
	}
	if a.TargetStrand != b.TargetStrand {
		return boolLess(a.TargetStrand, b.TargetStrand)
	}
	if a.StxClass != b.StxClass {
		return a.StxClass < b.StxClass
	}
	if a.Subunit != b.Subunit {
		return a.Subunit < b.Subunit
	}
	if a.TargetStart != b.TargetStart {
		return a.TargetStart < b.TargetStart
	}
	if d1, d2 := a.Diff(), b.Diff(); d1 != d2 {
		return d1 < d2
	}
	return a.RefAccession < b.RefAccession
}

// Less is SameTypeLess without the class key, used for the cross-class
// assembly passes.
func Less(a, b *Hit) bool {
	if a.TargetName != b.TargetName {
		return a.TargetName < b.TargetName
	}
	if a.TargetStrand != b.TargetStrand {
		return boolLess(a.TargetStrand, b.TargetStrand)
	}
	if a.Subunit != b.Subunit {
		return a.Subunit < b.Subunit
	}
	if a.TargetStart != b.TargetStart {
		return a.TargetStart < b.TargetStart
	}
	if d1, d2 := a.Diff(), b.Diff(); d1 != d2 {
		return d1 < d2
	}
	return a.RefAccession < b.RefAccession
}

// ReportLess orders leftover hits for singleton reporting: best
// coverage first, then lowest diff, so the strongest call for a locus
// suppresses the near-duplicates after it.
func ReportLess(a, b *Hit) bool {
	if a.Reported != b.Reported {
		return boolLess(a.Reported, b.Reported)
	}
	if a.TargetName != b.TargetName {
		return a.TargetName < b.TargetName
	}
	if a.TargetStrand != b.TargetStrand {
		return boolLess(a.TargetStrand, b.TargetStrand)
	}
	if c1, c2 := a.AbsCoverage(), b.AbsCoverage(); c1 != c2 {
		return c1 > c2
	}
	if d1, d2 := a.Diff(), b.Diff(); d1 != d2 {
		return d1 < d2
	}
	if a.TargetStart != b.TargetStart {
		return a.TargetStart < b.TargetStart
	}
	return a.RefAccession < b.RefAccession
}
