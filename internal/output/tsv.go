// Package output renders final operon calls as the tab-separated
// report. Column layout and formatting are fixed; re-runs on identical
// input produce byte-identical output.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"stxscan/internal/operon"
)

// TSVHeader is the canonical header row (without the optional leading
// "name" column). Keep this as the single source of truth.
const TSVHeader = "target_contig\tstx_type\toperon\tidentity\ttarget_start\ttarget_stop\ttarget_strand\tA_reference\tA_identity\tA_coverage\tB_reference\tB_identity\tB_coverage"

const stxPrefix = "stx"

// pct renders a 0..1 fraction as a percentage with two decimals.
func pct(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 2, 64)
}

func strand(plus bool) string {
	if plus {
		return "+"
	}
	return "-"
}

// FormatRow returns one report row (no trailing newline). Coordinates
// are 1-based inclusive on output. A singleton leaves the operon
// identity and the absent subunit's reference/identity/coverage columns
// empty.
func FormatRow(o *operon.Operon) string {
	if o.Paired() {
		a, b := o.A(), o.B()
		return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
			o.L.TargetName,
			stxPrefix+o.ReportedType(),
			o.Status(),
			pct(o.Identity()),
			o.L.TargetStart+1,
			o.R.TargetEnd,
			strand(o.L.TargetStrand),
			a.RefAccession, pct(a.Identity()), pct(a.RelCoverage()),
			b.RefAccession, pct(b.Identity()), pct(b.RelCoverage()),
		)
	}

	h := o.L
	aRef, aIdent, aCov := "", "", ""
	bRef, bIdent, bCov := "", "", ""
	if h.Subunit == 'A' {
		aRef, aIdent, aCov = h.RefAccession, pct(h.Identity()), pct(h.RelCoverage())
	} else {
		bRef, bIdent, bCov = h.RefAccession, pct(h.Identity()), pct(h.RelCoverage())
	}
	return fmt.Sprintf("%s\t%s\t%s\t\t%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		h.TargetName,
		stxPrefix+o.ReportedType(),
		o.Status(),
		h.TargetStart+1,
		h.TargetEnd,
		strand(h.TargetStrand),
		aRef, aIdent, aCov,
		bRef, bIdent, bCov,
	)
}

// Write renders the header plus one row per operon. A non-empty run
// label adds a leading "name" column to every line.
func Write(w io.Writer, ops []*operon.Operon, name string) error {
	var sb strings.Builder
	if name != "" {
		sb.WriteString("name\t")
	}
	sb.WriteString(TSVHeader)
	sb.WriteByte('\n')
	for _, o := range ops {
		if name != "" {
			sb.WriteString(name)
			sb.WriteByte('\t')
		}
		sb.WriteString(FormatRow(o))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
