package align

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error taxonomy for the raw alignment input. Both are fatal: once the
// input is malformed, correctness cannot be locally repaired.
var (
	// ErrMalformedDatabase marks a subject id that does not decode to a
	// valid stx family code.
	ErrMalformedDatabase = errors.New("bad stx reference database")
	// ErrMalformedRecord marks an alignment line whose structural
	// invariants do not hold.
	ErrMalformedRecord = errors.New("malformed alignment record")
)

const stxPrefix = "stx"

// ParseHit turns one tabular alignment line into a Hit. The line has 10
// whitespace-separated fields:
//
//	targetId subjectId targetStart targetEnd targetLen refStart refEnd refLen targetSeq refSeq
//
// subjectId encodes the reference accession and a 6-character family
// code ("stx" + subunit letter + 2-character type) as its last two
// '|'-delimited segments. Input coordinates are 1-based; a target start
// greater than its end means the minus strand.
func ParseHit(line string) (*Hit, error) {
	fields := strings.Fields(line)
	if len(fields) != 10 {
		return nil, fmt.Errorf("%w: %d fields, want 10: %q", ErrMalformedRecord, len(fields), line)
	}

	h := &Hit{
		TargetName: fields[0],
		TargetSeq:  fields[8],
		RefSeq:     fields[9],
	}

	var err error
	if h.TargetStart, err = strconv.Atoi(fields[2]); err != nil {
		return nil, fmt.Errorf("%w: target start: %v", ErrMalformedRecord, err)
	}
	if h.TargetEnd, err = strconv.Atoi(fields[3]); err != nil {
		return nil, fmt.Errorf("%w: target end: %v", ErrMalformedRecord, err)
	}
	if h.TargetLen, err = strconv.Atoi(fields[4]); err != nil {
		return nil, fmt.Errorf("%w: target length: %v", ErrMalformedRecord, err)
	}
	if h.RefStart, err = strconv.Atoi(fields[5]); err != nil {
		return nil, fmt.Errorf("%w: reference start: %v", ErrMalformedRecord, err)
	}
	if h.RefEnd, err = strconv.Atoi(fields[6]); err != nil {
		return nil, fmt.Errorf("%w: reference end: %v", ErrMalformedRecord, err)
	}
	if h.RefLen, err = strconv.Atoi(fields[7]); err != nil {
		return nil, fmt.Errorf("%w: reference length: %v", ErrMalformedRecord, err)
	}

	famID, rest, ok := rsplit(fields[1], '|')
	if !ok {
		return nil, fmt.Errorf("%w: subject id %q lacks family code", ErrMalformedDatabase, fields[1])
	}
	h.RefAccession, _, ok = rsplit(rest, '|')
	if !ok {
		h.RefAccession = rest
	}
	if len(famID) != 6 || !strings.HasPrefix(famID, stxPrefix) {
		return nil, fmt.Errorf("%w: family code %q in %q", ErrMalformedDatabase, famID, fields[1])
	}
	h.Subunit = famID[3]
	h.StxType = famID[4:]

	if len(h.TargetSeq) == 0 {
		return nil, fmt.Errorf("%w: empty aligned sequence", ErrMalformedRecord)
	}
	if len(h.TargetSeq) != len(h.RefSeq) {
		return nil, fmt.Errorf("%w: aligned sequence lengths %d != %d", ErrMalformedRecord, len(h.TargetSeq), len(h.RefSeq))
	}
	h.Length = len(h.TargetSeq)
	for i := 0; i < len(h.TargetSeq); i++ {
		if h.TargetSeq[i] == h.RefSeq[i] {
			h.NIdent++
		}
	}

	h.StxClass = h.StxType
	switch h.StxType {
	case "2a", "2c", "2d":
		h.StxClass = "2"
	}
	h.StxSuperClass = h.StxClass[:1]

	if h.RefStart >= h.RefEnd {
		return nil, fmt.Errorf("%w: reference range %d..%d", ErrMalformedRecord, h.RefStart, h.RefEnd)
	}
	if h.TargetStart == h.TargetEnd {
		return nil, fmt.Errorf("%w: equal target start and end %d", ErrMalformedRecord, h.TargetStart)
	}
	h.TargetStrand = h.TargetStart < h.TargetEnd
	if !h.TargetStrand {
		h.TargetStart, h.TargetEnd = h.TargetEnd, h.TargetStart
	}
	if h.RefStart < 1 || h.TargetStart < 1 {
		return nil, fmt.Errorf("%w: coordinates must be 1-based", ErrMalformedRecord)
	}
	// 1-based inclusive -> 0-based half-open.
	h.RefStart--
	h.TargetStart--

	// A stop marker at the very last aligned column is the reference's
	// own terminator; any earlier one is an internal stop.
	if i := strings.IndexByte(h.TargetSeq, '*'); i >= 0 && i+1 < len(h.TargetSeq) {
		h.StopCodon = true
	}

	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %q", err, line)
	}
	return h, nil
}

// rsplit splits s at its last occurrence of sep, returning (after,
// before, true), or ("", s, false) when sep is absent.
func rsplit(s string, sep byte) (tail, head string, ok bool) {
	i := strings.LastIndexByte(s, sep)
	if i < 0 {
		return "", s, false
	}
	return s[i+1:], s[:i], true
}
