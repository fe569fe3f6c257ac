package align

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(f ...string) string { return strings.Join(f, "\t") }

func TestParseHit_Forward(t *testing.T) {
	line := fields("contig1", "WP_000001.1|stxA1a",
		"101", "130", "5000", "1", "10", "10",
		"MKIIFRVLTF", "MKIIFRVLTF")
	h, err := ParseHit(line)
	require.NoError(t, err)

	assert.Equal(t, "contig1", h.TargetName)
	assert.True(t, h.TargetStrand)
	assert.Equal(t, 100, h.TargetStart) // 0-based
	assert.Equal(t, 130, h.TargetEnd)
	assert.Equal(t, 5000, h.TargetLen)
	assert.Equal(t, 0, h.RefStart)
	assert.Equal(t, 10, h.RefEnd)
	assert.Equal(t, "WP_000001.1", h.RefAccession)
	assert.Equal(t, byte('A'), h.Subunit)
	assert.Equal(t, "1a", h.StxType)
	assert.Equal(t, "1a", h.StxClass)
	assert.Equal(t, "1", h.StxSuperClass)
	assert.Equal(t, 10, h.Length)
	assert.Equal(t, 10, h.NIdent)
	assert.False(t, h.StopCodon)
	assert.False(t, h.Frameshift)
	assert.False(t, h.Reported)
}

func TestParseHit_ReverseStrandNormalized(t *testing.T) {
	line := fields("contig1", "WP_000002.1|stxB2a",
		"430", "401", "5000", "1", "10", "10",
		"MKKMFMAVDV", "MKKMFMAVDV")
	h, err := ParseHit(line)
	require.NoError(t, err)

	assert.False(t, h.TargetStrand)
	assert.Equal(t, 400, h.TargetStart)
	assert.Equal(t, 430, h.TargetEnd)
	assert.Equal(t, "2a", h.StxType)
	assert.Equal(t, "2", h.StxClass, "2a folds into class 2")
	assert.Equal(t, "2", h.StxSuperClass)
}

func TestParseHit_ClassFolding(t *testing.T) {
	for _, tc := range []struct {
		typ, class string
	}{
		{"2a", "2"}, {"2c", "2"}, {"2d", "2"},
		{"2b", "2b"}, {"2k", "2k"}, {"1a", "1a"}, {"1e", "1e"},
	} {
		line := fields("c", "ACC.1|stxA"+tc.typ,
			"1", "30", "500", "1", "10", "10",
			"MKIIFRVLTF", "MKIIFRVLTF")
		h, err := ParseHit(line)
		require.NoError(t, err, tc.typ)
		assert.Equal(t, tc.class, h.StxClass, tc.typ)
	}
}

func TestParseHit_IdenticalCount(t *testing.T) {
	// 3 mismatching columns out of 10.
	line := fields("c", "ACC.1|stxA1a",
		"1", "30", "500", "1", "10", "10",
		"MKIIFRVLTF", "MKAAFRVLTW")
	h, err := ParseHit(line)
	require.NoError(t, err)
	assert.Equal(t, 7, h.NIdent)
	assert.InDelta(t, 0.7, h.Identity(), 1e-9)
}

func TestParseHit_InternalStop(t *testing.T) {
	// A '*' before the last aligned column is an internal stop.
	in, err := ParseHit(fields("c", "ACC.1|stxA1a",
		"1", "30", "500", "1", "10", "10",
		"MKIIF*VLTF", "MKIIFRVLTF"))
	require.NoError(t, err)
	assert.True(t, in.StopCodon)

	// A trailing '*' is the reference stop marker, not an error.
	trail, err := ParseHit(fields("c", "ACC.1|stxA1a",
		"1", "30", "500", "1", "10", "10",
		"MKIIFRVLT*", "MKIIFRVLT*"))
	require.NoError(t, err)
	assert.False(t, trail.StopCodon)
}

func TestParseHit_MalformedDatabase(t *testing.T) {
	for name, subject := range map[string]string{
		"no delimiter":  "stxA1a",
		"short family":  "ACC.1|stx1a",
		"long family":   "ACC.1|stxA1ax",
		"wrong prefix":  "ACC.1|abcA1a",
		"unknown class": "ACC.1|stxA9z",
	} {
		t.Run(name, func(t *testing.T) {
			line := fields("c", subject,
				"1", "30", "500", "1", "10", "10",
				"MKIIFRVLTF", "MKIIFRVLTF")
			_, err := ParseHit(line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedDatabase), "got %v", err)
		})
	}
}

func TestParseHit_MalformedRecord(t *testing.T) {
	for name, line := range map[string]string{
		"too few fields": fields("c", "ACC.1|stxA1a", "1", "30", "500"),
		"equal target start and end": fields("c", "ACC.1|stxA1a",
			"30", "30", "500", "1", "10", "10", "MKIIFRVLTF", "MKIIFRVLTF"),
		"sequence length mismatch": fields("c", "ACC.1|stxA1a",
			"1", "30", "500", "1", "10", "10", "MKIIFRVLTF", "MKIIFRVLT"),
		"inverted reference range": fields("c", "ACC.1|stxA1a",
			"1", "30", "500", "10", "1", "10", "MKIIFRVLTF", "MKIIFRVLTF"),
		"zero-based input": fields("c", "ACC.1|stxA1a",
			"0", "30", "500", "1", "10", "10", "MKIIFRVLTF", "MKIIFRVLTF"),
		"bad integer": fields("c", "ACC.1|stxA1a",
			"x", "30", "500", "1", "10", "10", "MKIIFRVLTF", "MKIIFRVLTF"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseHit(line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord), "got %v", err)
		})
	}
}
