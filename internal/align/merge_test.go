package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fsHit builds a frameshift-merge candidate with consistent aligned
// sequences so the merged hit still validates.
func fsHit(acc string, strand bool, tStart, tEnd, refStart, refEnd, refLen int) *Hit {
	n := refEnd - refStart
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = 'M'
	}
	h := &Hit{
		Length: n, NIdent: n,
		RefStart: refStart, RefEnd: refEnd, RefLen: refLen,
		TargetStart: tStart, TargetEnd: tEnd, TargetLen: 100000,
		TargetName: "ctg", TargetStrand: strand,
		TargetSeq: string(seq), RefSeq: string(seq),
		RefAccession: acc, StxType: "1a", StxClass: "1a", StxSuperClass: "1",
		Subunit: 'A',
	}
	return h
}

func TestMergeFrameshifts_TwoFragments(t *testing.T) {
	// Frames 300%3=0 and 604%3=1, gap 4 < 10.
	first := fsHit("ACC.1", true, 300, 600, 0, 100, 220)
	second := fsHit("ACC.1", true, 604, 958, 100, 218, 220)
	hits := []*Hit{second, first} // order must not matter

	require.NoError(t, MergeFrameshifts(hits, zap.NewNop()))

	assert.True(t, first.Reported, "absorbed fragment is consumed")
	assert.True(t, second.Frameshift)
	assert.False(t, second.Reported)
	assert.Equal(t, 300, second.TargetStart)
	assert.Equal(t, 958, second.TargetEnd)
	assert.Equal(t, 0, second.RefStart)
	assert.Equal(t, 100+118, second.Length)
}

func TestMergeFrameshifts_ChainIsUnionOfRanges(t *testing.T) {
	a := fsHit("ACC.1", true, 300, 400, 0, 33, 120)
	b := fsHit("ACC.1", true, 404, 500, 33, 65, 120)
	c := fsHit("ACC.1", true, 503, 600, 65, 97, 120)
	hits := []*Hit{c, a, b}

	require.NoError(t, MergeFrameshifts(hits, zap.NewNop()))

	assert.True(t, a.Reported)
	assert.True(t, b.Reported)
	require.False(t, c.Reported)
	assert.True(t, c.Frameshift)
	assert.Equal(t, 300, c.TargetStart, "merged range is the union of all fragments")
	assert.Equal(t, 600, c.TargetEnd)
}

func TestMergeFrameshifts_NoMerge(t *testing.T) {
	cases := map[string][2]*Hit{
		"same frame": {
			fsHit("ACC.1", true, 300, 600, 0, 100, 220),
			fsHit("ACC.1", true, 606, 958, 100, 218, 220),
		},
		"gap too wide": {
			fsHit("ACC.1", true, 300, 600, 0, 100, 220),
			fsHit("ACC.1", true, 613, 958, 100, 218, 220),
		},
		"different accession": {
			fsHit("ACC.1", true, 300, 600, 0, 100, 220),
			fsHit("ACC.2", true, 604, 958, 100, 218, 220),
		},
		"different strand": {
			fsHit("ACC.1", true, 300, 600, 0, 100, 220),
			fsHit("ACC.1", false, 604, 958, 100, 218, 220),
		},
	}
	for name, pair := range cases {
		t.Run(name, func(t *testing.T) {
			hits := []*Hit{pair[0], pair[1]}
			require.NoError(t, MergeFrameshifts(hits, zap.NewNop()))
			assert.False(t, pair[0].Reported)
			assert.False(t, pair[1].Reported)
			assert.False(t, pair[1].Frameshift)
		})
	}
}
