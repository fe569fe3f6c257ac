package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFilterRedundant_ContainedWorseHitSuppressed(t *testing.T) {
	// Two overlapping same-class A hits; the contained one has a worse
	// diff score and must not survive.
	better := mkHit("ctg", true, 'A', "1a", 100, 400, 5000, 100, 100, 0, 100, 100)
	worse := mkHit("ctg", true, 'A', "1a", 150, 350, 5000, 60, 70, 15, 85, 100)
	worse.RefAccession = "REF_other"

	good := FilterRedundant([]*Hit{worse, better}, zap.NewNop())

	require.Len(t, good, 1)
	assert.Same(t, better, good[0])
}

func TestFilterRedundant_ContainedBetterHitSurvives(t *testing.T) {
	// Containment alone is not enough: a strictly better diff score
	// keeps the inner hit.
	outer := mkHit("ctg", true, 'A', "1a", 100, 400, 5000, 60, 80, 10, 90, 100)
	inner := mkHit("ctg", true, 'A', "1a", 150, 350, 5000, 78, 80, 10, 90, 100)
	inner.RefAccession = "REF_other"

	good := FilterRedundant([]*Hit{outer, inner}, zap.NewNop())
	assert.Len(t, good, 2)
}

func TestFilterRedundant_DifferentGroupsUntouched(t *testing.T) {
	// Containment across subunit, class, strand, or contig boundaries
	// never suppresses.
	base := mkHit("ctg", true, 'A', "1a", 100, 400, 5000, 100, 100, 0, 100, 100)
	subB := mkHit("ctg", true, 'B', "1a", 150, 350, 5000, 60, 70, 15, 85, 100)
	class2 := mkHit("ctg", true, 'A', "2b", 150, 350, 5000, 60, 70, 15, 85, 100)
	minus := mkHit("ctg", false, 'A', "1a", 150, 350, 5000, 60, 70, 15, 85, 100)
	other := mkHit("ctg2", true, 'A', "1a", 150, 350, 5000, 60, 70, 15, 85, 100)

	good := FilterRedundant([]*Hit{base, subB, class2, minus, other}, zap.NewNop())
	assert.Len(t, good, 5)
}

func TestFilterRedundant_SkipsMergedAwayHits(t *testing.T) {
	kept := mkHit("ctg", true, 'A', "1a", 100, 400, 5000, 100, 100, 0, 100, 100)
	merged := mkHit("ctg", true, 'A', "1a", 500, 900, 5000, 100, 100, 0, 100, 100)
	merged.Reported = true

	good := FilterRedundant([]*Hit{merged, kept}, zap.NewNop())
	require.Len(t, good, 1)
	assert.Same(t, kept, good[0])
}

func TestFilterRedundant_Idempotent(t *testing.T) {
	hits := []*Hit{
		mkHit("ctg", true, 'A', "1a", 100, 400, 5000, 100, 100, 0, 100, 100),
		mkHit("ctg", true, 'A', "1a", 150, 350, 5000, 60, 70, 15, 85, 100),
		mkHit("ctg", true, 'B', "1a", 500, 800, 5000, 90, 90, 0, 90, 90),
		mkHit("ctg2", false, 'B', "2b", 10, 300, 400, 80, 85, 0, 85, 90),
	}
	first := FilterRedundant(hits, zap.NewNop())
	second := FilterRedundant(first, zap.NewNop())
	assert.Equal(t, first, second, "re-running the filter on its own output is a no-op")
}
