package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "corvid/internal/types"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := New(1)
	_, ok := table.Probe(Key(12345))
	assert.False(t, ok)
}

func TestStoreThenProbeRoundTrips(t *testing.T) {
	table := New(1)
	key := Key(0xDEADBEEF)
	m := CreateMove(SqE2, SqE4, Normal, PtNone)

	table.Store(key, m, 6, BoundExact, Score(150), Score(140))

	e, ok := table.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, m, e.Move())
	assert.Equal(t, 6, e.Depth())
	assert.Equal(t, BoundExact, e.Bound())
	assert.Equal(t, Score(150), e.Value())
	assert.Equal(t, Score(140), e.Eval())
}

func TestStoreAlwaysReplacesSameSlot(t *testing.T) {
	table := New(1)
	key := Key(0x1234)
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqD2, SqD4, Normal, PtNone)

	table.Store(key, m1, 4, BoundExact, Score(10), Score(10))
	table.Store(key, m2, 2, BoundLower, Score(20), Score(20))

	e, ok := table.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, m2, e.Move())
	assert.Equal(t, 2, e.Depth())
}

func TestStoreKeepsPreviousMoveWhenNoneGiven(t *testing.T) {
	table := New(1)
	key := Key(0x5678)
	m := CreateMove(SqG1, SqF3, Normal, PtNone)

	table.Store(key, m, 5, BoundExact, Score(30), Score(30))
	table.Store(key, MoveNone, 3, BoundUpper, Score(-10), Score(-10))

	e, ok := table.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, m, e.Move())
	assert.Equal(t, BoundUpper, e.Bound())
}

func TestClearEmptiesTableWithoutChangingCapacity(t *testing.T) {
	table := New(1)
	key := Key(0x99)
	table.Store(key, CreateMove(SqE2, SqE4, Normal, PtNone), 3, BoundExact, Score(5), Score(5))
	assert.Equal(t, uint64(1), table.Len())

	table.Clear()

	assert.Equal(t, uint64(0), table.Len())
	_, ok := table.Probe(key)
	assert.False(t, ok)
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	table := New(1)
	assert.Equal(t, 0, table.Hashfull())
	// a 1 MB table has 65536 slots, so at least 66 stores are needed before
	// the permille figure rises above zero.
	for k := 1; k <= 100; k++ {
		table.Store(Key(k), CreateMove(SqE2, SqE4, Normal, PtNone), 1, BoundExact, Score(0), Score(0))
	}
	assert.Greater(t, table.Hashfull(), 0)
}

func TestResizeRoundsDownToPowerOfTwo(t *testing.T) {
	table := New(1)
	n := len(table.entries)
	assert.Equal(t, n, n&-n, "capacity should be a power of two")
	assert.Greater(t, n, 0)
}
