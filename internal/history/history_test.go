package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "corvid/internal/types"
)

func TestMainHistoryStartsZero(t *testing.T) {
	h := New()
	assert.Equal(t, int32(0), h.Main(White, SqE2, SqE4))
}

func TestUpdateMainBoundedByMaxHistory(t *testing.T) {
	h := New()
	for i := 0; i < 1000; i++ {
		h.UpdateMain(White, SqE2, SqE4, 4096)
	}
	v := h.Main(White, SqE2, SqE4)
	assert.LessOrEqual(t, v, MaxHistory)
	assert.GreaterOrEqual(t, v, -MaxHistory)
}

func TestUpdateMainMalusPullsScoreDown(t *testing.T) {
	h := New()
	h.UpdateMain(White, SqE2, SqE4, 900)
	before := h.Main(White, SqE2, SqE4)
	h.UpdateMain(White, SqE2, SqE4, -900)
	after := h.Main(White, SqE2, SqE4)
	assert.Less(t, after, before)
}

func TestUpdateCaptureIndependentOfMain(t *testing.T) {
	h := New()
	wp := MakePiece(White, Pawn)
	bp := MakePiece(Black, Pawn)
	h.UpdateCapture(wp, SqE4, bp, 500)
	assert.NotZero(t, h.Capture(wp, SqE4, bp))
	assert.Zero(t, h.Main(White, SqE2, SqE4))
}

func TestKillerTableShiftsAndDeduplicates(t *testing.T) {
	h := New()
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqG1, SqF3, Normal, PtNone)

	h.StoreKiller(5, m1)
	assert.True(t, h.IsKiller(5, m1))
	assert.False(t, h.IsKiller(5, m2))

	h.StoreKiller(5, m2)
	killers := h.Killers(5)
	assert.Equal(t, m2, killers[0])
	assert.Equal(t, m1, killers[1])

	// storing the current first killer again must not duplicate it into
	// the second slot.
	h.StoreKiller(5, m2)
	killers = h.Killers(5)
	assert.Equal(t, m2, killers[0])
	assert.Equal(t, m1, killers[1])
}

func TestClearResetsEveryTable(t *testing.T) {
	h := New()
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	h.UpdateMain(White, SqE2, SqE4, 100)
	h.StoreKiller(3, m)

	h.Clear()

	assert.Zero(t, h.Main(White, SqE2, SqE4))
	assert.False(t, h.IsKiller(3, m))
}
