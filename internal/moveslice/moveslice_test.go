package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "corvid/internal/types"
)

func TestScoredMoveListSortDescending(t *testing.T) {
	ml := NewScoredMoveList(4)
	ml.PushBack(CreateMove(SqA2, SqA3, Normal, PtNone), 10)
	ml.PushBack(CreateMove(SqA2, SqA4, Normal, PtNone), 30)
	ml.PushBack(CreateMove(SqB2, SqB3, Normal, PtNone), 20)

	ml.Sort()

	assert.Equal(t, int32(30), ml.At(0).Score)
	assert.Equal(t, int32(20), ml.At(1).Score)
	assert.Equal(t, int32(10), ml.At(2).Score)
}

func TestScoredMoveListNextSelectsBestOfRemainder(t *testing.T) {
	ml := NewScoredMoveList(3)
	low := CreateMove(SqA2, SqA3, Normal, PtNone)
	high := CreateMove(SqA2, SqA4, Normal, PtNone)
	mid := CreateMove(SqB2, SqB3, Normal, PtNone)
	ml.PushBack(low, 10)
	ml.PushBack(high, 30)
	ml.PushBack(mid, 20)

	assert.Equal(t, high, ml.Next(0))
	assert.Equal(t, mid, ml.Next(1))
	assert.Equal(t, low, ml.Next(2))
}

func TestMoveSliceCopyFromReplacesContents(t *testing.T) {
	dst := NewMoveSlice(2)
	dst.PushBack(CreateMove(SqA2, SqA3, Normal, PtNone))

	src := MoveSlice{
		CreateMove(SqE2, SqE4, Normal, PtNone),
		CreateMove(SqE7, SqE5, Normal, PtNone),
	}
	dst.CopyFrom(src)

	assert.Equal(t, 2, dst.Len())
	assert.Equal(t, src[0], dst.At(0))
	assert.Equal(t, src[1], dst.At(1))
}

func TestMoveSliceStringUci(t *testing.T) {
	ms := MoveSlice{
		CreateMove(SqE2, SqE4, Normal, PtNone),
		CreateMove(SqE7, SqE5, Normal, PtNone),
	}
	assert.Equal(t, "e2e4 e7e5", ms.StringUci())
}

func TestMoveSliceStringUciEmpty(t *testing.T) {
	ms := MoveSlice{}
	assert.Equal(t, "", ms.StringUci())
}
