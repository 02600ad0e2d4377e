package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"corvid/internal/position"
	. "corvid/internal/types"
)

func TestEvaluateStartposIsTempoBonusOnly(t *testing.T) {
	p := position.NewPosition()
	e := NewEvaluator()
	e.SyncFromPosition(p)

	assert.Equal(t, Score(tempoBonus), e.Evaluate(p))
}

func TestPushPopRestoresAccumulator(t *testing.T) {
	p := position.NewPosition()
	e := NewEvaluator()
	e.SyncFromPosition(p)
	before := e.Evaluate(p)

	e.Push()
	e.Deactivate(White, Pawn, SqE2)
	e.Activate(White, Pawn, SqE4)
	e.Commit()

	e.Pop()
	assert.Equal(t, before, e.Evaluate(p), "Pop must restore exactly what Push saved, regardless of what happened in between")
}

func TestEvaluateIsNeverClampedIntoMateBand(t *testing.T) {
	p := position.NewPosition()
	e := NewEvaluator()
	e.SyncFromPosition(p)
	v := e.Evaluate(p)
	assert.True(t, v.IsValid())
}
