package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-bones/internal/ecs"
)

// newCycle builds a BodyParts list of n parts: Body then alternating arms.
func newCycle(n int) BodyParts {
	b := NewBodyParts(1)
	for i := 1; i < n; i++ {
		tag := PartLeftArm
		if i%2 == 0 {
			tag = PartRightArm
		}
		b.Append(PartRef{Tag: tag, Entity: ecs.EntityID(i + 1)})
	}
	return b
}

func TestNewBodyPartsStartsOnBody(t *testing.T) {
	b := NewBodyParts(7)
	assert.Equal(t, []PartTag{PartBody}, b.Tags())
	assert.Equal(t, 0, b.Index)
	assert.Equal(t, PartRef{Tag: PartBody, Entity: 7}, b.Current())
}

func TestCycleForwardFullLoopIsIdentity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			b := newCycle(n)
			b.Index = start
			for i := 0; i < n; i++ {
				b.CycleForward()
				require.Equal(t, b.Parts[b.Index], b.Current())
			}
			assert.Equal(t, start, b.Index, "n=%d start=%d", n, start)
		}
	}
}

func TestCycleForwardThenBackwardIsIdentity(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for start := 0; start < n; start++ {
			b := newCycle(n)
			b.Index = start
			before := b.Current()
			b.CycleForward()
			b.CycleBackward()
			assert.Equal(t, start, b.Index)
			assert.Equal(t, before, b.Current())
		}
	}
}

func TestCycleWraps(t *testing.T) {
	b := newCycle(3)
	b.Index = 2
	assert.Equal(t, PartBody, b.CycleForward().Tag)
	assert.Equal(t, 0, b.Index)

	assert.Equal(t, PartRightArm, b.CycleBackward().Tag)
	assert.Equal(t, 2, b.Index)
}

func TestCycleSingleElementIsNoop(t *testing.T) {
	b := NewBodyParts(1)
	b.CycleForward()
	assert.Equal(t, 0, b.Index)
	b.CycleBackward()
	assert.Equal(t, 0, b.Index)
	assert.Equal(t, PartBody, b.CurrentTag())
}

func TestAppendMovesCursorToTail(t *testing.T) {
	b := NewBodyParts(1)
	b.Append(PartRef{Tag: PartLeftArm, Entity: 9})

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 1, b.Index)
	assert.Equal(t, PartRef{Tag: PartLeftArm, Entity: 9}, b.Current())
}

func TestAppendDoesNotAliasCopies(t *testing.T) {
	orig := NewBodyParts(1)
	cp := orig
	cp.Append(PartRef{Tag: PartLeftArm, Entity: 2})
	assert.Equal(t, 1, orig.Len(), "appending to a copy must not grow the original")
}

func TestPartTagString(t *testing.T) {
	assert.Equal(t, "LeftArm", PartLeftArm.String())
	assert.Equal(t, "Unknown", PartTag(42).String())
	assert.True(t, PartRightArm.IsArm())
	assert.False(t, PartHead.IsArm())
}
