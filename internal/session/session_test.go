package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-bones/internal/component"
	"project-bones/internal/config"
)

func newTestSession() *Session {
	s := New(config.Default(), nil)
	body := s.World.CreateEntity()
	s.World.Add(body, component.Transform{X: 1, Y: 2})
	s.World.Add(body, component.BodyPart{Tag: component.PartBody})

	s.Player = s.World.CreateEntity()
	s.World.Add(s.Player, component.Player{})
	s.World.Add(s.Player, component.NewBodyParts(body))
	s.World.Add(s.Player, component.Inventory{})

	s.Camera = s.World.CreateEntity()
	s.World.Add(s.Camera, component.Camera{Scale: 1})
	s.World.Add(s.Camera, component.Transform{Z: 999})
	return s
}

func TestValidatePassesWithSingletons(t *testing.T) {
	s := newTestSession()
	assert.NotPanics(t, s.Validate)
}

func TestValidatePanicsOnSecondPlayer(t *testing.T) {
	s := newTestSession()
	extra := s.World.CreateEntity()
	s.World.Add(extra, component.Player{})
	assert.PanicsWithValue(t, "session: expected exactly one player entity, found 2", s.Validate)
}

func TestValidatePanicsOnMissingCamera(t *testing.T) {
	s := newTestSession()
	s.World.DestroyEntity(s.Camera)
	assert.Panics(t, s.Validate)
}

func TestMoveCameraKeepsDepth(t *testing.T) {
	s := newTestSession()
	s.MoveCamera(5, 6)
	assert.Equal(t, component.Transform{X: 5, Y: 6, Z: 999}, s.CameraTransform())
}

func TestActiveTransform(t *testing.T) {
	s := newTestSession()
	id, tr := s.ActiveTransform()
	assert.Equal(t, s.BodyParts().Current().Entity, id)
	assert.Equal(t, component.Transform{X: 1, Y: 2}, tr)
}

func TestMissingComponentPanics(t *testing.T) {
	s := newTestSession()
	s.World.Remove(s.Player, component.CArmVec)
	assert.Panics(t, func() { s.ArmVec() })
}

func TestSayCapsHistory(t *testing.T) {
	s := newTestSession()
	for i := 0; i < maxMessages+10; i++ {
		s.Say(fmt.Sprintf("msg %d", i))
	}
	require.Len(t, s.Messages, maxMessages)
	assert.Equal(t, "msg 10", s.Messages[0])
	assert.Equal(t, fmt.Sprintf("msg %d", maxMessages+9), s.Messages[maxMessages-1])
}
