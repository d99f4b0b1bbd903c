package system

import (
	"math"

	"project-bones/internal/component"
	"project-bones/internal/ecs"
	"project-bones/internal/input"
	"project-bones/internal/session"
)

// PlayerMovement applies this tick's input to the active body part. The
// body walks with the direction actions; an active arm is flung by a
// pointer drag, opposite to the drag direction.
func PlayerMovement(s *session.Session) {
	if s.PlayerState().Mode != component.ModeMoving {
		return
	}
	parts := s.BodyParts()
	cur := parts.Current()
	switch {
	case cur.Tag == component.PartBody:
		moveBody(s, cur.Entity)
	case cur.Tag.IsArm():
		aimLimbs(s, cur.Entity)
	}
}

// bodyDelta sums the held direction actions. Diagonals are not normalised
// unless the rule asks for it.
func bodyDelta(s *session.Session) (dx, dy float64) {
	speed := s.Tuning.MoveSpeed
	if s.Actions.Pressed(input.Up) {
		dy += speed
	}
	if s.Actions.Pressed(input.Left) {
		dx -= speed
	}
	if s.Actions.Pressed(input.Down) {
		dy -= speed
	}
	if s.Actions.Pressed(input.Right) {
		dx += speed
	}
	if s.Rules.NormalizeDiagonal && dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}
	return dx, dy
}

func moveBody(s *session.Session, body ecs.EntityID) {
	dx, dy := bodyDelta(s)
	if dx == 0 && dy == 0 {
		return
	}
	t, ok := s.Transform(body)
	if !ok {
		return
	}
	s.World.Add(body, t.Translate(dx, dy))
}

func aimLimbs(s *session.Session, active ecs.EntityID) {
	p := s.Pointer
	if p.JustPressed() {
		s.SetArmVec(component.ArmVec{X: p.PressX, Y: p.PressY})
	}
	if !p.JustReleased() {
		return
	}

	origin := s.ArmVec()
	dx := -s.Tuning.ArmSpeed * (p.X - origin.X)
	dy := -s.Tuning.ArmSpeed * (p.Y - origin.Y)

	targets := []ecs.EntityID{active}
	if !s.Rules.AimActiveLimbOnly {
		targets = armEntities(s.World)
	}
	for _, id := range targets {
		if t, ok := s.Transform(id); ok {
			s.World.Add(id, t.Translate(dx, dy))
		}
	}
	s.Log.Debug("flung arm", "dx", dx, "dy", dy, "limbs", len(targets))
}

// armEntities returns every body part tagged LeftArm or RightArm.
func armEntities(w *ecs.World) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CBodyPart, component.CTransform) {
		if w.Get(id, component.CBodyPart).(component.BodyPart).Tag.IsArm() {
			out = append(out, id)
		}
	}
	return out
}

// CameraFollow centres the camera on the active body part. It must run
// after PlayerMovement in the same tick.
func CameraFollow(s *session.Session) {
	_, t := s.ActiveTransform()
	s.MoveCamera(t.X, t.Y)
}
