package system

import (
	"project-bones/internal/component"
	"project-bones/internal/factory"
	"project-bones/internal/input"
	"project-bones/internal/session"
)

// CycleParts moves the active-part cursor on CycleForward / CycleBackward
// and previews the newly selected part with the camera lifted by the
// preview offset.
func CycleParts(s *session.Session) {
	forward := s.Actions.JustPressed(input.CycleForward)
	backward := s.Actions.JustPressed(input.CycleBackward)
	if !forward && !backward {
		return
	}

	parts := s.BodyParts()
	if forward {
		parts.CycleForward()
	}
	if backward {
		parts.CycleBackward()
	}
	s.SetBodyParts(parts)

	cur := parts.Current()
	if t, ok := s.Transform(cur.Entity); ok {
		s.MoveCamera(t.X, t.Y+s.Tuning.CameraPreviewOffset)
	}
	s.Log.Debug("cycled body part", "part", cur.Tag, "index", parts.Index, "of", parts.Len())
}

// DetachPart splits a left arm off the body on Split. It only fires while
// the body is the active part and only on the press edge, so holding the
// key detaches once.
func DetachPart(s *session.Session) {
	if !s.Actions.JustPressed(input.Split) {
		return
	}
	parts := s.BodyParts()
	body := parts.Current()
	if body.Tag != component.PartBody {
		return
	}
	bt, ok := s.Transform(body.Entity)
	if !ok {
		return
	}

	x := bt.X - s.Tuning.DetachOffset
	y := bt.Y - s.Tuning.DetachOffset
	limb := factory.NewDetachedLimb(s.World, component.PartLeftArm, x, y, s.Tuning.ColliderRadius)

	parts.Append(component.PartRef{Tag: component.PartLeftArm, Entity: limb})
	s.SetBodyParts(parts)
	s.MoveCamera(x, y)

	s.Log.Info("detached body part", "part", component.PartLeftArm, "entity", limb, "parts", parts.Len())
	s.Say("Your left arm pops off.")
}
