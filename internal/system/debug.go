package system

import (
	"project-bones/internal/input"
	"project-bones/internal/session"
)

// ActionDebug logs every action pressed this tick at debug level.
func ActionDebug(s *session.Session) {
	for _, a := range input.Actions() {
		if s.Actions.JustPressed(a) {
			s.Log.Debug("pressed", "action", a)
		}
	}
}
