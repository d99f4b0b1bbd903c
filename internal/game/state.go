package game

// State is a phase of the game-state machine. Only StateRunning executes
// the gameplay pipeline.
type State uint8

const (
	StateLoading State = iota
	StateSetup
	StateCameraSetup
	StateMainMenu
	StateRunning
	StatePause
)

var stateNames = [...]string{"Loading", "Setup", "CameraSetup", "MainMenu", "Running", "Pause"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}
