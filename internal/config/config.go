package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"project-bones/internal/input"
)

// Settings holds everything read from the settings file.
type Settings struct {
	// Display and audio values are carried for the window and audio
	// collaborators; the core does not act on them.
	WindowType  string     `yaml:"window_type"`
	Resolution  [2]float64 `yaml:"resolution"`
	Master      float64    `yaml:"master"`
	Characters  float64    `yaml:"characters"`
	Environment float64    `yaml:"environment"`

	// Keybinds is a list of [action, key] pairs.
	Keybinds [][]string `yaml:"keybinds"`

	TickRate int    `yaml:"tick_rate"` // ticks per second
	Log      Log    `yaml:"log"`
	Tuning   Tuning `yaml:"tuning"`
	Render   Render `yaml:"render"`
	Rules    Rules  `yaml:"rules"`
	Level    string `yaml:"level"` // optional spawn-list path
}

// Log configures the slog handler.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Tuning holds the gameplay constants.
type Tuning struct {
	MoveSpeed           float64 `yaml:"move_speed"`            // body units per tick per held direction
	ArmSpeed            float64 `yaml:"arm_speed"`             // multiplier on the aim drag
	InteractionRange    float64 `yaml:"interaction_range"`     // inclusive
	CameraPreviewOffset float64 `yaml:"camera_preview_offset"` // vertical bias while cycling
	DetachOffset        float64 `yaml:"detach_offset"`         // limb spawns at body - (offset, offset)
	ColliderRadius      float64 `yaml:"collider_radius"`
	CameraScale         float64 `yaml:"camera_scale"`
}

// Render sets how world units map onto terminal cells.
type Render struct {
	UnitsPerRow float64 `yaml:"units_per_row"`   // a column is half as tall
	HoldWindow  int     `yaml:"hold_window_ms"`  // held time after a key repeat
	RepeatDelay int     `yaml:"repeat_delay_ms"` // held time after a key's first event
}

// Rules switches the behaviours that are still undecided. Every default
// keeps the shipped behaviour.
type Rules struct {
	NormalizeDiagonal        bool `yaml:"normalize_diagonal"`
	AimActiveLimbOnly        bool `yaml:"aim_active_limb_only"`
	ForwardItemPayload       bool `yaml:"forward_item_payload"`
	ForwardPersonPayload     bool `yaml:"forward_person_payload"`
	DoorRequiresAll          bool `yaml:"door_requires_all"`
	PersistUnconditionalOpen bool `yaml:"persist_unconditional_open"`
}

// Bindings converts Keybinds for input.NewKeyMap.
func (s Settings) Bindings() []input.Binding {
	out := make([]input.Binding, 0, len(s.Keybinds))
	for _, kb := range s.Keybinds {
		out = append(out, input.Binding{Action: kb[0], Key: kb[1]})
	}
	return out
}

// TickInterval is the wall-clock duration of one tick.
func (s Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// InputTiming is how long a key stays held after its last event.
func (s Settings) InputTiming() input.Timing {
	return input.Timing{
		Hold:        time.Duration(s.Render.HoldWindow) * time.Millisecond,
		RepeatDelay: time.Duration(s.Render.RepeatDelay) * time.Millisecond,
	}
}

// LogLevel parses Log.Level, defaulting to info.
func (s Settings) LogLevel() slog.Level {
	switch strings.ToLower(s.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Default returns Settings with the stock bindings and constants.
func Default() Settings {
	return Settings{
		WindowType:  "BorderlessFullscreen",
		Resolution:  [2]float64{1280, 720},
		Master:      1,
		Characters:  1,
		Environment: 1,
		Keybinds: [][]string{
			{"Up", "w"},
			{"Down", "s"},
			{"Left", "a"},
			{"Right", "d"},
			{"Up", "up"},
			{"Down", "down"},
			{"Left", "left"},
			{"Right", "right"},
			{"Interact", "e"},
			{"CycleForward", "x"},
			{"CycleBackward", "z"},
			{"Split", "spacebar"},
		},
		TickRate: 30,
		Log: Log{
			Level: "info",
			File:  filepath.Join(stateDir(), "bones.log"),
		},
		Tuning: Tuning{
			MoveSpeed:           2,
			ArmSpeed:            1,
			InteractionRange:    20,
			CameraPreviewOffset: 680,
			DetachOffset:        20,
			ColliderRadius:      25,
			CameraScale:         0.35,
		},
		Render: Render{
			UnitsPerRow: 32,
			HoldWindow:  int(input.DefaultHoldWindow / time.Millisecond),
			RepeatDelay: int(input.DefaultRepeatDelay / time.Millisecond),
		},
	}
}

// Load reads settings from a YAML file layered over Default.
// If the file doesn't exist, returns defaults.
func Load(path string) (Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("settings %s: %w", path, err)
	}
	return cfg, nil
}

// MaxTickRate bounds tick_rate so the tick interval stays above zero.
const MaxTickRate = 1000

func (s Settings) validate() error {
	for i, kb := range s.Keybinds {
		if len(kb) != 2 {
			return fmt.Errorf("keybind %d: want [action, key], got %d values", i, len(kb))
		}
	}
	if s.TickRate <= 0 || s.TickRate > MaxTickRate {
		return fmt.Errorf("tick_rate must be in 1..%d, got %d", MaxTickRate, s.TickRate)
	}
	if s.Tuning.CameraScale <= 0 {
		return fmt.Errorf("tuning.camera_scale must be positive, got %v", s.Tuning.CameraScale)
	}
	if s.Render.HoldWindow < 0 || s.Render.RepeatDelay < 0 {
		return fmt.Errorf("render hold_window_ms and repeat_delay_ms must not be negative")
	}
	if s.Render.UnitsPerRow <= 0 {
		return fmt.Errorf("render.units_per_row must be positive, got %v", s.Render.UnitsPerRow)
	}
	return nil
}

// stateDir follows the XDG Base Directory spec: $XDG_STATE_HOME/project-bones,
// defaulting to ~/.local/state/project-bones.
func stateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "project-bones")
}
