package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-bones/internal/input"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultTuning(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2.0, cfg.Tuning.MoveSpeed)
	assert.Equal(t, 1.0, cfg.Tuning.ArmSpeed)
	assert.Equal(t, 20.0, cfg.Tuning.InteractionRange)
	assert.Equal(t, 680.0, cfg.Tuning.CameraPreviewOffset)
	assert.Equal(t, Rules{}, cfg.Rules, "all undecided rules default off")
	assert.Equal(t, time.Second/30, cfg.TickInterval())
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `
window_type: Windowed
resolution: [800, 600]
keybinds:
  - [Up, k]
  - [Split, spacebar]
tuning:
  move_speed: 3.5
rules:
  door_requires_all: true
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Windowed", cfg.WindowType)
	assert.Equal(t, [2]float64{800, 600}, cfg.Resolution)
	assert.Equal(t, 3.5, cfg.Tuning.MoveSpeed)
	assert.Equal(t, 20.0, cfg.Tuning.InteractionRange, "unset keys keep defaults")
	assert.True(t, cfg.Rules.DoorRequiresAll)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, []input.Binding{
		{Action: "Up", Key: "k"},
		{Action: "Split", Key: "spacebar"},
	}, cfg.Bindings())
}

func TestLoadRejectsMalformedKeybind(t *testing.T) {
	path := writeSettings(t, "keybinds:\n  - [Up]\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "keybind 0")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeSettings(t, "tuning: [not, a, map")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing settings")
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"zero tick rate", "tick_rate: 0\n", "tick_rate"},
		{"tick rate too fast for a ticker", "tick_rate: 2000000000\n", "tick_rate"},
		{"zero camera scale", "tuning:\n  camera_scale: 0\n", "camera_scale"},
		{"negative camera scale", "tuning:\n  camera_scale: -1\n", "camera_scale"},
		{"negative repeat delay", "render:\n  repeat_delay_ms: -5\n", "repeat_delay_ms"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeSettings(t, tc.body))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestMaxTickRateKeepsIntervalPositive(t *testing.T) {
	s := Default()
	s.TickRate = MaxTickRate
	require.NoError(t, s.validate())
	assert.Positive(t, s.TickInterval())
}

func TestInputTiming(t *testing.T) {
	timing := Default().InputTiming()
	assert.Equal(t, input.DefaultHoldWindow, timing.Hold)
	assert.Equal(t, input.DefaultRepeatDelay, timing.RepeatDelay)
}

func TestLogLevelFallsBackToInfo(t *testing.T) {
	s := Settings{Log: Log{Level: "chatty"}}
	assert.Equal(t, slog.LevelInfo, s.LogLevel())
}
