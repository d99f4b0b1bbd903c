// bones runs Project Bones in the terminal. Build:
//
//	go build -o bones ./cmd/bones
//
// Usage:
//
//	./bones [--config settings.yaml] [--level floor.yaml]
//
// Without --level the built-in demo floor is loaded. Logs go to the file
// named in the settings, since the terminal belongs to the game.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"project-bones/internal/config"
	"project-bones/internal/game"
	"project-bones/internal/level"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfgPath := flag.String("config", "settings.yaml", "Path to the YAML settings file (defaults apply if absent)")
	levelPath := flag.String("level", "", "Path to a YAML spawn list (built-in demo floor if empty)")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *cfgPath, *levelPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath, levelPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logOut, err := openLog(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logOut.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	})))

	lv, err := loadLevel(levelPath)
	if err != nil {
		return err
	}
	slog.Info("project bones starting", "config", cfgPath, "level", lv.Name, "tick_rate", cfg.TickRate)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	return game.New(cfg, lv, slog.Default()).Run(ctx, screen)
}

// nopCloser lets io.Discard stand in for a log file.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openLog opens path for appending, creating its directory. An empty path
// discards log output.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// loadLevel reads the spawn list at path, or returns the demo floor.
func loadLevel(path string) (level.Level, error) {
	if path == "" {
		return level.Default(), nil
	}
	lv, err := level.Load(path)
	if err != nil {
		return level.Level{}, fmt.Errorf("loading level: %w", err)
	}
	return lv, nil
}
