package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/gensmith-dev/gensmith/internal/dev"
)

// DevDependencies for the dev command
type DevDependencies struct {
	ConfigLoader   ConfigLoader
	SignalNotifier SignalNotifier
	Output         Output
	Generate       func(ctx context.Context) error
}

type SignalNotifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type defaultSignalNotifier struct{}

func (defaultSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (defaultSignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

// DevCommand watches the project files and regenerates on every change.
type DevCommand struct {
	deps DevDependencies
}

// NewDevCommand creates a new dev command with default dependencies
func NewDevCommand() *DevCommand {
	return &DevCommand{
		deps: DevDependencies{
			ConfigLoader:   &defaultConfigLoader{},
			SignalNotifier: defaultSignalNotifier{},
			Output:         defaultOutput{},
			Generate: func(ctx context.Context) error {
				return NewGenerateCommand().Execute(ctx)
			},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (dc *DevCommand) WithDependencies(deps DevDependencies) *DevCommand {
	dc.deps = deps
	return dc
}

// Execute runs the dev command
func (dc *DevCommand) Execute(ctx context.Context) error {
	cfg, projectRoot, err := dc.deps.ConfigLoader.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	dc.deps.Output.Printf("🚀 Watching %s for changes...\n", cfg.Name)
	dc.deps.Output.Printf("📁 Project root: %s\n", projectRoot)
	dc.deps.Output.Printf("📝 Schema: %s\n", filepath.Join(projectRoot, cfg.Schema))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	dc.deps.SignalNotifier.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer dc.deps.SignalNotifier.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			dc.deps.Output.Println("\n👋 Shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Generate once up front so the output reflects the current inputs.
	if err := dc.regenerate(ctx); err != nil {
		log.Warn().Err(err).Msg("initial generation failed")
	}

	watcher, err := dev.NewWatcher(cfg.Dev.Watch, cfg.Dev.Exclude, func(path string, op fsnotify.Op) {
		if op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
			return
		}
		dc.deps.Output.Printf("🔄 %s changed, regenerating...\n", path)
		if err := dc.regenerate(ctx); err != nil {
			log.Error().Err(err).Str("path", path).Msg("regeneration failed")
			dc.deps.Output.Printf("❌ %v\n", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.AddDirectory(projectRoot); err != nil {
		return fmt.Errorf("failed to watch project: %w", err)
	}

	if err := watcher.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func (dc *DevCommand) regenerate(ctx context.Context) error {
	return dc.deps.Generate(ctx)
}
