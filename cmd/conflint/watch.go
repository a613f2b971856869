package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conflint/conflint/pkg/checks"
	"github.com/conflint/conflint/pkg/logger"
	"github.com/conflint/conflint/pkg/presenter"
	"github.com/conflint/conflint/pkg/report"
)

// WatchConfig holds configuration for the watch command
type WatchConfig struct {
	DebounceTime int
}

// NewWatchConfig creates a WatchConfig with default values
func NewWatchConfig() *WatchConfig {
	return &WatchConfig{
		DebounceTime: 500,
	}
}

// watchedSubdirs are the parts of the config root worth re-validating on.
var watchedSubdirs = []string{"agents", "skills", "commands", "schemas", "docs"}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate the configuration whenever it changes",
	Long: `Continuously monitors the config root and re-runs validation whenever
a file changes. Useful while editing agent or skill definitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		config := getWatchConfigFromFlags(cmd)
		if config.DebounceTime < 0 {
			presenter.Error(errors.Errorf("debounce time cannot be negative: %d", config.DebounceTime), "Invalid configuration")
			os.Exit(1)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			presenter.Warning("Cancellation requested, shutting down...")
			cancel()
		}()

		runWatchMode(ctx, viper.GetString("root"), config)
	},
}

func init() {
	defaults := NewWatchConfig()
	watchCmd.Flags().IntP("debounce", "d", defaults.DebounceTime, "Debounce time in milliseconds for file change events")
}

func getWatchConfigFromFlags(cmd *cobra.Command) *WatchConfig {
	config := NewWatchConfig()
	if debounceTime, err := cmd.Flags().GetInt("debounce"); err == nil {
		config.DebounceTime = debounceTime
	}
	return config
}

func runWatchMode(ctx context.Context, root string, config *WatchConfig) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		presenter.Error(err, "Failed to create file watcher")
		logger.G(ctx).WithError(err).Fatal("Failed to create file watcher")
	}
	defer watcher.Close()

	changed := make(chan string)
	go debounceChanges(ctx, changed, time.Duration(config.DebounceTime)*time.Millisecond, func(path string) {
		presenter.Info(fmt.Sprintf("Change detected: %s", path))
		runValidation(ctx, root)
	})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					changed <- event.Name
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				presenter.Error(err, "File watcher error")
				logger.G(ctx).WithError(err).Error("Error watching files")
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := addWatchDirs(ctx, watcher, root); err != nil {
		presenter.Error(err, "Failed to watch config root")
		logger.G(ctx).WithError(err).Fatal("Failed to watch config root")
	}

	runValidation(ctx, root)
	presenter.Info("Watching for configuration changes... Press Ctrl+C to stop")

	<-ctx.Done()
}

// addWatchDirs registers the root and every directory under its known
// subdirectories with the watcher.
func addWatchDirs(ctx context.Context, watcher *fsnotify.Watcher, root string) error {
	if err := watcher.Add(root); err != nil {
		return err
	}

	for _, sub := range watchedSubdirs {
		dir := filepath.Join(root, sub)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				logger.G(ctx).WithField("directory", path).Debug("Adding directory to watcher")
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// debounceChanges collapses a burst of change events into one callback.
func debounceChanges(ctx context.Context, input <-chan string, delay time.Duration, fn func(string)) {
	var timer *time.Timer

	for {
		select {
		case path, ok := <-input:
			if !ok {
				if timer != nil {
					timer.Stop()
				}
				return
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(delay, func() {
				select {
				case <-ctx.Done():
				default:
					fn(path)
				}
			})
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func runValidation(ctx context.Context, root string) {
	summary, err := checks.Run(ctx, root, nil)
	if err != nil {
		presenter.Error(err, "Validation run failed")
		return
	}

	presenter.Separator()
	report.Text(os.Stdout, summary)
	presenter.Separator()
}
