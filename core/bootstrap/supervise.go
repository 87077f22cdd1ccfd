package bootstrap

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce window for filesystem events, editors tend to emit bursts.
const reloadDebounce = 500 * time.Millisecond

// how long a child may ignore SIGTERM before it is killed outright.
const defaultGracePeriod = 5 * time.Second

// Supervisor spawns the server process described by a LaunchSpec and reports
// its exit status. In reload mode it also restarts the process whenever a
// source file under WatchDir changes.
type Supervisor struct {
	// Binary is the executable to spawn (normally the current binary).
	Binary string
	// WatchDir is the directory watched in reload mode. Empty means the
	// current working directory.
	WatchDir string
	// GracePeriod bounds how long a stopped child may keep running after
	// SIGTERM before SIGKILL. Zero means defaultGracePeriod.
	GracePeriod time.Duration
	// Logger is optional.
	Logger *zap.Logger
}

// terminate asks the child to stop and waits for it, killing it once the
// grace period runs out.
func (s *Supervisor) terminate(cmd *exec.Cmd, done chan error) error {
	_ = cmd.Process.Signal(syscall.SIGTERM)

	grace := s.GracePeriod
	if grace <= 0 {
		grace = defaultGracePeriod
	}

	select {
	case err := <-done:
		return err
	case <-time.After(grace):
		_ = cmd.Process.Kill()
		return <-done
	}
}

// Run launches the process and blocks until it exits or ctx is cancelled.
// It returns the child's exit code unchanged.
func (s *Supervisor) Run(ctx context.Context, spec LaunchSpec) (int, error) {
	logg := s.Logger
	if logg == nil {
		logg = zap.NewNop()
	}

	if !spec.Reload {
		return s.runOnce(ctx, spec)
	}
	return s.runWithReload(ctx, spec, logg)
}

func (s *Supervisor) runOnce(ctx context.Context, spec LaunchSpec) (int, error) {
	cmd := s.command(spec)
	if err := cmd.Start(); err != nil {
		return 0, err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		return exitCode(s.terminate(cmd, done))
	case err := <-done:
		return exitCode(err)
	}
}

func (s *Supervisor) runWithReload(ctx context.Context, spec LaunchSpec, logg *zap.Logger) (int, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return 0, err
	}
	defer watcher.Close()

	root := s.WatchDir
	if root == "" {
		root = "."
	}
	if err := watchRecursive(watcher, root); err != nil {
		return 0, err
	}

	for {
		cmd := s.command(spec)
		if err := cmd.Start(); err != nil {
			return 0, err
		}

		done := make(chan error, 1)
		go func() { done <- cmd.Wait() }()

		restart, code, err, finished := s.superviseChild(ctx, watcher, cmd, done, logg)
		if finished {
			return code, err
		}
		if restart {
			logg.Info("Source change detected, restarting server")
			continue
		}
	}
}

// superviseChild waits for a change event, a context cancellation or the
// child exiting on its own. finished=false with restart=true means the child
// was stopped for a restart.
func (s *Supervisor) superviseChild(ctx context.Context, watcher *fsnotify.Watcher, cmd *exec.Cmd, done chan error, logg *zap.Logger) (restart bool, code int, err error, finished bool) {
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			code, err = exitCode(s.terminate(cmd, done))
			return false, code, err, true

		case waitErr := <-done:
			code, err = exitCode(waitErr)
			return false, code, err, true

		case ev, ok := <-watcher.Events:
			if !ok {
				continue
			}
			if !relevantChange(ev) {
				continue
			}
			// New directories must be added to the watch set.
			if ev.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					_ = watchRecursive(watcher, ev.Name)
				}
			}
			debounce = time.After(reloadDebounce)

		case watchErr, ok := <-watcher.Errors:
			if ok && watchErr != nil {
				logg.Warn("Watcher error", zap.Error(watchErr))
			}

		case <-debounce:
			_ = s.terminate(cmd, done)
			return true, 0, nil, false
		}
	}
}

func (s *Supervisor) command(spec LaunchSpec) *exec.Cmd {
	cmd := exec.Command(s.Binary, spec.Args()...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

func watchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); name != "." && name != root && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func relevantChange(ev fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(ev.Name), ".") {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename)
}

// exitCode translates a Wait error into the child's exit code. The code is
// passed through unchanged; any non-exit error is returned as-is.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
