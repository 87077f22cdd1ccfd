package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"music-downloader/core/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestSupervisor_ExitCodePassthrough(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"Clean exit", "exit 0", 0},
		{"Failure code unchanged", "exit 7", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sup := &bootstrap.Supervisor{Binary: writeScript(t, tt.body)}
			spec := bootstrap.LaunchSpec{Target: "start", Host: "127.0.0.1", Port: 4000}

			code, err := sup.Run(context.Background(), spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestSupervisor_CancelKillsStubbornChild(t *testing.T) {
	// The child ignores SIGTERM; the supervisor must escalate to SIGKILL
	// after the grace period instead of waiting forever.
	sup := &bootstrap.Supervisor{
		Binary:      writeScript(t, `trap "" TERM`+"\nsleep 30"),
		GracePeriod: 200 * time.Millisecond,
	}
	spec := bootstrap.LaunchSpec{Target: "start", Host: "127.0.0.1", Port: 4000}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = sup.Run(ctx, spec)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not kill a child that ignores SIGTERM")
	}
}

func TestSupervisor_CancelStopsChild(t *testing.T) {
	sup := &bootstrap.Supervisor{Binary: writeScript(t, "sleep 30")}
	spec := bootstrap.LaunchSpec{Target: "start", Host: "127.0.0.1", Port: 4000}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = sup.Run(ctx, spec)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop after cancellation")
	}
}
