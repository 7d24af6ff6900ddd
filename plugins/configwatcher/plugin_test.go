package configwatcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/smartkickers/kicker/pkg/log"
	"github.com/smartkickers/kicker/pkg/scoreboard"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestPlugin_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`log_level = "info"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var calls atomic.Int32
	var gotPath atomic.Value
	plugin := New(Config{
		DebounceDelay: 20 * time.Millisecond,
		OnChange: func(p string) error {
			gotPath.Store(p)
			calls.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := plugin.Initialize(ctx, scoreboard.PluginConfig{
		ConfigPath: path,
		Logger:     log.NewNoopLogger(),
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer plugin.Shutdown(context.Background())

	// Several writes in a burst collapse into one reload.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(`log_level = "debug"`), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	waitFor(t, func() bool { return calls.Load() >= 1 })
	time.Sleep(100 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("reload calls = %d, want 1", n)
	}
	if p, _ := gotPath.Load().(string); p != path {
		t.Errorf("reload path = %q, want %q", p, path)
	}
}

func TestPlugin_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	var calls atomic.Int32
	plugin := New(Config{
		Path:          path,
		DebounceDelay: 10 * time.Millisecond,
		OnChange: func(string) error {
			calls.Add(1)
			return nil
		},
	})
	if err := plugin.Initialize(context.Background(), scoreboard.PluginConfig{Logger: log.NewNoopLogger()}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer plugin.Shutdown(context.Background())

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(150 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Errorf("reload calls = %d, want 0", n)
	}
}

func TestPlugin_RetriesAfterFailedReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	var calls atomic.Int32
	plugin := New(Config{
		Path:          path,
		DebounceDelay: 10 * time.Millisecond,
		OnChange: func(string) error {
			if calls.Add(1) == 1 {
				return errors.New("bad toml")
			}
			return nil
		},
	})
	if err := plugin.Initialize(context.Background(), scoreboard.PluginConfig{Logger: log.NewNoopLogger()}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer plugin.Shutdown(context.Background())

	if err := os.WriteFile(path, []byte("broken"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() == 1 })

	if err := os.WriteFile(path, []byte(`log_level = "warn"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() == 2 })
}

func TestPlugin_InitializeTwiceReplacesWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	var calls atomic.Int32
	plugin := New(Config{
		Path:          path,
		DebounceDelay: 10 * time.Millisecond,
		OnChange: func(string) error {
			calls.Add(1)
			return nil
		},
	})
	cfg := scoreboard.PluginConfig{Logger: log.NewNoopLogger()}

	// The first run context stays live, as it would after a crashed run.
	first, cancelFirst := context.WithCancel(context.Background())
	defer cancelFirst()
	if err := plugin.Initialize(first, cfg); err != nil {
		t.Fatalf("first Initialize failed: %v", err)
	}
	if err := plugin.Initialize(context.Background(), cfg); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}

	if err := os.WriteFile(path, []byte(`log_level = "warn"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() >= 1 })
	time.Sleep(100 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("reload calls = %d, want 1", n)
	}

	done := make(chan struct{})
	go func() {
		_ = plugin.Shutdown(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Shutdown() did not return")
	}
}

func TestPlugin_DisabledWithoutPath(t *testing.T) {
	plugin := New(Config{OnChange: func(string) error { return nil }})
	if err := plugin.Initialize(context.Background(), scoreboard.PluginConfig{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := plugin.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestPlugin_Name(t *testing.T) {
	if got := New(DefaultConfig()).Name(); got != "configwatcher" {
		t.Errorf("Name() = %q, want configwatcher", got)
	}
}
