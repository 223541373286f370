package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/treeline/internal/config"
)

func TestCacheDirConfigOverride(t *testing.T) {
	c := newTestCLI()
	c.Config.Cache.Dir = "/custom/cache/path"

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != "/custom/cache/path" {
		t.Errorf("cacheDir() = %q, want configured override", dir)
	}
}

func TestCacheDirDefault(t *testing.T) {
	c := newTestCLI()

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	want, err := config.DefaultCacheDir()
	if err != nil {
		t.Fatalf("DefaultCacheDir() error: %v", err)
	}
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
	if !strings.HasSuffix(dir, "treeline") {
		t.Errorf("cacheDir() = %q, should end with 'treeline'", dir)
	}
}

func TestClearCacheDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "ab")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{filepath.Join(dir, "one"), filepath.Join(sub, "two"), filepath.Join(sub, "three")} {
		if err := os.WriteFile(name, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	count, err := clearCacheDir(dir)
	if err != nil {
		t.Fatalf("clearCacheDir() error: %v", err)
	}
	if count != 3 {
		t.Errorf("cleared %d entries, want 3", count)
	}

	// The directory itself survives, emptied
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("cache dir should still exist: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir should be empty, found %d entries", len(entries))
	}
}

func TestCacheClearCommandMissingDir(t *testing.T) {
	c := newTestCLI()
	c.Config.Cache.Dir = filepath.Join(t.TempDir(), "never-created")

	root := c.RootCommand()
	root.SetOut(bytes.NewBuffer(nil))
	root.SetArgs([]string{"cache", "clear"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Errorf("cache clear on a missing dir should succeed, got %v", err)
	}
}

func TestCachePathCommand(t *testing.T) {
	c := newTestCLI()
	c.Config.Cache.Dir = "/custom/cache/path"

	root := c.RootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"cache", "path"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("ExecuteContext() error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "/custom/cache/path" {
		t.Errorf("cache path output = %q, want /custom/cache/path", got)
	}
}
