package cache

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()

	// Miss before set.
	_, found, err := c.Get(ctx, "scan:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatal("expected miss for unset key")
	}

	if err := c.Set(ctx, "scan:abc", []byte(`{"count":3}`), TTLScan); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, found, err := c.Get(ctx, "scan:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected hit after set")
	}
	if string(data) != `{"count":3}` {
		t.Errorf("got %q, want %q", data, `{"count":3}`)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)

	_, found, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected expired entry to miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), TTLScan); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := c.Get(ctx, "k"); found {
		t.Error("expected miss after delete")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "nope"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestFileCacheLeavesOnlyEntryFiles(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	for _, key := range []string{"scan:a", "scan:b", "scan:c"} {
		if err := c.Set(ctx, key, []byte("v"), TTLScan); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}

	entries := 0
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !strings.HasSuffix(path, ".entry") {
			t.Errorf("unexpected file in cache dir: %s", path)
		}
		entries++
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if entries != 3 {
		t.Errorf("found %d entry files, want 3", entries)
	}
}

func TestNullCacheNeverStores(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), TTLScan); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found, _ := c.Get(ctx, "k"); found {
		t.Error("null cache should never hit")
	}
}

func TestDefaultKeyerDeterministic(t *testing.T) {
	k := NewDefaultKeyer()

	type params struct {
		Mode     string
		Symmetry int
	}

	a := k.ScanKey(params{Mode: "symmetric", Symmetry: 2})
	b := k.ScanKey(params{Mode: "symmetric", Symmetry: 2})
	c := k.ScanKey(params{Mode: "spiral", Symmetry: 2})

	if a != b {
		t.Errorf("same params produced different keys: %q vs %q", a, b)
	}
	if a == c {
		t.Error("different params produced identical keys")
	}
	if len(a) != len("scan:")+64 {
		t.Errorf("unexpected key length %d: %q", len(a), a)
	}
}

func TestScopedKeyerPrefix(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "v1:")

	key := scoped.ScanKey("params")
	want := "v1:" + inner.ScanKey("params")
	if key != want {
		t.Errorf("got %q, want %q", key, want)
	}
}
