package cas_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.trai.ch/webassets/internal/adapters/cas"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
)

func hashInput(token string) ports.HashInput {
	return func() (string, error) { return token, nil }
}

func TestNewStore_WritesReadme(t *testing.T) {
	root := filepath.Join(t.TempDir(), "store")

	store, err := cas.NewStore(root)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if store.Root() != root {
		t.Errorf("expected root %q, got %q", root, store.Root())
	}

	readme, err := os.ReadFile(filepath.Join(root, "README.txt"))
	if err != nil {
		t.Fatalf("README.txt missing: %v", err)
	}
	if len(readme) == 0 {
		t.Error("README.txt is empty")
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	ctx := context.Background()

	token, err := store.Store(ctx, "main", "css/style.css", []ports.HashInput{hashInput("cafe")}, func() ([]byte, error) {
		return []byte("text/css\nbody {}"), nil
	})
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if token != "cafe" {
		t.Errorf("expected token %q, got %q", "cafe", token)
	}

	content, age, err := store.Load(ctx, "main", "css/style.css", "cafe")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(content) != "text/css\nbody {}" {
		t.Errorf("unexpected content %q", content)
	}
	if age < 0 || age > time.Minute {
		t.Errorf("implausible entry age %v", age)
	}
}

func TestStore_GeneratorRunsAtMostOnce(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	ctx := context.Background()

	calls := 0
	generate := func() ([]byte, error) {
		calls++
		return []byte("text/css\nbody {}"), nil
	}

	for range 3 {
		if _, err := store.Store(ctx, "main", "style.css", []ports.HashInput{hashInput("cafe")}, generate); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	}

	if calls != 1 {
		t.Errorf("expected one generator invocation, got %d", calls)
	}
}

func TestStore_EmptyTokenSkipsGeneration(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	token, err := store.Store(context.Background(), "main", "style.css", []ports.HashInput{hashInput("")}, func() ([]byte, error) {
		t.Fatal("generator must not run for an unversionable asset")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestStore_GeneratorError(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	boom := errors.New("render exploded")
	_, err = store.Store(context.Background(), "main", "style.css", []ports.HashInput{hashInput("cafe")}, func() ([]byte, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected generator error to propagate, got %v", err)
	}

	// A failed generation must not leave a partial entry behind.
	if _, _, err := store.Load(context.Background(), "main", "style.css", "cafe"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after failed generation, got %v", err)
	}
}

func TestLoad_Miss(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	_, _, err = store.Load(context.Background(), "main", "style.css", "cafe")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestCacheFile_InvalidHashPanics(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-hex hash")
		}
	}()
	store.CacheFile("main", "style.css", "../../etc/passwd")
}

func TestStore_SharedRoot(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	first, err := cas.NewStore(root)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if _, err := first.Store(ctx, "main", "style.css", []ports.HashInput{hashInput("cafe")}, func() ([]byte, error) {
		return []byte("text/css\nbody {}"), nil
	}); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	// A second store over the same root sees the entry.
	second, err := cas.NewStore(root)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	content, _, err := second.Load(ctx, "main", "style.css", "cafe")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(content) != "text/css\nbody {}" {
		t.Errorf("unexpected content %q", content)
	}
}
