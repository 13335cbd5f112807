package tokenstore

import (
	"context"
	"path/filepath"
	"testing"
)

// the file and bolt backends must behave identically through the Store
// contract
func TestDurableBackends(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{
			name: "file",
			open: func(t *testing.T) Store {
				s, err := NewFile(filepath.Join(t.TempDir(), "state", "session"))
				if err != nil {
					t.Fatalf("NewFile: %v", err)
				}
				return s
			},
		},
		{
			name: "bolt",
			open: func(t *testing.T) Store {
				s, err := OpenBolt(filepath.Join(t.TempDir(), "state", "session.db"))
				if err != nil {
					t.Fatalf("OpenBolt: %v", err)
				}
				return s
			},
		},
	}

	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			ctx := context.Background()
			s := backend.open(t)
			defer s.Close()

			token, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("Load on empty store: %v", err)
			}
			if token != "" {
				t.Fatalf("empty store loaded %q", token)
			}

			if err := s.Save(ctx, "abc"); err != nil {
				t.Fatalf("Save: %v", err)
			}
			token, err = s.Load(ctx)
			if err != nil || token != "abc" {
				t.Fatalf("Load = (%q, %v), want (abc, nil)", token, err)
			}

			if err := s.Save(ctx, "def"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			token, _ = s.Load(ctx)
			if token != "def" {
				t.Fatalf("Load after overwrite = %q", token)
			}

			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			token, err = s.Load(ctx)
			if err != nil || token != "" {
				t.Fatalf("Load after Clear = (%q, %v)", token, err)
			}

			// clearing twice is not an error
			if err := s.Clear(ctx); err != nil {
				t.Fatalf("second Clear: %v", err)
			}
		})
	}
}

func TestFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session")

	first, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := first.Save(ctx, "abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first.Close()

	second, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	token, err := second.Load(ctx)
	if err != nil || token != "abc" {
		t.Fatalf("Load after reopen = (%q, %v)", token, err)
	}
}

func TestBoltSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	if err := first.Save(ctx, "abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	token, err := second.Load(ctx)
	if err != nil || token != "abc" {
		t.Fatalf("Load after reopen = (%q, %v)", token, err)
	}
}

func TestMemoryIsVolatilePerInstance(t *testing.T) {
	ctx := context.Background()
	a := NewMemory()
	b := NewMemory()

	if err := a.Save(ctx, "abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	token, _ := b.Load(ctx)
	if token != "" {
		t.Fatal("memory stores must not share state")
	}
}
