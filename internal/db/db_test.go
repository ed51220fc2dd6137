package db

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/balkashynov/huepick/internal/state"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "huepick.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestGetMissingKey(t *testing.T) {
	s, _ := openTemp(t)

	v, ok, err := s.Get("savedColors")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get() = %q, %v; want empty, false", v, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	s, _ := openTemp(t)

	if err := s.Set("savedColors", `["#111111"]`); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := s.Set("savedColors", `["#222222"]`); err != nil {
		t.Fatalf("second Set() error: %v", err)
	}

	v, ok, err := s.Get("savedColors")
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v", v, ok, err)
	}
	if v != `["#222222"]` {
		t.Errorf("Get() = %q, want the last written value", v)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	s, path := openTemp(t)
	if err := s.Set("savedColors", `["#111111","#222222"]`); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get("savedColors")
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v", v, ok, err)
	}
	if v != `["#111111","#222222"]` {
		t.Errorf("Get() = %q after reopen", v)
	}
}

func TestKeys(t *testing.T) {
	s, _ := openTemp(t)
	for _, k := range []string{"work", "savedColors", "home"} {
		if err := s.Set(k, "[]"); err != nil {
			t.Fatalf("Set(%q) error: %v", k, err)
		}
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys() error: %v", err)
	}
	want := []string{"home", "savedColors", "work"}
	if !slices.Equal(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestDelete(t *testing.T) {
	s, _ := openTemp(t)
	for _, k := range []string{"brand", "savedColors"} {
		if err := s.Set(k, "[]"); err != nil {
			t.Fatalf("Set(%q) error: %v", k, err)
		}
	}

	if err := s.Delete("brand"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok, _ := s.Get("brand"); ok {
		t.Error("Get() still finds a deleted key")
	}
	if keys, _ := s.Keys(); !slices.Equal(keys, []string{"savedColors"}) {
		t.Errorf("Keys() = %v after Delete", keys)
	}

	if err := s.Delete("missing"); err != nil {
		t.Errorf("Delete() of a missing key error: %v", err)
	}
}

func TestManagerOverSQLite(t *testing.T) {
	s, path := openTemp(t)

	m := state.New(s)
	m.Restore()
	m.AddColor("#111111")
	m.AddColor("#222222")
	s.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	restarted := state.New(reopened)
	restarted.Restore()
	if got := restarted.Saved(); !slices.Equal(got, []string{"#111111", "#222222"}) {
		t.Errorf("Saved() after restart = %v", got)
	}
}
